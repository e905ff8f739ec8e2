package cli

import (
	"fmt"

	"github.com/spella/wish/pkg/crypto"
)

type HashCmd struct {
	Args struct {
		Texts []string `positional-arg-name:"TEXT" description:"Strings to fingerprint"`
	} `positional-args:"yes" required:"yes"`

	app *App
}

func (x *HashCmd) Execute(args []string) error {
	for _, text := range x.Args.Texts {
		fmt.Fprintf(x.app.Out, "%s  %s\n", crypto.FingerprintOf(text).Hex(), text)
	}
	return nil
}
