package cli

import "github.com/spella/wish/params"

type ConstantsCmd struct {
	app *App
}

func (x *ConstantsCmd) Execute(args []string) error {
	x.app.header("Spella contract constants")
	for _, c := range params.Constants() {
		x.app.field(c.Name, c.Value)
	}
	return nil
}
