package main

import (
	"os"

	"github.com/spella/wish/pkg/cli"
)

func main() {
	os.Exit(cli.New(os.Stdout, os.Stderr).Run(os.Args[1:]))
}
