package main

import (
	"os"

	"github.com/jwalitptl/passcheck/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.StdIO(), os.Args[1:]))
}
