package main

import (
	"github.com/alecthomas/kong"

	"cellarbook.org/CellarBook/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("CellarBook"), kong.Description("CellarBook is a wine collection management tool."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
