package main

import (
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/inkwell-press/dewey/commands"
)

func main() {
	parser := flags.NewParser(&commands.Dewey, flags.HelpFlag|flags.PassDoubleDash)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}

		os.Exit(1)
	}
}
