// Package main provides the entry point for the cardmatch CLI application.
package main

import (
	"os"

	"cardmatch/cmd/analyze"
	"cardmatch/cmd/classify"
	"cardmatch/cmd/compare"
	"cardmatch/cmd/recommend"
	"cardmatch/cmd/root"
)

func main() {
	root.Init()

	root.Cmd.AddCommand(analyze.Cmd)
	root.Cmd.AddCommand(recommend.Cmd)
	root.Cmd.AddCommand(compare.Cmd)
	root.Cmd.AddCommand(classify.Cmd)

	if err := root.Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
