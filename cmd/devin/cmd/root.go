// Package cmd implements the devin CLI's Cobra command tree: a root command
// plus one subcommand per pipeline stage (lex, parse, check, run), grounded
// on go-dws's cmd/dwscript/cmd layout.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags; left at its default for plain `go build`.
	Version = "0.1.0-dev"

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:     "devin",
	Short:   "Devin language tools",
	Long:    "devin is the reference toolchain for the Devin toy language: lexer, parser, type checker, and tree-walking evaluator.",
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (no subcommand reads this flag)")
}
