package cmd

import (
	"fmt"
	"os"

	"github.com/devin-lang/devin/internal/diag"
	"github.com/devin-lang/devin/internal/lexer"
	"github.com/devin-lang/devin/internal/parser"
	"github.com/spf13/cobra"
)

var parseEval string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Devin file or expression and print the syntax tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse inline code instead of reading from file")
}

func runParse(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(parseEval, args)
	if err != nil {
		return err
	}

	p := parser.New(lexer.New(input))
	prog := p.ParseProgram()

	if errs := p.Errors(); len(errs) != 0 {
		fmt.Fprintln(os.Stderr, diag.Render(filename, input, diag.FromParseErrors(errs), true))
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	fmt.Println(prog.String())
	return nil
}
