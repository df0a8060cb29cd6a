package cmd

import (
	"fmt"
	"os"

	"github.com/devin-lang/devin/internal/checker"
	"github.com/devin-lang/devin/internal/diag"
	"github.com/devin-lang/devin/internal/lexer"
	"github.com/devin-lang/devin/internal/parser"
	"github.com/spf13/cobra"
)

var checkEval string

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Type-check a Devin file or expression without running it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkEval, "eval", "e", "", "check inline code instead of reading from file")
}

func runCheck(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(checkEval, args)
	if err != nil {
		return err
	}

	p := parser.New(lexer.New(input))
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) != 0 {
		fmt.Fprintln(os.Stderr, diag.Render(filename, input, diag.FromParseErrors(errs), true))
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	diags := checker.New().Check(prog)
	if len(diags) == 0 {
		fmt.Println("no diagnostics")
		return nil
	}

	fmt.Fprintln(os.Stderr, diag.Render(filename, input, diag.FromDiagnostics(diags), true))
	for _, d := range diags {
		if d.Severity == checker.SeverityError {
			return fmt.Errorf("type checking failed with at least one error")
		}
	}
	return nil
}
