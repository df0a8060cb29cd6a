package cmd

import (
	"fmt"
	"os"

	"github.com/devin-lang/devin/internal/checker"
	"github.com/devin-lang/devin/internal/diag"
	"github.com/devin-lang/devin/internal/eval"
	"github.com/devin-lang/devin/internal/lexer"
	"github.com/devin-lang/devin/internal/parser"
	"github.com/spf13/cobra"
)

var (
	runEval  string
	dumpAST  bool
	traceRun bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Type-check and run a Devin file or expression",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runEval, "eval", "e", "", "run inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "ast", false, "print the parsed syntax tree before running")
	runCmd.Flags().BoolVar(&traceRun, "trace", false, "announce each pipeline stage on stderr")
}

func runRun(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(runEval, args)
	if err != nil {
		return err
	}

	if traceRun {
		fmt.Fprintf(os.Stderr, "[parsing %s]\n", filename)
	}
	p := parser.New(lexer.New(input))
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) != 0 {
		fmt.Fprintln(os.Stderr, diag.Render(filename, input, diag.FromParseErrors(errs), true))
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	if dumpAST {
		fmt.Println(prog.String())
	}

	if traceRun {
		fmt.Fprintf(os.Stderr, "[type-checking %s]\n", filename)
	}
	diags := checker.New().Check(prog)
	if len(diags) != 0 {
		fmt.Fprintln(os.Stderr, diag.Render(filename, input, diag.FromDiagnostics(diags), true))
		for _, d := range diags {
			if d.Severity == checker.SeverityError {
				return fmt.Errorf("type checking failed with at least one error")
			}
		}
	}

	if traceRun {
		fmt.Fprintf(os.Stderr, "[running %s]\n", filename)
	}
	if err := eval.New().Run(prog); err != nil {
		if evalErr, ok := err.(*eval.Error); ok {
			fmt.Fprintln(os.Stderr, diag.Render(filename, input, diag.FromEvalError(evalErr), true))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return fmt.Errorf("execution failed")
	}
	return nil
}
