package cmd

import (
	"fmt"
	"os"

	"github.com/devin-lang/devin/internal/lexer"
	"github.com/devin-lang/devin/internal/token"
	"github.com/spf13/cobra"
)

var (
	lexEval string
	showPos bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Devin file or expression",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
}

func runLex(_ *cobra.Command, args []string) error {
	input, _, err := readSource(lexEval, args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	for {
		tok := l.NextToken()
		printToken(tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return nil
}

func printToken(tok token.Token) {
	out := fmt.Sprintf("%-14s %q", tok.Type, tok.Literal)
	if showPos {
		out += fmt.Sprintf(" @%s", tok.Span.Start)
	}
	fmt.Fprintln(os.Stdout, out)
}
