package cmd

import (
	"fmt"
	"io"
	"os"
)

// readSource resolves a subcommand's input: an inline --eval string, a file
// argument, or stdin, in that order of precedence. It returns the source
// text and a display filename ("<eval>"/"<stdin>" for the non-file cases).
func readSource(eval string, args []string) (string, string, error) {
	if eval != "" {
		return eval, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(content), "<stdin>", nil
}
