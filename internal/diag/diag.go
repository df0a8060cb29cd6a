// Package diag renders Devin's parse errors, type diagnostics, and runtime
// errors as source-annotated text for the CLI: a file:line:column header, the
// offending source line, and a caret pointing at the column. Grounded on
// go-dws's internal/errors package, adapted to Devin's three distinct
// finding sources (parser.ParseError, checker.Diagnostic, eval.Error)
// instead of one unified CompilerError type, since the core packages do not
// import this one — only cmd/devin does.
package diag

import (
	"fmt"
	"strings"

	"github.com/devin-lang/devin/internal/checker"
	"github.com/devin-lang/devin/internal/eval"
	"github.com/devin-lang/devin/internal/parser"
	"github.com/devin-lang/devin/internal/token"
)

// Finding is the common shape every diagnostic source is reduced to before
// rendering.
type Finding struct {
	Kind     string
	Severity string // "error" or "warning"
	Pos      token.Pos
	Message  string
}

// FromParseErrors converts the parser's own error list.
func FromParseErrors(errs []*parser.ParseError) []Finding {
	out := make([]Finding, len(errs))
	for i, e := range errs {
		out[i] = Finding{Kind: "ParseError", Severity: "error", Pos: e.Pos, Message: e.Message}
	}
	return out
}

// FromDiagnostics converts the checker's type diagnostics, preserving each
// one's error/warning severity.
func FromDiagnostics(diags []checker.Diagnostic) []Finding {
	out := make([]Finding, len(diags))
	for i, d := range diags {
		out[i] = Finding{Kind: string(d.Kind), Severity: string(d.Severity), Pos: d.Span.Start, Message: d.Message}
	}
	return out
}

// FromEvalError converts a single fatal runtime error. Runtime errors always
// abort the whole evaluation, so there is never more than one to render.
func FromEvalError(err *eval.Error) []Finding {
	return []Finding{{Kind: string(err.Kind), Severity: "error", Pos: err.Span.Start, Message: err.Message}}
}

// Render formats findings against source, in file if non-empty, one after
// another, with an ANSI caret and bolded message when color is true.
func Render(file, source string, findings []Finding, color bool) string {
	if len(findings) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, f := range findings {
		sb.WriteString(renderOne(file, source, f, color))
		if i < len(findings)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

func renderOne(file, source string, f Finding, color bool) string {
	var sb strings.Builder

	label := "Error"
	if f.Severity == "warning" {
		label = "Warning"
	}
	if file != "" {
		fmt.Fprintf(&sb, "%s [%s] in %s:%d:%d\n", label, f.Kind, file, f.Pos.Line, f.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "%s [%s] at %d:%d\n", label, f.Kind, f.Pos.Line, f.Pos.Column)
	}

	if line := sourceLine(source, f.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", f.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+f.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(f.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
