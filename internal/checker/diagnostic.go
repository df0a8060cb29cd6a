// Package checker implements Devin's two-pass static type checker: Pass 1
// installs function signatures so forward references and mutual recursion
// resolve; Pass 2 walks every declaration's body, synthesizing expression
// types bottom-up and checking them against the operator tables in the
// language spec.
package checker

import "github.com/devin-lang/devin/internal/token"

// Kind is one of the finite set of type-diagnostic tags a Checker can emit.
type Kind string

const (
	UnknownType          Kind = "UnknownType"
	UnknownVariable      Kind = "UnknownVariable"
	UnknownFunction      Kind = "UnknownFunction"
	FunctionRedefinition Kind = "FunctionRedefinition"
	InvalidUnary         Kind = "InvalidUnary"
	InvalidBinary        Kind = "InvalidBinary"
	InvalidAssign        Kind = "InvalidAssign"
	InvalidType          Kind = "InvalidType"
	InvalidReturnType    Kind = "InvalidReturnType"
	MissingReturnValue   Kind = "MissingReturnValue"
	MissingReturnPath    Kind = "MissingReturnPath"
	NoSideEffects        Kind = "NoSideEffects"
)

// Severity distinguishes a hard error from an advisory finding like
// NoSideEffects. Neither aborts checking — the Error type keeps the rest
// of the tree well-formed regardless of severity.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is a single type-checking finding: its kind, severity, the
// span it anchors to, and a human-readable description.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Span     token.Span
	Message  string
}

func severityOf(kind Kind) Severity {
	if kind == NoSideEffects {
		return SeverityWarning
	}
	return SeverityError
}
