package eval

import (
	"fmt"

	"github.com/devin-lang/devin/internal/token"
)

// Kind is one of the finite set of fatal runtime-error tags. Every one
// unwinds the entire evaluation; there is no partial continuation.
type Kind string

const (
	IndexOutOfBounds Kind = "IndexOutOfBounds"
	DivisionByZero   Kind = "DivisionByZero"
	AssertionFailure Kind = "AssertionFailure"
	RefExpectsLValue Kind = "RefExpectsLValue"
	NoMain           Kind = "NoMain"
	MissingReturnVal Kind = "MissingReturnValue"
	StackOverflow    Kind = "StackOverflow"
)

// Error is a fatal runtime failure carrying the span it originated at.
type Error struct {
	Kind    Kind
	Span    token.Span
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(kind Kind, span token.Span, format string, args ...any) *Error {
	return &Error{Kind: kind, Span: span, Message: fmt.Sprintf(format, args...)}
}
