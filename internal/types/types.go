// Package types implements Devin's static type lattice and the structural
// compatibility relation ("~") used by the checker for annotation checking
// and overload resolution.
package types

import "fmt"

// Type is any member of Devin's type lattice. Concrete kinds are the
// pointer-free value types below; Array and Function compare structurally.
type Type interface {
	Kind() Kind
	String() string
}

// Kind tags the concrete shape of a Type without requiring a type switch
// everywhere a cheap comparison suffices.
type Kind int

const (
	KindUnit Kind = iota
	KindBool
	KindInt
	KindFloat
	KindArray
	KindFunction
	KindUnknown
	KindError
)

type primitive struct {
	kind Kind
	name string
}

func (p primitive) Kind() Kind     { return p.kind }
func (p primitive) String() string { return p.name }

var (
	Unit  Type = primitive{KindUnit, "Unit"}
	Bool  Type = primitive{KindBool, "Bool"}
	Int   Type = primitive{KindInt, "Int"}
	Float Type = primitive{KindFloat, "Float"}
	// Error is the bottom type: introduced on a type error, compatible with
	// everything so a single mistake does not cascade further diagnostics.
	Error Type = primitive{KindError, "Error"}
)

// Array is an ordered sequence type with runtime-variable length.
type Array struct {
	Elem Type
}

func (a Array) Kind() Kind     { return KindArray }
func (a Array) String() string { return fmt.Sprintf("Array[%s]", a.Elem) }

// Function is a callable signature: parameter types in order, then a
// return type.
type Function struct {
	Params []Type
	Return Type
}

func (f Function) Kind() Kind { return KindFunction }
func (f Function) String() string {
	s := "("
	for i, p := range f.Params {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	return s + ") -> " + f.Return.String()
}

// Unknown is an unresolved user-written type name, or the placeholder type
// of an unannotated parameter/return/empty-array-literal. Unknown compares
// compatible with anything, the same as Error, but is tracked separately so
// "UnknownType" diagnostics can distinguish a genuine unresolved name from
// error-taint.
type Unknown struct {
	Name string
}

func (u Unknown) Kind() Kind     { return KindUnknown }
func (u Unknown) String() string { return u.Name }

// Compatible implements "~": reflexive, propagating structurally into Array
// and Function, with Error and Unknown universally compatible so that
// error-tainted or annotation-free expressions never cascade diagnostics.
func Compatible(a, b Type) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Kind() == KindError || b.Kind() == KindError {
		return true
	}
	if a.Kind() == KindUnknown || b.Kind() == KindUnknown {
		return true
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Array:
		bv := b.(Array)
		return Compatible(av.Elem, bv.Elem)
	case Function:
		bv := b.(Function)
		if len(av.Params) != len(bv.Params) {
			return false
		}
		for i := range av.Params {
			if !Compatible(av.Params[i], bv.Params[i]) {
				return false
			}
		}
		return Compatible(av.Return, bv.Return)
	default:
		return true // both primitives of the same kind
	}
}

// CompatibleAll reports whether each pair in as/bs is pointwise compatible;
// used for overload resolution and array-literal element unification.
func CompatibleAll(as, bs []Type) bool {
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if !Compatible(as[i], bs[i]) {
			return false
		}
	}
	return true
}

// IsArithmetic reports whether t is Int or Float.
func IsArithmetic(t Type) bool {
	return t.Kind() == KindInt || t.Kind() == KindFloat
}
