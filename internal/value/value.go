// Package value implements Devin's runtime values and the shared heap: a
// cell-based environment where a "ref" binding reuses the caller's cell
// and a by-value binding allocates a fresh one, and arrays as
// pointer-identity heap records so sharing and mutation-through-aliasing
// fall directly out of Go's own pointer and GC semantics.
package value

import (
	"math/big"
	"strings"

	"github.com/devin-lang/devin/internal/types"
)

// Value is any runtime value Devin's evaluator produces.
type Value interface {
	Type() types.Type
	String() string
}

// Int is an unbounded integer.
type Int struct {
	V *big.Int
}

func NewInt(v int64) *Int       { return &Int{V: big.NewInt(v)} }
func (i *Int) Type() types.Type { return types.Int }
func (i *Int) String() string   { return i.V.String() }

// Float is an exact rational.
type Float struct {
	V *big.Rat
}

func (f *Float) Type() types.Type { return types.Float }

// String renders a terminating decimal when the reduced denominator has
// only 2 and 5 as prime factors; otherwise it falls back to a fixed
// number of decimal digits with a trailing ellipsis, per the spec's
// "the core does not require a specific repeating-decimal notation".
func (f *Float) String() string {
	denom := new(big.Int).Set(f.V.Denom())
	digits := 0
	two, five := big.NewInt(2), big.NewInt(5)
	for denom.Cmp(big.NewInt(1)) != 0 {
		if new(big.Int).Mod(denom, two).Sign() == 0 {
			denom.Div(denom, two)
		} else if new(big.Int).Mod(denom, five).Sign() == 0 {
			denom.Div(denom, five)
		} else {
			return strings.TrimRight(strings.TrimRight(f.V.FloatString(20), "0"), ".") + "..."
		}
		digits++
	}
	if digits == 0 {
		digits = 1
	}
	return f.V.FloatString(digits)
}

// Bool is a boolean.
type Bool struct {
	V bool
}

func (b *Bool) Type() types.Type { return types.Bool }
func (b *Bool) String() string {
	if b.V {
		return "true"
	}
	return "false"
}

// Unit is the sole value of type Unit, returned by functions with no
// declared return type.
type Unit struct{}

var TheUnit = &Unit{}

func (Unit) Type() types.Type { return types.Unit }
func (Unit) String() string   { return "()" }

// Cell is a single heap-allocated storage slot. A "ref" parameter binding
// reuses the caller's Cell pointer directly; a by-value binding allocates
// a new Cell holding a copy of the argument.
type Cell struct {
	V Value
}

func NewCell(v Value) *Cell { return &Cell{V: v} }

// Array is a heap record: Devin arrays are reference types identified by
// Go pointer identity, so a shared "aid" is simply a shared *Array. Each
// element lives in its own *Cell rather than a bare Value slot, so a
// "ref" parameter can alias a single array element exactly the same way
// it aliases a whole variable — indexing and variable lookup both bottom
// out in a Cell.
type Array struct {
	Elem  types.Type
	Items []*Cell
}

// NewArray wraps each of items in its own Cell.
func NewArray(elem types.Type, items []Value) *Array {
	cells := make([]*Cell, len(items))
	for i, v := range items {
		cells[i] = NewCell(v)
	}
	return &Array{Elem: elem, Items: cells}
}

func (a *Array) Type() types.Type { return types.Array{Elem: a.Elem} }
func (a *Array) String() string {
	var parts []string
	for _, it := range a.Items {
		parts = append(parts, it.V.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ValueType derives a Value's runtime type, used by the evaluator for
// overload resolution the same way the checker resolves it statically.
func ValueType(v Value) types.Type {
	return v.Type()
}

// Equal implements Devin's "==": element-wise deep equality for arrays
// (so equal content at distinct addresses compares equal, and a shared
// address is trivially equal), structural equality otherwise.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case *Int:
		bv, ok := b.(*Int)
		return ok && av.V.Cmp(bv.V) == 0
	case *Float:
		bv, ok := b.(*Float)
		return ok && av.V.Cmp(bv.V) == 0
	case *Bool:
		bv, ok := b.(*Bool)
		return ok && av.V == bv.V
	case *Unit:
		_, ok := b.(*Unit)
		return ok
	case *Array:
		bv, ok := b.(*Array)
		if !ok {
			return false
		}
		if av == bv {
			return true
		}
		if len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i].V, bv.Items[i].V) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// CopyDeep clones v's structure. Scalars are immutable in this
// interpreter's usage (arithmetic always allocates a fresh result rather
// than mutating an operand), so only Array needs an actual recursive
// clone; this backs the spec's chosen "var a2 = a1 deep-copies the array"
// semantics, distinct from the pointer-sharing that ref and by-value
// function parameters still use.
func CopyDeep(v Value) Value {
	arr, ok := v.(*Array)
	if !ok {
		return v
	}
	items := make([]*Cell, len(arr.Items))
	for i, it := range arr.Items {
		items[i] = NewCell(CopyDeep(it.V))
	}
	return &Array{Elem: arr.Elem, Items: items}
}

// Repeat builds a fresh array with n repetitions of a's elements: each
// slot of the result gets its own new Cell (so writing through one
// repeated position never affects another), wrapping the same element
// Value — for arrays-of-arrays this aliases the inner *Array, matching
// the spec's repetition semantics.
func Repeat(a *Array, n int) *Array {
	if n < 0 {
		n = 0
	}
	items := make([]*Cell, 0, len(a.Items)*n)
	for k := 0; k < n; k++ {
		for _, c := range a.Items {
			items = append(items, NewCell(c.V))
		}
	}
	return &Array{Elem: a.Elem, Items: items}
}
