package value

import (
	"math/big"
	"testing"

	"github.com/devin-lang/devin/internal/types"
)

func TestFloatStringTerminating(t *testing.T) {
	f := &Float{V: big.NewRat(3, 2)}
	if got := f.String(); got != "1.5" {
		t.Errorf("String() = %q, want 1.5", got)
	}
}

func TestFloatStringRepeating(t *testing.T) {
	f := &Float{V: big.NewRat(1, 3)}
	got := f.String()
	if got[len(got)-3:] != "..." {
		t.Errorf("String() = %q, want a trailing ellipsis for a repeating decimal", got)
	}
}

func TestArrayEqualityAcrossAllocations(t *testing.T) {
	a := NewArray(types.Int, []Value{NewInt(1), NewInt(2), NewInt(3)})
	b := NewArray(types.Int, []Value{NewInt(1), NewInt(2), NewInt(3)})
	if !Equal(a, b) {
		t.Fatalf("expected distinct arrays with equal content to be Equal")
	}
	a.Items[0].V = NewInt(99)
	if Equal(a, b) {
		t.Fatalf("expected mutation to break equality")
	}
}

func TestCopyDeepClonesNestedArrays(t *testing.T) {
	inner := NewArray(types.Int, []Value{NewInt(1)})
	outer := NewArray(types.Array{Elem: types.Int}, []Value{inner})

	clone := CopyDeep(outer).(*Array)
	clone.Items[0].V.(*Array).Items[0].V = NewInt(42)

	if Equal(inner, clone.Items[0].V) {
		t.Fatalf("expected deep copy to be independent of the original nested array")
	}
	if inner.Items[0].V.(*Int).V.Int64() != 1 {
		t.Fatalf("original array was mutated through the clone")
	}
}

func TestRepeat(t *testing.T) {
	a := NewArray(types.Int, []Value{NewInt(1), NewInt(2)})
	r := Repeat(a, 3)
	if len(r.Items) != 6 {
		t.Fatalf("len = %d, want 6", len(r.Items))
	}
	if len(Repeat(a, 0).Items) != 0 {
		t.Fatalf("Repeat with n=0 should be empty")
	}
	if len(Repeat(a, -2).Items) != 0 {
		t.Fatalf("Repeat with negative n should be empty, per max(0, n)")
	}
}

func TestCellAliasing(t *testing.T) {
	c := NewCell(NewInt(1))
	alias := c
	alias.V = NewInt(2)
	if c.V.(*Int).V.Int64() != 2 {
		t.Fatalf("expected aliased cell to observe the write")
	}
}
