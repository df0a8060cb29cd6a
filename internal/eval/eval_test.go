package eval

import (
	"math/big"
	"testing"

	"github.com/devin-lang/devin/internal/checker"
	"github.com/devin-lang/devin/internal/lexer"
	"github.com/devin-lang/devin/internal/parser"
	"github.com/devin-lang/devin/internal/value"
)

// runSource parses, checks, and runs src, failing the test on any parse or
// check diagnostic. Programs record their result by assigning to a global
// variable named "result", since main() returning Unit gives the evaluator
// itself nothing to hand back to the test.
func runSource(t *testing.T, src string) *Evaluator {
	t.Helper()
	p := parser.New(lexer.New(src))
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	if diags := checker.New().Check(prog); len(diags) != 0 {
		t.Fatalf("unexpected check diagnostics: %v", diags)
	}
	ev := New()
	if err := ev.Run(prog); err != nil {
		t.Fatalf("unexpected evaluation error: %v", err)
	}
	return ev
}

func global(t *testing.T, ev *Evaluator, name string) value.Value {
	t.Helper()
	cell, ok := ev.global.Lookup(name)
	if !ok {
		t.Fatalf("no global variable %q", name)
	}
	return cell.V
}

func TestRunFactorial(t *testing.T) {
	ev := runSource(t, `
		var result: Int = 0;
		def fact(n: Int): Int {
			if n <= 1 { return 1; }
			return n * fact(n - 1);
		}
		def main() {
			result = fact(6);
		}
	`)
	got := global(t, ev, "result").(*value.Int).V.Int64()
	if got != 720 {
		t.Fatalf("fact(6) = %d, want 720", got)
	}
}

func TestRunMutualRecursion(t *testing.T) {
	ev := runSource(t, `
		var result: Bool = false;
		def isEven(n: Int): Bool {
			if n == 0 { return true; }
			return isOdd(n - 1);
		}
		def isOdd(n: Int): Bool {
			if n == 0 { return false; }
			return isEven(n - 1);
		}
		def main() {
			result = isEven(10);
		}
	`)
	if !global(t, ev, "result").(*value.Bool).V {
		t.Fatalf("expected isEven(10) to be true")
	}
}

func TestRunRefParameterMutatesCaller(t *testing.T) {
	ev := runSource(t, `
		var result: Int = 0;
		def increment(ref x: Int) {
			x = x + 1;
		}
		def main() {
			var n: Int = 41;
			increment(n);
			result = n;
		}
	`)
	got := global(t, ev, "result").(*value.Int).V.Int64()
	if got != 42 {
		t.Fatalf("result = %d, want 42", got)
	}
}

func TestRunRefAliasesArrayElement(t *testing.T) {
	ev := runSource(t, `
		var result: Int = 0;
		def zero(ref x: Int) {
			x = 0;
		}
		def main() {
			var xs: Array[Int] = [1, 2, 3];
			zero(xs[1]);
			result = xs[1];
		}
	`)
	got := global(t, ev, "result").(*value.Int).V.Int64()
	if got != 0 {
		t.Fatalf("result = %d, want 0", got)
	}
}

func TestRunArrayValueParameterSharesBackingStorage(t *testing.T) {
	ev := runSource(t, `
		var result: Int = 0;
		def clobber(xs: Array[Int]) {
			xs[0] = 99;
		}
		def main() {
			var a: Array[Int] = [1, 2, 3];
			clobber(a);
			result = a[0];
		}
	`)
	got := global(t, ev, "result").(*value.Int).V.Int64()
	if got != 99 {
		t.Fatalf("result = %d, want 99 (a by-value array parameter still shares the caller's backing *Array)", got)
	}
}

func TestRunVariableAssignmentDeepCopiesArray(t *testing.T) {
	ev := runSource(t, `
		var result: Int = 0;
		def main() {
			var a: Array[Int] = [1, 2, 3];
			var b: Array[Int] = a;
			b[0] = 99;
			result = a[0];
		}
	`)
	got := global(t, ev, "result").(*value.Int).V.Int64()
	if got != 1 {
		t.Fatalf("result = %d, want 1 (var b = a must deep-copy)", got)
	}
}

func TestRunArrayRepetition(t *testing.T) {
	ev := runSource(t, `
		var result: Int = 0;
		def main() {
			var a: Array[Int] = [7] * 3;
			a[1] = 1;
			result = a[0] + a[1] + a[2];
		}
	`)
	got := global(t, ev, "result").(*value.Int).V.Int64()
	if got != 15 {
		t.Fatalf("result = %d, want 15 (7 + 1 + 7)", got)
	}
}

func TestRunDivisionByZero(t *testing.T) {
	ev := New()
	p := parser.New(lexer.New(`
		def main() {
			var z: Int = 0;
			var x: Int = 1 / z;
		}
	`))
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	if diags := checker.New().Check(prog); len(diags) != 0 {
		t.Fatalf("unexpected check diagnostics: %v", diags)
	}
	err := ev.Run(prog)
	if err == nil {
		t.Fatalf("expected a division-by-zero error")
	}
	evalErr, ok := err.(*Error)
	if !ok || evalErr.Kind != DivisionByZero {
		t.Fatalf("err = %v, want a DivisionByZero eval.Error", err)
	}
}

func TestRunIndexOutOfBounds(t *testing.T) {
	p := parser.New(lexer.New(`
		def main() {
			var a: Array[Int] = [1, 2];
			var x: Int = a[5];
		}
	`))
	prog := p.ParseProgram()
	checker.New().Check(prog)
	err := New().Run(prog)
	evalErr, ok := err.(*Error)
	if !ok || evalErr.Kind != IndexOutOfBounds {
		t.Fatalf("err = %v, want IndexOutOfBounds", err)
	}
}

func TestRunAssertionFailure(t *testing.T) {
	p := parser.New(lexer.New(`
		def main() {
			assert 1 == 2;
		}
	`))
	prog := p.ParseProgram()
	checker.New().Check(prog)
	err := New().Run(prog)
	evalErr, ok := err.(*Error)
	if !ok || evalErr.Kind != AssertionFailure {
		t.Fatalf("err = %v, want AssertionFailure", err)
	}
}

func TestRunNoMain(t *testing.T) {
	p := parser.New(lexer.New(`var x: Int = 1;`))
	prog := p.ParseProgram()
	checker.New().Check(prog)
	err := New().Run(prog)
	evalErr, ok := err.(*Error)
	if !ok || evalErr.Kind != NoMain {
		t.Fatalf("err = %v, want NoMain", err)
	}
}

func TestRunStackOverflow(t *testing.T) {
	p := parser.New(lexer.New(`
		def loop(n: Int): Int {
			return loop(n + 1);
		}
		def main() {
			var x: Int = loop(0);
		}
	`))
	prog := p.ParseProgram()
	checker.New().Check(prog)
	err := New().Run(prog)
	evalErr, ok := err.(*Error)
	if !ok || evalErr.Kind != StackOverflow {
		t.Fatalf("err = %v, want StackOverflow", err)
	}
}

func TestRunArrayEqualityIsDeep(t *testing.T) {
	ev := runSource(t, `
		var result: Bool = false;
		def main() {
			var a: Array[Int] = [1, 2, 3];
			var b: Array[Int] = [1, 2, 3];
			result = a == b;
		}
	`)
	if !global(t, ev, "result").(*value.Bool).V {
		t.Fatalf("expected structurally equal arrays to compare equal")
	}
}

func TestRunFloatArithmeticIsExact(t *testing.T) {
	ev := runSource(t, `
		var result: Float = 0.0;
		def main() {
			result = 1.0 / 3.0 * 3.0;
		}
	`)
	got := global(t, ev, "result").(*value.Float)
	want := big.NewRat(1, 1)
	if got.V.Cmp(want) != 0 {
		t.Fatalf("1.0/3.0*3.0 = %s, want exactly 1 (exact rational arithmetic)", got.V)
	}
}
