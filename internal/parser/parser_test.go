package parser

import (
	"testing"

	"github.com/devin-lang/devin/internal/ast"
	"github.com/devin-lang/devin/internal/lexer"
	"github.com/devin-lang/devin/internal/token"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(lexer.New(src))
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, p.Errors())
	}
	return prog
}

func TestParseVariableDecl(t *testing.T) {
	prog := parseProgram(t, "var x = 1;")
	if len(prog.Decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(prog.Decls))
	}
	v, ok := prog.Decls[0].(*ast.VariableDecl)
	if !ok {
		t.Fatalf("expected *ast.VariableDecl, got %T", prog.Decls[0])
	}
	if v.Name != "x" {
		t.Errorf("Name = %q, want x", v.Name)
	}
	if v.Annotation != nil {
		t.Errorf("expected no annotation, got %v", v.Annotation)
	}
	if _, ok := v.Init.(*ast.IntegerLit); !ok {
		t.Errorf("Init = %T, want *ast.IntegerLit", v.Init)
	}
}

func TestParseVariableDeclWithAnnotation(t *testing.T) {
	prog := parseProgram(t, "var xs: Array[Int] = [1, 2, 3];")
	v := prog.Decls[0].(*ast.VariableDecl)
	arr, ok := v.Annotation.(*ast.ArrayType)
	if !ok {
		t.Fatalf("Annotation = %T, want *ast.ArrayType", v.Annotation)
	}
	named, ok := arr.Elem.(*ast.NamedType)
	if !ok || named.Name != "Int" {
		t.Fatalf("Elem = %#v, want NamedType{Int}", arr.Elem)
	}
	lit, ok := v.Init.(*ast.ArrayLit)
	if !ok || len(lit.Elements) != 3 {
		t.Fatalf("Init = %#v, want 3-element ArrayLit", v.Init)
	}
}

func TestParseFunctionDecl(t *testing.T) {
	prog := parseProgram(t, `def add(a: Int, ref b: Int): Int {
		return a + b;
	}`)
	fn := prog.Decls[0].(*ast.FunctionDecl)
	if fn.Name != "add" {
		t.Errorf("Name = %q, want add", fn.Name)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(fn.Params))
	}
	if fn.Params[0].ByRef {
		t.Errorf("param 0 should not be ref")
	}
	if !fn.Params[1].ByRef {
		t.Errorf("param 1 should be ref")
	}
	if fn.ReturnType == nil || fn.ReturnType.String() != "Int" {
		t.Errorf("ReturnType = %v, want Int", fn.ReturnType)
	}
	if len(fn.Body.Items) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(fn.Body.Items))
	}
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3;", "(1 + (2 * 3))"},
		{"1 * 2 + 3;", "((1 * 2) + 3)"},
		{"1 < 2 and 3 < 4;", "((1 < 2) and (3 < 4))"},
		{"a == b or c;", "((a == b) or c)"},
		{"1 - 2 - 3;", "((1 - 2) - 3)"},
		{"a[0] + 1;", "(a[0] + 1)"},
		{"-1 + 2;", "(-1 + 2)"},
		{"not a and b;", "(not a and b)"},
		{"len a + 1;", "(len a + 1)"},
	}
	for _, tt := range tests {
		prog := parseProgram(t, "def f() { "+tt.src+" }")
		fn := prog.Decls[0].(*ast.FunctionDecl)
		stmt := fn.Body.Items[0].(*ast.ExprStmt)
		if got := stmt.X.String(); got != tt.want {
			t.Errorf("%q: got %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestParseAssignment(t *testing.T) {
	prog := parseProgram(t, "def f() { x = x + 1; a[0] = 2; }")
	fn := prog.Decls[0].(*ast.FunctionDecl)

	s0 := fn.Body.Items[0].(*ast.ExprStmt)
	assign0, ok := s0.X.(*ast.Assign)
	if !ok {
		t.Fatalf("stmt 0 = %T, want *ast.Assign", s0.X)
	}
	if assign0.Op != token.ASSIGN {
		t.Errorf("Op = %v, want ASSIGN", assign0.Op)
	}

	s1 := fn.Body.Items[1].(*ast.ExprStmt)
	assign1 := s1.X.(*ast.Assign)
	if _, ok := assign1.Target.(*ast.Access); !ok {
		t.Errorf("Target = %T, want *ast.Access", assign1.Target)
	}
}

func TestParseCompoundAssignment(t *testing.T) {
	prog := parseProgram(t, "def f() { x += 1; }")
	fn := prog.Decls[0].(*ast.FunctionDecl)
	stmt := fn.Body.Items[0].(*ast.ExprStmt)
	assign := stmt.X.(*ast.Assign)
	if assign.Op != token.PLUS_ASSIGN {
		t.Errorf("Op = %v, want PLUS_ASSIGN", assign.Op)
	}
}

func TestParseIfElseAttachesToNearestIf(t *testing.T) {
	prog := parseProgram(t, `def f() {
		if a
			if b { return 1; }
			else { return 2; }
	}`)
	fn := prog.Decls[0].(*ast.FunctionDecl)
	outer := fn.Body.Items[0].(*ast.If)
	inner, ok := outer.Then.(*ast.If)
	if !ok {
		t.Fatalf("outer.Then = %T, want *ast.If", outer.Then)
	}
	if inner.Else == nil {
		t.Fatalf("inner if should have captured the else clause")
	}
	if outer.Else != nil {
		t.Errorf("outer if should have no else clause of its own")
	}
}

func TestParseWhileAndDoWhile(t *testing.T) {
	prog := parseProgram(t, `def f() {
		while x < 10 { x += 1; }
		do { x -= 1; } while x > 0;
	}`)
	fn := prog.Decls[0].(*ast.FunctionDecl)
	if _, ok := fn.Body.Items[0].(*ast.While); !ok {
		t.Errorf("stmt 0 = %T, want *ast.While", fn.Body.Items[0])
	}
	if _, ok := fn.Body.Items[1].(*ast.DoWhile); !ok {
		t.Errorf("stmt 1 = %T, want *ast.DoWhile", fn.Body.Items[1])
	}
}

func TestParseReturnBareAndWithValue(t *testing.T) {
	prog := parseProgram(t, `def f() {
		return;
	}
	def g() {
		return 1;
	}`)
	f := prog.Decls[0].(*ast.FunctionDecl)
	ret := f.Body.Items[0].(*ast.Return)
	if ret.Value != nil {
		t.Errorf("expected bare return, got %v", ret.Value)
	}
	g := prog.Decls[1].(*ast.FunctionDecl)
	ret2 := g.Body.Items[0].(*ast.Return)
	if ret2.Value == nil {
		t.Errorf("expected a return value")
	}
}

func TestParseAssertStatement(t *testing.T) {
	prog := parseProgram(t, "def f() { assert x > 0; }")
	fn := prog.Decls[0].(*ast.FunctionDecl)
	if _, ok := fn.Body.Items[0].(*ast.Assert); !ok {
		t.Errorf("stmt 0 = %T, want *ast.Assert", fn.Body.Items[0])
	}
}

func TestParseNestedLocalDeclarations(t *testing.T) {
	prog := parseProgram(t, `def f() {
		var x = 1;
		def g(): Int { return x; }
		return g();
	}`)
	fn := prog.Decls[0].(*ast.FunctionDecl)
	if _, ok := fn.Body.Items[0].(*ast.DeclStmt); !ok {
		t.Errorf("stmt 0 = %T, want *ast.DeclStmt", fn.Body.Items[0])
	}
	ds := fn.Body.Items[1].(*ast.DeclStmt)
	if _, ok := ds.Decl.(*ast.FunctionDecl); !ok {
		t.Errorf("nested decl = %T, want *ast.FunctionDecl", ds.Decl)
	}
}

func TestParseCallVsVariable(t *testing.T) {
	prog := parseProgram(t, "def f() { x; f(); f(1, 2); }")
	fn := prog.Decls[0].(*ast.FunctionDecl)

	s0 := fn.Body.Items[0].(*ast.ExprStmt)
	if _, ok := s0.X.(*ast.Variable); !ok {
		t.Errorf("stmt 0 = %T, want *ast.Variable", s0.X)
	}

	s1 := fn.Body.Items[1].(*ast.ExprStmt)
	call1, ok := s1.X.(*ast.Call)
	if !ok || len(call1.Args) != 0 {
		t.Errorf("stmt 1 = %#v, want 0-arg call", s1.X)
	}

	s2 := fn.Body.Items[2].(*ast.ExprStmt)
	call2 := s2.X.(*ast.Call)
	if len(call2.Args) != 2 {
		t.Errorf("expected 2 args, got %d", len(call2.Args))
	}
}

func TestParseRationalLiteral(t *testing.T) {
	prog := parseProgram(t, "var x = 1.5;")
	v := prog.Decls[0].(*ast.VariableDecl)
	lit, ok := v.Init.(*ast.RationalLit)
	if !ok {
		t.Fatalf("Init = %T, want *ast.RationalLit", v.Init)
	}
	if lit.Value.RatString() != "3/2" {
		t.Errorf("Value = %s, want 3/2", lit.Value.RatString())
	}
}

func TestParseBooleanLiterals(t *testing.T) {
	prog := parseProgram(t, "var a = true; var b = false;")
	av := prog.Decls[0].(*ast.VariableDecl).Init.(*ast.BooleanLit)
	bv := prog.Decls[1].(*ast.VariableDecl).Init.(*ast.BooleanLit)
	if !av.Value || bv.Value {
		t.Errorf("a.Value=%v b.Value=%v, want true/false", av.Value, bv.Value)
	}
}

func TestParseErrorOnMismatch(t *testing.T) {
	p := New(lexer.New("var x = ;"))
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatalf("expected at least one parse error")
	}
	if !p.Errors()[0].Fatal {
		t.Errorf("expected a fatal error")
	}
}

func TestSpansCoverWholeProgram(t *testing.T) {
	prog := parseProgram(t, "var x = 1;")
	span := prog.Span()
	if span.Start.Offset != 0 {
		t.Errorf("Start.Offset = %d, want 0", span.Start.Offset)
	}
	if span.End.Offset != 10 {
		t.Errorf("End.Offset = %d, want 10", span.End.Offset)
	}
}
