// Package parser implements Devin's recursive-descent, precedence-layered
// parser: a token cursor with one token of lookahead, and one function per
// precedence level, each a left-folding loop over that level's operators.
package parser

import (
	"fmt"

	"github.com/devin-lang/devin/internal/ast"
	"github.com/devin-lang/devin/internal/lexer"
	"github.com/devin-lang/devin/internal/token"
)

// Parser turns a token stream into an ast.Program. It is non-recovering
// per the spec: the first fatal (committed) error aborts parsing and is
// returned alongside whatever partial program was built.
type Parser struct {
	l *lexer.Lexer

	curTok  token.Token
	peekTok token.Token

	errors []*ParseError
}

// New creates a Parser over l and primes the two-token lookahead window.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.l.NextToken()
}

func (p *Parser) curIs(tt token.Type) bool  { return p.curTok.Type == tt }
func (p *Parser) peekIs(tt token.Type) bool { return p.peekTok.Type == tt }

// expect consumes the current token if it matches tt, else records a fatal
// error (a committed, non-recoverable mismatch) and returns false.
func (p *Parser) expect(tt token.Type) bool {
	if p.curIs(tt) {
		p.nextToken()
		return true
	}
	p.fatalf(p.curTok.Span.Start, []string{tt.String()},
		"expected %s, got %s (%q)", tt, p.curTok.Type, p.curTok.Literal)
	return false
}

func (p *Parser) fatalf(pos token.Pos, expected []string, format string, args ...any) {
	p.errors = append(p.errors, &ParseError{
		Pos: pos, Expected: expected, Fatal: true,
		Message: fmt.Sprintf(format, args...),
	})
}

// Errors returns all parse errors accumulated so far.
func (p *Parser) Errors() []*ParseError { return p.errors }

func (p *Parser) fatal() bool {
	for _, e := range p.errors {
		if e.Fatal {
			return true
		}
	}
	return false
}

func (p *Parser) span(start token.Pos) token.Span {
	return token.Span{Start: start, End: p.curTok.Span.Start}
}

// ParseProgram parses a complete Devin source unit: an ordered list of
// top-level declarations.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.curIs(token.EOF) && !p.fatal() {
		decl := p.parseDeclaration()
		if decl == nil {
			break
		}
		prog.Decls = append(prog.Decls, decl)
	}
	return prog
}
