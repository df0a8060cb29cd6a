package parser

import (
	"github.com/devin-lang/devin/internal/ast"
	"github.com/devin-lang/devin/internal/token"
)

// parseDeclaration dispatches on the leading keyword: "var" vs "def"
// distinguishes a variable declaration from a function declaration.
func (p *Parser) parseDeclaration() ast.Declaration {
	switch p.curTok.Type {
	case token.VAR:
		return p.parseVariableDecl()
	case token.DEF:
		return p.parseFunctionDecl()
	default:
		p.fatalf(p.curTok.Span.Start, []string{"var", "def"},
			"expected a declaration, got %s (%q)", p.curTok.Type, p.curTok.Literal)
		return nil
	}
}

func (p *Parser) parseVariableDecl() *ast.VariableDecl {
	start := p.curTok.Span.Start
	p.nextToken() // consume "var"

	nameTok := p.curTok
	if !p.expect(token.IDENT) {
		return nil
	}

	var annotation ast.TypeExpr
	if p.curIs(token.COLON) {
		p.nextToken()
		annotation = p.parseTypeAnnotation()
	}

	if !p.expect(token.ASSIGN) {
		return nil
	}

	init := p.parseExpression()
	end := p.curTok.Span.End
	if !p.expect(token.SEMICOLON) {
		return nil
	}

	return &ast.VariableDecl{
		NodeInfo:   ast.NodeInfo{At: token.Span{Start: start, End: end}},
		Name:       nameTok.Literal,
		NameSpan:   nameTok.Span,
		Annotation: annotation,
		Init:       init,
	}
}

func (p *Parser) parseFunctionDecl() *ast.FunctionDecl {
	start := p.curTok.Span.Start
	p.nextToken() // consume "def"

	nameTok := p.curTok
	if !p.expect(token.IDENT) {
		return nil
	}

	if !p.expect(token.LPAREN) {
		return nil
	}
	params := p.parseParameterList()

	var retType ast.TypeExpr
	if p.curIs(token.COLON) {
		p.nextToken()
		retType = p.parseTypeAnnotation()
	}

	body := p.parseBlock()
	if body == nil {
		return nil
	}

	return &ast.FunctionDecl{
		NodeInfo:   ast.NodeInfo{At: token.Span{Start: start, End: body.Span().End}},
		Name:       nameTok.Literal,
		NameSpan:   nameTok.Span,
		Params:     params,
		ReturnType: retType,
		Body:       body,
	}
}

func (p *Parser) parseParameterList() []*ast.Parameter {
	var params []*ast.Parameter
	if p.curIs(token.RPAREN) {
		p.nextToken()
		return params
	}
	for {
		params = append(params, p.parseParameter())
		if p.curIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	return params
}

func (p *Parser) parseParameter() *ast.Parameter {
	byRef := false
	if p.curIs(token.REF) {
		byRef = true
		p.nextToken()
	}
	nameTok := p.curTok
	p.expect(token.IDENT)

	var annotation ast.TypeExpr
	if p.curIs(token.COLON) {
		p.nextToken()
		annotation = p.parseTypeAnnotation()
	}

	return &ast.Parameter{
		Name:       nameTok.Literal,
		NameSpan:   nameTok.Span,
		ByRef:      byRef,
		Annotation: annotation,
	}
}

// parseTypeAnnotation parses "Array[T]" or a bare name. Type names are
// ordinary identifiers — the spec does not reserve "Array", "Int", etc.
func (p *Parser) parseTypeAnnotation() ast.TypeExpr {
	nameTok := p.curTok
	if !p.expect(token.IDENT) {
		return &ast.NamedType{NodeInfo: ast.NodeInfo{At: nameTok.Span}, Name: nameTok.Literal}
	}
	if nameTok.Literal == "Array" && p.curIs(token.LBRACK) {
		p.nextToken()
		elem := p.parseTypeAnnotation()
		end := p.curTok.Span.End
		p.expect(token.RBRACK)
		return &ast.ArrayType{NodeInfo: ast.NodeInfo{At: token.Span{Start: nameTok.Span.Start, End: end}}, Elem: elem}
	}
	return &ast.NamedType{NodeInfo: ast.NodeInfo{At: nameTok.Span}, Name: nameTok.Literal}
}
