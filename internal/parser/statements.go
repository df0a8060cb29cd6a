package parser

import (
	"github.com/devin-lang/devin/internal/ast"
	"github.com/devin-lang/devin/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curTok.Type {
	case token.LBRACE:
		return p.parseBlock()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.DO:
		return p.parseDoWhile()
	case token.RETURN:
		return p.parseReturn()
	case token.ASSERT:
		return p.parseAssert()
	case token.VAR:
		start := p.curTok.Span.Start
		decl := p.parseVariableDecl()
		if decl == nil {
			return nil
		}
		return &ast.DeclStmt{NodeInfo: ast.NodeInfo{At: token.Span{Start: start, End: decl.Span().End}}, Decl: decl}
	case token.DEF:
		start := p.curTok.Span.Start
		decl := p.parseFunctionDecl()
		if decl == nil {
			return nil
		}
		return &ast.DeclStmt{NodeInfo: ast.NodeInfo{At: token.Span{Start: start, End: decl.Span().End}}, Decl: decl}
	default:
		return p.parseExprStmt()
	}
}

// parseBlock parses "{ (declaration | statement)* }".
func (p *Parser) parseBlock() *ast.Block {
	start := p.curTok.Span.Start
	if !p.expect(token.LBRACE) {
		return nil
	}
	var items []ast.Statement
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) && !p.fatal() {
		stmt := p.parseStatement()
		if stmt == nil {
			break
		}
		items = append(items, stmt)
	}
	end := p.curTok.Span.End
	p.expect(token.RBRACE)
	return &ast.Block{NodeInfo: ast.NodeInfo{At: token.Span{Start: start, End: end}}, Items: items}
}

func (p *Parser) parseIf() ast.Statement {
	start := p.curTok.Span.Start
	p.nextToken() // consume "if"
	cond := p.parseExpression()
	then := p.parseStatement()
	if then == nil {
		return nil
	}
	end := then.Span().End
	var elseStmt ast.Statement
	if p.curIs(token.ELSE) {
		p.nextToken()
		elseStmt = p.parseStatement()
		if elseStmt != nil {
			end = elseStmt.Span().End
		}
	}
	return &ast.If{
		NodeInfo: ast.NodeInfo{At: token.Span{Start: start, End: end}},
		Cond:     cond, Then: then, Else: elseStmt,
	}
}

func (p *Parser) parseWhile() ast.Statement {
	start := p.curTok.Span.Start
	p.nextToken() // consume "while"
	cond := p.parseExpression()
	body := p.parseStatement()
	if body == nil {
		return nil
	}
	return &ast.While{
		NodeInfo: ast.NodeInfo{At: token.Span{Start: start, End: body.Span().End}},
		Cond:     cond, Body: body,
	}
}

// parseDoWhile parses "do <stmt> while <expr>;".
func (p *Parser) parseDoWhile() ast.Statement {
	start := p.curTok.Span.Start
	p.nextToken() // consume "do"
	body := p.parseStatement()
	if body == nil {
		return nil
	}
	if !p.expect(token.WHILE) {
		return nil
	}
	cond := p.parseExpression()
	end := p.curTok.Span.End
	if !p.expect(token.SEMICOLON) {
		return nil
	}
	return &ast.DoWhile{
		NodeInfo: ast.NodeInfo{At: token.Span{Start: start, End: end}},
		Body:     body, Cond: cond,
	}
}

func (p *Parser) parseReturn() ast.Statement {
	start := p.curTok.Span.Start
	p.nextToken() // consume "return"
	var value ast.Expression
	if !p.curIs(token.SEMICOLON) {
		value = p.parseExpression()
	}
	end := p.curTok.Span.End
	if !p.expect(token.SEMICOLON) {
		return nil
	}
	return &ast.Return{NodeInfo: ast.NodeInfo{At: token.Span{Start: start, End: end}}, Value: value}
}

func (p *Parser) parseAssert() ast.Statement {
	start := p.curTok.Span.Start
	p.nextToken() // consume "assert"
	x := p.parseExpression()
	end := p.curTok.Span.End
	if !p.expect(token.SEMICOLON) {
		return nil
	}
	return &ast.Assert{NodeInfo: ast.NodeInfo{At: token.Span{Start: start, End: end}}, X: x}
}

func (p *Parser) parseExprStmt() ast.Statement {
	start := p.curTok.Span.Start
	x := p.parseExpression()
	if x == nil {
		return nil
	}
	end := p.curTok.Span.End
	if !p.expect(token.SEMICOLON) {
		return nil
	}
	return &ast.ExprStmt{NodeInfo: ast.NodeInfo{At: token.Span{Start: start, End: end}}, X: x}
}
