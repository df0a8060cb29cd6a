package parser

import (
	"math/big"

	"github.com/devin-lang/devin/internal/ast"
	"github.com/devin-lang/devin/internal/token"
)

// parseExpression enters the precedence chain at its lowest level, per the
// grammar in spec §4.1: logical, equality, relational, additive,
// multiplicative, postfix-index+assignment, primary.
func (p *Parser) parseExpression() ast.Expression {
	return p.parseLogical()
}

func (p *Parser) parseLogical() ast.Expression {
	left := p.parseEquality()
	for p.curIs(token.AND) || p.curIs(token.OR) || p.curIs(token.XOR) {
		op := p.curTok.Type
		p.nextToken()
		right := p.parseEquality()
		left = p.binary(left, op, right)
	}
	return left
}

func (p *Parser) parseEquality() ast.Expression {
	left := p.parseRelational()
	for p.curIs(token.EQ) || p.curIs(token.NOT_EQ) {
		op := p.curTok.Type
		p.nextToken()
		right := p.parseRelational()
		left = p.binary(left, op, right)
	}
	return left
}

func (p *Parser) parseRelational() ast.Expression {
	left := p.parseAdditive()
	for p.curIs(token.LT) || p.curIs(token.LTE) || p.curIs(token.GT) || p.curIs(token.GTE) {
		op := p.curTok.Type
		p.nextToken()
		right := p.parseAdditive()
		left = p.binary(left, op, right)
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseMultiplicative()
	for p.curIs(token.PLUS) || p.curIs(token.MINUS) {
		op := p.curTok.Type
		p.nextToken()
		right := p.parseMultiplicative()
		left = p.binary(left, op, right)
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expression {
	left := p.parsePostfixAssign()
	for p.curIs(token.STAR) || p.curIs(token.SLASH) || p.curIs(token.PERCENT) {
		op := p.curTok.Type
		p.nextToken()
		right := p.parsePostfixAssign()
		left = p.binary(left, op, right)
	}
	return left
}

func (p *Parser) binary(left ast.Expression, op token.Type, right ast.Expression) ast.Expression {
	return &ast.Binary{
		ExprInfo: ast.ExprInfo{At: token.Span{Start: left.Span().Start, End: right.Span().End}},
		Op:       op, Left: left, Right: right,
	}
}

func isAssignOp(tt token.Type) bool {
	switch tt {
	case token.ASSIGN, token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.STAR_ASSIGN, token.SLASH_ASSIGN, token.PERCENT_ASSIGN:
		return true
	default:
		return false
	}
}

// parsePostfixAssign parses a postfix-indexing chain and an optional
// trailing assignment. The parser accepts any expression as the assignment
// target; l-value validity is a type-check-time concern.
func (p *Parser) parsePostfixAssign() ast.Expression {
	target := p.parsePostfix()
	if isAssignOp(p.curTok.Type) {
		op := p.curTok.Type
		p.nextToken()
		value := p.parseExpression()
		return &ast.Assign{
			ExprInfo: ast.ExprInfo{At: token.Span{Start: target.Span().Start, End: value.Span().End}},
			Op:       op, Target: target, Value: value,
		}
	}
	return target
}

func (p *Parser) parsePostfix() ast.Expression {
	x := p.parsePrimary()
	for p.curIs(token.LBRACK) {
		start := x.Span().Start
		p.nextToken()
		idx := p.parseExpression()
		end := p.curTok.Span.End
		p.expect(token.RBRACK)
		x = &ast.Access{ExprInfo: ast.ExprInfo{At: token.Span{Start: start, End: end}}, X: x, Index: idx}
	}
	return x
}

func (p *Parser) parsePrimary() ast.Expression {
	switch p.curTok.Type {
	case token.PLUS, token.MINUS, token.NOT, token.LEN:
		return p.parseUnary()
	case token.INT:
		return p.parseIntegerLit()
	case token.FLOAT:
		return p.parseRationalLit()
	case token.TRUE, token.FALSE:
		return p.parseBooleanLit()
	case token.LBRACK:
		return p.parseArrayLit()
	case token.LPAREN:
		return p.parseParen()
	case token.IDENT:
		return p.parseIdentOrCall()
	default:
		p.fatalf(p.curTok.Span.Start,
			[]string{"expression"},
			"unexpected token %s (%q) in expression", p.curTok.Type, p.curTok.Literal)
		return nil
	}
}

func (p *Parser) parseUnary() ast.Expression {
	start := p.curTok.Span.Start
	op := p.curTok.Type
	p.nextToken()
	x := p.parsePostfix()
	if x == nil {
		return nil
	}
	return &ast.Unary{ExprInfo: ast.ExprInfo{At: token.Span{Start: start, End: x.Span().End}}, Op: op, X: x}
}

func (p *Parser) parseIntegerLit() ast.Expression {
	tok := p.curTok
	v := new(big.Int)
	v.SetString(tok.Literal, 10)
	p.nextToken()
	return &ast.IntegerLit{ExprInfo: ast.ExprInfo{At: tok.Span}, Value: v}
}

func (p *Parser) parseRationalLit() ast.Expression {
	tok := p.curTok
	v := new(big.Rat)
	// tok.Literal is "digits.digits"; big.Rat parses decimal literals directly.
	v.SetString(tok.Literal)
	p.nextToken()
	return &ast.RationalLit{ExprInfo: ast.ExprInfo{At: tok.Span}, Value: v}
}

func (p *Parser) parseBooleanLit() ast.Expression {
	tok := p.curTok
	value := tok.Type == token.TRUE
	p.nextToken()
	return &ast.BooleanLit{ExprInfo: ast.ExprInfo{At: tok.Span}, Value: value}
}

func (p *Parser) parseArrayLit() ast.Expression {
	start := p.curTok.Span.Start
	p.nextToken() // consume "["
	var elems []ast.Expression
	if !p.curIs(token.RBRACK) {
		for {
			elems = append(elems, p.parseExpression())
			if p.curIs(token.COMMA) {
				p.nextToken()
				continue
			}
			break
		}
	}
	end := p.curTok.Span.End
	p.expect(token.RBRACK)
	return &ast.ArrayLit{ExprInfo: ast.ExprInfo{At: token.Span{Start: start, End: end}}, Elements: elems}
}

func (p *Parser) parseParen() ast.Expression {
	start := p.curTok.Span.Start
	p.nextToken() // consume "("
	x := p.parseExpression()
	end := p.curTok.Span.End
	p.expect(token.RPAREN)
	return &ast.Paren{ExprInfo: ast.ExprInfo{At: token.Span{Start: start, End: end}}, X: x}
}

// parseIdentOrCall disambiguates a bare variable from a call by the
// presence of an immediately following "(".
func (p *Parser) parseIdentOrCall() ast.Expression {
	tok := p.curTok
	p.nextToken()
	if !p.curIs(token.LPAREN) {
		return &ast.Variable{ExprInfo: ast.ExprInfo{At: tok.Span}, Name: tok.Literal}
	}
	p.nextToken() // consume "("
	var args []ast.Expression
	if !p.curIs(token.RPAREN) {
		for {
			args = append(args, p.parseExpression())
			if p.curIs(token.COMMA) {
				p.nextToken()
				continue
			}
			break
		}
	}
	end := p.curTok.Span.End
	p.expect(token.RPAREN)
	return &ast.Call{
		ExprInfo:   ast.ExprInfo{At: token.Span{Start: tok.Span.Start, End: end}},
		Callee:     tok.Literal, CalleeSpan: tok.Span, Args: args,
	}
}
