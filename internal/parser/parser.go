package parser

import (
	"fmt"

	"axiomlang/internal/ast"
	"axiomlang/internal/diag"
	"axiomlang/internal/lexer"
	"axiomlang/internal/source"
)

// Parser is a recursive-descent parser with one token of lookahead.
// Tokens are pulled from the scanner as they are consumed.
type Parser struct {
	sc  *lexer.Scanner
	cur lexer.Token
}

func Parse(file *source.File) (*ast.Program, *diag.Diagnostic) {
	p, d := New(lexer.NewScanner(file))
	if d != nil {
		return nil, d
	}
	return p.ParseProgram()
}

// New primes the lookahead token.
func New(sc *lexer.Scanner) (*Parser, *diag.Diagnostic) {
	p := &Parser{sc: sc}
	if d := p.advance(); d != nil {
		return nil, d
	}
	return p, nil
}

// ParseProgram parses statements up to end of input.
// It stops at the first diagnostic and returns no program in that case.
func (p *Parser) ParseProgram() (*ast.Program, *diag.Diagnostic) {
	prog := &ast.Program{}
	for !p.at(lexer.TokenEOF) {
		st, d := p.parseStmt()
		if d != nil {
			return nil, d
		}
		prog.Stmts = append(prog.Stmts, st)
	}
	return prog, nil
}

func (p *Parser) parseStmt() (ast.Stmt, *diag.Diagnostic) {
	if p.at(lexer.TokenLet) {
		return p.parseLet()
	}
	ex, d := p.parseExpr()
	if d != nil {
		return nil, d
	}
	return &ast.ExprStmt{Expr: ex, S: ex.Span()}, nil
}

func (p *Parser) parseLet() (ast.Stmt, *diag.Diagnostic) {
	letTok := p.cur
	if d := p.advance(); d != nil {
		return nil, d
	}
	nameTok := p.cur
	if !nameTok.Is(lexer.TokenIdent) {
		return nil, p.unexpected("binding name after `let`", "Write `let <name> = <expression>`.")
	}
	if d := p.advance(); d != nil {
		return nil, d
	}
	if !p.at(lexer.TokenEq) {
		return nil, p.unexpected(fmt.Sprintf("`=` after `let %s`", nameTok.Lexeme), "A let binding needs `=` followed by its value.")
	}
	if d := p.advance(); d != nil {
		return nil, d
	}
	value, d := p.parseExpr()
	if d != nil {
		return nil, d
	}
	return &ast.LetStmt{Name: nameTok.Lexeme, Value: value, S: source.Join(letTok.Span, value.Span())}, nil
}

func (p *Parser) parseExpr() (ast.Expr, *diag.Diagnostic) { return p.parseAdd() }

func (p *Parser) parseAdd() (ast.Expr, *diag.Diagnostic) {
	left, d := p.parseMul()
	if d != nil {
		return nil, d
	}
	for {
		var op ast.BinOp
		switch p.cur.Kind {
		case lexer.TokenPlus:
			op = ast.OpAdd
		case lexer.TokenMinus:
			op = ast.OpSub
		default:
			return left, nil
		}
		if d := p.advance(); d != nil {
			return nil, d
		}
		right, d := p.parseMul()
		if d != nil {
			return nil, d
		}
		left = binary(op, left, right)
	}
}

func (p *Parser) parseMul() (ast.Expr, *diag.Diagnostic) {
	left, d := p.parsePrimary()
	if d != nil {
		return nil, d
	}
	for {
		var op ast.BinOp
		switch p.cur.Kind {
		case lexer.TokenStar:
			op = ast.OpMul
		case lexer.TokenSlash:
			op = ast.OpDiv
		default:
			return left, nil
		}
		if d := p.advance(); d != nil {
			return nil, d
		}
		right, d := p.parsePrimary()
		if d != nil {
			return nil, d
		}
		left = binary(op, left, right)
	}
}

func (p *Parser) parsePrimary() (ast.Expr, *diag.Diagnostic) {
	tok := p.cur
	var ex ast.Expr
	switch tok.Kind {
	case lexer.TokenInt:
		ex = &ast.IntLit{Value: tok.Value, S: tok.Span}
	case lexer.TokenIdent:
		if tok.Lexeme == "now" {
			ex = &ast.NowExpr{S: tok.Span}
		} else {
			ex = &ast.VarExpr{Name: tok.Lexeme, S: tok.Span}
		}
	default:
		return nil, p.unexpected("an integer, `now` or a variable", "Every operator needs an operand on both sides.")
	}
	if d := p.advance(); d != nil {
		return nil, d
	}
	return ex, nil
}

func binary(op ast.BinOp, left, right ast.Expr) ast.Expr {
	return &ast.BinaryExpr{Op: op, Left: left, Right: right, S: source.Join(left.Span(), right.Span())}
}

// helpers
func (p *Parser) at(k lexer.Kind) bool { return p.cur.Kind == k }

func (p *Parser) advance() *diag.Diagnostic {
	tok, d := p.sc.Next()
	if d != nil {
		return d
	}
	p.cur = tok
	return nil
}

func (p *Parser) unexpected(expected string, help string) *diag.Diagnostic {
	return diag.At(diag.ParseError, p.cur.Span, "Unexpected Token",
		fmt.Sprintf("expected %s, found %s", expected, p.cur.Describe())).WithHelp(help)
}
