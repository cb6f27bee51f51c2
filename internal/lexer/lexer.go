package lexer

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"axiomlang/internal/diag"
	"axiomlang/internal/source"
)

// Scanner turns a source file into tokens on demand.
// Once it has returned TokenEOF it keeps returning TokenEOF.
type Scanner struct {
	file  *source.File
	input string
	pos   int
	done  bool
}

func NewScanner(file *source.File) *Scanner {
	return &Scanner{file: file, input: file.Input}
}

// Lex scans the whole file. The last token is always TokenEOF.
func Lex(file *source.File) ([]Token, *diag.Diagnostic) {
	sc := NewScanner(file)
	var toks []Token
	for {
		tok, d := sc.Next()
		if d != nil {
			return toks, d
		}
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			return toks, nil
		}
	}
}

// Next returns the next token, or a lex diagnostic for input that starts no token.
func (sc *Scanner) Next() (Token, *diag.Diagnostic) {
	sc.skipSpaceAndComments()
	start := sc.pos
	if sc.done || sc.pos >= len(sc.input) {
		sc.done = true
		return sc.token(TokenEOF, "", start), nil
	}
	ch := sc.input[sc.pos]
	switch {
	case isDigit(ch):
		return sc.lexInt()
	case isIdentStart(sc.peekRune()):
		return sc.lexIdentOrKeyword(), nil
	}
	sc.pos++
	switch ch {
	case '+':
		return sc.token(TokenPlus, "+", start), nil
	case '-':
		return sc.token(TokenMinus, "-", start), nil
	case '*':
		return sc.token(TokenStar, "*", start), nil
	case '/':
		return sc.token(TokenSlash, "/", start), nil
	case '=':
		return sc.token(TokenEq, "=", start), nil
	}
	sc.pos = start
	r, size := utf8.DecodeRuneInString(sc.input[sc.pos:])
	span := source.Span{File: sc.file, Start: start, End: start + size}
	_, line, col := span.LocStart()
	return Token{}, diag.At(diag.LexError, span, "Unexpected Character",
		fmt.Sprintf("unexpected character %q at %d:%d", r, line, col)).
		WithHelp("Axiom accepts integers, identifiers, `let` and the operators + - * / =.")
}

func (sc *Scanner) token(k Kind, lex string, start int) Token {
	return Token{Kind: k, Lexeme: lex, Span: source.Span{File: sc.file, Start: start, End: sc.pos}}
}

func (sc *Scanner) peekRune() rune {
	r, _ := utf8.DecodeRuneInString(sc.input[sc.pos:])
	return r
}

func (sc *Scanner) skipSpaceAndComments() {
	for sc.pos < len(sc.input) {
		ch := sc.input[sc.pos]
		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' {
			sc.pos++
			continue
		}
		// line comment
		if ch == '#' {
			for sc.pos < len(sc.input) && sc.input[sc.pos] != '\n' {
				sc.pos++
			}
			continue
		}
		return
	}
}

func (sc *Scanner) lexIdentOrKeyword() Token {
	start := sc.pos
	for sc.pos < len(sc.input) {
		r, size := utf8.DecodeRuneInString(sc.input[sc.pos:])
		if !isIdentContinue(r) {
			break
		}
		sc.pos += size
	}
	lex := sc.input[start:sc.pos]
	if lex == "let" {
		return sc.token(TokenLet, lex, start)
	}
	return sc.token(TokenIdent, lex, start)
}

func (sc *Scanner) lexInt() (Token, *diag.Diagnostic) {
	start := sc.pos
	for sc.pos < len(sc.input) && isDigit(sc.input[sc.pos]) {
		sc.pos++
	}
	tok := sc.token(TokenInt, sc.input[start:sc.pos], start)
	n, err := strconv.ParseInt(tok.Lexeme, 10, 64)
	if err != nil {
		return Token{}, diag.At(diag.LexError, tok.Span, "Integer Literal Overflow",
			fmt.Sprintf("integer literal %s does not fit in a 64-bit signed integer", tok.Lexeme)).
			WithHelp("Integer literals must be at most 9223372036854775807.")
	}
	tok.Value = n
	return tok, nil
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}
