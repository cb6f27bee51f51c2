package lexer

import "axiomlang/internal/source"

type Kind int

const (
	TokenEOF Kind = iota

	// Literals / identifiers
	TokenIdent
	TokenInt

	// Keywords
	TokenLet

	// Operators
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenEq
)

func (k Kind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenIdent:
		return "identifier"
	case TokenInt:
		return "integer"
	case TokenLet:
		return "`let`"
	case TokenPlus:
		return "`+`"
	case TokenMinus:
		return "`-`"
	case TokenStar:
		return "`*`"
	case TokenSlash:
		return "`/`"
	case TokenEq:
		return "`=`"
	default:
		return "unknown token"
	}
}

// Token is one lexical unit. Value is set only for TokenInt.
type Token struct {
	Kind   Kind
	Lexeme string
	Value  int64
	Span   source.Span
}

func (t Token) Is(k Kind) bool { return t.Kind == k }

// Describe renders the token for "found ..." parts of diagnostics.
func (t Token) Describe() string {
	switch t.Kind {
	case TokenIdent, TokenInt:
		return t.Kind.String() + " `" + t.Lexeme + "`"
	default:
		return t.Kind.String()
	}
}
