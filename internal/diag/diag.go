package diag

import (
	"fmt"
	"io"
	"strings"

	"axiomlang/internal/source"
)

// Kind classifies a diagnostic by the stage that raised it.
type Kind int

const (
	LexError Kind = iota
	ParseError
	TypeError
	RuntimeError
)

func (k Kind) String() string {
	switch k {
	case LexError:
		return "lex error"
	case ParseError:
		return "parse error"
	case TypeError:
		return "type error"
	case RuntimeError:
		return "runtime error"
	default:
		return "error"
	}
}

type Loc struct {
	Filename string
	Line     int
	Col      int
}

// IsZero reports whether no position was recorded.
func (l Loc) IsZero() bool { return l.Line == 0 }

func (l Loc) String() string {
	if l.Filename == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Col)
	}
	return fmt.Sprintf("%s:%d:%d", l.Filename, l.Line, l.Col)
}

// Diagnostic is the single failure record every stage reports.
// Help is optional; an empty string means there is none.
type Diagnostic struct {
	Kind    Kind
	Title   string
	Message string
	Help    string
	Loc     Loc
}

func New(kind Kind, title, message string) *Diagnostic {
	return &Diagnostic{Kind: kind, Title: title, Message: message}
}

// At builds a diagnostic positioned at the start of span.
func At(kind Kind, span source.Span, title, message string) *Diagnostic {
	d := New(kind, title, message)
	fn, line, col := span.LocStart()
	d.Loc = Loc{Filename: fn, Line: line, Col: col}
	return d
}

// WithHelp returns a copy of d carrying help text.
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	out := *d
	out.Help = help
	return &out
}

func (d *Diagnostic) Error() string {
	var b strings.Builder
	if !d.Loc.IsZero() {
		b.WriteString(d.Loc.String())
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, "%s: %s: %s", d.Kind, d.Title, d.Message)
	return b.String()
}

// Print renders d for a terminal:
//
//	file:line:col: type error: Type Mismatch
//	  → cannot apply `+` to Time and Int
//	  help: ...
func Print(w io.Writer, d *Diagnostic) {
	if d == nil {
		return
	}
	if !d.Loc.IsZero() {
		fmt.Fprintf(w, "%s: ", d.Loc)
	}
	fmt.Fprintf(w, "%s: %s\n", d.Kind, d.Title)
	fmt.Fprintf(w, "  → %s\n", d.Message)
	if d.Help != "" {
		fmt.Fprintf(w, "  help: %s\n", d.Help)
	}
}
