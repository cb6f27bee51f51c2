package source

import (
	"sort"
	"unicode/utf8"
)

// File is one Axiom source text together with the offsets of its line starts.
type File struct {
	Name        string
	Input       string
	lineOffsets []int
}

func NewFile(name string, input string) *File {
	f := &File{Name: name, Input: input}
	f.lineOffsets = []int{0}
	for i := 0; i < len(input); i++ {
		if input[i] == '\n' {
			f.lineOffsets = append(f.lineOffsets, i+1)
		}
	}
	return f
}

// LineCol returns the 1-based line and column of a byte offset.
// Columns count runes, so a multi-byte character occupies one column.
func (f *File) LineCol(off int) (int, int) {
	if off < 0 {
		off = 0
	}
	if off > len(f.Input) {
		off = len(f.Input)
	}
	i := sort.Search(len(f.lineOffsets), func(i int) bool { return f.lineOffsets[i] > off }) - 1
	if i < 0 {
		i = 0
	}
	col := 1
	for pos := f.lineOffsets[i]; pos < off; {
		_, sz := utf8.DecodeRuneInString(f.Input[pos:])
		if sz <= 0 {
			sz = 1
		}
		if pos+sz > off {
			break
		}
		col++
		pos += sz
	}
	return i + 1, col
}

// Lines reports how many lines the file has.
func (f *File) Lines() int { return len(f.lineOffsets) }

// Span is a half-open byte range [Start, End) in File.
type Span struct {
	File       *File
	Start, End int
}

func (s Span) LocStart() (filename string, line int, col int) {
	if s.File == nil {
		return "", 0, 0
	}
	line, col = s.File.LineCol(s.Start)
	return s.File.Name, line, col
}

// Text returns the source text covered by the span.
func (s Span) Text() string {
	if s.File == nil || s.Start < 0 || s.End > len(s.File.Input) || s.Start > s.End {
		return ""
	}
	return s.File.Input[s.Start:s.End]
}

// Join returns the smallest span covering both a and b.
// A span without a file yields the other one unchanged.
func Join(a, b Span) Span {
	if a.File == nil {
		return b
	}
	if b.File == nil {
		return a
	}
	start := a.Start
	if b.Start < start {
		start = b.Start
	}
	end := a.End
	if b.End > end {
		end = b.End
	}
	return Span{File: a.File, Start: start, End: end}
}
