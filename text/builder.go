package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Builder assembles lines from flowing text. Runs of whitespace inside a
// line collapse to a single space.
type Builder struct {
	lines []string
	cur   strings.Builder
	space bool
}

// WriteText adds flowing text to the current line.
func (b *Builder) WriteText(s string) {
	if s == "" {
		return
	}
	if startsWithSpace(s) {
		b.space = true
	}

	for _, word := range strings.Fields(s) {
		if b.space && b.cur.Len() > 0 {
			b.cur.WriteByte(' ')
		}
		b.cur.WriteString(word)
		b.space = true
	}

	if !endsWithSpace(s) {
		b.space = false
	}
}

// WriteRaw adds s to the current line verbatim.
func (b *Builder) WriteRaw(s string) {
	b.cur.WriteString(s)
	b.space = false
}

// Break ends the current line if it holds anything.
func (b *Builder) Break() {
	if b.cur.Len() > 0 {
		b.EndLine()
	}
	b.space = false
}

// EndLine ends the current line, even when it is empty.
func (b *Builder) EndLine() {
	b.lines = append(b.lines, b.cur.String())
	b.cur.Reset()
	b.space = false
}

// Lines returns the finished lines, including any pending one.
func (b *Builder) Lines() []string {
	b.Break()
	return b.lines
}

func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r)
}

func endsWithSpace(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsSpace(r)
}
