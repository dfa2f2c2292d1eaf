// Package text reads key-book text as lines and addresses characters
// within them.
//
// Character positions are counted in runes, not bytes, so a key book with
// accented letters is addressed the same way a reader would count them.
// Lines may be normalized to NFC first so that a precomposed "é" and an
// "e" followed by a combining accent occupy the same single position.
package text

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MaxLineSize is the longest key-book line a LineReader accepts.
const MaxLineSize = 1 << 20

// Normalize returns s in Unicode normalization form C.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// IsMarker reports whether line is a page marker. Any line containing
// marker counts, wherever it appears in the line.
func IsMarker(line, marker string) bool {
	return marker != "" && strings.Contains(line, marker)
}

// Len returns the number of characters in line.
func Len(line string) int {
	return utf8.RuneCountInString(line)
}

// CharAt returns the character at zero-based position i of line.
func CharAt(line string, i int) (rune, bool) {
	if i < 0 {
		return utf8.RuneError, false
	}
	n := 0
	for _, r := range line {
		if n == i {
			return r, true
		}
		n++
	}
	return utf8.RuneError, false
}

// IndexRune returns the zero-based character position of the first c in
// line, or -1.
func IndexRune(line string, c rune) int {
	n := 0
	for _, r := range line {
		if r == c {
			return n
		}
		n++
	}
	return -1
}

// A LineReader reads text one line at a time. Line terminators, including
// a trailing carriage return, are not part of a line.
type LineReader struct {
	s         *bufio.Scanner
	normalize bool
	line      string
}

// NewLineReader returns a LineReader reading from r. When normalize is
// set every line is returned in NFC.
func NewLineReader(r io.Reader, normalize bool) *LineReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return &LineReader{s: s, normalize: normalize}
}

// Scan advances to the next line.
func (r *LineReader) Scan() bool {
	if !r.s.Scan() {
		return false
	}
	r.line = r.s.Text()
	if r.normalize {
		r.line = Normalize(r.line)
	}
	return true
}

// Text returns the current line.
func (r *LineReader) Text() string { return r.line }

// Err returns the first non-EOF error.
func (r *LineReader) Err() error { return r.s.Err() }
