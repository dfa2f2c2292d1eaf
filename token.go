package bookcipher

import (
	"fmt"
	"strconv"
	"strings"
)

// A Token locates one character of the key book. Line and Char are
// zero-based indexes into the page and the line.
type Token struct {
	Page int
	Line int
	Char int
}

// String renders the token in its 1-based coded form.
func (t Token) String() string {
	return fmt.Sprintf("%d.%d.%d", t.Page, t.Line+1, t.Char+1)
}

// ParseToken parses a coded token of the form "<page>.<line>.<char>".
// The line and character positions are written 1-based and are returned
// zero-based; a written 0 stays 0.
func ParseToken(s string) (Token, error) {
	s = strings.TrimSpace(s)
	fields := strings.Split(s, ".")
	if len(fields) != 3 {
		return Token{}, &ParseError{Input: s}
	}

	var v [3]int
	for i, name := range [3]string{"page", "line", "char"} {
		n, err := parseField(fields[i])
		if err != nil {
			return Token{}, &ParseError{Input: s, Field: name, Err: err}
		}
		v[i] = n
	}

	t := Token{Page: v[0], Line: v[1], Char: v[2]}
	if t.Line > 0 {
		t.Line--
	}
	if t.Char > 0 {
		t.Char--
	}
	return t, nil
}

func parseField(f string) (int, error) {
	if f == "" || f[0] == '+' || f[0] == '-' {
		// Atoi accepts signs; the token grammar does not.
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(f)
}

// ParseTokens parses every raw token, keeping the good ones in input
// order and collecting the failures.
func ParseTokens(raw []string) ([]Token, []*ParseError) {
	var (
		tokens []Token
		errs   []*ParseError
	)
	for _, s := range raw {
		t, err := ParseToken(s)
		if err != nil {
			errs = append(errs, err.(*ParseError))
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens, errs
}
