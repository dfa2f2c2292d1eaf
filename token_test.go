package bookcipher

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_ParseToken(t *testing.T) {
	testCases := map[string]struct {
		input string
		want  Token
	}{
		"one-based to zero-based": {input: "12.3.7", want: Token{Page: 12, Line: 2, Char: 6}},
		"first char":              {input: "1.1.1", want: Token{Page: 1, Line: 0, Char: 0}},
		"zero line stays zero":    {input: "4.0.5", want: Token{Page: 4, Line: 0, Char: 4}},
		"zero char stays zero":    {input: "4.5.0", want: Token{Page: 4, Line: 4, Char: 0}},
		"page zero":               {input: "0.2.2", want: Token{Page: 0, Line: 1, Char: 1}},
		"surrounding space":       {input: " 7.8.9\r", want: Token{Page: 7, Line: 7, Char: 8}},
		"leading zeros":           {input: "007.01.010", want: Token{Page: 7, Line: 0, Char: 9}},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseToken(tc.input)
			if err != nil {
				t.Fatalf("ParseToken(%q): %v", tc.input, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Error("token did not match expectation:", diff)
			}
		})
	}
}

func Test_ParseToken_Malformed(t *testing.T) {
	testCases := map[string]struct {
		input string
		field string
	}{
		"empty":           {input: ""},
		"one delimiter":   {input: "1.2"},
		"three delimiter": {input: "1.2.3.4"},
		"no delimiter":    {input: "123"},
		"letters":         {input: "a.2.3", field: "page"},
		"empty line":      {input: "1..3", field: "line"},
		"negative char":   {input: "1.2.-3", field: "char"},
		"plus sign":       {input: "+1.2.3", field: "page"},
		"inner space":     {input: "1. 2.3", field: "line"},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseToken(tc.input)
			if !errors.Is(err, ErrMalformedToken) {
				t.Fatalf("ParseToken(%q) = %v, want ErrMalformedToken", tc.input, err)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error %T is not a *ParseError", err)
			}
			if perr.Field != tc.field {
				t.Errorf("field = %q, want %q", perr.Field, tc.field)
			}
		})
	}
}

func Test_ParseToken_Property(t *testing.T) {
	for p := 0; p < 5; p++ {
		for l := 0; l < 5; l++ {
			for c := 0; c < 5; c++ {
				tok, err := ParseToken(Token{Page: p, Line: l - 1, Char: c - 1}.String())
				if err != nil {
					t.Fatal(err)
				}
				want := Token{Page: p, Line: max(l-1, 0), Char: max(c-1, 0)}
				if tok != want {
					t.Errorf("%d.%d.%d parsed to %+v, want %+v", p, l, c, tok, want)
				}
			}
		}
	}
}

func Test_ParseTokens(t *testing.T) {
	tokens, errs := ParseTokens([]string{"1.1.1", "bad", "2.3.4", "1.x.1"})

	want := []Token{{Page: 1}, {Page: 2, Line: 2, Char: 3}}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Error("tokens did not match expectation:", diff)
	}

	var inputs []string
	for _, e := range errs {
		inputs = append(inputs, e.Input)
	}
	if diff := cmp.Diff([]string{"bad", "1.x.1"}, inputs); diff != "" {
		t.Error("parse errors did not match expectation:", diff)
	}
}

func Test_Token_String(t *testing.T) {
	if got := (Token{Page: 3, Line: 0, Char: 9}).String(); got != "3.1.10" {
		t.Errorf("String() = %q, want 3.1.10", got)
	}
}
