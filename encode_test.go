package bookcipher

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_Encode_RoundTrip(t *testing.T) {
	b := readOz(t, DefaultFormat())

	testCases := map[string]string{
		"lower case":     "the lazy fox",
		"upper case":     "HELLOWORLD",
		"punctuation":    "vow!",
		"single":         "T",
		"repeated chars": "zzz",
	}

	for name, plaintext := range testCases {
		t.Run(name, func(t *testing.T) {
			tokens, err := Encode(b, plaintext)
			if err != nil {
				t.Fatalf("Encode(%q): %v", plaintext, err)
			}

			raw := make([]string, len(tokens))
			for i, tok := range tokens {
				raw[i] = tok.String()
			}

			res, err := NewDecoder(b).DecodeStrings(raw)
			if err != nil {
				t.Fatal(err)
			}
			if res.Text != plaintext {
				t.Errorf("decoded %q from %v, want %q", res.Text, raw, plaintext)
			}
			if len(res.Problems) != 0 {
				t.Errorf("problems: %v", res.Problems)
			}
		})
	}
}

func Test_Encode_PagesNeverDecrease(t *testing.T) {
	b := readOz(t, DefaultFormat())

	tokens, err := Encode(b, "the lazy fox")
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Page < tokens[i-1].Page {
			t.Errorf("token %d on page %d after page %d", i, tokens[i].Page, tokens[i-1].Page)
		}
	}
	if diff := cmp.Diff(tokens, SortByPage(tokens)); diff != "" {
		t.Error("sorting changed the encoded order:", diff)
	}
}

func Test_Encode_SkipsShortPages(t *testing.T) {
	book := "alpha\nbeta\npage\nzeta quota\npage\nzed\nend\n"
	b, err := ReadBook(strings.NewReader(book), "short", Format{Marker: "page"})
	if err != nil {
		t.Fatal(err)
	}

	tokens, err := Encode(b, "z")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Token{{Page: 2}}, tokens); diff != "" {
		t.Error("tokens did not match expectation:", diff)
	}

	// "q" only occurs on the single-line page.
	if _, err := Encode(b, "q"); !errors.Is(err, ErrNotEncodable) {
		t.Errorf("err = %v, want ErrNotEncodable", err)
	}
}

func Test_Encode_NotEncodable(t *testing.T) {
	b := readOz(t, DefaultFormat())

	testCases := map[string]string{
		"absent":      "Q",
		"only behind": "fox HELLO",
		"newline":     "a\nb",
	}

	for name, plaintext := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := Encode(b, plaintext)
			if !errors.Is(err, ErrNotEncodable) {
				t.Errorf("Encode(%q) err = %v, want ErrNotEncodable", plaintext, err)
			}
		})
	}
}
