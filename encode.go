package bookcipher

import (
	"fmt"

	"github.com/ScriptRock/bookcipher/text"
)

// Encode returns tokens that decode to plaintext with b.
//
// Every character is taken from the earliest usable page at or after the
// page of the previous character, so page numbers never decrease and the
// page sort done before decoding leaves the tokens in message order.
// Pages with fewer than two lines are never used.
func Encode(b *Book, plaintext string) ([]Token, error) {
	if b.format.Normalize {
		plaintext = text.Normalize(plaintext)
	}

	pages := b.Pages()
	tokens := make([]Token, 0, len(plaintext))

	cur := 0
	for _, c := range plaintext {
		t, next, ok := b.find(pages, cur, c)
		if !ok {
			return tokens, fmt.Errorf("%w: %q at position %d", ErrNotEncodable, c, len(tokens))
		}
		tokens = append(tokens, t)
		cur = next
	}
	return tokens, nil
}

// find looks for c from pages[from] onward and returns its token and the
// index of the page it was found on.
func (b *Book) find(pages []int, from int, c rune) (Token, int, bool) {
	for i := from; i < len(pages); i++ {
		p, _ := b.Page(pages[i])
		if p.Len() <= 1 {
			continue
		}
		for n, line := range p.Lines {
			if j := text.IndexRune(line, c); j >= 0 {
				return Token{Page: p.Number, Line: n, Char: j}, i, true
			}
		}
	}
	return Token{}, from, false
}
