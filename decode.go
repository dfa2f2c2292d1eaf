package bookcipher

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ScriptRock/bookcipher/text"
)

// A Result is a decoded message.
type Result struct {
	// Text is the plaintext, one character per resolved token.
	Text string

	// Resolved counts the tokens that contributed a character.
	Resolved int

	// Problems lists the tokens that did not, in decode order.
	Problems []*DecodeError
}

// An Option configures a Decoder.
type Option func(*Decoder)

// WithPlaceholder makes the decoder emit r in place of every token it
// cannot resolve, so the plaintext keeps one character per token. Tokens
// that do not parse are still dropped.
func WithPlaceholder(r rune) Option {
	return func(d *Decoder) { d.placeholder = r }
}

// WithStrict makes the decoder stop at the first problem and return it.
func WithStrict() Option {
	return func(d *Decoder) { d.strict = true }
}

// WithMessageOrder makes DecodeStrings decode tokens in the order given
// instead of sorting them by page first.
func WithMessageOrder() Option {
	return func(d *Decoder) { d.keepOrder = true }
}

// A Decoder turns coded tokens into plaintext using a key book.
type Decoder struct {
	src         PageSource
	placeholder rune
	strict      bool
	keepOrder   bool

	// last page fetched; consecutive tokens on one page share a lookup
	last    Page
	lastErr error
	cached  bool
}

// NewDecoder returns a Decoder reading pages from src.
func NewDecoder(src PageSource, opts ...Option) *Decoder {
	d := &Decoder{src: src}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DecodeStrings parses raw tokens, orders them by page and decodes them.
// Tokens that do not parse are reported and skipped. Problems quote each
// token as it was written.
func (d *Decoder) DecodeStrings(raw []string) (Result, error) {
	var (
		res   Result
		codes []coded
	)
	for _, s := range raw {
		t, err := ParseToken(s)
		if err != nil {
			derr := &DecodeError{Raw: strings.TrimSpace(s), Book: d.src.Name(), Err: err}
			slog.Debug("skipping token", slog.String("token", derr.Raw), slog.Any("err", err))
			res.Problems = append(res.Problems, derr)
			if d.strict {
				return res, derr
			}
			continue
		}
		codes = append(codes, coded{Token: t, raw: strings.TrimSpace(s)})
	}

	if !d.keepOrder {
		codes = sortByPage(codes, func(c coded) int { return c.Page })
	}

	dres, err := d.decode(codes)
	dres.Problems = append(res.Problems, dres.Problems...)
	return dres, err
}

// Decode resolves tokens in the order given. A token that cannot be
// resolved is recorded in the result's Problems and contributes nothing,
// or the placeholder if one is set. In strict mode Decode returns the
// text so far and the first problem.
func (d *Decoder) Decode(tokens []Token) (Result, error) {
	codes := make([]coded, len(tokens))
	for i, t := range tokens {
		codes[i] = coded{Token: t, raw: t.String()}
	}
	return d.decode(codes)
}

// coded is a parsed token and the text it was written as.
type coded struct {
	Token
	raw string
}

func (d *Decoder) decode(codes []coded) (Result, error) {
	var (
		res Result
		out strings.Builder
	)

	// pages may have changed since the last call
	d.cached = false

	for _, c := range codes {
		r, err := d.resolve(c.Token)
		if err != nil {
			derr := &DecodeError{Raw: c.raw, Token: c.Token, Book: d.src.Name(), Err: err}
			slog.Debug("unresolved token",
				slog.String("token", derr.Raw),
				slog.String("book", derr.Book),
				slog.Any("err", err))
			res.Problems = append(res.Problems, derr)
			if d.strict {
				res.Text = out.String()
				return res, derr
			}
			if d.placeholder != 0 {
				out.WriteRune(d.placeholder)
			}
			continue
		}
		out.WriteRune(r)
		res.Resolved++
	}

	res.Text = out.String()
	return res, nil
}

func (d *Decoder) resolve(t Token) (rune, error) {
	p, err := d.page(t.Page)
	if err != nil {
		if errors.Is(err, ErrKeyBookUnavailable) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %w", ErrKeyBookUnavailable, err)
	}

	// A page of one line or less has no usable text in the key-book format.
	if p.Len() <= 1 {
		return 0, ErrNoCharacters
	}
	if t.Line < 0 || t.Line >= p.Len() {
		return 0, fmt.Errorf("%w: page %d has %d lines", ErrLineOutOfRange, p.Number, p.Len())
	}

	line := p.Lines[t.Line]
	c, ok := text.CharAt(line, t.Char)
	if !ok {
		return 0, fmt.Errorf("%w: line %d of page %d has %d characters",
			ErrCharOutOfRange, t.Line+1, p.Number, text.Len(line))
	}
	return c, nil
}

func (d *Decoder) page(num int) (Page, error) {
	if d.cached && d.last.Number == num {
		return d.last, d.lastErr
	}
	d.last, d.lastErr = d.src.Page(num)
	d.last.Number = num
	d.cached = true
	return d.last, d.lastErr
}
