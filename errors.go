package bookcipher

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the bookcipher package.
var (
	// ErrMalformedToken indicates a coded token is not of the form
	// "<page>.<line>.<char>" with non-negative integer fields.
	ErrMalformedToken = errors.New("bookcipher: malformed token")

	// ErrNoCharacters indicates the referenced page yielded at most one
	// line, which the key-book format treats as no usable content.
	ErrNoCharacters = errors.New("bookcipher: page has no characters")

	// ErrLineOutOfRange indicates the token's line is past the end of its page.
	ErrLineOutOfRange = errors.New("bookcipher: line out of range")

	// ErrCharOutOfRange indicates the token's character position is past
	// the end of its line.
	ErrCharOutOfRange = errors.New("bookcipher: character out of range")

	// ErrKeyBookUnavailable indicates the key book could not be read.
	ErrKeyBookUnavailable = errors.New("bookcipher: key book unavailable")

	// ErrMessageTooLong indicates a message held more tokens than allowed.
	ErrMessageTooLong = errors.New("bookcipher: message too long")

	// ErrNotEncodable indicates a plaintext character does not occur in
	// any usable page of the key book at or after the current page.
	ErrNotEncodable = errors.New("bookcipher: character not in key book")

	// ErrInvalidFormat indicates a Format that cannot describe a key book.
	ErrInvalidFormat = errors.New("bookcipher: invalid key-book format")
)

// A ParseError records a coded token that could not be parsed.
type ParseError struct {
	Input string // the token as read
	Field string // "page", "line", "char" or "" when the shape is wrong
	Err   error  // underlying strconv error, if any
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("bookcipher: malformed token %q", e.Input)
	if e.Field != "" {
		msg += ": bad " + e.Field + " field"
	} else {
		msg += ": want <page>.<line>.<char>"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedToken}
	}
	return []error{ErrMalformedToken, e.Err}
}

// A DecodeError records a token that did not contribute a character to
// the decoded message.
type DecodeError struct {
	Raw   string // token as written, or its canonical form
	Token Token
	Book  string // name of the key book
	Err   error
}

func (e *DecodeError) Error() string {
	switch {
	case errors.Is(e.Err, ErrMalformedToken):
		return e.Err.Error()
	case errors.Is(e.Err, ErrNoCharacters):
		return fmt.Sprintf("Line %d on page, %d, in the '%s' cipher key text has no characters.",
			e.Token.Line, e.Token.Page, e.Book)
	}
	tok := e.Raw
	if tok == "" {
		tok = e.Token.String()
	}
	return fmt.Sprintf("token %s on page %d of '%s': %v", tok, e.Token.Page, e.Book, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
