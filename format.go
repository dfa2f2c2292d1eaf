package bookcipher

import "fmt"

// Defaults for DefaultFormat.
const (
	DefaultMarker       = "page"
	DefaultFrontMatter  = 3
	DefaultMaxPageLines = 25
)

// Format describes how a key book is laid out.
//
// The marker rule is a property of the key-book format: any line that
// contains Marker anywhere is a page boundary, so the marker text must not
// otherwise occur in the book.
type Format struct {
	// Marker is the text that identifies a page-boundary line.
	Marker string

	// FrontMatter is the number of marker lines that precede page 1.
	FrontMatter int

	// MaxPageLines caps the lines kept per page. Zero means no cap.
	MaxPageLines int

	// Normalize puts every line in Unicode NFC before indexing.
	Normalize bool

	// Encoding names the character encoding of the key-book file. Empty
	// means UTF-8.
	Encoding string
}

// DefaultFormat returns the layout of the reference key books: "page"
// markers, three front-matter pages and at most 25 lines a page.
func DefaultFormat() Format {
	return Format{
		Marker:       DefaultMarker,
		FrontMatter:  DefaultFrontMatter,
		MaxPageLines: DefaultMaxPageLines,
		Normalize:    true,
	}
}

func (f Format) validate() error {
	switch {
	case f.Marker == "":
		return fmt.Errorf("%w: empty page marker", ErrInvalidFormat)
	case f.FrontMatter < 0:
		return fmt.Errorf("%w: negative front matter %d", ErrInvalidFormat, f.FrontMatter)
	case f.MaxPageLines < 0:
		return fmt.Errorf("%w: negative max page lines %d", ErrInvalidFormat, f.MaxPageLines)
	}
	return nil
}
