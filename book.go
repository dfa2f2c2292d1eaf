// Package bookcipher decodes book-cipher messages.
//
// # Overview
//
// A book-cipher message is a list of coded tokens. Each token,
// written "<page>.<line>.<char>", names one character of a key book: the
// char-th character of the line-th line of the page-th page, counting
// lines and characters from 1. Decoding looks every token up in the key
// book and concatenates the characters.
//
// A key book is plain text split into pages by marker lines. With the
// DefaultFormat a marker is any line containing "page", and the first
// three markers belong to front matter, so page 1 is the text between the
// fourth and fifth marker lines.
//
// The Book type indexes a key book once; FileSource re-reads it from disk
// for every lookup. Either can back a Decoder:
//
//	book, err := bookcipher.OpenBook("Wizard_of_Oz.txt", bookcipher.DefaultFormat())
//	if err != nil {
//		return err
//	}
//	res, err := bookcipher.NewDecoder(book).DecodeStrings(tokens)
//
// Tokens that cannot be resolved do not stop a decode; they are reported
// in Result.Problems.
package bookcipher

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ScriptRock/bookcipher/internal/encoding"
	"github.com/ScriptRock/bookcipher/text"
)

// A Page holds the body lines of one key-book page, marker lines
// excluded. Lines[n] is the token line n+1.
type Page struct {
	Number int
	Lines  []string

	// Truncated is set when the page had more lines than the format's
	// MaxPageLines and the excess was dropped.
	Truncated bool
}

// Len returns the number of lines on the page.
func (p Page) Len() int { return len(p.Lines) }

// add appends line unless the page is full, in which case it marks the
// page truncated and reports false.
func (p *Page) add(line string, max int) bool {
	if max > 0 && len(p.Lines) >= max {
		p.Truncated = true
		return false
	}
	p.Lines = append(p.Lines, line)
	return true
}

// A PageSource looks up key-book pages.
type PageSource interface {
	// Page returns the page numbered num. A page that does not exist is
	// returned empty, with a nil error.
	Page(num int) (Page, error)

	// Name identifies the key book in diagnostics.
	Name() string
}

// A Book is a key book indexed by page number. It is immutable and safe
// for concurrent use.
type Book struct {
	name   string
	format Format
	first  int
	pages  []Page
}

var _ PageSource = (*Book)(nil)

// OpenBook reads and indexes the key book at path. Files ending in .html,
// .htm or .xhtml are read as HTML.
func OpenBook(path string, f Format) (*Book, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyBookUnavailable, err)
	}
	defer file.Close()

	if isHTML(path) {
		return ReadHTMLBook(file, path, f)
	}
	return ReadBook(file, path, f)
}

// ReadBook reads and indexes a plain-text key book from r.
func ReadBook(r io.Reader, name string, f Format) (*Book, error) {
	lr, err := newLineReader(r, f)
	if err != nil {
		return nil, err
	}

	b := newBook(name, f)
	for lr.Scan() {
		b.addLine(lr.Text())
	}
	if err := lr.Err(); err != nil {
		return nil, fmt.Errorf("reading key book %s: %w", name, err)
	}

	slog.Debug("indexed key book", slog.String("book", name), slog.Int("pages", len(b.pages)))
	return b, nil
}

// ReadHTMLBook reads and indexes an HTML key book from r. Page markers
// are matched against the extracted text lines.
func ReadHTMLBook(r io.Reader, name string, f Format) (*Book, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	dr, err := encoding.NewReader(r, f.Encoding)
	if err != nil {
		return nil, err
	}
	lines, err := text.HTMLLines(dr)
	if err != nil {
		return nil, fmt.Errorf("reading key book %s: %w", name, err)
	}

	b := newBook(name, f)
	for _, line := range lines {
		if f.Normalize {
			line = text.Normalize(line)
		}
		b.addLine(line)
	}

	slog.Debug("indexed key book", slog.String("book", name), slog.Int("pages", len(b.pages)))
	return b, nil
}

func newBook(name string, f Format) *Book {
	first := -f.FrontMatter
	return &Book{
		name:   name,
		format: f,
		first:  first,
		pages:  []Page{{Number: first}},
	}
}

func (b *Book) addLine(line string) {
	if text.IsMarker(line, b.format.Marker) {
		b.pages = append(b.pages, Page{Number: b.first + len(b.pages)})
		return
	}

	last := &b.pages[len(b.pages)-1]
	if last.Truncated {
		return
	}
	if !last.add(line, b.format.MaxPageLines) {
		slog.Debug("page truncated",
			slog.String("book", b.name),
			slog.Int("page", last.Number),
			slog.Int("max", b.format.MaxPageLines))
	}
}

// Name returns the name the book was opened with.
func (b *Book) Name() string { return b.name }

// Format returns the layout the book was indexed with.
func (b *Book) Format() Format { return b.format }

// Page returns page num. The text before the first marker is page
// -FrontMatter, so with three front-matter pages page 1 follows the fourth
// marker. The returned lines are shared and must not be modified.
func (b *Book) Page(num int) (Page, error) {
	i := num - b.first
	if i < 0 || i >= len(b.pages) {
		return Page{Number: num}, nil
	}
	return b.pages[i], nil
}

// Pages returns the numbers of the pages a token can address, in order.
func (b *Book) Pages() []int {
	var nums []int
	for _, p := range b.pages {
		if p.Number >= 0 {
			nums = append(nums, p.Number)
		}
	}
	return nums
}

func newLineReader(r io.Reader, f Format) (*text.LineReader, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	dr, err := encoding.NewReader(r, f.Encoding)
	if err != nil {
		return nil, err
	}
	return text.NewLineReader(dr, f.Normalize), nil
}

func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}
