package bookcipher

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ScriptRock/bookcipher/text"
)

// ScanPage reads r once, front to back, and returns page num of the key
// book it holds. The page counter starts at -f.FrontMatter and advances at
// every marker line; once it reaches num the following lines are collected
// up to the next marker. If num is never reached the page is empty.
func ScanPage(r io.Reader, num int, f Format) (Page, error) {
	p := Page{Number: num}

	lr, err := newLineReader(r, f)
	if err != nil {
		return p, err
	}

	count := -f.FrontMatter
	for count != num && lr.Scan() {
		if text.IsMarker(lr.Text(), f.Marker) {
			count++
		}
	}
	if count != num {
		return p, lr.Err()
	}

	for lr.Scan() {
		line := lr.Text()
		if text.IsMarker(line, f.Marker) {
			break
		}
		if !p.add(line, f.MaxPageLines) {
			break
		}
	}
	return p, lr.Err()
}

// A FileSource looks pages up by scanning a key book on disk.
// The file is opened, read up to the page and closed on every call, so it
// never holds a plain-text book in memory. HTML books (.html, .htm,
// .xhtml) are read whole on each call and give the same pages as
// ReadHTMLBook. Use a Book when lookups are frequent.
type FileSource struct {
	path   string
	format Format
	scans  int
}

var _ PageSource = (*FileSource)(nil)

// NewFileSource returns a FileSource for the key book at path.
func NewFileSource(path string, f Format) *FileSource {
	return &FileSource{path: path, format: f}
}

// Page scans the key book for page num. If the file cannot be opened the
// page is empty and the error wraps ErrKeyBookUnavailable.
func (s *FileSource) Page(num int) (Page, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return Page{Number: num}, fmt.Errorf("%w: %w", ErrKeyBookUnavailable, err)
	}
	defer file.Close()

	s.scans++
	slog.Debug("scanning key book",
		slog.String("book", s.path),
		slog.Int("page", num),
		slog.Int("scan", s.scans))

	p, err := s.scan(file, num)
	if err != nil {
		return p, fmt.Errorf("%w: %w", ErrKeyBookUnavailable, err)
	}
	if p.Truncated {
		slog.Debug("page truncated",
			slog.String("book", s.path),
			slog.Int("page", num),
			slog.Int("max", s.format.MaxPageLines))
	}
	return p, nil
}

// scan reads page num from file. HTML has to be parsed into lines before
// markers can be matched, so an HTML book is read whole and indexed.
func (s *FileSource) scan(file io.Reader, num int) (Page, error) {
	if !isHTML(s.path) {
		return ScanPage(file, num, s.format)
	}
	b, err := ReadHTMLBook(file, s.path, s.format)
	if err != nil {
		return Page{Number: num}, err
	}
	return b.Page(num)
}

// Name returns the key book's path.
func (s *FileSource) Name() string { return s.path }

// Scans returns how many times the key book has been read.
func (s *FileSource) Scans() int { return s.scans }
