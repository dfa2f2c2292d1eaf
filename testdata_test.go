package bookcipher

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ozBook has three front-matter markers, then page 0 (the last
// front-matter page), page 1 (two lines), page 2 (one line) and page 3.
var ozBook = strings.Join([]string{
	"The Wonderful Wizard of Oz",
	"-- page i --",
	"by L. Frank Baum",
	"-- page ii --",
	"Contents",
	"-- page iii --",
	"Introduction",
	"Folklore, legends, myths and fairy tales",
	"-- page 1 --",
	"HELLO",
	"WORLD",
	"-- page 2 --",
	"lonely",
	"-- page 3 --",
	"The quick brown fox",
	"jumps over the lazy dog.",
	"Sphinx of black quartz, judge my vow!",
}, "\n") + "\n"

func readOz(t *testing.T, f Format) *Book {
	t.Helper()
	b, err := ReadBook(strings.NewReader(ozBook), "oz.txt", f)
	if err != nil {
		t.Fatalf("ReadBook: %v", err)
	}
	return b
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
