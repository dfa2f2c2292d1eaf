package text

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLLines extracts the visible text of an HTML document as lines.
// Block-level elements and <br> end a line; text inside <pre> keeps its
// own line breaks; script, style and head content is dropped.
func HTMLLines(r io.Reader) ([]string, error) {
	var (
		b    Builder
		skip int
		pre  int

		// the newline right after <pre> is not content
		fresh bool
	)

	z := html.NewTokenizer(r)
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, err
			}
			return b.Lines(), nil

		case html.TextToken:
			if skip > 0 {
				continue
			}
			if pre > 0 {
				s := string(z.Text())
				if fresh {
					s = strings.TrimPrefix(strings.TrimPrefix(s, "\r"), "\n")
					fresh = false
				}
				writePre(&b, s)
				continue
			}
			b.WriteText(string(z.Text()))

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			switch {
			case isSkipped(a):
				if tt == html.StartTagToken {
					skip++
				}
			case a == atom.Br:
				b.Break()
			case a == atom.Pre:
				b.Break()
				if tt == html.StartTagToken {
					pre++
					fresh = true
				}
			case isBlock(a):
				b.Break()
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			switch {
			case isSkipped(a):
				if skip > 0 {
					skip--
				}
			case a == atom.Pre:
				b.Break()
				if pre > 0 {
					pre--
				}
			case isBlock(a):
				b.Break()
			}
		}
	}
}

func writePre(b *Builder, s string) {
	parts := strings.Split(s, "\n")
	for i, p := range parts {
		b.WriteRaw(strings.TrimSuffix(p, "\r"))
		if i < len(parts)-1 {
			b.EndLine()
		}
	}
}

func isSkipped(a atom.Atom) bool {
	switch a {
	case atom.Script, atom.Style, atom.Head, atom.Noscript, atom.Template:
		return true
	}
	return false
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Li, atom.Ul, atom.Ol, atom.Dl, atom.Dt, atom.Dd,
		atom.Blockquote, atom.Section, atom.Article, atom.Header, atom.Footer,
		atom.Tr, atom.Table, atom.Hr, atom.Body, atom.Html:
		return true
	}
	return false
}
