package text

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_CharAt(t *testing.T) {
	testCases := map[string]struct {
		line   string
		i      int
		want   rune
		wantOK bool
	}{
		"first":          {line: "HELLO", i: 0, want: 'H', wantOK: true},
		"last":           {line: "HELLO", i: 4, want: 'O', wantOK: true},
		"past end":       {line: "HELLO", i: 5},
		"negative":       {line: "HELLO", i: -1},
		"empty line":     {line: "", i: 0},
		"counts runes":   {line: "na\u00efve", i: 3, want: 'v', wantOK: true},
		"multibyte rune": {line: "\u65e5\u672c\u8a9e", i: 1, want: '\u672c', wantOK: true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got, ok := CharAt(tc.line, tc.i)
			if ok != tc.wantOK {
				t.Fatalf("CharAt(%q, %d) ok = %v, want %v", tc.line, tc.i, ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Errorf("CharAt(%q, %d) = %q, want %q", tc.line, tc.i, got, tc.want)
			}
		})
	}
}

func Test_IndexRune(t *testing.T) {
	if got := IndexRune("na\u00efve", 'v'); got != 3 {
		t.Errorf("IndexRune = %d, want 3", got)
	}
	if got := IndexRune("abc", 'z'); got != -1 {
		t.Errorf("IndexRune = %d, want -1", got)
	}
	if got := Len("na\u00efve"); got != 5 {
		t.Errorf("Len = %d, want 5", got)
	}
}

func Test_IsMarker(t *testing.T) {
	testCases := map[string]struct {
		line, marker string
		want         bool
	}{
		"exact":        {line: "page", marker: "page", want: true},
		"substring":    {line: "--- page 12 ---", marker: "page", want: true},
		"mid sentence": {line: "turned the page slowly", marker: "page", want: true},
		"case matters": {line: "PAGE 3", marker: "page"},
		"absent":       {line: "chapter one", marker: "page"},
		"empty marker": {line: "anything", marker: ""},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			if got := IsMarker(tc.line, tc.marker); got != tc.want {
				t.Errorf("IsMarker(%q, %q) = %v, want %v", tc.line, tc.marker, got, tc.want)
			}
		})
	}
}

func Test_LineReader(t *testing.T) {
	input := "one\r\ntwo\n\ncafe\u0301"

	testCases := map[string]struct {
		normalize bool
		want      []string
	}{
		"raw":        {want: []string{"one", "two", "", "cafe\u0301"}},
		"normalized": {normalize: true, want: []string{"one", "two", "", "caf\u00e9"}},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			var got []string
			lr := NewLineReader(strings.NewReader(input), tc.normalize)
			for lr.Scan() {
				got = append(got, lr.Text())
			}
			if err := lr.Err(); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Error("lines did not match expectation:", diff)
			}
		})
	}
}

func Test_LineReader_LongLine(t *testing.T) {
	long := strings.Repeat("x", 200_000)
	lr := NewLineReader(strings.NewReader(long+"\nshort\n"), false)

	if !lr.Scan() || lr.Text() != long {
		t.Fatalf("long line not read: %v", lr.Err())
	}
	if !lr.Scan() || lr.Text() != "short" {
		t.Fatalf("line after long line not read: %v", lr.Err())
	}
}

func Test_Builder(t *testing.T) {
	testCases := map[string]struct {
		build func(b *Builder)
		want  []string
	}{
		"empty": {build: func(*Builder) {}},
		"collapses whitespace": {
			build: func(b *Builder) { b.WriteText("  a \n\t b  ") },
			want:  []string{"a b"},
		},
		"joins adjacent runs": {
			build: func(b *Builder) {
				b.WriteText("Hel")
				b.WriteText("lo ")
				b.WriteText("world")
			},
			want: []string{"Hello world"},
		},
		"space only run separates": {
			build: func(b *Builder) {
				b.WriteText("a")
				b.WriteText(" ")
				b.WriteText("b")
			},
			want: []string{"a b"},
		},
		"break skips empty lines": {
			build: func(b *Builder) {
				b.Break()
				b.WriteText("a")
				b.Break()
				b.Break()
				b.WriteText("b")
			},
			want: []string{"a", "b"},
		},
		"end line keeps empty lines": {
			build: func(b *Builder) {
				b.WriteRaw("  x")
				b.EndLine()
				b.EndLine()
				b.WriteRaw("y")
			},
			want: []string{"  x", "", "y"},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			var b Builder
			tc.build(&b)
			if diff := cmp.Diff(tc.want, b.Lines()); diff != "" {
				t.Error("lines did not match expectation:", diff)
			}
		})
	}
}
