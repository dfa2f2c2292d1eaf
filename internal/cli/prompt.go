package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// prompter reads file names from the user. Prompts are only written
// when the input is a terminal, so piped input stays quiet.
type prompter struct {
	r           *bufio.Reader
	w           io.Writer
	interactive bool
	asked       bool
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}
	return &prompter{r: bufio.NewReader(in), w: out, interactive: interactive}
}

// ask returns the first word of the next input line.
func (p *prompter) ask(prompt string) (string, error) {
	if p.interactive {
		fmt.Fprint(p.w, prompt)
		p.asked = true
	}

	for {
		line, err := p.r.ReadString('\n')
		if fields := strings.Fields(line); len(fields) > 0 {
			return fields[0], nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("no answer to %q", strings.TrimSpace(prompt))
			}
			return "", err
		}
	}
}
