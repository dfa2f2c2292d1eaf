package bookcipher

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DefaultMaxTokens bounds the tokens read from one message.
const DefaultMaxTokens = 100

// ReadMessage reads coded tokens from r. Tokens are separated by
// whitespace, normally one per line; blank lines are ignored. When max is
// positive and the message holds more than max tokens, the first max are
// returned together with an error wrapping ErrMessageTooLong.
func ReadMessage(r io.Reader, max int) ([]string, error) {
	var tokens []string

	s := bufio.NewScanner(r)
	for s.Scan() {
		for _, tok := range strings.Fields(s.Text()) {
			if max > 0 && len(tokens) == max {
				return tokens, fmt.Errorf("%w: more than %d tokens", ErrMessageTooLong, max)
			}
			tokens = append(tokens, tok)
		}
	}
	if err := s.Err(); err != nil {
		return tokens, fmt.Errorf("reading message: %w", err)
	}
	return tokens, nil
}
