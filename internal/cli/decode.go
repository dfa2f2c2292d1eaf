package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/ScriptRock/bookcipher"
	"github.com/ScriptRock/bookcipher/internal/config"
)

const (
	messagePrompt = "Enter the file name of the coded message: "
	keyBookPrompt = "Enter the file name of the cipher text key: "
)

// errProblems is returned in strict mode when the decode was not clean.
var errProblems = errors.New("message did not decode cleanly")

func decodeCmd(root *rootOptions) *cobra.Command {
	var (
		book        bookFlags
		maxTokens   int
		placeholder string
		strict      bool
		keepOrder   bool
		rescan      bool
	)

	c := &cobra.Command{
		Use:   "decode [MESSAGE [KEYBOOK]]",
		Short: "Decode a coded message file with a key book",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load(cmd, func(cfg *config.Config) {
				book.apply(cmd, cfg)
				fs := cmd.Flags()
				if fs.Changed("max-tokens") {
					cfg.Message.MaxTokens = maxTokens
				}
				if fs.Changed("placeholder") {
					cfg.Decode.Placeholder = placeholder
				}
				if strict {
					cfg.Decode.Strict = true
				}
				if keepOrder {
					cfg.Decode.KeepOrder = true
				}
				if rescan {
					cfg.Decode.Rescan = true
				}
			})
			if err != nil {
				return err
			}
			return runDecode(cmd, args, cfg)
		},
	}

	book.register(c)
	fs := c.Flags()
	fs.IntVar(&maxTokens, "max-tokens", bookcipher.DefaultMaxTokens, "most tokens read from the message, 0 for no limit")
	fs.StringVar(&placeholder, "placeholder", "", "character emitted for tokens that cannot be resolved")
	fs.BoolVar(&strict, "strict", false, "fail on the first token that cannot be decoded")
	fs.BoolVar(&keepOrder, "keep-order", false, "decode in message order instead of page order")
	fs.BoolVar(&rescan, "rescan", false, "re-read the key book from disk for every page instead of indexing it")
	return c
}

func runDecode(cmd *cobra.Command, args []string, cfg config.Config) error {
	out := cmd.OutOrStdout()
	diag := cmd.ErrOrStderr()

	p := newPrompter(cmd.InOrStdin(), out)
	messagePath, err := argOrPrompt(p, args, 0, messagePrompt)
	if err != nil {
		return err
	}
	keyBookPath, err := argOrPrompt(p, args, 1, keyBookPrompt)
	if err != nil {
		return err
	}
	if p.asked {
		fmt.Fprintln(out)
	}

	clean := true

	tokens, err := readMessageFile(messagePath, cfg.Message.MaxTokens)
	if err != nil {
		clean = false
		if errors.Is(err, bookcipher.ErrMessageTooLong) {
			fmt.Fprintf(diag, "Message file %s is too long; decoding the first %d tokens.\n", messagePath, len(tokens))
		} else {
			fmt.Fprintf(diag, "Unable to open message file: %s\n", messagePath)
		}
		slog.Debug("message file", slog.String("path", messagePath), slog.Any("err", err))
		if cfg.Decode.Strict {
			return err
		}
	}

	src := openSource(diag, keyBookPath, cfg)

	var opts []bookcipher.Option
	if r := cfg.Placeholder(); r != 0 {
		opts = append(opts, bookcipher.WithPlaceholder(r))
	}
	if cfg.Decode.Strict {
		opts = append(opts, bookcipher.WithStrict())
	}
	if cfg.Decode.KeepOrder {
		opts = append(opts, bookcipher.WithMessageOrder())
	}

	res, derr := bookcipher.NewDecoder(src, opts...).DecodeStrings(tokens)
	for _, prob := range res.Problems {
		fmt.Fprintln(diag, prob)
	}

	fmt.Fprintln(out, res.Text)
	fmt.Fprintln(out)

	slog.Debug("decoded message",
		slog.Int("tokens", len(tokens)),
		slog.Int("resolved", res.Resolved),
		slog.Int("problems", len(res.Problems)),
		slog.Int("chars", utf8.RuneCountInString(res.Text)))

	if derr != nil {
		return derr
	}
	if cfg.Decode.Strict && !clean {
		return errProblems
	}
	return nil
}

func argOrPrompt(p *prompter, args []string, i int, prompt string) (string, error) {
	if i < len(args) {
		return args[i], nil
	}
	return p.ask(prompt)
}

func readMessageFile(path string, max int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return bookcipher.ReadMessage(f, max)
}

// openSource returns the key book as a PageSource. A key book that cannot
// be read is reported and still returned as a FileSource, so every token
// gets its own diagnostic rather than the run failing.
func openSource(diag io.Writer, path string, cfg config.Config) bookcipher.PageSource {
	f := cfg.Format()
	if cfg.Decode.Rescan {
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintf(diag, "Unable to open: %s\n", path)
		}
		return bookcipher.NewFileSource(path, f)
	}

	book, err := bookcipher.OpenBook(path, f)
	if err != nil {
		fmt.Fprintf(diag, "Unable to open: %s\n", path)
		slog.Debug("key book", slog.String("path", path), slog.Any("err", err))
		return bookcipher.NewFileSource(path, f)
	}
	return book
}
