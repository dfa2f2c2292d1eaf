package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ScriptRock/bookcipher"
	"github.com/ScriptRock/bookcipher/internal/config"
)

func encodeCmd(root *rootOptions) *cobra.Command {
	var (
		book     bookFlags
		bookPath string
	)

	c := &cobra.Command{
		Use:   "encode --book KEYBOOK [TEXT]",
		Short: "Encode text as coded tokens, one per line",
		Long:  "Encode reads TEXT, or standard input when TEXT is omitted, and prints a token for every character.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load(cmd, func(cfg *config.Config) { book.apply(cmd, cfg) })
			if err != nil {
				return err
			}

			plaintext, err := readPlaintext(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			b, err := bookcipher.OpenBook(bookPath, cfg.Format())
			if err != nil {
				return err
			}

			tokens, err := bookcipher.Encode(b, plaintext)
			out := cmd.OutOrStdout()
			for _, t := range tokens {
				fmt.Fprintln(out, t)
			}
			return err
		},
	}

	book.register(c)
	c.Flags().StringVarP(&bookPath, "book", "b", "", "key book file (required)")
	_ = c.MarkFlagRequired("book")
	return c
}

func readPlaintext(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	s := strings.TrimRight(string(b), "\r\n")
	if s == "" {
		return "", errors.New("nothing to encode")
	}
	return s, nil
}
