package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ScriptRock/bookcipher"
	"github.com/ScriptRock/bookcipher/internal/config"
)

func pageCmd(root *rootOptions) *cobra.Command {
	var book bookFlags

	c := &cobra.Command{
		Use:   "page KEYBOOK NUMBER",
		Short: "Print the lines of one key-book page",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			num, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("page number %q: %w", args[1], err)
			}

			cfg, err := root.load(cmd, func(cfg *config.Config) { book.apply(cmd, cfg) })
			if err != nil {
				return err
			}

			b, err := bookcipher.OpenBook(args[0], cfg.Format())
			if err != nil {
				return err
			}
			p, err := b.Page(num)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, line := range p.Lines {
				fmt.Fprintf(out, "line %d: %s\n", i+1, line)
			}
			fmt.Fprintln(out)

			if p.Truncated {
				fmt.Fprintf(cmd.ErrOrStderr(), "page %d truncated at %d lines\n", num, cfg.Book.MaxPageLines)
			}
			if p.Len() == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "page %d not found in %s\n", num, args[0])
			}
			return nil
		},
	}

	book.register(c)
	return c
}
