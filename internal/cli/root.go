// Package cli implements the bookcipher command line.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ScriptRock/bookcipher/internal/config"
	"github.com/ScriptRock/bookcipher/internal/logger"
)

// Execute runs the bookcipher command and exits with status 1 on error.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	debug      bool
	logFormat  string
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	dec := decodeCmd(&opts)
	cmd := &cobra.Command{
		Use:          "bookcipher [MESSAGE [KEYBOOK]]",
		Short:        "Decode book-cipher messages against a key book",
		Long:         "Without a subcommand bookcipher decodes, prompting for any file name not given.",
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		RunE:         dec.RunE,
	}
	// The root command decodes too, so it takes the decode flags.
	cmd.Flags().AddFlagSet(dec.Flags())

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file (default $"+config.EnvFile+")")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "verbose logging to stderr")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log format: text|json")

	cmd.AddCommand(dec, encodeCmd(&opts), pageCmd(&opts))
	return cmd
}

// load resolves the configuration for cmd: defaults, then the config
// file, then persistent flags. It installs the logger.
func (o *rootOptions) load(cmd *cobra.Command, apply func(*config.Config)) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, err
	}

	if o.debug {
		cfg.Log.Level = "debug"
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = o.logFormat
	}
	if apply != nil {
		apply(&cfg)
	}

	if err := config.Validate(cfg); err != nil {
		return cfg, err
	}

	logger.Setup(cmd.ErrOrStderr(), logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Debug:  o.debug,
	})
	return cfg, nil
}

// bookFlags are the key-book layout flags shared by every subcommand.
type bookFlags struct {
	marker       string
	frontMatter  int
	maxPageLines int
	encoding     string
	noNormalize  bool
}

func (f *bookFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.marker, "marker", "", "text that marks a page-boundary line (default \"page\")")
	fs.IntVar(&f.frontMatter, "front-matter", 0, "marker lines before page 1 (default 3)")
	fs.IntVar(&f.maxPageLines, "max-page-lines", 0, "lines kept per page, 0 for no cap (default 25)")
	fs.StringVar(&f.encoding, "encoding", "", "key-book text encoding (default utf-8)")
	fs.BoolVar(&f.noNormalize, "no-normalize", false, "do not NFC-normalize key-book lines")
}

func (f *bookFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("marker") {
		cfg.Book.Marker = f.marker
	}
	if fs.Changed("front-matter") {
		cfg.Book.FrontMatter = f.frontMatter
	}
	if fs.Changed("max-page-lines") {
		cfg.Book.MaxPageLines = f.maxPageLines
	}
	if fs.Changed("encoding") {
		cfg.Book.Encoding = f.encoding
	}
	if f.noNormalize {
		cfg.Book.Normalize = false
	}
}
