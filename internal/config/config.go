// Package config loads bookcipher settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/ScriptRock/bookcipher"
	"github.com/ScriptRock/bookcipher/internal/encoding"
)

// EnvFile names the environment variable holding a config file path.
const EnvFile = "BOOKCIPHER_CONFIG"

// Config is the resolved bookcipher configuration.
type Config struct {
	Book    BookConfig
	Message MessageConfig
	Decode  DecodeConfig
	Log     LogConfig
}

// BookConfig describes the key-book layout.
type BookConfig struct {
	Marker       string
	FrontMatter  int
	MaxPageLines int
	Encoding     string
	Normalize    bool
}

// MessageConfig bounds the coded message.
type MessageConfig struct {
	MaxTokens int
}

// DecodeConfig selects the decoder's policies.
type DecodeConfig struct {
	// Placeholder is emitted for unresolved tokens; empty omits them.
	Placeholder string
	Strict      bool
	KeepOrder   bool
	Rescan      bool
}

// LogConfig sets the log level and handler format.
type LogConfig struct {
	Level  string
	Format string
}

// Default returns the configuration used when no file sets a value.
func Default() Config {
	f := bookcipher.DefaultFormat()
	return Config{
		Book: BookConfig{
			Marker:       f.Marker,
			FrontMatter:  f.FrontMatter,
			MaxPageLines: f.MaxPageLines,
			Encoding:     f.Encoding,
			Normalize:    f.Normalize,
		},
		Message: MessageConfig{MaxTokens: bookcipher.DefaultMaxTokens},
		Log:     LogConfig{Level: "info", Format: "text"},
	}
}

// Format returns the key-book format the configuration describes.
func (c Config) Format() bookcipher.Format {
	return bookcipher.Format{
		Marker:       c.Book.Marker,
		FrontMatter:  c.Book.FrontMatter,
		MaxPageLines: c.Book.MaxPageLines,
		Normalize:    c.Book.Normalize,
		Encoding:     c.Book.Encoding,
	}
}

// Placeholder returns the placeholder rune, or 0 when none is set.
func (c Config) Placeholder() rune {
	r, _ := utf8.DecodeRuneInString(c.Decode.Placeholder)
	if r == utf8.RuneError {
		return 0
	}
	return r
}

// Error wraps a failure to load or validate configuration.
type Error struct {
	Op   string
	Path string // optional
	Err  error
}

func (e *Error) Error() string {
	base := e.Op
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	return base + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Load reads path over the defaults. When path is empty the file named by
// $BOOKCIPHER_CONFIG is used, and with neither the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvFile)
	}
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &Error{Op: "config.load", Path: path, Err: err}
	}

	cfg, err = Parse(b, cfg)
	if err != nil {
		return cfg, &Error{Op: "config.load", Path: path, Err: err}
	}
	return cfg, nil
}

// Parse applies the YAML document b on top of base.
func Parse(b []byte, base Config) (Config, error) {
	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return base, err
	}

	cfg := base
	set(&cfg.Book.Marker, y.Book.Marker)
	set(&cfg.Book.FrontMatter, y.Book.FrontMatter)
	set(&cfg.Book.MaxPageLines, y.Book.MaxPageLines)
	set(&cfg.Book.Encoding, y.Book.Encoding)
	set(&cfg.Book.Normalize, y.Book.Normalize)
	set(&cfg.Message.MaxTokens, y.Message.MaxTokens)
	set(&cfg.Decode.Placeholder, y.Decode.Placeholder)
	set(&cfg.Decode.Strict, y.Decode.Strict)
	set(&cfg.Decode.KeepOrder, y.Decode.KeepOrder)
	set(&cfg.Decode.Rescan, y.Decode.Rescan)
	set(&cfg.Log.Level, y.Log.Level)
	set(&cfg.Log.Format, y.Log.Format)

	return cfg, nil
}

// Validate reports every setting that cannot be used.
func Validate(c Config) error {
	var errs []error
	if c.Book.Marker == "" {
		errs = append(errs, errors.New("book.marker must not be empty"))
	}
	if c.Book.FrontMatter < 0 {
		errs = append(errs, fmt.Errorf("book.front_matter must be >= 0, got %d", c.Book.FrontMatter))
	}
	if c.Book.MaxPageLines < 0 {
		errs = append(errs, fmt.Errorf("book.max_page_lines must be >= 0, got %d", c.Book.MaxPageLines))
	}
	if _, err := encoding.Lookup(c.Book.Encoding); err != nil {
		errs = append(errs, fmt.Errorf("book.encoding: %w", err))
	}
	if c.Message.MaxTokens < 0 {
		errs = append(errs, fmt.Errorf("message.max_tokens must be >= 0, got %d", c.Message.MaxTokens))
	}
	if n := utf8.RuneCountInString(c.Decode.Placeholder); n > 1 {
		errs = append(errs, fmt.Errorf("decode.placeholder must be a single character, got %q", c.Decode.Placeholder))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug|info|warn|error", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q is not one of text|json", c.Log.Format))
	}

	if err := errors.Join(errs...); err != nil {
		return &Error{Op: "config.validate", Err: err}
	}
	return nil
}

type yamlConfig struct {
	Book struct {
		Marker       *string `yaml:"marker"`
		FrontMatter  *int    `yaml:"front_matter"`
		MaxPageLines *int    `yaml:"max_page_lines"`
		Encoding     *string `yaml:"encoding"`
		Normalize    *bool   `yaml:"normalize"`
	} `yaml:"book"`

	Message struct {
		MaxTokens *int `yaml:"max_tokens"`
	} `yaml:"message"`

	Decode struct {
		Placeholder *string `yaml:"placeholder"`
		Strict      *bool   `yaml:"strict"`
		KeepOrder   *bool   `yaml:"keep_order"`
		Rescan      *bool   `yaml:"rescan"`
	} `yaml:"decode"`

	Log struct {
		Level  *string `yaml:"level"`
		Format *string `yaml:"format"`
	} `yaml:"log"`
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
