package main

import (
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/codegangsta/cli"
	"github.com/go-errors/errors"
	"github.com/lmittmann/tint"
	"gopkg.in/yaml.v2"
)

// options is everything run needs. A YAML config file supplies defaults and
// flags that were set explicitly override them.
type options struct {
	Encoding string `yaml:"encoding"`
	Set      string `yaml:"set"`
	Invert   bool   `yaml:"invert"`
	Scale    int    `yaml:"scale"`
	Fit      bool   `yaml:"fit"`
	LogLevel string `yaml:"log_level"`
	Banner   string `yaml:"-"`
}

func defaultOptions() options {
	return options{
		Encoding: "braille",
		Set:      "#",
		Scale:    1,
		LogLevel: "warn",
	}
}

func loadConfig(r io.Reader, opts *options) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, 0)
	}
	if err := yaml.UnmarshalStrict(data, opts); err != nil {
		return errors.WrapPrefix(err, "config", 0)
	}
	return nil
}

func optionsFromContext(c *cli.Context) (options, error) {
	opts := defaultOptions()
	if path := c.String("config"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return opts, errors.Wrap(err, 0)
		}
		defer f.Close()
		if err := loadConfig(f, &opts); err != nil {
			return opts, err
		}
	}

	if c.IsSet("encoding") || opts.Encoding == "" {
		opts.Encoding = c.String("encoding")
	}
	if c.IsSet("set") || opts.Set == "" {
		opts.Set = c.String("set")
	}
	if c.IsSet("invert") {
		opts.Invert = c.Bool("invert")
	}
	if c.IsSet("scale") || opts.Scale == 0 {
		opts.Scale = c.Int("scale")
	}
	if c.IsSet("fit") {
		opts.Fit = c.Bool("fit")
	}
	if c.IsSet("log-level") || opts.LogLevel == "" {
		opts.LogLevel = c.String("log-level")
	}
	opts.Banner = c.String("banner")
	return opts, opts.validate()
}

func (opts options) validate() error {
	if utf8.RuneCountInString(opts.Set) != 1 {
		return errors.Errorf("set must be a single character, got %q", opts.Set)
	}
	if opts.Scale < 1 {
		return errors.Errorf("scale must be at least 1, got %d", opts.Scale)
	}
	return nil
}

func (opts options) setRune() rune {
	r, _ := utf8.DecodeRuneInString(opts.Set)
	return r
}

func newHandler(w io.Writer, level slog.Level) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
	})
}
