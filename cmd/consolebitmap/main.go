package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/codegangsta/cli"
	"github.com/go-errors/errors"

	"github.com/kevin-cantwell/consolebitmap"
)

func main() {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "consolebitmap"
	app.Usage = "Renders text bitmaps as unicode block or braille characters."
	app.UsageText = "1) consolebitmap [options] [file]\n" +
		/*      */ "   2) consolebitmap [options] < [file]\n" +
		/*      */ "   3) consolebitmap [options] --banner TEXT"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "encoding,e",
			Usage:  fmt.Sprintf("`ENCODING` is one of %v.", consolebitmap.Names()),
			Value:  "braille",
			EnvVar: "CONSOLEBITMAP_ENCODING",
		},
		cli.StringFlag{
			Name:  "set",
			Usage: "`CHAR` marks a lit pixel in the input. Anything else is unset.",
			Value: "#",
		},
		cli.BoolFlag{
			Name:  "invert,i",
			Usage: "Inverts the bitmap.",
		},
		cli.StringFlag{
			Name:  "banner,b",
			Usage: "Renders `TEXT` in a 7x13 bitmap font instead of reading a bitmap.",
		},
		cli.IntFlag{
			Name:  "scale,s",
			Usage: "`SCALE` multiplies the size of the banner font.",
			Value: 1,
		},
		cli.BoolFlag{
			Name:  "fit,f",
			Usage: "Shrinks the banner scale until it fits the terminal width.",
		},
		cli.StringFlag{
			Name:  "config,c",
			Usage: "Reads defaults from the YAML `FILE`.",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "`LEVEL` is one of debug, info, warn or error.",
			Value: "warn",
		},
	}
	app.Action = func(c *cli.Context) error {
		opts, err := optionsFromContext(c)
		if err != nil {
			return cli.NewExitError(err.Error(), 2)
		}
		logger, err := newLogger(os.Stderr, opts.LogLevel)
		if err != nil {
			return cli.NewExitError(err.Error(), 2)
		}

		var in io.Reader = os.Stdin
		if name := c.Args().First(); name != "" && opts.Banner == "" {
			file, err := os.Open(name)
			if err != nil {
				return cli.NewExitError(err.Error(), 1)
			}
			defer file.Close()
			in = file
		}

		if err := run(opts, in, os.Stdout, logger); err != nil {
			var e *errors.Error
			if errors.As(err, &e) {
				logger.Debug("failed", "stack", e.ErrorStack())
			}
			return cli.NewExitError(err.Error(), 1)
		}
		return nil
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Errorf("invalid log level %q", level)
	}
	return slog.New(newHandler(w, lvl)), nil
}
