package main

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-errors/errors"
	"golang.org/x/term"

	"github.com/kevin-cantwell/consolebitmap"
)

const defaultColumns = 80 // Small, but a pretty standard default

func run(opts options, in io.Reader, out io.Writer, log *slog.Logger) error {
	encoding, err := consolebitmap.Lookup(opts.Encoding)
	if err != nil {
		return errors.Wrap(err, 0)
	}

	var bitmap [][]bool
	var encOpts []consolebitmap.Option
	if opts.Banner != "" {
		scale := opts.Scale
		if opts.Fit {
			width := rasterize(opts.Banner).Bounds().Dx()
			scale = fitScale(width, scale, terminalColumns(), encoding.Cols())
			if scale != opts.Scale {
				log.Info("reduced banner scale to fit terminal", "scale", scale)
			}
		}
		bitmap = banner(opts.Banner, scale, opts.Invert)
	} else {
		lines, err := readLines(in)
		if err != nil {
			return errors.Wrap(err, 0)
		}
		bitmap = consolebitmap.ParseBitmap(opts.setRune(), lines...)
		if opts.Invert {
			encOpts = append(encOpts, consolebitmap.WithInvertedPixels())
		}
	}
	log.Debug("encoding bitmap", "encoding", opts.Encoding, "rows", len(bitmap))

	if err := consolebitmap.NewEncoder(out, encoding, encOpts...).Encode(bitmap); err != nil {
		return errors.Wrap(err, 0)
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	return lines, scanner.Err()
}

func terminalColumns() int {
	// Stdout is usually the terminal being drawn on, but may be redirected.
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if !term.IsTerminal(int(f.Fd())) {
			continue
		}
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultColumns
}
