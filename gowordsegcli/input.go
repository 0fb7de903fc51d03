package main

import (
	"io"
	"os"
	"unicode/utf8"

	"github.com/msnoigrs/gowordseg/internal/lnreader"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// readLines calls fn with every line of the named files, or of stdin when no
// file is given, and returns the number of lines passed to fn.
func readLines(args []string, fn func(line string)) (int, error) {
	if len(args) == 0 {
		return readLinesFrom("stdin", os.Stdin, fn)
	}
	total := 0
	for _, arg := range args {
		input, err := os.OpenFile(arg, os.O_RDONLY, 0644)
		if err != nil {
			return total, err
		}
		n, err := readLinesFrom(arg, input, fn)
		input.Close()
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func readLinesFrom(name string, input io.Reader, fn func(line string)) (int, error) {
	reader := lnreader.NewLineNumberReader(input)
	n := 0
	for {
		line, err := reader.ReadLine()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, errors.Wrap(err, name)
		}
		if !utf8.Valid(line) {
			if !ignoreerr {
				return n, errors.Errorf("%s:%d: invalid UTF-8 sequence", name, reader.NumLine)
			}
			log.Warn().
				Str("source", name).
				Int("line", reader.NumLine).
				Msg("skip invalid UTF-8 line")
			continue
		}
		fn(string(line))
		n++
	}
}
