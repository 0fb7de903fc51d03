package dictionary

import (
	"io"
	"strings"

	"github.com/msnoigrs/gowordseg/internal/lnreader"
)

// ReadWordList reads one word per line. Blank lines and lines starting with
// '#' are ignored.
func ReadWordList(r io.Reader, name string) ([]string, error) {
	reader := lnreader.NewLineNumberReader(newDecoder(r))
	words := []string{}
	for {
		line, err := reader.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fatalError(name, reader.NumLine+1, err)
		}
		if err := checkUTF8(name, reader.NumLine, line); err != nil {
			return nil, err
		}
		if lnreader.IsSkipLine(line, '#') {
			continue
		}
		words = append(words, strings.TrimSpace(string(line)))
	}
	return words, nil
}
