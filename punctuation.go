package gowordseg

import (
	"encoding/json"
	"io"
	"os"

	"github.com/msnoigrs/gowordseg/data"
	"github.com/pkg/errors"
)

const defaultPunctuationAsset = "punctuation.json"

// PunctuationTable lists, per language, the literal strings removed from a
// sentence before it is segmented.
type PunctuationTable struct {
	Chinese []string
	Laotian []string
	Western []string
}

func (t *PunctuationTable) For(kind LangKind) []string {
	switch kind {
	case Chinese:
		return t.Chinese
	case Laotian:
		return t.Laotian
	}
	return t.Western
}

// ReadPunctuationTable decodes a JSON object with "chinese" and "laotian"
// string arrays and an optional "western" one.
func ReadPunctuationTable(reader io.Reader, source string) (*PunctuationTable, error) {
	internalTable := &struct {
		Chinese *[]string
		Laotian *[]string
		Western *[]string
	}{}

	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(internalTable); err != nil {
		return nil, &ConfigError{Source: source, Err: errors.Wrap(err, "punctuation table")}
	}
	if internalTable.Chinese == nil {
		return nil, &ConfigError{Source: source, Err: errors.New("punctuation table: no chinese list")}
	}
	if internalTable.Laotian == nil {
		return nil, &ConfigError{Source: source, Err: errors.New("punctuation table: no laotian list")}
	}

	t := &PunctuationTable{
		Chinese: *internalTable.Chinese,
		Laotian: *internalTable.Laotian,
	}
	if internalTable.Western != nil {
		t.Western = *internalTable.Western
	}
	return t, nil
}

// LoadPunctuationTable reads filename, or the bundled table when filename is
// empty.
func LoadPunctuationTable(filename string) (*PunctuationTable, error) {
	if filename == "" {
		f, err := data.Assets.Open(defaultPunctuationAsset)
		if err != nil {
			return nil, &ConfigError{Source: defaultPunctuationAsset, Err: err}
		}
		defer f.Close()
		return ReadPunctuationTable(f, defaultPunctuationAsset)
	}

	fd, err := os.OpenFile(filename, os.O_RDONLY, 0644)
	if err != nil {
		return nil, &ConfigError{Source: filename, Err: err}
	}
	defer fd.Close()
	return ReadPunctuationTable(fd, filename)
}
