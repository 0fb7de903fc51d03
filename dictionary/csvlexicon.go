package dictionary

import (
	"encoding/csv"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	wordColumns          = []string{"laoword", "word", "written"}
	alternateColumns     = []string{"alternate"}
	pronunciationColumns = []string{"pronunciation", "phonetic"}
	translationColumns   = []string{"english", "translation"}
	levelColumns         = []string{"level"}
)

// CSVLoader reads a tabular lexicon with a header row, e.g. the
// LaoWord,Pronunciation,English dictionary.
type CSVLoader struct {
	Comma rune
}

func (l *CSVLoader) Load(r io.Reader, name string) (*Lexicon, error) {
	b := NewLexiconBuilder()
	if err := l.ReadInto(b, r, name); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

type csvColumns struct {
	word, alternate, pronunciation, translation, level int
}

func findColumn(header []string, names []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, n := range names {
			if h == n {
				return i
			}
		}
	}
	return -1
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func (l *CSVLoader) ReadInto(b *LexiconBuilder, r io.Reader, name string) error {
	reader := csv.NewReader(newDecoder(r))
	if l.Comma != 0 {
		reader.Comma = l.Comma
	}
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return fatalError(name, 1, errors.New("missing header row"))
	}
	if err != nil {
		return fatalError(name, 1, err)
	}
	cols := csvColumns{
		word:          findColumn(header, wordColumns),
		alternate:     findColumn(header, alternateColumns),
		pronunciation: findColumn(header, pronunciationColumns),
		translation:   findColumn(header, translationColumns),
		level:         findColumn(header, levelColumns),
	}
	if cols.word < 0 {
		return fatalError(name, 1, errors.Errorf("no word column in header %q", strings.Join(header, ",")))
	}

	var records, skipped int
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				skipped++
				log.Warn().
					Str("source", name).
					Int("line", perr.StartLine).
					Err(err).
					Msg("skip malformed CSV record")
				continue
			}
			return fatalError(name, 0, err)
		}
		line, _ := reader.FieldPos(0)
		for _, f := range record {
			if !utf8.ValidString(f) {
				return fatalError(name, line, errInvalidUTF8)
			}
		}
		word := field(record, cols.word)
		if word == "" {
			skipped++
			log.Warn().
				Str("source", name).
				Int("line", line).
				Msg("skip CSV record without word")
			continue
		}
		def := NewDefinition(
			word,
			field(record, cols.alternate),
			field(record, cols.pronunciation),
			field(record, cols.translation),
		)
		def.Level = field(record, cols.level)
		b.InsertOrMerge(word, def)
		records++
	}
	log.Debug().
		Str("source", name).
		Int("records", records).
		Int("skipped", skipped).
		Msg("CSV lexicon read")
	return nil
}
