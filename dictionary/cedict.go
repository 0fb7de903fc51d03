package dictionary

import (
	"bytes"
	"io"
	"strings"

	"github.com/msnoigrs/gowordseg/internal/lnreader"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// KeyVariant selects which Chinese script keys the lexicon.
type KeyVariant int

const (
	Traditional KeyVariant = iota
	Simplified
)

func (v KeyVariant) String() string {
	if v == Simplified {
		return "simplified"
	}
	return "traditional"
}

var (
	errNoSimplified    = errors.New("missing simplified form")
	errNoPronunciation = errors.New("missing bracketed pronunciation")
	errNoTranslation   = errors.New("missing translations")
)

// CedictLoader reads CC-CEDICT formatted text:
//
//	傳統 传统 [chuan2 tong3] /tradition/traditional/convention/
type CedictLoader struct {
	Variant KeyVariant
}

func (l *CedictLoader) Load(r io.Reader, name string) (*Lexicon, error) {
	b := NewLexiconBuilder()
	if err := l.ReadInto(b, r, name); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// ReadInto adds the entries of r to b. Malformed lines are skipped; I/O and
// encoding failures stop the load.
func (l *CedictLoader) ReadInto(b *LexiconBuilder, r io.Reader, name string) error {
	reader := lnreader.NewLineNumberReader(newDecoder(r))
	var records, skipped int
	for {
		line, err := reader.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fatalError(name, reader.NumLine+1, err)
		}
		if err := checkUTF8(name, reader.NumLine, line); err != nil {
			return err
		}
		if lnreader.IsSkipLine(line, '#', '%') {
			continue
		}
		key, def, err := l.parseLine(line)
		if err != nil {
			skipped++
			log.Warn().
				Str("source", name).
				Int("line", reader.NumLine).
				Err(err).
				Msg("skip malformed CEDICT entry")
			continue
		}
		b.InsertOrMerge(key, def)
		records++
	}
	log.Debug().
		Str("source", name).
		Int("records", records).
		Int("skipped", skipped).
		Msg("CEDICT source read")
	return nil
}

func (l *CedictLoader) parseLine(line []byte) (string, *Definition, error) {
	line = bytes.TrimSpace(line)
	i := bytes.IndexByte(line, ' ')
	if i <= 0 {
		return "", nil, errNoSimplified
	}
	traditional := string(line[:i])
	rest := bytes.TrimLeft(line[i+1:], " ")

	i = bytes.IndexByte(rest, ' ')
	if i <= 0 {
		return "", nil, errNoSimplified
	}
	simplified := string(rest[:i])
	rest = bytes.TrimLeft(rest[i+1:], " ")

	if len(rest) == 0 || rest[0] != '[' {
		return "", nil, errNoPronunciation
	}
	i = bytes.IndexByte(rest, ']')
	if i < 0 {
		return "", nil, errNoPronunciation
	}
	pronunciation := strings.TrimSpace(string(rest[1:i]))
	if pronunciation == "" {
		return "", nil, errNoPronunciation
	}

	var translations []string
	for _, t := range strings.Split(string(rest[i+1:]), "/") {
		t = strings.TrimSpace(t)
		if t != "" {
			translations = append(translations, t)
		}
	}
	if len(translations) == 0 {
		return "", nil, errNoTranslation
	}

	key, alternate := traditional, simplified
	if l.Variant == Simplified {
		key, alternate = simplified, traditional
	}
	return key, NewDefinition(key, alternate, pronunciation, translations...), nil
}
