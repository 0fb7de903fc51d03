package gowordseg

import (
	"time"

	"github.com/msnoigrs/gowordseg/dictionary"
	"github.com/msnoigrs/gowordseg/wordcut"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Dictionary couples a lexicon with the cleaning rules and the segmentation
// strategy of one language.
type Dictionary struct {
	lang        Lang
	lexicon     *dictionary.Lexicon
	punctuation []string
	segmenter   Segmenter
}

func NewDictionary(lang Lang, lexicon *dictionary.Lexicon, punctuation []string) (*Dictionary, error) {
	if lexicon == nil {
		return nil, &ConfigError{Source: lang.String(), Err: errors.New("no lexicon")}
	}
	if punctuation == nil {
		return nil, &ConfigError{Source: lang.String(), Err: errors.New("no punctuation list")}
	}

	d := &Dictionary{
		lang:        lang,
		lexicon:     lexicon,
		punctuation: punctuation,
	}
	switch lang.Kind {
	case Chinese:
		d.segmenter = NewGreedySegmenter(lexicon)
	case Laotian:
		if lang.Detector == nil {
			return nil, &ConfigError{Source: lang.String(), Err: errors.New("no word boundary detector")}
		}
		d.segmenter = NewDetectorSegmenter(lexicon, lang.Detector)
	default:
		return nil, &ConfigError{Err: errors.Errorf("unsupported language %d", lang.Kind)}
	}
	return d, nil
}

func (d *Dictionary) Lang() Lang {
	return d.lang
}

func (d *Dictionary) Lexicon() *dictionary.Lexicon {
	return d.lexicon
}

func (d *Dictionary) Punctuation() []string {
	return d.punctuation
}

// Segment cleans sentence and returns the words found in it.
func (d *Dictionary) Segment(sentence string) *Result {
	return d.segmenter.Segment(Clean(sentence, d.punctuation))
}

// SegmentAll segments every sentence and sums the counts.
func (d *Dictionary) SegmentAll(sentences ...string) *Result {
	total := NewResult()
	for _, s := range sentences {
		total.Merge(d.Segment(s))
	}
	return total
}

// LoadChineseDictionary reads a CC-CEDICT file and any additional
// CEDICT-formatted user dictionaries into one lexicon.
func LoadChineseDictionary(filename string, variant dictionary.KeyVariant, table *PunctuationTable, userDicts ...string) (*Dictionary, error) {
	if table == nil {
		return nil, &ConfigError{Source: filename, Err: errors.New("no punctuation table")}
	}
	begin := time.Now()
	loader := &dictionary.CedictLoader{Variant: variant}
	b := dictionary.NewLexiconBuilder()
	for _, f := range append([]string{filename}, userDicts...) {
		if err := readSource(f, func(src *dictionary.Source) error {
			return loader.ReadInto(b, src, f)
		}); err != nil {
			return nil, err
		}
	}
	lexicon := b.Build()
	log.Info().
		Str("source", filename).
		Str("variant", variant.String()).
		Int("entries", lexicon.Len()).
		Dur("elapsed", time.Since(begin)).
		Msg("chinese dictionary loaded")
	return NewDictionary(ChineseLang(variant), lexicon, table.For(Chinese))
}

// LoadLaotianDictionary reads a Lao CSV lexicon. The word boundary detector
// knows every lexicon key plus the words listed in wordsFile, if given.
func LoadLaotianDictionary(filename string, wordsFile string, table *PunctuationTable) (*Dictionary, error) {
	if table == nil {
		return nil, &ConfigError{Source: filename, Err: errors.New("no punctuation table")}
	}
	begin := time.Now()
	var lexicon *dictionary.Lexicon
	err := readSource(filename, func(src *dictionary.Source) error {
		var err error
		lexicon, err = (&dictionary.CSVLoader{}).Load(src, filename)
		return err
	})
	if err != nil {
		return nil, err
	}

	words := lexicon.Words()
	if wordsFile != "" {
		err := readSource(wordsFile, func(src *dictionary.Source) error {
			extra, err := dictionary.ReadWordList(src, wordsFile)
			words = append(words, extra...)
			return err
		})
		if err != nil {
			return nil, err
		}
	}
	detector := wordcut.New(words)
	log.Info().
		Str("source", filename).
		Int("entries", lexicon.Len()).
		Int("detectorWords", detector.Len()).
		Dur("elapsed", time.Since(begin)).
		Msg("laotian dictionary loaded")
	return NewDictionary(LaotianLang(detector), lexicon, table.For(Laotian))
}

func readSource(filename string, f func(src *dictionary.Source) error) error {
	src, err := dictionary.OpenSource(filename)
	if err != nil {
		return err
	}
	defer src.Close()
	return f(src)
}
