package gowordseg

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Dictionaries holds the dictionaries configured in a BaseConfig. A field is
// nil when its language is not configured.
type Dictionaries struct {
	Chinese *Dictionary
	Laotian *Dictionary
}

func (ds *Dictionaries) Get(kind LangKind) (*Dictionary, bool) {
	var d *Dictionary
	switch kind {
	case Chinese:
		d = ds.Chinese
	case Laotian:
		d = ds.Laotian
	}
	return d, d != nil
}

// LoadDictionaries loads every configured dictionary in its own goroutine
// and returns once all of them are ready.
func LoadDictionaries(ctx context.Context, config *BaseConfig) (*Dictionaries, error) {
	if config.ChineseDict == "" && config.LaotianDict == "" {
		return nil, &ConfigError{Err: errors.New("no dictionary configured")}
	}
	table, err := LoadPunctuationTable(config.PunctuationFile)
	if err != nil {
		return nil, err
	}

	ds := &Dictionaries{}
	g, ctx := errgroup.WithContext(ctx)
	if config.ChineseDict != "" {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := LoadChineseDictionary(config.ChineseDict, config.ChineseVariant, table, config.UserDict...)
			if err != nil {
				return err
			}
			ds.Chinese = d
			return nil
		})
	}
	if config.LaotianDict != "" {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := LoadLaotianDictionary(config.LaotianDict, config.LaotianWords, table)
			if err != nil {
				return err
			}
			ds.Laotian = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ds, nil
}
