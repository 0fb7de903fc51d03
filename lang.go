package gowordseg

import (
	"strings"

	"github.com/msnoigrs/gowordseg/dictionary"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

type LangKind int

const (
	Chinese LangKind = iota
	Laotian
)

func (k LangKind) String() string {
	switch k {
	case Chinese:
		return "chinese"
	case Laotian:
		return "laotian"
	}
	return "unknown"
}

// Lang selects how a Dictionary segments: Chinese uses the greedy scanner
// over lexicon keys of the given Variant, Laotian delegates word boundaries
// to Detector.
type Lang struct {
	Kind     LangKind
	Variant  dictionary.KeyVariant
	Detector WordBoundaryDetector
}

func ChineseLang(variant dictionary.KeyVariant) Lang {
	return Lang{Kind: Chinese, Variant: variant}
}

func LaotianLang(detector WordBoundaryDetector) Lang {
	return Lang{Kind: Laotian, Detector: detector}
}

func (l Lang) Tag() language.Tag {
	switch l.Kind {
	case Chinese:
		if l.Variant == dictionary.Simplified {
			return language.SimplifiedChinese
		}
		return language.TraditionalChinese
	case Laotian:
		return language.Lao
	}
	return language.Und
}

func (l Lang) String() string {
	return l.Tag().String()
}

// ParseKeyVariant accepts "traditional", "simplified" or a BCP 47 tag such
// as "zh-TW" or "zh-Hans".
func ParseKeyVariant(s string) (dictionary.KeyVariant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "traditional":
		return dictionary.Traditional, nil
	case "simplified":
		return dictionary.Simplified, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return dictionary.Traditional, errors.Wrapf(err, "unknown chinese variant %q", s)
	}
	if base, _ := tag.Base(); base.String() != "zh" {
		return dictionary.Traditional, errors.Errorf("not a chinese tag: %q", s)
	}
	script, _ := tag.Script()
	switch script.String() {
	case "Hans":
		return dictionary.Simplified, nil
	case "Hant":
		return dictionary.Traditional, nil
	}
	return dictionary.Traditional, errors.Errorf("no script for %q", s)
}

// ParseLangKind accepts "chinese", "laotian" (or "lao") and BCP 47 tags
// whose base language is zh or lo.
func ParseLangKind(s string) (LangKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "chinese":
		return Chinese, nil
	case "laotian", "lao":
		return Laotian, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Chinese, errors.Wrapf(err, "unknown language %q", s)
	}
	base, _ := tag.Base()
	switch base.String() {
	case "zh":
		return Chinese, nil
	case "lo":
		return Laotian, nil
	}
	return Chinese, errors.Errorf("unsupported language %q", s)
}
