package dictionary

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrintLexicon writes one line per entry in key order:
// written,alternate,pronunciations,translations,level
func PrintLexicon(lexicon *Lexicon, output io.Writer) error {
	var err error
	lexicon.Walk(func(word string, def *Definition) bool {
		_, err = fmt.Fprintf(output,
			"%s,%s,%s,%s,%s\n",
			word,
			orStar(def.Alternate),
			joinOrStar(def.Pronunciations, "/"),
			joinOrStar(def.Translations, "/"),
			orStar(def.Level),
		)
		return err == nil
	})
	return err
}

// PrintSummary writes the entry count and the longest key of lexicon.
func PrintSummary(name string, lexicon *Lexicon, output io.Writer) error {
	p := message.NewPrinter(language.English)
	maxlen := 0
	longest := ""
	lexicon.Walk(func(word string, _ *Definition) bool {
		if n := utf8.RuneCountInString(word); n > maxlen {
			maxlen = n
			longest = word
		}
		return true
	})
	if _, err := fmt.Fprintf(output, "source: %s\n", name); err != nil {
		return err
	}
	if _, err := p.Fprintf(output, "entries: %d\n", lexicon.Len()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(output, "longest: %s (%d)\n", orStar(longest), maxlen)
	return err
}

func orStar(s string) string {
	if s == "" {
		return "*"
	}
	return s
}

func joinOrStar(list []string, sep string) string {
	if len(list) == 0 {
		return "*"
	}
	return strings.Join(list, sep)
}
