package gowordseg

import "strings"

// Clean removes every occurrence of each pattern from sentence. Patterns are
// literal strings applied one after another, so a later pattern sees the
// result of the earlier removals.
func Clean(sentence string, patterns []string) string {
	for _, p := range patterns {
		if p == "" {
			continue
		}
		sentence = strings.ReplaceAll(sentence, p, "")
	}
	return sentence
}
