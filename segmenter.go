package gowordseg

import (
	"github.com/msnoigrs/gowordseg/dictionary"
)

// Segmenter finds the known words of an already cleaned sentence.
type Segmenter interface {
	Segment(sentence string) *Result
}

// GreedySegmenter scans a sentence code point by code point and keeps the
// longest lexicon word found from the current start position.
type GreedySegmenter struct {
	lexicon *dictionary.Lexicon
}

func NewGreedySegmenter(lexicon *dictionary.Lexicon) *GreedySegmenter {
	return &GreedySegmenter{
		lexicon: lexicon,
	}
}

// Segment never fails. A sentence without any known word gives an empty
// result.
//
// The window [start, end) grows while it is a lexicon word or a strict prefix
// of one. On the first miss after a match the match is committed and the
// scan restarts right after it. A position with no match at all is retried
// once more before start moves forward, which bounds the work spent on a
// single unknown code point.
func (s *GreedySegmenter) Segment(sentence string) *Result {
	result := NewResult()
	chars := []rune(sentence)
	length := len(chars)

	start, end := 0, 1
	unmatched := 0

	var (
		lastWord string
		lastDef  *dictionary.Definition
		lastEnd  int
	)
	commit := func() {
		if lastDef != nil {
			result.Commit(lastWord, lastDef)
			lastDef = nil
		}
	}

	for start < length && end <= length {
		candidate := string(chars[start:end])

		if def, ok := s.lexicon.Get(candidate); ok {
			lastWord, lastDef, lastEnd = candidate, def, end
			if end == length {
				commit()
			}
			end++
			unmatched = 0
			continue
		}

		if end < length && s.lexicon.HasPrefix(candidate) {
			end++
			continue
		}

		if unmatched > 1 {
			start++
		} else if lastDef != nil {
			commit()
			start = lastEnd
		}
		end = start + 1
		unmatched++
	}
	commit()

	return result
}
