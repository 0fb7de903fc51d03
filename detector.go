package gowordseg

import (
	"github.com/msnoigrs/gowordseg/dictionary"
)

// WordBoundaryDetector splits text into words on its own, as needed for
// scripts like Lao where the lexicon alone does not drive the scan.
type WordBoundaryDetector interface {
	SegmentIntoStrings(text string) []string
}

// DetectorSegmenter keeps the pieces returned by a WordBoundaryDetector that
// are exact lexicon entries.
type DetectorSegmenter struct {
	lexicon  *dictionary.Lexicon
	detector WordBoundaryDetector
}

func NewDetectorSegmenter(lexicon *dictionary.Lexicon, detector WordBoundaryDetector) *DetectorSegmenter {
	return &DetectorSegmenter{
		lexicon:  lexicon,
		detector: detector,
	}
}

func (s *DetectorSegmenter) Segment(sentence string) *Result {
	result := NewResult()
	if sentence == "" {
		return result
	}
	for _, word := range s.detector.SegmentIntoStrings(sentence) {
		if def, ok := s.lexicon.Get(word); ok {
			result.Commit(word, def)
		}
	}
	return result
}
