package gowordseg

import (
	"strings"
	"testing"

	"github.com/msnoigrs/gowordseg/wordcut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fieldsDetector struct{}

func (fieldsDetector) SegmentIntoStrings(text string) []string {
	return strings.Fields(text)
}

func TestDetectorSegmenter(t *testing.T) {
	t.Run("exact lexicon keys only", func(t *testing.T) {
		s := NewDetectorSegmenter(newTestLexicon("ກິນ", "ເຂົ້າ"), fieldsDetector{})
		r := s.Segment("ກິນ ເຂົ້າ ກິນ ກິນເຂົ້າ hello")
		assert.Equal(t, map[string]int{"ກິນ": 2, "ເຂົ້າ": 1}, counts(r))
		assert.Equal(t, []string{"ກິນ", "ເຂົ້າ"}, r.Words())
	})

	t.Run("wordcut", func(t *testing.T) {
		lexicon := newTestLexicon("ລູກຫລ້າ", "ຢາກ", "ໄດ້", "ກິນ", "ຫຍັງ")
		s := NewDetectorSegmenter(lexicon, wordcut.New(lexicon.Words()))

		r := s.Segment("ລູກຫລ້າຢາກໄດ້ກິນຫຍັງ")
		assert.Equal(t, map[string]int{"ລູກຫລ້າ": 1, "ຢາກ": 1, "ໄດ້": 1, "ກິນ": 1, "ຫຍັງ": 1}, counts(r))

		d, ok := r.Get("ລູກຫລ້າ")
		require.True(t, ok)
		assert.Equal(t, []string{"en(ລູກຫລ້າ)"}, d.Translations)
	})

	t.Run("no match", func(t *testing.T) {
		lexicon := newTestLexicon("ກິນ")
		s := NewDetectorSegmenter(lexicon, wordcut.New(lexicon.Words()))
		assert.True(t, s.Segment("hello").IsEmpty())
		assert.True(t, s.Segment("").IsEmpty())
	})
}
