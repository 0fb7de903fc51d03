package gowordseg

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// CharacterCount is the number of occurrences of one code point.
type CharacterCount struct {
	Character rune
	Count     int
}

// CharacterCounts tallies code points, ordered by code point.
type CharacterCounts struct {
	counts *treemap.Map
}

func NewCharacterCounts() *CharacterCounts {
	return &CharacterCounts{
		counts: treemap.NewWith(utils.RuneComparator),
	}
}

// CountCharacters counts every code point of text once the patterns are
// removed. Spaces separate chunks and are not counted.
func CountCharacters(text string, patterns []string) *CharacterCounts {
	cc := NewCharacterCounts()
	for _, chunk := range strings.Split(text, " ") {
		for _, r := range Clean(chunk, patterns) {
			cc.add(r, 1)
		}
	}
	return cc
}

func (cc *CharacterCounts) add(r rune, n int) {
	if v, ok := cc.counts.Get(r); ok {
		cc.counts.Put(r, v.(int)+n)
		return
	}
	cc.counts.Put(r, n)
}

func (cc *CharacterCounts) Get(r rune) int {
	v, ok := cc.counts.Get(r)
	if !ok {
		return 0
	}
	return v.(int)
}

func (cc *CharacterCounts) Len() int {
	return cc.counts.Size()
}

func (cc *CharacterCounts) Merge(other *CharacterCounts) {
	it := other.counts.Iterator()
	for it.Next() {
		cc.add(it.Key().(rune), it.Value().(int))
	}
}

// Rank orders the characters by descending count, then by code point.
func (cc *CharacterCounts) Rank() []CharacterCount {
	ranked := make([]CharacterCount, 0, cc.counts.Size())
	it := cc.counts.Iterator()
	for it.Next() {
		ranked = append(ranked, CharacterCount{
			Character: it.Key().(rune),
			Count:     it.Value().(int),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

func (cc *CharacterCounts) WriteTabular(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"character", "count"}); err != nil {
		return &SerializationError{Err: err}
	}
	for _, c := range cc.Rank() {
		if err := cw.Write([]string{string(c.Character), strconv.Itoa(c.Count)}); err != nil {
			return &SerializationError{Err: err}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return &SerializationError{Err: err}
	}
	return nil
}
