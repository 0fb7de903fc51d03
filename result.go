package gowordseg

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/msnoigrs/gowordseg/dictionary"
)

// Result maps the words found in a text to copies of their definitions whose
// Count holds the number of occurrences. Iteration follows first insertion.
type Result struct {
	words *linkedhashmap.Map
}

type Entry struct {
	Word       string
	Definition *dictionary.Definition
}

func NewResult() *Result {
	return &Result{
		words: linkedhashmap.New(),
	}
}

// Commit records one occurrence of word.
func (r *Result) Commit(word string, def *dictionary.Definition) {
	r.add(word, def, 1)
}

func (r *Result) add(word string, def *dictionary.Definition, count int) {
	if v, ok := r.words.Get(word); ok {
		v.(*dictionary.Definition).Count += count
		return
	}
	c := def.Clone()
	c.Count = count
	r.words.Put(word, c)
}

func (r *Result) Get(word string) (*dictionary.Definition, bool) {
	v, ok := r.words.Get(word)
	if !ok {
		return nil, false
	}
	return v.(*dictionary.Definition), true
}

func (r *Result) Len() int {
	return r.words.Size()
}

func (r *Result) IsEmpty() bool {
	return r.words.Empty()
}

func (r *Result) Words() []string {
	words := make([]string, 0, r.words.Size())
	it := r.words.Iterator()
	for it.Next() {
		words = append(words, it.Key().(string))
	}
	return words
}

// Entries returns the words in first-insertion order.
func (r *Result) Entries() []Entry {
	entries := make([]Entry, 0, r.words.Size())
	it := r.words.Iterator()
	for it.Next() {
		entries = append(entries, Entry{
			Word:       it.Key().(string),
			Definition: it.Value().(*dictionary.Definition),
		})
	}
	return entries
}

// Merge adds the counts of other to r. Words unknown to r are appended in
// the order of other.
func (r *Result) Merge(other *Result) {
	it := other.words.Iterator()
	for it.Next() {
		def := it.Value().(*dictionary.Definition)
		r.add(it.Key().(string), def, def.Count)
	}
}

func (r *Result) Rank() []Entry {
	return Rank(r)
}
