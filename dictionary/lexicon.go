package dictionary

import (
	iradix "github.com/hashicorp/go-immutable-radix"
)

// Lexicon maps written words to their definitions. It never changes after
// Build, so any number of goroutines may read it at once. Definitions
// returned by Get are shared and must not be modified.
type Lexicon struct {
	tree *iradix.Tree
}

func (l *Lexicon) Get(word string) (*Definition, bool) {
	if word == "" {
		return nil, false
	}
	v, ok := l.tree.Get([]byte(word))
	if !ok {
		return nil, false
	}
	return v.(*Definition), true
}

// HasPrefix reports whether some key is strictly longer than prefix and
// starts with it.
func (l *Lexicon) HasPrefix(prefix string) bool {
	found := false
	l.tree.Root().WalkPrefix([]byte(prefix), func(k []byte, _ interface{}) bool {
		if len(k) > len(prefix) {
			found = true
			return true
		}
		return false
	})
	return found
}

func (l *Lexicon) Len() int {
	return l.tree.Len()
}

// Walk visits every entry in byte order of the keys until fn returns false.
func (l *Lexicon) Walk(fn func(word string, def *Definition) bool) {
	l.tree.Root().Walk(func(k []byte, v interface{}) bool {
		return !fn(string(k), v.(*Definition))
	})
}

func (l *Lexicon) Words() []string {
	words := make([]string, 0, l.Len())
	l.Walk(func(word string, _ *Definition) bool {
		words = append(words, word)
		return true
	})
	return words
}

// LexiconBuilder collects definitions, merging repeated keys, until Build.
type LexiconBuilder struct {
	entries map[string]*Definition
}

func NewLexiconBuilder() *LexiconBuilder {
	return &LexiconBuilder{
		entries: map[string]*Definition{},
	}
}

func (b *LexiconBuilder) InsertOrMerge(key string, def *Definition) {
	InsertOrMerge(b.entries, key, def)
}

// AddLexicon merges every entry of l into the builder.
func (b *LexiconBuilder) AddLexicon(l *Lexicon) {
	l.Walk(func(word string, def *Definition) bool {
		b.InsertOrMerge(word, def.Clone())
		return true
	})
}

func (b *LexiconBuilder) Len() int {
	return len(b.entries)
}

func (b *LexiconBuilder) Build() *Lexicon {
	txn := iradix.New().Txn()
	for k, def := range b.entries {
		def.Count = 0
		txn.Insert([]byte(k), def)
	}
	b.entries = map[string]*Definition{}
	return &Lexicon{tree: txn.Commit()}
}
