// Package wordcut splits text written without spaces into words of a known
// word list, choosing the split that leaves the fewest unknown characters.
package wordcut

import (
	"unicode"
	"unicode/utf8"

	iradix "github.com/hashicorp/go-immutable-radix"
)

type tokenKind int

const (
	kindWord tokenKind = iota
	kindUnknown
	kindSpace
)

type Wordcut struct {
	tree *iradix.Tree
}

func New(words []string) *Wordcut {
	txn := iradix.New().Txn()
	for _, w := range words {
		if w == "" {
			continue
		}
		txn.Insert([]byte(w), struct{}{})
	}
	return &Wordcut{tree: txn.Commit()}
}

// Len returns the number of distinct known words.
func (w *Wordcut) Len() int {
	return w.tree.Len()
}

func (w *Wordcut) Contains(word string) bool {
	_, ok := w.tree.Get([]byte(word))
	return ok
}

type pathNode struct {
	reached bool
	unknown int
	tokens  int
	prev    int
	kind    tokenKind
}

func (p *pathNode) relax(unknown int, tokens int, prev int, kind tokenKind) {
	if p.reached && (p.unknown < unknown || (p.unknown == unknown && p.tokens <= tokens)) {
		return
	}
	*p = pathNode{
		reached: true,
		unknown: unknown,
		tokens:  tokens,
		prev:    prev,
		kind:    kind,
	}
}

// SegmentIntoStrings returns the pieces of text in order; concatenated they
// give text back. Runs of unknown characters and runs of white space are
// returned as single pieces.
func (w *Wordcut) SegmentIntoStrings(text string) []string {
	if text == "" {
		return []string{}
	}
	b := []byte(text)
	n := len(b)
	nodes := make([]pathNode, n+1)
	nodes[0].reached = true

	root := w.tree.Root()
	for i := 0; i < n; i++ {
		cur := nodes[i]
		if !cur.reached {
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		if unicode.IsSpace(r) {
			nodes[i+size].relax(cur.unknown, cur.tokens+1, i, kindSpace)
			continue
		}
		root.WalkPath(b[i:], func(k []byte, _ interface{}) bool {
			if len(k) > 0 {
				nodes[i+len(k)].relax(cur.unknown, cur.tokens+1, i, kindWord)
			}
			return false
		})
		nodes[i+size].relax(cur.unknown+1, cur.tokens+1, i, kindUnknown)
	}

	type piece struct {
		begin, end int
		kind       tokenKind
	}
	var reversed []piece
	for end := n; end > 0; {
		node := nodes[end]
		reversed = append(reversed, piece{begin: node.prev, end: end, kind: node.kind})
		end = node.prev
	}

	pieces := make([]string, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		p := reversed[i]
		begin := p.begin
		if p.kind != kindWord {
			for i > 0 && reversed[i-1].kind == p.kind {
				i--
			}
			p = reversed[i]
		}
		pieces = append(pieces, string(b[begin:p.end]))
	}
	return pieces
}
