package gowordseg

import (
	"strings"
	"testing"

	"github.com/msnoigrs/gowordseg/dictionary"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankStability(t *testing.T) {
	r := NewResult()
	a := dictionary.NewDefinition("A", "", "a")
	b := dictionary.NewDefinition("B", "", "b")
	c := dictionary.NewDefinition("C", "", "c")
	r.Commit("A", a)
	r.Commit("B", b)
	r.Commit("C", c)
	r.Commit("B", b)
	r.Commit("A", a)

	ranked := r.Rank()
	require.Len(t, ranked, 3)
	assert.Equal(t, "A", ranked[0].Word)
	assert.Equal(t, "B", ranked[1].Word)
	assert.Equal(t, "C", ranked[2].Word)
	assert.Equal(t, []int{2, 2, 1}, []int{
		ranked[0].Definition.Count,
		ranked[1].Definition.Count,
		ranked[2].Definition.Count,
	})

	r.Commit("C", c)
	r.Commit("C", c)
	ranked = Rank(r)
	assert.Equal(t, "C", ranked[0].Word)
	assert.Equal(t, "A", ranked[1].Word)
	assert.Equal(t, "B", ranked[2].Word)
}

func TestResultMerge(t *testing.T) {
	s := NewGreedySegmenter(newTestLexicon(cedictLikeWords...))
	total := s.Segment("你好")
	total.Merge(s.Segment("去年你好"))

	assert.Equal(t, []string{"你好", "去年"}, total.Words())
	assert.Equal(t, map[string]int{"你好": 2, "去年": 1}, counts(total))
}

func TestTabularRoundTrip(t *testing.T) {
	b := dictionary.NewLexiconBuilder()
	b.InsertOrMerge("熱", dictionary.NewDefinition("熱", "热", "re4", "hot", "fever"))
	b.InsertOrMerge("天氣", dictionary.NewDefinition("天氣", "天气", "tian1 qi4", "weather"))
	b.InsertOrMerge("很", dictionary.NewDefinition("很", "", "hen3", "very"))
	b.InsertOrMerge("非常", dictionary.NewDefinition("非常", "", "fei1 chang2", "very", "unusual"))
	b.InsertOrMerge("今天", dictionary.NewDefinition("今天", "", "jin1 tian1", "today"))
	d, err := NewDictionary(ChineseLang(dictionary.Traditional), b.Build(), []string{"。"})
	require.NoError(t, err)

	ranked := d.Segment("今天天氣很熱。非常熱").Rank()
	out, err := ToTabular(ranked)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Equal(t, "written,alternate,pronunciations,translations,count", lines[0])
	assert.Equal(t, `熱,热,re4,"hot,fever",2`, lines[1])
	assert.Len(t, lines, 6)

	parsed, err := ReadTabular(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, parsed, len(ranked))
	for i := range ranked {
		assert.Equal(t, ranked[i].Word, parsed[i].Word)
		assert.Equal(t, ranked[i].Definition.Count, parsed[i].Definition.Count)
		assert.Equal(t, ranked[i].Definition.Alternate, parsed[i].Definition.Alternate)
		assert.Equal(t, ranked[i].Definition.Translations, parsed[i].Definition.Translations)
	}

	again := ResultFromEntries(parsed)
	assert.Equal(t, 5, again.Len())
	hot, ok := again.Get("熱")
	require.True(t, ok)
	assert.Equal(t, 2, hot.Count)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteTabularError(t *testing.T) {
	r := NewResult()
	r.Commit("你好", dictionary.NewDefinition("你好", "", "ni3 hao3", "hello"))

	err := WriteTabular(failingWriter{}, r.Rank())
	require.Error(t, err)
	var serr *SerializationError
	require.True(t, errors.As(err, &serr))
	assert.Contains(t, err.Error(), "disk full")
}

func TestReadTabularErrors(t *testing.T) {
	_, err := ReadTabular(strings.NewReader("word,count\n你好,1\n"))
	assert.Error(t, err)

	_, err = ReadTabular(strings.NewReader("written,alternate,pronunciations,translations,count\n你好,,ni3 hao3,hello,many\n"))
	assert.Error(t, err)

	entries, err := ReadTabular(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, entries)
}
