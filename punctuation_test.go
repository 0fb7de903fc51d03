package gowordseg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPunctuationTableDefault(t *testing.T) {
	table, err := LoadPunctuationTable("")
	require.NoError(t, err)
	assert.Contains(t, table.For(Chinese), "。")
	assert.Contains(t, table.For(Chinese), "《")
	assert.Contains(t, table.For(Laotian), ".")
	assert.NotContains(t, table.For(Laotian), " ")
	assert.NotEmpty(t, table.Western)
}

func TestReadPunctuationTable(t *testing.T) {
	table, err := ReadPunctuationTable(strings.NewReader(`{"chinese": ["。"], "laotian": []}`), "inline")
	require.NoError(t, err)
	assert.Equal(t, []string{"。"}, table.Chinese)
	assert.Equal(t, []string{}, table.Laotian)
	assert.Nil(t, table.Western)

	for _, src := range []string{
		`{"chinese": ["。"]}`,
		`{"laotian": ["."]}`,
		`["。"]`,
		`{"chinese": [1], "laotian": []}`,
	} {
		_, err := ReadPunctuationTable(strings.NewReader(src), "inline")
		var cerr *ConfigError
		require.True(t, errors.As(err, &cerr), src)
		assert.Equal(t, "inline", cerr.Source)
	}
}

func TestLoadPunctuationTableFile(t *testing.T) {
	_, err := LoadPunctuationTable(filepath.Join(t.TempDir(), "missing.json"))
	var cerr *ConfigError
	require.True(t, errors.As(err, &cerr))

	path := filepath.Join(t.TempDir(), "punctuation.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"chinese": ["！"], "laotian": ["!"]}`), 0644))
	table, err := LoadPunctuationTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"!"}, table.For(Laotian))
}
