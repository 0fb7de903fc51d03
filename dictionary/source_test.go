package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cedict_ts.u8")
	require.NoError(t, os.WriteFile(path, []byte("今夜 今夜 [jin1 ye4] /tonight/\n"), 0644))

	src, err := OpenSource(path)
	require.NoError(t, err)
	defer src.Close()

	lexicon, err := (&CedictLoader{}).Load(src, src.Name)
	require.NoError(t, err)
	d, ok := lexicon.Get("今夜")
	require.True(t, ok)
	assert.Equal(t, []string{"tonight"}, d.Translations)
}

func TestOpenSourceMissing(t *testing.T) {
	_, err := OpenSource(filepath.Join(t.TempDir(), "missing.u8"))
	var lerr *LoadError
	require.True(t, errors.As(err, &lerr))
	assert.True(t, lerr.Fatal)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}
