package lnreader

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine(t *testing.T) {
	r := NewLineNumberReader(strings.NewReader("# comment\r\n你好 你好\n\nlast"))
	var lines []string
	for {
		line, err := r.ReadLine()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		lines = append(lines, string(line))
	}
	assert.Equal(t, []string{"# comment", "你好 你好", "", "last"}, lines)
	assert.Equal(t, 4, r.NumLine)
}

func TestIsSkipLine(t *testing.T) {
	assert.True(t, IsSkipLine([]byte("# CC-CEDICT"), '#', '%'))
	assert.True(t, IsSkipLine([]byte("% header"), '#', '%'))
	assert.True(t, IsSkipLine([]byte(" \t"), '#'))
	assert.True(t, IsSkipLine(nil))
	assert.False(t, IsSkipLine([]byte("% header"), '#'))
	assert.False(t, IsSkipLine([]byte("中 中 [zhong1] /middle/"), '#', '%'))
}
