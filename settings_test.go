package gowordseg

import (
	"strings"
	"testing"

	"github.com/msnoigrs/gowordseg/dictionary"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var settingsSample = `
{
  "path" : "/usr/local/share/gowordseg",
  "chineseDict" : "cedict_ts.u8",
  "chineseVariant" : "zh-Hans",
  "userDict" : [ "user.u8", "/opt/dict/extra.u8" ],
  "laotianDict" : "lao-eng-dictionary.csv",
  "laotianWords" : "laodict.txt",
  "punctuationFile" : "punctuation.json"
}
`

func TestSettingsJSON_ParseSettingsJSON(t *testing.T) {
	settings := NewSettingsJSON()
	err := settings.ParseSettingsJSON("", strings.NewReader(settingsSample))
	require.NoError(t, err)

	bc := settings.GetBaseConfig()
	assert.Equal(t, "/usr/local/share/gowordseg/cedict_ts.u8", bc.ChineseDict)
	assert.Equal(t, dictionary.Simplified, bc.ChineseVariant)
	assert.Equal(t, []string{"/usr/local/share/gowordseg/user.u8", "/opt/dict/extra.u8"}, bc.UserDict)
	assert.Equal(t, "/usr/local/share/gowordseg/lao-eng-dictionary.csv", bc.LaotianDict)
	assert.Equal(t, "/usr/local/share/gowordseg/laodict.txt", bc.LaotianWords)
	assert.Equal(t, "/usr/local/share/gowordseg/punctuation.json", bc.PunctuationFile)
}

func TestSettingsJSON_DefaultPath(t *testing.T) {
	settings := NewSettingsJSON()
	err := settings.ParseSettingsJSON("/srv", strings.NewReader(`{"chineseDict": "cedict_ts.u8"}`))
	require.NoError(t, err)

	bc := settings.GetBaseConfig()
	assert.Equal(t, "/srv/cedict_ts.u8", bc.ChineseDict)
	assert.Equal(t, dictionary.Traditional, bc.ChineseVariant)
	assert.Empty(t, bc.LaotianDict)
}

func TestSettingsJSON_Invalid(t *testing.T) {
	for _, src := range []string{
		`{"chineseDict": `,
		`{"chineseVariant": "klingon"}`,
	} {
		err := NewSettingsJSON().ParseSettingsJSON("", strings.NewReader(src))
		var cerr *ConfigError
		assert.True(t, errors.As(err, &cerr), src)
	}
}

func TestReadSettingsDefault(t *testing.T) {
	settings, err := ReadSettings("/opt/gowordseg", "")
	require.NoError(t, err)
	bc := settings.GetBaseConfig()
	assert.Equal(t, "/opt/gowordseg/cedict_ts.u8", bc.ChineseDict)
	assert.Equal(t, "/opt/gowordseg/lao-eng-dictionary.csv", bc.LaotianDict)
}
