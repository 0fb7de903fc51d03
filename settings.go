package gowordseg

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/msnoigrs/gowordseg/data"
	"github.com/msnoigrs/gowordseg/dictionary"
	"github.com/pkg/errors"
)

const defaultSettingsAsset = "gowordseg.json"

type Settings interface {
	GetBaseConfig() *BaseConfig
}

// BaseConfig names the dictionary sources. An empty ChineseDict or
// LaotianDict disables that language.
type BaseConfig struct {
	ChineseDict     string
	ChineseVariant  dictionary.KeyVariant
	UserDict        []string
	LaotianDict     string
	LaotianWords    string
	PunctuationFile string
}

type SettingsJSON struct {
	BaseConfig
	path string
}

func NewSettingsJSON() *SettingsJSON {
	return &SettingsJSON{}
}

func (settings *SettingsJSON) GetBaseConfig() *BaseConfig {
	return &settings.BaseConfig
}

// ParseSettingsJSON reads settings from reader. Relative paths are resolved
// against the "path" member, or defpath when it is absent.
func (settings *SettingsJSON) ParseSettingsJSON(defpath string, reader io.Reader) error {
	internalBaseConfig := &struct {
		Path            *string
		ChineseDict     *string
		ChineseVariant  *string
		UserDict        *[]string
		LaotianDict     *string
		LaotianWords    *string
		PunctuationFile *string
	}{}

	decoder := json.NewDecoder(reader)
	err := decoder.Decode(internalBaseConfig)
	if err != nil {
		return &ConfigError{Err: errors.Wrap(err, "settings")}
	}
	if internalBaseConfig.Path == nil {
		settings.path = defpath
	} else {
		settings.path = *internalBaseConfig.Path
	}
	if internalBaseConfig.ChineseDict != nil {
		settings.ChineseDict = settings.getPath(*internalBaseConfig.ChineseDict)
	}
	if internalBaseConfig.ChineseVariant != nil {
		v, err := ParseKeyVariant(*internalBaseConfig.ChineseVariant)
		if err != nil {
			return &ConfigError{Err: err}
		}
		settings.ChineseVariant = v
	}
	if internalBaseConfig.UserDict != nil {
		for _, ud := range *internalBaseConfig.UserDict {
			settings.UserDict = append(settings.UserDict, settings.getPath(ud))
		}
	}
	if internalBaseConfig.LaotianDict != nil {
		settings.LaotianDict = settings.getPath(*internalBaseConfig.LaotianDict)
	}
	if internalBaseConfig.LaotianWords != nil {
		settings.LaotianWords = settings.getPath(*internalBaseConfig.LaotianWords)
	}
	if internalBaseConfig.PunctuationFile != nil {
		settings.PunctuationFile = settings.getPath(*internalBaseConfig.PunctuationFile)
	}
	return nil
}

func (settings *SettingsJSON) getPath(path string) string {
	if path == "" || filepath.IsAbs(path) || settings.path == "" {
		return path
	}
	return filepath.Join(settings.path, path)
}

// ReadSettings parses settingfile, or the bundled defaults when it is empty.
// Relative paths in the bundled defaults are resolved against curPath.
func ReadSettings(curPath string, settingfile string) (*SettingsJSON, error) {
	settings := NewSettingsJSON()

	var settingsreader io.Reader
	if settingfile != "" {
		if !filepath.IsAbs(settingfile) {
			abs, err := filepath.Abs(settingfile)
			if err != nil {
				return nil, &ConfigError{Source: settingfile, Err: err}
			}
			settingfile = abs
		}
		settingsfd, err := os.OpenFile(settingfile, os.O_RDONLY, 0644)
		if err != nil {
			return nil, &ConfigError{Source: settingfile, Err: err}
		}
		defer settingsfd.Close()
		settingsreader = settingsfd
		curPath = filepath.Dir(settingfile)
	} else {
		settingsf, err := data.Assets.Open(defaultSettingsAsset)
		if err != nil {
			return nil, &ConfigError{Source: defaultSettingsAsset, Err: err}
		}
		defer settingsf.Close()
		settingsreader = settingsf
	}

	if err := settings.ParseSettingsJSON(curPath, settingsreader); err != nil {
		return nil, err
	}
	return settings, nil
}
