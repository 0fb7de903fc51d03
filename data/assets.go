package data

import "embed"

// Assets holds the default settings and punctuation tables.
//
//go:embed punctuation.json gowordseg.json
var Assets embed.FS
