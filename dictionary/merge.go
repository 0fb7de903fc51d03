package dictionary

// InsertOrMerge stores def under key. When key is already present only the
// first pronunciation and the first translation of def are appended to the
// stored definition, and only if they are not there yet. This keeps every
// reading of a polyphonic character under a single key.
func InsertOrMerge(m map[string]*Definition, key string, def *Definition) {
	cur, ok := m[key]
	if !ok {
		m[key] = def
		return
	}
	if len(def.Pronunciations) > 0 {
		cur.AddPronunciation(def.Pronunciations[0])
	}
	if len(def.Translations) > 0 {
		cur.AddTranslation(def.Translations[0])
	}
}
