package dictionary

import "strings"

// Definition is one lexicon entry. Written is the form used as the lexicon
// key, Alternate the other orthographic variant if any.
type Definition struct {
	Written        string
	Alternate      string
	Pronunciations []string
	Translations   []string
	Count          int
	Level          string
}

func NewDefinition(written string, alternate string, pronunciation string, translations ...string) *Definition {
	d := &Definition{
		Written: written,
	}
	if alternate != written {
		d.Alternate = alternate
	}
	d.AddPronunciation(pronunciation)
	for _, t := range translations {
		d.AddTranslation(t)
	}
	return d
}

func (d *Definition) HasAlternate() bool {
	return d.Alternate != ""
}

// AddPronunciation appends p unless it is empty or already present.
func (d *Definition) AddPronunciation(p string) bool {
	if p == "" || contains(d.Pronunciations, p) {
		return false
	}
	d.Pronunciations = append(d.Pronunciations, p)
	return true
}

// AddTranslation appends t unless it is empty or already present.
func (d *Definition) AddTranslation(t string) bool {
	if t == "" || contains(d.Translations, t) {
		return false
	}
	d.Translations = append(d.Translations, t)
	return true
}

func (d *Definition) Clone() *Definition {
	c := *d
	c.Pronunciations = append([]string(nil), d.Pronunciations...)
	c.Translations = append([]string(nil), d.Translations...)
	return &c
}

func (d *Definition) String() string {
	var sb strings.Builder
	sb.WriteString(d.Written)
	if d.HasAlternate() {
		sb.WriteByte(' ')
		sb.WriteString(d.Alternate)
	}
	sb.WriteString(" [")
	sb.WriteString(strings.Join(d.Pronunciations, ", "))
	sb.WriteString("] /")
	for _, t := range d.Translations {
		sb.WriteString(t)
		sb.WriteByte('/')
	}
	return sb.String()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
