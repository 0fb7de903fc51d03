package gowordseg

import (
	"bytes"
	"encoding/csv"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/msnoigrs/gowordseg/dictionary"
	"github.com/pkg/errors"
)

// ValueSeparator joins the values of multi-valued fields in exports.
const ValueSeparator = ","

var tabularHeader = []string{"written", "alternate", "pronunciations", "translations", "count"}

// Rank orders the entries of r by descending count. Entries with the same
// count stay in first-insertion order.
func Rank(r *Result) []Entry {
	entries := r.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Definition.Count > entries[j].Definition.Count
	})
	return entries
}

// WriteTabular writes a header row followed by one CSV record per entry.
func WriteTabular(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tabularHeader); err != nil {
		return &SerializationError{Err: err}
	}
	record := make([]string, len(tabularHeader))
	for _, e := range entries {
		d := e.Definition
		record[0] = e.Word
		record[1] = d.Alternate
		record[2] = strings.Join(d.Pronunciations, ValueSeparator)
		record[3] = strings.Join(d.Translations, ValueSeparator)
		record[4] = strconv.Itoa(d.Count)
		if err := cw.Write(record); err != nil {
			return &SerializationError{Err: err}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return &SerializationError{Err: err}
	}
	return nil
}

func ToTabular(entries []Entry) (string, error) {
	var buf bytes.Buffer
	if err := WriteTabular(&buf, entries); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ReadTabular parses the output of WriteTabular. Values of multi-valued
// fields that contained the separator themselves come back split.
func ReadTabular(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(tabularHeader)
	header, err := cr.Read()
	if err == io.EOF {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}
	if strings.Join(header, ",") != strings.Join(tabularHeader, ",") {
		return nil, errors.Errorf("unexpected header %q", strings.Join(header, ","))
	}

	entries := []Entry{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read record")
		}
		count, err := strconv.Atoi(record[4])
		if err != nil || count < 0 {
			line, _ := cr.FieldPos(4)
			return nil, errors.Errorf("line %d: invalid count %q", line, record[4])
		}
		d := &dictionary.Definition{
			Written:        record[0],
			Alternate:      record[1],
			Pronunciations: splitValues(record[2]),
			Translations:   splitValues(record[3]),
			Count:          count,
		}
		entries = append(entries, Entry{Word: record[0], Definition: d})
	}
	return entries, nil
}

func splitValues(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ValueSeparator)
}

// ResultFromEntries rebuilds a Result, e.g. from a previous export.
func ResultFromEntries(entries []Entry) *Result {
	r := NewResult()
	for _, e := range entries {
		r.add(e.Word, e.Definition, e.Definition.Count)
	}
	return r
}
