package dictionary

import (
	"bytes"
	"io"
	"os"
	"unicode/utf8"

	"github.com/msnoigrs/gowordseg/internal/mmap"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var errInvalidUTF8 = errors.New("invalid UTF-8 sequence")

// Source is a memory mapped lexicon file.
type Source struct {
	Name string
	fd   *os.File
	fmap []byte
	r    *bytes.Reader
}

func OpenSource(filename string) (*Source, error) {
	fd, err := os.OpenFile(filename, os.O_RDONLY, 0644)
	if err != nil {
		return nil, &LoadError{Source: filename, Fatal: true, Err: err}
	}
	finfo, err := fd.Stat()
	if err != nil {
		_ = fd.Close()
		return nil, &LoadError{Source: filename, Fatal: true, Err: err}
	}
	fmap, err := mmap.Map(fd, finfo.Size())
	if err != nil {
		_ = fd.Close()
		return nil, &LoadError{Source: filename, Fatal: true, Err: errors.Wrap(err, "mmap")}
	}
	return &Source{
		Name: filename,
		fd:   fd,
		fmap: fmap,
		r:    bytes.NewReader(fmap),
	}, nil
}

func (s *Source) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

func (s *Source) Bytes() []byte {
	return s.fmap
}

func (s *Source) Close() error {
	err := mmap.Unmap(s.fmap)
	if err != nil {
		_ = s.fd.Close()
		return err
	}
	s.fmap = nil
	return s.fd.Close()
}

// newDecoder strips a UTF-8 byte order mark and decodes UTF-16 input that
// starts with one. Anything else passes through untouched and is validated
// by the loaders.
func newDecoder(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(encoding.Nop.NewDecoder()))
}

func checkUTF8(source string, line int, b []byte) error {
	if !utf8.Valid(b) {
		return fatalError(source, line, errInvalidUTF8)
	}
	return nil
}
