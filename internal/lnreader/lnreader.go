package lnreader

import (
	"bufio"
	"io"
)

// LineNumberReader reads lines without the trailing "\n" or "\r\n" and keeps
// the number of the last line returned.
type LineNumberReader struct {
	r         *bufio.Reader
	rawBuffer []byte
	NumLine   int
}

func NewLineNumberReader(r io.Reader) *LineNumberReader {
	return &LineNumberReader{
		r: bufio.NewReader(r),
	}
}

// ReadLine returns io.EOF once the input is exhausted. The returned slice is
// only valid until the next call.
func (r *LineNumberReader) ReadLine() ([]byte, error) {
	line, err := r.r.ReadSlice('\n')
	if err == bufio.ErrBufferFull {
		r.rawBuffer = append(r.rawBuffer[:0], line...)
		for err == bufio.ErrBufferFull {
			line, err = r.r.ReadSlice('\n')
			r.rawBuffer = append(r.rawBuffer, line...)
		}
		line = r.rawBuffer
	}
	if len(line) > 0 && err == io.EOF {
		err = nil
		if line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}
	} else if err == nil {
		n := len(line)
		if n >= 2 && line[n-2] == '\r' && line[n-1] == '\n' {
			line = line[:n-2]
		} else {
			line = line[:n-1]
		}
	}
	if err == nil {
		r.NumLine++
	}
	return line, err
}

// IsSkipLine reports whether l is blank or starts with one of the comment
// marks.
func IsSkipLine(l []byte, commentMarks ...byte) bool {
	if len(l) > 0 {
		for _, m := range commentMarks {
			if l[0] == m {
				return true
			}
		}
	}
	return IsEmptyLine(l)
}

func IsEmptyLine(l []byte) bool {
	for _, c := range l {
		if c != ' ' && c != '\n' && c != '\r' && c != '\t' {
			return false
		}
	}
	return true
}
