package dictionary

import (
	"fmt"
)

// LoadError reports a lexicon source that could not be read. Fatal errors
// abort the whole load. Line is 0 when the failure is not tied to a record.
type LoadError struct {
	Source string
	Line   int
	Fatal  bool
	Err    error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("fail to load %s:%d: %s", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("fail to load %s: %s", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) Cause() error {
	return e.Err
}

func fatalError(source string, line int, err error) *LoadError {
	return &LoadError{
		Source: source,
		Line:   line,
		Fatal:  true,
		Err:    err,
	}
}
