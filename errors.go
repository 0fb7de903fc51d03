package gowordseg

import "fmt"

// ConfigError reports settings or punctuation tables that cannot be used to
// build a dictionary.
type ConfigError struct {
	Source string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("invalid configuration: %s", e.Err)
	}
	return fmt.Sprintf("invalid configuration %s: %s", e.Source, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func (e *ConfigError) Cause() error {
	return e.Err
}

// SerializationError reports a failure while writing an export.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("fail to serialize: %s", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

func (e *SerializationError) Cause() error {
	return e.Err
}
