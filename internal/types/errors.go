package types

import (
	"errors"
	"fmt"
)

// ErrInvalidEncoding is the cause of an IOError raised for content that is not valid UTF-8.
var ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")

// ArgumentError reports invocation arguments that cannot produce a Config.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string {
	return e.Msg
}

// IOError reports a failure to read the target file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
