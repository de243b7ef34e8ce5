package config

import (
	tt "github.com/gnoswap-labs/minigrep/internal/types"
)

const (
	errNotEnoughArguments = "not enough arguments"
	errEmptyPath          = "file path must not be empty"
)

// FromArgs builds a Config from an argument sequence whose first element is
// the program name, followed by the query and the file path.
// Tokens after the path are ignored.
func FromArgs(args []string) (tt.Config, error) {
	if len(args) < 3 {
		return tt.Config{}, &tt.ArgumentError{Msg: errNotEnoughArguments}
	}

	query, path := args[1], args[2]
	if path == "" {
		return tt.Config{}, &tt.ArgumentError{Msg: errEmptyPath}
	}

	return tt.Config{Query: query, Path: path}, nil
}
