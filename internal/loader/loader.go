// Package loader reads search targets into memory.
package loader

import (
	"os"
	"unicode/utf8"

	tt "github.com/gnoswap-labs/minigrep/internal/types"
)

// File loads documents from the local filesystem.
type File struct{}

// Load reads the whole file at path.
func (File) Load(path string) (*tt.Document, error) {
	return Load(path)
}

// Load reads the whole file at path and returns it as a Document.
// Content that is not valid UTF-8 is rejected with types.ErrInvalidEncoding.
func Load(path string) (*tt.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &tt.IOError{Op: "read", Path: path, Err: unwrapPathError(err)}
	}

	if !utf8.Valid(content) {
		return nil, &tt.IOError{Op: "decode", Path: path, Err: tt.ErrInvalidEncoding}
	}

	return &tt.Document{Path: path, Text: string(content)}, nil
}

// unwrapPathError drops the *fs.PathError layer so the path is not reported twice.
func unwrapPathError(err error) error {
	if pathErr, ok := err.(*os.PathError); ok {
		return pathErr.Err
	}
	return err
}
