package console

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EntryDocument is the file that bootstraps the console application.
const EntryDocument = "index.html"

// ErrNotFound reports that no file exists for a request path. Absence is
// an expected outcome, not a failure.
var ErrNotFound = errors.New("asset not found")

// Store reads files from the pre-built console bundle directory.
type Store struct {
	root string
}

// NewStore creates a store rooted at the bundle directory.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Read returns the raw bytes of the asset at the given request path, or
// ErrNotFound. The path is cleaned as absolute before joining so ".."
// segments cannot resolve outside the asset root.
func (s *Store) Read(reqPath string) ([]byte, error) {
	clean := filepath.Clean("/" + strings.TrimPrefix(reqPath, "/"))
	full := filepath.Join(s.root, clean)

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return nil, ErrNotFound
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return nil, ErrNotFound
	}
	return data, nil
}

// ReadEntry returns the raw entry document. Unlike Read, failure here
// means the deployment is broken, so the cause is carried in the error.
func (s *Store) ReadEntry() ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.root, EntryDocument))
	if err != nil {
		return nil, fmt.Errorf("reading entry document: %w", err)
	}
	return data, nil
}
