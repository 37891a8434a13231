package vocab

import (
	"embed"
	"fmt"
	"os"
)

// Embedded CET-4 vocabulary, compiled into the binary so the display works
// without any external files.
//
//go:embed cet4.tsv
var embedded embed.FS

// Provider supplies the raw vocabulary buffer. The returned slice belongs to
// the caller; implementations must not reuse it.
type Provider interface {
	Load() ([]byte, error)
}

// EmbeddedProvider serves the built-in CET-4 word list.
type EmbeddedProvider struct{}

// Load returns the embedded TSV buffer.
func (EmbeddedProvider) Load() ([]byte, error) {
	data, err := embedded.ReadFile("cet4.tsv")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceUnavailable, err)
	}
	if len(data) == 0 {
		return nil, ErrResourceUnavailable
	}
	return data, nil
}

// FileProvider reads a user-supplied TSV file.
type FileProvider struct {
	Path string
}

// Load reads the whole file. A missing or empty file is reported as
// ErrResourceUnavailable so callers can degrade the same way as for the
// embedded list.
func (p FileProvider) Load() ([]byte, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceUnavailable, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrResourceUnavailable, p.Path)
	}
	return data, nil
}

// SelectProvider picks the vocabulary source: a file when path is non-empty,
// otherwise the embedded list.
func SelectProvider(path string) Provider {
	if path != "" {
		return FileProvider{Path: path}
	}
	return EmbeddedProvider{}
}
