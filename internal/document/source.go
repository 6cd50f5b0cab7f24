// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-tw-config/models"
)

// FileSource loads a declaration from a file on disk.
type FileSource struct {
	// Path of the declaration file.
	Path string

	// Format overrides extension-based detection when non-empty.
	Format Format

	Decoder Decoder
}

// NewFileSource returns a [FileSource] for path. When path is a directory the
// conventional file inside it is used.
func NewFileSource(path string, strict bool) (*FileSource, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingConfig, err)
	}

	if info.IsDir() {
		path, err = FindConventional(path)
		if err != nil {
			return nil, err
		}
	}

	return &FileSource{Path: path, Decoder: Decoder{Strict: strict}}, nil
}

// Load reads and decodes the file. Every call re-reads the file, so two calls
// on an unchanged file yield structurally equal documents.
func (s *FileSource) Load(ctx context.Context) (*models.ConfigDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format := s.Format
	if format == "" {
		var err error
		if format, err = DetectFormat(s.Path); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrReadingConfig, s.Path, err)
	}

	doc, err := s.Decoder.Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}

	return doc, nil
}

// Describe returns the file path.
func (s *FileSource) Describe() string {
	return s.Path
}

// Load reads the declaration at path with default settings.
func Load(path string) (*models.ConfigDocument, error) {
	return (&FileSource{Path: path}).Load(context.Background())
}

// LoadDir loads the conventional declaration file found in dir.
func LoadDir(dir string) (*models.ConfigDocument, error) {
	path, err := FindConventional(dir)
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// FindConventional returns the first of [ConventionalNames] present in dir.
func FindConventional(dir string) (string, error) {
	for _, name := range ConventionalNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		switch {
		case err == nil && !info.IsDir():
			return path, nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("%w %q: %w", ErrReadingConfig, path, err)
		}
	}

	return "", fmt.Errorf("%w in %q", ErrConfigNotFound, dir)
}
