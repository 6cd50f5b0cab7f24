// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-tw-config/internal/logger"
	"github.com/MKhiriev/go-tw-config/models"
	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// documentFileStorage is the default implementation of [DocumentStorage].
// Files are written through a pending temp file that is fsynced and renamed
// over the destination, so readers never observe a half-written export.
type documentFileStorage struct {
	logger *logger.Logger
}

// NewDocumentFileStorage constructs a new [DocumentStorage] writing to the
// local filesystem.
func NewDocumentFileStorage(logger *logger.Logger) DocumentStorage {
	return &documentFileStorage{logger: logger}
}

func (s *documentFileStorage) Save(ctx context.Context, doc *models.ConfigDocument, path string) error {
	if doc == nil {
		return ErrNilDocument
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encode(doc, path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			s.logger.Debug().Err(err).Str("path", path).Msg("cleanup pending document file")
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	s.logger.Info().Str("path", path).Int("bytes", len(data)).Msg("document exported")
	return nil
}

func encode(doc *models.ConfigDocument, path string) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return toYAML(data)
	default:
		return append(data, '\n'), nil
	}
}

// toYAML re-encodes canonical JSON as block YAML. Going through a node
// keeps the key order of the JSON form.
func toYAML(data []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	clearStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// clearStyle drops the flow and quoting styles JSON input carries, so the
// encoder emits block YAML. Strings that need quotes are still quoted.
func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}
