// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "tailwind.config.js", want: FormatJS},
		{path: "tailwind.config.cjs", want: FormatJS},
		{path: "tailwind.config.mjs", want: FormatJS},
		{path: "/x/tailwind.config.JSON", want: FormatJSON},
		{path: "cfg.yaml", want: FormatYAML},
		{path: "cfg.yml", want: FormatYAML},
		{path: "tailwind.config.ts", wantErr: true},
		{path: "noext", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" YML ")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("js")
	require.NoError(t, err)
	assert.Equal(t, FormatJS, f)

	_, err = ParseFormat("toml")
	assert.Error(t, err)
}

func TestFindConventional_Priority(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tailwind.config.yaml", "content: []")
	writeFile(t, dir, "tailwind.config.json", `{"content": []}`)

	path, err := FindConventional(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tailwind.config.json"), path)

	writeFile(t, dir, "tailwind.config.js", "module.exports = {content: []}")
	path, err = FindConventional(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tailwind.config.js"), path)
}

func TestFindConventional_NotFound(t *testing.T) {
	_, err := FindConventional(t.TempDir())
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoadDir_Testdata(t *testing.T) {
	doc, err := LoadDir("testdata")
	require.NoError(t, err)
	assert.Equal(t, []string{"./frontend/templates/**/*.html"}, doc.ContentGlobs())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "tailwind.config.js"))
	assert.ErrorIs(t, err, ErrReadingConfig)
	assert.NotErrorIs(t, err, ErrMalformedConfig)
}

func TestLoad_MalformedFileNamesPath(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tailwind.config.json", `{"plugins": []}`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrMalformedConfig)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), `"content"`)
}

func TestFileSource_LoadTwiceIsEqual(t *testing.T) {
	src, err := NewFileSource(filepath.Join("testdata", "full.config.mjs"), false)
	require.NoError(t, err)

	first, err := src.Load(context.Background())
	require.NoError(t, err)
	second, err := src.Load(context.Background())
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(first, second))
	assert.Equal(t, filepath.Join("testdata", "full.config.mjs"), src.Describe())
}

func TestFileSource_FormatOverride(t *testing.T) {
	path := writeFile(t, t.TempDir(), "twconfig.txt", `{"content": ["x.html"]}`)

	src := &FileSource{Path: path, Format: FormatJSON}
	doc, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"x.html"}, doc.ContentGlobs())
}

func TestFileSource_Strict(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tailwind.config.json", `{"content": [], "prefix": "tw-"}`)

	src, err := NewFileSource(path, true)
	require.NoError(t, err)

	_, err = src.Load(context.Background())
	assert.ErrorIs(t, err, ErrMalformedConfig)
}

func TestNewFileSource_Directory(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tailwind.config.cjs", "module.exports = {content: ['a.html']}")

	src, err := NewFileSource(dir, false)
	require.NoError(t, err)
	assert.Equal(t, path, src.Path)
}

func TestNewFileSource_MissingPath(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope"), false)
	assert.ErrorIs(t, err, ErrReadingConfig)
}

func TestFileSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &FileSource{Path: filepath.Join("testdata", "tailwind.config.js")}
	_, err := src.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
