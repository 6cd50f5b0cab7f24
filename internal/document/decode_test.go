// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-tw-config/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func requireMalformed(t *testing.T, err error, key string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedConfig)

	var mErr *MalformedConfigError
	require.True(t, errors.As(err, &mErr), "expected *MalformedConfigError, got %T", err)
	assert.Equal(t, key, mErr.Key)
	if key != "" {
		assert.Contains(t, err.Error(), key)
	}
}

func referenceDocument() *models.ConfigDocument {
	return models.NewConfigDocument(
		[]string{"./frontend/templates/**/*.html"},
		map[string]map[string]models.ThemeValue{"colors": {}},
		nil,
	)
}

// ── reference declaration ─────────────────────────────────────────────────────

func TestDecode_ReferenceDeclaration_AllFormats(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		format Format
	}{
		{name: "js module", file: "tailwind.config.js", format: FormatJS},
		{name: "json", file: "tailwind.config.json", format: FormatJSON},
		{name: "yaml", file: "tailwind.config.yaml", format: FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode(readTestdata(t, tt.file), tt.format)
			require.NoError(t, err)

			assert.Equal(t, []string{"./frontend/templates/**/*.html"}, doc.ContentGlobs())
			assert.Equal(t, map[string]map[string]models.ThemeValue{"colors": {}}, doc.ThemeExtensions())
			assert.Empty(t, doc.Plugins())
			assert.Empty(t, cmp.Diff(referenceDocument(), doc))
		})
	}
}

func TestDecode_EmptyExtendAndPlugins(t *testing.T) {
	doc, err := Decode([]byte(`{"content": ["./frontend/templates/**/*.html"], "theme": {"extend": {}}, "plugins": []}`), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, []string{"./frontend/templates/**/*.html"}, doc.ContentGlobs())
	assert.Empty(t, doc.ThemeExtensions())
	assert.Empty(t, doc.Plugins())
}

func TestDecode_ContentKeepsDeclarationOrder(t *testing.T) {
	globs := []string{"z/**/*.html", "a/*.js", "m/**/*.{vue,ts}", "a/*.js"}

	doc, err := Decode([]byte(`{"content": ["z/**/*.html", "a/*.js", "m/**/*.{vue,ts}", "a/*.js"]}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, globs, doc.ContentGlobs())
}

func TestDecode_EmptyContentIsAllowed(t *testing.T) {
	doc, err := Decode([]byte(`content: []`), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, doc.ContentGlobs())
}

func TestDecode_OptionalKeysDefaultToEmpty(t *testing.T) {
	doc, err := Decode([]byte(`{"content": ["a.html"]}`), FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, doc.ThemeExtensions())
	assert.Empty(t, doc.Plugins())

	doc, err = Decode([]byte("content: [a.html]\ntheme:\nplugins:\n"), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, doc.ThemeExtensions())
	assert.Empty(t, doc.Plugins())
}

// ── full-featured declaration ─────────────────────────────────────────────────

func TestDecode_FullModule(t *testing.T) {
	doc, err := Decode(readTestdata(t, "full.config.mjs"), FormatJS)
	require.NoError(t, err)

	want := models.NewConfigDocument(
		[]string{"./frontend/templates/**/*.html", "./frontend/assets/js/**/*.js"},
		map[string]map[string]models.ThemeValue{
			"colors": {
				"brand": models.NewStringValue("#1d4ed8"),
				"gray": models.NewMapValue(map[string]models.ThemeValue{
					"50":  models.NewStringValue("#f9fafb"),
					"900": models.NewStringValue("#111827"),
				}),
			},
			"fontFamily": {
				"sans": models.NewListValue([]models.ThemeValue{
					models.NewStringValue("Inter"),
					models.NewStringValue("system-ui"),
					models.NewStringValue("sans-serif"),
				}),
			},
			"lineHeight": {"snug": models.NewNumberValue(1.375)},
			"content":    {"empty": models.NewStringValue("''")},
		},
		[]models.PluginRef{
			{Name: "@tailwindcss/typography"},
			{Name: "@tailwindcss/forms", Options: map[string]models.ThemeValue{"strategy": models.NewStringValue("class")}},
			{Name: "@tailwindcss/aspect-ratio"},
		},
	)

	assert.Empty(t, cmp.Diff(want, doc))
}

func TestDecode_YAMLNumericKeysAndValues(t *testing.T) {
	src := `
content: ["./a/**/*.html"]
theme:
  extend:
    spacing:
      128: 32rem
    zIndex:
      modal: 100
    opacity:
      15: 0.15
`
	doc, err := Decode([]byte(src), FormatYAML)
	require.NoError(t, err)

	ext := doc.ThemeExtensions()
	s, ok := ext["spacing"]["128"].Str()
	require.True(t, ok)
	assert.Equal(t, "32rem", s)

	n, ok := ext["zIndex"]["modal"].Number()
	require.True(t, ok)
	assert.Equal(t, float64(100), n)

	n, ok = ext["opacity"]["15"].Number()
	require.True(t, ok)
	assert.Equal(t, 0.15, n)
}

func TestDecode_JSONNumbers(t *testing.T) {
	doc, err := Decode([]byte(`{"content": [], "theme": {"extend": {"zIndex": {"top": 9999, "half": 0.5}}}}`), FormatJSON)
	require.NoError(t, err)

	n, ok := doc.ThemeExtensions()["zIndex"]["top"].Number()
	require.True(t, ok)
	assert.Equal(t, float64(9999), n)

	n, ok = doc.ThemeExtensions()["zIndex"]["half"].Number()
	require.True(t, ok)
	assert.Equal(t, 0.5, n)
}

func TestDecode_PluginObjectForm(t *testing.T) {
	src := `
content: []
plugins:
  - "@tailwindcss/forms"
  - name: "@tailwindcss/typography"
    options:
      className: prose
`
	doc, err := Decode([]byte(src), FormatYAML)
	require.NoError(t, err)

	plugins := doc.Plugins()
	require.Len(t, plugins, 2)
	assert.Equal(t, "@tailwindcss/forms", plugins[0].Name)
	assert.Nil(t, plugins[0].Options)
	assert.Equal(t, "@tailwindcss/typography", plugins[1].Name)
	s, ok := plugins[1].Options["className"].Str()
	require.True(t, ok)
	assert.Equal(t, "prose", s)
}

// ── malformed declarations ────────────────────────────────────────────────────

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		format  Format
		wantKey string
	}{
		{name: "missing content json", src: `{"theme": {"extend": {}}, "plugins": []}`, format: FormatJSON, wantKey: "content"},
		{name: "missing content yaml", src: "plugins: []\n", format: FormatYAML, wantKey: "content"},
		{name: "missing content js", src: "module.exports = { plugins: [] }", format: FormatJS, wantKey: "content"},
		{name: "content is a string", src: `{"content": "./a/**/*.html"}`, format: FormatJSON, wantKey: "content"},
		{name: "content is null", src: `{"content": null}`, format: FormatJSON, wantKey: "content"},
		{name: "content item not a string", src: `{"content": ["a", 1]}`, format: FormatJSON, wantKey: "content[1]"},
		{name: "content item empty", src: `{"content": ["a", ""]}`, format: FormatJSON, wantKey: "content[1]"},
		{name: "content object without files", src: `{"content": {"relative": true}}`, format: FormatJSON, wantKey: "content.files"},
		{name: "content files item wrong", src: `{"content": {"files": [true]}}`, format: FormatJSON, wantKey: "content.files[0]"},
		{name: "theme not a mapping", src: `{"content": [], "theme": []}`, format: FormatJSON, wantKey: "theme"},
		{name: "extend not a mapping", src: `{"content": [], "theme": {"extend": "x"}}`, format: FormatJSON, wantKey: "theme.extend"},
		{name: "category not a mapping", src: `{"content": [], "theme": {"extend": {"colors": "red"}}}`, format: FormatJSON, wantKey: "theme.extend.colors"},
		{name: "boolean token", src: `{"content": [], "theme": {"extend": {"colors": {"x": true}}}}`, format: FormatJSON, wantKey: "theme.extend.colors.x"},
		{name: "null nested token", src: `{"content": [], "theme": {"extend": {"colors": {"gray": {"50": null}}}}}`, format: FormatJSON, wantKey: "theme.extend.colors.gray.50"},
		{name: "bad list token", src: `{"content": [], "theme": {"extend": {"fontFamily": {"sans": ["a", false]}}}}`, format: FormatJSON, wantKey: "theme.extend.fontFamily.sans[1]"},
		{name: "plugins not a sequence", src: `{"content": [], "plugins": {}}`, format: FormatJSON, wantKey: "plugins"},
		{name: "plugin wrong type", src: `{"content": [], "plugins": [1]}`, format: FormatJSON, wantKey: "plugins[0]"},
		{name: "plugin empty name", src: `{"content": [], "plugins": [""]}`, format: FormatJSON, wantKey: "plugins[0]"},
		{name: "plugin object without name", src: `{"content": [], "plugins": [{"options": {}}]}`, format: FormatJSON, wantKey: "plugins[0].name"},
		{name: "plugin options wrong", src: `{"content": [], "plugins": [{"name": "p", "options": []}]}`, format: FormatJSON, wantKey: "plugins[0].options"},
		{name: "top level is a list", src: `["a"]`, format: FormatJSON, wantKey: ""},
		{name: "empty yaml", src: "", format: FormatYAML, wantKey: ""},
		{name: "json syntax error", src: `{"content": [`, format: FormatJSON, wantKey: ""},
		{name: "json trailing data", src: `{"content": []} {}`, format: FormatJSON, wantKey: ""},
		{name: "yaml syntax error", src: "content: [a\n", format: FormatYAML, wantKey: ""},
		{name: "unknown format", src: `{}`, format: Format("toml"), wantKey: ""},
		{name: "infinite token", src: "content: []\ntheme: {extend: {zIndex: {top: .inf}}}\n", format: FormatYAML, wantKey: "theme.extend.zIndex.top"},
		{name: "negative infinite token", src: "content: []\ntheme: {extend: {zIndex: {bottom: -.inf}}}\n", format: FormatYAML, wantKey: "theme.extend.zIndex.bottom"},
		{name: "nan token", src: "content: []\ntheme: {extend: {opacity: {x: [1, .nan]}}}\n", format: FormatYAML, wantKey: "theme.extend.opacity.x[1]"},
		{name: "nan plugin option", src: "content: []\nplugins: [{name: p, options: {ratio: .NaN}}]\n", format: FormatYAML, wantKey: "plugins[0].options.ratio"},
		{name: "second yaml document", src: "content: [a]\n---\ncontent: [b]\n", format: FormatYAML, wantKey: ""},
		{name: "colliding numeric keys", src: "content: []\ntheme: {extend: {colors: {gray: {1: '#111', 1.0: '#222'}}}}\n", format: FormatYAML, wantKey: "theme.extend.colors.gray.1"},
		{name: "colliding js keys", src: "module.exports = {content: [], theme: {extend: {spacing: {2: '8px', 2.0: '9px'}}}}", format: FormatJS, wantKey: "theme.extend.spacing.2"},
		{name: "js imported plugin", src: "module.exports = {content: ['a'], plugins: [forms]}", format: FormatJS, wantKey: ""},
		{name: "js undefined token", src: "module.exports = {content: [], theme: {extend: {colors: {y: undefined}}}}", format: FormatJS, wantKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode([]byte(tt.src), tt.format)
			assert.Nil(t, doc)
			requireMalformed(t, err, tt.wantKey)
		})
	}
}

func TestDecode_NonFiniteNeverReachesDocument(t *testing.T) {
	src := []byte("content: []\ntheme: {extend: {zIndex: {top: .inf, nan: .nan}}}\n")

	for range 2 {
		doc, err := Decode(src, FormatYAML)
		assert.Nil(t, doc)
		assert.ErrorIs(t, err, ErrMalformedConfig)
	}
}

func TestDecode_SingleYAMLDocumentWithMarker(t *testing.T) {
	doc, err := Decode([]byte("---\ncontent: [a.html]\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.html"}, doc.ContentGlobs())
}

func TestDecoder_Strict(t *testing.T) {
	src := []byte(`{"content": [], "darkMode": "class"}`)

	_, err := Decode(src, FormatJSON)
	require.NoError(t, err)

	_, err = Decoder{Strict: true}.Decode(src, FormatJSON)
	requireMalformed(t, err, "darkMode")

	_, err = Decoder{Strict: true}.Decode([]byte(`{"content": [], "theme": {}, "plugins": []}`), FormatJSON)
	require.NoError(t, err)
}

// ── properties ────────────────────────────────────────────────────────────────

func TestDecode_Idempotent(t *testing.T) {
	for _, name := range []string{"tailwind.config.js", "full.config.mjs"} {
		t.Run(name, func(t *testing.T) {
			data := readTestdata(t, name)

			first, err := Decode(data, FormatJS)
			require.NoError(t, err)
			second, err := Decode(data, FormatJS)
			require.NoError(t, err)

			assert.NotSame(t, first, second)
			assert.Empty(t, cmp.Diff(first, second))
		})
	}
}

func TestDecode_MarshalledDocumentRoundTrips(t *testing.T) {
	doc, err := Decode(readTestdata(t, "full.config.mjs"), FormatJS)
	require.NoError(t, err)

	data, err := doc.MarshalJSON()
	require.NoError(t, err)

	again, err := Decode(data, FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(doc, again))
}

func TestMalformedConfigError_Message(t *testing.T) {
	err := &MalformedConfigError{Key: "content", Reason: "required key is missing"}
	assert.Equal(t, `malformed config: key "content": required key is missing`, err.Error())

	wrapped := &MalformedConfigError{Reason: "syntax error", Err: assert.AnError}
	assert.ErrorIs(t, wrapped, assert.AnError)
	assert.ErrorIs(t, wrapped, ErrMalformedConfig)
}
