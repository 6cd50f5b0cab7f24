// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/MKhiriev/go-tw-config/models"
	"gopkg.in/yaml.v3"
)

// Recognised top-level keys.
const (
	keyContent = "content"
	keyTheme   = "theme"
	keyExtend  = "extend"
	keyPlugins = "plugins"
	keyFiles   = "files"
)

// Decoder turns raw declarations into [models.ConfigDocument] values.
// The zero value is ready to use.
type Decoder struct {
	// Strict rejects top-level keys other than content, theme and plugins.
	// By default they are ignored, since the generation tool knows many more
	// options than this layer models.
	Strict bool
}

// Decode parses data in the given format with a default [Decoder].
func Decode(data []byte, format Format) (*models.ConfigDocument, error) {
	return Decoder{}.Decode(data, format)
}

// Decode parses data in the given format and validates its shape.
func (d Decoder) Decode(data []byte, format Format) (*models.ConfigDocument, error) {
	tree, err := parseTree(data, format)
	if err != nil {
		return nil, err
	}

	return d.build(tree)
}

func parseTree(data []byte, format Format) (any, error) {
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()

		var tree any
		if err := dec.Decode(&tree); err != nil {
			return nil, syntaxError(err)
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return nil, malformed("", "unexpected data after the top-level object")
		}
		return tree, nil
	case FormatYAML:
		return parseYAML(data)
	case FormatJS:
		flow, err := normalizeJSModule(data)
		if err != nil {
			return nil, err
		}
		return parseYAML(flow)
	default:
		return nil, malformed("", fmt.Sprintf("unknown format %q", format))
	}
}

func parseYAML(data []byte) (any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var tree any
	if err := dec.Decode(&tree); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, syntaxError(err)
	}

	var next any
	if err := dec.Decode(&next); !errors.Is(err, io.EOF) {
		return nil, malformed("", "only a single YAML document is allowed")
	}
	return tree, nil
}

func (d Decoder) build(tree any) (*models.ConfigDocument, error) {
	if tree == nil {
		return nil, malformed("", "declaration is empty")
	}
	root, ok, err := mapping(tree, "")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, malformed("", "top level must be a mapping")
	}

	if d.Strict {
		for _, key := range sortedKeys(root) {
			switch key {
			case keyContent, keyTheme, keyPlugins:
			default:
				return nil, malformed(key, "unknown key")
			}
		}
	}

	rawContent, ok := root[keyContent]
	if !ok {
		return nil, malformed(keyContent, "required key is missing")
	}
	globs, err := contentGlobs(rawContent)
	if err != nil {
		return nil, err
	}

	extensions, err := themeExtensions(root[keyTheme])
	if err != nil {
		return nil, err
	}

	plugins, err := pluginRefs(root[keyPlugins])
	if err != nil {
		return nil, err
	}

	return models.NewConfigDocument(globs, extensions, plugins), nil
}

// contentGlobs accepts either a list of globs or the object form
// {files: [...]}; other keys of the object form are ignored.
func contentGlobs(raw any) ([]string, error) {
	key := keyContent
	m, ok, err := mapping(raw, keyContent)
	if err != nil {
		return nil, err
	}
	if ok {
		key = keyContent + "." + keyFiles
		files, ok := m[keyFiles]
		if !ok {
			return nil, malformed(key, "required key is missing")
		}
		raw = files
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, malformed(key, "expected a sequence of glob patterns, got "+typeName(raw))
	}

	globs := make([]string, 0, len(list))
	for i, item := range list {
		itemKey := key + "[" + strconv.Itoa(i) + "]"
		s, ok := item.(string)
		if !ok {
			return nil, malformed(itemKey, "expected a string, got "+typeName(item))
		}
		if s == "" {
			return nil, malformed(itemKey, "glob pattern is empty")
		}
		globs = append(globs, s)
	}

	return globs, nil
}

func themeExtensions(raw any) (map[string]map[string]models.ThemeValue, error) {
	out := make(map[string]map[string]models.ThemeValue)
	if raw == nil {
		return out, nil
	}

	theme, ok, err := mapping(raw, keyTheme)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, malformed(keyTheme, "expected a mapping, got "+typeName(raw))
	}

	rawExtend := theme[keyExtend]
	if rawExtend == nil {
		return out, nil
	}

	extendKey := keyTheme + "." + keyExtend
	extend, ok, err := mapping(rawExtend, extendKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, malformed(extendKey, "expected a mapping, got "+typeName(rawExtend))
	}

	for _, category := range sortedKeys(extend) {
		categoryKey := extendKey + "." + category
		tokens, ok, err := mapping(extend[category], categoryKey)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, malformed(categoryKey, "expected a mapping of tokens, got "+typeName(extend[category]))
		}

		values, err := valueMap(tokens, categoryKey)
		if err != nil {
			return nil, err
		}
		out[category] = values
	}

	return out, nil
}

func pluginRefs(raw any) ([]models.PluginRef, error) {
	if raw == nil {
		return nil, nil
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, malformed(keyPlugins, "expected a sequence, got "+typeName(raw))
	}

	plugins := make([]models.PluginRef, 0, len(list))
	for i, item := range list {
		itemKey := keyPlugins + "[" + strconv.Itoa(i) + "]"
		ref, err := pluginRef(item, itemKey)
		if err != nil {
			return nil, err
		}
		plugins = append(plugins, ref)
	}

	return plugins, nil
}

func pluginRef(raw any, key string) (models.PluginRef, error) {
	if s, ok := raw.(string); ok {
		if s == "" {
			return models.PluginRef{}, malformed(key, "plugin name is empty")
		}
		return models.PluginRef{Name: s}, nil
	}

	m, ok, err := mapping(raw, key)
	if err != nil {
		return models.PluginRef{}, err
	}
	if !ok {
		return models.PluginRef{}, malformed(key, "expected a plugin name or {name, options}, got "+typeName(raw))
	}

	name, ok := m["name"].(string)
	if !ok || name == "" {
		return models.PluginRef{}, malformed(key+".name", "expected a non-empty string")
	}

	ref := models.PluginRef{Name: name}
	if rawOptions := m["options"]; rawOptions != nil {
		options, ok, err := mapping(rawOptions, key+".options")
		if err != nil {
			return models.PluginRef{}, err
		}
		if !ok {
			return models.PluginRef{}, malformed(key+".options", "expected a mapping, got "+typeName(rawOptions))
		}
		values, err := valueMap(options, key+".options")
		if err != nil {
			return models.PluginRef{}, err
		}
		ref.Options = values
	}

	return ref, nil
}

func valueMap(m map[string]any, key string) (map[string]models.ThemeValue, error) {
	out := make(map[string]models.ThemeValue, len(m))
	for _, name := range sortedKeys(m) {
		v, err := themeValue(m[name], key+"."+name)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}

func themeValue(raw any, key string) (models.ThemeValue, error) {
	switch v := raw.(type) {
	case string:
		return models.NewStringValue(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return models.ThemeValue{}, malformed(key, "number out of range")
		}
		return models.NewNumberValue(f), nil
	case int:
		return models.NewNumberValue(float64(v)), nil
	case int64:
		return models.NewNumberValue(float64(v)), nil
	case uint64:
		return models.NewNumberValue(float64(v)), nil
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return models.ThemeValue{}, malformed(key, "number must be finite")
		}
		return models.NewNumberValue(v), nil
	case []any:
		items := make([]models.ThemeValue, 0, len(v))
		for i, item := range v {
			tv, err := themeValue(item, key+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return models.ThemeValue{}, err
			}
			items = append(items, tv)
		}
		return models.NewListValue(items), nil
	}

	m, ok, err := mapping(raw, key)
	if err != nil {
		return models.ThemeValue{}, err
	}
	if ok {
		nested, err := valueMap(m, key)
		if err != nil {
			return models.ThemeValue{}, err
		}
		return models.NewMapValue(nested), nil
	}

	return models.ThemeValue{}, malformed(key, "unsupported token value of type "+typeName(raw))
}

// mappingOf normalises the two mapping shapes produced by the decoders.
// yaml.v3 yields map[any]any when a mapping has non-string keys such as
// numeric colour shades. collision is the smallest key that two source keys
// share once turned into strings, e.g. 1 and "1".
func mappingOf(raw any) (m map[string]any, collision string, ok bool) {
	switch v := raw.(type) {
	case map[string]any:
		return v, "", true
	case map[any]any:
		out := make(map[string]any, len(v))
		var collisions []string
		for k, val := range v {
			name := fmt.Sprint(k)
			if _, dup := out[name]; dup {
				collisions = append(collisions, name)
			}
			out[name] = val
		}
		if len(collisions) > 0 {
			return out, slices.Min(collisions), true
		}
		return out, "", true
	default:
		return nil, "", false
	}
}

// mapping is mappingOf with a key collision reported as malformed at key.
func mapping(raw any, key string) (map[string]any, bool, error) {
	m, collision, ok := mappingOf(raw)
	if collision != "" {
		return nil, true, malformed(joinKey(key, collision), "key is declared more than once")
	}
	return m, ok, nil
}

func joinKey(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}

func typeName(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, int, int64, uint64, float64:
		return "number"
	case []any:
		return "sequence"
	case map[string]any, map[any]any:
		return "mapping"
	default:
		return fmt.Sprintf("%T", raw)
	}
}
