// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"maps"
	"slices"
)

// PluginRef identifies an extension module of the CSS generation tool.
// The reference is opaque to this layer: only its name and the literal
// options it was declared with are kept.
type PluginRef struct {
	// Name is the module identifier, e.g. "@tailwindcss/forms".
	Name string `json:"name"`

	// Options holds the literal options the plugin was invoked with.
	// Nil when the plugin was referenced without options.
	Options map[string]ThemeValue `json:"options,omitempty"`
}

// Equal reports whether p and o reference the same plugin with equal options.
func (p PluginRef) Equal(o PluginRef) bool {
	return p.Name == o.Name && valueMapsEqual(p.Options, o.Options)
}

func (p PluginRef) clone() PluginRef {
	if p.Options != nil {
		p.Options = cloneValueMap(p.Options)
	}
	return p
}

// ConfigDocument is the loaded configuration of the CSS utility-class
// generation tool.
//
// A ConfigDocument is immutable: all fields are unexported and every
// accessor returns a deep copy, so a value may be shared between goroutines
// without locking.
type ConfigDocument struct {
	contentGlobs    []string
	themeExtensions map[string]map[string]ThemeValue
	plugins         []PluginRef
}

// NewConfigDocument builds a document from already validated parts.
// All arguments are copied; nil arguments produce empty collections.
func NewConfigDocument(
	contentGlobs []string,
	themeExtensions map[string]map[string]ThemeValue,
	plugins []PluginRef,
) *ConfigDocument {
	doc := &ConfigDocument{
		contentGlobs:    slices.Clone(contentGlobs),
		themeExtensions: cloneExtensions(themeExtensions),
		plugins:         clonePlugins(plugins),
	}
	if doc.contentGlobs == nil {
		doc.contentGlobs = []string{}
	}
	return doc
}

// ContentGlobs returns the glob patterns of the files to scan, in
// declaration order.
func (d *ConfigDocument) ContentGlobs() []string {
	out := slices.Clone(d.contentGlobs)
	if out == nil {
		out = []string{}
	}
	return out
}

// ThemeExtensions returns the token categories declared under theme.extend.
func (d *ConfigDocument) ThemeExtensions() map[string]map[string]ThemeValue {
	return cloneExtensions(d.themeExtensions)
}

// Plugins returns the plugin references in declaration order.
func (d *ConfigDocument) Plugins() []PluginRef {
	return clonePlugins(d.plugins)
}

// Equal reports whether d and o are structurally equal.
func (d *ConfigDocument) Equal(o *ConfigDocument) bool {
	if d == nil || o == nil {
		return d == o
	}

	return slices.Equal(d.contentGlobs, o.contentGlobs) &&
		maps.EqualFunc(d.themeExtensions, o.themeExtensions, valueMapsEqual) &&
		slices.EqualFunc(d.plugins, o.plugins, PluginRef.Equal)
}

type documentJSON struct {
	Content []string    `json:"content"`
	Theme   themeJSON   `json:"theme"`
	Plugins []PluginRef `json:"plugins"`
}

type themeJSON struct {
	Extend map[string]map[string]ThemeValue `json:"extend"`
}

// MarshalJSON encodes d in the canonical declaration shape
// {"content": [...], "theme": {"extend": {...}}, "plugins": [...]}.
// The output can be loaded back as a JSON declaration.
func (d *ConfigDocument) MarshalJSON() ([]byte, error) {
	return json.Marshal(documentJSON{
		Content: d.ContentGlobs(),
		Theme:   themeJSON{Extend: d.ThemeExtensions()},
		Plugins: d.Plugins(),
	})
}

func cloneExtensions(ext map[string]map[string]ThemeValue) map[string]map[string]ThemeValue {
	out := make(map[string]map[string]ThemeValue, len(ext))
	for category, tokens := range ext {
		out[category] = cloneValueMap(tokens)
	}
	return out
}

func clonePlugins(plugins []PluginRef) []PluginRef {
	out := make([]PluginRef, len(plugins))
	for i, p := range plugins {
		out[i] = p.clone()
	}
	return out
}
