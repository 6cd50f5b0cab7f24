// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"maps"
	"slices"
)

// ThemeValueKind defines which variant a [ThemeValue] holds.
type ThemeValueKind int

const (
	// StringValue is a plain textual token value such as "#1d4ed8" or "1.5rem".
	StringValue ThemeValueKind = iota + 1

	// NumberValue is a numeric token value such as a line height or z-index.
	NumberValue

	// MapValue is a nested mapping of token names to values, e.g. a colour
	// scale {"50": "...", "100": "..."}.
	MapValue

	// ListValue is an ordered list of values, e.g. a font family stack.
	ListValue
)

// String returns the lower-case name of the kind.
func (k ThemeValueKind) String() string {
	switch k {
	case StringValue:
		return "string"
	case NumberValue:
		return "number"
	case MapValue:
		return "map"
	case ListValue:
		return "list"
	default:
		return "unknown"
	}
}

// ThemeValue is a design-token value. The token set under theme.extend is
// open-ended, so values are a tagged variant rather than a fixed struct.
//
// The zero value is not a valid token; use the New* constructors.
type ThemeValue struct {
	kind ThemeValueKind
	str  string
	num  float64
	m    map[string]ThemeValue
	list []ThemeValue
}

// NewStringValue returns a string token value.
func NewStringValue(s string) ThemeValue {
	return ThemeValue{kind: StringValue, str: s}
}

// NewNumberValue returns a numeric token value.
func NewNumberValue(n float64) ThemeValue {
	return ThemeValue{kind: NumberValue, num: n}
}

// NewMapValue returns a nested token mapping. The map is copied.
func NewMapValue(m map[string]ThemeValue) ThemeValue {
	return ThemeValue{kind: MapValue, m: cloneValueMap(m)}
}

// NewListValue returns an ordered token list. The slice is copied.
func NewListValue(list []ThemeValue) ThemeValue {
	return ThemeValue{kind: ListValue, list: cloneValueList(list)}
}

// Kind reports which variant v holds.
func (v ThemeValue) Kind() ThemeValueKind {
	return v.kind
}

// Str returns the string payload and whether v is a [StringValue].
func (v ThemeValue) Str() (string, bool) {
	return v.str, v.kind == StringValue
}

// Number returns the numeric payload and whether v is a [NumberValue].
func (v ThemeValue) Number() (float64, bool) {
	return v.num, v.kind == NumberValue
}

// Map returns a copy of the nested mapping and whether v is a [MapValue].
func (v ThemeValue) Map() (map[string]ThemeValue, bool) {
	if v.kind != MapValue {
		return nil, false
	}
	return cloneValueMap(v.m), true
}

// List returns a copy of the list payload and whether v is a [ListValue].
func (v ThemeValue) List() ([]ThemeValue, bool) {
	if v.kind != ListValue {
		return nil, false
	}
	return cloneValueList(v.list), true
}

// Equal reports whether v and o hold the same variant with structurally
// equal payloads.
func (v ThemeValue) Equal(o ThemeValue) bool {
	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case StringValue:
		return v.str == o.str
	case NumberValue:
		return v.num == o.num
	case MapValue:
		return valueMapsEqual(v.m, o.m)
	case ListValue:
		return slices.EqualFunc(v.list, o.list, ThemeValue.Equal)
	default:
		return true
	}
}

// MarshalJSON encodes v as the plain JSON value it represents.
func (v ThemeValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case StringValue:
		return json.Marshal(v.str)
	case NumberValue:
		return json.Marshal(v.num)
	case MapValue:
		if v.m == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.m)
	case ListValue:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	default:
		return []byte("null"), nil
	}
}

func cloneValueMap(m map[string]ThemeValue) map[string]ThemeValue {
	out := make(map[string]ThemeValue, len(m))
	for k, v := range m {
		out[k] = v.clone()
	}
	return out
}

func cloneValueList(list []ThemeValue) []ThemeValue {
	out := make([]ThemeValue, len(list))
	for i, v := range list {
		out[i] = v.clone()
	}
	return out
}

func (v ThemeValue) clone() ThemeValue {
	switch v.kind {
	case MapValue:
		v.m = cloneValueMap(v.m)
	case ListValue:
		v.list = cloneValueList(v.list)
	}
	return v
}

func valueMapsEqual(a, b map[string]ThemeValue) bool {
	return maps.EqualFunc(a, b, ThemeValue.Equal)
}
