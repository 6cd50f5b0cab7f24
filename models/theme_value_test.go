package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeValue_Accessors(t *testing.T) {
	s := NewStringValue("#fff")
	str, ok := s.Str()
	require.True(t, ok)
	assert.Equal(t, "#fff", str)
	_, ok = s.Number()
	assert.False(t, ok)

	n := NewNumberValue(1.5)
	num, ok := n.Number()
	require.True(t, ok)
	assert.Equal(t, 1.5, num)
	_, ok = n.Map()
	assert.False(t, ok)

	m := NewMapValue(map[string]ThemeValue{"a": s})
	inner, ok := m.Map()
	require.True(t, ok)
	assert.Len(t, inner, 1)
	_, ok = m.List()
	assert.False(t, ok)

	l := NewListValue([]ThemeValue{s, n})
	items, ok := l.List()
	require.True(t, ok)
	assert.Len(t, items, 2)
	_, ok = l.Str()
	assert.False(t, ok)
}

func TestThemeValueKind_String(t *testing.T) {
	tests := []struct {
		kind ThemeValueKind
		want string
	}{
		{StringValue, "string"},
		{NumberValue, "number"},
		{MapValue, "map"},
		{ListValue, "list"},
		{ThemeValueKind(0), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestThemeValue_NestedCopiesAreIndependent(t *testing.T) {
	src := map[string]ThemeValue{"a": NewListValue([]ThemeValue{NewStringValue("x")})}
	v := NewMapValue(src)

	src["b"] = NewStringValue("y")

	m, _ := v.Map()
	assert.Len(t, m, 1)

	list, _ := m["a"].List()
	list[0] = NewStringValue("changed")

	again, _ := v.Map()
	first, _ := again["a"].List()
	s, _ := first[0].Str()
	assert.Equal(t, "x", s)
}

func TestThemeValue_Equal(t *testing.T) {
	assert.True(t, NewStringValue("a").Equal(NewStringValue("a")))
	assert.False(t, NewStringValue("a").Equal(NewStringValue("b")))
	assert.True(t, NewNumberValue(2).Equal(NewNumberValue(2)))
	assert.False(t, NewNumberValue(2).Equal(NewStringValue("2")))
	assert.True(t, NewListValue([]ThemeValue{NewNumberValue(1)}).Equal(NewListValue([]ThemeValue{NewNumberValue(1)})))
	assert.False(t, NewListValue([]ThemeValue{NewNumberValue(1)}).Equal(NewListValue(nil)))
	assert.True(t, NewMapValue(nil).Equal(NewMapValue(map[string]ThemeValue{})))
}
