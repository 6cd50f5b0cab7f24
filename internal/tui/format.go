package tui

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-tw-config/models"
)

const indentUnit = "  "

func contentLines(doc *models.ConfigDocument) []string {
	return doc.ContentGlobs()
}

// themeLines lists every category with its tokens in key order. Nested
// scales are indented one level per depth.
func themeLines(doc *models.ConfigDocument) []string {
	ext := doc.ThemeExtensions()

	var lines []string
	for _, category := range slices.Sorted(maps.Keys(ext)) {
		lines = append(lines, category+":")
		lines = appendValueMap(lines, indentUnit, ext[category])
	}
	return lines
}

func pluginLines(doc *models.ConfigDocument) []string {
	var lines []string
	for _, p := range doc.Plugins() {
		lines = append(lines, p.Name)
		if len(p.Options) > 0 {
			lines = appendValueMap(lines, indentUnit, p.Options)
		}
	}
	return lines
}

func appendValueMap(lines []string, indent string, m map[string]models.ThemeValue) []string {
	for _, name := range slices.Sorted(maps.Keys(m)) {
		v := m[name]
		if nested, ok := v.Map(); ok {
			lines = append(lines, indent+name+":")
			lines = appendValueMap(lines, indent+indentUnit, nested)
			continue
		}
		lines = append(lines, indent+name+": "+inlineValue(v))
	}
	return lines
}

func inlineValue(v models.ThemeValue) string {
	switch v.Kind() {
	case models.StringValue:
		s, _ := v.Str()
		return s
	case models.NumberValue:
		n, _ := v.Number()
		return strconv.FormatFloat(n, 'g', -1, 64)
	case models.ListValue:
		list, _ := v.List()
		items := make([]string, len(list))
		for i, item := range list {
			items[i] = inlineValue(item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case models.MapValue:
		m, _ := v.Map()
		pairs := make([]string, 0, len(m))
		for _, k := range slices.Sorted(maps.Keys(m)) {
			pairs = append(pairs, k+": "+inlineValue(m[k]))
		}
		return "{" + strings.Join(pairs, ", ") + "}"
	default:
		return "?"
	}
}
