// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/go-tw-config/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderSummary renders a compact overview of doc: every content glob,
// the token count of each theme category and every plugin name.
// source is shown in the title when non-empty.
func RenderSummary(doc *models.ConfigDocument, source string) string {
	if doc == nil {
		return errorStyle.Render(ErrNilDocument.Error())
	}

	title := "Tailwind config"
	if source != "" {
		title += " · " + source
	}

	globs := doc.ContentGlobs()
	ext := doc.ThemeExtensions()
	plugins := doc.Plugins()

	var content strings.Builder
	content.WriteString(headingStyle.Render(fmt.Sprintf("Content (%d)", len(globs))))
	for _, g := range globs {
		content.WriteString("\n  " + g)
	}

	var theme strings.Builder
	theme.WriteString(headingStyle.Render(fmt.Sprintf("Theme extensions (%d)", len(ext))))
	if len(ext) == 0 {
		theme.WriteString("\n  -")
	}
	for _, category := range slices.Sorted(maps.Keys(ext)) {
		theme.WriteString(fmt.Sprintf("\n  %s: %d tokens", category, len(ext[category])))
	}

	var plugs strings.Builder
	plugs.WriteString(headingStyle.Render(fmt.Sprintf("Plugins (%d)", len(plugins))))
	if len(plugins) == 0 {
		plugs.WriteString("\n  -")
	}
	for _, p := range plugins {
		line := "\n  " + p.Name
		if len(p.Options) > 0 {
			line += fmt.Sprintf(" (%d options)", len(p.Options))
		}
		plugs.WriteString(line)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		"",
		content.String(),
		"",
		theme.String(),
		"",
		plugs.String(),
	)

	return boxStyle.Render(body)
}
