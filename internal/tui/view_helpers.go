package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const dividerWidth = 54

// renderPage frames data under a title between two dividers, indented by
// two spaces. Empty data renders as a single dash.
func renderPage(title, data string) string {
	divider := "  " + strings.Repeat("─", dividerWidth)

	lines := []string{titleStyle.Render(title), divider, ""}
	if strings.TrimSpace(data) == "" {
		lines = append(lines, "  -")
	} else {
		for _, line := range strings.Split(data, "\n") {
			lines = append(lines, "  "+line)
		}
	}
	lines = append(lines, "", divider)

	return strings.Join(lines, "\n")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

// fitText shortens v to at most max terminal cells, ending with "..." when
// there is room for it. Token values may hold multi-byte characters, so
// the cut is made on runes.
func fitText(v string, max int) string {
	if max <= 0 || lipgloss.Width(v) <= max {
		return v
	}

	runes := []rune(v)
	if max <= 3 {
		return string(runes[:min(max, len(runes))])
	}

	keep := max - 3
	for keep > 0 && lipgloss.Width(string(runes[:keep])) > max-3 {
		keep--
	}
	return string(runes[:keep]) + "..."
}
