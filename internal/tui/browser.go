// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-tw-config/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	statusTTL = 2 * time.Second

	// lines taken by the title, tab row, help and padding
	browserChrome = 10
)

var tabTitles = []string{"Content", "Theme", "Plugins"}

type browserModel struct {
	source string
	tabs   [][]string
	active int
	offset []int

	width  int
	height int
	status string
	help   help.Model

	copyText func(string) error
}

func newBrowserModel(doc *models.ConfigDocument, source string) browserModel {
	return browserModel{
		source: source,
		tabs: [][]string{
			contentLines(doc),
			themeLines(doc),
			pluginLines(doc),
		},
		offset:   make([]int, len(tabTitles)),
		help:     help.New(),
		copyText: clipboard.WriteAll,
	}
}

// Browse runs the interactive browser over doc until the user quits.
func Browse(doc *models.ConfigDocument, source string) error {
	if doc == nil {
		return ErrNilDocument
	}

	_, err := tea.NewProgram(newBrowserModel(doc, source), tea.WithAltScreen()).Run()
	return err
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clampOffset()
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.right, keys.tab):
			m.active = (m.active + 1) % len(m.tabs)
		case key.Matches(msg, keys.left, keys.backtab):
			m.active = (m.active + len(m.tabs) - 1) % len(m.tabs)
		case key.Matches(msg, keys.down):
			m.offset[m.active]++
			m.clampOffset()
		case key.Matches(msg, keys.up):
			m.offset[m.active]--
			m.clampOffset()
		case key.Matches(msg, keys.copy):
			return m.copyActiveTab()
		}
	}

	return m, nil
}

func (m browserModel) copyActiveTab() (tea.Model, tea.Cmd) {
	text := strings.Join(m.tabs[m.active], "\n")
	if text == "" {
		m.status = "nothing to copy"
		return m, nil
	}

	if err := m.copyText(text); err != nil {
		m.status = fmt.Sprintf("copy failed: %v", err)
		return m, nil
	}

	m.status = "copied " + strings.ToLower(tabTitles[m.active])
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// visibleRows is the number of body lines that fit on screen; zero means
// the window size is unknown and everything is shown.
func (m browserModel) visibleRows() int {
	if m.height <= 0 {
		return 0
	}
	return max(m.height-browserChrome, 1)
}

func (m *browserModel) clampOffset() {
	limit := 0
	if rows := m.visibleRows(); rows > 0 {
		limit = max(len(m.tabs[m.active])-rows, 0)
	}
	m.offset[m.active] = min(max(m.offset[m.active], 0), limit)
}

func (m browserModel) View() string {
	title := "Tailwind config"
	if m.source != "" {
		title += " · " + m.source
	}

	tabs := make([]string, len(tabTitles))
	for i, t := range tabTitles {
		label := fmt.Sprintf("%s (%d)", t, len(m.tabs[i]))
		if i == m.active {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = inactiveTabStyle.Render(label)
		}
	}

	lines := m.tabs[m.active]
	if rows := m.visibleRows(); rows > 0 {
		start := m.offset[m.active]
		end := min(start+rows, len(lines))
		lines = lines[start:end]
	}

	var body strings.Builder
	if len(lines) == 0 {
		body.WriteString("-")
	}
	for i, line := range lines {
		if i > 0 {
			body.WriteString("\n")
		}
		body.WriteString(fitText(line, m.width-6))
	}

	parts := []string{
		titleStyle.Render(title),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		body.String(),
		"",
	}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}
	parts = append(parts, helpStyle.Render(m.help.View(keys)))

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
