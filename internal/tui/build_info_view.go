// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-tw-config/models"
)

// RenderBuildInfo renders the banner printed when the server starts.
func RenderBuildInfo(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"version", info.BuildVersion()},
		{"commit", info.BuildCommit()},
		{"built", info.BuildDate()},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s %s", labelStyle.Render(fmt.Sprintf("%-8s", row[0])), valueOrNA(row[1])))
	}

	return renderPage("twconfig", strings.Join(lines, "\n"))
}
