// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const notAvailable = "N/A"

// AppBuildInfo is the build metadata injected into twconfig by -ldflags.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

func (a AppBuildInfo) BuildDate() string { return a.buildDate }

func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }

// Version is BuildVersion, or "N/A" for builds without version metadata.
func (a AppBuildInfo) Version() string {
	return orNA(a.buildVersion)
}

// String renders a one-line summary, e.g. "v1.2.0 (abc1234, 2026-01-02)".
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", a.Version(), orNA(a.buildCommit), orNA(a.buildDate))
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
