// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// UnknownBuildValue stands in for build metadata the linker did not set.
const UnknownBuildValue = "N/A"

// AppBuildInfo is the metadata stamped into a binary with -ldflags -X.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewAppBuildInfo replaces empty values with [UnknownBuildValue].
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	orUnknown := func(v string) string {
		if v == "" {
			return UnknownBuildValue
		}
		return v
	}

	return AppBuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}

// HasVersion reports whether a real version was stamped in.
func (a AppBuildInfo) HasVersion() bool {
	return a.Version != "" && a.Version != UnknownBuildValue
}

// String renders the banner printed by the binaries at start-up.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", a.Version, a.Date, a.Commit)
}
