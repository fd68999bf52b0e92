// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/peridotvault/peridot-desktop-sub002/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(field("Application", "PeridotVault"))
	b.WriteString(field("Version", info.Version))
	b.WriteString(field("Date", info.Date))
	b.WriteString(field("Commit", info.Commit))

	return renderPage("ABOUT", overlayBoxStyle.Render(strings.TrimRight(b.String(), "\n")), "esc: back")
}
