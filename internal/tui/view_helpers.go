package tui

import (
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

// renderPage lays out a titled box body with a footer of key hints.
func renderPage(title, body, hints string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n  " + uiDivider + "\n\n")

	if strings.TrimSpace(body) == "" {
		body = "-"
	}
	for _, line := range strings.Split(body, "\n") {
		b.WriteString("  " + line + "\n")
	}

	b.WriteString("\n  " + uiDivider + "\n")
	if hints = strings.TrimSpace(hints); hints != "" {
		b.WriteString(helpStyle.Render("  " + hints + " • ctrl+c: quit"))
	} else {
		b.WriteString(helpStyle.Render("  ctrl+c: quit"))
	}

	return b.String()
}
