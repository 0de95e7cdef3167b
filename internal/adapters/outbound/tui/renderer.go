package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	okStyle       = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	separatorLine = dimStyle.Render(strings.Repeat("─", 48))
)

// RenderReport frames a plain-text report under a titled header. The body is
// passed through untouched so report content stays copy-pasteable.
func RenderReport(title, body string) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(separatorLine)
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	return b.String()
}

// RenderSuccess renders a one-line confirmation.
func RenderSuccess(msg string) string {
	return okStyle.Render(msg) + "\n"
}

// RenderError renders a one-line failure message.
func RenderError(msg string) string {
	return failStyle.Render("Error: "+msg) + "\n"
}
