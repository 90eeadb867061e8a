package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(1, 2)
)

// Welcome renders the intro panel shown at the start of the setup flow.
func Welcome() string {
	body := accentStyle.Render("Logfire Setup") + "\n\n" +
		"Interactive CLI to set up Pydantic Logfire with optional dependencies"
	return panelStyle.Render(body) + "\n"
}

// Panel renders titled boxed content, e.g. an MCP config example.
func Panel(title, content string) string {
	var b strings.Builder
	if title != "" {
		b.WriteString(dimStyle.Render(title))
		b.WriteString("\n")
	}
	b.WriteString(panelStyle.BorderForeground(lipgloss.Color("240")).Render(content))
	b.WriteString("\n")
	return b.String()
}

// Checkmark formats a success line.
func Checkmark(format string, args ...interface{}) string {
	return accentStyle.Render("✓") + " " + fmt.Sprintf(format, args...)
}

// Warning formats a non-fatal problem line.
func Warning(format string, args ...interface{}) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render("⚠") + " " + fmt.Sprintf(format, args...)
}

// Dim formats secondary information.
func Dim(text string) string {
	return dimStyle.Render(text)
}
