package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mordilloSan/go-storelog/logger"
)

// Severity colors
var (
	ColorAlert   = lipgloss.Color("#DC2626") // Dark Red
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorInfo    = lipgloss.Color("#06B6D4") // Cyan
)

// severityStyles returns the tag style for each severity, bound to r so the
// color profile follows the destination writer.
func severityStyles(r *lipgloss.Renderer) map[logger.Severity]lipgloss.Style {
	return map[logger.Severity]lipgloss.Style{
		logger.Alert:   r.NewStyle().Foreground(ColorAlert).Bold(true),
		logger.Error:   r.NewStyle().Foreground(ColorError).Bold(true),
		logger.Warning: r.NewStyle().Foreground(ColorWarning),
		logger.Info:    r.NewStyle().Foreground(ColorInfo),
	}
}

// severityOf returns the severity whose prefix starts line.
func severityOf(line string) (logger.Severity, bool) {
	for _, s := range logger.Severities() {
		if strings.HasPrefix(line, s.Prefix()) {
			return s, true
		}
	}
	return 0, false
}

// printLines writes drained lines to w, one per line, styling the severity
// tag unless plain is set.
func printLines(w io.Writer, lines string, plain bool) {
	if lines == "" {
		return
	}

	var styles map[logger.Severity]lipgloss.Style
	if !plain {
		styles = severityStyles(lipgloss.NewRenderer(w))
	}

	for _, line := range strings.Split(lines, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if s, ok := severityOf(line); ok && !plain {
			// Style the four-letter tag only; ": " and the message stay plain.
			tag := strings.TrimSuffix(s.Prefix(), ": ")
			line = styles[s].Render(tag) + line[len(tag):]
		}
		fmt.Fprintln(w, line)
	}
}
