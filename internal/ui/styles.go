package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// --- UI Styles ---
var (
	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8942E1"))
	subtleStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	okStyle            = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	helpStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	dividerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	pageEdgeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pageFillStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	pageLabelStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3AC4BA"))
	sidebarStyle       = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderLeft(true).BorderForeground(lipgloss.Color("240")).PaddingLeft(1)
	annotationBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#FFAB78")).Padding(0, 1)

	symbolNote       = fgSymbol("#3AC4BA", "N")
	symbolAnnotation = fgSymbol("#FFAB78", "A")
)

func fgSymbol(col, ch string) string {
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(col)).Render(ch)
	const reset = "\x1b[0m"
	return strings.TrimSuffix(s, reset) + "\x1b[39m"
}

// renderFooter stacks the status line over the key help, each clipped to
// width so a narrow terminal does not wrap the footer into the body.
func renderFooter(width int, status, help string) string {
	clip := lipgloss.NewStyle().MaxWidth(width)
	var lines []string
	if status != "" {
		lines = append(lines, clip.Render(subtleStyle.Render(status)))
	}
	if help != "" {
		lines = append(lines, clip.Render(helpStyle.Render(help)))
	}
	return strings.Join(lines, "\n")
}
