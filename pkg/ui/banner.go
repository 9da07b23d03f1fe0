package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var bannerGradient = []lipgloss.Style{
	lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
	lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
	lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("121")),
	lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
	lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("177")),
}

var taglineStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))

// Banner renders a colored sysmon wordmark shown above the table.
func Banner() string {
	var b strings.Builder

	letters := [][]string{
		{" ██████╗ ", "██╔════╝ ", "╚█████╗  ", " ╚═══██╗ ", "██████╔╝ ", "╚═════╝  "},
		{"██╗   ██╗", "╚██╗ ██╔╝", " ╚████╔╝ ", "  ╚██╔╝  ", "   ██║   ", "   ╚═╝   "},
		{" ██████╗ ", "██╔════╝ ", "╚█████╗  ", " ╚═══██╗ ", "██████╔╝ ", "╚═════╝  "},
		{"███╗   ███╗", "████╗ ████║", "██╔████╔██║", "██║╚██╔╝██║", "██║ ╚═╝ ██║", "╚═╝     ╚═╝"},
		{" ██████╗ ", "██╔═══██╗", "██║   ██║", "██║   ██║", "╚██████╔╝", " ╚═════╝ "},
		{"███╗   ██╗", "████╗  ██║", "██╔██╗ ██║", "██║╚██╗██║", "██║ ╚████║", "╚═╝  ╚═══╝"},
	}

	wordRows := make([]string, len(letters[0]))
	for i, letter := range letters {
		style := bannerGradient[i%len(bannerGradient)]
		for r := 0; r < len(letter); r++ {
			wordRows[r] += style.Render(letter[r]) + " "
		}
	}
	for _, line := range wordRows {
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(taglineStyle.Render("sysmon") + "  •  read-only /proc monitor\n\n")

	return b.String()
}
