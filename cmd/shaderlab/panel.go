package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// panelStyles holds the lipgloss styles used for report output. Plain styles are used when
// color is disabled so the output stays free of escape sequences.
type panelStyles struct {
	title lipgloss.Style
	box   lipgloss.Style
	ok    lipgloss.Style
	bad   lipgloss.Style
	dim   lipgloss.Style
}

func newPanelStyles(colored bool) panelStyles {
	if !colored {
		plain := lipgloss.NewStyle()
		return panelStyles{
			title: plain,
			box:   plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
			ok:    plain,
			bad:   plain,
			dim:   plain,
		}
	}
	return panelStyles{
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		box:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("6")).Padding(0, 1),
		ok:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		bad:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		dim:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// panel renders a titled box with one entry per line.
func (s panelStyles) panel(title string, lines []string) string {
	body := s.title.Render(title) + "\n" + strings.Join(lines, "\n")
	return s.box.Render(body)
}
