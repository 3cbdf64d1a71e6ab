package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rlemos/provinha/internal/content"
	"github.com/rlemos/provinha/internal/ui/components"
	"github.com/rlemos/provinha/internal/ui/theme"
)

// Block-letter title.
const cabinetTitleFull = ` ██████╗ ██████╗  ██████╗ ██╗   ██╗██╗███╗   ██╗██╗  ██╗ █████╗
 ██╔══██╗██╔══██╗██╔═══██╗██║   ██║██║████╗  ██║██║  ██║██╔══██╗
 ██████╔╝██████╔╝██║   ██║██║   ██║██║██╔██╗ ██║███████║███████║
 ██╔═══╝ ██╔══██╗██║   ██║╚██╗ ██╔╝██║██║╚██╗██║██╔══██║██╔══██║
 ██║     ██║  ██║╚██████╔╝ ╚████╔╝ ██║██║ ╚████║██║  ██║██║  ██║
 ╚═╝     ╚═╝  ╚═╝ ╚═════╝   ╚═══╝  ╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝╚═╝  ╚═╝`

const cabinetTitleCompact = "P · R · O · V · I · N · H · A"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(cabinetTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(cabinetTitleFull))
}

// renderContentCard shows what is loaded and about to be played.
func renderContentCard(item *content.Item, cw int) string {
	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(item.Title)

	meta := item.Subject
	if item.Topic != "" {
		meta += " · " + item.Topic
	}
	if item.Grade != "" {
		meta += " · " + item.Grade
	}
	metaLine := lipgloss.NewStyle().Foreground(theme.TextDim).Render(meta)

	count := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(
		fmt.Sprintf("%d questões", len(item.Questions)))

	return components.ArcadeCard(title+"\n"+metaLine+"\n"+count, cw)
}

// renderStatsBar renders past-attempt stats in a bordered box.
func renderStatsBar(attempts, bestPoints, cw int, compact bool) string {
	attemptStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	bestStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var parts []string
	parts = append(parts,
		attemptStyle.Render(fmt.Sprintf("%d", attempts))+dimStyle.Render(" provas"))
	parts = append(parts,
		bestStyle.Render(fmt.Sprintf("%d", bestPoints))+dimStyle.Render(" recorde"))

	sep := "    "
	if compact {
		sep = "  "
	}
	return components.ArcadeCard(strings.Join(parts, sep), cw)
}

// renderMenuBox renders the home menu as stacked arcade buttons.
func renderMenuBox(labels []string, selected, cw int) string {
	var rows []string
	for i, label := range labels {
		rows = append(rows, components.ArcadeButton(label, i == selected, cw-8))
	}
	return strings.Join(rows, "\n")
}
