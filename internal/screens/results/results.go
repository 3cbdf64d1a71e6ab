package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rlemos/provinha/internal/router"
	"github.com/rlemos/provinha/internal/screen"
	"github.com/rlemos/provinha/internal/session"
	"github.com/rlemos/provinha/internal/ui/components"
	"github.com/rlemos/provinha/internal/ui/layout"
	"github.com/rlemos/provinha/internal/ui/theme"
)

// ResultsScreen displays the finished attempt's summary.
type ResultsScreen struct {
	title   string
	summary session.Summary
	back    components.Button
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen for one finished attempt.
func New(contentTitle string, sum session.Summary) *ResultsScreen {
	s := &ResultsScreen{title: contentTitle, summary: sum}
	s.back = components.NewButton("VOLTAR AO INÍCIO", true, func() tea.Cmd {
		return func() tea.Msg { return router.PopScreenMsg{} }
	})
	return s
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Resultado"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Início"},
		{Key: "Esc", Description: "Início"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	var cmd tea.Cmd
	s.back, cmd = s.back.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) View(width, height int) string {
	sum := s.summary
	var b strings.Builder

	center := func(style lipgloss.Style, text string) {
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Render(style.Render(text)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), "Prova concluída!")
	center(lipgloss.NewStyle().Foreground(theme.TextDim), s.title)
	b.WriteString("\n")

	center(lipgloss.NewStyle().Foreground(theme.Text),
		fmt.Sprintf("Acertos: %s de %d  (%d%%)",
			formatScore(sum.Score), sum.Total, sum.Percentage))
	b.WriteString("\n")

	pointsLine := fmt.Sprintf("Pontos: %d", sum.BasePoints)
	if sum.Bonus > 0 {
		pointsLine = fmt.Sprintf("Pontos: %d  +  Bônus: %d  =  %d",
			sum.BasePoints, sum.Bonus, sum.TotalPoints())
	}
	center(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true), pointsLine)
	b.WriteString("\n")

	center(lipgloss.NewStyle().Foreground(theme.Secondary).Italic(true).
		Width(min(width-8, 64)), sum.Message)

	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.back.View()))
	b.WriteString("\n")

	return b.String()
}

func formatScore(score float64) string {
	if score == float64(int(score)) {
		return fmt.Sprintf("%d", int(score))
	}
	return fmt.Sprintf("%.1f", score)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
