package player

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rlemos/provinha/internal/grading"
	"github.com/rlemos/provinha/internal/quiz"
	"github.com/rlemos/provinha/internal/session"
	"github.com/rlemos/provinha/internal/ui/components"
	"github.com/rlemos/provinha/internal/ui/theme"
)

func (s *PlayerScreen) View(width, height int) string {
	if s.noQuestions {
		return centered(width,
			lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
				Render("\n\nEste conteúdo não tem questões jogáveis."),
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render("\nPressione Esc para voltar."))
	}
	if s.quitConfirm {
		return centered(width,
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
				Render("\n\nAbandonar a prova?"),
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render("\nO progresso desta tentativa será perdido. (S/N)"))
	}
	if s.done || s.engine.Finished() {
		return centered(width,
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render("\n\nCalculando resultado..."))
	}

	q := s.engine.Question()
	if q == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(s.renderProgress(width))
	b.WriteString("\n\n")

	if q.Format == quiz.FormatChoice {
		b.WriteString(s.renderChoice(width))
	} else {
		b.WriteString(s.renderDiscursive(width, q.Text))
	}

	return b.String()
}

func (s *PlayerScreen) renderProgress(width int) string {
	total := s.engine.TotalValid()
	var pct float64
	if total > 0 {
		pct = float64(s.engine.Answered()) / float64(total)
	}
	bar := components.NewProgressBar(
		fmt.Sprintf("  Questão %d de %d", s.engine.Answered()+1, total),
		pct, false, width-8)
	return bar.View()
}

func (s *PlayerScreen) renderChoice(width int) string {
	var b strings.Builder
	b.WriteString(indentBlock(s.mc.View(), 2))

	if s.engine.Selected() != nil {
		b.WriteString("\n")
		if s.engine.Feedback() == session.FeedbackCorrect {
			b.WriteString("  " + theme.Correct.Render("Acertou!"))
		} else {
			b.WriteString("  " + theme.Incorrect.Render("Não foi dessa vez."))
		}
		q := s.engine.Question()
		if q.Explanation != "" {
			b.WriteString("\n\n")
			b.WriteString(indentBlock(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Width(min(width-6, 70)).
				Render(q.Explanation), 2))
		}
		b.WriteString("\n\n")
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("Avançando para a próxima..."))
	}

	return b.String()
}

func (s *PlayerScreen) renderDiscursive(width int, question string) string {
	var b strings.Builder

	b.WriteString(indentBlock(lipgloss.NewStyle().
		Foreground(theme.Text).Bold(true).
		Width(min(width-6, 70)).
		Render(question), 2))
	b.WriteString("\n\n")

	switch {
	case s.engine.GradingBusy():
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Secondary).Italic(true).
			Render("Corrigindo sua resposta..."))

	case s.engine.GradingResult() != nil:
		b.WriteString(s.renderGradingFeedback(width, s.engine.GradingResult()))

	default:
		b.WriteString("  Resposta: " + s.input.View())
		if s.gradingErr != "" {
			b.WriteString("\n\n  " + lipgloss.NewStyle().Foreground(theme.Error).
				Render(s.gradingErr))
		}
	}

	return b.String()
}

func (s *PlayerScreen) renderGradingFeedback(width int, res *grading.Result) string {
	var b strings.Builder
	w := min(width-6, 70)

	switch res.Adherence {
	case grading.AdherenceCorrect:
		b.WriteString("  " + theme.Correct.Render("Resposta correta!"))
	case grading.AdherencePartial:
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render("Quase lá! Meio ponto."))
	default:
		b.WriteString("  " + theme.Incorrect.Render("A resposta não atende ao esperado."))
	}
	b.WriteString("\n")

	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Width(w)
	if len(res.Positives) > 0 {
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Success).Render("Pontos fortes:") + "\n")
		for _, p := range res.Positives {
			b.WriteString(indentBlock(dim.Render("• "+p), 4) + "\n")
		}
	}
	if len(res.Improvements) > 0 {
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Accent).Render("Para melhorar:") + "\n")
		for _, p := range res.Improvements {
			b.WriteString(indentBlock(dim.Render("• "+p), 4) + "\n")
		}
	}
	if res.ModelAnswer != "" {
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Secondary).Render("Resposta modelo:") + "\n")
		b.WriteString(indentBlock(dim.Render(res.ModelAnswer), 4) + "\n")
	}

	b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render("Pressione Enter para continuar."))
	return b.String()
}

func centered(width int, lines ...string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(l))
		b.WriteString("\n")
	}
	return b.String()
}

func indentBlock(block string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
