package session

import "math"

// Summary is the finalized outcome of an attempt.
type Summary struct {
	Score      float64
	Total      int
	Percentage int
	BasePoints int
	Bonus      int
	Message    string
}

// TotalPoints is base plus bonus.
func (s Summary) TotalPoints() int { return s.BasePoints + s.Bonus }

// Performance messages by percentage band.
const (
	msgBand0  = "Não desanime! Revise o conteúdo e tente de novo, você consegue!"
	msgBand31 = "Você está no caminho! Uma revisada no conteúdo e a próxima vai ser melhor."
	msgBand51 = "Bom trabalho! Você já domina mais da metade, continue praticando."
	msgBand76 = "Muito bem! Faltou pouquinho para o topo, continue assim!"
	msgBand91 = "Excelente! Você mandou muito bem, parabéns!"
)

// Finalize computes the attempt summary. Percentage is the rounded
// score over total (0 when there are no questions, never a division by
// zero). Base points are ten per point of score, and the 50% bonus
// applies only in the top band, 91 to 100 percent inclusive.
func Finalize(score float64, total int) Summary {
	s := Summary{Score: score, Total: total}

	if total > 0 {
		s.Percentage = int(math.Round(score / float64(total) * 100))
	}
	s.BasePoints = int(math.Round(score * 10))
	if s.Percentage >= 91 && s.Percentage <= 100 {
		s.Bonus = int(math.Round(float64(s.BasePoints) * 0.5))
	}

	switch {
	case s.Percentage <= 30:
		s.Message = msgBand0
	case s.Percentage <= 50:
		s.Message = msgBand31
	case s.Percentage <= 75:
		s.Message = msgBand51
	case s.Percentage <= 90:
		s.Message = msgBand76
	default:
		s.Message = msgBand91
	}

	return s
}
