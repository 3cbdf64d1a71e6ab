package session

import "testing"

func TestFinalize(t *testing.T) {
	tests := []struct {
		name       string
		score      float64
		total      int
		percentage int
		base       int
		bonus      int
	}{
		{"perfect", 10, 10, 100, 100, 50},
		{"ninety misses bonus", 9, 10, 90, 90, 0},
		{"ninety one earns bonus", 9.1, 10, 91, 91, 46},
		{"half points round", 8.5, 10, 85, 85, 0},
		{"zero score", 0, 10, 0, 0, 0},
		{"no questions", 0, 0, 0, 0, 0},
		{"single question half", 0.5, 1, 50, 5, 0},
		{"rounding up", 2, 3, 67, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Finalize(tt.score, tt.total)
			if s.Percentage != tt.percentage {
				t.Errorf("Percentage = %d, want %d", s.Percentage, tt.percentage)
			}
			if s.BasePoints != tt.base {
				t.Errorf("BasePoints = %d, want %d", s.BasePoints, tt.base)
			}
			if s.Bonus != tt.bonus {
				t.Errorf("Bonus = %d, want %d", s.Bonus, tt.bonus)
			}
			if got := s.TotalPoints(); got != tt.base+tt.bonus {
				t.Errorf("TotalPoints = %d, want %d", got, tt.base+tt.bonus)
			}
		})
	}
}

func TestFinalizeMessages(t *testing.T) {
	bands := []struct {
		score   float64
		total   int
		message string
	}{
		{0, 10, msgBand0},
		{3, 10, msgBand0},
		{3.1, 10, msgBand31},
		{5, 10, msgBand31},
		{5.1, 10, msgBand51},
		{7.5, 10, msgBand51},
		{7.6, 10, msgBand76},
		{9, 10, msgBand76},
		{9.1, 10, msgBand91},
		{10, 10, msgBand91},
		{0, 0, msgBand0},
	}

	for _, b := range bands {
		s := Finalize(b.score, b.total)
		if s.Message != b.message {
			t.Errorf("Finalize(%v, %d): message %q, want %q (pct %d)",
				b.score, b.total, s.Message, b.message, s.Percentage)
		}
	}
}
