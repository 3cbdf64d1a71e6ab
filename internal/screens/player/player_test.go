package player

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/rlemos/provinha/internal/content"
)

func intPtr(i int) *int { return &i }

func twoQuestionItem() *content.Item {
	return &content.Item{
		Meta: content.Meta{ContentID: "c1", Title: "Prova de teste"},
		Questions: []content.Record{
			{
				Text:         "Primeira pergunta",
				Options:      []string{"Errada", "Certa", "Também errada"},
				CorrectIndex: intPtr(1),
			},
			{
				Text:         "Segunda pergunta",
				Options:      []string{"Certa", "Errada"},
				CorrectIndex: intPtr(0),
			},
		},
	}
}

func TestEnterSkipsChoiceFeedbackDelay(t *testing.T) {
	p := New(twoQuestionItem(), Deps{})
	if p.noQuestions {
		t.Fatal("expected a playable item")
	}

	// Submit the default selection on question one.
	p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if p.engine.Selected() == nil {
		t.Fatal("expected feedback state after submitting")
	}
	if p.engine.Index() != 0 {
		t.Fatalf("Index = %d, want 0 while feedback shows", p.engine.Index())
	}

	// Other keys during feedback do nothing.
	p.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if p.engine.Selected() == nil || p.engine.Index() != 0 {
		t.Fatal("unrelated key should not advance")
	}

	// Enter advances without waiting for the timer.
	p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if p.engine.Index() != 1 {
		t.Fatalf("Index = %d, want 1 after manual advance", p.engine.Index())
	}
	if p.engine.Selected() != nil {
		t.Error("selection should reset on the next question")
	}
	if p.engine.Answered() != 1 {
		t.Errorf("Answered = %d, want 1", p.engine.Answered())
	}
}

func TestDoubleEnterSubmitsOnlyOnce(t *testing.T) {
	p := New(twoQuestionItem(), Deps{})

	p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	// Three enters: submit, advance, submit again on question two.
	if p.engine.Answered() != 2 {
		t.Fatalf("Answered = %d, want 2", p.engine.Answered())
	}
	if p.engine.Index() != 1 {
		t.Errorf("Index = %d, want 1", p.engine.Index())
	}
}
