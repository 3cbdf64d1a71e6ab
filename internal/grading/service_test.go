package grading

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rlemos/provinha/internal/llm"
)

func testSubmission() Submission {
	return Submission{
		StudentText: "O escambo era a troca de coisas sem usar dinheiro.",
		Guideline:   "Deve citar a troca de mercadorias sem moeda.",
		Grade:       "4º ano",
		Age:         9,
		Subject:     "História",
		Topic:       "Colonização",
	}
}

func TestGrade_Correct(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"adherence": "correct",
			"positives": ["Explicou a troca sem dinheiro"],
			"improvements": [],
			"model_answer": "O escambo era a troca direta de mercadorias."
		}`),
	})
	svc := NewService(mock, DefaultConfig())

	res, err := svc.Grade(context.Background(), testSubmission())
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Adherence != AdherenceCorrect {
		t.Errorf("Adherence = %q, want correct", res.Adherence)
	}
	if len(res.Positives) != 1 {
		t.Errorf("Positives = %v", res.Positives)
	}
	if res.ModelAnswer == "" {
		t.Error("expected a model answer")
	}
}

func TestGrade_SendsGuidelineAndContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"adherence":"partial","positives":[],"improvements":["Cite as mercadorias trocadas"]}`),
	})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Grade(context.Background(), testSubmission()); err != nil {
		t.Fatalf("Grade: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	msg := req.Messages[0].Content
	for _, want := range []string{"Deve citar", "História", "4º ano", "9"} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q", want)
		}
	}
	if req.Schema == nil {
		t.Error("expected a structured-output schema on the request")
	}
}

func TestGrade_EmptyAnswerRejectedLocally(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	sub := testSubmission()
	sub.StudentText = "   \n\t"
	if _, err := svc.Grade(context.Background(), sub); err == nil {
		t.Fatal("expected error for whitespace-only answer")
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider was called %d times for an empty answer", mock.CallCount())
	}
}

func TestGrade_ProviderErrorSurfaces(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Grade(context.Background(), testSubmission()); err == nil {
		t.Fatal("expected provider error to surface")
	}
}

func TestGrade_UnknownAdherenceRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"adherence":"excellent","positives":[],"improvements":[]}`),
	})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Grade(context.Background(), testSubmission()); err == nil {
		t.Fatal("expected error for unknown adherence bucket")
	}
}
