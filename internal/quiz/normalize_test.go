package quiz

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/rlemos/provinha/internal/content"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(7, 7))
}

func intPtr(i int) *int { return &i }

func TestNormalize_ChoicePassthrough(t *testing.T) {
	rec := content.Record{
		Text:         "Qual produto iniciou a colonização?",
		Options:      []string{"Pau-brasil", "Café", "Ouro", "Prata"},
		CorrectIndex: intPtr(0),
		Explanation:  "O pau-brasil foi o primeiro produto explorado.",
	}

	q := Normalize(rec, testRNG())
	if q == nil {
		t.Fatal("expected question, got nil")
	}
	if q.Format != FormatChoice {
		t.Errorf("Format = %v, want FormatChoice", q.Format)
	}
	if q.CorrectIndex != 0 {
		t.Errorf("CorrectIndex = %d, want 0", q.CorrectIndex)
	}
	if len(q.Options) != 4 {
		t.Errorf("len(Options) = %d, want 4", len(q.Options))
	}
	if q.Explanation == "" {
		t.Error("expected explanation to carry over")
	}
}

func TestNormalize_TrueFalse(t *testing.T) {
	tests := []struct {
		answer    string
		wantIndex int
	}{
		{"V", 0},
		{"v", 0},
		{"F", 1},
		{"f", 1},
	}

	for _, tt := range tests {
		rec := content.Record{Text: "O escambo usava moedas.", Tag: "vf", Answer: tt.answer}
		q := Normalize(rec, testRNG())
		if q == nil {
			t.Fatalf("answer %q: expected question", tt.answer)
		}
		if len(q.Options) != 2 || q.Options[0] != TrueOption || q.Options[1] != FalseOption {
			t.Errorf("answer %q: Options = %v", tt.answer, q.Options)
		}
		if q.CorrectIndex != tt.wantIndex {
			t.Errorf("answer %q: CorrectIndex = %d, want %d", tt.answer, q.CorrectIndex, tt.wantIndex)
		}
	}
}

func TestNormalize_FillSingleAnswer(t *testing.T) {
	rec := content.Record{
		Text:            "O Brasil foi colonizado por ___",
		Tag:             "fill",
		AcceptedAnswers: []string{"Portugal"},
	}

	q := Normalize(rec, testRNG())
	if q == nil {
		t.Fatal("expected question, got nil")
	}
	if q.Format != FormatChoice {
		t.Fatalf("Format = %v, want FormatChoice", q.Format)
	}
	if len(q.Options) < 4 {
		t.Fatalf("len(Options) = %d, want >= 4", len(q.Options))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		t.Fatalf("CorrectIndex %d out of range [0,%d)", q.CorrectIndex, len(q.Options))
	}
	if !strings.EqualFold(q.Options[q.CorrectIndex], "Portugal") {
		t.Errorf("Options[CorrectIndex] = %q, want Portugal", q.Options[q.CorrectIndex])
	}

	// The accepted answer must appear exactly once (case-insensitive).
	count := 0
	for _, opt := range q.Options {
		if strings.EqualFold(opt, "Portugal") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("accepted answer appears %d times, want 1", count)
	}
}

func TestNormalize_FillShortAnswer(t *testing.T) {
	rec := content.Record{
		Text:            "Qual vogal aparece duas vezes na palavra 'ouro'?",
		Tag:             "fill",
		AcceptedAnswers: []string{"o"},
	}

	q := Normalize(rec, testRNG())
	if q == nil {
		t.Fatal("expected question, got nil")
	}
	if len(q.Options) != 4 {
		t.Fatalf("len(Options) = %d, want 4", len(q.Options))
	}
	if !strings.EqualFold(q.Options[q.CorrectIndex], "o") {
		t.Errorf("Options[CorrectIndex] = %q, want the accepted answer", q.Options[q.CorrectIndex])
	}
}

func TestNormalize_FillSingleAnswer_Reproducible(t *testing.T) {
	rec := content.Record{
		Text:            "A economia colonial girava em torno do açúcar, chamado de ___",
		Tag:             "fill",
		AcceptedAnswers: []string{"ouro branco"},
	}

	a := Normalize(rec, rand.New(rand.NewPCG(42, 0)))
	b := Normalize(rec, rand.New(rand.NewPCG(42, 0)))
	if a == nil || b == nil {
		t.Fatal("expected questions")
	}
	if len(a.Options) != len(b.Options) {
		t.Fatalf("option counts differ: %d vs %d", len(a.Options), len(b.Options))
	}
	for i := range a.Options {
		if a.Options[i] != b.Options[i] {
			t.Errorf("option %d differs: %q vs %q", i, a.Options[i], b.Options[i])
		}
	}
	if a.CorrectIndex != b.CorrectIndex {
		t.Errorf("CorrectIndex differs: %d vs %d", a.CorrectIndex, b.CorrectIndex)
	}
}

func TestNormalize_FillMultipleAnswers(t *testing.T) {
	rec := content.Record{
		Text:            "Cite uma capitania hereditária",
		Tag:             "fill",
		AcceptedAnswers: []string{"Pernambuco", "São Vicente", "Bahia"},
	}

	q := Normalize(rec, testRNG())
	if q == nil {
		t.Fatal("expected question, got nil")
	}
	if len(q.Options) != 3 {
		t.Errorf("len(Options) = %d, want 3 (accepted answers used directly)", len(q.Options))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		t.Fatalf("CorrectIndex %d out of range", q.CorrectIndex)
	}
}

func TestNormalize_Discursive(t *testing.T) {
	rec := content.Record{
		Text:             "Explique como funcionava o escambo.",
		Tag:              "discursiva",
		GradingGuideline: "Deve citar a troca de mercadorias sem moeda.",
	}

	q := Normalize(rec, testRNG())
	if q == nil {
		t.Fatal("expected question, got nil")
	}
	if q.Format != FormatDiscursive {
		t.Errorf("Format = %v, want FormatDiscursive", q.Format)
	}
	if q.Guideline == "" {
		t.Error("expected guideline to carry over")
	}
}

func TestNormalize_Invalid(t *testing.T) {
	recs := []content.Record{
		{},
		{Text: "sem nada"},
		{Options: []string{"A", "B"}, CorrectIndex: intPtr(0)}, // no text
		{Text: "fill vazio", Tag: "fill"},
		{Text: "vf inválido", Tag: "vf", Answer: "talvez"},
		{Text: "resposta em branco", Tag: "fill", AcceptedAnswers: []string{"  "}},
	}

	for i, rec := range recs {
		if q := Normalize(rec, testRNG()); q != nil {
			t.Errorf("record %d: expected nil, got %+v", i, q)
		}
	}
}

// Every normalized choice question must keep its correct index in range,
// whatever seed drives the shuffle.
func TestNormalize_CorrectIndexAlwaysInRange(t *testing.T) {
	rec := content.Record{
		Text:            "O que era o escambo na colonização do Brasil?",
		Tag:             "fill",
		AcceptedAnswers: []string{"Troca de mercadorias"},
	}

	for seed := uint64(0); seed < 50; seed++ {
		q := Normalize(rec, rand.New(rand.NewPCG(seed, 0)))
		if q == nil {
			t.Fatalf("seed %d: expected question", seed)
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			t.Fatalf("seed %d: CorrectIndex %d out of range [0,%d)", seed, q.CorrectIndex, len(q.Options))
		}
		if !strings.EqualFold(q.Options[q.CorrectIndex], "Troca de mercadorias") {
			t.Fatalf("seed %d: correct option is %q", seed, q.Options[q.CorrectIndex])
		}
	}
}
