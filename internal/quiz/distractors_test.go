package quiz

import (
	"strings"
	"testing"
)

func TestSynthesizeDistractors_KeywordMatch(t *testing.T) {
	got := SynthesizeDistractors("O que era o escambo praticado na colônia?", "Troca de mercadorias")
	if len(got) != distractorCount {
		t.Fatalf("len = %d, want %d", len(got), distractorCount)
	}
	// Keyword entries take priority over generic placeholders.
	if got[0] != "Compra com moedas de ouro" {
		t.Errorf("got[0] = %q, want the escambo entry first", got[0])
	}
}

func TestSynthesizeDistractors_FallbackToGeneric(t *testing.T) {
	got := SynthesizeDistractors("Quanto é dois mais dois?", "Quatro")
	if len(got) != distractorCount {
		t.Fatalf("len = %d, want %d", len(got), distractorCount)
	}
	for _, d := range got {
		if !contains(genericDistractors, d) {
			t.Errorf("%q is not a generic placeholder", d)
		}
	}
}

func TestSynthesizeDistractors_FiltersOverlap(t *testing.T) {
	// "Ouro" overlaps "ouro branco" in one direction; it must not appear.
	got := SynthesizeDistractors("O açúcar era chamado de quê?", "ouro branco")
	for _, d := range got {
		if strings.EqualFold(d, "Ouro") {
			t.Errorf("distractor %q overlaps the answer and should have been filtered", d)
		}
	}
	if len(got) != distractorCount {
		t.Errorf("len = %d, want %d (padded after filtering)", len(got), distractorCount)
	}
}

func TestSynthesizeDistractors_ShortAnswer(t *testing.T) {
	// A one-letter answer is a substring of every candidate; the generic
	// padding must not be filtered away with them.
	got := SynthesizeDistractors("Qual vogal aparece duas vezes em 'ouro'?", "o")
	if len(got) != distractorCount {
		t.Fatalf("len = %d, want %d", len(got), distractorCount)
	}
	for _, d := range got {
		if strings.EqualFold(d, "o") {
			t.Errorf("distractor %q duplicates the answer", d)
		}
	}
}

func TestSynthesizeDistractors_AnswerEqualsGeneric(t *testing.T) {
	got := SynthesizeDistractors("Qual é a resposta?", "Nenhuma das alternativas")
	if len(got) != distractorCount {
		t.Fatalf("len = %d, want %d", len(got), distractorCount)
	}
	for _, d := range got {
		if strings.EqualFold(d, "Nenhuma das alternativas") {
			t.Errorf("distractor %q duplicates the answer", d)
		}
	}
}

func TestSynthesizeDistractors_NoDuplicates(t *testing.T) {
	got := SynthesizeDistractors("A colonização e o açúcar no escambo das capitanias", "x")
	seen := map[string]bool{}
	for _, d := range got {
		key := strings.ToLower(d)
		if seen[key] {
			t.Errorf("duplicate distractor %q", d)
		}
		seen[key] = true
	}
}
