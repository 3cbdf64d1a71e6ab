package quiz

import (
	"fmt"
	"strings"
)

// keywordDistractors lists topic keywords found in question text with
// wrong answers that sound plausible for that topic. The table covers the
// colonial-Brazil history content the player originally shipped with;
// anything else falls back to the generic placeholders. Order is fixed so
// synthesis is reproducible under a seeded shuffle.
//
// TODO: replace with per-content distractor sets once content files carry
// them.
var keywordDistractors = []struct {
	keyword string
	wrong   []string
}{
	{"escambo", []string{
		"Compra com moedas de ouro",
		"Doação dos portugueses",
		"Pagamento com sal",
	}},
	{"capitania", []string{
		"Estados independentes",
		"Aldeias indígenas",
		"Fortalezas militares",
	}},
	{"açúcar", []string{
		"Café",
		"Ouro",
		"Algodão",
	}},
	{"coloniza", []string{
		"Espanha",
		"França",
		"Holanda",
	}},
}

// genericDistractors pad the option set when the keyword table yields too
// few usable entries.
var genericDistractors = []string{
	"Nenhuma das alternativas",
	"Não se sabe ao certo",
	"Todas as anteriores",
}

// distractorCount is how many wrong options accompany a synthesized
// multiple-choice question.
const distractorCount = 3

// SynthesizeDistractors builds wrong options for a fill-in-the-blank
// record with a single accepted answer. Topic keywords are matched as
// substrings of the question text; candidates that overlap the correct
// answer as a substring in either direction are discarded, and generic
// placeholders top the set back up to three afterwards.
func SynthesizeDistractors(questionText, answer string) []string {
	lowerText := strings.ToLower(questionText)

	var candidates []string
	for _, entry := range keywordDistractors {
		if strings.Contains(lowerText, entry.keyword) {
			candidates = append(candidates, entry.wrong...)
		}
	}

	trimmedAnswer := strings.TrimSpace(answer)
	lowerAnswer := strings.ToLower(trimmedAnswer)
	picked := make([]string, 0, distractorCount)
	for _, c := range candidates {
		if len(picked) == distractorCount {
			break
		}
		if overlaps(strings.ToLower(c), lowerAnswer) {
			continue
		}
		if contains(picked, c) {
			continue
		}
		picked = append(picked, c)
	}

	// Generic placeholders skip the overlap filter: a one-letter answer
	// is a substring of everything, and the option set must still reach
	// full size. Only an exact answer duplicate is excluded.
	for _, c := range genericDistractors {
		if len(picked) == distractorCount {
			break
		}
		if strings.EqualFold(c, trimmedAnswer) || contains(picked, c) {
			continue
		}
		picked = append(picked, c)
	}
	for i := 1; len(picked) < distractorCount; i++ {
		picked = append(picked, fmt.Sprintf("Outra resposta (%d)", i))
	}

	return picked
}

// overlaps reports whether one string contains the other.
func overlaps(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
