package quiz

import (
	"math/rand/v2"
	"strings"

	"github.com/rlemos/provinha/internal/content"
)

// Format distinguishes the two evaluable question shapes after
// normalization.
type Format int

const (
	FormatChoice Format = iota
	FormatDiscursive
)

// Question is the uniform shape every renderable record normalizes to.
// Choice questions always satisfy 0 <= CorrectIndex < len(Options).
type Question struct {
	Format       Format
	Text         string
	Options      []string
	CorrectIndex int
	Explanation  string
	Guideline    string
}

// TrueOption and FalseOption are the fixed option texts for legacy
// true/false records. The content corpus is Portuguese.
const (
	TrueOption  = "Verdadeiro"
	FalseOption = "Falso"
)

// Normalize converts a stored record into an evaluable question.
// Returns nil for records that cannot be rendered; the caller must skip
// those. rng drives distractor shuffling for legacy fill records —
// callers that need reproducible output pass a seeded source.
func Normalize(rec content.Record, rng *rand.Rand) *Question {
	switch rec.Detect() {
	case content.KindChoice:
		return &Question{
			Format:       FormatChoice,
			Text:         rec.Text,
			Options:      rec.Options,
			CorrectIndex: *rec.CorrectIndex,
			Explanation:  rec.Explanation,
		}

	case content.KindFill:
		return normalizeFill(rec, rng)

	case content.KindTrueFalse:
		idx := 1
		if rec.IsTrue() {
			idx = 0
		}
		return &Question{
			Format:       FormatChoice,
			Text:         rec.Text,
			Options:      []string{TrueOption, FalseOption},
			CorrectIndex: idx,
			Explanation:  rec.Explanation,
		}

	case content.KindDiscursive:
		return &Question{
			Format:    FormatDiscursive,
			Text:      rec.Text,
			Guideline: rec.GradingGuideline,
		}
	}

	return nil
}

// normalizeFill converts a legacy fill-in-the-blank record into a
// multiple-choice question. With several accepted answers the answers
// themselves become the option set; with a single accepted answer three
// distractors are synthesized from the question text.
func normalizeFill(rec content.Record, rng *rand.Rand) *Question {
	answer := strings.TrimSpace(rec.AcceptedAnswers[0])
	if answer == "" {
		return nil
	}

	var options []string
	if len(rec.AcceptedAnswers) > 1 {
		options = append(options, rec.AcceptedAnswers...)
	} else {
		options = append(SynthesizeDistractors(rec.Text, answer), answer)
	}

	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correct := -1
	for i, opt := range options {
		if matchesAccepted(opt, rec.AcceptedAnswers) {
			correct = i
			break
		}
	}
	if correct < 0 {
		return nil
	}

	return &Question{
		Format:       FormatChoice,
		Text:         rec.Text,
		Options:      options,
		CorrectIndex: correct,
		Explanation:  rec.Explanation,
	}
}

func matchesAccepted(option string, accepted []string) bool {
	for _, a := range accepted {
		if strings.EqualFold(strings.TrimSpace(option), strings.TrimSpace(a)) {
			return true
		}
	}
	return false
}
