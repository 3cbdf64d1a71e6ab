package content

import "strings"

// Kind identifies the evaluable shape of a stored question record.
// Content files accumulated several generations of question formats, so
// the kind is derived from field presence rather than trusted from the
// tag alone.
type Kind int

const (
	// KindInvalid marks records that cannot be rendered (missing text,
	// empty option lists). The player skips them silently.
	KindInvalid Kind = iota

	// KindChoice is a ready multiple-choice question.
	KindChoice

	// KindFill is a legacy fill-in-the-blank question carrying accepted
	// answers. It must be converted to multiple-choice before play.
	KindFill

	// KindTrueFalse is a legacy true/false question ("V" or "F").
	KindTrueFalse

	// KindDiscursive is a free-text question graded against a guideline
	// by the grading collaborator.
	KindDiscursive
)

// Record is a question as stored in a content file. Older content mixes
// shapes freely, so every field is optional here; Detect decides what
// the record actually is.
type Record struct {
	Text             string   `json:"text"`
	Tag              string   `json:"kind,omitempty"`
	Options          []string `json:"options,omitempty"`
	CorrectIndex     *int     `json:"correct_index,omitempty"`
	AcceptedAnswers  []string `json:"accepted_answers,omitempty"`
	Answer           string   `json:"answer,omitempty"`
	Explanation      string   `json:"explanation,omitempty"`
	GradingGuideline string   `json:"grading_guideline,omitempty"`
}

// Detect classifies a record. Rules are checked in order:
//
//  1. At least two options with an in-range correct index → KindChoice.
//  2. "fill" tag with at least one accepted answer → KindFill.
//  3. "vf" tag with answer V or F → KindTrueFalse.
//  4. "discursiva" tag, or a non-empty grading guideline → KindDiscursive.
//  5. Anything else → KindInvalid.
//
// A record without text is always invalid, whatever else it carries.
func (r Record) Detect() Kind {
	if strings.TrimSpace(r.Text) == "" {
		return KindInvalid
	}

	// A single option is not a choice. One-option records fall through
	// to the tag rules and usually end up invalid.
	if len(r.Options) >= 2 && r.CorrectIndex != nil &&
		*r.CorrectIndex >= 0 && *r.CorrectIndex < len(r.Options) {
		return KindChoice
	}

	if r.Tag == "fill" && len(r.AcceptedAnswers) > 0 {
		return KindFill
	}

	if r.Tag == "vf" {
		switch strings.ToUpper(strings.TrimSpace(r.Answer)) {
		case "V", "F":
			return KindTrueFalse
		}
		return KindInvalid
	}

	if r.Tag == "discursiva" || strings.TrimSpace(r.GradingGuideline) != "" {
		return KindDiscursive
	}

	return KindInvalid
}

// IsTrue reports whether a true/false record's answer is "V".
// Only meaningful when Detect returned KindTrueFalse.
func (r Record) IsTrue() bool {
	return strings.EqualFold(strings.TrimSpace(r.Answer), "V")
}
