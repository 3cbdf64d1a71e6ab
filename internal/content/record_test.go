package content

import "testing"

func intPtr(i int) *int { return &i }

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want Kind
	}{
		{
			name: "multiple choice passthrough",
			rec: Record{
				Text:         "Qual era a moeda da colônia?",
				Options:      []string{"Escambo", "Real", "Cruzeiro"},
				CorrectIndex: intPtr(0),
			},
			want: KindChoice,
		},
		{
			name: "choice wins over fill tag when options are valid",
			rec: Record{
				Text:            "Complete a frase",
				Tag:             "fill",
				Options:         []string{"A", "B"},
				CorrectIndex:    intPtr(1),
				AcceptedAnswers: []string{"A"},
			},
			want: KindChoice,
		},
		{
			name: "single option is not a choice",
			rec: Record{
				Text:         "Pergunta",
				Options:      []string{"Única"},
				CorrectIndex: intPtr(0),
			},
			want: KindInvalid,
		},
		{
			name: "single option falls through to fill rule",
			rec: Record{
				Text:            "Complete",
				Tag:             "fill",
				Options:         []string{"Única"},
				CorrectIndex:    intPtr(0),
				AcceptedAnswers: []string{"Única"},
			},
			want: KindFill,
		},
		{
			name: "correct index out of range is not choice",
			rec: Record{
				Text:         "Pergunta",
				Options:      []string{"A", "B"},
				CorrectIndex: intPtr(2),
			},
			want: KindInvalid,
		},
		{
			name: "fill with accepted answers",
			rec:  Record{Text: "O Brasil foi colonizado por ___", Tag: "fill", AcceptedAnswers: []string{"Portugal"}},
			want: KindFill,
		},
		{
			name: "fill without accepted answers is invalid",
			rec:  Record{Text: "Complete", Tag: "fill"},
			want: KindInvalid,
		},
		{
			name: "true false V",
			rec:  Record{Text: "O pau-brasil era valioso.", Tag: "vf", Answer: "V"},
			want: KindTrueFalse,
		},
		{
			name: "true false lowercase f",
			rec:  Record{Text: "Afirmação", Tag: "vf", Answer: "f"},
			want: KindTrueFalse,
		},
		{
			name: "vf with bad answer is invalid",
			rec:  Record{Text: "Afirmação", Tag: "vf", Answer: "X"},
			want: KindInvalid,
		},
		{
			name: "discursive by tag",
			rec:  Record{Text: "Explique o escambo.", Tag: "discursiva"},
			want: KindDiscursive,
		},
		{
			name: "discursive by guideline presence",
			rec:  Record{Text: "Explique o escambo.", GradingGuideline: "Deve citar a troca de mercadorias."},
			want: KindDiscursive,
		},
		{
			name: "missing text is invalid even with options",
			rec:  Record{Options: []string{"A", "B"}, CorrectIndex: intPtr(0)},
			want: KindInvalid,
		},
		{
			name: "empty record",
			rec:  Record{},
			want: KindInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.Detect(); got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsTrue(t *testing.T) {
	if !(Record{Answer: "v"}).IsTrue() {
		t.Error("expected lowercase v to count as true")
	}
	if (Record{Answer: "F"}).IsTrue() {
		t.Error("expected F to be false")
	}
}
