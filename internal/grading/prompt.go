package grading

import (
	"fmt"
	"strings"
)

const gradingSystemPrompt = `You are a kind, encouraging teacher grading a young student's written answer. You never shame the student. You judge the answer ONLY against the author's grading guideline, not against everything you know about the subject. You always reply in the same language the student wrote in.`

func buildGradingUserMessage(sub Submission) string {
	var b strings.Builder

	if sub.Subject != "" {
		b.WriteString(fmt.Sprintf("Subject: %s\n", sub.Subject))
	}
	if sub.Topic != "" {
		b.WriteString(fmt.Sprintf("Topic: %s\n", sub.Topic))
	}
	if sub.Grade != "" {
		b.WriteString(fmt.Sprintf("School grade: %s\n", sub.Grade))
	}
	if sub.Age > 0 {
		b.WriteString(fmt.Sprintf("Student age: %d\n", sub.Age))
	}

	b.WriteString(fmt.Sprintf("\nGrading guideline (what a good answer must contain):\n%s\n", sub.Guideline))
	b.WriteString(fmt.Sprintf("\nStudent's answer:\n%s\n", sub.StudentText))

	b.WriteString(`
Instructions:
1. Decide the adherence bucket: "correct" when the answer covers the guideline's core idea, "partial" when the core idea is there but incomplete or imprecise, "incorrect" otherwise.
2. List what the student got right (positives). Even an incorrect answer usually has something — effort, a related fact, clear writing.
3. List concrete improvements, phrased for the student's age. Short sentences.
4. Write a brief model answer a student of this age could have written.
5. Everything the student will read must be in the student's own language.`)

	return b.String()
}
