package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a computer science tutor writing quiz questions for students learning data structures and algorithms.

Rules:
- Generate a single multiple-choice question for the given competency and level.
- The question must test understanding, not memorization of trivia.
- Provide exactly 4 options where exactly one is correct. Distractors should reflect common misconceptions, not random values.
- Use plain text. No markdown, no LaTeX.
- Match the stated level: beginner questions check definitions and basic behavior, intermediate questions check application, advanced questions check analysis and edge cases.
- If reference content is provided, ground the question in it.`

// buildUserMessage constructs the user message from the generation input.
func buildUserMessage(input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Competency: %s\n", input.Competency.Name)
	fmt.Fprintf(&b, "Description: %s\n", input.Competency.Description)
	fmt.Fprintf(&b, "Level: %s\n", input.Level)
	if len(input.Competency.Keywords) > 0 {
		fmt.Fprintf(&b, "Keywords: %s\n", strings.Join(input.Competency.Keywords, ", "))
	}

	if len(input.Competency.Objectives) > 0 {
		b.WriteString("\nLearning objectives:\n")
		for i, obj := range input.Competency.Objectives {
			fmt.Fprintf(&b, "%d. %s\n", i+1, obj)
		}
	}

	if input.Context != "" {
		b.WriteString("\nReference content:\n")
		b.WriteString(input.Context)
	}

	return b.String()
}
