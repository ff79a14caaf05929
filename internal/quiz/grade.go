package quiz

// Unanswered is the sentinel answer index for a question the learner skipped.
const Unanswered = -1

// Detail records the grading outcome for one question.
type Detail struct {
	Question  string `json:"question"`
	Selected  int    `json:"selected"`
	Correct   int    `json:"correct"`
	IsCorrect bool   `json:"is_correct"`
}

// Result is the outcome of grading one attempt at a pack.
type Result struct {
	Score   float64  `json:"score"`
	Correct int      `json:"correct"`
	Total   int      `json:"total"`
	Details []Detail `json:"details"`
}

// Grade scores an attempt against a pack. Score is correct/total, and 0.0
// for an empty pack. Any answer index that does not match the question's
// answer_index — including Unanswered and out-of-range values — counts as
// incorrect, never as an error. Missing trailing answers count as Unanswered.
func Grade(pack Pack, answers []int) Result {
	total := len(pack.Questions)
	result := Result{
		Total:   total,
		Details: make([]Detail, 0, total),
	}

	for i, q := range pack.Questions {
		selected := Unanswered
		if i < len(answers) {
			selected = answers[i]
		}
		correct := selected == q.AnswerIndex
		if correct {
			result.Correct++
		}
		result.Details = append(result.Details, Detail{
			Question:  q.Question,
			Selected:  selected,
			Correct:   q.AnswerIndex,
			IsCorrect: correct,
		})
	}

	if total > 0 {
		result.Score = float64(result.Correct) / float64(total)
	}
	return result
}
