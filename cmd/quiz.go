package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ritwika/edurag/internal/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Work with quiz packs",
}

var quizGradeCmd = &cobra.Command{
	Use:   "grade <pack.json>",
	Short: "Grade answers against a quiz pack",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		answersFlag, _ := cmd.Flags().GetString("answers")

		pack, err := quiz.LoadPack(args[0])
		if err != nil {
			return err
		}

		answers, err := parseAnswers(answersFlag)
		if err != nil {
			return err
		}

		result := quiz.Grade(pack, answers)

		fmt.Println(headingStyle.Render(pack.Title))
		for i, d := range result.Details {
			mark := weakStyle.Render("✗")
			if d.IsCorrect {
				mark = strongStyle.Render("✓")
			}
			q := pack.Questions[i]
			fmt.Printf("%s %s\n", mark, q.Question)
			if !d.IsCorrect {
				fmt.Printf("   %s %s\n", dimStyle.Render("answer:"), q.Options[q.AnswerIndex])
			}
		}
		fmt.Printf("\nScore: %s (%d/%d)\n",
			masteryStyle(result.Score).Render(fmt.Sprintf("%.2f", result.Score)),
			result.Correct, result.Total)
		return nil
	},
}

var quizListCmd = &cobra.Command{
	Use:   "list <dir>",
	Short: "List quiz packs in a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		packs := quiz.LoadPacks(args[0])
		if len(packs) == 0 {
			fmt.Println("No quiz packs found.")
			return nil
		}
		fmt.Printf("%-30s  %-14s  %-12s  %s\n", "Title", "Competency", "Level", "Questions")
		fmt.Println(strings.Repeat("─", 70))
		for _, p := range packs {
			fmt.Printf("%-30s  %-14s  %-12s  %d\n", p.Title, p.Competency, p.Level, len(p.Questions))
		}
		return nil
	},
}

// parseAnswers parses a comma-separated list of selected option indexes.
// Empty entries and "-" mean unanswered.
func parseAnswers(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	answers := make([]int, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || p == "-" {
			answers[i] = quiz.Unanswered
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid answer %q at position %d", p, i+1)
		}
		answers[i] = n
	}
	return answers, nil
}

func init() {
	quizGradeCmd.Flags().StringP("answers", "a", "", "Comma-separated selected option indexes, e.g. 0,2,1 (use - for unanswered)")

	quizCmd.AddCommand(quizGradeCmd)
	quizCmd.AddCommand(quizListCmd)
}
