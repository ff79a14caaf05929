package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ritwika/edurag/internal/engine"
	"github.com/ritwika/edurag/internal/store"
)

var recordCmd = &cobra.Command{
	Use:   "record <user> <competency>",
	Short: "Record a graded attempt and update the skill rating",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, comp := args[0], args[1]
		score, _ := cmd.Flags().GetFloat64("score")
		difficulty, _ := cmd.Flags().GetFloat64("difficulty")
		timeSpent, _ := cmd.Flags().GetFloat64("time")

		if score < 0 || score > 1 {
			return fmt.Errorf("score must be in [0,1], got %g", score)
		}
		if difficulty < 0 || difficulty > 1 {
			return fmt.Errorf("difficulty must be in [0,1], got %g", difficulty)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		// Write path: no retrieval or quiz generation involved.
		eng := engine.New(st, nil, nil, nil)

		if err := eng.RecordAttempt(cmd.Context(), userID, comp, score, difficulty, timeSpent); err != nil {
			return err
		}
		fmt.Printf("Recorded attempt: %s on %s (score %.2f, difficulty %.2f)\n", userID, comp, score, difficulty)
		return nil
	},
}

var progressCmd = &cobra.Command{
	Use:   "progress <user> <topic>",
	Short: "Log topic progress",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, topic := args[0], args[1]
		status, _ := cmd.Flags().GetString("status")
		score, _ := cmd.Flags().GetFloat64("score")

		switch store.ProgressStatus(status) {
		case store.StatusStarted, store.StatusInProgress, store.StatusCompleted:
		default:
			return fmt.Errorf("status must be started, in-progress, or completed, got %q", status)
		}
		if score < 0 || score > 1 {
			return fmt.Errorf("score must be in [0,1], got %g", score)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		eng := engine.New(st, nil, nil, nil)

		if err := eng.RecordProgress(cmd.Context(), userID, topic, store.ProgressStatus(status), score); err != nil {
			return err
		}
		fmt.Printf("Logged progress: %s on %s (%s, score %.2f)\n", userID, topic, status, score)
		return nil
	},
}

func init() {
	recordCmd.Flags().Float64("score", 0, "Attempt score in [0,1]")
	recordCmd.Flags().Float64("difficulty", 0.5, "Task difficulty in [0,1]")
	recordCmd.Flags().Float64("time", 0, "Time spent in seconds")

	progressCmd.Flags().String("status", string(store.StatusInProgress), "Progress status (started, in-progress, completed)")
	progressCmd.Flags().Float64("score", 0.7, "Self-assessed mastery score in [0,1]")
}
