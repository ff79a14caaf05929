package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ritwika/edurag/internal/engine"
	"github.com/ritwika/edurag/internal/mastery"
)

var masteryCmd = &cobra.Command{
	Use:   "mastery <user>",
	Short: "Show estimated mastery per competency",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := args[0]
		useRatings, _ := cmd.Flags().GetBool("ratings")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		eng := engine.New(st, nil, nil, nil)

		var snap *mastery.Snapshot
		if useRatings {
			snap, err = eng.RatingMasteryFor(ctx, userID)
		} else {
			snap, err = eng.MasteryFor(ctx, userID)
		}
		if err != nil {
			return fmt.Errorf("estimate mastery: %w", err)
		}

		model := "history"
		if useRatings {
			model = "ratings"
		}
		fmt.Println(headingStyle.Render(fmt.Sprintf("Mastery for %s (%s model)", userID, model)))
		for _, id := range snap.IDs() {
			v := snap.Get(id)
			level := mastery.SelectDifficulty(v)
			fmt.Printf("%-14s  %s  %s  %s\n",
				id,
				masteryBar(v, 20),
				masteryStyle(v).Render(fmt.Sprintf("%.2f", v)),
				dimStyle.Render(string(level)))
		}
		return nil
	},
}

func init() {
	masteryCmd.Flags().Bool("ratings", false, "Use the Elo rating model instead of the history fold")
}
