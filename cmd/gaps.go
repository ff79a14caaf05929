package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ritwika/edurag/internal/engine"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps <user>",
	Short: "List knowledge gaps, weakest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := args[0]

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		eng := engine.New(st, nil, nil, nil)

		gaps, err := eng.GapsFor(ctx, userID)
		if err != nil {
			return fmt.Errorf("detect gaps: %w", err)
		}

		if len(gaps) == 0 {
			fmt.Println(strongStyle.Render("No gaps detected."))
			return nil
		}

		snap, err := eng.MasteryFor(ctx, userID)
		if err != nil {
			return fmt.Errorf("estimate mastery: %w", err)
		}

		fmt.Println(headingStyle.Render(fmt.Sprintf("Gaps for %s", userID)))
		for _, id := range gaps {
			fmt.Printf("%-14s  %s\n", id, weakStyle.Render(fmt.Sprintf("%.2f", snap.Get(id))))
		}
		return nil
	},
}
