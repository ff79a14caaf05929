package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan <user>",
	Short: "Build a day-by-day learning path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := args[0]
		days, _ := cmd.Flags().GetInt("days")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		eng := buildEngine(ctx, cmd, st)

		path, err := eng.PlanFor(ctx, userID, days)
		if err != nil {
			return fmt.Errorf("plan path: %w", err)
		}

		if len(path) == 0 {
			fmt.Println("Nothing to study: no candidate competencies.")
			return nil
		}

		fmt.Println(headingStyle.Render(fmt.Sprintf("Learning path for %s (%d days)", userID, len(path))))
		for i, day := range path {
			fmt.Printf("\nDay %d\n", i+1)
			for _, id := range day.Competencies {
				fmt.Printf("  - %s\n", id)
			}
			for _, hit := range day.Resources {
				fmt.Printf("    %s %s\n", dimStyle.Render("resource:"), hit.Title())
			}
			for _, pack := range day.Quizzes {
				fmt.Printf("    %s %s (%d questions)\n", dimStyle.Render("quiz:"), pack.Title, len(pack.Questions))
			}
		}
		return nil
	},
}

func init() {
	planCmd.Flags().IntP("days", "d", 7, "Planning horizon in days")
}
