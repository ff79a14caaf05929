package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <user> [goal]...",
	Short: "Recommend remediation content for knowledge gaps",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := args[0]
		goals := args[1:]

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		eng := buildEngine(ctx, cmd, st)

		recs, err := eng.RecommendFor(ctx, userID, goals)
		if err != nil {
			return fmt.Errorf("recommend remediation: %w", err)
		}

		if len(recs) == 0 {
			fmt.Println(strongStyle.Render("No gaps to remediate."))
			return nil
		}

		comps := make([]string, 0, len(recs))
		for c := range recs {
			comps = append(comps, c)
		}
		sort.Strings(comps)

		fmt.Println(headingStyle.Render(fmt.Sprintf("Remediation for %s", userID)))
		for _, comp := range comps {
			bundle := recs[comp]
			fmt.Printf("\n%s\n", weakStyle.Render(comp))

			if len(bundle.Text) == 0 {
				fmt.Println(dimStyle.Render("  no text resources found"))
			}
			for _, h := range bundle.Text {
				fmt.Printf("  %s %s\n", dimStyle.Render("text:"), h.Title())
			}
			for _, h := range bundle.Media {
				fmt.Printf("  %s %s\n", dimStyle.Render("media:"), h.Title())
			}
		}
		return nil
	},
}
