package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ritwika/edurag/internal/competency"
)

var sequenceCmd = &cobra.Command{
	Use:   "sequence <goal>...",
	Short: "Show the prerequisite-ordered study sequence for goal competencies",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		withObjectives, _ := cmd.Flags().GetBool("objectives")

		seq, err := competency.Sequence(args)
		if err != nil {
			return err
		}

		fmt.Println(headingStyle.Render("Study sequence"))
		for i, id := range seq {
			c, err := competency.Get(id)
			if err != nil {
				return err
			}
			fmt.Printf("%2d. %-14s %s\n", i+1, id, dimStyle.Render(c.Name))
			if withObjectives {
				for _, obj := range c.Objectives {
					fmt.Printf("      - %s\n", obj)
				}
			}
		}
		return nil
	},
}

func init() {
	sequenceCmd.Flags().Bool("objectives", false, "Show learning objectives for each competency")
}
