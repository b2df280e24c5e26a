package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VaibhavSomanna/AI-land/internal/exercise"
)

func newExercisesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exercises",
		Short: "List the exercises the trainer can track",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(exercise.Kinds()))
			for _, kind := range exercise.Kinds() {
				tr, err := exercise.New(kind, exercise.DefaultThresholds())
				if err != nil {
					return err
				}
				style := "both arms together"
				if tr.ActiveSide() != exercise.SideBoth {
					style = "alternating arms"
				}
				rows = append(rows, []string{string(kind), tr.Name(), style})
			}

			out := renderTable(
				[]string{"KIND", "NAME", "STYLE"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
