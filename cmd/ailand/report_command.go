package main

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"
)

func newReportCommand(configFlag *string) *cobra.Command {
	var output string
	var limit int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render workout history as an HTML chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(*configFlag)
			if err != nil {
				return err
			}
			defer store.Close()

			sessions, err := store.Sessions().List(limit)
			if err != nil {
				return fmt.Errorf("list sessions: %w", err)
			}
			if len(sessions) == 0 {
				return fmt.Errorf("no workout sessions to report on")
			}

			// List returns newest first; plot oldest to newest.
			x := make([]string, 0, len(sessions))
			y := make([]opts.BarData, 0, len(sessions))
			for i := len(sessions) - 1; i >= 0; i-- {
				s := sessions[i]
				x = append(x, fmt.Sprintf("%s\n%s", s.StartedAt.Local().Format("Jan 2 15:04"), s.Exercise))
				y = append(y, opts.BarData{Value: s.Reps})
			}

			bar := charts.NewBar()
			bar.SetGlobalOptions(
				charts.WithInitializationOpts(opts.Initialization{PageTitle: "Workout Report", Width: "1000px", Height: "600px"}),
				charts.WithTitleOpts(opts.Title{Title: "Reps per Session", Subtitle: fmt.Sprintf("%d sessions", len(sessions))}),
				charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
				charts.WithYAxisOpts(opts.YAxis{Name: "Reps"}),
			)
			bar.SetXAxis(x).
				AddSeries("reps", y,
					charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
				)

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create report file: %w", err)
			}
			defer f.Close()

			if err := bar.Render(f); err != nil {
				return fmt.Errorf("render report: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote workout report to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "ailand-report.html", "Report output path")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of sessions to include (0 for all)")
	return cmd
}
