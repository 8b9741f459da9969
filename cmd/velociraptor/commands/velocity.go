package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/michael-petrov-cpoms/velociraptor/internal/visuals"
)

var velocityChart bool

var velocityCmd = &cobra.Command{
	Use:   "velocity <team>",
	Short: "Show a team's rolling average throughput",
	Long: `Compute the team's throughput in points per day, averaged over the five
most recent usable sprints. While fewer than five exist, a declared baseline
joins the average as one extra data point.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := planner.Velocity(args[0])
		if err != nil {
			return err
		}

		if !report.HasData {
			color.Yellow("No velocity data for %q yet.", report.TeamName)
			fmt.Println("Log sprints with 'velociraptor sprint log' or declare a baseline with 'velociraptor team set-baseline'.")
			return nil
		}

		fmt.Printf("%s: %s points/day", report.TeamName, color.GreenString("%.2f", report.Throughput))
		fmt.Printf(" (%d data points", report.DataPointCount)
		if report.IncludesBaseline {
			fmt.Print(", includes baseline")
		}
		fmt.Println(")")

		if len(report.Sprints) == 0 {
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header([]string{"Sprint", "Completed", "Leave", "Points/Day", "In Average"})

		var data [][]string
		for _, sp := range report.Sprints {
			label := sp.Label
			if label == "" {
				label = fmt.Sprintf("#%d", sp.SprintID)
			}

			perDay := "-"
			inAvg := "excluded"
			if sp.Usable {
				perDay = strconv.FormatFloat(sp.PerDay, 'f', 2, 64)
				if sp.InWindow {
					inAvg = "yes"
				} else {
					inAvg = "outside window"
				}
			}
			data = append(data, []string{
				label,
				strconv.FormatFloat(sp.Completed, 'f', -1, 64),
				strconv.FormatFloat(sp.LeaveUnits, 'f', -1, 64),
				perDay,
				inAvg,
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}

		if velocityChart {
			if chart := visuals.GenerateVelocityChart(report); chart != "" {
				fmt.Println()
				fmt.Println(chart)
			}
		}
		return nil
	},
}

func init() {
	velocityCmd.Flags().BoolVar(&velocityChart, "chart", false, "print a Mermaid chart of per-sprint velocity")
	rootCmd.AddCommand(velocityCmd)
}
