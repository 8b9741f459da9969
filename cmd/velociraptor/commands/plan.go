package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var planLeave float64

var planCmd = &cobra.Command{
	Use:   "plan <team>",
	Short: "Recommend a commitment for the next sprint",
	Long: `Apply the team's rolling average throughput to the upcoming sprint,
corrected for the expected person-days of leave. The recommendation is floored
so it stays a number the team can confidently hit.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := planner.PlanSprint(args[0], planLeave)
		if err != nil {
			return err
		}

		if !report.HasData {
			if !report.Velocity.HasData {
				color.Yellow("No velocity data for %q yet; nothing to recommend.", report.Velocity.TeamName)
				fmt.Println("Log sprints or declare a baseline first.")
			} else {
				color.Yellow("%.1f person-days of leave consumes the whole sprint; nothing to recommend.", planLeave)
			}
			return nil
		}

		plan := report.Plan
		fmt.Printf("Team %s, %.2f points/day over %d data points\n\n",
			report.Velocity.TeamName, report.Velocity.Throughput, report.Velocity.DataPointCount)
		fmt.Printf("  Recommended commitment: %s points\n", color.GreenString("%d", plan.Recommended))
		fmt.Printf("  Full-capacity sprint:   %d points\n", plan.FullCapacity)
		if plan.Delta != 0 {
			fmt.Printf("  Leave adjustment:       %s points\n", color.RedString("%d", plan.Delta))
		}
		fmt.Printf("  Available team-days:    %.1f of %d (%.1f%% capacity)\n",
			plan.AvailableDays, report.PeriodDays, plan.CapacityRatio)
		return nil
	},
}

func init() {
	planCmd.Flags().Float64Var(&planLeave, "leave", 0, "expected person-days of leave in the upcoming sprint")
	rootCmd.AddCommand(planCmd)
}
