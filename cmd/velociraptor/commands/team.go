package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/michael-petrov-cpoms/velociraptor/internal/store"
)

var (
	teamDevelopers int
	teamPeriodDays int
	teamBaseline   float64

	clearBaseline bool
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage teams",
}

var teamAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a team for velocity tracking",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var baseline *float64
		if cmd.Flags().Changed("baseline") {
			baseline = &teamBaseline
		}

		team, err := teamStore.CreateTeam(args[0], teamDevelopers, teamPeriodDays, baseline)
		if err != nil {
			return err
		}
		fmt.Printf("Created team %q (id: %s)\n", team.Name, team.ID)
		return nil
	},
}

var teamListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered teams",
	RunE: func(cmd *cobra.Command, args []string) error {
		teams := teamStore.Teams()
		if len(teams) == 0 {
			fmt.Println("No teams registered yet. Use 'velociraptor team add' to create one.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header([]string{"ID", "Name", "Developers", "Sprint Days", "Baseline"})

		var data [][]string
		for _, t := range teams {
			baseline := "-"
			if t.Baseline != nil {
				baseline = strconv.FormatFloat(*t.Baseline, 'f', -1, 64)
			}
			data = append(data, []string{
				t.ID,
				t.Name,
				strconv.Itoa(t.Developers),
				strconv.Itoa(t.PeriodDays),
				baseline,
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		return table.Render()
	},
}

var teamSetBaselineCmd = &cobra.Command{
	Use:   "set-baseline <team> [points]",
	Short: "Declare or clear a team's expected points per sprint",
	Long: `Declare the output the team expects to deliver in a full sprint. The
baseline only participates in the average while fewer than five usable sprints
exist; after that, history speaks for itself.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		upd := store.TeamUpdate{}
		switch {
		case clearBaseline:
			upd.ClearBaseline = true
		case len(args) == 2:
			points, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid points value %q: %w", args[1], err)
			}
			upd.Baseline = &points
		default:
			return fmt.Errorf("either provide a points value or pass --clear")
		}

		team, err := teamStore.UpdateTeam(args[0], upd)
		if err != nil {
			return err
		}
		if team.Baseline == nil {
			fmt.Printf("Cleared baseline for %q\n", team.Name)
		} else {
			fmt.Printf("Set baseline for %q to %v points per sprint\n", team.Name, *team.Baseline)
		}
		return nil
	},
}

var teamConfigureCmd = &cobra.Command{
	Use:   "configure <team>",
	Short: "Change a team's developer count or sprint length",
	Long: `Reconfigure a team. Changes apply to future sprints only: each logged
sprint keeps the configuration snapshot taken when it was recorded, so past
velocity figures stay stable.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		upd := store.TeamUpdate{}
		if cmd.Flags().Changed("developers") {
			upd.Developers = &teamDevelopers
		}
		if cmd.Flags().Changed("period-days") {
			upd.PeriodDays = &teamPeriodDays
		}
		if upd.Developers == nil && upd.PeriodDays == nil {
			return fmt.Errorf("nothing to change; pass --developers or --period-days")
		}

		team, err := teamStore.UpdateTeam(args[0], upd)
		if err != nil {
			return err
		}
		fmt.Printf("Updated %q: %d developers, %d-day sprints\n", team.Name, team.Developers, team.PeriodDays)
		return nil
	},
}

var teamRemoveCmd = &cobra.Command{
	Use:   "remove <team>",
	Short: "Delete a team and its entire sprint history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := teamStore.DeleteTeam(args[0]); err != nil {
			return err
		}
		fmt.Printf("Removed team %s and its sprint log\n", args[0])
		return nil
	},
}

func init() {
	teamAddCmd.Flags().IntVar(&teamDevelopers, "developers", 0, "capacity-contributing members (required)")
	teamAddCmd.Flags().IntVar(&teamPeriodDays, "period-days", 14, "sprint length in days")
	teamAddCmd.Flags().Float64Var(&teamBaseline, "baseline", 0, "expected points per full sprint")
	_ = teamAddCmd.MarkFlagRequired("developers")

	teamSetBaselineCmd.Flags().BoolVar(&clearBaseline, "clear", false, "remove the declared baseline")

	teamConfigureCmd.Flags().IntVar(&teamDevelopers, "developers", 0, "capacity-contributing members")
	teamConfigureCmd.Flags().IntVar(&teamPeriodDays, "period-days", 0, "sprint length in days")

	teamCmd.AddCommand(teamAddCmd, teamListCmd, teamSetBaselineCmd, teamConfigureCmd, teamRemoveCmd)
	rootCmd.AddCommand(teamCmd)
}
