package commands

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/michael-petrov-cpoms/velociraptor/internal/store"
	"github.com/michael-petrov-cpoms/velociraptor/internal/velocity"
)

var (
	sprintLabel     string
	sprintCompleted float64
	sprintLeave     float64
	sprintDate      string
)

var sprintCmd = &cobra.Command{
	Use:   "sprint",
	Short: "Manage a team's sprint log",
}

var sprintLogCmd = &cobra.Command{
	Use:   "log <team>",
	Short: "Record a completed sprint",
	Long: `Record a completed sprint: the points delivered and the total person-days
of planned leave across the team (half days allowed). The team's current
sprint length and developer count are snapshotted into the record.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var completedAt time.Time
		if sprintDate != "" {
			var err error
			completedAt, err = time.Parse("2006-01-02", sprintDate)
			if err != nil {
				return fmt.Errorf("invalid --date %q, want YYYY-MM-DD: %w", sprintDate, err)
			}
		}

		sprint, err := teamStore.LogSprint(args[0], sprintLabel, sprintCompleted, sprintLeave, completedAt)
		if err != nil {
			return err
		}

		fmt.Printf("Logged sprint #%d for %s: %v points, %v leave days\n",
			sprint.ID, sprint.TeamID, sprint.Completed, sprint.LeaveUnits)
		if _, ok := normalizeSprint(sprint); !ok {
			fmt.Println("Note: leave exceeds what this sprint can absorb; it will not count toward the velocity average.")
		}
		return nil
	},
}

var sprintListCmd = &cobra.Command{
	Use:   "list <team>",
	Short: "List a team's sprints, most recent first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sprints, err := teamStore.Sprints(args[0])
		if err != nil {
			return err
		}
		if len(sprints) == 0 {
			fmt.Println("No sprints logged yet. Use 'velociraptor sprint log' to record one.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header([]string{"ID", "Label", "Completed", "Leave", "Date", "Points/Day"})

		var data [][]string
		for _, sp := range sprints {
			perDay := "excluded"
			if v, ok := normalizeSprint(sp); ok {
				perDay = strconv.FormatFloat(v, 'f', 2, 64)
			}
			data = append(data, []string{
				strconv.Itoa(sp.ID),
				sp.Label,
				strconv.FormatFloat(sp.Completed, 'f', -1, 64),
				strconv.FormatFloat(sp.LeaveUnits, 'f', -1, 64),
				sp.CompletedAt.Format("2006-01-02"),
				perDay,
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		return table.Render()
	},
}

var sprintEditCmd = &cobra.Command{
	Use:   "edit <team> <sprint-id>",
	Short: "Correct a logged sprint's points or leave",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sprintID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid sprint id %q: %w", args[1], err)
		}

		upd := store.SprintUpdate{}
		if cmd.Flags().Changed("label") {
			upd.Label = &sprintLabel
		}
		if cmd.Flags().Changed("completed") {
			upd.Completed = &sprintCompleted
		}
		if cmd.Flags().Changed("leave") {
			upd.LeaveUnits = &sprintLeave
		}
		if upd.Label == nil && upd.Completed == nil && upd.LeaveUnits == nil {
			return fmt.Errorf("nothing to change; pass --completed, --leave or --label")
		}

		sprint, err := teamStore.UpdateSprint(args[0], sprintID, upd)
		if err != nil {
			return err
		}
		fmt.Printf("Updated sprint #%d: %v points, %v leave days\n", sprint.ID, sprint.Completed, sprint.LeaveUnits)
		return nil
	},
}

var sprintRemoveCmd = &cobra.Command{
	Use:   "remove <team> <sprint-id>",
	Short: "Delete a logged sprint",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sprintID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid sprint id %q: %w", args[1], err)
		}
		if err := teamStore.DeleteSprint(args[0], sprintID); err != nil {
			return err
		}
		fmt.Printf("Removed sprint #%d from %s\n", sprintID, args[0])
		return nil
	},
}

func normalizeSprint(sp store.Sprint) (float64, bool) {
	return velocity.Normalize(velocity.Record{
		Completed:  sp.Completed,
		LeaveUnits: sp.LeaveUnits,
		PeriodDays: sp.PeriodDays,
		Developers: sp.Developers,
	})
}

func init() {
	sprintLogCmd.Flags().StringVar(&sprintLabel, "label", "", "sprint name, e.g. 'Sprint 12'")
	sprintLogCmd.Flags().Float64Var(&sprintCompleted, "completed", 0, "points delivered (required)")
	sprintLogCmd.Flags().Float64Var(&sprintLeave, "leave", 0, "person-days of leave across the team")
	sprintLogCmd.Flags().StringVar(&sprintDate, "date", "", "completion date (YYYY-MM-DD, default today)")
	_ = sprintLogCmd.MarkFlagRequired("completed")

	sprintEditCmd.Flags().StringVar(&sprintLabel, "label", "", "sprint name")
	sprintEditCmd.Flags().Float64Var(&sprintCompleted, "completed", 0, "points delivered")
	sprintEditCmd.Flags().Float64Var(&sprintLeave, "leave", 0, "person-days of leave across the team")

	sprintCmd.AddCommand(sprintLogCmd, sprintListCmd, sprintEditCmd, sprintRemoveCmd)
	rootCmd.AddCommand(sprintCmd)
}
