package cli

import (
	"fmt"
	"strconv"

	"github.com/Silvia-9/taskflow-canvas/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newValidateCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a workspace file and show collection counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := app.LoadSnapshot(file)
			if err != nil {
				return err
			}

			rows := [][]string{
				{"Meetings", strconv.Itoa(len(snap.Meetings))},
				{"Schedules", strconv.Itoa(len(snap.Schedules))},
				{"Kanban cards", strconv.Itoa(len(snap.Cards))},
				{"Budgets", strconv.Itoa(len(snap.Budgets))},
				{"Risk registers", strconv.Itoa(len(snap.Risks))},
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderTable([]string{"COLLECTION", "RECORDS"}, rows))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(file+" is valid"))
			return nil
		},
	}

	workspaceFlag(cmd.Flags(), &file)
	return cmd
}
