package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "report <collection>",
		Short: "Export a collection as a paginated document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			snap, err := app.LoadSnapshot(file)
			if err != nil {
				return err
			}
			path, err := app.Reports.ExportDocument(kind, snap)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	workspaceFlag(cmd.Flags(), &file)
	return cmd
}

func newSheetCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "sheet <collection>",
		Short: "Export a collection as a flat spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			snap, err := app.LoadSnapshot(file)
			if err != nil {
				return err
			}
			path, err := app.Reports.ExportWorkbook(kind, snap)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	workspaceFlag(cmd.Flags(), &file)
	return cmd
}

func newSummaryCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "summary <collection>",
		Short: "Print the plain-text summary of a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			snap, err := app.LoadSnapshot(file)
			if err != nil {
				return err
			}
			s, err := app.Reports.Summary(kind, snap)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), s)
			return nil
		},
	}

	workspaceFlag(cmd.Flags(), &file)
	return cmd
}
