// Package cli wires the cobra command surface and the interactive Gantt
// view. Commands load a workspace snapshot, call the report service, and
// print results; no compile logic lives here.
package cli

import (
	"fmt"

	"github.com/Silvia-9/taskflow-canvas/internal/domain"
	"github.com/Silvia-9/taskflow-canvas/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds the dependencies CLI commands run against.
type App struct {
	Reports *service.ReportService

	// LoadSnapshot reads a workspace file into collections.
	LoadSnapshot func(path string) (domain.Snapshot, error)

	// IsInteractive reports whether stdout is a terminal; the chart
	// command falls back to static output when it is not.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "taskflow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "taskflow",
		Short:         "Project artifact report compiler",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newReportCmd(app),
		newSheetCmd(app),
		newSummaryCmd(app),
		newChartCmd(app),
		newValidateCmd(app),
	)

	return root
}

// parseKind resolves a CLI argument to a report kind.
func parseKind(arg string) (domain.ReportKind, error) {
	for _, kind := range domain.AllReportKinds {
		if arg == string(kind) {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown collection %q (expected one of: meetings, schedules, kanban, budgets, risks)", arg)
}

// workspaceFlag registers the shared --file flag.
func workspaceFlag(fs *pflag.FlagSet, file *string) {
	fs.StringVarP(file, "file", "f", "workspace.yaml", "workspace file to load")
}
