package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Silvia-9/taskflow-canvas/internal/cli"
	"github.com/Silvia-9/taskflow-canvas/internal/domain"
	"github.com/Silvia-9/taskflow-canvas/internal/export"
	"github.com/Silvia-9/taskflow-canvas/internal/importer"
	"github.com/Silvia-9/taskflow-canvas/internal/service"
	"github.com/Silvia-9/taskflow-canvas/internal/store"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine export directory: env var or current directory.
	outDir := os.Getenv("TASKFLOW_OUT")
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("preparing output directory: %w", err)
	}

	reports := service.NewReportService(
		export.NewSVGWriter(),
		export.NewExcelWriter(),
		outDir,
		time.Now,
	)

	app := &cli.App{
		Reports: reports,
		LoadSnapshot: func(path string) (domain.Snapshot, error) {
			loaded, err := importer.Load(path)
			if err != nil {
				return domain.Snapshot{}, err
			}
			// Run imports through the CRUD layer so every record gets an
			// identity before it is compiled.
			return store.FromSnapshot(loaded).Snapshot(), nil
		},
	}

	// Detect interactive terminal for the live chart view.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
