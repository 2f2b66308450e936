package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/numberquest/internal/adventure"
	"github.com/abhisek/numberquest/internal/app"
	"github.com/abhisek/numberquest/internal/problemgen"
)

// runApp builds dependencies and launches the TUI at start.
func runApp(cmd *cobra.Command, start adventure.Stage) error {
	seed, seeded, err := resolveSeed(cmd)
	if err != nil {
		return fmt.Errorf("resolve seed: %w", err)
	}

	opts := app.Options{StartStage: start}
	if seeded {
		opts.Generator = problemgen.NewSeeded(seed)
	}

	return app.Run(opts)
}
