package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/numberquest/internal/adventure"
)

// seedEnv overrides the random seed when --seed is not given.
const seedEnv = "NUMBERQUEST_SEED"

var rootCmd = &cobra.Command{
	Use:   "numberquest",
	Short: "A math adventure in your terminal",
	Long:  "Number Quest: follow Sara through the World of Numbers, solving multiplication and division challenges along the way.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, adventure.Intro)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed for reproducible problems (overrides "+seedEnv+" env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveSeed returns the seed using --seed flag (highest priority), then
// the NUMBERQUEST_SEED env var. The second result is false when neither
// is set and problems should come from the time-seeded default source.
func resolveSeed(cmd *cobra.Command) (uint64, bool, error) {
	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		seed, err := cmd.Flags().GetUint64("seed")
		return seed, err == nil, err
	}
	if v := os.Getenv(seedEnv); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, false, fmt.Errorf("parse %s: %w", seedEnv, err)
		}
		return seed, true, nil
	}
	return 0, false, nil
}

// randomSeed derives a seed from the clock for commands that must report
// the seed they used.
func randomSeed() uint64 {
	return uint64(time.Now().UnixNano())
}
