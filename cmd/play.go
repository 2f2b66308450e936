package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/numberquest/internal/adventure"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the adventure",
	Long: `Start the adventure from the beginning, or jump straight to a stage
with --stage (intro, portal, meet-genie, cipher, path, relationship, vault, outro).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		stageVal, _ := cmd.Flags().GetString("stage")
		start, err := adventure.ParseStage(stageVal)
		if err != nil {
			return err
		}
		return runApp(cmd, start)
	},
}

func init() {
	playCmd.Flags().String("stage", "intro", "Stage to start at")
}
