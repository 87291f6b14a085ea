package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/logiq/internal/quiz"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run an interactive quiz in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, count, err := generationRequest(cmd)
		if err != nil {
			return err
		}

		e, cleanup, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		return quiz.Run(e, req, count)
	},
}

func init() {
	addGenerationFlags(playCmd, 5)
}
