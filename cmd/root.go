package cmd

import (
	"github.com/abhisek/logiq/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "logiq",
	Short: "PDF-driven MCQ generator",
	Long:  "LogiQ — generates multiple-choice questions from a PDF at a chosen difficulty level, using an AI-built rubric local to the document.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return askCmd.RunE(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LOGIQ_DB env var)")

	addGenerationFlags(rootCmd, 1)

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(rubricCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LOGIQ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
