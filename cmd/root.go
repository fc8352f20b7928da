// Package cmd wires the command-line interface.
package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ayoubsiyari/full-talaria-log--sub003/logging"
)

var rootCmd = &cobra.Command{
	Use:   "chartdraw",
	Short: "Render and preview chart drawing tools",
	Long: `chartdraw loads chart documents (JSON files describing a data window
and a set of drawing tools) and renders them to SVG, ASCII art or back to
JSON, or previews them interactively in the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env file is fine; the environment still applies.
		_ = godotenv.Load()
		return logging.FromEnv()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
