package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ayoubsiyari/full-talaria-log--sub003/terminal"
)

var previewTheme string

var previewCmd = &cobra.Command{
	Use:   "preview <document.json>",
	Short: "Preview a chart document interactively in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadChart(args[0], previewTheme)
		if err != nil {
			return err
		}
		return terminal.NewPreview(c).Run()
	},
}

func init() {
	previewCmd.Flags().StringVar(&previewTheme, "theme", "", "YAML theme file")
	rootCmd.AddCommand(previewCmd)
}
