package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ayoubsiyari/full-talaria-log--sub003/chart"
	"github.com/ayoubsiyari/full-talaria-log--sub003/config"
	"github.com/ayoubsiyari/full-talaria-log--sub003/export"
	"github.com/ayoubsiyari/full-talaria-log--sub003/logging"
)

var (
	renderFormat string
	renderOutput string
	renderTheme  string
)

var renderCmd = &cobra.Command{
	Use:   "render <document.json>",
	Short: "Render a chart document to an output format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadChart(args[0], renderTheme)
		if err != nil {
			return err
		}
		format, err := export.ParseFormat(renderFormat)
		if err != nil {
			return err
		}
		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}
		out, err := exporter.Export(c)
		if err != nil {
			return fmt.Errorf("export %s: %w", exporter.FormatName(), err)
		}
		if renderOutput == "" || renderOutput == "-" {
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		}
		if err := os.WriteFile(renderOutput, []byte(out+"\n"), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		logging.L().Info("chart rendered",
			zap.String("document", args[0]),
			zap.String("format", string(format)),
			zap.String("output", renderOutput))
		return nil
	},
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List available export formats",
	Run: func(cmd *cobra.Command, args []string) {
		desc := export.FormatDescriptions()
		for _, f := range export.AvailableFormats() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", f, desc[f])
		}
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "svg", "output format (svg, ascii, json)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (default stdout)")
	renderCmd.Flags().StringVar(&renderTheme, "theme", "", "YAML theme file")
	rootCmd.AddCommand(renderCmd, formatsCmd)
}

// loadChart reads a chart document and applies the optional theme.
func loadChart(path, themePath string) (*chart.Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	c, err := chart.LoadJSON(data)
	if err != nil {
		return nil, err
	}
	c.SetLogger(logging.L())
	if themePath != "" {
		cfg, err := config.Load(themePath)
		if err != nil {
			return nil, err
		}
		cfg.Apply(c.Tools())
		if cfg.Canvas.Background != "" {
			c.SetBackground(cfg.Canvas.Background)
		}
	}
	return c, nil
}
