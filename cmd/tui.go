package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/nightsky/internal/telemetry"
	"github.com/papapumpkin/nightsky/internal/tui"
)

// tuiCmd launches the interactive sky.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Type or paste text, press ctrl+s, and watch it become a sky. In the
results view, move through constellations with ↑/↓, isolate one with
enter, show all again with esc, and press r to edit the text.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().Duration("min-delay", tui.DefaultMinDelay, "minimum time the generating animation is shown")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	minDelay, _ := cmd.Flags().GetDuration("min-delay")

	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	run := telemetry.NewRun(e.emitter)
	defer e.warnRun(run)
	engine, err := engineFor(e.cfg, run)
	if err != nil {
		return err
	}

	model := tui.NewAppModel(engine, backgroundFor(e.cfg))
	model.MinDelay = minDelay
	return tui.Run(model)
}
