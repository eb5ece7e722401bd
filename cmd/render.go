package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/nightsky/internal/render"
	"github.com/papapumpkin/nightsky/internal/sky"
	"github.com/papapumpkin/nightsky/internal/telemetry"
)

var renderCmd = &cobra.Command{
	Use:   "render <scene-file>",
	Short: "Draw a saved scene as SVG",
	Long: `Reads a scene written by "nightsky generate" (json, toml, or yaml, chosen
by extension) and draws it as SVG. --isolate N shows only constellation N
(counting from 1), scaled to fill the sky.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().Int("isolate", 0, "show only this constellation, counting from 1 (0: all)")
	renderCmd.Flags().StringP("out", "o", "", "output SVG file (default: stdout)")
	renderCmd.Flags().String("title", "", "SVG document title")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	isolate, _ := cmd.Flags().GetInt("isolate")
	out, _ := cmd.Flags().GetString("out")
	title, _ := cmd.Flags().GetString("title")

	if isolate < 0 {
		return fmt.Errorf("render: --isolate must be 0 or a constellation number, got %d", isolate)
	}

	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	scene, err := readScene(args[0])
	if err != nil {
		return err
	}

	opts := render.DefaultOptions()
	opts.Title = title
	if isolate > 0 {
		opts.Focus = isolate - 1
	}

	run := telemetry.NewRun(e.emitter)
	defer e.warnRun(run)
	if out == "" {
		if err := writeScene(cmd.OutOrStdout(), scene, formatSVG, e.cfg, opts); err != nil {
			return err
		}
		run.Rendered(formatSVG, "stdout")
		return nil
	}
	if err := writeSceneFile(out, scene, formatSVG, e.cfg, opts); err != nil {
		return err
	}
	run.Rendered(formatSVG, out)
	e.printer.Wrote(out, formatSVG)
	return nil
}

// readScene decodes and validates a scene file.
func readScene(path string) (sky.Scene, error) {
	format, err := sky.FormatFromPath(path)
	if err != nil {
		return sky.Scene{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return sky.Scene{}, fmt.Errorf("opening scene: %w", err)
	}
	defer f.Close()
	scene, err := sky.Decode(f, format)
	if err != nil {
		return sky.Scene{}, fmt.Errorf("%s: %w", path, err)
	}
	return scene, nil
}
