package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/nightsky/internal/ingest"
	"github.com/papapumpkin/nightsky/internal/telemetry"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Regenerate the sky whenever a text file changes",
	Long: `Generates once, then watches the input file and regenerates the output
every time the file is saved. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringP("out", "o", "", "output file (required)")
	watchCmd.Flags().StringP("format", "f", "", "output format: json, toml, yaml, or svg (default: from --out)")
	_ = watchCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")
	formatFlag, _ := cmd.Flags().GetString("format")
	if out == "" {
		return errors.New("watch: --out is required")
	}

	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	format, err := resolveFormat(formatFlag, out)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return e.watch(ctx, args[0], out, format)
}

// watch regenerates dest from path until ctx is done.
func (e *env) watch(ctx context.Context, path, dest, format string) error {
	regenerate := func() error {
		src, err := ingest.ReadFile(path)
		if err != nil {
			return err
		}
		return e.generateOne(nil, src, format, dest)
	}
	e.printer.Banner()
	if err := regenerate(); err != nil {
		return err
	}

	w, err := ingest.NewWatcher(path)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()
	e.printer.Info("watching " + path + " (Ctrl+C to stop)")

	run := telemetry.NewRun(e.emitter)
	defer e.warnRun(run)
	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-w.Changes:
			if !ok {
				return nil
			}
			run.Changed(change.Path)
			if change.Removed {
				e.printer.Warn(path + " was removed; waiting for it to come back")
				continue
			}
			if err := regenerate(); err != nil {
				e.printer.Error(err.Error())
			}
		}
	}
}
