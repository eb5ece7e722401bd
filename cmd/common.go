package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/papapumpkin/nightsky/internal/config"
	"github.com/papapumpkin/nightsky/internal/ingest"
	"github.com/papapumpkin/nightsky/internal/render"
	"github.com/papapumpkin/nightsky/internal/sky"
	"github.com/papapumpkin/nightsky/internal/tagger"
	"github.com/papapumpkin/nightsky/internal/telemetry"
	"github.com/papapumpkin/nightsky/internal/ui"
)

// formatSVG is the only output that is not a scene codec.
const formatSVG = "svg"

// env bundles what every command needs after config is loaded.
type env struct {
	cfg     config.Config
	printer *ui.Printer
	emitter *telemetry.Emitter
}

func loadEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	printer := ui.New(cfg.Verbose)
	printer.Debug("tagger=%s strategy=%s multiplier=%.2f margin=%.1f",
		cfg.Tagger, cfg.Layout.Strategy, cfg.Layout.EdgeMultiplier, cfg.Layout.Margin)

	var em *telemetry.Emitter
	if cfg.Telemetry.Path != "" {
		em, err = telemetry.NewEmitter(cfg.Telemetry.Path)
		if err != nil {
			return nil, err
		}
	}
	return &env{cfg: cfg, printer: printer, emitter: em}, nil
}

func (e *env) Close() error {
	return e.emitter.Close()
}

// warnRun reports telemetry writes that failed during run.
func (e *env) warnRun(run *telemetry.Run) {
	for _, err := range run.Errs() {
		e.printer.Warn(err.Error())
	}
}

// engineFor builds an engine from cfg reporting to obs, which may be nil.
func engineFor(cfg config.Config, obs sky.Observer) (*sky.Engine, error) {
	tg, err := tagger.New(cfg.Tagger)
	if err != nil {
		return nil, err
	}
	strategy, err := sky.ParseStrategy(cfg.Layout.Strategy)
	if err != nil {
		return nil, err
	}
	opts := []sky.Option{
		sky.WithStrategy(strategy),
		sky.WithEdgeMultiplier(cfg.Layout.EdgeMultiplier),
		sky.WithMargin(cfg.Layout.Margin),
		sky.WithShapeByClass(cfg.Style.ShapeByClass),
	}
	if obs != nil {
		opts = append(opts, sky.WithObserver(obs))
	}
	return sky.New(tg, opts...), nil
}

// backgroundFor returns the decorative stars configured in cfg.
func backgroundFor(cfg config.Config) []sky.Star {
	if cfg.Style.BackgroundStars == 0 {
		return nil
	}
	return sky.Background(sky.NewRand(cfg.Style.Seed), cfg.Style.BackgroundStars, cfg.Layout.Margin)
}

// resolveFormat picks the output format: explicit flag, then the output
// file's extension, then JSON.
func resolveFormat(flag, out string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(flag))
	if f == "" && out != "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(out)), ".")
	}
	if f == "" {
		return string(sky.FormatJSON), nil
	}
	if f == formatSVG {
		return f, nil
	}
	parsed, err := sky.ParseFormat(f)
	if err != nil {
		return "", err
	}
	return string(parsed), nil
}

// writeScene writes scene as SVG or as a scene file.
func writeScene(w io.Writer, scene sky.Scene, format string, cfg config.Config, opts render.Options) error {
	if format == formatSVG {
		opts.Size = cfg.Render.Size
		opts.Background = backgroundFor(cfg)
		return render.SVG(w, scene, opts)
	}
	f, err := sky.ParseFormat(format)
	if err != nil {
		return err
	}
	return sky.Encode(w, scene, f)
}

// textFromReader reads all of r as one document.
func textFromReader(r io.Reader, html bool) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	if html {
		page, err := ingest.FromHTML(string(data))
		if err != nil {
			return "", err
		}
		return page.Text, nil
	}
	return ingest.Normalize(string(data)), nil
}
