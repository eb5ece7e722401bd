package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/nightsky/internal/config"
	"github.com/papapumpkin/nightsky/internal/ingest"
	"github.com/papapumpkin/nightsky/internal/render"
	"github.com/papapumpkin/nightsky/internal/sky"
	"github.com/papapumpkin/nightsky/internal/telemetry"
)

var generateCmd = &cobra.Command{
	Use:   "generate [file|glob ...]",
	Short: "Generate a sky from text",
	Long: `Reads text from files, doublestar globs ("poems/**/*.txt"), --text, or
stdin, and writes the generated sky as a scene file (json, toml, yaml) or
an SVG image.

With several inputs and --out pointing at a directory, each input gets its
own sky. Otherwise all inputs are joined, one constellation per paragraph.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("text", "", "text to lay out instead of reading files")
	generateCmd.Flags().Bool("html", false, "treat every input as HTML")
	generateCmd.Flags().StringP("format", "f", "", "output format: json, toml, yaml, or svg (default: from --out, else json)")
	generateCmd.Flags().StringP("out", "o", "", "output file or directory (default: stdout)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	html, _ := cmd.Flags().GetBool("html")
	formatFlag, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")

	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.Close()
	if e.cfg.Verbose {
		e.printer.Banner()
	}

	sources, err := gatherSources(cmd.InOrStdin(), args, text, html)
	if err != nil {
		return err
	}

	batch := len(sources) > 1 && isDirTarget(out)
	format, err := resolveFormat(formatFlag, outFileFor(out, batch))
	if err != nil {
		return err
	}

	if !batch {
		src := ingest.Source{Path: sources[0].Path, Text: ingest.Join(sources)}
		if len(sources) > 1 {
			src.Path = fmt.Sprintf("%d files", len(sources))
		}
		return e.generateOne(cmd.OutOrStdout(), src, format, out)
	}

	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	for _, src := range sources {
		dest := filepath.Join(out, strings.TrimSuffix(filepath.Base(src.Path), filepath.Ext(src.Path))+"."+format)
		if err := e.generateOne(cmd.OutOrStdout(), src, format, dest); err != nil {
			return err
		}
	}
	return nil
}

// generateOne lays out src and writes it to dest, or to stdout when dest is
// empty.
func (e *env) generateOne(stdout io.Writer, src ingest.Source, format, dest string) error {
	run := telemetry.NewRun(e.emitter)
	defer e.warnRun(run)
	engine, err := engineFor(e.cfg, run)
	if err != nil {
		return err
	}

	run.Start(src.Path, len(sky.SplitParagraphs(src.Text)))
	scene := engine.Generate(src.Text)
	run.Done(scene)
	e.printer.Debug("%s: %d star(s)", src.Path, len(scene.Stars))

	opts := render.DefaultOptions()
	opts.Title = src.Title
	if dest == "" {
		if err := writeScene(stdout, scene, format, e.cfg, opts); err != nil {
			return err
		}
		run.Rendered(format, "stdout")
		return nil
	}

	if err := writeSceneFile(dest, scene, format, e.cfg, opts); err != nil {
		return err
	}
	run.Rendered(format, dest)
	e.printer.Wrote(dest, format)
	if e.cfg.Verbose {
		e.printer.SceneSummary(scene)
	}
	return nil
}

// writeSceneFile writes scene to the file dest, replacing it.
func writeSceneFile(dest string, scene sky.Scene, format string, cfg config.Config, opts render.Options) error {
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}
	if err := writeScene(f, scene, format, cfg, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dest, err)
	}
	return nil
}

// gatherSources resolves the input precedence: --text, then file
// arguments, then stdin.
func gatherSources(stdin io.Reader, args []string, text string, html bool) ([]ingest.Source, error) {
	if text != "" {
		if html {
			page, err := ingest.FromHTML(text)
			if err != nil {
				return nil, err
			}
			return []ingest.Source{{Path: "text", Title: page.Title, Text: page.Text}}, nil
		}
		return []ingest.Source{{Path: "text", Text: ingest.Normalize(text)}}, nil
	}
	if len(args) == 0 {
		t, err := textFromReader(stdin, html)
		if err != nil {
			return nil, err
		}
		return []ingest.Source{{Path: "stdin", Text: t}}, nil
	}

	sources, err := ingest.ReadSources(args)
	if err != nil {
		return nil, err
	}
	if html {
		for i, src := range sources {
			if ingest.IsHTML(src.Path) {
				continue
			}
			page, err := ingest.FromHTML(src.Text)
			if err != nil {
				return nil, fmt.Errorf("converting %s: %w", src.Path, err)
			}
			sources[i].Title, sources[i].Text = page.Title, page.Text
		}
	}
	return sources, nil
}

// isDirTarget reports whether out names a directory, existing or intended
// (trailing separator).
func isDirTarget(out string) bool {
	if out == "" {
		return false
	}
	if strings.HasSuffix(out, "/") || strings.HasSuffix(out, string(os.PathSeparator)) {
		return true
	}
	info, err := os.Stat(out)
	return err == nil && info.IsDir()
}

// outFileFor returns the path whose extension may imply the format.
func outFileFor(out string, batch bool) string {
	if batch {
		return ""
	}
	return out
}
