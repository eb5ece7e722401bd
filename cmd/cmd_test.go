package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/papapumpkin/nightsky/internal/config"
	"github.com/papapumpkin/nightsky/internal/ingest"
	"github.com/papapumpkin/nightsky/internal/render"
	"github.com/papapumpkin/nightsky/internal/sky"
)

func TestCommands_Registered(t *testing.T) {
	t.Parallel()

	want := []string{"generate", "classify", "render", "watch", "tui", "telemetry"}
	have := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		have[c.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("expected %q subcommand to be registered on rootCmd", name)
		}
	}
}

func TestCommands_Flags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cmd  string
		flag string
	}{
		{"generate", "text"},
		{"generate", "html"},
		{"generate", "format"},
		{"generate", "out"},
		{"classify", "legend"},
		{"render", "isolate"},
		{"render", "out"},
		{"watch", "out"},
		{"tui", "min-delay"},
		{"telemetry", "follow"},
	}
	for _, tt := range tests {
		t.Run(tt.cmd+"/"+tt.flag, func(t *testing.T) {
			t.Parallel()
			c, _, err := rootCmd.Find([]string{tt.cmd})
			if err != nil {
				t.Fatalf("Find(%q): %v", tt.cmd, err)
			}
			if c.Flags().Lookup(tt.flag) == nil {
				t.Errorf("expected flag %q to be registered on %s", tt.flag, tt.cmd)
			}
		})
	}
}

func TestPersistentFlags_BoundToConfigKeys(t *testing.T) {
	t.Parallel()
	for flag := range persistentKeys {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag %q is not defined", flag)
		}
	}
}

func TestResolveFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		flag    string
		out     string
		want    string
		wantErr bool
	}{
		{"default json", "", "", "json", false},
		{"from extension", "", "sky.svg", "svg", false},
		{"yml alias", "", "sky.yml", "yaml", false},
		{"flag wins", "toml", "sky.svg", "toml", false},
		{"flag case", "SVG", "", "svg", false},
		{"unknown", "png", "", "", true},
		{"unknown extension", "", "sky.png", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := resolveFormat(tt.flag, tt.out)
			if tt.wantErr {
				if !errors.Is(err, sky.ErrUnknownFormat) {
					t.Errorf("err = %v, want ErrUnknownFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveFormat: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveFormat(%q, %q) = %q, want %q", tt.flag, tt.out, got, tt.want)
			}
		})
	}
}

func TestGatherSources(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(a, []byte("<p>Hello there.</p>"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		stdin string
		args  []string
		text  string
		html  bool
		want  string
	}{
		{"text flag", "ignored", []string{a}, "Inline words.", false, "Inline words."},
		{"stdin", "From a pipe.\r\n", nil, "", false, "From a pipe.\n"},
		{"stdin html", "<h1>Title</h1><p>Body.</p>", nil, "", true, "Title\n\nBody."},
		{"file as text", "", []string{a}, "", false, "<p>Hello there.</p>"},
		{"file forced html", "", []string{a}, "", true, "Hello there."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := gatherSources(strings.NewReader(tt.stdin), tt.args, tt.text, tt.html)
			if err != nil {
				t.Fatalf("gatherSources: %v", err)
			}
			if text := ingest.Join(got); text != strings.TrimSpace(tt.want) {
				t.Errorf("text = %q, want %q", text, strings.TrimSpace(tt.want))
			}
		})
	}
}

func TestIsDirTarget(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	tests := []struct {
		out  string
		want bool
	}{
		{"", false},
		{dir, true},
		{"skies/", true},
		{filepath.Join(dir, "sky.svg"), false},
	}
	for _, tt := range tests {
		if got := isDirTarget(tt.out); got != tt.want {
			t.Errorf("isDirTarget(%q) = %v, want %v", tt.out, got, tt.want)
		}
	}
}

func testConfig() config.Config {
	return config.Config{
		Tagger: "lexicon",
		Layout: config.LayoutConfig{Strategy: "walking", EdgeMultiplier: 1.5, Margin: 10},
		Style:  config.StyleConfig{BackgroundStars: 5, Seed: 2},
		Render: config.RenderConfig{Size: 400},
	}
}

func TestEngineFor(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	if _, err := engineFor(cfg, nil); err != nil {
		t.Fatalf("engineFor: %v", err)
	}
	cfg.Layout.Strategy = "spiral"
	if _, err := engineFor(cfg, nil); err == nil {
		t.Error("unknown strategy accepted")
	}
	cfg = testConfig()
	cfg.Tagger = "oracle"
	if _, err := engineFor(cfg, nil); err == nil {
		t.Error("unknown tagger accepted")
	}
}

func TestWriteScene(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	engine, err := engineFor(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	scene := engine.Generate("The lantern glowed.\n\nWe walked home.")

	var svgBuf bytes.Buffer
	if err := writeScene(&svgBuf, scene, formatSVG, cfg, render.DefaultOptions()); err != nil {
		t.Fatalf("writeScene svg: %v", err)
	}
	if !strings.Contains(svgBuf.String(), `width="400"`) {
		t.Errorf("svg does not use configured size:\n%.200s", svgBuf.String())
	}
	// Border, stars, and the configured background.
	if got, want := strings.Count(svgBuf.String(), "<circle"), 1+len(scene.Stars)+5; got != want {
		t.Errorf("circles = %d, want %d", got, want)
	}

	var yamlBuf bytes.Buffer
	if err := writeScene(&yamlBuf, scene, "yaml", cfg, render.DefaultOptions()); err != nil {
		t.Fatalf("writeScene yaml: %v", err)
	}
	back, err := sky.Decode(&yamlBuf, sky.FormatYAML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(back.Stars) != len(scene.Stars) {
		t.Errorf("round trip lost stars: %d != %d", len(back.Stars), len(scene.Stars))
	}
}

func TestPrintEvent(t *testing.T) {
	t.Parallel()
	line := `{"ts":"2026-01-02T03:04:05Z","kind":"paragraph_done","run":"0f8fad5b-d9cb-469f-a165-70867728950e","paragraph":1,"data":{"stars":4,"connections":3}}`

	var buf bytes.Buffer
	printEvent(&buf, line, "")
	got := buf.String()
	for _, want := range []string{"[03:04:05]", "paragraph_done", "run=0f8fad5b", "paragraph=1", "connections=3 stars=4"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}

	buf.Reset()
	printEvent(&buf, line, "another-run")
	if buf.Len() != 0 {
		t.Errorf("event from another run printed: %q", buf.String())
	}

	buf.Reset()
	printEvent(&buf, "not json", "")
	if !strings.HasPrefix(buf.String(), "??? ") {
		t.Errorf("bad line printed as %q", buf.String())
	}
}

func TestGenerateCmd_EndToEnd(t *testing.T) {
	// Not parallel: runs the shared rootCmd.
	dir := t.TempDir()
	in := filepath.Join(dir, "poem.txt")
	out := filepath.Join(dir, "poem.json")
	if err := os.WriteFile(in, []byte("The lantern glowed.\n\nWe walked home slowly."), 0o644); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetArgs([]string{"generate", in, "--out", out, "--tagger", "lexicon"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("generate: %v", err)
	}

	scene, err := readScene(out)
	if err != nil {
		t.Fatalf("readScene: %v", err)
	}
	if len(scene.Paragraphs) != 2 {
		t.Errorf("paragraphs = %d, want 2", len(scene.Paragraphs))
	}
	if scene.Stars[0].Roman != "I" {
		t.Errorf("first star numeral = %q, want I", scene.Stars[0].Roman)
	}
}
