package cmd

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/papapumpkin/nightsky/internal/ui"
)

// lockedBuffer is a bytes.Buffer shared between a command goroutine and the
// test.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// eventually polls cond, calling poke before each check, until it holds or
// the deadline passes.
func eventually(t *testing.T, what string, poke func(), cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if poke != nil {
			poke()
		}
		if cond() {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func writeFile(t *testing.T, path, text string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
}

func paragraphsIn(path string) int {
	scene, err := readScene(path)
	if err != nil {
		return -1
	}
	return len(scene.Paragraphs)
}

func TestWatch_RegeneratesOnWrite(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := filepath.Join(dir, "poem.txt")
	out := filepath.Join(dir, "poem.json")
	writeFile(t, in, "The lantern glowed.")

	var log lockedBuffer
	e := &env{cfg: testConfig(), printer: ui.NewTo(&log, false)}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.watch(ctx, in, out, "json") }()

	eventually(t, "first generation", nil, func() bool { return paragraphsIn(out) == 1 })
	eventually(t, "watcher to start", nil, func() bool { return strings.Contains(log.String(), "watching") })

	// Rewrite until the watcher has seen at least one write.
	eventually(t, "regeneration",
		func() { writeFile(t, in, "The lantern glowed.\n\nWe walked home.") },
		func() bool { return paragraphsIn(out) == 2 },
	)

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("watch: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}

	if !strings.Contains(log.String(), "NIGHTSKY") {
		t.Errorf("watch did not print the banner: %q", log.String())
	}
}

func TestWatch_MissingInput(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	e := &env{cfg: testConfig(), printer: ui.NewTo(&lockedBuffer{}, false)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := e.watch(ctx, filepath.Join(dir, "absent.txt"), filepath.Join(dir, "out.json"), "json")
	if err == nil {
		t.Fatal("watch of a missing file succeeded")
	}
}

func TestTailFollow_PrintsAppendedEvents(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "events.jsonl")
	writeFile(t, path, `{"ts":"2026-01-02T03:04:05Z","kind":"generate_start"}`+"\n")

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var out lockedBuffer
	r := bufio.NewReader(f)
	if err := printLines(&out, r, ""); err != nil {
		t.Fatalf("printLines: %v", err)
	}
	if !strings.Contains(out.String(), "generate_start") {
		t.Fatalf("existing event not printed: %q", out.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tailFollow(ctx, &out, r, path, "") }()

	appendLine := func() {
		af, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			t.Error(err)
			return
		}
		defer af.Close()
		_, _ = af.WriteString(`{"ts":"2026-01-02T03:04:06Z","kind":"render_done"}` + "\n")
	}
	eventually(t, "appended event", appendLine, func() bool {
		return strings.Contains(out.String(), "render_done")
	})

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("tailFollow: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("tailFollow did not stop after cancel")
	}
}

func TestRenderCmd_RejectsNegativeIsolate(t *testing.T) {
	// Not parallel: runs the shared rootCmd.
	rootCmd.SetArgs([]string{"render", "scene.json", "--isolate=-1"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		_ = renderCmd.Flags().Set("isolate", "0")
	})
	err := rootCmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "--isolate") {
		t.Fatalf("err = %v, want an --isolate error", err)
	}
}
