package telemetry

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/papapumpkin/nightsky/internal/sky"
	"github.com/papapumpkin/nightsky/internal/tagger"
)

func TestRun_RecordsGeneration(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "run.jsonl")

	em, err := NewEmitter(path)
	if err != nil {
		t.Fatalf("NewEmitter: %v", err)
	}
	run := NewRun(em)
	if _, err := uuid.Parse(run.ID); err != nil {
		t.Fatalf("run ID %q is not a UUID: %v", run.ID, err)
	}

	text := "The lantern glowed.\n\nWe walked home slowly."
	eng := sky.New(tagger.NewLexicon(), sky.WithObserver(run))
	run.Start("inline", len(sky.SplitParagraphs(text)))
	scene := eng.Generate(text)
	run.Done(scene)
	run.Rendered("svg", "sky.svg")
	if err := em.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if errs := run.Errs(); len(errs) != 0 {
		t.Fatalf("emit errors: %v", errs)
	}

	got := readEvents(t, path)
	wantKinds := []string{KindGenerateStart, KindParagraphDone, KindParagraphDone, KindGenerateDone, KindRenderDone}
	if len(got) != len(wantKinds) {
		t.Fatalf("got %d events, want %d", len(got), len(wantKinds))
	}
	for i, evt := range got {
		if evt.Kind != wantKinds[i] {
			t.Errorf("event %d kind = %q, want %q", i, evt.Kind, wantKinds[i])
		}
		if evt.RunID != run.ID {
			t.Errorf("event %d run = %q, want %q", i, evt.RunID, run.ID)
		}
	}
	for i, evt := range got[1:3] {
		if evt.Paragraph == nil || *evt.Paragraph != i {
			t.Errorf("paragraph_done %d carries paragraph %v", i, evt.Paragraph)
		}
	}
	done, ok := got[3].Data.(map[string]any)
	if !ok {
		t.Fatalf("generate_done data = %T", got[3].Data)
	}
	if n, _ := done["stars"].(float64); int(n) != len(scene.Stars) {
		t.Errorf("generate_done stars = %v, want %d", done["stars"], len(scene.Stars))
	}
}

func TestRun_NilEmitterIsSilent(t *testing.T) {
	t.Parallel()
	run := NewRun(nil)
	run.Start("stdin", 1)
	run.ParagraphLaidOut(0, sky.Area{}, nil, nil)
	run.Changed("notes.txt")
	if errs := run.Errs(); len(errs) != 0 {
		t.Errorf("nil emitter produced errors: %v", errs)
	}
}

func TestRun_CollectsErrorsConcurrently(t *testing.T) {
	t.Parallel()
	em, err := NewEmitter(filepath.Join(t.TempDir(), "closed.jsonl"))
	if err != nil {
		t.Fatalf("NewEmitter: %v", err)
	}
	if err := em.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Every emit on a closed file fails; errors arrive from several
	// goroutines while another reads them.
	run := NewRun(em)
	const writers = 8
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			run.Changed("notes.txt")
		}()
		go func() {
			defer wg.Done()
			_ = run.Errs()
		}()
	}
	wg.Wait()

	errs := run.Errs()
	if len(errs) != writers {
		t.Fatalf("got %d errors, want %d", len(errs), writers)
	}
	errs[0] = nil
	if run.Errs()[0] == nil {
		t.Error("Errs returned the internal slice")
	}
}
