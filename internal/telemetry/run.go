package telemetry

import (
	"sync"

	"github.com/google/uuid"

	"github.com/papapumpkin/nightsky/internal/sky"
)

// Run tags every event it emits with one run ID. It implements sky.Observer
// so an Engine can report paragraph progress directly. A Run over a nil
// Emitter is silent. It is safe for concurrent use.
type Run struct {
	ID      string
	emitter *Emitter

	mu   sync.Mutex
	errs []error
}

// NewRun starts a run with a fresh random ID.
func NewRun(em *Emitter) *Run {
	return &Run{ID: uuid.NewString(), emitter: em}
}

func (r *Run) emit(evt Event) {
	evt.RunID = r.ID
	if err := r.emitter.Emit(evt); err != nil {
		r.mu.Lock()
		r.errs = append(r.errs, err)
		r.mu.Unlock()
	}
}

// Start records the beginning of a generation over source.
func (r *Run) Start(source string, paragraphs int) {
	r.emit(Event{Kind: KindGenerateStart, Data: map[string]any{
		"source":     source,
		"paragraphs": paragraphs,
	}})
}

// ParagraphLaidOut records one finished constellation.
func (r *Run) ParagraphLaidOut(index int, area sky.Area, stars []sky.Star, connections []sky.Connection) {
	p := index
	r.emit(Event{Kind: KindParagraphDone, Paragraph: &p, Data: map[string]any{
		"stars":       len(stars),
		"connections": len(connections),
		"area":        area,
	}})
}

// Done records the finished scene.
func (r *Run) Done(scene sky.Scene) {
	r.emit(Event{Kind: KindGenerateDone, Data: map[string]any{
		"stars":       len(scene.Stars),
		"connections": len(scene.Connections),
		"paragraphs":  len(scene.Paragraphs),
	}})
}

// Rendered records an output written in format to dest.
func (r *Run) Rendered(format, dest string) {
	r.emit(Event{Kind: KindRenderDone, Data: map[string]any{
		"format": format,
		"dest":   dest,
	}})
}

// Changed records a watched file being re-read.
func (r *Run) Changed(path string) {
	r.emit(Event{Kind: KindWatchChange, Data: map[string]any{"path": path}})
}

// Errs returns the emit errors collected so far. Observer callbacks cannot
// return errors, so they are kept here instead.
func (r *Run) Errs() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.errs...)
}

var _ sky.Observer = (*Run)(nil)
