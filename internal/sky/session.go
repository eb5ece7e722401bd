package sky

import (
	"fmt"
	"strings"
)

// ViewState is the stage of an interactive session.
type ViewState int

const (
	// StateInput accepts text; there is no scene.
	StateInput ViewState = iota
	// StateGenerating is computing a scene.
	StateGenerating
	// StateResults shows a scene; paragraphs may be selected.
	StateResults
)

func (s ViewState) String() string {
	switch s {
	case StateInput:
		return "input"
	case StateGenerating:
		return "generating"
	case StateResults:
		return "results"
	}
	return fmt.Sprintf("ViewState(%d)", int(s))
}

// Session tracks the input -> generating -> results cycle and the selected
// paragraph. A zero Session is in StateInput.
type Session struct {
	state    ViewState
	text     string
	scene    Scene
	selected int
	hasSel   bool
}

// State returns the current view state.
func (s *Session) State() ViewState { return s.state }

// Text returns the submitted text.
func (s *Session) Text() string { return s.text }

// Scene returns the current scene; it is empty outside StateResults.
func (s *Session) Scene() Scene { return s.scene }

// Selected returns the selected paragraph, if any.
func (s *Session) Selected() (int, bool) { return s.selected, s.hasSel }

// Submit moves from input to generating.
func (s *Session) Submit(text string) error {
	if s.state != StateInput {
		return fmt.Errorf("%w: submit from %s", ErrInvalidTransition, s.state)
	}
	if strings.TrimSpace(text) == "" {
		return ErrEmptyInput
	}
	s.text = text
	s.state = StateGenerating
	return nil
}

// Complete moves from generating to results with the finished scene.
func (s *Session) Complete(scene Scene) error {
	if s.state != StateGenerating {
		return fmt.Errorf("%w: complete from %s", ErrInvalidTransition, s.state)
	}
	s.scene = scene
	s.state = StateResults
	s.hasSel = false
	return nil
}

// Reset returns to input, discarding the scene and selection. The submitted
// text is kept so it can be edited.
func (s *Session) Reset() error {
	if s.state != StateResults {
		return fmt.Errorf("%w: reset from %s", ErrInvalidTransition, s.state)
	}
	s.scene = Scene{}
	s.hasSel = false
	s.selected = 0
	s.state = StateInput
	return nil
}

// Select isolates paragraph p. Selecting the already selected paragraph
// clears the selection.
func (s *Session) Select(p int) error {
	if s.state != StateResults {
		return fmt.Errorf("%w: select from %s", ErrInvalidTransition, s.state)
	}
	if p < 0 || p >= len(s.scene.Paragraphs) {
		return fmt.Errorf("%w: %d of %d", ErrNoSuchParagraph, p, len(s.scene.Paragraphs))
	}
	if s.hasSel && s.selected == p {
		s.hasSel = false
		return nil
	}
	s.selected, s.hasSel = p, true
	return nil
}

// ClearSelection shows every constellation again.
func (s *Session) ClearSelection() {
	s.hasSel = false
}
