package sky

import "errors"

// Sentinel errors for session transitions and scene encoding.
var (
	// ErrEmptyInput indicates a submit with no non-blank text.
	ErrEmptyInput = errors.New("input text is empty")
	// ErrInvalidTransition indicates an action not allowed in the current view state.
	ErrInvalidTransition = errors.New("invalid view state transition")
	// ErrNoSuchParagraph indicates a paragraph index outside the scene.
	ErrNoSuchParagraph = errors.New("no such paragraph")
	// ErrUnknownFormat indicates an unsupported scene file format.
	ErrUnknownFormat = errors.New("unknown scene format")
)
