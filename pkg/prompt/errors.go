package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrUnknownSection is returned when no mapping table covers the
	// requested section.
	ErrUnknownSection = errors.New("prompt: unknown section")
)
