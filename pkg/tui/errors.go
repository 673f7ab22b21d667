package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoGenerator is returned by Run when no document generator is wired.
	ErrNoGenerator = errors.New("tui: document generator is required")
)
