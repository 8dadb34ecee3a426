package bf

import "errors"

// Every fault is fatal to the run it occurs in. Positions are attached
// by wrapping, so callers match the kind with errors.Is.
var (
	// ErrUnmatchedClose means a ']' was seen with no pending '['.
	ErrUnmatchedClose = errors.New("unmatched ']'")
	// ErrUnmatchedOpen means one or more '[' were left open at the end
	// of the source.
	ErrUnmatchedOpen = errors.New("unmatched '['")
	// ErrOutOfBounds means a '<' tried to move the data pointer below
	// cell 0.
	ErrOutOfBounds = errors.New("data pointer out of bounds")
	// ErrInput means a ',' executed but the input source had no byte
	// to give.
	ErrInput = errors.New("input exhausted")
)
