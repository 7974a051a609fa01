package glk

import "errors"

var (
	// ErrUnimplemented is returned by calls this library does not
	// provide yet.
	ErrUnimplemented = errors.New("call not implemented")
	// ErrWindowStream is returned when a caller tries to close a window
	// stream directly.
	ErrWindowStream = errors.New("window streams close with their window")
	// ErrNoCurrentStream is returned by output calls when no current
	// stream is set.
	ErrNoCurrentStream = errors.New("no current stream")
)
