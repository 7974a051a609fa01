package stream

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownStream is returned when an ID names no open stream.
	ErrUnknownStream = errors.New("unknown stream")
	// ErrNotReadable is returned for read calls on a write-only stream.
	ErrNotReadable = errors.New("stream is not open for reading")
	// ErrNotWritable is returned for write calls on a read-only stream.
	ErrNotWritable = errors.New("stream is not open for writing")
	// ErrNotSeekable is returned for Seek on window streams.
	ErrNotSeekable = errors.New("stream does not support seeking")
	// ErrInvalidSeek is returned when a seek lands outside the stream.
	ErrInvalidSeek = errors.New("seek target is out of range")
)

// DecodeError reports malformed UTF-8 found while reading Unicode
// characters from a file stream.
type DecodeError struct {
	Offset uint32
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid UTF-8 at offset %d: %s", e.Offset, e.Reason)
}
