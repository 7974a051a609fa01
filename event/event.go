// Package event defines Glk events and the manager that delivers them.
//
// Two sources feed the manager: genuine events pushed by a window
// implementation (or any other producer) over the channel returned by
// Sink, and timer ticks the manager synthesizes itself from the interval
// configured with SetTimer. Both drain into a single FIFO so callers see
// one ordered sequence, with ticks only ever filling gaps between
// genuine events.
//
// Event values are immutable once created and move across the channel
// exactly once; producers and the consuming thread share no mutable
// state.
package event

import "github.com/dshills/goglk/keycode"

// Type discriminates the event union.
type Type int

const (
	// None indicates no event was pending. Poll returns it; Wait never does.
	None Type = iota
	// Timer is a synthesized periodic tick.
	Timer
	// CharInput is a single key press from a window.
	CharInput
	// LineInput is a completed line read from a window. Latin-1 requests
	// fill Buf; Unicode requests fill BufUni.
	LineInput
	// Mouse is a click in a text grid or graphics window.
	Mouse
	// Arrange reports that a window and its children were rearranged.
	Arrange
	// Redraw reports that a window and its children need redrawing.
	Redraw
	// Hyperlink reports a selected link.
	Hyperlink
	// SoundNotify reports a sound resource finishing playback.
	SoundNotify
	// VolumeNotify reports a completed volume change.
	VolumeNotify
)

var typeNames = map[Type]string{
	None:         "None",
	Timer:        "Timer",
	CharInput:    "CharInput",
	LineInput:    "LineInput",
	Mouse:        "Mouse",
	Arrange:      "Arrange",
	Redraw:       "Redraw",
	Hyperlink:    "Hyperlink",
	SoundNotify:  "SoundNotify",
	VolumeNotify: "VolumeNotify",
}

// String returns a human-readable name for the event type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is a single Glk event. Only the fields belonging to its Type are
// meaningful; the rest are zero.
type Event struct {
	Type Type

	// Win is the window the event came from (CharInput, LineInput,
	// Mouse, Arrange, Redraw, Hyperlink).
	Win uint32

	// Key is the pressed key for CharInput.
	Key keycode.Keycode

	// Buf is the Latin-1 line for LineInput.
	Buf []byte

	// BufUni is the Unicode line for LineInput.
	BufUni []rune

	// X, Y locate a Mouse event.
	X, Y uint32

	// Linkval is the caller's link value for Hyperlink.
	Linkval uint32

	// ResourceID is the sound resource for SoundNotify.
	ResourceID uint32

	// Notify is the caller's notification value for SoundNotify and
	// VolumeNotify.
	Notify uint32
}
