package glk

import (
	"github.com/dshills/goglk/event"
	"github.com/dshills/goglk/fileref"
	"github.com/dshills/goglk/stream"
	"github.com/dshills/goglk/wintree"
)

// Aliases so callers work entirely in terms of this package.
type (
	WindowID  = uint32
	StreamID  = uint32
	FileRefID = uint32

	WindowKind  = wintree.Kind
	SplitMethod = wintree.SplitMethod
	SplitAmount = wintree.SplitAmount
	WindowImpl  = wintree.Impl

	FileMode     = stream.FileMode
	SeekMode     = stream.SeekMode
	StreamResult = stream.Result

	FileUsage = fileref.Usage

	Event     = event.Event
	EventType = event.Type
)

// Window kinds.
const (
	WindowBlank      = wintree.Blank
	WindowTextBuffer = wintree.TextBuffer
	WindowTextGrid   = wintree.TextGrid
	WindowGraphics   = wintree.Graphics
	WindowPair       = wintree.Pair
)

// Split positions.
const (
	SplitAbove = wintree.Above
	SplitBelow = wintree.Below
	SplitLeft  = wintree.Left
	SplitRight = wintree.Right
)

// File modes.
const (
	FileModeRead        = stream.Read
	FileModeWrite       = stream.Write
	FileModeReadWrite   = stream.ReadWrite
	FileModeWriteAppend = stream.WriteAppend
)

// Seek modes.
const (
	SeekStart   = stream.SeekStart
	SeekCurrent = stream.SeekCurrent
	SeekEnd     = stream.SeekEnd
)

// File usages.
const (
	FileUsageData        = fileref.Data
	FileUsageSavedGame   = fileref.SavedGame
	FileUsageTranscript  = fileref.Transcript
	FileUsageInputRecord = fileref.InputRecord
)

// Event types.
const (
	EventNone         = event.None
	EventTimer        = event.Timer
	EventCharInput    = event.CharInput
	EventLineInput    = event.LineInput
	EventMouse        = event.Mouse
	EventArrange      = event.Arrange
	EventRedraw       = event.Redraw
	EventHyperlink    = event.Hyperlink
	EventSoundNotify  = event.SoundNotify
	EventVolumeNotify = event.VolumeNotify
)

// FixedSplit sizes a split at a fixed number of rows or columns.
func FixedSplit(n uint32) SplitAmount { return wintree.FixedAmount(n) }

// ProportionalSplit sizes a split at a percentage.
func ProportionalSplit(pct uint32) SplitAmount { return wintree.ProportionalAmount(pct) }

// NewWindowFunc builds the display side of a window. It may return nil
// to discard that window's output.
type NewWindowFunc func(id WindowID, kind WindowKind) WindowImpl

// discardImpl swallows everything; used when no factory is given.
type discardImpl struct{}

func (discardImpl) PutString(string) {}
func (discardImpl) MoveCursor(uint32, uint32) {}
func (discardImpl) Clear() {}
func (discardImpl) Size() (uint32, uint32) { return 0, 0 }
func (discardImpl) ReadLine(string, int, func(line string)) {}

// Glk is the top-level session object. Not safe for concurrent use;
// see the package comment for the threading model.
type Glk struct {
	wins     *wintree.Tree
	streams  *stream.Manager
	events   *event.Manager
	filerefs *fileref.Manager
	current  StreamID
}

// New creates an empty session. newWindow may be nil for headless use.
func New(newWindow NewWindowFunc) *Glk {
	factory := func(id uint32, kind wintree.Kind) wintree.Impl {
		if newWindow != nil {
			if impl := newWindow(id, kind); impl != nil {
				return impl
			}
		}
		return discardImpl{}
	}
	return &Glk{
		wins:     wintree.New(factory),
		streams:  stream.NewManager(),
		events:   event.NewManager(),
		filerefs: fileref.NewManager(),
	}
}
