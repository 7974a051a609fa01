// Package stream implements Glk streams.
//
// A stream is a readable or writable sequence of characters backed by a
// window, a memory buffer, or a file. All streams count the characters
// read and written through them; the counts are reported when the stream
// closes. A stream may also carry an echo stream: every write is
// mirrored to the echo, and the mirrored characters count on both.
//
// Two character sizes flow through the same streams. The plain calls
// move Latin-1 characters one byte at a time; the Uni calls move full
// code points. Memory and window streams store Unicode characters as
// four big-endian bytes each, file streams store UTF-8.
package stream

// FileMode says what operations a stream permits.
type FileMode int

const (
	// Read opens an existing file for reading.
	Read FileMode = iota
	// Write creates or truncates a file for writing.
	Write
	// ReadWrite opens a file for both, creating it if missing.
	ReadWrite
	// WriteAppend opens a file for writing at the end.
	WriteAppend
)

var fileModeNames = map[FileMode]string{
	Read:        "Read",
	Write:       "Write",
	ReadWrite:   "ReadWrite",
	WriteAppend: "WriteAppend",
}

// String returns a human-readable name for the mode.
func (m FileMode) String() string {
	if name, ok := fileModeNames[m]; ok {
		return name
	}
	return "Unknown"
}

// CanRead reports whether the mode permits reading.
func (m FileMode) CanRead() bool {
	return m == Read || m == ReadWrite
}

// CanWrite reports whether the mode permits writing.
func (m FileMode) CanWrite() bool {
	return m == Write || m == ReadWrite || m == WriteAppend
}

// SeekMode anchors a Seek offset.
type SeekMode int

const (
	// SeekStart measures from the beginning of the stream.
	SeekStart SeekMode = iota
	// SeekCurrent measures from the current position.
	SeekCurrent
	// SeekEnd measures from the end of the stream.
	SeekEnd
)

// Result carries a closed stream's character counts.
type Result struct {
	ReadCount  uint32
	WriteCount uint32
}

// backend is the storage side of a stream. Character counting, mode
// gating, and echo fan-out happen above it in the manager; backends
// only move characters.
//
// A negative maxlen means unlimited.
type backend interface {
	putChar(ch byte) error
	putString(s string) error
	putBuffer(buf []byte) error
	putCharUni(ch rune) error
	putBufferUni(buf []rune) error

	getChar() (byte, error)
	getBuffer(maxlen int) ([]byte, error)
	getLine(maxlen int) ([]byte, error)
	getCharUni() (rune, error)
	getBufferUni(maxlen int) (string, error)
	getLineUni(maxlen int) (string, error)

	position() uint32
	seek(offset int32, mode SeekMode) error

	// data returns the backing buffer contents; nil except for memory
	// streams.
	data() []byte

	windowStream() bool
	memoryStream() bool

	close() error
}
