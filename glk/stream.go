package glk

import "github.com/dshills/goglk/fileref"

// StreamOpenMemory opens a stream over a copy of buf; the buffer's
// length is the stream's capacity and StreamClose returns the final
// contents.
func (g *Glk) StreamOpenMemory(buf []byte, mode FileMode) StreamID {
	return g.streams.OpenMemory(buf, mode)
}

// StreamOpenFile opens a stream over a fileref's file. Temporary refs
// open read-write regardless of mode so scratch data can be read back.
func (g *Glk) StreamOpenFile(ref FileRefID, mode FileMode) (StreamID, error) {
	fr, ok := g.filerefs.Get(ref)
	if !ok {
		return 0, fileref.ErrUnknownFileRef
	}
	if fr.Temp {
		return g.streams.OpenTempFile(fr.Path)
	}
	return g.streams.OpenFile(fr.Path, mode)
}

// StreamOpenFileUni would open a file stream of four-byte characters.
func (g *Glk) StreamOpenFileUni(ref FileRefID, mode FileMode) (StreamID, error) {
	return 0, ErrUnimplemented
}

// StreamClose closes a stream and returns its character counts, plus
// the final buffer for memory streams. Window streams refuse; they
// close with their window.
func (g *Glk) StreamClose(id StreamID) (StreamResult, []byte, error) {
	if g.streams.WindowStream(id) {
		return StreamResult{}, nil, ErrWindowStream
	}
	result, data, err := g.streams.Close(id)
	if err != nil {
		return StreamResult{}, nil, err
	}
	g.wins.ClearEchoTarget(id)
	if g.current == id {
		g.current = 0
	}
	return result, data, nil
}

// SetCurrentStream selects the stream the argument-less output calls
// write to; 0 selects none.
func (g *Glk) SetCurrentStream(id StreamID) {
	g.current = id
}

// GetCurrentStream returns the current output stream, 0 when none.
func (g *Glk) GetCurrentStream() StreamID {
	return g.current
}

// SetCurrentToWindow selects a window's stream as current.
func (g *Glk) SetCurrentToWindow(id WindowID) error {
	sid, err := g.wins.StreamID(id)
	if err != nil {
		return err
	}
	g.current = sid
	return nil
}

// PutChar writes one Latin-1 character to the current stream.
func (g *Glk) PutChar(ch byte) error {
	if g.current == 0 {
		return ErrNoCurrentStream
	}
	return g.streams.PutChar(g.current, ch)
}

// PutString writes a string to the current stream.
func (g *Glk) PutString(s string) error {
	if g.current == 0 {
		return ErrNoCurrentStream
	}
	return g.streams.PutString(g.current, s)
}

// PutBuffer writes Latin-1 characters to the current stream.
func (g *Glk) PutBuffer(buf []byte) error {
	if g.current == 0 {
		return ErrNoCurrentStream
	}
	return g.streams.PutBuffer(g.current, buf)
}

// PutCharUni writes one code point to the current stream.
func (g *Glk) PutCharUni(ch rune) error {
	if g.current == 0 {
		return ErrNoCurrentStream
	}
	return g.streams.PutCharUni(g.current, ch)
}

// PutStringUni writes a string to the current stream, counting four
// characters per code point.
func (g *Glk) PutStringUni(s string) error {
	if g.current == 0 {
		return ErrNoCurrentStream
	}
	return g.streams.PutStringUni(g.current, s)
}

// PutBufferUni writes code points to the current stream.
func (g *Glk) PutBufferUni(buf []rune) error {
	if g.current == 0 {
		return ErrNoCurrentStream
	}
	return g.streams.PutBufferUni(g.current, buf)
}

// PutCharStream writes one Latin-1 character to a specific stream.
func (g *Glk) PutCharStream(id StreamID, ch byte) error {
	return g.streams.PutChar(id, ch)
}

// PutStringStream writes a string to a specific stream.
func (g *Glk) PutStringStream(id StreamID, s string) error {
	return g.streams.PutString(id, s)
}

// PutBufferStream writes Latin-1 characters to a specific stream.
func (g *Glk) PutBufferStream(id StreamID, buf []byte) error {
	return g.streams.PutBuffer(id, buf)
}

// PutStringStreamUni writes a string to a specific stream, counting
// four characters per code point.
func (g *Glk) PutStringStreamUni(id StreamID, s string) error {
	return g.streams.PutStringUni(id, s)
}

// PutCharStreamUni writes one code point to a specific stream.
func (g *Glk) PutCharStreamUni(id StreamID, ch rune) error {
	return g.streams.PutCharUni(id, ch)
}

// PutBufferStreamUni writes code points to a specific stream.
func (g *Glk) PutBufferStreamUni(id StreamID, buf []rune) error {
	return g.streams.PutBufferUni(id, buf)
}

// GetCharStream reads one Latin-1 character; io.EOF at the end.
func (g *Glk) GetCharStream(id StreamID) (byte, error) {
	return g.streams.GetChar(id)
}

// GetBufferStream reads up to maxlen characters; negative maxlen reads
// to the end.
func (g *Glk) GetBufferStream(id StreamID, maxlen int) ([]byte, error) {
	return g.streams.GetBuffer(id, maxlen)
}

// GetLineStream reads through the next newline, inclusive.
func (g *Glk) GetLineStream(id StreamID, maxlen int) ([]byte, error) {
	return g.streams.GetLine(id, maxlen)
}

// GetCharStreamUni reads one code point; io.EOF at the end.
func (g *Glk) GetCharStreamUni(id StreamID) (rune, error) {
	return g.streams.GetCharUni(id)
}

// GetBufferStreamUni reads up to maxlen code points.
func (g *Glk) GetBufferStreamUni(id StreamID, maxlen int) (string, error) {
	return g.streams.GetBufferUni(id, maxlen)
}

// GetLineStreamUni reads code points through the next newline.
func (g *Glk) GetLineStreamUni(id StreamID, maxlen int) (string, error) {
	return g.streams.GetLineUni(id, maxlen)
}

// StreamGetPosition reports a stream's character position.
func (g *Glk) StreamGetPosition(id StreamID) (uint32, error) {
	return g.streams.Position(id)
}

// StreamSetPosition moves a stream's position.
func (g *Glk) StreamSetPosition(id StreamID, offset int32, mode SeekMode) error {
	return g.streams.Seek(id, offset, mode)
}

// StreamSetEcho mirrors a stream's writes onto another; 0 stops.
func (g *Glk) StreamSetEcho(id, echo StreamID) error {
	return g.streams.SetEcho(id, echo)
}

// StreamGetEcho returns a stream's echo target, 0 when none.
func (g *Glk) StreamGetEcho(id StreamID) (StreamID, error) {
	return g.streams.Echo(id)
}
