package stream

// stream pairs a backend with its mode, counts, and echo target.
type stream struct {
	backend backend
	mode    FileMode
	result  Result
	echo    uint32
}

// Manager owns all open streams and hands out their IDs. It gates every
// call on the stream's mode, keeps the read and write counts, and fans
// writes out to echo streams. It is not safe for concurrent use.
type Manager struct {
	streams map[uint32]*stream
	nextID  uint32
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{
		streams: make(map[uint32]*stream),
		nextID:  1,
	}
}

func (m *Manager) add(b backend, mode FileMode) uint32 {
	id := m.nextID
	m.nextID++
	m.streams[id] = &stream{backend: b, mode: mode}
	return id
}

// OpenMemory opens a stream over a copy of buf. The buffer's length is
// the stream's capacity; Close returns the final contents.
func (m *Manager) OpenMemory(buf []byte, mode FileMode) uint32 {
	return m.add(newMemStream(buf), mode)
}

// OpenFile opens a stream over the named file.
func (m *Manager) OpenFile(path string, mode FileMode) (uint32, error) {
	b, err := openFile(path, mode)
	if err != nil {
		return 0, err
	}
	return m.add(b, mode), nil
}

// OpenTempFile opens a read-write stream over a scratch file, creating
// it owner-only.
func (m *Manager) OpenTempFile(path string) (uint32, error) {
	b, err := openTemp(path)
	if err != nil {
		return 0, err
	}
	return m.add(b, ReadWrite), nil
}

// OpenWindow opens the write-only stream attached to a window.
func (m *Manager) OpenWindow(sink Sink) uint32 {
	return m.add(&winStream{sink: sink}, Write)
}

func (m *Manager) writable(id uint32) (*stream, error) {
	s, ok := m.streams[id]
	if !ok {
		return nil, ErrUnknownStream
	}
	if !s.mode.CanWrite() {
		return nil, ErrNotWritable
	}
	return s, nil
}

func (m *Manager) readable(id uint32) (*stream, error) {
	s, ok := m.streams[id]
	if !ok {
		return nil, ErrUnknownStream
	}
	if !s.mode.CanRead() {
		return nil, ErrNotReadable
	}
	return s, nil
}

// PutChar writes one Latin-1 character. It counts as one character on
// this stream and on every echo stream it fans out to.
func (m *Manager) PutChar(id uint32, ch byte) error {
	s, err := m.writable(id)
	if err != nil {
		return err
	}
	if err := s.backend.putChar(ch); err != nil {
		return err
	}
	s.result.WriteCount++
	if s.echo != 0 {
		return m.PutChar(s.echo, ch)
	}
	return nil
}

// PutString writes a string. It counts one character per UTF-8 byte.
func (m *Manager) PutString(id uint32, str string) error {
	s, err := m.writable(id)
	if err != nil {
		return err
	}
	if err := s.backend.putString(str); err != nil {
		return err
	}
	s.result.WriteCount += uint32(len(str))
	if s.echo != 0 {
		return m.PutString(s.echo, str)
	}
	return nil
}

// PutStringUni writes a string counting four characters per code point.
func (m *Manager) PutStringUni(id uint32, str string) error {
	s, err := m.writable(id)
	if err != nil {
		return err
	}
	if err := s.backend.putString(str); err != nil {
		return err
	}
	s.result.WriteCount += uint32(4 * len([]rune(str)))
	if s.echo != 0 {
		return m.PutStringUni(s.echo, str)
	}
	return nil
}

// PutBuffer writes Latin-1 characters, one per byte.
func (m *Manager) PutBuffer(id uint32, buf []byte) error {
	s, err := m.writable(id)
	if err != nil {
		return err
	}
	if err := s.backend.putBuffer(buf); err != nil {
		return err
	}
	s.result.WriteCount += uint32(len(buf))
	if s.echo != 0 {
		return m.PutBuffer(s.echo, buf)
	}
	return nil
}

// PutCharUni writes one code point. It counts as four characters.
func (m *Manager) PutCharUni(id uint32, ch rune) error {
	s, err := m.writable(id)
	if err != nil {
		return err
	}
	if err := s.backend.putCharUni(ch); err != nil {
		return err
	}
	s.result.WriteCount += 4
	if s.echo != 0 {
		return m.PutCharUni(s.echo, ch)
	}
	return nil
}

// PutBufferUni writes code points, counting four characters each.
func (m *Manager) PutBufferUni(id uint32, buf []rune) error {
	s, err := m.writable(id)
	if err != nil {
		return err
	}
	if err := s.backend.putBufferUni(buf); err != nil {
		return err
	}
	s.result.WriteCount += uint32(4 * len(buf))
	if s.echo != 0 {
		return m.PutBufferUni(s.echo, buf)
	}
	return nil
}

// GetChar reads one Latin-1 character. io.EOF marks the end of the
// stream.
func (m *Manager) GetChar(id uint32) (byte, error) {
	s, err := m.readable(id)
	if err != nil {
		return 0, err
	}
	ch, err := s.backend.getChar()
	if err != nil {
		return 0, err
	}
	s.result.ReadCount++
	return ch, nil
}

// GetBuffer reads up to maxlen characters; negative maxlen means until
// the end of the stream. A short result means the stream ended.
func (m *Manager) GetBuffer(id uint32, maxlen int) ([]byte, error) {
	s, err := m.readable(id)
	if err != nil {
		return nil, err
	}
	out, err := s.backend.getBuffer(maxlen)
	s.result.ReadCount += uint32(len(out))
	return out, err
}

// GetLine reads characters up to and including the next newline, the
// maxlen limit, or the end of the stream, whichever comes first.
func (m *Manager) GetLine(id uint32, maxlen int) ([]byte, error) {
	s, err := m.readable(id)
	if err != nil {
		return nil, err
	}
	out, err := s.backend.getLine(maxlen)
	s.result.ReadCount += uint32(len(out))
	return out, err
}

// GetCharUni reads one code point. It counts as four characters.
func (m *Manager) GetCharUni(id uint32) (rune, error) {
	s, err := m.readable(id)
	if err != nil {
		return 0, err
	}
	ch, err := s.backend.getCharUni()
	if err != nil {
		return 0, err
	}
	s.result.ReadCount += 4
	return ch, nil
}

// GetBufferUni reads up to maxlen code points, counting four characters
// each.
func (m *Manager) GetBufferUni(id uint32, maxlen int) (string, error) {
	s, err := m.readable(id)
	if err != nil {
		return "", err
	}
	out, err := s.backend.getBufferUni(maxlen)
	s.result.ReadCount += uint32(4 * len([]rune(out)))
	return out, err
}

// GetLineUni reads code points up to and including the next newline.
func (m *Manager) GetLineUni(id uint32, maxlen int) (string, error) {
	s, err := m.readable(id)
	if err != nil {
		return "", err
	}
	out, err := s.backend.getLineUni(maxlen)
	s.result.ReadCount += uint32(4 * len([]rune(out)))
	return out, err
}

// Position reports the stream's current character position.
func (m *Manager) Position(id uint32) (uint32, error) {
	s, ok := m.streams[id]
	if !ok {
		return 0, ErrUnknownStream
	}
	return s.backend.position(), nil
}

// Seek moves the stream position. Window streams do not seek.
func (m *Manager) Seek(id uint32, offset int32, mode SeekMode) error {
	s, ok := m.streams[id]
	if !ok {
		return ErrUnknownStream
	}
	return s.backend.seek(offset, mode)
}

// SetEcho mirrors future writes on id to echo as well; echo 0 stops
// mirroring. A stream cannot echo to itself.
func (m *Manager) SetEcho(id, echo uint32) error {
	s, ok := m.streams[id]
	if !ok {
		return ErrUnknownStream
	}
	if echo != 0 {
		if echo == id {
			return ErrUnknownStream
		}
		if _, ok := m.streams[echo]; !ok {
			return ErrUnknownStream
		}
	}
	s.echo = echo
	return nil
}

// Echo returns the stream's echo target, 0 when none.
func (m *Manager) Echo(id uint32) (uint32, error) {
	s, ok := m.streams[id]
	if !ok {
		return 0, ErrUnknownStream
	}
	return s.echo, nil
}

// WindowStream reports whether id is a window stream.
func (m *Manager) WindowStream(id uint32) bool {
	s, ok := m.streams[id]
	return ok && s.backend.windowStream()
}

// MemoryStream reports whether id is a memory stream.
func (m *Manager) MemoryStream(id uint32) bool {
	s, ok := m.streams[id]
	return ok && s.backend.memoryStream()
}

// Close destroys a stream and returns its character counts. For memory
// streams it also returns the final buffer contents. Any stream echoing
// to the closed one stops.
func (m *Manager) Close(id uint32) (Result, []byte, error) {
	s, ok := m.streams[id]
	if !ok {
		return Result{}, nil, ErrUnknownStream
	}
	var data []byte
	if s.backend.memoryStream() {
		data = s.backend.data()
	}
	err := s.backend.close()
	delete(m.streams, id)
	for _, other := range m.streams {
		if other.echo == id {
			other.echo = 0
		}
	}
	return s.result, data, err
}

// Len reports the number of open streams.
func (m *Manager) Len() int {
	return len(m.streams)
}
