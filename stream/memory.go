package stream

import (
	"encoding/binary"
	"io"
)

// memStream is a stream over a fixed-size byte buffer. Writes past the
// end of the buffer are silently discarded; they still count at the
// manager level. Unicode characters occupy four big-endian bytes each.
type memStream struct {
	buf    []byte
	cursor int
}

func newMemStream(buf []byte) *memStream {
	owned := make([]byte, len(buf))
	copy(owned, buf)
	return &memStream{buf: owned}
}

func (m *memStream) putChar(ch byte) error {
	if m.cursor < len(m.buf) {
		m.buf[m.cursor] = ch
		m.cursor++
	}
	return nil
}

func (m *memStream) putString(s string) error {
	for _, r := range s {
		if err := m.putCharUni(r); err != nil {
			return err
		}
	}
	return nil
}

func (m *memStream) putBuffer(buf []byte) error {
	for _, ch := range buf {
		if err := m.putChar(ch); err != nil {
			return err
		}
	}
	return nil
}

func (m *memStream) putCharUni(ch rune) error {
	var enc [4]byte
	binary.BigEndian.PutUint32(enc[:], uint32(ch))
	return m.putBuffer(enc[:])
}

func (m *memStream) putBufferUni(buf []rune) error {
	for _, ch := range buf {
		if err := m.putCharUni(ch); err != nil {
			return err
		}
	}
	return nil
}

func (m *memStream) getChar() (byte, error) {
	if m.cursor >= len(m.buf) {
		return 0, io.EOF
	}
	ch := m.buf[m.cursor]
	m.cursor++
	return ch, nil
}

func (m *memStream) getBuffer(maxlen int) ([]byte, error) {
	var out []byte
	for maxlen < 0 || len(out) < maxlen {
		ch, err := m.getChar()
		if err == io.EOF {
			break
		}
		if err != nil {
			return out, err
		}
		out = append(out, ch)
	}
	return out, nil
}

func (m *memStream) getLine(maxlen int) ([]byte, error) {
	var out []byte
	for maxlen < 0 || len(out) < maxlen {
		ch, err := m.getChar()
		if err == io.EOF {
			break
		}
		if err != nil {
			return out, err
		}
		out = append(out, ch)
		if ch == '\n' {
			break
		}
	}
	return out, nil
}

func (m *memStream) getCharUni() (rune, error) {
	if m.cursor+4 > len(m.buf) {
		if m.cursor < len(m.buf) {
			m.cursor = len(m.buf)
		}
		return 0, io.EOF
	}
	ch := rune(binary.BigEndian.Uint32(m.buf[m.cursor:]))
	m.cursor += 4
	return ch, nil
}

func (m *memStream) getBufferUni(maxlen int) (string, error) {
	var out []rune
	for maxlen < 0 || len(out) < maxlen {
		ch, err := m.getCharUni()
		if err == io.EOF {
			break
		}
		if err != nil {
			return string(out), err
		}
		out = append(out, ch)
	}
	return string(out), nil
}

func (m *memStream) getLineUni(maxlen int) (string, error) {
	var out []rune
	for maxlen < 0 || len(out) < maxlen {
		ch, err := m.getCharUni()
		if err == io.EOF {
			break
		}
		if err != nil {
			return string(out), err
		}
		out = append(out, ch)
		if ch == '\n' {
			break
		}
	}
	return string(out), nil
}

func (m *memStream) position() uint32 {
	return uint32(m.cursor)
}

func (m *memStream) seek(offset int32, mode SeekMode) error {
	var pos int
	switch mode {
	case SeekStart:
		pos = int(offset)
	case SeekCurrent:
		pos = m.cursor + int(offset)
	case SeekEnd:
		pos = len(m.buf) + int(offset)
	default:
		return ErrInvalidSeek
	}
	if pos < 0 || pos > len(m.buf) {
		return ErrInvalidSeek
	}
	m.cursor = pos
	return nil
}

func (m *memStream) data() []byte {
	out := make([]byte, len(m.buf))
	copy(out, m.buf)
	return out
}

func (m *memStream) windowStream() bool { return false }
func (m *memStream) memoryStream() bool { return true }

func (m *memStream) close() error { return nil }
