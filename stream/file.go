package stream

import (
	"bufio"
	"io"
	"os"
)

// fileStream is a stream over an operating system file. Writes go
// straight to the file; reads go through a buffered reader that is
// discarded (after rewinding the file past its unread bytes) whenever
// the caller writes or seeks, so the two sides always agree on the
// stream position. Unicode characters are stored as UTF-8.
type fileStream struct {
	f *os.File
	r *bufio.Reader
}

func openFile(path string, mode FileMode) (*fileStream, error) {
	var flags int
	switch mode {
	case Read:
		flags = os.O_RDONLY
	case Write:
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case ReadWrite:
		flags = os.O_RDWR | os.O_CREATE
	case WriteAppend:
		flags = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, err
	}
	return &fileStream{f: f}, nil
}

func openTemp(path string) (*fileStream, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, err
	}
	return &fileStream{f: f}, nil
}

func (s *fileStream) reader() *bufio.Reader {
	if s.r == nil {
		s.r = bufio.NewReader(s.f)
	}
	return s.r
}

// syncWrites rewinds the file past the reader's unread bytes and drops
// the reader, so the next write lands at the logical stream position.
func (s *fileStream) syncWrites() error {
	if s.r == nil {
		return nil
	}
	if n := s.r.Buffered(); n > 0 {
		if _, err := s.f.Seek(-int64(n), io.SeekCurrent); err != nil {
			return err
		}
	}
	s.r = nil
	return nil
}

func (s *fileStream) putChar(ch byte) error {
	return s.putBuffer([]byte{ch})
}

func (s *fileStream) putString(str string) error {
	return s.putBuffer([]byte(str))
}

func (s *fileStream) putBuffer(buf []byte) error {
	if err := s.syncWrites(); err != nil {
		return err
	}
	_, err := s.f.Write(buf)
	return err
}

func (s *fileStream) putCharUni(ch rune) error {
	return s.putString(string(ch))
}

func (s *fileStream) putBufferUni(buf []rune) error {
	return s.putString(string(buf))
}

func (s *fileStream) getChar() (byte, error) {
	return s.reader().ReadByte()
}

func (s *fileStream) getBuffer(maxlen int) ([]byte, error) {
	if maxlen < 0 {
		return io.ReadAll(s.reader())
	}
	out := make([]byte, maxlen)
	n, err := io.ReadFull(s.reader(), out)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		err = nil
	}
	return out[:n], err
}

func (s *fileStream) getLine(maxlen int) ([]byte, error) {
	var out []byte
	for maxlen < 0 || len(out) < maxlen {
		ch, err := s.reader().ReadByte()
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

// getCharUni decodes one UTF-8 sequence by hand so malformed input
// yields a DecodeError with the byte offset instead of a replacement
// character.
func (s *fileStream) getCharUni() (rune, error) {
	offset := s.position()
	lead, err := s.reader().ReadByte()
	if err != nil {
		return 0, err
	}

	var ch rune
	var more int
	switch {
	case lead&0x80 == 0x00:
		return rune(lead), nil
	case lead&0xe0 == 0xc0:
		ch, more = rune(lead&0x1f), 1
	case lead&0xf0 == 0xe0:
		ch, more = rune(lead&0x0f), 2
	case lead&0xf8 == 0xf0:
		ch, more = rune(lead&0x07), 3
	default:
		return 0, &DecodeError{Offset: offset, Reason: "invalid lead byte"}
	}

	for i := 0; i < more; i++ {
		cont, err := s.reader().ReadByte()
		if err == io.EOF {
			return 0, &DecodeError{Offset: offset, Reason: "truncated sequence"}
		}
		if err != nil {
			return 0, err
		}
		if cont&0xc0 != 0x80 {
			return 0, &DecodeError{Offset: offset, Reason: "invalid continuation byte"}
		}
		ch = ch<<6 | rune(cont&0x3f)
	}
	return ch, nil
}

func (s *fileStream) getBufferUni(maxlen int) (string, error) {
	var out []rune
	for maxlen < 0 || len(out) < maxlen {
		ch, err := s.getCharUni()
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

func (s *fileStream) getLineUni(maxlen int) (string, error) {
	var out []rune
	for maxlen < 0 || len(out) < maxlen {
		ch, err := s.getCharUni()
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

func (s *fileStream) position() uint32 {
	pos, err := s.f.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0
	}
	if s.r != nil {
		pos -= int64(s.r.Buffered())
	}
	return uint32(pos)
}

func (s *fileStream) seek(offset int32, mode SeekMode) error {
	var whence int
	switch mode {
	case SeekStart:
		if offset < 0 {
			return ErrInvalidSeek
		}
		whence = io.SeekStart
	case SeekCurrent:
		if int64(s.position())+int64(offset) < 0 {
			return ErrInvalidSeek
		}
		// The file offset sits ahead of the logical position by the
		// reader's unread bytes; fold them into the delta.
		if s.r != nil {
			offset -= int32(s.r.Buffered())
		}
		whence = io.SeekCurrent
	case SeekEnd:
		if offset > 0 {
			return ErrInvalidSeek
		}
		whence = io.SeekEnd
	default:
		return ErrInvalidSeek
	}
	if _, err := s.f.Seek(int64(offset), whence); err != nil {
		return err
	}
	s.r = nil
	return nil
}

func (s *fileStream) data() []byte { return nil }

func (s *fileStream) windowStream() bool { return false }
func (s *fileStream) memoryStream() bool { return false }

func (s *fileStream) close() error {
	return s.f.Close()
}
