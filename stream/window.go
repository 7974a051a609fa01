package stream

// Sink receives the text written through a window stream. Window
// implementations satisfy it.
type Sink interface {
	PutString(s string)
}

// winStream forwards writes to a window and rejects reads and seeks.
type winStream struct {
	sink Sink
}

func (w *winStream) putChar(ch byte) error {
	w.sink.PutString(string(rune(ch)))
	return nil
}

func (w *winStream) putString(s string) error {
	w.sink.PutString(s)
	return nil
}

func (w *winStream) putBuffer(buf []byte) error {
	for _, ch := range buf {
		w.sink.PutString(string(rune(ch)))
	}
	return nil
}

func (w *winStream) putCharUni(ch rune) error {
	w.sink.PutString(string(ch))
	return nil
}

func (w *winStream) putBufferUni(buf []rune) error {
	w.sink.PutString(string(buf))
	return nil
}

func (w *winStream) getChar() (byte, error) { return 0, ErrNotReadable }
func (w *winStream) getBuffer(int) ([]byte, error) { return nil, ErrNotReadable }
func (w *winStream) getLine(int) ([]byte, error) { return nil, ErrNotReadable }
func (w *winStream) getCharUni() (rune, error) { return 0, ErrNotReadable }
func (w *winStream) getBufferUni(int) (string, error) { return "", ErrNotReadable }
func (w *winStream) getLineUni(int) (string, error) { return "", ErrNotReadable }

func (w *winStream) position() uint32 { return 0 }
func (w *winStream) seek(int32, SeekMode) error { return ErrNotSeekable }
func (w *winStream) data() []byte { return nil }
func (w *winStream) windowStream() bool { return true }
func (w *winStream) memoryStream() bool { return false }
func (w *winStream) close() error { return nil }
