package glk

// Select blocks until an event is available and returns it. With a
// timer configured it returns Timer events between genuine ones; it
// never returns an event of type None.
func (g *Glk) Select() Event {
	return g.events.Wait()
}

// SelectPoll returns a pending event without blocking, an event of type
// None when nothing is pending.
func (g *Glk) SelectPoll() Event {
	return g.events.Poll()
}

// EventSink returns the channel a display front end pushes input events
// into. It is the only part of the session safe to use from another
// goroutine.
func (g *Glk) EventSink() chan<- Event {
	return g.events.Sink()
}

// RequestTimerEvents asks for a Timer event every millis milliseconds;
// 0 cancels.
func (g *Glk) RequestTimerEvents(millis uint32) {
	g.events.SetTimer(millis)
}

// RequestLineEvent begins Latin-1 line input on a window. The window's
// implementation collects the line and exactly one LineInput event
// comes back through Select, carrying the line in Buf.
func (g *Glk) RequestLineEvent(id WindowID, initial string, maxlen int) error {
	impl, err := g.wins.Impl(id)
	if err != nil {
		return err
	}
	sink := g.events.Sink()
	impl.ReadLine(initial, maxlen, func(line string) {
		sink <- Event{Type: EventLineInput, Win: id, Buf: latin1Bytes(line)}
	})
	return nil
}

// RequestLineEventUni begins Unicode line input on a window; the
// resulting LineInput event carries the line in BufUni.
func (g *Glk) RequestLineEventUni(id WindowID, initial string, maxlen int) error {
	impl, err := g.wins.Impl(id)
	if err != nil {
		return err
	}
	sink := g.events.Sink()
	impl.ReadLine(initial, maxlen, func(line string) {
		sink <- Event{Type: EventLineInput, Win: id, BufUni: []rune(line)}
	})
	return nil
}

// latin1Bytes narrows a string to Latin-1, one byte per character.
// Characters outside Latin-1 become '?'.
func latin1Bytes(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r < 256 {
			out = append(out, byte(r))
		} else {
			out = append(out, '?')
		}
	}
	return out
}
