package glk

// WindowOpen creates a window. With parent 0 it creates the first
// window of the session; otherwise it splits parent with the given
// method (nil means a default split). Every new window gets its own
// write-only stream.
func (g *Glk) WindowOpen(parent WindowID, method *SplitMethod, kind WindowKind, rock int32) (WindowID, error) {
	var id WindowID
	var err error
	if parent == 0 {
		id, err = g.wins.Open(kind, rock)
	} else {
		var m SplitMethod
		if method != nil {
			m = *method
		}
		_, id, err = g.wins.Split(parent, m, kind, rock)
	}
	if err != nil {
		return 0, err
	}

	impl, err := g.wins.Impl(id)
	if err != nil {
		return 0, err
	}
	sid := g.streams.OpenWindow(impl)
	if err := g.wins.SetStreamID(id, sid); err != nil {
		return 0, err
	}
	return id, nil
}

// WindowClose closes a window and its whole subtree, releasing the
// streams attached to every closed window. It returns the named
// window's stream counts.
func (g *Glk) WindowClose(id WindowID) (StreamResult, error) {
	sid, err := g.wins.StreamID(id)
	if err != nil {
		return StreamResult{}, err
	}

	removed, err := g.wins.Close(id)
	if err != nil {
		return StreamResult{}, err
	}

	var result StreamResult
	for _, r := range removed {
		if r.Stream == 0 {
			continue
		}
		res, _, err := g.streams.Close(r.Stream)
		if err != nil {
			return StreamResult{}, err
		}
		if r.Stream == sid {
			result = res
		}
		g.wins.ClearEchoTarget(r.Stream)
		if g.current == r.Stream {
			g.current = 0
		}
	}
	return result, nil
}

// WindowGetRoot returns the root window, 0 when none exists.
func (g *Glk) WindowGetRoot() WindowID {
	return g.wins.Root()
}

// WindowGetKind returns a window's kind.
func (g *Glk) WindowGetKind(id WindowID) (WindowKind, error) {
	return g.wins.Kind(id)
}

// WindowGetRock returns a window's rock value.
func (g *Glk) WindowGetRock(id WindowID) (int32, error) {
	return g.wins.Rock(id)
}

// WindowGetParent returns a window's parent pair; the root has none.
func (g *Glk) WindowGetParent(id WindowID) (WindowID, bool) {
	return g.wins.Parent(id)
}

// WindowGetSibling returns the other child of a window's parent pair.
func (g *Glk) WindowGetSibling(id WindowID) (WindowID, bool) {
	return g.wins.Sibling(id)
}

// WindowGetStream returns the stream attached to a window.
func (g *Glk) WindowGetStream(id WindowID) (StreamID, error) {
	return g.wins.StreamID(id)
}

// WindowList returns every live window ID in ascending order.
func (g *Glk) WindowList() []WindowID {
	return g.wins.Windows()
}

// WindowGetSize reports a window's extent in its natural units.
func (g *Glk) WindowGetSize(id WindowID) (width, height uint32, err error) {
	impl, err := g.wins.Impl(id)
	if err != nil {
		return 0, 0, err
	}
	width, height = impl.Size()
	return width, height, nil
}

// WindowMoveCursor positions a text grid's output cursor.
func (g *Glk) WindowMoveCursor(id WindowID, x, y uint32) error {
	impl, err := g.wins.Impl(id)
	if err != nil {
		return err
	}
	impl.MoveCursor(x, y)
	return nil
}

// WindowClear erases a window's contents.
func (g *Glk) WindowClear(id WindowID) error {
	impl, err := g.wins.Impl(id)
	if err != nil {
		return err
	}
	impl.Clear()
	return nil
}

// WindowGetArrangement returns a pair window's split method and key
// child.
func (g *Glk) WindowGetArrangement(id WindowID) (SplitMethod, WindowID, error) {
	return g.wins.Arrangement(id)
}

// WindowSetArrangement changes a pair window's split method and key
// child; key 0 keeps the current one.
func (g *Glk) WindowSetArrangement(id WindowID, method SplitMethod, key WindowID) error {
	return g.wins.SetArrangement(id, method, key)
}

// WindowSetEchoStream mirrors a window's output onto another stream;
// sid 0 stops mirroring.
func (g *Glk) WindowSetEchoStream(id WindowID, sid StreamID) error {
	wsid, err := g.wins.StreamID(id)
	if err != nil {
		return err
	}
	if err := g.streams.SetEcho(wsid, sid); err != nil {
		return err
	}
	return g.wins.SetEchoStream(id, sid)
}

// WindowGetEchoStream returns the stream a window echoes to, 0 when
// none.
func (g *Glk) WindowGetEchoStream(id WindowID) (StreamID, error) {
	return g.wins.EchoStream(id)
}
