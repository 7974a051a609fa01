// Package wintree maintains the Glk window tree.
//
// Windows form a strict binary tree: every visible window is a leaf, and
// every interior node is a pair window created by splitting an existing
// window. Each pair remembers the split method that created it and a key
// child, the leaf whose size constraint governs the split. The tree
// enforces the structural invariants (a single root, pairs with exactly
// two children, parent links mirroring child links) and keeps them
// across splits and closes.
//
// The tree stores bookkeeping only. Rendering, input, and text storage
// live behind the Impl interface supplied by the caller; the tree
// creates one Impl per leaf window and hands it back on request.
package wintree

import "sort"

// Kind classifies a window.
type Kind int

const (
	// Blank windows display nothing.
	Blank Kind = iota
	// TextBuffer windows hold a scrolling text transcript.
	TextBuffer
	// TextGrid windows hold a fixed grid of characters.
	TextGrid
	// Graphics windows hold a pixel canvas.
	Graphics
	// Pair windows are interior nodes created by splitting.
	Pair
)

var kindNames = map[Kind]string{
	Blank:      "Blank",
	TextBuffer: "TextBuffer",
	TextGrid:   "TextGrid",
	Graphics:   "Graphics",
	Pair:       "Pair",
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// SplitPosition says where the new window goes relative to the one
// being split.
type SplitPosition int

const (
	Above SplitPosition = iota
	Below
	Left
	Right
)

// SplitAmount sizes the new window: either a fixed number of rows or
// columns, or a percentage of the split window's extent.
type SplitAmount struct {
	Proportional bool
	Value        uint32
}

// FixedAmount sizes the new window at a fixed number of rows or columns.
func FixedAmount(n uint32) SplitAmount {
	return SplitAmount{Value: n}
}

// ProportionalAmount sizes the new window at a percentage of the split
// window's extent.
func ProportionalAmount(pct uint32) SplitAmount {
	return SplitAmount{Proportional: true, Value: pct}
}

// SplitMethod describes how a pair divides its space.
type SplitMethod struct {
	Position SplitPosition
	Amount   SplitAmount
	Border   bool
}

// Impl is the display side of a leaf window. The tree creates one per
// leaf through the factory given to New and otherwise never calls it;
// higher layers drive it for output and input.
type Impl interface {
	// PutString appends text to the window.
	PutString(s string)
	// MoveCursor positions the output cursor (text grids).
	MoveCursor(x, y uint32)
	// Clear erases the window's contents.
	Clear()
	// Size reports the window's extent in its natural units.
	Size() (width, height uint32)
	// ReadLine begins a line input request. The implementation calls
	// deliver exactly once with the completed line.
	ReadLine(initial string, maxlen int, deliver func(line string))
}

type window struct {
	id     uint32
	kind   Kind
	rock   int32
	parent uint32

	// Pair bookkeeping; zero on leaves.
	child1 uint32
	child2 uint32
	key    uint32
	method SplitMethod

	// Stream IDs owned by higher layers; zero when unset.
	stream uint32
	echo   uint32

	impl Impl
}

// Tree is the window tree. It is not safe for concurrent use.
type Tree struct {
	windows map[uint32]*window
	root    uint32
	nextID  uint32
	newImpl func(id uint32, kind Kind) Impl
}

// New returns an empty tree. The factory is invoked once for every leaf
// window the tree creates.
func New(factory func(id uint32, kind Kind) Impl) *Tree {
	return &Tree{
		windows: make(map[uint32]*window),
		nextID:  1,
		newImpl: factory,
	}
}

func (t *Tree) alloc(kind Kind, rock int32) *window {
	w := &window{
		id:   t.nextID,
		kind: kind,
		rock: rock,
	}
	if kind != Pair {
		w.impl = t.newImpl(w.id, kind)
	}
	t.nextID++
	t.windows[w.id] = w
	return w
}

// Open creates the first window. It fails once a root exists; all later
// windows come from Split.
func (t *Tree) Open(kind Kind, rock int32) (uint32, error) {
	if kind == Pair {
		return 0, ErrPairWindow
	}
	if t.root != 0 {
		return 0, ErrRootExists
	}
	w := t.alloc(kind, rock)
	t.root = w.id
	return w.id, nil
}

// Split divides an existing window. A new pair window takes the target's
// place in the tree, with the target as its first child and a fresh leaf
// of the given kind as its second child and key. Split returns the pair
// and the new leaf.
func (t *Tree) Split(target uint32, method SplitMethod, kind Kind, rock int32) (pairID, newID uint32, err error) {
	if kind == Pair {
		return 0, 0, ErrPairWindow
	}
	old, ok := t.windows[target]
	if !ok {
		return 0, 0, ErrUnknownWindow
	}

	leaf := t.alloc(kind, rock)
	pair := t.alloc(Pair, 0)
	pair.child1 = old.id
	pair.child2 = leaf.id
	pair.key = leaf.id
	pair.method = method

	pair.parent = old.parent
	if old.parent == 0 {
		t.root = pair.id
	} else {
		gp := t.windows[old.parent]
		switch old.id {
		case gp.child1:
			gp.child1 = pair.id
		case gp.child2:
			gp.child2 = pair.id
		default:
			panic("wintree: corrupt parent link")
		}
	}
	old.parent = pair.id
	leaf.parent = pair.id

	return pair.id, leaf.id, nil
}

// Removed describes one window destroyed by Close.
type Removed struct {
	ID     uint32
	Kind   Kind
	Stream uint32
}

// collect gathers id and every window below it.
func (t *Tree) collect(id uint32, out *[]Removed) {
	w := t.windows[id]
	*out = append(*out, Removed{ID: w.id, Kind: w.kind, Stream: w.stream})
	if w.kind == Pair {
		t.collect(w.child1, out)
		t.collect(w.child2, out)
	}
}

// Close destroys a window and everything below it. Closing a non-root
// window also destroys its parent pair; the sibling takes the pair's
// place. Close reports every destroyed window so callers can release the
// streams attached to them.
func (t *Tree) Close(id uint32) ([]Removed, error) {
	w, ok := t.windows[id]
	if !ok {
		return nil, ErrUnknownWindow
	}

	var removed []Removed
	t.collect(id, &removed)

	if w.parent == 0 {
		t.root = 0
	} else {
		pair := t.windows[w.parent]
		sibling := pair.child1
		if sibling == id {
			sibling = pair.child2
		}
		sib := t.windows[sibling]
		sib.parent = pair.parent
		if pair.parent == 0 {
			t.root = sibling
		} else {
			gp := t.windows[pair.parent]
			switch pair.id {
			case gp.child1:
				gp.child1 = sibling
			case gp.child2:
				gp.child2 = sibling
			default:
				panic("wintree: corrupt parent link")
			}
		}
		removed = append(removed, Removed{ID: pair.id, Kind: Pair, Stream: pair.stream})
	}

	gone := make(map[uint32]bool, len(removed))
	for _, r := range removed {
		gone[r.ID] = true
		delete(t.windows, r.ID)
	}

	// A surviving pair may have keyed its size to a window that just
	// went away. Its constraint is gone; the key becomes unset.
	for _, s := range t.windows {
		if s.kind == Pair && gone[s.key] {
			s.key = 0
		}
	}

	return removed, nil
}

// Root returns the root window, or 0 when the tree is empty.
func (t *Tree) Root() uint32 {
	return t.root
}

// Parent returns a window's parent pair. The root has none.
func (t *Tree) Parent(id uint32) (uint32, bool) {
	w, ok := t.windows[id]
	if !ok || w.parent == 0 {
		return 0, false
	}
	return w.parent, true
}

// Sibling returns the other child of a window's parent pair.
func (t *Tree) Sibling(id uint32) (uint32, bool) {
	w, ok := t.windows[id]
	if !ok || w.parent == 0 {
		return 0, false
	}
	pair := t.windows[w.parent]
	if pair.child1 == id {
		return pair.child2, true
	}
	return pair.child1, true
}

// Arrangement returns a pair's split method and key child.
func (t *Tree) Arrangement(id uint32) (SplitMethod, uint32, error) {
	w, ok := t.windows[id]
	if !ok {
		return SplitMethod{}, 0, ErrUnknownWindow
	}
	if w.kind != Pair {
		return SplitMethod{}, 0, ErrNotPair
	}
	return w.method, w.key, nil
}

// SetArrangement changes a pair's split method and key child. A zero key
// keeps the current one; a nonzero key must name a leaf in the tree.
func (t *Tree) SetArrangement(id uint32, method SplitMethod, key uint32) error {
	w, ok := t.windows[id]
	if !ok {
		return ErrUnknownWindow
	}
	if w.kind != Pair {
		return ErrNotPair
	}
	if key != 0 {
		k, ok := t.windows[key]
		if !ok {
			return ErrUnknownWindow
		}
		if k.kind == Pair {
			return ErrNotLeaf
		}
		w.key = key
	}
	w.method = method
	return nil
}

// Windows returns every live window ID in ascending order.
func (t *Tree) Windows() []uint32 {
	ids := make([]uint32, 0, len(t.windows))
	for id := range t.windows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Kind returns a window's kind.
func (t *Tree) Kind(id uint32) (Kind, error) {
	w, ok := t.windows[id]
	if !ok {
		return 0, ErrUnknownWindow
	}
	return w.kind, nil
}

// Rock returns the caller's rock value for a window.
func (t *Tree) Rock(id uint32) (int32, error) {
	w, ok := t.windows[id]
	if !ok {
		return 0, ErrUnknownWindow
	}
	return w.rock, nil
}

// StreamID returns the stream attached to a window, 0 when unset.
func (t *Tree) StreamID(id uint32) (uint32, error) {
	w, ok := t.windows[id]
	if !ok {
		return 0, ErrUnknownWindow
	}
	return w.stream, nil
}

// SetStreamID attaches a stream to a window.
func (t *Tree) SetStreamID(id, sid uint32) error {
	w, ok := t.windows[id]
	if !ok {
		return ErrUnknownWindow
	}
	w.stream = sid
	return nil
}

// EchoStream returns the stream a window's output is echoed to, 0 when
// none.
func (t *Tree) EchoStream(id uint32) (uint32, error) {
	w, ok := t.windows[id]
	if !ok {
		return 0, ErrUnknownWindow
	}
	return w.echo, nil
}

// SetEchoStream sets or clears (with 0) a window's echo stream.
func (t *Tree) SetEchoStream(id, sid uint32) error {
	w, ok := t.windows[id]
	if !ok {
		return ErrUnknownWindow
	}
	w.echo = sid
	return nil
}

// ClearEchoTarget removes sid as the echo stream of every window that
// references it. Used when a stream closes.
func (t *Tree) ClearEchoTarget(sid uint32) {
	for _, w := range t.windows {
		if w.echo == sid {
			w.echo = 0
		}
	}
}

// Impl returns the display implementation of a leaf window.
func (t *Tree) Impl(id uint32) (Impl, error) {
	w, ok := t.windows[id]
	if !ok {
		return nil, ErrUnknownWindow
	}
	if w.kind == Pair {
		return nil, ErrNotLeaf
	}
	return w.impl, nil
}

// Len reports the number of live windows, pairs included.
func (t *Tree) Len() int {
	return len(t.windows)
}
