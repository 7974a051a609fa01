// Package keycode translates raw input into the Glk keycode vocabulary.
//
// The Glk input model describes keys with a small fixed set of codes:
// printable Latin-1 characters plus a handful of special keys. This
// package owns that vocabulary and the translation from the two input
// sources a front end is likely to have: plain runes, and tcell key
// events from a terminal.
package keycode

import "github.com/gdamore/tcell/v2"

// Code identifies a key in the Glk input vocabulary.
type Code int

const (
	// Unknown is any key Glk has no code for.
	Unknown Code = iota
	// Basic is a printable character; the character is in Keycode.Ch.
	Basic
	Left
	Right
	Up
	Down
	Return
	Delete
	Escape
	Tab
	PageUp
	PageDown
	Home
	End
	Func1
	Func2
	Func3
	Func4
	Func5
	Func6
	Func7
	Func8
	Func9
	Func10
	Func11
	Func12
)

var codeNames = map[Code]string{
	Unknown:  "Unknown",
	Basic:    "Basic",
	Left:     "Left",
	Right:    "Right",
	Up:       "Up",
	Down:     "Down",
	Return:   "Return",
	Delete:   "Delete",
	Escape:   "Escape",
	Tab:      "Tab",
	PageUp:   "PageUp",
	PageDown: "PageDown",
	Home:     "Home",
	End:      "End",
	Func1:    "F1",
	Func2:    "F2",
	Func3:    "F3",
	Func4:    "F4",
	Func5:    "F5",
	Func6:    "F6",
	Func7:    "F7",
	Func8:    "F8",
	Func9:    "F9",
	Func10:   "F10",
	Func11:   "F11",
	Func12:   "F12",
}

// String returns a human-readable name for the code.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Keycode is a translated key. Ch is meaningful only when Code is Basic.
type Keycode struct {
	Code Code
	Ch   rune
}

// FromRune translates a plain character. Printable Latin-1 characters
// (32..126) become Basic keycodes; carriage return and newline both map
// to Return; everything else is Unknown.
func FromRune(r rune) Keycode {
	if r >= 32 && r < 127 {
		return Keycode{Code: Basic, Ch: r}
	}
	if r == '\r' || r == '\n' {
		return Keycode{Code: Return}
	}
	return Keycode{Code: Unknown}
}

// FromTcell translates a tcell key event into a Glk keycode.
func FromTcell(ev *tcell.EventKey) Keycode {
	switch ev.Key() {
	case tcell.KeyRune:
		return FromRune(ev.Rune())
	case tcell.KeyEnter:
		return Keycode{Code: Return}
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		return Keycode{Code: Delete}
	case tcell.KeyEscape:
		return Keycode{Code: Escape}
	case tcell.KeyTab:
		return Keycode{Code: Tab}
	case tcell.KeyUp:
		return Keycode{Code: Up}
	case tcell.KeyDown:
		return Keycode{Code: Down}
	case tcell.KeyLeft:
		return Keycode{Code: Left}
	case tcell.KeyRight:
		return Keycode{Code: Right}
	case tcell.KeyPgUp:
		return Keycode{Code: PageUp}
	case tcell.KeyPgDn:
		return Keycode{Code: PageDown}
	case tcell.KeyHome:
		return Keycode{Code: Home}
	case tcell.KeyEnd:
		return Keycode{Code: End}
	case tcell.KeyF1:
		return Keycode{Code: Func1}
	case tcell.KeyF2:
		return Keycode{Code: Func2}
	case tcell.KeyF3:
		return Keycode{Code: Func3}
	case tcell.KeyF4:
		return Keycode{Code: Func4}
	case tcell.KeyF5:
		return Keycode{Code: Func5}
	case tcell.KeyF6:
		return Keycode{Code: Func6}
	case tcell.KeyF7:
		return Keycode{Code: Func7}
	case tcell.KeyF8:
		return Keycode{Code: Func8}
	case tcell.KeyF9:
		return Keycode{Code: Func9}
	case tcell.KeyF10:
		return Keycode{Code: Func10}
	case tcell.KeyF11:
		return Keycode{Code: Func11}
	case tcell.KeyF12:
		return Keycode{Code: Func12}
	default:
		return Keycode{Code: Unknown}
	}
}
