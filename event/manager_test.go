package event

import (
	"testing"
	"time"

	"github.com/dshills/goglk/keycode"
)

func TestPollEmpty(t *testing.T) {
	m := NewManager()
	if ev := m.Poll(); ev.Type != None {
		t.Errorf("Poll on empty manager = %v, want None", ev.Type)
	}
}

func TestPollFIFO(t *testing.T) {
	m := NewManager()
	m.Sink() <- Event{Type: CharInput, Win: 1, Key: keycode.Keycode{Code: keycode.Basic, Ch: 'a'}}
	m.Sink() <- Event{Type: LineInput, Win: 1, Buf: []byte("go\n")}

	first := m.Poll()
	if first.Type != CharInput || first.Key.Ch != 'a' {
		t.Fatalf("first Poll = %+v, want CharInput 'a'", first)
	}
	second := m.Poll()
	if second.Type != LineInput || string(second.Buf) != "go\n" {
		t.Fatalf("second Poll = %+v, want LineInput %q", second, "go\n")
	}
	if ev := m.Poll(); ev.Type != None {
		t.Errorf("third Poll = %v, want None", ev.Type)
	}
}

func TestPollTimerTick(t *testing.T) {
	m := NewManager()
	m.SetTimer(40)

	if ev := m.Poll(); ev.Type != None {
		t.Fatalf("Poll before tick due = %v, want None", ev.Type)
	}
	time.Sleep(50 * time.Millisecond)
	if ev := m.Poll(); ev.Type != Timer {
		t.Fatalf("Poll after tick due = %v, want Timer", ev.Type)
	}
	// The tick clock restarts when a tick is delivered.
	if ev := m.Poll(); ev.Type != None {
		t.Errorf("Poll immediately after tick = %v, want None", ev.Type)
	}
}

func TestPollGenuineBeatsTimer(t *testing.T) {
	m := NewManager()
	m.SetTimer(5)
	time.Sleep(10 * time.Millisecond)
	m.Sink() <- Event{Type: Mouse, Win: 2, X: 3, Y: 4}

	if ev := m.Poll(); ev.Type != Mouse {
		t.Fatalf("Poll = %v, want pending Mouse before synthesized Timer", ev.Type)
	}
}

func TestSetTimerZeroDisables(t *testing.T) {
	m := NewManager()
	m.SetTimer(5)
	time.Sleep(10 * time.Millisecond)
	m.SetTimer(0)

	if ev := m.Poll(); ev.Type != None {
		t.Errorf("Poll after disabling timer = %v, want None", ev.Type)
	}
}

func TestWaitBlocksForEvent(t *testing.T) {
	m := NewManager()
	go func() {
		time.Sleep(10 * time.Millisecond)
		m.Sink() <- Event{Type: Hyperlink, Win: 1, Linkval: 42}
	}()

	ev := m.Wait()
	if ev.Type != Hyperlink || ev.Linkval != 42 {
		t.Fatalf("Wait = %+v, want Hyperlink 42", ev)
	}
}

func TestWaitTimerFires(t *testing.T) {
	m := NewManager()
	m.SetTimer(10)

	start := time.Now()
	ev := m.Wait()
	if ev.Type != Timer {
		t.Fatalf("Wait = %v, want Timer", ev.Type)
	}
	if elapsed := time.Since(start); elapsed < 5*time.Millisecond {
		t.Errorf("Wait returned after %v, expected it to block until the tick", elapsed)
	}
}

func TestWaitPendingBeforeTimer(t *testing.T) {
	m := NewManager()
	m.SetTimer(50)
	m.Sink() <- Event{Type: Arrange, Win: 7}

	ev := m.Wait()
	if ev.Type != Arrange || ev.Win != 7 {
		t.Fatalf("Wait = %+v, want pending Arrange", ev)
	}
}

func TestSetTimerRestartsClock(t *testing.T) {
	m := NewManager()
	m.SetTimer(100)
	time.Sleep(50 * time.Millisecond)
	m.SetTimer(100)

	// Old clock would be almost due; the restart pushes it back.
	if ev := m.Poll(); ev.Type != None {
		t.Errorf("Poll right after restart = %v, want None", ev.Type)
	}
}

func TestTypeString(t *testing.T) {
	if got := Timer.String(); got != "Timer" {
		t.Errorf("Timer.String() = %q, want %q", got, "Timer")
	}
	if got := Type(99).String(); got != "Unknown" {
		t.Errorf("Type(99).String() = %q, want %q", got, "Unknown")
	}
}
