package event

import "time"

// inboundDepth bounds how many undelivered events producers can queue
// before they block.
const inboundDepth = 64

// Manager collects events from producers and hands them to the consuming
// thread in FIFO order. It is owned by a single consumer; only Sink's
// channel is safe to use from other goroutines.
type Manager struct {
	pending  []Event
	inbound  chan Event
	interval time.Duration
	lastTick time.Time
}

// NewManager returns an empty manager with no timer configured.
func NewManager() *Manager {
	return &Manager{
		inbound: make(chan Event, inboundDepth),
	}
}

// Sink returns the channel producers push genuine events into. Sends
// block once the queue is full, which keeps a runaway producer from
// growing the backlog without bound.
func (m *Manager) Sink() chan<- Event {
	return m.inbound
}

// SetTimer configures periodic Timer events every millis milliseconds.
// Zero disables the timer and forgets any tick already due. Each call
// restarts the tick clock from now.
func (m *Manager) SetTimer(millis uint32) {
	m.interval = time.Duration(millis) * time.Millisecond
	m.lastTick = time.Now()
}

// drain moves everything already sitting in the inbound channel onto the
// pending queue without blocking.
func (m *Manager) drain() {
	for {
		select {
		case ev := <-m.inbound:
			m.pending = append(m.pending, ev)
		default:
			return
		}
	}
}

// pop removes and returns the oldest pending event.
func (m *Manager) pop() (Event, bool) {
	if len(m.pending) == 0 {
		return Event{}, false
	}
	ev := m.pending[0]
	m.pending = m.pending[1:]
	return ev, true
}

// Poll returns the oldest pending event without blocking. When no
// genuine event is queued it synthesizes a Timer event if a tick is due,
// and otherwise returns an event of type None.
func (m *Manager) Poll() Event {
	m.drain()
	if ev, ok := m.pop(); ok {
		return ev
	}
	if m.interval > 0 && time.Since(m.lastTick) >= m.interval {
		m.lastTick = time.Now()
		return Event{Type: Timer}
	}
	return Event{Type: None}
}

// Wait returns the oldest pending event, blocking until one arrives.
// With a timer configured it returns a Timer event when the tick comes
// due first. Wait never returns an event of type None.
func (m *Manager) Wait() Event {
	m.drain()
	if ev, ok := m.pop(); ok {
		return ev
	}

	if m.interval <= 0 {
		return <-m.inbound
	}

	remaining := m.interval - time.Since(m.lastTick)
	if remaining <= 0 {
		m.lastTick = time.Now()
		return Event{Type: Timer}
	}

	t := time.NewTimer(remaining)
	defer t.Stop()
	select {
	case ev := <-m.inbound:
		return ev
	case <-t.C:
		m.lastTick = time.Now()
		return Event{Type: Timer}
	}
}
