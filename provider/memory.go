package provider

import (
	"time"

	"github.com/kbdlayer/layerz/event"
)

// Memory is the in-memory, virtual-clock Provider the keyboard core's test
// suite drives: ReadEvent replays a prepared sequence of events annotated
// with virtual timestamps (each event's own Sec/Us fields), advancing a
// virtual clock as events are consumed; WriteEvent appends to Written for
// assertions.
type Memory struct {
	input []event.Event
	pos   int
	now   time.Duration

	// Written accumulates every event the core has emitted, in order, for
	// test assertions.
	Written []event.Event
}

// NewMemory builds a Memory provider that will replay input in order.
func NewMemory(input []event.Event) *Memory {
	return &Memory{input: input}
}

// ReadEvent returns the next prepared event. If the next event's virtual
// timestamp is further than timeoutMs past the current virtual clock, it
// is left unconsumed and ReadEvent returns (zero, false) without
// advancing the clock, modeling a timeout. A timeoutMs of 0 never times
// out against the virtual clock (it always returns the next event, or
// end-of-stream), and neither does any read made while the virtual clock
// is still 0, before the first event with a non-zero timestamp has been
// consumed. Once the prepared sequence is exhausted, ReadEvent
// always returns (zero, false).
func (m *Memory) ReadEvent(timeoutMs uint32) (event.Event, bool) {
	if m.pos >= len(m.input) {
		return event.Event{}, false
	}

	next := m.input[m.pos]
	ts := next.Timestamp()

	if timeoutMs != 0 && m.now != 0 && ts > m.now+time.Duration(timeoutMs)*time.Millisecond {
		return event.Event{}, false
	}

	m.pos++
	m.now = ts

	return next, true
}

// WriteEvent appends e to Written.
func (m *Memory) WriteEvent(e event.Event) {
	m.Written = append(m.Written, e)
}

// Remaining reports how many prepared input events have not yet been
// consumed, for test assertions that the core didn't over- or
// under-consume the fixture.
func (m *Memory) Remaining() int {
	return len(m.input) - m.pos
}
