package keyboard_test

import (
	"testing"

	"github.com/kbdlayer/layerz/event"
	"github.com/kbdlayer/layerz/keycode"
	"github.com/stretchr/testify/require"
)

// code resolves a symbolic keycode name, failing the test immediately if
// the registry doesn't know it.
func code(t *testing.T, name string) uint16 {
	t.Helper()

	c, ok := keycode.Resolve(name)
	require.True(t, ok, "unresolved keycode %q", name)

	return c
}

// press builds a press event for the named key at the given timestamp.
func press(t *testing.T, sec, us uint32, name string) event.Event {
	t.Helper()

	return event.Event{Sec: sec, Us: us, Type: event.EvKey, Code: code(t, name), Value: event.Press}
}

// release builds a release event for the named key at the given
// timestamp.
func release(t *testing.T, sec, us uint32, name string) event.Event {
	t.Helper()

	return event.Event{Sec: sec, Us: us, Type: event.EvKey, Code: code(t, name), Value: event.Release}
}

// repeat builds a repeat event for the named key at the given timestamp.
func repeat(t *testing.T, sec, us uint32, name string) event.Event {
	t.Helper()

	return event.Event{Sec: sec, Us: us, Type: event.EvKey, Code: code(t, name), Value: event.Repeat}
}

// stripPreamble asserts that written begins with the init sequence
// (synthetic ENTER release, then SYN_REPORT) and returns everything
// after it, so scenario assertions only deal with the events the
// scenario's own input actually produced.
func stripPreamble(t *testing.T, written []event.Event) []event.Event {
	t.Helper()

	require.GreaterOrEqual(t, len(written), 2)
	require.Equal(t, code(t, "ENTER"), written[0].Code)
	require.Equal(t, int32(event.Release), written[0].Value)
	require.Equal(t, uint16(event.EvSyn), written[1].Type)

	return written[2:]
}
