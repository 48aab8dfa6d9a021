//go:build linux

package evdevio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWireRoundTrip(t *testing.T) {
	t.Parallel()

	we := wireEvent{Sec: 12345, Usec: 678, Type: 1, Code: 30, Value: 1}
	got := decodeWire(encodeWire(we)[:])
	assert.Equal(t, we, got)
}

func TestWireEventSizeMatchesKernelRecord(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 24, wireEventSize)
}
