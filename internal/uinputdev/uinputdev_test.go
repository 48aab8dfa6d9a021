//go:build linux

package uinputdev

import (
	"testing"

	"github.com/kbdlayer/layerz/event"
	"github.com/stretchr/testify/assert"
)

func TestEncodeLayout(t *testing.T) {
	t.Parallel()

	e := event.Event{Sec: 1, Us: 2, Type: event.EvKey, Code: 30, Value: event.Press}
	buf := encode(e)

	assert.Equal(t, uint64(1), leUint64(buf[0:8]))
	assert.Equal(t, uint64(2), leUint64(buf[8:16]))
}

func leUint64(b []byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}
