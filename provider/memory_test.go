package provider_test

import (
	"testing"

	"github.com/kbdlayer/layerz/event"
	"github.com/kbdlayer/layerz/provider"
	"github.com/stretchr/testify/assert"
)

func TestMemoryReplaysInOrder(t *testing.T) {
	t.Parallel()

	input := []event.Event{
		{Sec: 0, Us: 0, Type: event.EvKey, Code: 16, Value: event.Press},
		{Sec: 0, Us: 100000, Type: event.EvKey, Code: 16, Value: event.Release},
	}
	m := provider.NewMemory(input)

	got, ok := m.ReadEvent(0)
	assert.True(t, ok)
	assert.Equal(t, input[0], got)

	got, ok = m.ReadEvent(0)
	assert.True(t, ok)
	assert.Equal(t, input[1], got)

	_, ok = m.ReadEvent(0)
	assert.False(t, ok)
	assert.Equal(t, 0, m.Remaining())
}

func TestMemoryWriteEventAccumulates(t *testing.T) {
	t.Parallel()

	m := provider.NewMemory(nil)
	m.WriteEvent(event.Event{Code: 1, Value: event.Press})
	m.WriteEvent(event.Event{Code: 1, Value: event.Release})

	assert.Len(t, m.Written, 2)
}
