package stdioprovider

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/kbdlayer/layerz/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenReadRoundTrips(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := &Provider{in: &buf, out: &buf, logger: log.Default()}

	want := event.Event{Sec: 7, Us: 123456, Type: event.EvKey, Code: 30, Value: event.Press}
	p.WriteEvent(want)

	got, ok := p.ReadEvent(0)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestReadEventOnEmptyStreamReportsEOF(t *testing.T) {
	t.Parallel()

	p := &Provider{in: &bytes.Buffer{}, logger: log.Default()}
	_, ok := p.ReadEvent(0)
	assert.False(t, ok)
}
