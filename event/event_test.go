package event_test

import (
	"testing"
	"unsafe"

	"github.com/kbdlayer/layerz/event"
	"github.com/stretchr/testify/assert"
)

// abiMirror is a locally defined stand-in for the kernel's 32-bit-time
// input_event layout (struct input_event on a kernel/userspace pair that
// still uses 32-bit timeval, e.g. i386 or an old_time32 compat ioctl path).
// amd64's native ABI instead uses word-sized (64-bit) timeval fields; the
// OS-facing adapters own widening event.Event's Sec/Us to that layout on
// the wire, the core itself only ever sees the 32-bit shape the data model
// specifies.
type abiMirror struct {
	sec   uint32
	us    uint32
	typ   uint16
	code  uint16
	value int32
}

func TestEventSizeMatchesABIMirror(t *testing.T) {
	t.Parallel()

	assert.Equal(t, unsafe.Sizeof(abiMirror{}), uintptr(event.Size))
	assert.Equal(t, unsafe.Sizeof(event.Event{}), uintptr(event.Size))
}

func TestSynBuildsReportEvent(t *testing.T) {
	t.Parallel()

	e := event.Syn(1, 500000)
	assert.Equal(t, uint16(event.EvSyn), e.Type)
	assert.Equal(t, uint16(event.SynReport), e.Code)
	assert.Equal(t, uint32(1), e.Sec)
	assert.Equal(t, uint32(500000), e.Us)
}

func TestIsScan(t *testing.T) {
	t.Parallel()

	scan := event.Event{Type: event.EvMsc, Code: event.MscScan}
	assert.True(t, scan.IsScan())

	key := event.Event{Type: event.EvKey, Code: 30}
	assert.False(t, key.IsScan())
}
