package keyboard_test

import (
	"testing"

	"github.com/kbdlayer/layerz/event"
	"github.com/kbdlayer/layerz/keyboard"
	"github.com/kbdlayer/layerz/layout"
	"github.com/kbdlayer/layerz/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// P1: a layout of only Passthrough layers emits every key event
// byte-for-byte identical to the input, modulo the init preamble.
func TestP1PassthroughIdentity(t *testing.T) {
	t.Parallel()

	lo := layout.Layout{layout.Passthrough()}
	input := []event.Event{
		press(t, 0, 0, "Q"),
		release(t, 0, 100000, "Q"),
		press(t, 1, 0, "A"),
		repeat(t, 1, 50000, "A"),
		release(t, 1, 100000, "A"),
	}
	mem := provider.NewMemory(input)

	kb, err := keyboard.New(lo, mem)
	require.NoError(t, err)

	kb.Loop()

	assert.Equal(t, input, stripPreamble(t, mem.Written))
}

// P2: a release always carries the code assigned by the layer active at
// press time, regardless of the active layer at release time.
func TestP2ReleaseRouting(t *testing.T) {
	t.Parallel()

	base := layout.Passthrough()
	layout.Map(&base, "TAB", layout.Lt(1))

	layer1 := layout.Passthrough()
	layout.Map(&layer1, "Q", layout.K("Z"))
	layout.Map(&layer1, "TAB", layout.Lt(1))

	lo := layout.Layout{base, layer1}

	mem := provider.NewMemory([]event.Event{
		press(t, 0, 0, "TAB"),       // switch to layer 1
		release(t, 0, 100000, "TAB"),
		press(t, 0, 200000, "Q"),   // resolves on layer 1 -> Z
		press(t, 0, 300000, "TAB"), // switch back to layer 0
		release(t, 0, 400000, "TAB"),
		release(t, 0, 500000, "Q"), // must still emit Z release
	})

	kb, err := keyboard.New(lo, mem)
	require.NoError(t, err)

	kb.Loop()

	got := stripPreamble(t, mem.Written)
	require.Len(t, got, 2)
	assert.Equal(t, code(t, "Z"), got[0].Code)
	assert.Equal(t, int32(event.Press), got[0].Value)
	assert.Equal(t, code(t, "Z"), got[1].Code)
	assert.Equal(t, int32(event.Release), got[1].Value)
}

// P3: every emitted modifier press is matched by exactly one release
// before the next non-modifier press.
func TestP3ModifierBalance(t *testing.T) {
	t.Parallel()

	lo := shiftChordLayout(t)
	mem := provider.NewMemory([]event.Event{
		press(t, 0, 0, "Q"),
		press(t, 0, 100000, "W"),
		release(t, 0, 200000, "W"),
		release(t, 0, 300000, "Q"),
	})

	kb, err := keyboard.New(lo, mem)
	require.NoError(t, err)

	kb.Loop()

	shiftCode := code(t, "LEFTSHIFT")
	chordCode := code(t, "9")

	held := false
	for _, e := range stripPreamble(t, mem.Written) {
		if e.Code != shiftCode {
			if !held || e.Code == chordCode {
				continue
			}
			t.Fatalf("unrelated non-modifier event %+v observed while shift still held", e)
		}

		switch e.Value {
		case event.Press:
			require.False(t, held, "shift pressed again while already held")
			held = true
		case event.Release:
			require.True(t, held, "shift released while not held")
			held = false
		}
	}

	assert.False(t, held, "shift left held at end of stream")
}

// P4: Transparent on a non-base layer defers to the base layer's action;
// Transparent on the base layer is identity.
func TestP4TransparentDepthOneDefersToBase(t *testing.T) {
	t.Parallel()

	base := layout.Passthrough()
	layout.Map(&base, "Q", layout.K("Z"))
	layout.Map(&base, "TAB", layout.Lt(1))

	layer1 := layout.Passthrough() // Q left Transparent
	layout.Map(&layer1, "TAB", layout.Lt(1))

	lo := layout.Layout{base, layer1}

	mem := provider.NewMemory([]event.Event{
		press(t, 0, 0, "TAB"),
		release(t, 0, 50000, "TAB"),
		press(t, 0, 100000, "Q"),
		release(t, 0, 200000, "Q"),
	})

	kb, err := keyboard.New(lo, mem)
	require.NoError(t, err)
	kb.Loop()

	got := stripPreamble(t, mem.Written)
	require.Len(t, got, 2)
	assert.Equal(t, code(t, "Z"), got[0].Code)
	assert.Equal(t, code(t, "Z"), got[1].Code)
}

func TestP4TransparentOnBaseLayerIsIdentity(t *testing.T) {
	t.Parallel()

	mem := provider.NewMemory([]event.Event{
		press(t, 0, 0, "Q"),
		release(t, 0, 100000, "Q"),
	})

	kb, err := keyboard.New(layout.Layout{layout.Passthrough()}, mem)
	require.NoError(t, err)
	kb.Loop()

	got := stripPreamble(t, mem.Written)
	assert.Equal(t, []event.Event{
		press(t, 0, 0, "Q"),
		release(t, 0, 100000, "Q"),
	}, got)
}

// P5: applying Lt(n) twice from the base layer returns to the base
// layer.
func TestP5ToggleSymmetry(t *testing.T) {
	t.Parallel()

	base := layout.Passthrough()
	layout.Map(&base, "TAB", layout.Lt(1))

	lo := layout.Layout{base, layout.Passthrough()}

	mem := provider.NewMemory([]event.Event{
		press(t, 0, 0, "TAB"),
		release(t, 0, 100000, "TAB"),
		press(t, 0, 200000, "TAB"),
		release(t, 0, 300000, "TAB"),
	})

	kb, err := keyboard.New(lo, mem)
	require.NoError(t, err)

	kb.Loop()

	assert.Equal(t, uint8(0), kb.Layer())
}

// P6: a hold released at or after its delay commits to the hold
// interpretation, not the tap one, even with no other key pressed in
// between.
func TestP6HoldAtBoundaryIsNotATap(t *testing.T) {
	t.Parallel()

	base := layout.Passthrough()
	layout.Map(&base, "TAB", layout.Lh("TAB", 1))
	lo := layout.Layout{base, layout.Passthrough()}

	mem := provider.NewMemory([]event.Event{
		press(t, 0, 0, "TAB"),
		release(t, 0, 200000, "TAB"), // exactly at the 200ms boundary
	})

	kb, err := keyboard.New(lo, mem)
	require.NoError(t, err)
	kb.Loop()

	assert.Empty(t, stripPreamble(t, mem.Written))
}

// P7: a repeat on a Tap cell emits nothing.
func TestP7RepeatSuppressionOnTap(t *testing.T) {
	t.Parallel()

	base := layout.Passthrough()
	layout.Map(&base, "Q", layout.K("Z"))

	mem := provider.NewMemory([]event.Event{
		press(t, 0, 0, "Q"),
		repeat(t, 0, 50000, "Q"),
		release(t, 0, 100000, "Q"),
	})

	kb, err := keyboard.New(layout.Layout{base}, mem)
	require.NoError(t, err)

	kb.Loop()

	got := stripPreamble(t, mem.Written)
	require.Len(t, got, 2)
	assert.Equal(t, int32(event.Press), got[0].Value)
	assert.Equal(t, int32(event.Release), got[1].Value)
}

// P7 (ModTap variant): a repeat on a ModTap cell emits nothing either.
func TestP7RepeatSuppressionOnModTap(t *testing.T) {
	t.Parallel()

	lo := shiftChordLayout(t)
	mem := provider.NewMemory([]event.Event{
		press(t, 0, 0, "Q"),
		repeat(t, 0, 50000, "Q"),
		release(t, 0, 100000, "Q"),
	})

	kb, err := keyboard.New(lo, mem)
	require.NoError(t, err)

	kb.Loop()

	// press: shift-press, 9-press, shift-release (lookahead pulls the
	// repeat, which ModTap suppresses outright, consuming it); release:
	// 9-release.
	got := stripPreamble(t, mem.Written)
	require.Len(t, got, 4)
	assert.Equal(t, code(t, "9"), got[3].Code)
	assert.Equal(t, int32(event.Release), got[3].Value)
}
