package keyboard_test

import (
	"testing"

	"github.com/kbdlayer/layerz/action"
	"github.com/kbdlayer/layerz/event"
	"github.com/kbdlayer/layerz/keyboard"
	"github.com/kbdlayer/layerz/layout"
	"github.com/kbdlayer/layerz/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shiftChordLayout maps Q to S("9"), used by S1 and S2.
func shiftChordLayout(t *testing.T) layout.Layout {
	t.Helper()

	base := layout.Passthrough()
	layout.Map(&base, "Q", layout.S("9"))

	return layout.Layout{base}
}

func TestScenarioS1ShiftChordedRemap(t *testing.T) {
	t.Parallel()

	lo := shiftChordLayout(t)
	mem := provider.NewMemory([]event.Event{
		press(t, 0, 0, "Q"),
		release(t, 0, 100000, "Q"),
	})

	kb, err := keyboard.New(lo, mem)
	require.NoError(t, err)

	kb.Loop()

	got := stripPreamble(t, mem.Written)
	want := []event.Event{
		press(t, 0, 0, "LEFTSHIFT"),
		press(t, 0, 0, "9"),
		release(t, 0, 0, "LEFTSHIFT"),
		release(t, 0, 100000, "9"),
	}
	assert.Equal(t, want, got)
}

func TestScenarioS2ModifierDoesNotLeak(t *testing.T) {
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

	got := stripPreamble(t, mem.Written)
	want := []event.Event{
		press(t, 0, 0, "LEFTSHIFT"),
		press(t, 0, 0, "9"),
		release(t, 0, 0, "LEFTSHIFT"),
		press(t, 0, 100000, "W"),
		release(t, 0, 200000, "W"),
		release(t, 0, 300000, "9"),
	}
	assert.Equal(t, want, got)
}

func TestScenarioS3LayerToggle(t *testing.T) {
	t.Parallel()

	base := layout.Passthrough()
	layout.Map(&base, "TAB", layout.Lt(1))

	layer1 := layout.Passthrough()
	layout.Map(&layer1, "TAB", layout.Lt(1))
	layout.Map(&layer1, "Q", layout.K("A"))

	lo := layout.Layout{base, layer1}

	mem := provider.NewMemory([]event.Event{
		press(t, 0, 0, "Q"),
		release(t, 0, 100000, "Q"),
		press(t, 0, 200000, "TAB"),
		release(t, 0, 300000, "TAB"),
		press(t, 0, 400000, "Q"),
		release(t, 0, 500000, "Q"),
		press(t, 0, 600000, "TAB"),
		release(t, 0, 700000, "TAB"),
		press(t, 0, 800000, "Q"),
		release(t, 0, 900000, "Q"),
	})

	kb, err := keyboard.New(lo, mem)
	require.NoError(t, err)

	kb.Loop()

	got := stripPreamble(t, mem.Written)
	want := []event.Event{
		press(t, 0, 0, "Q"),
		release(t, 0, 100000, "Q"),
		press(t, 0, 400000, "A"),
		release(t, 0, 500000, "A"),
		press(t, 0, 800000, "Q"),
		release(t, 0, 900000, "Q"),
	}
	assert.Equal(t, want, got)
}

func TestScenarioS4LayerHoldAsTap(t *testing.T) {
	t.Parallel()

	base := layout.Passthrough()
	layout.Map(&base, "TAB", layout.Lh("TAB", 1))
	lo := layout.Layout{base, layout.Passthrough()}

	mem := provider.NewMemory([]event.Event{
		press(t, 0, 200000, "TAB"),
		release(t, 0, 300000, "TAB"),
	})

	kb, err := keyboard.New(lo, mem)
	require.NoError(t, err)

	kb.Loop()

	got := stripPreamble(t, mem.Written)
	want := []event.Event{
		press(t, 0, 200000, "TAB"),
		release(t, 0, 300000, "TAB"),
	}
	assert.Equal(t, want, got)
}

func holdLayout(t *testing.T) layout.Layout {
	t.Helper()

	base := layout.Passthrough()
	layout.Map(&base, "TAB", layout.Lh("TAB", 1))

	layer1 := layout.Passthrough()
	layout.Map(&layer1, "Q", layout.K("A"))

	return layout.Layout{base, layer1}
}

func TestScenarioS5LayerHoldActive(t *testing.T) {
	t.Parallel()

	lo := holdLayout(t)
	mem := provider.NewMemory([]event.Event{
		press(t, 0, 400000, "TAB"),
		press(t, 0, 500000, "Q"),
		release(t, 0, 600000, "Q"),
		release(t, 0, 700000, "TAB"),
	})

	kb, err := keyboard.New(lo, mem)
	require.NoError(t, err)

	kb.Loop()

	got := stripPreamble(t, mem.Written)
	want := []event.Event{
		press(t, 0, 500000, "A"),
		release(t, 0, 600000, "A"),
	}
	assert.Equal(t, want, got)
}

func TestScenarioS6ReleaseRoutedThroughPressTimeLayer(t *testing.T) {
	t.Parallel()

	lo := holdLayout(t)
	mem := provider.NewMemory([]event.Event{
		press(t, 2, 0, "TAB"),
		press(t, 2, 500000, "Q"),
		release(t, 2, 600000, "TAB"),
		release(t, 2, 700000, "Q"),
	})

	kb, err := keyboard.New(lo, mem)
	require.NoError(t, err)

	kb.Loop()

	got := stripPreamble(t, mem.Written)
	want := []event.Event{
		press(t, 2, 500000, "A"),
		release(t, 2, 700000, "A"),
	}
	assert.Equal(t, want, got)
}

// sanity check that the DSL helper and action package agree on what a
// ModTap looks like, guarding against a future refactor changing field
// names silently breaking the handler.
func TestShiftChordLayoutShapeSanity(t *testing.T) {
	t.Parallel()

	lo := shiftChordLayout(t)
	qCode := code(t, "Q")
	assert.Equal(t, action.ModTap, lo[0][qCode].Kind)
}
