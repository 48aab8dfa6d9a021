package layout_test

import (
	"testing"

	"github.com/kbdlayer/layerz/action"
	"github.com/kbdlayer/layerz/keycode"
	"github.com/kbdlayer/layerz/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassthroughIsAllTransparent(t *testing.T) {
	t.Parallel()

	layer := layout.Passthrough()
	for _, act := range layer {
		assert.Equal(t, action.Transparent, act.Kind)
	}
}

func TestKBuildsTap(t *testing.T) {
	t.Parallel()

	act := layout.K("Q")
	want, _ := keycode.Resolve("Q")

	assert.Equal(t, action.Tap, act.Kind)
	assert.Equal(t, want, act.Key)
}

func TestSBuildsShiftModTap(t *testing.T) {
	t.Parallel()

	act := layout.S("9")
	wantKey, _ := keycode.Resolve("9")
	wantMod, _ := keycode.Resolve("LEFTSHIFT")

	assert.Equal(t, action.ModTap, act.Kind)
	assert.Equal(t, wantKey, act.Key)
	assert.Equal(t, wantMod, act.Mod)
}

func TestLhUsesDefaultDelay(t *testing.T) {
	t.Parallel()

	act := layout.Lh("TAB", 1)
	assert.Equal(t, action.LayerHold, act.Kind)
	assert.Equal(t, action.DefaultHoldDelay, act.Delay)
	assert.Equal(t, uint8(1), act.Layer)
}

func TestMapAssignsSingleCell(t *testing.T) {
	t.Parallel()

	layer := layout.Passthrough()
	layout.Map(&layer, "Q", layout.K("A"))

	qCode, _ := keycode.Resolve("Q")
	assert.Equal(t, action.Tap, layer[qCode].Kind)
}

func TestUnknownKeycodeNamePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		layout.K("NOT_A_REAL_KEY")
	})
}

func TestValidateRejectsOutOfRangeLayerTarget(t *testing.T) {
	t.Parallel()

	base := layout.Passthrough()
	layout.Map(&base, "TAB", layout.Lt(5))

	lo := layout.Layout{base}
	require.Error(t, lo.Validate())
}

func TestValidateAcceptsWellFormedLayout(t *testing.T) {
	t.Parallel()

	base := layout.Passthrough()
	layout.Map(&base, "TAB", layout.Lt(1))

	extra := layout.Passthrough()

	lo := layout.Layout{base, extra}
	require.NoError(t, lo.Validate())
}

func TestAnsiRejectsWrongRowLength(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		layout.Ansi([]string{"1"}, nil, nil, nil)
	})
}
