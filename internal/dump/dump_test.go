package dump_test

import (
	"strings"
	"testing"

	"github.com/kbdlayer/layerz/internal/dump"
	"github.com/kbdlayer/layerz/layout"
	"github.com/stretchr/testify/assert"
)

func TestWritePlainSkipsTransparentCells(t *testing.T) {
	t.Parallel()

	base := layout.Passthrough()
	layout.Map(&base, "Q", layout.K("Z"))
	layout.Map(&base, "TAB", layout.Lt(1))

	var buf strings.Builder
	dump.Write(&buf, layout.Layout{base}, false)

	out := buf.String()
	assert.Contains(t, out, "layer 0")
	assert.Contains(t, out, "tap Z")
	assert.Contains(t, out, "toggle layer 1")
	assert.NotContains(t, out, "CAPSLOCK")
}

func TestWritePlainHasNoEscapeCodesWhenNotATTY(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	dump.Write(&buf, layout.Layout{layout.Passthrough()}, false)

	assert.NotContains(t, buf.String(), "\x1b[")
}
