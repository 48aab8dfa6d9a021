//go:build linux

package keycode_test

import (
	"testing"

	"github.com/kbdlayer/layerz/keycode"
	"github.com/stretchr/testify/assert"
)

func TestResolveOrdinaryKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want uint16
	}{
		{"A", 30},
		{"KEY_A", 30},
		{"ENTER", 28},
		{"SPACE", 57},
		{"LEFTSHIFT", 42},
		{"BTN_LEFT", 0x110},
		{"REL_WHEEL", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := keycode.Resolve(tt.name)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	t.Parallel()

	_, ok := keycode.Resolve("NOT_A_REAL_KEY")
	assert.False(t, ok)
}

func TestResolveNameRoundTrip(t *testing.T) {
	t.Parallel()

	code, ok := keycode.Resolve("KEY_A")
	assert.True(t, ok)

	name, ok := keycode.ResolveName(code)
	assert.True(t, ok)
	assert.Equal(t, "KEY_A", name)
}

func TestResolveNameUnknownCode(t *testing.T) {
	t.Parallel()

	_, ok := keycode.ResolveName(0xffff)
	assert.False(t, ok)
}
