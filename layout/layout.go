// Package layout provides the pure, data-only DSL for building keyboard
// layouts: layers of 256 actions indexed by keycode, and the small set of
// helper constructors (K, S, Ctrl, AltGr, Lt, Lh, Xx, Trans, Passthrough,
// Ansi, Map) that a layout author composes to describe a keymap. Nothing
// here touches the keyboard core or any device; a Layout is plain data the
// core consumes read-only.
package layout

import (
	"fmt"
	"time"

	"github.com/kbdlayer/layerz/action"
	"github.com/kbdlayer/layerz/keycode"
)

// Layer is a dense mapping from keycode to Action, one cell per code in
// [0, 256). Unmapped cells default to Transparent.
type Layer [256]action.Action

// Layout is an ordered list of layers; index 0 is the base layer. Layouts
// must have at least one layer; MaxLayers bounds how many a layout may
// declare.
type Layout []Layer

// MaxLayers is the small constant upper bound on a layout's layer count.
const MaxLayers = 16

// Validate checks the structural invariants a compiled Layout must satisfy
// before it is handed to the keyboard core: non-empty, no more than
// MaxLayers layers, and every LayerToggle/LayerHold target layer in range.
func (lo Layout) Validate() error {
	if len(lo) == 0 {
		return fmt.Errorf("layout: must have at least one layer")
	}

	if len(lo) > MaxLayers {
		return fmt.Errorf("layout: %d layers exceeds maximum of %d", len(lo), MaxLayers)
	}

	for li, layer := range lo {
		for code, act := range layer {
			switch act.Kind {
			case action.LayerToggle, action.LayerHold:
				if int(act.Layer) >= len(lo) {
					return fmt.Errorf(
						"layout: layer %d code %d targets out-of-range layer %d",
						li, code, act.Layer,
					)
				}
			}
		}
	}

	return nil
}

// Passthrough returns a layer filled entirely with Transparent cells, the
// identity starting point for any layer built with Ansi or Map.
func Passthrough() Layer {
	var layer Layer

	for i := range layer {
		layer[i] = action.TransparentAction
	}

	return layer
}

// Xx is Disabled: the cell swallows the event.
func Xx() action.Action {
	return action.DisabledAction
}

// Trans is Transparent: the cell defers to the base layer. Named for
// spec.md's `__` helper, which is not a legal exported Go identifier.
func Trans() action.Action {
	return action.TransparentAction
}

// resolveOrPanic resolves a symbolic keycode name, panicking on an unknown
// name. Layouts are compiled once at program startup, so a typo in a
// layout author's keycode name is a programmer error caught immediately
// rather than a runtime condition to recover from.
func resolveOrPanic(name string) uint16 {
	code, ok := keycode.Resolve(name)
	if !ok {
		panic(fmt.Sprintf("layout: unknown keycode name %q", name))
	}

	return code
}

// K builds a Tap action rewriting the struck key to name.
func K(name string) action.Action {
	return action.Action{Kind: action.Tap, Key: resolveOrPanic(name)}
}

// S builds a ModTap action chording name with LEFTSHIFT.
func S(name string) action.Action {
	return modTap(name, "LEFTSHIFT")
}

// Ctrl builds a ModTap action chording name with LEFTCTRL.
func Ctrl(name string) action.Action {
	return modTap(name, "LEFTCTRL")
}

// AltGr builds a ModTap action chording name with RIGHTALT.
func AltGr(name string) action.Action {
	return modTap(name, "RIGHTALT")
}

func modTap(name, mod string) action.Action {
	return action.Action{
		Kind: action.ModTap,
		Key:  resolveOrPanic(name),
		Mod:  resolveOrPanic(mod),
	}
}

// Lt builds a LayerToggle action targeting the given layer index.
func Lt(layer uint8) action.Action {
	return action.Action{Kind: action.LayerToggle, Layer: layer}
}

// Lh builds a LayerHold action with the default 200ms disambiguation
// window. Use LhDelay for a custom window.
func Lh(name string, layer uint8) action.Action {
	return LhDelay(name, layer, action.DefaultHoldDelay)
}

// LhDelay builds a LayerHold action with an explicit disambiguation
// window, for layouts that need a delay other than the 200ms default.
func LhDelay(name string, layer uint8, delay time.Duration) action.Action {
	return action.Action{
		Kind:  action.LayerHold,
		Key:   resolveOrPanic(name),
		Layer: layer,
		Delay: delay,
	}
}

// Hk builds a Hook action invoking fn on press only.
func Hk(fn func() error) action.Action {
	return action.Action{Kind: action.Hook, Fn: fn}
}

// Mouse builds a MouseMove action on the given relative axis.
func Mouse(axisName string, stepX, stepY int32) action.Action {
	return action.Action{
		Kind:  action.MouseMove,
		Axis:  resolveOrPanic(axisName),
		StepX: stepX,
		StepY: stepY,
	}
}

// Map assigns a single cell in layer at the keycode named name.
func Map(layer *Layer, name string, act action.Action) {
	layer[resolveOrPanic(name)] = act
}

// ansiRowLengths are the four standard ANSI alpha-block row lengths Ansi
// lays its four rows out over: number row, top letter row, home row,
// bottom row.
var ansiRowLengths = [4]int{13, 14, 13, 12}

// ansiRows, in order, are the keycode names of a standard US ANSI layout's
// four alpha-block rows, left to right.
var ansiRows = [4][]string{
	{
		"GRAVE", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "MINUS", "EQUAL",
	},
	{
		"TAB", "Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P",
		"LEFTBRACE", "RIGHTBRACE", "BACKSLASH",
	},
	{
		"CAPSLOCK", "A", "S", "D", "F", "G", "H", "J", "K", "L",
		"SEMICOLON", "APOSTROPHE", "ENTER",
	},
	{
		"LEFTSHIFT", "Z", "X", "C", "V", "B", "N", "M", "COMMA", "DOT", "SLASH", "RIGHTSHIFT",
	},
}

// Ansi constructs a layer from four fixed-length rows of logical key names
// (13/14/13/12 keys: number row, top row, middle row, bottom row),
// assigning a Tap action at each row's corresponding physical ANSI
// position, starting from Passthrough so every other cell defers to the
// base layer. A row entry of "" leaves that physical position transparent
// (useful for a layer that only remaps a few keys in an otherwise-full
// row).
func Ansi(numberRow, topRow, middleRow, bottomRow []string) Layer {
	layer := Passthrough()
	rows := [4][]string{numberRow, topRow, middleRow, bottomRow}

	for ri, row := range rows {
		if len(row) != ansiRowLengths[ri] {
			panic(fmt.Sprintf(
				"layout: ansi row %d has %d keys, want %d",
				ri, len(row), ansiRowLengths[ri],
			))
		}

		for ki, logical := range row {
			if logical == "" {
				continue
			}

			Map(&layer, ansiRows[ri][ki], K(logical))
		}
	}

	return layer
}
