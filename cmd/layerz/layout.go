package main

import (
	"os"
	"os/exec"

	"github.com/kbdlayer/layerz/layout"
)

// compiledLayout is the example keymap shipped with this binary: a base
// ANSI layer, a symbol layer reached by holding TAB, and CAPSLOCK rebound
// to a reset hook rather than its usual function. A real deployment
// replaces this file; the layout-construction DSL itself (layout.K,
// layout.S, layout.Lh, and friends) is the only contract spec.md fixes.
var compiledLayout = buildLayout()

func buildLayout() layout.Layout {
	base := layout.Ansi(
		[]string{"GRAVE", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "MINUS", "EQUAL"},
		[]string{"TAB", "Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P", "LEFTBRACE", "RIGHTBRACE", "BACKSLASH"},
		[]string{"CAPSLOCK", "A", "S", "D", "F", "G", "H", "J", "K", "L", "SEMICOLON", "APOSTROPHE", "ENTER"},
		[]string{"LEFTSHIFT", "Z", "X", "C", "V", "B", "N", "M", "COMMA", "DOT", "SLASH", "RIGHTSHIFT"},
	)

	layout.Map(&base, "TAB", layout.Lh("TAB", 1))
	layout.Map(&base, "CAPSLOCK", layout.Hk(resetHook))

	symbols := layout.Passthrough()
	layout.Map(&symbols, "Q", layout.K("1"))
	layout.Map(&symbols, "W", layout.K("2"))
	layout.Map(&symbols, "E", layout.K("3"))
	layout.Map(&symbols, "R", layout.K("4"))
	layout.Map(&symbols, "T", layout.K("5"))
	layout.Map(&symbols, "Y", layout.K("6"))
	layout.Map(&symbols, "U", layout.K("7"))
	layout.Map(&symbols, "I", layout.K("8"))
	layout.Map(&symbols, "O", layout.K("9"))
	layout.Map(&symbols, "P", layout.K("0"))
	layout.Map(&symbols, "H", layout.Mouse("REL_X", -10, 0))
	layout.Map(&symbols, "J", layout.Mouse("REL_X", 0, 10))
	layout.Map(&symbols, "K", layout.Mouse("REL_X", 0, -10))
	layout.Map(&symbols, "L", layout.Mouse("REL_X", 10, 0))
	layout.Map(&symbols, "TAB", layout.Lh("TAB", 1))

	return layout.Layout{base, symbols}
}

// grabbedDevicePath is set by runDevice before the core starts so
// resetHook can tell the standalone reset utility which device to
// ungrab; empty when running over stdio, where there is no device to
// reset.
var grabbedDevicePath string

// resetHook shells out to the standalone reset utility, demonstrating the
// intended use of a Hook action: recovering a device a crashed prior run
// left grabbed. It passes grabbedDevicePath, the device this process
// itself grabbed (empty over stdio), in LAYERZ_DEVICE.
func resetHook() error {
	cmd := exec.Command("layerz-reset")
	cmd.Env = append(os.Environ(), "LAYERZ_DEVICE="+grabbedDevicePath)

	return cmd.Run()
}
