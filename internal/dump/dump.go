// Package dump renders a compiled layout.Layout as a colorized terminal
// table, for layerz -dump-layout. Only non-Transparent cells are printed,
// since a full 256-row dump of mostly Transparent cells per layer would be
// unreadable noise.
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kbdlayer/layerz/action"
	"github.com/kbdlayer/layerz/keycode"
	"github.com/kbdlayer/layerz/layout"
	"github.com/mattn/go-isatty"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	kindStyles  = map[action.Kind]lipgloss.Style{
		action.Tap:         lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		action.ModTap:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		action.LayerToggle: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		action.LayerHold:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		action.Disabled:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		action.Hook:        lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		action.MouseMove:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	}
)

// Write renders lo to w. Color is emitted only when w is an *os.File
// attached to a terminal, per isTTY; piping layerz -dump-layout into a
// file or another program yields plain text.
func Write(w io.Writer, lo layout.Layout, isTTY bool) {
	for li, layer := range lo {
		fmt.Fprintln(w, styled(isTTY, headerStyle, fmt.Sprintf("layer %d", li)))

		for code, act := range layer {
			if act.Kind == action.Transparent {
				continue
			}

			fmt.Fprintf(w, "  %-16s %s\n", shortName(uint16(code)), styled(isTTY, kindStyleFor(act.Kind), describe(act)))
		}
	}
}

// IsTerminalFile reports whether f (an *os.File-shaped fd) is attached to
// a terminal, gating Write's color output.
func IsTerminalFile(fd uintptr) bool {
	return isatty.IsTerminal(fd)
}

func kindStyleFor(kind action.Kind) lipgloss.Style {
	style, ok := kindStyles[kind]
	if !ok {
		return lipgloss.NewStyle()
	}

	return style
}

func styled(isTTY bool, style lipgloss.Style, text string) string {
	if !isTTY {
		return text
	}

	return style.Render(text)
}

func describe(act action.Action) string {
	keyName := shortName(act.Key)

	switch act.Kind {
	case action.Tap:
		return "tap " + keyName
	case action.ModTap:
		return fmt.Sprintf("modtap %s+%s", shortName(act.Mod), keyName)
	case action.LayerToggle:
		return fmt.Sprintf("toggle layer %d", act.Layer)
	case action.LayerHold:
		return fmt.Sprintf("hold layer %d / tap %s (%s)", act.Layer, keyName, act.Delay)
	case action.Disabled:
		return "disabled"
	case action.Hook:
		return "hook"
	case action.MouseMove:
		return fmt.Sprintf("mouse %s (%d,%d)", shortName(act.Axis), act.StepX, act.StepY)
	default:
		return strings.ToLower(fmt.Sprintf("%v", act.Kind))
	}
}

// shortName renders code the way a layout author writes it in the DSL —
// keycode.Resolve accepts names with or without their "KEY_"/"BTN_"/"REL_"
// prefix, so ResolveName's fully-prefixed form is trimmed back down for
// display.
func shortName(code uint16) string {
	name, ok := keycode.ResolveName(code)
	if !ok {
		return fmt.Sprintf("0x%02x", code)
	}

	for _, prefix := range []string{"KEY_", "BTN_", "REL_"} {
		if trimmed, found := strings.CutPrefix(name, prefix); found {
			return trimmed
		}
	}

	return name
}
