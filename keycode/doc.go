//go:build linux

// Package keycode resolves between the symbolic keycode names a layout is
// written with and the numeric codes the kernel's input subsystem and the
// layout DSL exchange at runtime. The table covers the KEY_*, BTN_* and
// REL_* names of the Linux input-event-codes.h constant space, not just
// the ordinary [0,256) typing-key range; other event classes (MSC_*,
// ABS_*, LED_* and so on) are not in it.
package keycode
