// Package keyboard implements the layered key-event transformer: a
// deterministic, pull-driven state machine that consumes a stream of
// timestamped key events from a provider.Provider and emits a
// transformed stream, applying per-layer key substitution, modifier
// chording, momentary layer activation with tap/hold disambiguation,
// transparent fall-through, and the other actions a layout.Layout cell
// can hold.
//
// The machine is strictly single-threaded and synchronous: the only
// blocking operation is provider.Provider.ReadEvent, and it is never
// called from more than one goroutine concurrently.
package keyboard

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/kbdlayer/layerz/action"
	"github.com/kbdlayer/layerz/event"
	"github.com/kbdlayer/layerz/keycode"
	"github.com/kbdlayer/layerz/layout"
	"github.com/kbdlayer/layerz/provider"
)

// Keyboard holds the keyboard state machine's state: the currently active
// layer, the per-keycode layer-of-last-press table, and the layout and
// provider it was constructed with. A Keyboard is created once per run,
// driven by Loop until the provider reports end-of-stream, and discarded;
// no state persists across runs.
type Keyboard struct {
	layout   layout.Layout
	provider provider.Provider
	logger   *log.Logger

	baseLayer uint8
	layer     uint8
	keyState  [256]uint8
}

// Option configures a Keyboard at construction time.
type Option func(*Keyboard)

// WithBaseLayer overrides the default base layer (0) the machine falls
// back to on LayerToggle's second press and LayerHold's release.
func WithBaseLayer(layer uint8) Option {
	return func(kb *Keyboard) {
		kb.baseLayer = layer
		kb.layer = layer
	}
}

// WithLogger overrides the default logger used for the recoverable error
// classes in the error handling design (unknown event value, inconsistent
// lookahead state, hook failure).
func WithLogger(logger *log.Logger) Option {
	return func(kb *Keyboard) {
		kb.logger = logger
	}
}

// New validates lo and constructs a Keyboard over it and p, applying opts,
// then runs the machine's initialization sequence (see init).
func New(lo layout.Layout, p provider.Provider, opts ...Option) (*Keyboard, error) {
	if err := lo.Validate(); err != nil {
		return nil, fmt.Errorf("keyboard.New: %w", err)
	}

	kb := &Keyboard{
		layout:   lo,
		provider: p,
		logger:   log.Default(),
	}

	for _, opt := range opts {
		opt(kb)
	}

	kb.init()

	return kb, nil
}

// init emits a synthetic release for the ENTER key followed by a
// SYN_REPORT, preventing a stuck ENTER left over from shell interaction
// when the upstream adapter grabs the device. key_state is left at its
// zero value, so every keycode is considered last-pressed on layer 0.
func (kb *Keyboard) init() {
	enterCode, ok := keycode.Resolve("ENTER")
	if !ok {
		// The keycode table always has ENTER; this would only trip if
		// the registry itself were broken.
		kb.logger.Warn("keyboard: ENTER not found in keycode registry, skipping init preamble")
		return
	}

	kb.emit(event.Event{Type: event.EvKey, Code: enterCode, Value: event.Release})
	kb.emit(event.Syn(0, 0))
}

// Loop repeatedly pulls the next event from the provider and hands it to
// handle, until the provider reports end-of-stream.
func (kb *Keyboard) Loop() {
	for {
		e, ok := kb.provider.ReadEvent(0)
		if !ok {
			return
		}

		kb.handle(e)
	}
}

// handle classifies one input event and either forwards it unchanged or
// resolves and dispatches an action for it.
func (kb *Keyboard) handle(e event.Event) {
	if e.IsScan() {
		kb.emit(e)
		return
	}

	if e.Type != event.EvKey || e.Code >= 256 {
		kb.emit(e)
		return
	}

	act, ok := kb.resolve(e)
	if !ok {
		return
	}

	kb.dispatch(act, e)
}

// resolve determines which layer an event resolves against and returns
// the action assigned to its keycode on that layer. Presses and repeats
// resolve against, and record, the currently active layer (I2's write
// side); releases resolve against the layer recorded at press time,
// never the current layer (I2's read side), so a release always routes
// through the same layer its press did.
func (kb *Keyboard) resolve(e event.Event) (action.Action, bool) {
	switch e.Value {
	case event.Press, event.Repeat:
		kb.keyState[e.Code] = kb.layer
		return kb.layout[kb.layer][e.Code], true
	case event.Release:
		layer := kb.keyState[e.Code]
		return kb.layout[layer][e.Code], true
	default:
		kb.logger.Warn("keyboard: unknown key event value, disabling event",
			"code", e.Code, "value", e.Value)
		return action.Action{}, false
	}
}

// dispatch routes act to its handler.
func (kb *Keyboard) dispatch(act action.Action, e event.Event) {
	switch act.Kind {
	case action.Tap:
		kb.handleTap(act, e)
	case action.ModTap:
		kb.handleModTap(act, e)
	case action.LayerToggle:
		kb.handleLayerToggle(act, e)
	case action.LayerHold:
		kb.handleLayerHold(act, e)
	case action.Disabled:
		// emit nothing
	case action.Transparent:
		kb.handleTransparent(e)
	case action.Hook:
		kb.handleHook(act, e)
	case action.MouseMove:
		kb.handleMouseMove(act, e)
	}
}

// emit writes one event downstream.
func (kb *Keyboard) emit(e event.Event) {
	kb.provider.WriteEvent(e)
}

// Layer returns the currently active layer index, for debug tooling.
func (kb *Keyboard) Layer() uint8 {
	return kb.layer
}
