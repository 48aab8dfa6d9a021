package keyboard

import (
	"github.com/kbdlayer/layerz/action"
	"github.com/kbdlayer/layerz/event"
)

// handleTap rewrites the struck key's code and forwards it, suppressing
// autorepeat.
func (kb *Keyboard) handleTap(act action.Action, e event.Event) {
	if e.Value == event.Repeat {
		return
	}

	kb.emit(e.WithCode(act.Key))
}

// handleModTap emits the modifier then the key on press, immediately
// pulls one lookahead event, releases the modifier (at the press's own
// timestamp, so the release never appears to straddle the lookahead
// event), then recursively handles the pulled event. On release it emits
// only the key, since the modifier was already released during the
// press. Autorepeat is suppressed.
func (kb *Keyboard) handleModTap(act action.Action, e event.Event) {
	switch e.Value {
	case event.Press:
		kb.emit(event.Event{Sec: e.Sec, Us: e.Us, Type: event.EvKey, Code: act.Mod, Value: event.Press})
		kb.emit(e.WithCode(act.Key))

		next, ok := kb.provider.ReadEvent(0)

		kb.emit(event.Event{Sec: e.Sec, Us: e.Us, Type: event.EvKey, Code: act.Mod, Value: event.Release})

		if ok {
			kb.handle(next)
		}
	case event.Release:
		kb.emit(e.WithCode(act.Key))
	case event.Repeat:
		return
	}
}

// handleLayerToggle switches the active layer to act.Layer on press,
// unless it is already active, in which case it reverts to the base
// layer. Release and repeat are no-ops.
func (kb *Keyboard) handleLayerToggle(act action.Action, e event.Event) {
	if e.Value != event.Press {
		return
	}

	if kb.layer != act.Layer {
		kb.layer = act.Layer
	} else {
		kb.layer = kb.baseLayer
	}
}

// handleLayerHold is the dual-purpose tap/hold action. A press enters the
// disambiguation loop, which emits a tap's press and release itself; a
// release reaching this handler either reverts a committed hold or, when
// the hold layer is not active, emits the key release rewritten to Key.
func (kb *Keyboard) handleLayerHold(act action.Action, e event.Event) {
	switch e.Value {
	case event.Press:
		kb.disambiguateHold(act, e)
	case event.Release:
		if kb.layer == act.Layer {
			kb.layer = kb.baseLayer
			return
		}

		kb.emit(e.WithCode(act.Key))
	case event.Repeat:
		// Handled inside disambiguateHold's own loop while the hold is
		// unresolved; a repeat reaching here means the hold already
		// committed or resolved as a tap, so there is nothing to do.
	}
}

// disambiguateHold is LayerHold's lookahead loop: it repeatedly pulls the
// next event and classifies it against the held key and act.Delay until
// it can commit to a tap or a hold interpretation, or the stream ends
// with the hold still unresolved.
func (kb *Keyboard) disambiguateHold(act action.Action, press event.Event) {
	for {
		next, ok := kb.provider.ReadEvent(0)
		if !ok {
			return
		}

		if next.Type == event.EvKey && next.Code == press.Code {
			switch next.Value {
			case event.Release:
				if next.Timestamp()-press.Timestamp() < act.Delay {
					kb.emit(press)
					kb.emit(next.WithCode(act.Key))
				}

				return
			case event.Repeat:
				continue
			default:
				kb.logger.Warn("keyboard: unexpected repeated press during hold disambiguation, ignoring",
					"code", next.Code)
				continue
			}
		}

		if next.Type == event.EvKey && next.Value == event.Press {
			kb.layer = act.Layer
			kb.handle(next)

			return
		}

		kb.handle(next)
	}
}

// handleDisabled would swallow the event; Disabled is handled directly in
// dispatch, with no call here, since there is nothing to do.

// handleTransparent defers to the base layer's action at the same
// keycode. If the base layer is also transparent, the event is forwarded
// unchanged — per invariant I4 this never recurses, since the base
// layer's own Transparent cells are resolved directly here rather than by
// calling handleTransparent again.
func (kb *Keyboard) handleTransparent(e event.Event) {
	baseAct := kb.layout[kb.baseLayer][e.Code]
	if baseAct.Kind == action.Transparent {
		kb.emit(e)
		return
	}

	kb.dispatch(baseAct, e)
}

// handleHook invokes act.Fn on press only, logging (and otherwise
// ignoring) any error it returns. It never emits an event.
func (kb *Keyboard) handleHook(act action.Action, e event.Event) {
	if e.Value != event.Press {
		return
	}

	if act.Fn == nil {
		return
	}

	if err := act.Fn(); err != nil {
		kb.logger.Warn("keyboard: hook failed", "err", err)
	}
}

// handleMouseMove synthesizes relative-motion events on press and
// repeat, suppressing release entirely.
func (kb *Keyboard) handleMouseMove(act action.Action, e event.Event) {
	if e.Value != event.Press && e.Value != event.Repeat {
		return
	}

	switch act.Axis {
	case event.RelX:
		if act.StepX != 0 {
			kb.emit(event.Event{Sec: e.Sec, Us: e.Us, Type: event.EvRel, Code: event.RelX, Value: act.StepX})
		}

		if act.StepY != 0 {
			kb.emit(event.Event{Sec: e.Sec, Us: e.Us, Type: event.EvRel, Code: event.RelY, Value: act.StepY})
		}
	case event.RelWheel, event.RelDial:
		kb.emit(event.Event{Sec: e.Sec, Us: e.Us, Type: event.EvRel, Code: act.Axis, Value: act.StepX})
	case event.RelHWheel:
		kb.emit(event.Event{Sec: e.Sec, Us: e.Us, Type: event.EvRel, Code: event.RelHWheel, Value: act.StepY})
	}
}
