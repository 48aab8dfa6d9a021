// Package provider defines the pull/push boundary between the keyboard
// core and the outside world.
package provider

import "github.com/kbdlayer/layerz/event"

// Provider is the two-method contract the keyboard core depends on. The
// core is generic over any value satisfying this interface; it never
// inspects a provider's concrete type.
type Provider interface {
	// ReadEvent returns the next event, or (zero, false) if none arrives
	// within timeoutMs or the stream has ended. timeoutMs == 0 means
	// "wait indefinitely" in production adapters; test adapters may
	// interpret it against a virtual clock instead.
	ReadEvent(timeoutMs uint32) (event.Event, bool)

	// WriteEvent emits one event downstream. Failures are unrecoverable
	// and the provider implementation aborts the process itself; the
	// core never receives or inspects a write error.
	WriteEvent(e event.Event)
}
