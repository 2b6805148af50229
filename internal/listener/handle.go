// Package listener ties the lifetime of a host event listener to a Go value.
package listener

import (
	"fmt"

	"github.com/hack-pad/webwindow/internal/host"
	"github.com/hack-pad/webwindow/internal/log"
	"go.uber.org/atomic"
)

// RegistrationError is returned when the host refuses a listener.
type RegistrationError struct {
	EventType string
	Err       error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("failed to add %q event listener: %v", e.EventType, e.Err)
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}

// Handle owns one func registered on one target for one event type.
// While the handle is live exactly one such registration exists.
type Handle struct {
	target    host.EventTarget
	eventType string
	fn        host.Func
	options   host.Options
	released  atomic.Bool
}

// Attach registers fn on target and takes ownership of it. If the host
// refuses, fn is released and a *RegistrationError returned.
func Attach(target host.EventTarget, eventType string, options host.Options, fn host.Func) (*Handle, error) {
	if err := target.AddEventListener(eventType, fn, options); err != nil {
		fn.Release()
		return nil, &RegistrationError{EventType: eventType, Err: err}
	}
	return &Handle{
		target:    target,
		eventType: eventType,
		fn:        fn,
		options:   options,
	}, nil
}

func (h *Handle) EventType() string {
	return h.eventType
}

func (h *Handle) Released() bool {
	return h.released.Load()
}

// Release removes the listener, then frees its func. Only the first call
// has any effect. A failed removal is logged and the func is still freed:
// the host only fails removal once the registration or target is gone.
func (h *Handle) Release() {
	if h.released.Swap(true) {
		return
	}
	if err := h.target.RemoveEventListener(h.eventType, h.fn, h.options); err != nil {
		log.Errorf("Error removing event listener %s: %v", h.eventType, err)
	}
	h.fn.Release()
}
