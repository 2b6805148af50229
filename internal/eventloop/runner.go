// Package eventloop routes window events from host callbacks to the
// application handler.
package eventloop

import (
	"sync"

	"github.com/hack-pad/webwindow/internal/event"
	"github.com/hack-pad/webwindow/internal/log"
)

type Handler func(event.Event)

// Runner delivers events to a Handler, one at a time and in the order they
// were sent. Events for windows missing from its dispatch table are dropped.
// The zero value is not usable; call New.
type Runner struct {
	handler Handler

	mu          sync.Mutex
	windows     map[event.WindowID]int
	queue       []event.Event
	dispatching bool
}

func New(handler Handler) *Runner {
	return &Runner{
		handler: handler,
		windows: make(map[event.WindowID]int),
	}
}

// Register adds id to the dispatch table. Registrations are counted, so
// each Register needs a matching Unregister.
func (r *Runner) Register(id event.WindowID) {
	r.mu.Lock()
	r.windows[id]++
	r.mu.Unlock()
}

func (r *Runner) Unregister(id event.WindowID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch count := r.windows[id]; {
	case count > 1:
		r.windows[id] = count - 1
	case count == 1:
		delete(r.windows, id)
	}
}

func (r *Runner) Registered(id event.WindowID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.windows[id] > 0
}

// SendEvent dispatches e now, or queues it if a dispatch is already in
// progress. Queued events are drained before SendEvent returns to the
// outermost caller. An event whose window is not registered when it is sent
// is dropped, so a window's last event stays last even if it unregisters
// from inside the handler.
func (r *Runner) SendEvent(e event.Event) {
	r.mu.Lock()
	if r.windows[e.WindowID] == 0 {
		r.mu.Unlock()
		log.Debugf("Dropping %s event for closed window", e.Window.Kind)
		return
	}
	r.queue = append(r.queue, e)
	if r.dispatching {
		r.mu.Unlock()
		return
	}
	r.dispatching = true
	r.mu.Unlock()

	for {
		r.mu.Lock()
		if len(r.queue) == 0 {
			r.dispatching = false
			r.mu.Unlock()
			return
		}
		next := r.queue[0]
		r.queue = r.queue[1:]
		r.mu.Unlock()

		r.dispatch(next)
	}
}

func (r *Runner) dispatch(e event.Event) {
	defer func() {
		if rec := recover(); rec != nil {
			r.mu.Lock()
			r.dispatching = false
			r.mu.Unlock()
			panic(rec)
		}
	}()
	r.handler(e)
}
