package eventloop

import (
	"testing"

	"github.com/hack-pad/webwindow/internal/event"
	"github.com/stretchr/testify/assert"
)

func windowEvent(kind event.Kind) event.Event {
	return event.Event{Window: event.WindowEvent{Kind: kind}}
}

func TestSendEvent(t *testing.T) {
	t.Run("unregistered window", func(t *testing.T) {
		var got []event.Event
		r := New(func(e event.Event) { got = append(got, e) })
		r.SendEvent(windowEvent(event.RedrawRequested))
		assert.Empty(t, got)
	})

	t.Run("registered window", func(t *testing.T) {
		var got []event.Kind
		r := New(func(e event.Event) { got = append(got, e.Window.Kind) })
		r.Register(event.WindowID{})
		r.SendEvent(windowEvent(event.Focused))
		r.SendEvent(windowEvent(event.RedrawRequested))
		assert.Equal(t, []event.Kind{event.Focused, event.RedrawRequested}, got)
	})

	t.Run("events sent during dispatch are queued in order", func(t *testing.T) {
		var r *Runner
		var got []event.Kind
		r = New(func(e event.Event) {
			got = append(got, e.Window.Kind)
			if e.Window.Kind == event.KeyboardInput {
				r.SendEvent(windowEvent(event.ReceivedCharacter))
				r.SendEvent(windowEvent(event.RedrawRequested))
				assert.Len(t, got, 1, "handler must not be re-entered")
			}
		})
		r.Register(event.WindowID{})
		r.SendEvent(windowEvent(event.KeyboardInput))
		assert.Equal(t, []event.Kind{event.KeyboardInput, event.ReceivedCharacter, event.RedrawRequested}, got)
	})

	t.Run("handler panic does not wedge the runner", func(t *testing.T) {
		var got []event.Kind
		r := New(func(e event.Event) {
			if e.Window.Kind == event.MouseWheel {
				panic("boom")
			}
			got = append(got, e.Window.Kind)
		})
		r.Register(event.WindowID{})
		assert.Panics(t, func() { r.SendEvent(windowEvent(event.MouseWheel)) })
		r.SendEvent(windowEvent(event.CursorMoved))
		assert.Equal(t, []event.Kind{event.CursorMoved}, got)
	})
}

func TestRegister(t *testing.T) {
	r := New(func(event.Event) {})
	id := event.WindowID{}
	assert.False(t, r.Registered(id))

	r.Register(id)
	r.Register(id)
	r.Unregister(id)
	assert.True(t, r.Registered(id), "one registration remains")
	r.Unregister(id)
	assert.False(t, r.Registered(id))

	r.Unregister(id)
	assert.False(t, r.Registered(id))
}

func TestUnregisterDuringDispatch(t *testing.T) {
	var r *Runner
	var got []event.Kind
	r = New(func(e event.Event) {
		got = append(got, e.Window.Kind)
		if e.Window.Kind == event.KeyboardInput {
			r.SendEvent(windowEvent(event.Destroyed))
			r.Unregister(event.WindowID{})
			r.SendEvent(windowEvent(event.RedrawRequested))
		}
	})
	r.Register(event.WindowID{})
	r.SendEvent(windowEvent(event.KeyboardInput))
	assert.Equal(t, []event.Kind{event.KeyboardInput, event.Destroyed}, got)
}
