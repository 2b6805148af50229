package window

import (
	"unicode/utf8"

	"github.com/hack-pad/webwindow/internal/event"
	"github.com/hack-pad/webwindow/internal/host"
	"github.com/hack-pad/webwindow/internal/listener"
	"github.com/pkg/errors"
)

type translator func(host.Event) []event.WindowEvent

var canvasEvents = []struct {
	eventType string
	options   host.Options
	translate translator
}{
	{"pointermove", host.Options{Passive: true}, cursorMoved},
	{"pointerdown", host.Options{}, mouseInput(event.Pressed)},
	{"pointerup", host.Options{}, mouseInput(event.Released)},
	{"pointerover", host.Options{Passive: true}, cursorCrossed(event.CursorEntered)},
	{"pointerout", host.Options{Passive: true}, cursorCrossed(event.CursorLeft)},
	{"wheel", host.Options{Passive: true}, mouseWheel},
	{"keydown", host.Options{}, keyboardInput(event.Pressed)},
	{"keyup", host.Options{}, keyboardInput(event.Released)},
	{"focus", host.Options{}, focused(true)},
	{"blur", host.Options{}, focused(false)},
}

// attachListeners routes canvas events to the runner. On failure the
// listeners attached so far stay in w.listeners for the caller to release.
func (w *Window) attachListeners() error {
	id := w.ID()
	for _, ce := range canvasEvents {
		translate := ce.translate
		fn, err := w.host.FuncOf(func(e host.Event) {
			for _, windowEvent := range translate(e) {
				w.runner.SendEvent(event.Event{WindowID: id, Window: windowEvent})
			}
		})
		if err != nil {
			return &listener.RegistrationError{EventType: ce.eventType, Err: errors.Wrap(err, "failed to wrap callback")}
		}
		handle, err := listener.Attach(w.canvas, ce.eventType, ce.options, fn)
		if err != nil {
			return err
		}
		w.listeners.Add(handle)
	}
	return nil
}

func position(e host.Event) event.Position {
	return event.Position{X: e.Float("offsetX"), Y: e.Float("offsetY")}
}

func modifiers(e host.Event) event.Modifiers {
	return event.Modifiers{
		Shift: e.Bool("shiftKey"),
		Ctrl:  e.Bool("ctrlKey"),
		Alt:   e.Bool("altKey"),
		Logo:  e.Bool("metaKey"),
	}
}

func cursorMoved(e host.Event) []event.WindowEvent {
	return []event.WindowEvent{{
		Kind:      event.CursorMoved,
		Position:  position(e),
		Modifiers: modifiers(e),
	}}
}

func cursorCrossed(kind event.Kind) translator {
	return func(e host.Event) []event.WindowEvent {
		return []event.WindowEvent{{Kind: kind, Position: position(e)}}
	}
}

func mouseInput(state event.ElementState) translator {
	return func(e host.Event) []event.WindowEvent {
		return []event.WindowEvent{{
			Kind:      event.MouseInput,
			State:     state,
			Button:    event.MouseButton(int(e.Float("button"))),
			Position:  position(e),
			Modifiers: modifiers(e),
		}}
	}
}

func mouseWheel(e host.Event) []event.WindowEvent {
	return []event.WindowEvent{{
		Kind:      event.MouseWheel,
		Delta:     event.Position{X: e.Float("deltaX"), Y: e.Float("deltaY")},
		Modifiers: modifiers(e),
	}}
}

func keyboardInput(state event.ElementState) translator {
	return func(e host.Event) []event.WindowEvent {
		mods := modifiers(e)
		key := e.String("key")
		events := []event.WindowEvent{{
			Kind:      event.KeyboardInput,
			State:     state,
			Key:       key,
			Code:      e.String("code"),
			Modifiers: mods,
		}}
		// named keys like "Enter" are longer than one rune
		if state == event.Pressed && !mods.Ctrl && !mods.Logo && utf8.RuneCountInString(key) == 1 {
			r, _ := utf8.DecodeRuneInString(key)
			events = append(events, event.WindowEvent{Kind: event.ReceivedCharacter, Char: r})
		}
		return events
	}
}

func focused(isFocused bool) translator {
	return func(host.Event) []event.WindowEvent {
		return []event.WindowEvent{{Kind: event.Focused, Focused: isFocused}}
	}
}
