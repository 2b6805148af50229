// Package window implements a window on top of a canvas element.
//
// A Window is not safe for concurrent use. Call it from the goroutine that
// runs host callbacks.
package window

import (
	"strconv"

	"github.com/hack-pad/webwindow/internal/event"
	"github.com/hack-pad/webwindow/internal/eventloop"
	"github.com/hack-pad/webwindow/internal/host"
	"github.com/hack-pad/webwindow/internal/listener"
	"github.com/hack-pad/webwindow/internal/log"
	"github.com/johnstarich/go/datasize"
	"go.uber.org/atomic"
)

const hiddenCursor = "none"

type Window struct {
	host   host.Host
	runner *eventloop.Runner
	canvas host.Element
	redraw func()

	listeners listener.Group
	closed    atomic.Bool

	// last values set through this window; the page does not report them back
	previousCursor string
	position       LogicalPosition
	size           LogicalSize
	title          string
}

// New appends a canvas to the document body and routes its events to runner.
func New(h host.Host, runner *eventloop.Runner, attr Attributes) (*Window, error) {
	canvas, err := h.CreateElement("canvas")
	if err != nil {
		return nil, newCreationError("Failed to create canvas element", err)
	}
	body, err := h.Body()
	if err != nil {
		return nil, newCreationError("Failed to find body node", err)
	}
	if err := body.AppendChild(canvas); err != nil {
		return nil, newCreationError("Failed to append canvas to body", err)
	}

	w := &Window{
		host:           h,
		runner:         runner,
		canvas:         canvas,
		previousCursor: CursorDefault.String(),
	}

	runner.Register(w.ID())
	if err := canvas.SetAttribute("tabindex", "0"); err != nil {
		log.Warnf("Canvas will not receive keyboard focus: %v", err)
	}
	if err := w.attachListeners(); err != nil {
		w.listeners.Release()
		runner.Unregister(w.ID())
		w.removeCanvas()
		return nil, newCreationError("Failed to listen for canvas events", err)
	}

	id := w.ID()
	w.redraw = func() {
		err := h.RequestAnimationFrame(func() {
			// other windows share the ID, so the runner cannot drop this for us
			if w.closed.Load() {
				return
			}
			runner.SendEvent(event.Event{
				WindowID: id,
				Window:   event.WindowEvent{Kind: event.RedrawRequested},
			})
		})
		if err != nil {
			log.Errorf("Failed to request animation frame: %v", err)
		}
	}

	if attr.Dimensions != nil {
		w.SetInnerSize(*attr.Dimensions)
	} else {
		w.SetInnerSize(LogicalSize{Width: defaultWidth, Height: defaultHeight})
	}
	w.SetMinDimensions(attr.MinDimensions)
	w.SetMaxDimensions(attr.MaxDimensions)
	w.SetResizable(attr.Resizable)
	w.SetTitle(attr.Title)
	w.SetMaximized(attr.Maximized)
	if attr.Visible {
		w.Show()
	} else {
		w.Hide()
	}
	w.SetDecorations(attr.Decorations)
	w.SetAlwaysOnTop(attr.AlwaysOnTop)
	w.SetWindowIcon(attr.WindowIcon)
	return w, nil
}

// ID is the same for every window, since a document holds only one kind.
func (w *Window) ID() event.WindowID {
	return event.WindowID{}
}

// Canvas returns the element to draw on.
func (w *Window) Canvas() host.Element {
	return w.canvas
}

// Close stops event delivery and removes the canvas from the document.
// Listeners are detached before the canvas goes away. Later calls do nothing.
// Destroyed is sent to the shared ID, so a handler serving several windows
// cannot tell which one closed.
func (w *Window) Close() {
	if w.closed.Swap(true) {
		return
	}
	w.runner.SendEvent(event.Event{
		WindowID: w.ID(),
		Window:   event.WindowEvent{Kind: event.Destroyed},
	})
	w.listeners.Release()
	w.runner.Unregister(w.ID())
	w.removeCanvas()
}

func (w *Window) Closed() bool {
	return w.closed.Load()
}

func (w *Window) removeCanvas() {
	if err := w.canvas.Remove(); err != nil {
		log.Errorf("Failed to remove canvas: %v", err)
	}
}

func (w *Window) SetTitle(title string) {
	w.title = title
	if err := w.host.SetTitle(title); err != nil {
		log.Errorf("Failed to set document title: %v", err)
	}
}

func (w *Window) Title() string {
	return w.title
}

// Show is a no-op: the canvas is visible while it is in the document.
func (w *Window) Show() {}

// Hide is a no-op: the canvas is visible while it is in the document.
func (w *Window) Hide() {}

// RequestRedraw sends a RedrawRequested event before the next paint.
func (w *Window) RequestRedraw() {
	w.redraw()
}

// Position is the canvas's place in the viewport, read from the page.
func (w *Window) Position() (LogicalPosition, bool) {
	rect, err := w.canvas.BoundingClientRect()
	if err != nil {
		log.Errorf("Failed to read canvas bounds: %v", err)
		return LogicalPosition{}, false
	}
	return LogicalPosition{X: rect.Left, Y: rect.Top}, true
}

// InnerPosition is the last value given to SetPosition. The page has no
// reliable way to report it.
func (w *Window) InnerPosition() LogicalPosition {
	return w.position
}

func (w *Window) SetPosition(position LogicalPosition) {
	w.position = position
	w.setStyle("position", "fixed")
	w.setStyle("left", pixels(position.X))
	w.setStyle("top", pixels(position.Y))
}

// InnerSize is the canvas size. If the page cannot report it, the last size
// set is returned.
func (w *Window) InnerSize() LogicalSize {
	width, err := w.canvas.IntProperty("width")
	if err != nil {
		log.Errorf("Failed to read canvas width: %v", err)
		return w.size
	}
	height, err := w.canvas.IntProperty("height")
	if err != nil {
		log.Errorf("Failed to read canvas height: %v", err)
		return w.size
	}
	return LogicalSize{Width: float64(width), Height: float64(height)}
}

// OuterSize equals InnerSize: a canvas has no border or title bar.
// Hosts with window chrome would need these to differ.
func (w *Window) OuterSize() LogicalSize {
	return w.InnerSize()
}

func (w *Window) SetInnerSize(size LogicalSize) {
	width, height := int(size.Width), int(size.Height)
	w.size = LogicalSize{Width: float64(width), Height: float64(height)}
	if err := w.canvas.SetProperty("width", width); err != nil {
		log.Errorf("Failed to set canvas width: %v", err)
	}
	if err := w.canvas.SetProperty("height", height); err != nil {
		log.Errorf("Failed to set canvas height: %v", err)
	}
	log.Debugf("Canvas resized to %dx%d, %s backing store", width, height, backingStoreSize(width, height))
}

// SetMinDimensions is a no-op: users can't resize canvas elements.
func (w *Window) SetMinDimensions(*LogicalSize) {}

// SetMaxDimensions is a no-op: users can't resize canvas elements.
func (w *Window) SetMaxDimensions(*LogicalSize) {}

// SetResizable is a no-op: users can't resize canvas elements.
func (w *Window) SetResizable(bool) {}

// SetMaximized is a no-op until the page gets a fullscreen API.
func (w *Window) SetMaximized(bool) {}

// SetFullscreen is a no-op until the page gets a fullscreen API.
func (w *Window) SetFullscreen(*MonitorHandle) {}

// SetDecorations is a no-op: a canvas has no decorations.
func (w *Window) SetDecorations(bool) {}

// SetAlwaysOnTop is a no-op: there is no window ordering.
func (w *Window) SetAlwaysOnTop(bool) {}

// SetWindowIcon is a no-op.
func (w *Window) SetWindowIcon(*Icon) {}

// SetIMESpot is a no-op: IME composition is not supported.
func (w *Window) SetIMESpot(LogicalPosition) {}

func (w *Window) HiDPIFactor() float64 {
	return 1.0
}

func (w *Window) SetCursor(cursor Cursor) {
	text := cursor.String()
	w.previousCursor = text
	w.setStyle("cursor", text)
}

// HideCursor hides the cursor or restores the last one set with SetCursor.
func (w *Window) HideCursor(hide bool) {
	if hide {
		w.setStyle("cursor", hiddenCursor)
	} else {
		w.setStyle("cursor", w.previousCursor)
	}
}

// SetCursorPosition does nothing: pointer lock is not supported.
func (w *Window) SetCursorPosition(LogicalPosition) error {
	return nil
}

// GrabCursor does nothing: pointer capture is not supported.
func (w *Window) GrabCursor(bool) error {
	return nil
}

func (w *Window) CurrentMonitor() MonitorHandle {
	return w.monitor()
}

// AvailableMonitors is empty even though CurrentMonitor and PrimaryMonitor
// report a monitor. Callers rely on this today, so it is kept until product
// decides which answer is right.
func (w *Window) AvailableMonitors() []MonitorHandle {
	return []MonitorHandle{}
}

func (w *Window) PrimaryMonitor() MonitorHandle {
	return w.monitor()
}

func (w *Window) monitor() MonitorHandle {
	userAgent, err := w.host.UserAgent()
	if err != nil {
		log.Debugf("User agent unavailable: %v", err)
	}
	return MonitorHandle{userAgent: userAgent}
}

func (w *Window) setStyle(property, value string) {
	if err := w.canvas.SetStyle(property, value); err != nil {
		log.Errorf("Failed to set canvas %s to %q: %v", property, value, err)
	}
}

// backingStoreSize is the memory a canvas of this size holds, at 4 bytes per
// RGBA pixel.
func backingStoreSize(width, height int) datasize.Size {
	return datasize.Bytes(int64(width) * int64(height) * 4)
}

func pixels(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64) + "px"
}
