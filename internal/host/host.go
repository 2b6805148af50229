// Package host describes the parts of a browser document a window needs.
//
// Implementations own every call into the page. All callbacks handed to a
// Host run on the host's single event loop, so nothing here needs locking.
package host

// Host creates elements, schedules frames, and wraps Go funcs for the page.
type Host interface {
	// CreateElement makes a detached element with the given tag.
	CreateElement(tag string) (Element, error)
	// Body returns the document's attach point. Fails if the document has none.
	Body() (Element, error)
	SetTitle(title string) error
	// RequestAnimationFrame runs fn once, on a future turn of the host loop
	// before the next paint.
	RequestAnimationFrame(fn func()) error
	// FuncOf wraps fn so it can be registered as an event listener.
	// The caller owns the result and must Release it.
	FuncOf(fn func(Event)) (Func, error)
	UserAgent() (string, error)
}

// Func is a Go callback made callable by the host.
type Func interface {
	// Release frees the host resources behind the func. It must not be
	// called while the func is still registered anywhere.
	Release()
}

// Options mirrors the DOM's EventListenerOptions.
type Options struct {
	Capture bool
	Passive bool
}

type EventTarget interface {
	AddEventListener(eventType string, fn Func, options Options) error
	// RemoveEventListener fails if the registration is already gone or the
	// target has been destroyed.
	RemoveEventListener(eventType string, fn Func, options Options) error
}

type Element interface {
	EventTarget

	AppendChild(child Element) error
	// Remove detaches the element from its parent.
	Remove() error
	SetAttribute(name, value string) error
	SetStyle(property, value string) error
	SetProperty(name string, value interface{}) error
	IntProperty(name string) (int, error)
	BoundingClientRect() (Rect, error)
}

// Event is a host event as seen by a listener.
// Missing properties read as their zero value.
type Event interface {
	Type() string
	String(property string) string
	Float(property string) float64
	Bool(property string) bool
}

type Rect struct {
	Left, Top, Right, Bottom float64
	Width, Height            float64
}
