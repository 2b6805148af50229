package hosttest

import (
	"github.com/hack-pad/webwindow/internal/host"
	"github.com/pkg/errors"
)

type registration struct {
	eventType string
	fn        host.Func
	capture   bool
}

// Element is an in-memory DOM node.
type Element struct {
	Tag string

	// AddErr makes AddEventListener fail for the given event types.
	AddErr map[string]error
	// RemoveErr makes every RemoveEventListener fail.
	RemoveErr error
	AppendErr error
	StyleErr  error
	PropErr   error

	Attributes map[string]string
	Styles     map[string]string
	Properties map[string]interface{}

	parent        *Element
	children      []*Element
	registrations []registration
	Rect          host.Rect
}

func newElement(tag string) *Element {
	return &Element{
		Tag:        tag,
		AddErr:     make(map[string]error),
		Attributes: make(map[string]string),
		Styles:     make(map[string]string),
		Properties: make(map[string]interface{}),
	}
}

// NewElement returns a detached element.
func NewElement(tag string) *Element {
	return newElement(tag)
}

func (e *Element) AddEventListener(eventType string, fn host.Func, options host.Options) error {
	if err := e.AddErr[eventType]; err != nil {
		return err
	}
	e.registrations = append(e.registrations, registration{eventType: eventType, fn: fn, capture: options.Capture})
	return nil
}

func (e *Element) RemoveEventListener(eventType string, fn host.Func, options host.Options) error {
	if e.RemoveErr != nil {
		return e.RemoveErr
	}
	for i, r := range e.registrations {
		if r.eventType == eventType && r.fn == fn && r.capture == options.Capture {
			e.registrations = append(e.registrations[:i], e.registrations[i+1:]...)
			return nil
		}
	}
	return errors.Wrap(errNotRegistered, eventType)
}

// Registrations counts active listeners for eventType, or all listeners if
// eventType is empty.
func (e *Element) Registrations(eventType string) int {
	count := 0
	for _, r := range e.registrations {
		if eventType == "" || r.eventType == eventType {
			count++
		}
	}
	return count
}

// Dispatch delivers event to every listener registered for its type, in
// registration order. As in the DOM, a listener removed by an earlier one
// during the same dispatch is skipped.
func (e *Element) Dispatch(event host.Event) {
	registrations := append([]registration(nil), e.registrations...)
	for _, r := range registrations {
		if r.eventType != event.Type() || !e.registered(r) {
			continue
		}
		if f, ok := r.fn.(*Func); ok {
			f.Invoke(event)
		}
	}
}

func (e *Element) registered(reg registration) bool {
	for _, r := range e.registrations {
		if r == reg {
			return true
		}
	}
	return false
}

func (e *Element) AppendChild(child host.Element) error {
	if e.AppendErr != nil {
		return e.AppendErr
	}
	c, ok := child.(*Element)
	if !ok {
		return errors.Errorf("cannot append %T", child)
	}
	if c.parent != nil {
		c.parent.removeChild(c)
	}
	c.parent = e
	e.children = append(e.children, c)
	return nil
}

func (e *Element) removeChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			return
		}
	}
}

func (e *Element) Remove() error {
	if e.parent != nil {
		e.parent.removeChild(e)
		e.parent = nil
	}
	return nil
}

func (e *Element) Children() []*Element {
	return e.children
}

func (e *Element) Parent() *Element {
	return e.parent
}

func (e *Element) SetAttribute(name, value string) error {
	e.Attributes[name] = value
	return nil
}

func (e *Element) SetStyle(property, value string) error {
	if e.StyleErr != nil {
		return e.StyleErr
	}
	e.Styles[property] = value
	return nil
}

func (e *Element) SetProperty(name string, value interface{}) error {
	if e.PropErr != nil {
		return e.PropErr
	}
	e.Properties[name] = value
	return nil
}

func (e *Element) IntProperty(name string) (int, error) {
	if e.PropErr != nil {
		return 0, e.PropErr
	}
	switch v := e.Properties[name].(type) {
	case int:
		return v, nil
	case nil:
		return 0, nil
	default:
		return 0, errors.Errorf("property %q is %T, not int", name, v)
	}
}

func (e *Element) BoundingClientRect() (host.Rect, error) {
	return e.Rect, nil
}
