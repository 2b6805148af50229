//go:build js && wasm
// +build js,wasm

package dom

import (
	"github.com/hack-pad/safejs"
	"github.com/hack-pad/webwindow/internal/host"
	"github.com/pkg/errors"
)

type Element struct {
	elem safejs.Value
}

func newElement(elem safejs.Value) (*Element, error) {
	if elem.IsNull() || elem.IsUndefined() {
		return nil, errors.New("element does not exist")
	}
	return &Element{elem: elem}, nil
}

func (e *Element) JSValue() safejs.Value {
	return e.elem
}

func toFunc(fn host.Func) (*Func, error) {
	f, ok := fn.(*Func)
	if !ok {
		return nil, errors.Errorf("listener must be a *dom.Func, got %T", fn)
	}
	return f, nil
}

func (e *Element) AddEventListener(eventType string, fn host.Func, options host.Options) error {
	f, err := toFunc(fn)
	if err != nil {
		return err
	}
	_, err = e.elem.Call("addEventListener", eventType, safejs.Unsafe(f.fn.Value()), map[string]interface{}{
		"capture": options.Capture,
		"passive": options.Passive,
	})
	return err
}

func (e *Element) RemoveEventListener(eventType string, fn host.Func, options host.Options) error {
	f, err := toFunc(fn)
	if err != nil {
		return err
	}
	_, err = e.elem.Call("removeEventListener", eventType, safejs.Unsafe(f.fn.Value()), map[string]interface{}{
		"capture": options.Capture,
	})
	return err
}

func (e *Element) AppendChild(child host.Element) error {
	c, ok := child.(*Element)
	if !ok {
		return errors.Errorf("child must be a *dom.Element, got %T", child)
	}
	_, err := e.elem.Call("appendChild", safejs.Unsafe(c.elem))
	return err
}

func (e *Element) Remove() error {
	_, err := e.elem.Call("remove")
	return err
}

func (e *Element) SetAttribute(name, value string) error {
	_, err := e.elem.Call("setAttribute", name, value)
	return err
}

func (e *Element) SetStyle(property, value string) error {
	style, err := e.elem.Get("style")
	if err != nil {
		return err
	}
	return style.Set(property, value)
}

func (e *Element) SetProperty(name string, value interface{}) error {
	return e.elem.Set(name, value)
}

func (e *Element) IntProperty(name string) (int, error) {
	value, err := e.elem.Get(name)
	if err != nil {
		return 0, err
	}
	return value.Int()
}

func (e *Element) BoundingClientRect() (host.Rect, error) {
	rect, err := e.elem.Call("getBoundingClientRect")
	if err != nil {
		return host.Rect{}, err
	}
	return newRect(rect)
}
