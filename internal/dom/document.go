//go:build js && wasm
// +build js,wasm

// Package dom implements host.Host on the browser page the program runs in.
package dom

import (
	"runtime/debug"

	"github.com/hack-pad/safejs"
	"github.com/hack-pad/webwindow/internal/host"
	"github.com/hack-pad/webwindow/internal/interop"
	"github.com/hack-pad/webwindow/internal/log"
	"github.com/pkg/errors"
)

type Document struct {
	window safejs.Value
	doc    safejs.Value
}

var _ host.Host = &Document{}

// GetDocument returns the page's document. Fails outside a browser window,
// for example in a worker.
func GetDocument() (*Document, error) {
	window := safejs.Global()
	doc, err := window.Get("document")
	if err != nil {
		return nil, err
	}
	if doc.IsUndefined() || doc.IsNull() {
		return nil, errors.New("no document in this global scope")
	}
	return &Document{window: window, doc: doc}, nil
}

func (d *Document) CreateElement(tag string) (host.Element, error) {
	elem, err := d.doc.Call("createElement", tag)
	if err != nil {
		return nil, err
	}
	return newElement(elem)
}

func (d *Document) Body() (host.Element, error) {
	body, err := d.doc.Get("body")
	if err != nil {
		return nil, err
	}
	return newElement(body)
}

func (d *Document) SetTitle(title string) error {
	return d.doc.Set("title", title)
}

func (d *Document) RequestAnimationFrame(fn func()) error {
	callback, err := interop.SingleUseFunc(func(safejs.Value, []safejs.Value) {
		defer recoverCallback()
		fn()
	})
	if err != nil {
		return err
	}
	if _, err := d.window.Call("requestAnimationFrame", safejs.Unsafe(callback.Value())); err != nil {
		callback.Release()
		return err
	}
	return nil
}

func (d *Document) FuncOf(fn func(host.Event)) (host.Func, error) {
	jsFunc, err := safejs.FuncOf(func(_ safejs.Value, args []safejs.Value) interface{} {
		defer recoverCallback()
		if len(args) == 0 {
			return nil
		}
		fn(Event{value: args[0]})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Func{fn: jsFunc}, nil
}

func (d *Document) UserAgent() (string, error) {
	navigator, err := d.window.Get("navigator")
	if err != nil {
		return "", err
	}
	userAgent, err := navigator.Get("userAgent")
	if err != nil {
		return "", err
	}
	return userAgent.String()
}

// recoverCallback keeps a panicking callback from taking down the program.
func recoverCallback() {
	interop.CatchExceptionHandler(func(err error) {
		log.Error("recovered from panic: ", err, "\n", string(debug.Stack()))
	})
}

// Func is a Go func callable from JS.
type Func struct {
	fn safejs.Func
}

func (f *Func) Release() {
	f.fn.Release()
}
