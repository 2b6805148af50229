// Package hosttest provides an in-memory host.Host for tests.
package hosttest

import (
	"github.com/hack-pad/webwindow/internal/host"
	"github.com/pkg/errors"
)

// Host records everything done to it. Set the Err fields to make the
// matching call fail.
type Host struct {
	Title        string
	UserAgentStr string

	CreateErr    error
	BodyErr      error
	FrameErr     error
	FuncOfErr    error
	TitleErr     error
	UserAgentErr error

	body   *Element
	frames []func()
	funcs  []*Func
}

func New() *Host {
	h := &Host{
		UserAgentStr: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	}
	h.body = newElement("body")
	return h
}

func (h *Host) CreateElement(tag string) (host.Element, error) {
	if h.CreateErr != nil {
		return nil, h.CreateErr
	}
	return newElement(tag), nil
}

func (h *Host) Body() (host.Element, error) {
	if h.BodyErr != nil {
		return nil, h.BodyErr
	}
	return h.body, nil
}

// BodyElement returns the body for inspection, regardless of BodyErr.
func (h *Host) BodyElement() *Element {
	return h.body
}

func (h *Host) SetTitle(title string) error {
	if h.TitleErr != nil {
		return h.TitleErr
	}
	h.Title = title
	return nil
}

func (h *Host) RequestAnimationFrame(fn func()) error {
	if h.FrameErr != nil {
		return h.FrameErr
	}
	h.frames = append(h.frames, fn)
	return nil
}

// PendingFrames is the number of animation frame callbacks not yet run.
func (h *Host) PendingFrames() int {
	return len(h.frames)
}

// RunFrames runs the currently scheduled animation frame callbacks. Callbacks
// scheduled while running wait for the next call.
func (h *Host) RunFrames() {
	frames := h.frames
	h.frames = nil
	for _, fn := range frames {
		fn()
	}
}

func (h *Host) FuncOf(fn func(host.Event)) (host.Func, error) {
	if h.FuncOfErr != nil {
		return nil, h.FuncOfErr
	}
	f := &Func{fn: fn}
	h.funcs = append(h.funcs, f)
	return f, nil
}

// LiveFuncs counts funcs made by FuncOf that were never released.
func (h *Host) LiveFuncs() int {
	live := 0
	for _, f := range h.funcs {
		if !f.released {
			live++
		}
	}
	return live
}

func (h *Host) UserAgent() (string, error) {
	if h.UserAgentErr != nil {
		return "", h.UserAgentErr
	}
	return h.UserAgentStr, nil
}

// Func panics when invoked or released after it has been released, which
// is the use-after-free a browser would turn into a crash.
type Func struct {
	fn       func(host.Event)
	released bool
}

func NewFunc(fn func(host.Event)) *Func {
	return &Func{fn: fn}
}

func (f *Func) Release() {
	if f.released {
		panic("hosttest: func released twice")
	}
	f.released = true
}

func (f *Func) Released() bool {
	return f.released
}

func (f *Func) Invoke(event host.Event) {
	if f.released {
		panic("hosttest: released func invoked")
	}
	f.fn(event)
}

var errNotRegistered = errors.New("listener not registered")
