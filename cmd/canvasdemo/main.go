//go:build js && wasm
// +build js,wasm

package main

import (
	"flag"
	"os"

	"github.com/hack-pad/safejs"
	"github.com/hack-pad/webwindow/internal/dom"
	"github.com/hack-pad/webwindow/internal/event"
	"github.com/hack-pad/webwindow/internal/eventloop"
	"github.com/hack-pad/webwindow/internal/log"
	"github.com/hack-pad/webwindow/internal/window"
)

func main() {
	title := flag.String("title", "webwindow", "Document title")
	width := flag.Float64("width", 0, "Canvas width. Defaults to 1024 when unset.")
	height := flag.Float64("height", 0, "Canvas height. Defaults to 768 when unset.")
	logLevel := flag.String("log", "", "Log level: debug, log, warn, or error")
	flag.Parse()

	if *logLevel != "" {
		level := log.ParseLevel(*logLevel)
		if !level.Valid() {
			flag.Usage()
			os.Exit(2)
		}
		log.SetLevel(level)
	}

	attr := window.DefaultAttributes()
	attr.Title = *title
	if *width > 0 && *height > 0 {
		attr.Dimensions = &window.LogicalSize{Width: *width, Height: *height}
	}

	doc, err := dom.GetDocument()
	if err != nil {
		log.Error("Failed to find document: ", err)
		os.Exit(1)
	}

	var (
		win    *window.Window
		ctx    safejs.Value
		cursor event.Position
	)
	runner := eventloop.New(func(e event.Event) {
		switch e.Window.Kind {
		case event.RedrawRequested:
			if err := draw(ctx, win.InnerSize(), cursor); err != nil {
				log.Error("Failed to draw: ", err)
			}
		case event.CursorMoved:
			cursor = e.Window.Position
			win.RequestRedraw()
		case event.Focused:
			if e.Window.Focused {
				win.SetCursor(window.CursorCrosshair)
			} else {
				win.SetCursor(window.CursorDefault)
			}
		case event.KeyboardInput:
			if e.Window.State == event.Pressed && e.Window.Key == "Escape" {
				win.Close()
				return
			}
		case event.ReceivedCharacter:
			log.Printf("typed %q", e.Window.Char)
		case event.MouseInput:
			win.RequestRedraw()
		case event.Destroyed:
			log.Print("window closed")
			return
		}
		log.Debugf("%s %+v", e.Window.Kind, e.Window)
	})

	win, err = window.New(doc, runner, attr)
	if err != nil {
		log.Error("Failed to create window: ", err)
		os.Exit(1)
	}
	canvas, ok := win.Canvas().(*dom.Element)
	if !ok {
		log.Errorf("Unexpected canvas type %T", win.Canvas())
		os.Exit(1)
	}
	ctx, err = canvas.JSValue().Call("getContext", "2d")
	if err != nil {
		log.Error("Failed to get 2D context: ", err)
		os.Exit(1)
	}
	log.Printf("Opened %gx%g canvas on %s", win.InnerSize().Width, win.InnerSize().Height, win.CurrentMonitor().Name())
	win.RequestRedraw()

	select {}
}

// draw clears the canvas and marks the last cursor position.
func draw(ctx safejs.Value, size window.LogicalSize, cursor event.Position) error {
	if err := ctx.Set("fillStyle", "#222"); err != nil {
		return err
	}
	if _, err := ctx.Call("fillRect", 0, 0, size.Width, size.Height); err != nil {
		return err
	}
	if err := ctx.Set("fillStyle", "#e0a030"); err != nil {
		return err
	}
	_, err := ctx.Call("fillRect", cursor.X-4, cursor.Y-4, 8, 8)
	return err
}
