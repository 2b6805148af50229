//go:build js && wasm
// +build js,wasm

package dom

import (
	"github.com/hack-pad/safejs"
	"github.com/hack-pad/webwindow/internal/host"
)

func newRect(domRect safejs.Value) (host.Rect, error) {
	var rect host.Rect
	for _, field := range []struct {
		name  string
		value *float64
	}{
		{"left", &rect.Left},
		{"top", &rect.Top},
		{"right", &rect.Right},
		{"bottom", &rect.Bottom},
		{"width", &rect.Width},
		{"height", &rect.Height},
	} {
		value, err := domRect.Get(field.name)
		if err != nil {
			return host.Rect{}, err
		}
		*field.value, err = value.Float()
		if err != nil {
			return host.Rect{}, err
		}
	}
	return rect, nil
}
