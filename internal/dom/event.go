//go:build js && wasm
// +build js,wasm

package dom

import (
	"syscall/js"

	"github.com/hack-pad/safejs"
)

// Event reads DOM event properties. Properties that are missing or of
// another JS type read as zero values.
type Event struct {
	value safejs.Value
}

func (e Event) get(property string, want js.Type) (js.Value, bool) {
	value, err := e.value.Get(property)
	if err != nil {
		return js.Value{}, false
	}
	jsValue := safejs.Unsafe(value)
	return jsValue, jsValue.Type() == want
}

func (e Event) Type() string {
	return e.String("type")
}

func (e Event) String(property string) string {
	if value, ok := e.get(property, js.TypeString); ok {
		return value.String()
	}
	return ""
}

func (e Event) Float(property string) float64 {
	if value, ok := e.get(property, js.TypeNumber); ok {
		return value.Float()
	}
	return 0
}

func (e Event) Bool(property string) bool {
	if value, ok := e.get(property, js.TypeBoolean); ok {
		return value.Bool()
	}
	return false
}
