//go:build js && wasm
// +build js,wasm

package interop

import (
	"syscall/js"

	"github.com/hack-pad/safejs"
	"github.com/pkg/errors"
)

// CatchExceptionHandler must be deferred. It recovers a panic and passes it
// to fn as an error.
func CatchExceptionHandler(fn func(err error)) {
	err := handleRecovery(recover())
	if err != nil {
		fn(err)
	}
}

func handleRecovery(r interface{}) error {
	if r == nil {
		return nil
	}
	switch val := r.(type) {
	case error:
		return val
	case js.Value:
		return js.Error{Value: val}
	case safejs.Value:
		return js.Error{Value: safejs.Unsafe(val)}
	default:
		return errors.Errorf("%+v", val)
	}
}
