//go:build js && wasm
// +build js,wasm

package interop

import "github.com/hack-pad/safejs"

// SingleUseFunc wraps fn in a JS func that releases itself on first call.
// If the func is never called, the caller must Release it.
func SingleUseFunc(fn func(this safejs.Value, args []safejs.Value)) (safejs.Func, error) {
	var (
		wrapperFn safejs.Func
		err       error
	)
	wrapperFn, err = safejs.FuncOf(func(this safejs.Value, args []safejs.Value) interface{} {
		wrapperFn.Release()
		fn(this, args)
		return nil
	})
	return wrapperFn, err
}
