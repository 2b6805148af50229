//go:build js && wasm
// +build js,wasm

// Package global exposes runtime settings on a JS object so they can be
// changed from the devtools console.
package global

import "syscall/js"

const globalKey = "webWindow"

var globals js.Value

func init() {
	global := js.Global()
	if !global.Get(globalKey).Truthy() {
		global.Set(globalKey, map[string]interface{}{})
	}
	globals = global.Get(globalKey)
}

func SetDefault(key string, value interface{}) {
	if globals.Get(key).IsUndefined() {
		globals.Set(key, value)
	}
}

func Set(key string, value interface{}) {
	globals.Set(key, value)
}
