//go:build js && wasm
// +build js,wasm

package log

import (
	"syscall/js"

	"github.com/hack-pad/webwindow/internal/global"
)

var (
	console = js.Global().Get("console")
)

const logLevelKey = "logLevel"

func init() {
	global.SetDefault(logLevelKey, LevelLog.String())
	global.SetDefault("setLogLevel", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) < 1 {
			return nil
		}
		SetLevel(ParseLevel(args[0].String()))
		return logLevel.String()
	}))
}

func SetLevel(level Level) {
	if level.Valid() {
		logLevel = level
		global.Set(logLevelKey, logLevel.String())
	}
}

func writeLog(l Level, s string) {
	console.Call(l.String(), s)
}
