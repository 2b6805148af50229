package log

import (
	"fmt"
	"runtime"
	"strings"
)

const (
	modulePrefix = "github.com/hack-pad/webwindow/"
)

func getCaller(skip int) string {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	if ix := strings.Index(file, modulePrefix); ix >= 0 {
		file = file[ix+len(modulePrefix):]
	}
	fn := runtime.FuncForPC(pc).Name()
	fn = fn[strings.LastIndexAny(fn, "./")+1:]
	return fmt.Sprintf("%s:%d:%s()", file, line, fn)
}
