package logging

import (
	"path"
	"reflect"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// hookFunctions are the names of the Fire frames, for both the value and pointer receiver.
// It is populated in init to avoid an initialization cycle through Fire.
var hookFunctions map[string]bool

func init() {
	hookFunctions = map[string]bool{
		runtime.FuncForPC(reflect.ValueOf(ContextHook.Fire).Pointer()).Name():    true,
		runtime.FuncForPC(reflect.ValueOf((*ContextHook).Fire).Pointer()).Name(): true,
	}
}

// ContextHook will add go source information (file, line, func) of the code which logged
// the entry.
type ContextHook struct{}

// Levels defines which logging levels fire the hook. In our case, all levels.
func (hook ContextHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire walks up the call stack, skipping logrus itself, and records the first caller found.
func (hook ContextHook) Fire(entry *logrus.Entry) error {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "github.com/sirupsen/logrus.") && !hookFunctions[frame.Function] {
			entry.Data["file"] = path.Base(frame.File)
			entry.Data["line"] = frame.Line
			entry.Data["func"] = path.Base(frame.Function)
			break
		}
		if !more {
			break
		}
	}
	return nil
}
