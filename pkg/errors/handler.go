package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// SetHandler installs h as the sink for Report and ReportPanic. Nil
// restores a LogHandler writing to slog.Default().
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	handler = h
	handlerMu.Unlock()
}

// CurrentHandler returns the installed handler.
func CurrentHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report stamps err and passes it to the installed handler.
func Report(err *RenderError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	CurrentHandler().HandleError(err)
}

// ReportPanic stamps err and passes it to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	CurrentHandler().HandlePanic(err)
}

// RecoverPanic must be deferred directly. It stops a panic, reports it as a
// *PanicError for op, and hands that error to onPanic when it is not nil:
//
//	defer errors.RecoverPanic("dom.DispatchEvent", func(pe *errors.PanicError) { err = pe })
func RecoverPanic(op string, onPanic func(*PanicError)) {
	r := recover()
	if r == nil {
		return
	}
	pe := &PanicError{Op: op, Value: r, StackTrace: CaptureStack(), Timestamp: time.Now()}
	ReportPanic(pe)
	if onPanic != nil {
		onPanic(pe)
	}
}

// FromPanic turns a value recovered during a render into a *RenderError of
// the given kind. A recovered *RenderError is returned unchanged, so usage
// errors raised by hooks keep their kind.
func FromPanic(op string, kind ErrorKind, r any, pass string) *RenderError {
	if re, ok := r.(*RenderError); ok {
		return re
	}
	err := &RenderError{
		Op:         op,
		Kind:       kind,
		Recovered:  r,
		Pass:       pass,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
	if e, ok := r.(error); ok {
		err.Err = e
	}
	return err
}

// CaptureStack returns the caller's stack, one "function\n\tfile:line"
// entry per frame. Frames inside the Go runtime, such as the panic
// machinery between a deferred recover and the panic site, are left out.
func CaptureStack() string {
	var pcs [48]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var sb strings.Builder
	for more := n > 0; more; {
		var f runtime.Frame
		f, more = frames.Next()
		if strings.HasPrefix(f.Function, "runtime.") || f.Function == "" {
			continue
		}
		sb.WriteString(f.Function)
		sb.WriteString("\n\t")
		sb.WriteString(f.File)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(f.Line))
		sb.WriteByte('\n')
	}
	return sb.String()
}
