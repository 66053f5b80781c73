// Package errors provides structured error handling for the render runtime.
//
// Failures are classified by [ErrorKind] so callers can tell caller misuse
// (a hook called outside a render) from bad data (a malformed element tree)
// and from failures raised by user code (component functions and effects)
// without matching on messages.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindUsage indicates the API was misused, such as a hook called while
	// no render is active.
	KindUsage
	// KindMalformedTree indicates a value in the element tree that cannot be
	// painted.
	KindMalformedTree
	// KindComponent indicates a failure raised by a component function or an
	// effect action.
	KindComponent
	// KindPanic indicates a recovered panic outside user code.
	KindPanic
	// KindDiagnostic indicates a render observer rejected the hook state.
	KindDiagnostic
)

func (k ErrorKind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindMalformedTree:
		return "malformed-tree"
	case KindComponent:
		return "component"
	case KindPanic:
		return "panic"
	case KindDiagnostic:
		return "diagnostic"
	default:
		return "unknown"
	}
}

var (
	// ErrHookOutsideRender is wrapped by usage errors raised when a hook runs
	// while no render is active.
	ErrHookOutsideRender = stderrors.New("hook used outside an active render")
	// ErrUnexpectedElement is wrapped by malformed-tree errors.
	ErrUnexpectedElement = stderrors.New("unexpected element in tree")
	// ErrStaleSetter is returned by a setter whose slot was dropped by a reset.
	ErrStaleSetter = stderrors.New("setter refers to a slot that no longer exists")
	// ErrRenderActive is wrapped by usage errors raised when a render scope is
	// opened while another render is in progress.
	ErrRenderActive = stderrors.New("a render is already active")
)

// RenderError represents a structured failure of a render pass.
type RenderError struct {
	// Op is the operation that failed (e.g., "core.UseState").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Value is the offending tree value for malformed-tree errors.
	Value any
	// Recovered is the panic value when the failure came from a panic.
	Recovered any
	// Err is the underlying error.
	Err error
	// Pass is the id of the render pass the error occurred in, if any.
	Pass string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RenderError) Error() string {
	switch {
	case e.Kind == KindMalformedTree:
		return fmt.Sprintf("%s [%s]: %v: %#v", e.Op, e.Kind, e.Err, e.Value)
	case e.Err != nil:
		return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
	case e.Recovered != nil:
		return fmt.Sprintf("%s [%s]: panic: %v", e.Op, e.Kind, e.Recovered)
	default:
		return fmt.Sprintf("%s [%s]", e.Op, e.Kind)
	}
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first RenderError in err's chain, or
// KindUnknown if there is none.
func KindOf(err error) ErrorKind {
	var re *RenderError
	if stderrors.As(err, &re) {
		return re.Kind
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "dom.Dispatch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// ErrorHandler receives errors reported by the runtime. It is the
// diagnostic channel malformed tree values are written to.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *RenderError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
