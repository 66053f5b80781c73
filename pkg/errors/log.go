package errors

import (
	"log/slog"
)

// LogHandler is an ErrorHandler that writes errors to a structured logger.
type LogHandler struct {
	// Logger receives the records. Nil means slog.Default().
	Logger *slog.Logger
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// HandleError logs a RenderError.
func (h *LogHandler) HandleError(err *RenderError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "kind", err.Kind.String()}
	if err.Kind == KindMalformedTree {
		attrs = append(attrs, "value", slog.AnyValue(err.Value))
	}
	if err.Pass != "" {
		attrs = append(attrs, "pass", err.Pass)
	}
	if err.Err != nil {
		attrs = append(attrs, "err", err.Err)
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("render error", attrs...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{"value", slog.AnyValue(err.Value)}
	if err.Op != "" {
		attrs = append(attrs, "op", err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("recovered panic", attrs...)
}
