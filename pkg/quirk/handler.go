package quirk

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/mesh-intelligence/quirk/pkg/types"
)

// Diagnostic codes passed to a Handler.
const (
	CodeWrongEnum    = "WRONG_ENUM"
	CodeCyclicPreset = "CYCLIC_PRESET"
	CodeInvalidValue = "INVALID_VALUE"
)

// Diagnostic messages paired with the codes above.
const (
	MsgWrongEnum    = "A parameter not corresponding to the enum values was passed, String to Enum conversion is not possible"
	MsgCyclicPreset = "A preset cannot embed itself, directly or through another preset"
	MsgInvalidValue = "A property value of the wrong type or arity was passed"
)

// Diagnostic describes a recoverable setter failure.
type Diagnostic struct {
	Code    string     // One of the Code constants.
	Message string     // Human-readable description of Code.
	Kind    types.Kind // Property being set.
	Input   any        // Offending input as passed by the caller.
	Err     error      // Underlying error; matches a types sentinel with errors.Is.
}

func (d Diagnostic) Error() string {
	if d.Err == nil {
		return d.Code + " " + d.Message
	}
	return fmt.Sprintf("%s %s: %v", d.Code, d.Message, d.Err)
}

func (d Diagnostic) Unwrap() error { return d.Err }

//go:generate mockgen -package=quirk -destination=mock_handler_test.go github.com/mesh-intelligence/quirk/pkg/quirk Handler

// Handler decides what a failed setter does. Handle returns true when the
// failure counts as recovered, in which case the setter returns its receiver
// unchanged; false makes the setter return nil.
type Handler interface {
	Handle(d Diagnostic) bool
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(d Diagnostic) bool

// Handle calls f(d).
func (f HandlerFunc) Handle(d Diagnostic) bool { return f(d) }

// StrictHandler reports every failure as unhandled without logging it.
var StrictHandler Handler = HandlerFunc(func(Diagnostic) bool { return false })

type logHandler struct {
	logger *slog.Logger
}

// NewLogHandler returns a Handler that logs each diagnostic at error level
// and reports it as handled. A nil logger means slog.Default() at the time
// of each call.
func NewLogHandler(logger *slog.Logger) Handler {
	return &logHandler{logger: logger}
}

func (h *logHandler) Handle(d Diagnostic) bool {
	logger := h.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.LogAttrs(context.Background(), slog.LevelError, d.Code+" "+d.Message,
		slog.String("code", d.Code),
		slog.String("kind", d.Kind.String()),
		slog.String("input", fmt.Sprint(d.Input)),
		slog.String("error", d.Error()),
	)
	return true
}

type handlerHolder struct {
	h Handler
}

var builtinHandler = NewLogHandler(nil)

var errorHandler atomic.Pointer[handlerHolder]

func init() {
	errorHandler.Store(&handlerHolder{h: builtinHandler})
}

// SetErrorHandler replaces the process-wide Handler used by every Quirk that
// was not given one with WithHandler. A nil h restores the built-in handler,
// which logs through slog.Default() and always reports handled.
//
// Install handlers during program setup; replacing the handler while other
// goroutines are setting properties gives no ordering guarantee about which
// handler sees a given failure.
func SetErrorHandler(h Handler) {
	if h == nil {
		h = builtinHandler
	}
	errorHandler.Store(&handlerHolder{h: h})
}

// ErrorHandler returns the current process-wide Handler.
func ErrorHandler() Handler {
	return errorHandler.Load().h
}
