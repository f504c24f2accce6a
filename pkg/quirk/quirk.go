package quirk

import (
	"github.com/mesh-intelligence/quirk/pkg/types"
	"github.com/mesh-intelligence/quirk/pkg/widget"
)

// Quirk is either a preset or a binding, fixed at construction.
// A preset owns an append-only list of entries and no Target; a binding holds
// a Target it does not own and records nothing.
type Quirk struct {
	preset  bool
	entries []Entry
	target  types.Target
	handler Handler
}

// Option configures a Quirk at construction.
type Option func(*Quirk)

// WithHandler sets the Handler this Quirk reports failures to, overriding the
// process-wide one from SetErrorHandler.
func WithHandler(h Handler) Option {
	return func(q *Quirk) {
		q.handler = h
	}
}

func newQuirk(opts []Option) *Quirk {
	q := &Quirk{}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// NewPreset creates an empty preset.
func NewPreset(opts ...Option) *Quirk {
	q := newQuirk(opts)
	q.preset = true
	return q
}

// NewBinding creates a binding around target. It panics if target is nil,
// since a binding without a Target has nothing to forward to.
func NewBinding(target types.Target, opts ...Option) *Quirk {
	if target == nil {
		panic("quirk: NewBinding called with nil target")
	}
	q := newQuirk(opts)
	q.target = target
	return q
}

// Wrap is NewBinding under the name used when re-wrapping a Target obtained
// elsewhere, such as from Unwrap or a store.
func Wrap(target types.Target, opts ...Option) *Quirk {
	return NewBinding(target, opts...)
}

// NewLabel binds a new widget.Label.
func NewLabel(opts ...Option) *Quirk {
	return NewBinding(widget.NewLabel(), opts...)
}

// NewButton binds a new widget.Button.
func NewButton(opts ...Option) *Quirk {
	return NewBinding(widget.NewButton(), opts...)
}

// NewPane binds a new widget.Pane.
func NewPane(opts ...Option) *Quirk {
	return NewBinding(widget.NewPane(), opts...)
}

// IsPreset reports whether q records entries.
func (q *Quirk) IsPreset() bool {
	return q != nil && q.preset
}

// IsBinding reports whether q wraps a Target.
func (q *Quirk) IsBinding() bool {
	return q != nil && !q.preset
}

// Entries returns a copy of the recorded entries in insertion order.
// It is nil for bindings.
func (q *Quirk) Entries() []Entry {
	if !q.IsPreset() || len(q.entries) == 0 {
		return nil
	}
	return append([]Entry(nil), q.entries...)
}

// Len returns the number of recorded entries.
func (q *Quirk) Len() int {
	if q == nil {
		return 0
	}
	return len(q.entries)
}

// Unwrap returns the bound Target, or nil for presets.
func (q *Quirk) Unwrap() types.Target {
	if q == nil {
		return nil
	}
	return q.target
}

// TargetAs returns the bound Target as a T. It reports false for presets and
// for Targets that are not a T.
func TargetAs[T any](q *Quirk) (T, bool) {
	t, ok := q.Unwrap().(T)
	return t, ok
}

func (q *Quirk) record(kind types.Kind, values ...any) {
	q.entries = append(q.entries, NewEntry(kind, values...))
}

func (q *Quirk) errorHandler() Handler {
	if q.handler != nil {
		return q.handler
	}
	return ErrorHandler()
}

// fail reports d and returns q if the handler recovered, nil otherwise.
func (q *Quirk) fail(d Diagnostic) *Quirk {
	if q.errorHandler().Handle(d) {
		return q
	}
	return nil
}
