// Package widget provides small in-memory widgets that satisfy the Target
// capability interfaces from pkg/types. They back the quirk label, button
// and pane factories and are what the SQLite store hydrates rows into.
package widget

import (
	"fmt"

	"github.com/mesh-intelligence/quirk/pkg/types"
)

// Widget kind names, as stored and accepted by New.
const (
	KindPane   = "pane"
	KindLabel  = "label"
	KindButton = "button"
)

// Kinds lists the recognized widget kinds.
var Kinds = []string{KindPane, KindLabel, KindButton}

// Widget is the common surface of every widget in this package. All of them
// are Styleable; labels and buttons are also Labeled.
type Widget interface {
	types.Styleable
	types.Identified
	Kind() string
}

var (
	_ Widget        = (*Pane)(nil)
	_ Widget        = (*Label)(nil)
	_ Widget        = (*Button)(nil)
	_ types.Labeled = (*Label)(nil)
	_ types.Labeled = (*Button)(nil)
)

// New creates a widget of the given kind with no ID.
// Returns ErrUnknownWidgetKind if kind is not recognized.
func New(kind string) (Widget, error) {
	return NewWithID(kind, "")
}

// NewWithID creates a widget of the given kind carrying id.
// Stores use it to hydrate persisted rows.
func NewWithID(kind, id string) (Widget, error) {
	switch kind {
	case KindPane:
		return &Pane{base: base{id: id}}, nil
	case KindLabel:
		l := NewLabel()
		l.id = id
		return l, nil
	case KindButton:
		b := NewButton()
		b.id = id
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownWidgetKind, kind)
	}
}

// base holds the state every widget shares.
type base struct {
	id    string
	style string
}

// ID returns the widget identifier, or "" for widgets never stored.
func (b *base) ID() string { return b.id }

// Style returns the inline style text.
func (b *base) Style() string { return b.style }

// SetStyle replaces the inline style text.
func (b *base) SetStyle(style string) { b.style = style }

// Pane is a plain styleable container. It has no text or graphic, so it is
// the smallest Target that still supports STYLE.
type Pane struct {
	base
}

// NewPane creates an empty pane.
func NewPane() *Pane { return &Pane{} }

// Kind returns KindPane.
func (p *Pane) Kind() string { return KindPane }

// Ref stands in for a stored widget that was not loaded. It carries only the
// ID, so a widget holding a Ref as its graphic saves with the link intact.
type Ref string

// ID returns the referenced widget's ID.
func (r Ref) ID() string { return string(r) }
