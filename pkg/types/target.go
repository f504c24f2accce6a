package types

// Target is the external widget a binding wraps. It is polymorphic over the
// capability interfaces below; a Target may implement any subset of them,
// including none.
type Target any

// Styleable is implemented by Targets that carry inline style text.
type Styleable interface {
	Style() string
	SetStyle(style string)
}

// Labeled is implemented by Targets that display text with an optional
// graphic next to it.
type Labeled interface {
	Text() string
	SetText(text string)

	// Graphic returns the embedded graphic, or nil when none is set.
	Graphic() Target
	SetGraphic(graphic Target)

	Alignment() Align
	SetAlignment(align Align)

	TextAlignment() TextAlign
	SetTextAlignment(align TextAlign)
}

// Identified is implemented by Targets that carry a stable identifier,
// such as widgets hydrated from a store.
type Identified interface {
	ID() string
}
