package widget

import "github.com/mesh-intelligence/quirk/pkg/types"

// labeled implements types.Labeled for Label and Button.
type labeled struct {
	base
	text      string
	graphic   types.Target
	align     types.Align
	textAlign types.TextAlign
}

func (l *labeled) Text() string               { return l.text }
func (l *labeled) SetText(text string)        { l.text = text }
func (l *labeled) Graphic() types.Target      { return l.graphic }
func (l *labeled) Alignment() types.Align     { return l.align }
func (l *labeled) SetAlignment(a types.Align) { l.align = a }

// SetGraphic embeds graphic next to the text. A nil graphic clears it.
func (l *labeled) SetGraphic(graphic types.Target) { l.graphic = graphic }

func (l *labeled) TextAlignment() types.TextAlign     { return l.textAlign }
func (l *labeled) SetTextAlignment(a types.TextAlign) { l.textAlign = a }

// Label displays a line of text with an optional graphic.
type Label struct {
	labeled
}

// NewLabel creates a label aligned CENTER_LEFT with LEFT text alignment.
func NewLabel() *Label {
	return &Label{labeled{align: types.AlignCenterLeft, textAlign: types.TextAlignLeft}}
}

// Kind returns KindLabel.
func (l *Label) Kind() string { return KindLabel }

// Button is a labeled widget whose content is centered by default.
type Button struct {
	labeled
}

// NewButton creates a button aligned CENTER with LEFT text alignment.
func NewButton() *Button {
	return &Button{labeled{align: types.AlignCenter, textAlign: types.TextAlignLeft}}
}

// Kind returns KindButton.
func (b *Button) Kind() string { return KindButton }
