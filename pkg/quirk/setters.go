package quirk

import (
	"fmt"

	"github.com/mesh-intelligence/quirk/pkg/types"
)

// Each setter forwards to the Target when q is a binding whose Target has the
// capability, and records an entry when q is a preset. Exactly one of the two
// branches is live for a given Quirk.

// SetStyle sets the inline style text.
func (q *Quirk) SetStyle(style string) *Quirk {
	if q == nil {
		return nil
	}
	if s, ok := q.target.(types.Styleable); ok {
		s.SetStyle(style)
	}
	if q.preset {
		q.record(types.KindStyle, style)
	}
	return q
}

// SetText sets the displayed text.
func (q *Quirk) SetText(text string) *Quirk {
	if q == nil {
		return nil
	}
	if l, ok := q.target.(types.Labeled); ok {
		l.SetText(text)
	}
	if q.preset {
		q.record(types.KindText, text)
	}
	return q
}

// SetGraphic embeds graphic next to the text. A *Quirk argument is replaced
// by its bound Target, so one wrapped widget can be another's graphic; a
// preset argument unwraps to nil and clears the graphic, as does a nil
// pointer. Any other graphic must implement Styleable, Labeled or Identified;
// values that implement none are reported as INVALID_VALUE.
func (q *Quirk) SetGraphic(graphic types.Target) *Quirk {
	if q == nil {
		return nil
	}
	if !isGraphic(graphic) {
		return q.invalidValue(types.KindGraphic, graphic)
	}
	if inner, ok := graphic.(*Quirk); ok {
		graphic = inner.Unwrap()
	}
	if isNil(graphic) {
		graphic = nil
	}
	if l, ok := q.target.(types.Labeled); ok {
		l.SetGraphic(graphic)
	}
	if q.preset {
		q.record(types.KindGraphic, graphic)
	}
	return q
}

// SetAlign sets the content alignment.
func (q *Quirk) SetAlign(align types.Align) *Quirk {
	if q == nil {
		return nil
	}
	if !align.Valid() {
		return q.invalidValue(types.KindAlign, align)
	}
	if l, ok := q.target.(types.Labeled); ok {
		l.SetAlignment(align)
	}
	if q.preset {
		q.record(types.KindAlign, align)
	}
	return q
}

// SetAlignName sets the content alignment from its canonical name, such as
// "BASELINE_LEFT". An unknown name is reported to the Handler.
func (q *Quirk) SetAlignName(name string) *Quirk {
	if q == nil {
		return nil
	}
	align, err := types.ParseAlign(name)
	if err != nil {
		return q.wrongEnum(types.KindAlign, name, err)
	}
	return q.SetAlign(align)
}

// SetTextAlign sets how lines of text align to each other.
func (q *Quirk) SetTextAlign(align types.TextAlign) *Quirk {
	if q == nil {
		return nil
	}
	if !align.Valid() {
		return q.invalidValue(types.KindTextAlign, align)
	}
	if l, ok := q.target.(types.Labeled); ok {
		l.SetTextAlignment(align)
	}
	if q.preset {
		q.record(types.KindTextAlign, align)
	}
	return q
}

// SetTextAlignName sets the text alignment from its canonical name, such as
// "JUSTIFY". An unknown name is reported to the Handler.
func (q *Quirk) SetTextAlignName(name string) *Quirk {
	if q == nil {
		return nil
	}
	align, err := types.ParseTextAlign(name)
	if err != nil {
		return q.wrongEnum(types.KindTextAlign, name, err)
	}
	return q.SetTextAlign(align)
}

func (q *Quirk) wrongEnum(kind types.Kind, name string, err error) *Quirk {
	return q.fail(Diagnostic{
		Code:    CodeWrongEnum,
		Message: MsgWrongEnum,
		Kind:    kind,
		Input:   name,
		Err:     err,
	})
}

func (q *Quirk) invalidValue(kind types.Kind, value any) *Quirk {
	return q.fail(Diagnostic{
		Code:    CodeInvalidValue,
		Message: MsgInvalidValue,
		Kind:    kind,
		Input:   value,
		Err:     fmt.Errorf("%w: %s got %T", types.ErrInvalidValue, kind, value),
	})
}

// isGraphic reports whether v can be embedded as a graphic.
func isGraphic(v any) bool {
	switch v.(type) {
	case nil, *Quirk, types.Styleable, types.Labeled, types.Identified:
		return true
	}
	return false
}
