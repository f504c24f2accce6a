package quirk

import (
	"fmt"
	"reflect"

	"github.com/mesh-intelligence/quirk/pkg/types"
)

// Set assigns kind from values through the matching typed setter. Every kind
// takes exactly one value. ALIGN and TEXTALIGN also accept the canonical name
// as a string; GRAPHIC takes what SetGraphic accepts. A payload of the wrong type or arity is reported to the
// Handler as INVALID_VALUE. Set panics on a kind outside types.Kinds.
func (q *Quirk) Set(kind types.Kind, values ...any) *Quirk {
	if q == nil {
		return nil
	}
	if !kind.Valid() {
		panic(fmt.Errorf("quirk: %w: %v", types.ErrUnknownKind, kind))
	}
	if len(values) != 1 {
		return q.invalidValue(kind, values)
	}
	value := values[0]

	switch kind {
	case types.KindPreset:
		if p, ok := value.(*Quirk); ok {
			return q.SetPreset(p)
		}
	case types.KindStyle:
		if s, ok := value.(string); ok {
			return q.SetStyle(s)
		}
	case types.KindText:
		if s, ok := value.(string); ok {
			return q.SetText(s)
		}
	case types.KindGraphic:
		return q.SetGraphic(value)
	case types.KindAlign:
		switch v := value.(type) {
		case types.Align:
			return q.SetAlign(v)
		case string:
			return q.SetAlignName(v)
		}
	case types.KindTextAlign:
		switch v := value.(type) {
		case types.TextAlign:
			return q.SetTextAlign(v)
		case string:
			return q.SetTextAlignName(v)
		}
	}
	return q.invalidValue(kind, value)
}

// Get returns the current value of kind. A preset returns the value of its
// most recent entry of that kind. A binding reads the live property from its
// Target and reports false when the Target lacks the capability; PRESET is
// never readable from a binding. A nil value, including a nil pointer, is
// reported as absent. Get panics on a kind outside types.Kinds.
func (q *Quirk) Get(kind types.Kind) (any, bool) {
	if q == nil {
		return nil, false
	}
	if !kind.Valid() {
		panic(fmt.Errorf("quirk: %w: %v", types.ErrUnknownKind, kind))
	}

	var v any
	if q.preset {
		e, ok := q.last(kind)
		if !ok {
			return nil, false
		}
		v = e.Value()
	} else {
		v = q.read(kind)
	}
	if isNil(v) {
		return nil, false
	}
	return v, true
}

// GetAs returns Get(kind) as a T, reporting false when the value is absent
// or of another type.
func GetAs[T any](q *Quirk, kind types.Kind) (T, bool) {
	v, _ := q.Get(kind)
	t, ok := v.(T)
	return t, ok
}

// last returns the most recently recorded entry of kind.
func (q *Quirk) last(kind types.Kind) (Entry, bool) {
	for i := len(q.entries) - 1; i >= 0; i-- {
		if q.entries[i].kind == kind {
			return q.entries[i], true
		}
	}
	return Entry{}, false
}

// read fetches kind from the bound Target, or nil if unsupported.
func (q *Quirk) read(kind types.Kind) any {
	switch kind {
	case types.KindPreset:
		return nil
	case types.KindStyle:
		if s, ok := q.target.(types.Styleable); ok {
			return s.Style()
		}
		return nil
	}

	l, ok := q.target.(types.Labeled)
	if !ok {
		return nil
	}
	switch kind {
	case types.KindText:
		return l.Text()
	case types.KindGraphic:
		return l.Graphic()
	case types.KindAlign:
		return l.Alignment()
	case types.KindTextAlign:
		return l.TextAlignment()
	}
	return nil
}

// isNil reports whether v is nil or a nil pointer, map, slice, func or
// channel held in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Style returns the style text.
func (q *Quirk) Style() (string, bool) { return GetAs[string](q, types.KindStyle) }

// Text returns the displayed text.
func (q *Quirk) Text() (string, bool) { return GetAs[string](q, types.KindText) }

// Graphic returns the embedded graphic.
func (q *Quirk) Graphic() (types.Target, bool) { return q.Get(types.KindGraphic) }

// Align returns the content alignment.
func (q *Quirk) Align() (types.Align, bool) { return GetAs[types.Align](q, types.KindAlign) }

// TextAlign returns the text alignment.
func (q *Quirk) TextAlign() (types.TextAlign, bool) {
	return GetAs[types.TextAlign](q, types.KindTextAlign)
}
