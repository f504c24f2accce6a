package types

import "fmt"

// Align positions a widget's content inside its bounds.
// Treated as an opaque enumeration; layout is the toolkit's concern.
type Align int

// Alignment values, in canonical order.
const (
	AlignTopLeft Align = iota
	AlignTopCenter
	AlignTopRight
	AlignCenterLeft
	AlignCenter
	AlignCenterRight
	AlignBottomLeft
	AlignBottomCenter
	AlignBottomRight
	AlignBaselineLeft
	AlignBaselineCenter
	AlignBaselineRight
)

var alignNames = [...]string{
	AlignTopLeft:        "TOP_LEFT",
	AlignTopCenter:      "TOP_CENTER",
	AlignTopRight:       "TOP_RIGHT",
	AlignCenterLeft:     "CENTER_LEFT",
	AlignCenter:         "CENTER",
	AlignCenterRight:    "CENTER_RIGHT",
	AlignBottomLeft:     "BOTTOM_LEFT",
	AlignBottomCenter:   "BOTTOM_CENTER",
	AlignBottomRight:    "BOTTOM_RIGHT",
	AlignBaselineLeft:   "BASELINE_LEFT",
	AlignBaselineCenter: "BASELINE_CENTER",
	AlignBaselineRight:  "BASELINE_RIGHT",
}

// AlignValues returns every Align member in canonical order.
func AlignValues() []Align {
	out := make([]Align, len(alignNames))
	for i := range alignNames {
		out[i] = Align(i)
	}
	return out
}

// Valid reports whether a is a declared Align member.
func (a Align) Valid() bool {
	return a >= 0 && int(a) < len(alignNames)
}

func (a Align) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Align(%d)", int(a))
	}
	return alignNames[a]
}

// ParseAlign returns the Align member whose canonical name equals name.
// Matching is exact and case-sensitive.
// Returns ErrInvalidEnum if nothing matches.
func ParseAlign(name string) (Align, error) {
	for i, n := range alignNames {
		if n == name {
			return Align(i), nil
		}
	}
	return 0, fmt.Errorf("%w: align %q", ErrInvalidEnum, name)
}

// TextAlign controls how lines of text are laid out relative to each other.
type TextAlign int

// Text alignment values, in canonical order.
const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
	TextAlignJustify
)

var textAlignNames = [...]string{
	TextAlignLeft:    "LEFT",
	TextAlignCenter:  "CENTER",
	TextAlignRight:   "RIGHT",
	TextAlignJustify: "JUSTIFY",
}

// TextAlignValues returns every TextAlign member in canonical order.
func TextAlignValues() []TextAlign {
	out := make([]TextAlign, len(textAlignNames))
	for i := range textAlignNames {
		out[i] = TextAlign(i)
	}
	return out
}

// Valid reports whether t is a declared TextAlign member.
func (t TextAlign) Valid() bool {
	return t >= 0 && int(t) < len(textAlignNames)
}

func (t TextAlign) String() string {
	if !t.Valid() {
		return fmt.Sprintf("TextAlign(%d)", int(t))
	}
	return textAlignNames[t]
}

// ParseTextAlign returns the TextAlign member whose canonical name equals name.
// Returns ErrInvalidEnum if nothing matches.
func ParseTextAlign(name string) (TextAlign, error) {
	for i, n := range textAlignNames {
		if n == name {
			return TextAlign(i), nil
		}
	}
	return 0, fmt.Errorf("%w: text align %q", ErrInvalidEnum, name)
}
