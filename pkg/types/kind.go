package types

import "fmt"

// Kind identifies which property an entry or dispatch call concerns.
// The set is closed; adding a kind means extending both the entry payload
// contract and the dispatch switch in pkg/quirk.
type Kind int

// Property kinds.
const (
	KindPreset Kind = iota
	KindStyle
	KindText
	KindGraphic
	KindAlign
	KindTextAlign
)

// Kinds lists every property kind in declaration order.
var Kinds = []Kind{
	KindPreset,
	KindStyle,
	KindText,
	KindGraphic,
	KindAlign,
	KindTextAlign,
}

var kindNames = [...]string{
	KindPreset:    "PRESET",
	KindStyle:     "STYLE",
	KindText:      "TEXT",
	KindGraphic:   "GRAPHIC",
	KindAlign:     "ALIGN",
	KindTextAlign: "TEXTALIGN",
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= KindPreset && k <= KindTextAlign
}

// String returns the canonical upper-case name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the kind whose canonical name equals name exactly.
// Returns ErrUnknownKind if no kind matches.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
