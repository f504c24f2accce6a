package quirk

import (
	"fmt"

	"github.com/mesh-intelligence/quirk/pkg/types"
)

// Entry is one recorded property assignment inside a preset. It is immutable;
// Values returns a copy of the payload.
type Entry struct {
	kind   types.Kind
	values []any
}

// NewEntry builds an entry for kind carrying values. No validation happens
// here; payload types are checked when the entry is replayed.
func NewEntry(kind types.Kind, values ...any) Entry {
	return Entry{kind: kind, values: append([]any(nil), values...)}
}

// Kind returns the property the entry assigns.
func (e Entry) Kind() types.Kind { return e.kind }

// Values returns a copy of the entry payload.
func (e Entry) Values() []any { return append([]any(nil), e.values...) }

// Value returns the first payload value, or nil if the payload is empty.
func (e Entry) Value() any {
	if len(e.values) == 0 {
		return nil
	}
	return e.values[0]
}

func (e Entry) String() string {
	if p, ok := e.Value().(*Quirk); ok {
		return fmt.Sprintf("%s=<preset %d entries>", e.kind, p.Len())
	}
	return fmt.Sprintf("%s=%v", e.kind, e.Value())
}
