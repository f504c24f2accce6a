package quirk

import (
	"fmt"

	"github.com/mesh-intelligence/quirk/pkg/types"
)

// SetPreset composes or applies other.
//
// On a preset it records a PRESET entry holding other itself, not a copy:
// later changes to other show up wherever q is applied. Embedding that would
// make q reachable from itself is reported to the Handler as CYCLIC_PRESET
// and nothing is recorded, so replay always terminates.
//
// On a binding it replays other's entries in order through Set, recursing
// into nested presets where they were embedded. Replay does not modify other.
// It stops and returns nil as soon as a replayed setter does.
//
// A nil other, or a binding passed as other to a binding, is a no-op.
func (q *Quirk) SetPreset(other *Quirk) *Quirk {
	if q == nil {
		return nil
	}
	if other == nil {
		return q
	}
	if q.preset {
		if other == q || other.embeds(q) {
			return q.fail(Diagnostic{
				Code:    CodeCyclicPreset,
				Message: MsgCyclicPreset,
				Kind:    types.KindPreset,
				Input:   other,
				Err:     fmt.Errorf("%w: embedding would nest the preset inside itself", types.ErrCyclicPreset),
			})
		}
		q.record(types.KindPreset, other)
		return q
	}
	if !other.preset {
		return q
	}
	return q.apply(other)
}

// apply replays p's entries against q's Target.
func (q *Quirk) apply(p *Quirk) *Quirk {
	for _, e := range p.entries {
		if q.Set(e.kind, e.values...) == nil {
			return nil
		}
	}
	return q
}

// embeds reports whether target is reachable through q's PRESET entries.
func (q *Quirk) embeds(target *Quirk) bool {
	seen := make(map[*Quirk]bool)
	var walk func(p *Quirk) bool
	walk = func(p *Quirk) bool {
		if seen[p] {
			return false
		}
		seen[p] = true
		for _, e := range p.entries {
			if e.kind != types.KindPreset {
				continue
			}
			nested, ok := e.Value().(*Quirk)
			if !ok || nested == nil {
				continue
			}
			if nested == target || walk(nested) {
				return true
			}
		}
		return false
	}
	return walk(q)
}
