// Package quirk records and replays widget property assignments.
//
// A Quirk is created in one of two fixed modes. A preset records every setter
// call as an Entry and touches no widget. A binding wraps a live Target and
// forwards every setter call to it. Applying a preset to a binding replays the
// preset's entries, in order, through the same setters a caller would use:
//
//	header := quirk.NewPreset().
//		SetAlignName("BASELINE_LEFT").
//		SetText("default")
//
//	lbl := quirk.NewLabel().SetPreset(header).SetText("title")
//
// Presets nest: a preset may embed another with SetPreset, and the nested
// entries are replayed at the point they were embedded. Embedding keeps a live
// reference, so later changes to the nested preset are seen by every preset
// that embeds it. An embed that would close a cycle is rejected.
//
// Setters are fail-soft. A property the Target cannot hold is ignored. Enum
// names that do not match, and payloads of the wrong type, are reported to a
// Handler; when the Handler reports the problem as unhandled the setter
// returns nil instead of the receiver. Every method accepts a nil receiver
// and returns nil or an absent result, so a broken chain stays broken.
//
// A Quirk is not safe for concurrent use. Targets are usually owned by a UI
// thread and must only be mutated from it.
package quirk
