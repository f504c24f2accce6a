package types

import "errors"

// Property dispatch errors. They surface through quirk Diagnostics and can be
// matched with errors.Is.
var (
	ErrInvalidEnum  = errors.New("invalid enum conversion")
	ErrCyclicPreset = errors.New("cyclic preset")
	ErrInvalidValue = errors.New("invalid property value")
	ErrUnknownKind  = errors.New("unknown property kind")
)

// Widget store errors.
var (
	ErrNotFound          = errors.New("widget not found")
	ErrInvalidID         = errors.New("invalid widget ID")
	ErrInvalidData       = errors.New("invalid widget data")
	ErrUnknownWidgetKind = errors.New("unknown widget kind")
	ErrStoreDetached     = errors.New("store is detached")
	ErrAlreadyAttached   = errors.New("store is already attached")
)
