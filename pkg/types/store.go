package types

// Store defines backend-agnostic access to persisted widgets.
// Callers attach to a backend, use the widget table, and detach when done.
// Only Targets are stored; presets live in memory.
type Store interface {
	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, table operations return ErrStoreDetached.
	Detach() error

	// Widgets returns the widget table.
	Widgets() WidgetTable
}

// WidgetTable provides CRUD operations over stored widgets. Returned Targets
// are detached in-memory values; mutate them and call Save to persist.
type WidgetTable interface {
	// Create persists a new widget of the given kind with a fresh UUID v7.
	// Returns ErrUnknownWidgetKind if kind is not recognized.
	Create(kind string) (Target, error)

	// Get retrieves the widget with the given ID.
	// Returns ErrNotFound if no widget exists with that ID.
	Get(id string) (Target, error)

	// Save writes the current state of target back to the store.
	// The target must implement Identified and already exist.
	Save(target Target) error

	// Delete removes the widget with the given ID.
	// Returns ErrNotFound if no widget exists with that ID.
	Delete(id string) error

	// List returns every stored widget ordered by creation time.
	List() ([]Target, error)
}
