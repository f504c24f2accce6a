// Package sqlite exposes the SQLite widget store while keeping the
// implementation in internal/sqlite.
package sqlite

import (
	"github.com/mesh-intelligence/quirk/internal/sqlite"
	"github.com/mesh-intelligence/quirk/pkg/types"
)

// NewBackend returns an unattached SQLite widget store. Call Attach with a
// Config before using its tables.
//
// Example:
//
//	store := sqlite.NewBackend()
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".quirk-db",
//	})
//	defer store.Detach()
//	w, err := store.Widgets().Create(widget.KindLabel)
func NewBackend() types.Store {
	return sqlite.NewBackend()
}
