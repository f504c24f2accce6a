// Package sqlite implements the SQLite widget store.
package sqlite

// Schema DDL for the widget store. Statements are idempotent so a store can
// be attached repeatedly to the same data directory.
const (
	createWidgets = `CREATE TABLE IF NOT EXISTS widgets (
    widget_id TEXT PRIMARY KEY,
    kind TEXT NOT NULL,
    style TEXT NOT NULL DEFAULT '',
    text TEXT NOT NULL DEFAULT '',
    graphic_id TEXT,
    align TEXT,
    text_align TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    FOREIGN KEY (graphic_id) REFERENCES widgets(widget_id) ON DELETE SET NULL
);`

	idxWidgetsKind    = `CREATE INDEX IF NOT EXISTS idx_widgets_kind ON widgets(kind);`
	idxWidgetsCreated = `CREATE INDEX IF NOT EXISTS idx_widgets_created ON widgets(created_at);`
)

// schemaDDL lists all statements executed on Attach, in dependency order.
var schemaDDL = []string{
	createWidgets,
	idxWidgetsKind,
	idxWidgetsCreated,
}

// widgetColumns is the column list shared by every widget SELECT.
const widgetColumns = "widget_id, kind, style, text, graphic_id, align, text_align, created_at, updated_at"
