package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mesh-intelligence/quirk/pkg/types"
	"github.com/mesh-intelligence/quirk/pkg/widget"
)

var _ types.WidgetTable = (*widgetsTable)(nil)

// timeLayout is fixed-width so timestamps sort correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

type widgetsTable struct {
	backend *Backend
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// widgetRow is the raw column set of one widgets row.
type widgetRow struct {
	id        string
	kind      string
	style     string
	text      string
	graphicID sql.NullString
	align     sql.NullString
	textAlign sql.NullString
	createdAt string
	updatedAt string
}

func scanWidgetRow(s rowScanner) (widgetRow, error) {
	var r widgetRow
	err := s.Scan(&r.id, &r.kind, &r.style, &r.text, &r.graphicID, &r.align, &r.textAlign, &r.createdAt, &r.updatedAt)
	return r, err
}

// db returns the open database or ErrStoreDetached.
// The caller must hold backend.mu.
func (wt *widgetsTable) db() (*sql.DB, error) {
	if !wt.backend.attached {
		return nil, types.ErrStoreDetached
	}
	return wt.backend.db, nil
}

// Create inserts a widget of the given kind with its default property values.
func (wt *widgetsTable) Create(kind string) (types.Target, error) {
	w, err := widget.NewWithID(kind, generateUUID())
	if err != nil {
		return nil, err
	}

	wt.backend.mu.Lock()
	defer wt.backend.mu.Unlock()

	db, err := wt.db()
	if err != nil {
		return nil, err
	}

	cols := columnsFor(w)
	now := time.Now().UTC().Format(timeLayout)
	_, err = db.Exec(
		"INSERT INTO widgets ("+widgetColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		w.ID(), w.Kind(), cols.style, cols.text, cols.graphicID, cols.align, cols.textAlign, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting widget: %w", err)
	}
	return w, nil
}

// Get loads a widget and, when it has one, its graphic.
func (wt *widgetsTable) Get(id string) (types.Target, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	wt.backend.mu.RLock()
	defer wt.backend.mu.RUnlock()

	db, err := wt.db()
	if err != nil {
		return nil, err
	}
	return wt.load(db, id, true)
}

// load reads one row. The graphic is hydrated only when withGraphic is set;
// otherwise, as for a graphic's own graphic, it stays a widget.Ref.
func (wt *widgetsTable) load(db *sql.DB, id string, withGraphic bool) (widget.Widget, error) {
	row := db.QueryRow("SELECT "+widgetColumns+" FROM widgets WHERE widget_id = ?", id)
	r, err := scanWidgetRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting widget %s: %w", id, err)
	}

	w, err := hydrate(r)
	if err != nil {
		return nil, err
	}
	if withGraphic && r.graphicID.Valid {
		if l, ok := w.(types.Labeled); ok {
			g, err := wt.load(db, r.graphicID.String, false)
			if err != nil {
				return nil, fmt.Errorf("loading graphic of %s: %w", id, err)
			}
			l.SetGraphic(g)
		}
	}
	return w, nil
}

// Save writes the widget's current properties back to its row.
func (wt *widgetsTable) Save(target types.Target) error {
	w, ok := target.(widget.Widget)
	if !ok {
		return fmt.Errorf("%w: %T is not a stored widget", types.ErrInvalidData, target)
	}
	if w.ID() == "" {
		return types.ErrInvalidID
	}
	cols := columnsFor(w)
	if l, ok := w.(types.Labeled); ok && l.Graphic() != nil {
		g, ok := l.Graphic().(types.Identified)
		if !ok || g.ID() == "" {
			return fmt.Errorf("%w: graphic of %s is not a stored widget", types.ErrInvalidData, w.ID())
		}
		cols.graphicID = sql.NullString{String: g.ID(), Valid: true}
	}

	wt.backend.mu.Lock()
	defer wt.backend.mu.Unlock()

	db, err := wt.db()
	if err != nil {
		return err
	}

	res, err := db.Exec(
		"UPDATE widgets SET style = ?, text = ?, graphic_id = ?, align = ?, text_align = ?, updated_at = ? WHERE widget_id = ?",
		cols.style, cols.text, cols.graphicID, cols.align, cols.textAlign,
		time.Now().UTC().Format(timeLayout), w.ID(),
	)
	if err != nil {
		return fmt.Errorf("updating widget %s: %w", w.ID(), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating widget %s: %w", w.ID(), err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Delete removes a widget. Widgets that used it as their graphic lose it.
func (wt *widgetsTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	wt.backend.mu.Lock()
	defer wt.backend.mu.Unlock()

	db, err := wt.db()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM widgets WHERE widget_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting widget %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting widget %s: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// List returns every widget ordered by creation time. Graphics are left as
// widget.Ref values; use Get for a single widget with its graphic loaded.
func (wt *widgetsTable) List() ([]types.Target, error) {
	wt.backend.mu.RLock()
	defer wt.backend.mu.RUnlock()

	db, err := wt.db()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT " + widgetColumns + " FROM widgets ORDER BY created_at, widget_id")
	if err != nil {
		return nil, fmt.Errorf("listing widgets: %w", err)
	}
	defer rows.Close()

	out := make([]types.Target, 0)
	for rows.Next() {
		r, err := scanWidgetRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning widget: %w", err)
		}
		w, err := hydrate(r)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing widgets: %w", err)
	}
	return out, nil
}

// hydrate builds a widget from its row. A stored graphic becomes a
// widget.Ref so that Save keeps the link.
func hydrate(r widgetRow) (widget.Widget, error) {
	w, err := widget.NewWithID(r.kind, r.id)
	if err != nil {
		return nil, fmt.Errorf("hydrating widget %s: %w", r.id, err)
	}
	w.SetStyle(r.style)

	l, ok := w.(types.Labeled)
	if !ok {
		return w, nil
	}
	l.SetText(r.text)
	if r.graphicID.Valid {
		l.SetGraphic(widget.Ref(r.graphicID.String))
	}
	if r.align.Valid {
		a, err := types.ParseAlign(r.align.String)
		if err != nil {
			return nil, fmt.Errorf("hydrating widget %s: %w", r.id, err)
		}
		l.SetAlignment(a)
	}
	if r.textAlign.Valid {
		ta, err := types.ParseTextAlign(r.textAlign.String)
		if err != nil {
			return nil, fmt.Errorf("hydrating widget %s: %w", r.id, err)
		}
		l.SetTextAlignment(ta)
	}
	return w, nil
}

// widgetCols holds the mutable columns derived from a widget.
type widgetCols struct {
	style     string
	text      string
	graphicID sql.NullString
	align     sql.NullString
	textAlign sql.NullString
}

// columnsFor derives column values from w. Labeled-only columns stay NULL
// for widgets without the capability; graphicID is filled in by Save.
func columnsFor(w widget.Widget) widgetCols {
	cols := widgetCols{style: w.Style()}
	if l, ok := w.(types.Labeled); ok {
		cols.text = l.Text()
		cols.align = sql.NullString{String: l.Alignment().String(), Valid: true}
		cols.textAlign = sql.NullString{String: l.TextAlignment().String(), Valid: true}
	}
	return cols
}
