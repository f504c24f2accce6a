package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mesh-intelligence/quirk/internal/sqlite"
	"github.com/mesh-intelligence/quirk/pkg/types"
	"github.com/mesh-intelligence/quirk/pkg/widget"
)

// openStore attaches a SQLite backend using the resolved config.
// The caller must defer Detach.
func (a *app) openStore() (*sqlite.Backend, error) {
	cfg, err := a.storeConfig()
	if err != nil {
		return nil, sysError("%w", err)
	}
	store := sqlite.NewBackend()
	if err := store.Attach(cfg); err != nil {
		if errors.Is(err, types.ErrBackendUnknown) || errors.Is(err, types.ErrBackendEmpty) {
			return nil, userError("attach store: %w", err)
		}
		return nil, sysError("attach store: %w", err)
	}
	a.logger.Debug("attached store", slog.String("data_dir", cfg.DataDir))
	return store, nil
}

// storeError maps table errors to exit codes.
func storeError(op string, err error) error {
	switch {
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrInvalidID),
		errors.Is(err, types.ErrInvalidData),
		errors.Is(err, types.ErrUnknownWidgetKind):
		return userError("%s: %w", op, err)
	default:
		return sysError("%s: %w", op, err)
	}
}

// widgetView is the printable form of a stored widget.
type widgetView struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Style     string `json:"style,omitempty"`
	Text      string `json:"text,omitempty"`
	Graphic   string `json:"graphic,omitempty"`
	Align     string `json:"align,omitempty"`
	TextAlign string `json:"text_align,omitempty"`
}

func viewOf(t types.Target) widgetView {
	var v widgetView
	if id, ok := t.(types.Identified); ok {
		v.ID = id.ID()
	}
	if k, ok := t.(interface{ Kind() string }); ok {
		v.Kind = k.Kind()
	}
	if s, ok := t.(types.Styleable); ok {
		v.Style = s.Style()
	}
	if l, ok := t.(types.Labeled); ok {
		v.Text = l.Text()
		v.Align = l.Alignment().String()
		v.TextAlign = l.TextAlignment().String()
		if g, ok := l.Graphic().(types.Identified); ok {
			v.Graphic = g.ID()
		}
	}
	return v
}

// printWidgets writes views as JSON or as text lines. In JSON mode a list
// prints as an array and a single widget as an object.
func (a *app) printWidgets(w io.Writer, list bool, targets ...types.Target) error {
	views := make([]widgetView, 0, len(targets))
	for _, t := range targets {
		views = append(views, viewOf(t))
	}

	if a.flags.jsonMode {
		var payload any = views
		if !list && len(views) == 1 {
			payload = views[0]
		}
		out, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return sysError("marshal JSON: %w", err)
		}
		fmt.Fprintln(w, string(out))
		return nil
	}

	for _, v := range views {
		fmt.Fprintf(w, "%s  %-6s", v.ID, v.Kind)
		if v.Style != "" {
			fmt.Fprintf(w, "  style=%q", v.Style)
		}
		if v.Kind != widget.KindPane {
			fmt.Fprintf(w, "  text=%q  align=%s  text_align=%s", v.Text, v.Align, v.TextAlign)
		}
		if v.Graphic != "" {
			fmt.Fprintf(w, "  graphic=%s", v.Graphic)
		}
		fmt.Fprintln(w)
	}
	return nil
}
