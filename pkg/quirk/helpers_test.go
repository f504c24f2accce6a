package quirk

import (
	"fmt"

	"github.com/mesh-intelligence/quirk/pkg/types"
	"github.com/mesh-intelligence/quirk/pkg/widget"
)

// recordingHandler captures diagnostics and answers with handled.
type recordingHandler struct {
	handled bool
	got     []Diagnostic
}

func (h *recordingHandler) Handle(d Diagnostic) bool {
	h.got = append(h.got, d)
	return h.handled
}

// tracedLabel is a Labeled target that logs every setter call in order.
type tracedLabel struct {
	*widget.Label
	calls []string
}

func newTracedLabel() *tracedLabel {
	return &tracedLabel{Label: widget.NewLabel()}
}

func (t *tracedLabel) SetStyle(s string) {
	t.calls = append(t.calls, "STYLE="+s)
	t.Label.SetStyle(s)
}

func (t *tracedLabel) SetText(s string) {
	t.calls = append(t.calls, "TEXT="+s)
	t.Label.SetText(s)
}

func (t *tracedLabel) SetGraphic(g types.Target) {
	t.calls = append(t.calls, fmt.Sprintf("GRAPHIC=%T", g))
	t.Label.SetGraphic(g)
}

func (t *tracedLabel) SetAlignment(a types.Align) {
	t.calls = append(t.calls, "ALIGN="+a.String())
	t.Label.SetAlignment(a)
}

func (t *tracedLabel) SetTextAlignment(a types.TextAlign) {
	t.calls = append(t.calls, "TEXTALIGN="+a.String())
	t.Label.SetTextAlignment(a)
}

// opaque is a Target with no capabilities at all.
type opaque struct {
	name string
}
