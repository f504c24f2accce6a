package quirk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/quirk/pkg/types"
	"github.com/mesh-intelligence/quirk/pkg/widget"
)

func TestSetDispatchesToTypedSetter(t *testing.T) {
	icon := widget.NewPane()
	tests := []struct {
		name  string
		kind  types.Kind
		value any
		check func(t *testing.T, l *widget.Label)
	}{
		{
			name: "style", kind: types.KindStyle, value: "bold",
			check: func(t *testing.T, l *widget.Label) { assert.Equal(t, "bold", l.Style()) },
		},
		{
			name: "text", kind: types.KindText, value: "hi",
			check: func(t *testing.T, l *widget.Label) { assert.Equal(t, "hi", l.Text()) },
		},
		{
			name: "graphic", kind: types.KindGraphic, value: icon,
			check: func(t *testing.T, l *widget.Label) { assert.Same(t, icon, l.Graphic()) },
		},
		{
			name: "align typed", kind: types.KindAlign, value: types.AlignTopRight,
			check: func(t *testing.T, l *widget.Label) { assert.Equal(t, types.AlignTopRight, l.Alignment()) },
		},
		{
			name: "align name", kind: types.KindAlign, value: "BASELINE_CENTER",
			check: func(t *testing.T, l *widget.Label) { assert.Equal(t, types.AlignBaselineCenter, l.Alignment()) },
		},
		{
			name: "text align typed", kind: types.KindTextAlign, value: types.TextAlignJustify,
			check: func(t *testing.T, l *widget.Label) { assert.Equal(t, types.TextAlignJustify, l.TextAlignment()) },
		},
		{
			name: "text align name", kind: types.KindTextAlign, value: "RIGHT",
			check: func(t *testing.T, l *widget.Label) { assert.Equal(t, types.TextAlignRight, l.TextAlignment()) },
		},
		{
			name: "preset", kind: types.KindPreset, value: NewPreset().SetText("from preset"),
			check: func(t *testing.T, l *widget.Label) { assert.Equal(t, "from preset", l.Text()) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label := widget.NewLabel()
			h := &recordingHandler{}
			q := NewBinding(label, WithHandler(h))

			got := q.Set(tt.kind, tt.value)

			assert.Same(t, q, got)
			assert.Empty(t, h.got)
			tt.check(t, label)
		})
	}
}

func TestSetMatchesDirectSetterOnPreset(t *testing.T) {
	direct := NewPreset().SetAlignName("BASELINE_LEFT").SetText("x")
	generic := NewPreset().Set(types.KindAlign, "BASELINE_LEFT").Set(types.KindText, "x")

	assert.Equal(t, direct.Entries(), generic.Entries())
}

func TestSetRejectsBadPayload(t *testing.T) {
	tests := []struct {
		name   string
		kind   types.Kind
		values []any
	}{
		{name: "no value", kind: types.KindText, values: nil},
		{name: "two values", kind: types.KindStyle, values: []any{"a", "b"}},
		{name: "int text", kind: types.KindText, values: []any{42}},
		{name: "untyped nil preset", kind: types.KindPreset, values: []any{nil}},
		{name: "align as text align", kind: types.KindAlign, values: []any{types.TextAlignLeft}},
		{name: "text align as int", kind: types.KindTextAlign, values: []any{3}},
		{name: "int graphic", kind: types.KindGraphic, values: []any{42}},
		{name: "string graphic", kind: types.KindGraphic, values: []any{"icon.png"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &recordingHandler{handled: false}
			p := NewPreset(WithHandler(h))

			got := p.Set(tt.kind, tt.values...)

			assert.Nil(t, got)
			assert.Zero(t, p.Len())
			require.Len(t, h.got, 1)
			assert.Equal(t, CodeInvalidValue, h.got[0].Code)
			assert.Equal(t, tt.kind, h.got[0].Kind)
			assert.ErrorIs(t, h.got[0], types.ErrInvalidValue)
		})
	}
}

func TestSetUnknownKindPanics(t *testing.T) {
	assert.PanicsWithError(t, "quirk: unknown property kind: Kind(17)", func() {
		NewPreset().Set(types.Kind(17), "x")
	})
	assert.Panics(t, func() { NewLabel().Get(types.Kind(-3)) })
}

func TestPresetGetLastWriteWins(t *testing.T) {
	p := NewPreset().SetStyle("a").SetText("t").SetStyle("b")

	v, ok := p.Get(types.KindStyle)
	require.True(t, ok)
	assert.Equal(t, "b", v)

	style, ok := p.Style()
	require.True(t, ok)
	assert.Equal(t, "b", style)

	_, ok = p.Get(types.KindAlign)
	assert.False(t, ok)
}

func TestPresetGetNested(t *testing.T) {
	first := NewPreset().SetText("1")
	second := NewPreset().SetText("2")
	p := NewPreset().SetPreset(first).SetPreset(second)

	got, ok := GetAs[*Quirk](p, types.KindPreset)
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestBindingGetReadsLiveState(t *testing.T) {
	label := widget.NewLabel()
	q := NewBinding(label)
	label.SetText("changed behind the binding")
	label.SetAlignment(types.AlignBottomCenter)

	text, ok := q.Text()
	require.True(t, ok)
	assert.Equal(t, "changed behind the binding", text)

	align, ok := q.Align()
	require.True(t, ok)
	assert.Equal(t, types.AlignBottomCenter, align)

	textAlign, ok := q.TextAlign()
	require.True(t, ok)
	assert.Equal(t, types.TextAlignLeft, textAlign)

	_, ok = q.Get(types.KindPreset)
	assert.False(t, ok)
}

func TestBindingGetWithoutCapability(t *testing.T) {
	q := Wrap(&opaque{})
	for _, k := range types.Kinds {
		_, ok := q.Get(k)
		assert.False(t, ok, "Get(%v)", k)
	}

	pane := NewPane().SetStyle("only style")
	style, ok := pane.Style()
	require.True(t, ok)
	assert.Equal(t, "only style", style)
	_, ok = pane.Align()
	assert.False(t, ok)
}

func TestGetAsTypeMismatchIsAbsent(t *testing.T) {
	q := NewLabel().SetText("text")

	n, ok := GetAs[int](q, types.KindText)
	assert.False(t, ok)
	assert.Zero(t, n)

	s, ok := GetAs[string](q, types.KindText)
	assert.True(t, ok)
	assert.Equal(t, "text", s)

	_, ok = GetAs[*widget.Button](NewLabel().SetGraphic(widget.NewPane()), types.KindGraphic)
	assert.False(t, ok)
}

func TestNilPointerGraphicIsAbsent(t *testing.T) {
	for _, mode := range []string{"preset", "binding"} {
		t.Run(mode, func(t *testing.T) {
			var q *Quirk
			if mode == "preset" {
				q = NewPreset()
			} else {
				q = NewLabel().SetGraphic(widget.NewPane())
			}

			got := q.SetGraphic((*widget.Label)(nil))
			require.Same(t, q, got)

			v, ok := q.Get(types.KindGraphic)
			assert.False(t, ok)
			assert.Nil(t, v)
			_, ok = q.Graphic()
			assert.False(t, ok)
		})
	}

	var nilPane *widget.Pane
	p := NewPreset().Set(types.KindGraphic, nilPane)
	require.Equal(t, 1, p.Len())
	assert.Nil(t, p.Entries()[0].Value())
}
