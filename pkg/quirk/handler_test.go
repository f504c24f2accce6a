package quirk

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/quirk/pkg/types"
	"github.com/mesh-intelligence/quirk/pkg/widget"
)

func TestEnumNameMatchesTypedValue(t *testing.T) {
	byName := widget.NewLabel()
	byValue := widget.NewLabel()

	NewBinding(byName).SetAlignName("BASELINE_LEFT").SetTextAlignName("JUSTIFY")
	NewBinding(byValue).SetAlign(types.AlignBaselineLeft).SetTextAlign(types.TextAlignJustify)
	assert.Equal(t, byValue, byName)

	p1 := NewPreset().SetAlignName("BASELINE_LEFT")
	p2 := NewPreset().SetAlign(types.AlignBaselineLeft)
	assert.Equal(t, p2.Entries(), p1.Entries())
}

func TestWrongEnumInvokesHandlerOnce(t *testing.T) {
	for _, mode := range []string{"preset", "binding"} {
		t.Run(mode, func(t *testing.T) {
			h := &recordingHandler{handled: true}
			var q *Quirk
			if mode == "preset" {
				q = NewPreset(WithHandler(h))
			} else {
				q = NewLabel(WithHandler(h))
			}

			got := q.SetAlignName("NOT_A_REAL_VALUE")

			assert.Same(t, q, got)
			require.Len(t, h.got, 1)
			d := h.got[0]
			assert.Equal(t, CodeWrongEnum, d.Code)
			assert.Equal(t, MsgWrongEnum, d.Message)
			assert.Equal(t, types.KindAlign, d.Kind)
			assert.Equal(t, "NOT_A_REAL_VALUE", d.Input)
			assert.ErrorIs(t, d, types.ErrInvalidEnum)
			assert.Contains(t, d.Error(), "NOT_A_REAL_VALUE")
			assert.Zero(t, q.Len())
		})
	}
}

func TestUnhandledEnumBreaksChain(t *testing.T) {
	h := &recordingHandler{handled: false}
	label := widget.NewLabel()

	got := NewBinding(label, WithHandler(h)).
		SetText("before").
		SetTextAlignName("justify").
		SetText("after")

	assert.Nil(t, got)
	assert.Equal(t, "before", label.Text())
	assert.Len(t, h.got, 1)
}

func TestHandledEnumKeepsChain(t *testing.T) {
	h := &recordingHandler{handled: true}
	label := widget.NewLabel()

	got := NewBinding(label, WithHandler(h)).
		SetTextAlignName("justify").
		SetText("after")

	require.NotNil(t, got)
	assert.Equal(t, "after", label.Text())
	assert.Equal(t, types.TextAlignLeft, label.TextAlignment())
}

func TestSetErrorHandlerIsProcessWide(t *testing.T) {
	t.Cleanup(func() { SetErrorHandler(nil) })

	h := &recordingHandler{handled: false}
	SetErrorHandler(h)
	assert.Same(t, h, ErrorHandler())

	assert.Nil(t, NewPreset().SetAlignName("nope"))
	assert.Nil(t, NewLabel().SetTextAlignName("nope"))
	assert.Len(t, h.got, 2)

	// A per-object handler wins over the process-wide one.
	local := &recordingHandler{handled: true}
	assert.NotNil(t, NewPreset(WithHandler(local)).SetAlignName("nope"))
	assert.Len(t, local.got, 1)
	assert.Len(t, h.got, 2)
}

func TestSetErrorHandlerNilRestoresBuiltin(t *testing.T) {
	t.Cleanup(func() { SetErrorHandler(nil) })

	SetErrorHandler(StrictHandler)
	SetErrorHandler(nil)
	assert.Same(t, builtinHandler, ErrorHandler())
}

func TestLogHandlerLogsAndRecovers(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	q := NewPreset(WithHandler(NewLogHandler(logger)))

	got := q.SetTextAlignName("MIDDLE")

	assert.Same(t, q, got)
	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "code=WRONG_ENUM")
	assert.Contains(t, out, "kind=TEXTALIGN")
	assert.Contains(t, out, "input=MIDDLE")
}

func TestBuiltinHandlerUsesDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	assert.True(t, builtinHandler.Handle(Diagnostic{Code: CodeWrongEnum, Message: MsgWrongEnum, Kind: types.KindAlign, Input: "X"}))
	assert.Contains(t, buf.String(), "WRONG_ENUM")
}

func TestStrictHandler(t *testing.T) {
	assert.False(t, StrictHandler.Handle(Diagnostic{}))
	assert.Nil(t, NewLabel(WithHandler(StrictHandler)).SetAlignName(""))
}

func TestDiagnosticError(t *testing.T) {
	d := Diagnostic{Code: CodeWrongEnum, Message: MsgWrongEnum}
	assert.Equal(t, "WRONG_ENUM "+MsgWrongEnum, d.Error())
	assert.Nil(t, errors.Unwrap(d))

	cause := errors.New("boom")
	d.Err = cause
	assert.Equal(t, "WRONG_ENUM "+MsgWrongEnum+": boom", d.Error())
	assert.ErrorIs(t, d, cause)
}
