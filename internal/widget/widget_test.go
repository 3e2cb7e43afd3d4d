package widget_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/elvencalc/internal/binder"
	"github.com/rshade/elvencalc/internal/calc"
	"github.com/rshade/elvencalc/internal/locale"
	"github.com/rshade/elvencalc/internal/widget"
)

// displays maps result keys to their formatted text.
func displays(w widget.Widget) map[string]string {
	out := make(map[string]string)
	for _, r := range w.Results() {
		out[r.Key] = r.Display
	}
	return out
}

// visibility maps result keys to their visibility flag.
func visibility(w widget.Widget) map[string]bool {
	out := make(map[string]bool)
	for _, r := range w.Results() {
		out[r.Key] = r.Visible
	}
	return out
}

// fieldNames lists the names of the currently visible fields.
func fieldNames(w widget.Widget) []string {
	var out []string
	for _, f := range w.Fields() {
		out = append(out, f.Name)
	}
	return out
}

func mount(t *testing.T, class string, attrs map[string]string) widget.Widget {
	t.Helper()
	w, err := widget.Mount(widget.Container{ID: "w-1", Class: class, Attributes: attrs})
	require.NoError(t, err)
	return w
}

func TestMount_DispatchesOnMarker(t *testing.T) {
	tests := []struct {
		class string
		want  widget.Kind
	}{
		{"elven-kwh-calculator", widget.KindEnergy},
		{"elven-ev-calculator", widget.KindEV},
		{"elven-ev-calculator-dk", widget.KindEVRegional},
		{"wp-block elven-ev-calculator alignwide", widget.KindEV},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			w := mount(t, tt.class, nil)
			assert.Equal(t, tt.want, w.Kind())
			assert.Equal(t, "w-1", w.ID())
		})
	}
}

func TestMount_UnknownMarker(t *testing.T) {
	_, err := widget.Mount(widget.Container{Class: "some-other-block"})
	require.ErrorIs(t, err, widget.ErrUnknownMarker)
}

func TestMount_GeneratesID(t *testing.T) {
	a := mount(t, widget.MarkerEnergy, nil)
	w1, err := widget.Mount(widget.Container{Class: widget.MarkerEnergy})
	require.NoError(t, err)
	w2, err := widget.Mount(widget.Container{Class: widget.MarkerEnergy})
	require.NoError(t, err)

	assert.Equal(t, "w-1", a.ID())
	assert.True(t, strings.HasPrefix(w1.ID(), widget.MarkerEnergy+"-"))
	assert.NotEqual(t, w1.ID(), w2.ID())
}

func TestContainer_AttrAcceptsDataPrefix(t *testing.T) {
	c := widget.Container{Attributes: map[string]string{"data-default-price": "3,00"}}
	assert.Equal(t, "3,00", c.Attr(widget.AttrDefaultPrice))
	assert.Empty(t, c.Attr(widget.AttrDefaultWatt))
}

func TestParseKind(t *testing.T) {
	k, err := widget.ParseKind("dk")
	require.NoError(t, err)
	assert.Equal(t, widget.KindEVRegional, k)

	_, err = widget.ParseKind("solar")
	require.ErrorIs(t, err, widget.ErrUnknownKind)
}

func TestResultRow_MarshalJSONOmitsNonFinite(t *testing.T) {
	w := mount(t, widget.MarkerEnergy, nil)

	data, err := json.Marshal(w.Snapshot())
	require.NoError(t, err)

	var decoded struct {
		Kind    string `json:"kind"`
		Mode    string `json:"mode"`
		Results []struct {
			Key     string   `json:"key"`
			Display string   `json:"display"`
			Value   *float64 `json:"value"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "energy", decoded.Kind)
	assert.Equal(t, "hour", decoded.Mode)
	require.NotEmpty(t, decoded.Results)
	assert.Equal(t, widget.ResultPerUse, decoded.Results[0].Key)
	assert.Equal(t, locale.Placeholder, decoded.Results[0].Display)
	assert.Nil(t, decoded.Results[0].Value)
	require.NotNil(t, decoded.Results[1].Value)
	assert.InDelta(t, 6.0, *decoded.Results[1].Value, 1e-9)
}

func TestSnapshot_IncludesRawFields(t *testing.T) {
	w := mount(t, widget.MarkerEV, nil)
	require.NoError(t, w.SetField(widget.FieldDriving, "15.000"))

	snap := w.Snapshot()

	assert.Equal(t, "15.000", snap.Fields[widget.FieldDriving])
	assert.Equal(t, "range", snap.Mode)
	assert.Len(t, snap.Results, 5)
}

func TestWidgets_AreIndependent(t *testing.T) {
	a := mount(t, widget.MarkerEnergy, nil)
	b := mount(t, widget.MarkerEnergy, nil)

	require.NoError(t, a.SetField(widget.FieldWatt, "2000"))
	require.NoError(t, a.SelectMode("use"))

	assert.Equal(t, "6,00", displays(b)[widget.ResultPerDay])
	for _, opt := range b.Modes() {
		assert.Equal(t, opt.Value == "hour", opt.Selected)
	}
}

func TestSetField_UnknownField(t *testing.T) {
	w := mount(t, widget.MarkerEVRegional, nil)

	err := w.SetField(widget.FieldWhPerKm, "170")
	require.ErrorIs(t, err, binder.ErrUnknownField)
}

func TestSelectMode_UnknownMode(t *testing.T) {
	w := mount(t, widget.MarkerEnergy, nil)

	require.ErrorIs(t, w.SelectMode("weekly"), calc.ErrUnknownMode)
}
