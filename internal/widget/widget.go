// Package widget builds calculator instances from host containers.
//
// A widget owns a binder with its input fields and mode switch, parses every
// relevant field on each recompute, runs the matching calc engine and writes
// the formatted results into its result rows. Instances never share state.
package widget

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/rshade/elvencalc/internal/binder"
	"github.com/rshade/elvencalc/internal/locale"
)

// Recognised container attributes, without the HTML "data-" prefix.
const (
	AttrDefaultPrice     = "default-price"
	AttrDefaultWatt      = "default-watt"
	AttrDefaultFuelPrice = "default-fuel-price"
)

// modeSelector is the binder name of the mode switch.
const modeSelector = "mode"

// Container is the host element a widget is mounted into.
type Container struct {
	ID         string
	Class      string
	Attributes map[string]string
}

// Attr returns the named attribute, also accepting the "data-" prefixed form.
func (c Container) Attr(name string) string {
	if v, ok := c.Attributes[name]; ok {
		return v
	}
	return c.Attributes["data-"+name]
}

// Field is a bound input field as seen by hosts.
type Field = binder.Field

// ModeOption is one choice of a widget's mode switch.
type ModeOption struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// ResultRow is one result slot. Display is always set; it is
// locale.Placeholder when Value is not finite.
type ResultRow struct {
	Key     string
	Section string
	Label   string
	Unit    string
	Display string
	Value   float64
	Visible bool
}

// MarshalJSON omits the numeric value when it is NaN or infinite, which
// encoding/json cannot represent.
func (r ResultRow) MarshalJSON() ([]byte, error) {
	type row struct {
		Key     string   `json:"key"`
		Section string   `json:"section,omitempty"`
		Label   string   `json:"label"`
		Unit    string   `json:"unit"`
		Display string   `json:"display"`
		Value   *float64 `json:"value,omitempty"`
		Visible bool     `json:"visible"`
	}
	out := row{
		Key: r.Key, Section: r.Section, Label: r.Label, Unit: r.Unit,
		Display: r.Display, Visible: r.Visible,
	}
	if !math.IsNaN(r.Value) && !math.IsInf(r.Value, 0) {
		v := r.Value
		out.Value = &v
	}
	return json.Marshal(out)
}

// Snapshot is the full observable state of a widget after its last recompute.
type Snapshot struct {
	ID      string            `json:"id"`
	Kind    Kind              `json:"kind"`
	Title   string            `json:"title"`
	Mode    string            `json:"mode,omitempty"`
	Fields  map[string]string `json:"fields"`
	Results []ResultRow       `json:"results"`
}

// Widget is a mounted calculator instance.
type Widget interface {
	ID() string
	Kind() Kind
	Title() string

	// Fields returns the currently visible input fields.
	Fields() []Field

	// Modes returns the mode switch options, or nil when there is none.
	Modes() []ModeOption

	// SetField is a value-change event; results are recomputed before it returns.
	SetField(name, raw string) error

	// SelectMode is a selection-change event on the mode switch.
	SelectMode(mode string) error

	// Results returns every result row, hidden ones included.
	Results() []ResultRow

	Snapshot() Snapshot
}

// Mount builds the widget named by the container's marker class, applies
// its default attributes and runs the initial recompute.
func Mount(c Container) (Widget, error) {
	kind, ok := KindForClass(c.Class)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMarker, c.Class)
	}
	return MountKind(kind, c)
}

// MountKind builds a widget of the given kind regardless of the container class.
func MountKind(kind Kind, c Container) (Widget, error) {
	if c.ID == "" {
		c.ID = NewID(kind)
	}

	switch kind {
	case KindEnergy:
		return newEnergy(c)
	case KindEV:
		return newEV(c, false)
	case KindEVRegional:
		return newEV(c, true)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}

// NewID returns a unique scoping identifier for a container without one.
func NewID(kind Kind) string {
	return kind.MarkerClass() + "-" + strings.ToLower(ulid.Make().String())
}

// base carries what every widget kind shares.
type base struct {
	id     string
	kind   Kind
	title  string
	binder *binder.Binder
	rows   []ResultRow
}

func (w *base) ID() string    { return w.id }
func (w *base) Kind() Kind    { return w.kind }
func (w *base) Title() string { return w.title }

func (w *base) Fields() []Field {
	return w.binder.VisibleFields()
}

func (w *base) SetField(name, raw string) error {
	return w.binder.SetValue(name, raw)
}

func (w *base) Results() []ResultRow {
	return append([]ResultRow(nil), w.rows...)
}

// snapshot fills the parts of a Snapshot every kind shares.
func (w *base) snapshot(mode string) Snapshot {
	fields := make(map[string]string)
	for _, f := range w.binder.Fields() {
		fields[f.Name] = f.Value
	}
	return Snapshot{
		ID:      w.id,
		Kind:    w.kind,
		Title:   w.title,
		Mode:    mode,
		Fields:  fields,
		Results: w.Results(),
	}
}

// parse reads and parses the named field's current raw text.
func (w *base) parse(name string) float64 {
	return locale.Parse(w.binder.Value(name))
}

// withDefault returns the attribute value when non-empty, else fallback.
func withDefault(c Container, attr, fallback string) string {
	if v := c.Attr(attr); v != "" {
		return v
	}
	return fallback
}

// row builds a formatted result row.
func row(key, section, label, unit string, value float64, digits int, visible bool) ResultRow {
	return ResultRow{
		Key:     key,
		Section: section,
		Label:   label,
		Unit:    unit,
		Display: locale.Format(value, digits),
		Value:   value,
		Visible: visible,
	}
}

// bindFields registers fields in order, stopping at the first error.
func bindFields(b *binder.Binder, fields ...binder.Field) error {
	for _, f := range fields {
		if err := b.AddField(f); err != nil {
			return err
		}
	}
	return nil
}
