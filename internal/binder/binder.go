// Package binder wires input fields and mode selectors to a single
// recompute callback.
//
// Every value-change or selection-change event triggers exactly one
// synchronous recompute before the event method returns. Visibility rules
// for conditionally shown field groups are re-evaluated on each recompute.
// A Binder belongs to one widget instance and is not safe for concurrent use.
package binder

import "fmt"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for events that reference unbound names.
const (
	ErrUnknownField    = constError("unknown field")
	ErrUnknownSelector = constError("unknown selector")
	ErrUnknownOption   = constError("unknown selector option")
	ErrDuplicateName   = constError("duplicate name")
)

// Field is one bound text input. Group names the visibility group the field
// belongs to; an empty Group is always visible.
type Field struct {
	Name        string
	Label       string
	Placeholder string
	Group       string
	Value       string
}

// Selector is a single-choice control such as a mode switch. Exactly one
// option is selected at all times, initially the first.
type Selector struct {
	Name     string
	Options  []string
	selected int
}

// Selected returns the currently selected option.
func (s *Selector) Selected() string {
	return s.Options[s.selected]
}

// RecomputeFunc is invoked after every event and once by Start.
type RecomputeFunc func(b *Binder)

// VisibilityRule reports whether a field group should currently be shown.
type VisibilityRule func(b *Binder) bool

// Binder holds the bound controls of one widget instance.
type Binder struct {
	fields     []*Field
	fieldIdx   map[string]*Field
	selectors  map[string]*Selector
	rules      map[string]VisibilityRule
	visible    map[string]bool
	recompute  RecomputeFunc
	started    bool
	recomputes int
}

// New creates a Binder that calls recompute on every event.
func New(recompute RecomputeFunc) *Binder {
	return &Binder{
		fieldIdx:  make(map[string]*Field),
		selectors: make(map[string]*Selector),
		rules:     make(map[string]VisibilityRule),
		visible:   make(map[string]bool),
		recompute: recompute,
	}
}

// AddField binds a field. Field order is preserved by Fields.
func (b *Binder) AddField(f Field) error {
	if _, ok := b.fieldIdx[f.Name]; ok {
		return fmt.Errorf("%w: field %q", ErrDuplicateName, f.Name)
	}
	field := f
	b.fields = append(b.fields, &field)
	b.fieldIdx[f.Name] = &field
	return nil
}

// AddSelector binds a selector with at least one option.
func (b *Binder) AddSelector(name string, options ...string) error {
	if _, ok := b.selectors[name]; ok {
		return fmt.Errorf("%w: selector %q", ErrDuplicateName, name)
	}
	if len(options) == 0 {
		return fmt.Errorf("%w: selector %q has no options", ErrUnknownOption, name)
	}
	b.selectors[name] = &Selector{Name: name, Options: append([]string(nil), options...)}
	return nil
}

// AddRule registers the visibility rule for a field group.
func (b *Binder) AddRule(group string, rule VisibilityRule) {
	b.rules[group] = rule
}

// Start runs the initial recompute. Later calls are no-ops.
func (b *Binder) Start() {
	if b.started {
		return
	}
	b.started = true
	b.run()
}

// SetValue is a value-change event on the named field.
func (b *Binder) SetValue(name, raw string) error {
	f, ok := b.fieldIdx[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	f.Value = raw
	b.run()
	return nil
}

// Select is a selection-change event on the named selector.
func (b *Binder) Select(selector, option string) error {
	s, ok := b.selectors[selector]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSelector, selector)
	}
	for i, opt := range s.Options {
		if opt == option {
			s.selected = i
			b.run()
			return nil
		}
	}
	return fmt.Errorf("%w: %q has no option %q", ErrUnknownOption, selector, option)
}

// Value returns the raw text of the named field, or "" when unbound.
func (b *Binder) Value(name string) string {
	if f, ok := b.fieldIdx[name]; ok {
		return f.Value
	}
	return ""
}

// Selected returns the current option of the named selector, or "" when unbound.
func (b *Binder) Selected(selector string) string {
	if s, ok := b.selectors[selector]; ok {
		return s.Selected()
	}
	return ""
}

// Selector returns the named selector.
func (b *Binder) Selector(name string) (*Selector, bool) {
	s, ok := b.selectors[name]
	return s, ok
}

// Visible reports whether a group was visible after the last recompute.
// Groups without a rule are always visible.
func (b *Binder) Visible(group string) bool {
	if _, ok := b.rules[group]; !ok {
		return true
	}
	return b.visible[group]
}

// Fields returns copies of all bound fields in binding order.
func (b *Binder) Fields() []Field {
	out := make([]Field, 0, len(b.fields))
	for _, f := range b.fields {
		out = append(out, *f)
	}
	return out
}

// VisibleFields returns copies of the fields whose group is visible.
func (b *Binder) VisibleFields() []Field {
	out := make([]Field, 0, len(b.fields))
	for _, f := range b.fields {
		if b.Visible(f.Group) {
			out = append(out, *f)
		}
	}
	return out
}

// Recomputes returns how many times the recompute callback has run.
func (b *Binder) Recomputes() int {
	return b.recomputes
}

// run re-evaluates visibility and then invokes the recompute callback.
func (b *Binder) run() {
	for group, rule := range b.rules {
		b.visible[group] = rule(b)
	}
	b.recomputes++
	if b.recompute != nil {
		b.recompute(b)
	}
}
