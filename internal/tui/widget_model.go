package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/elvencalc/internal/logging"
	"github.com/rshade/elvencalc/internal/widget"
)

// Default dimensions for the widget model.
const (
	widgetDefaultWidth  = 80
	widgetDefaultHeight = 24
	fieldInputWidth     = 20
)

// WidgetModel is the Bubble Tea model hosting one or more independent
// calculator instances. Only the active instance is shown and edited.
type WidgetModel struct {
	ctx     context.Context
	widgets []widget.Widget
	active  int

	focusedRow int
	editing    bool
	editField  string
	editBefore string
	input      textinput.Model

	status   string
	quitting bool

	width  int
	height int
}

// row is one navigable line: the mode switch or a visible field.
type row struct {
	mode  bool
	field widget.Field
}

// NewWidgetModel creates a model over already-mounted widgets.
func NewWidgetModel(ctx context.Context, widgets ...widget.Widget) *WidgetModel {
	return &WidgetModel{
		ctx:     ctx,
		widgets: widgets,
		input:   newFieldInput(),
		width:   widgetDefaultWidth,
		height:  widgetDefaultHeight,
	}
}

func newFieldInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = widget.MaxFieldValueLen
	ti.Width = fieldInputWidth
	ti.Cursor.SetChar(IconCursor)
	return ti
}

// Widgets returns the hosted widgets in their current state.
func (m *WidgetModel) Widgets() []widget.Widget {
	return m.widgets
}

// Active returns the widget currently shown, or nil when there is none.
func (m *WidgetModel) Active() widget.Widget {
	if len(m.widgets) == 0 {
		return nil
	}
	return m.widgets[m.active]
}

// Editing reports whether a field is being edited.
func (m *WidgetModel) Editing() bool {
	return m.editing
}

// Init initializes the model.
func (m *WidgetModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *WidgetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKey(msg)
		}
		return m.handleKey(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *WidgetModel) rows() []row {
	w := m.Active()
	if w == nil {
		return nil
	}

	var out []row
	if len(w.Modes()) > 0 {
		out = append(out, row{mode: true})
	}
	for _, f := range w.Fields() {
		out = append(out, row{field: f})
	}
	return out
}

// handleKey processes keyboard input outside edit mode.
//
//nolint:exhaustive // Only handling relevant key types for navigation.
func (m *WidgetModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.rows()

	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyRunes:
		if string(msg.Runes) == "q" {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.KeyUp:
		if m.focusedRow > 0 {
			m.focusedRow--
		}

	case tea.KeyDown:
		if m.focusedRow < len(rows)-1 {
			m.focusedRow++
		}

	case tea.KeyLeft:
		m.cycleMode(-1)

	case tea.KeyRight, tea.KeySpace:
		m.cycleMode(1)

	case tea.KeyTab:
		m.switchWidget(1)

	case tea.KeyShiftTab:
		m.switchWidget(-1)

	case tea.KeyEnter:
		if m.focusedRow >= len(rows) {
			break
		}
		r := rows[m.focusedRow]
		if r.mode {
			m.cycleMode(1)
			break
		}
		m.startEdit(r.field)
		return m, textinput.Blink
	}

	return m, nil
}

// handleEditKey processes keyboard input while a field is being edited.
// Every change to the text is forwarded to the widget immediately.
//
//nolint:exhaustive // Only handling relevant key types for text editing.
func (m *WidgetModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEnter:
		m.stopEdit()
		return m, nil

	case tea.KeyEsc:
		if m.input.Value() != m.editBefore {
			m.setField(m.editField, m.editBefore)
		}
		m.stopEdit()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.setField(m.editField, after)
	}
	return m, cmd
}

func (m *WidgetModel) startEdit(f widget.Field) {
	m.editing = true
	m.editField = f.Name
	m.editBefore = f.Value
	m.input.Placeholder = f.Placeholder
	m.input.SetValue(f.Value)
	m.input.CursorEnd()
	m.input.Focus()
	m.status = ""
}

func (m *WidgetModel) stopEdit() {
	m.editing = false
	m.editField = ""
	m.input.Blur()
}

func (m *WidgetModel) setField(name, value string) {
	w := m.Active()
	if err := w.SetField(name, value); err != nil {
		m.status = err.Error()
		return
	}
	logging.FromContext(m.ctx).Debug().
		Str("component", "tui").
		Str("widget_id", w.ID()).
		Str("field", name).
		Str("value", value).
		Msg("field changed")
}

// cycleMode moves the active widget's mode switch by step, wrapping around.
func (m *WidgetModel) cycleMode(step int) {
	w := m.Active()
	if w == nil {
		return
	}
	modes := w.Modes()
	if len(modes) == 0 {
		return
	}

	current := 0
	for i, opt := range modes {
		if opt.Selected {
			current = i
		}
	}
	next := modes[(current+step+len(modes))%len(modes)]
	if err := w.SelectMode(next.Value); err != nil {
		m.status = err.Error()
		return
	}

	logging.FromContext(m.ctx).Debug().
		Str("component", "tui").
		Str("widget_id", w.ID()).
		Str("mode", next.Value).
		Msg("mode changed")

	// The visible field set may have shrunk.
	if rows := m.rows(); m.focusedRow >= len(rows) {
		m.focusedRow = len(rows) - 1
	}
}

func (m *WidgetModel) switchWidget(step int) {
	if len(m.widgets) < 2 {
		return
	}
	m.active = (m.active + step + len(m.widgets)) % len(m.widgets)
	m.focusedRow = 0
	m.status = ""
}

// View renders the current view.
func (m *WidgetModel) View() string {
	if m.quitting {
		return ""
	}
	w := m.Active()
	if w == nil {
		return MutedStyle.Italic(true).Render("No calculators found") + "\n"
	}

	var sb strings.Builder
	sb.WriteString(RenderWidgetHeader(w, m.active, len(m.widgets)))
	sb.WriteString("\n\n")

	for i, r := range m.rows() {
		focused := i == m.focusedRow
		if r.mode {
			sb.WriteString(RenderModeRow(w.Modes(), focused))
		} else {
			editing := m.editing && r.field.Name == m.editField
			sb.WriteString(RenderFieldRow(r.field, focused, editing, m.input.View()))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(RenderResults(w.Results()))
	sb.WriteString("\n\n")

	if m.status != "" {
		sb.WriteString(CriticalStyle.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(RenderWidgetHelp(m.editing, len(m.widgets) > 1))
	sb.WriteString("\n")
	return sb.String()
}
