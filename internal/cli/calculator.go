package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/elvencalc/internal/config"
	"github.com/rshade/elvencalc/internal/locale"
	"github.com/rshade/elvencalc/internal/logging"
	"github.com/rshade/elvencalc/internal/tui"
	"github.com/rshade/elvencalc/internal/widget"
)

// Output formats.
const (
	outputFormatTable  = config.FormatTable
	outputFormatJSON   = config.FormatJSON
	outputFormatNDJSON = config.FormatNDJSON
)

// keyValueParts is the expected number of parts when splitting key=value strings.
const keyValueParts = 2

// Limits for --set parsing.
const (
	maxFieldOverrides = 100
	maxFieldValueLen  = widget.MaxFieldValueLen
	maxFieldKeyLen    = 64
)

// FieldOverride is one field edit, applied after mount as a value-change event.
type FieldOverride struct {
	Field string
	Value string
}

// CalculatorParams holds what every calculator command needs once its
// flags are parsed. Exported for testing.
type CalculatorParams struct {
	Kind        widget.Kind
	Attributes  map[string]string
	Mode        string
	Edits       []FieldOverride
	Interactive bool
	Output      string
}

// ParseFieldOverrides parses --set key=value flags in order.
// Exported for testing.
func ParseFieldOverrides(sets []string) ([]FieldOverride, error) {
	if len(sets) > maxFieldOverrides {
		return nil, fmt.Errorf("too many field overrides: %d (max %d)", len(sets), maxFieldOverrides)
	}

	out := make([]FieldOverride, 0, len(sets))
	for _, s := range sets {
		parts := strings.SplitN(s, "=", keyValueParts)
		if len(parts) != keyValueParts {
			return nil, fmt.Errorf("invalid field format %q: expected key=value", s)
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key == "" {
			return nil, fmt.Errorf("field key cannot be empty in %q", s)
		}
		if len(key) > maxFieldKeyLen {
			return nil, fmt.Errorf("field key too long: %d bytes (max %d)", len(key), maxFieldKeyLen)
		}
		if len(value) > maxFieldValueLen {
			return nil, fmt.Errorf("field value too large for key %q: %d bytes (max %d)",
				key, len(value), maxFieldValueLen)
		}
		out = append(out, FieldOverride{Field: key, Value: value})
	}
	return out, nil
}

// flagAttributes merges configured widget defaults with attribute flags the
// user actually set. Flags win.
func flagAttributes(cmd *cobra.Command, kind widget.Kind, flagToAttr map[string]string) map[string]string {
	attrs := config.GetWidgetDefaults().For(kind).Attributes()
	for flag, attr := range flagToAttr {
		if cmd.Flags().Changed(flag) {
			v, _ := cmd.Flags().GetString(flag)
			attrs[attr] = v
		}
	}
	return attrs
}

// flagEdits collects field flags the user set, in the given order, followed
// by --set overrides.
func flagEdits(cmd *cobra.Command, fields []string, sets []string) ([]FieldOverride, error) {
	var edits []FieldOverride
	for _, name := range fields {
		if cmd.Flags().Changed(name) {
			v, _ := cmd.Flags().GetString(name)
			edits = append(edits, FieldOverride{Field: name, Value: v})
		}
	}

	extra, err := ParseFieldOverrides(sets)
	if err != nil {
		return nil, fmt.Errorf("parsing --set: %w", err)
	}
	return append(edits, extra...), nil
}

// resolveOutput falls back to the configured default format and rejects
// unknown formats.
func resolveOutput(format string) (string, error) {
	if format == "" {
		format = config.GetDefaultOutputFormat()
	}
	switch format {
	case outputFormatTable, outputFormatJSON, outputFormatNDJSON:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want table, json or ndjson)", format)
	}
}

// MountCalculator builds one widget and replays the mode choice and field
// edits against it. Exported for testing.
func MountCalculator(params CalculatorParams) (widget.Widget, error) {
	w, err := widget.MountKind(params.Kind, widget.Container{
		Class:      params.Kind.MarkerClass(),
		Attributes: params.Attributes,
	})
	if err != nil {
		return nil, err
	}

	if params.Mode != "" {
		if err = w.SelectMode(params.Mode); err != nil {
			return nil, fmt.Errorf("selecting mode: %w", err)
		}
	}

	for _, e := range params.Edits {
		if err = w.SetField(e.Field, e.Value); err != nil {
			return nil, fmt.Errorf("setting %s: %w", e.Field, err)
		}
	}
	return w, nil
}

// executeCalculator mounts the calculator and either renders it or hands it
// to the interactive TUI.
func executeCalculator(cmd *cobra.Command, params CalculatorParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	output, err := resolveOutput(params.Output)
	if err != nil {
		return err
	}

	w, err := MountCalculator(params)
	if err != nil {
		return err
	}

	log.Debug().Ctx(ctx).
		Str("operation", "calculate").
		Str("kind", params.Kind.String()).
		Str("widget_id", w.ID()).
		Str("mode", w.Snapshot().Mode).
		Int("edit_count", len(params.Edits)).
		Bool("interactive", params.Interactive).
		Msg("calculator mounted")

	widgets := []widget.Widget{w}
	if params.Interactive {
		if widgets, err = runInteractive(cmd, widgets); err != nil {
			return err
		}
	}

	return renderWidgets(cmd.OutOrStdout(), output, widgets)
}

// errNotTerminal is returned when --interactive is used without a terminal.
var errNotTerminal = errors.New("--interactive requires a terminal") //nolint:gochecknoglobals // sentinel

// runInteractive runs the TUI over widgets and returns them after the user quits.
func runInteractive(cmd *cobra.Command, widgets []widget.Widget) ([]widget.Widget, error) {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return nil, errNotTerminal
	}

	model := tui.NewWidgetModel(cmd.Context(), widgets...)
	finalModel, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
	if err != nil {
		return nil, fmt.Errorf("running interactive TUI: %w", err)
	}

	wm, ok := finalModel.(*tui.WidgetModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type: %T, expected *tui.WidgetModel", finalModel)
	}
	return wm.Widgets(), nil
}

// renderWidgets renders widget snapshots in the requested format.
func renderWidgets(w io.Writer, format string, widgets []widget.Widget) error {
	switch format {
	case outputFormatJSON:
		return renderWidgetsJSON(w, widgets)
	case outputFormatNDJSON:
		return renderWidgetsNDJSON(w, widgets)
	default:
		return renderWidgetsTable(w, widgets)
	}
}

func renderWidgetsJSON(w io.Writer, widgets []widget.Widget) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(widgets) == 1 {
		return enc.Encode(widgets[0].Snapshot())
	}

	response := struct {
		Widgets []widget.Snapshot `json:"widgets"`
	}{Widgets: snapshots(widgets)}
	return enc.Encode(response)
}

func renderWidgetsNDJSON(w io.Writer, widgets []widget.Widget) error {
	enc := json.NewEncoder(w)
	for _, wd := range widgets {
		if err := enc.Encode(wd.Snapshot()); err != nil {
			return err
		}
	}
	return nil
}

func snapshots(widgets []widget.Widget) []widget.Snapshot {
	out := make([]widget.Snapshot, 0, len(widgets))
	for _, w := range widgets {
		out = append(out, w.Snapshot())
	}
	return out
}

// Column widths for table output.
const (
	tableLabelWidth = 30
)

func renderWidgetsTable(w io.Writer, widgets []widget.Widget) error {
	if len(widgets) == 0 {
		fmt.Fprintln(w, "No calculators found")
		return nil
	}
	for i, wd := range widgets {
		if i > 0 {
			fmt.Fprintln(w)
		}
		renderWidgetTable(w, wd)
	}
	return nil
}

// renderWidgetTable renders one widget: inputs, then visible results by section.
func renderWidgetTable(w io.Writer, wd widget.Widget) {
	fmt.Fprintln(w, wd.Title())
	fmt.Fprintln(w, strings.Repeat("=", len([]rune(wd.Title()))))
	fmt.Fprintf(w, "ID: %s\n", wd.ID())
	for _, m := range wd.Modes() {
		if m.Selected {
			fmt.Fprintf(w, "Mode: %s\n", m.Label)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Inputs:")
	for _, f := range wd.Fields() {
		fmt.Fprintf(w, "  %-*s %s\n", tableLabelWidth, f.Label, f.Value)
	}

	section := ""
	for _, r := range wd.Results() {
		if !r.Visible {
			continue
		}
		if r.Section != section {
			section = r.Section
			fmt.Fprintln(w)
			fmt.Fprintf(w, "%s:\n", section)
		}
		value := r.Display
		if value != locale.Placeholder && r.Unit != "" {
			value += " " + r.Unit
		}
		fmt.Fprintf(w, "  %-*s %s\n", tableLabelWidth, r.Label, value)
	}
}
