package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/elvencalc/internal/locale"
	"github.com/rshade/elvencalc/internal/widget"
)

// Column widths.
const (
	fieldLabelWidth  = 30
	resultLabelWidth = 26
	minTruncateLen   = 3
)

// RenderWidgetHeader renders the title box with the instance position.
func RenderWidgetHeader(w widget.Widget, index, total int) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(w.Title()))
	sb.WriteString("\n")
	sb.WriteString(LabelStyle.Render("ID: "))
	sb.WriteString(MutedStyle.Render(w.ID()))
	if total > 1 {
		sb.WriteString(MutedStyle.Render(fmt.Sprintf("  (%d/%d)", index+1, total)))
	}
	return sb.String()
}

// RenderModeRow renders the mode switch as a row of radio options.
func RenderModeRow(modes []widget.ModeOption, focused bool) string {
	var sb strings.Builder
	sb.WriteString(focusMarker(focused, false))
	sb.WriteString(LabelStyle.Render(fmt.Sprintf("%-*s", fieldLabelWidth, "Mode")))

	for i, m := range modes {
		if i > 0 {
			sb.WriteString("  ")
		}
		if m.Selected {
			sb.WriteString(FocusedStyle.Render(IconSelected + " " + m.Label))
		} else {
			sb.WriteString(MutedStyle.Render(IconUnselected + " " + m.Label))
		}
	}
	return sb.String()
}

// RenderFieldRow renders one input field. While editing, input is the
// rendered text input and replaces the stored value.
func RenderFieldRow(f widget.Field, focused, editing bool, input string) string {
	var sb strings.Builder
	sb.WriteString(focusMarker(focused, editing))
	sb.WriteString(LabelStyle.Render(fmt.Sprintf("%-*s", fieldLabelWidth, truncate(f.Label, fieldLabelWidth))))

	switch {
	case editing:
		sb.WriteString(input)
	case f.Value == "":
		sb.WriteString(MutedStyle.Render(f.Placeholder))
	case focused:
		sb.WriteString(FocusedStyle.Render(f.Value))
	default:
		sb.WriteString(ValueStyle.Render(f.Value))
	}
	return sb.String()
}

// RenderResults renders the visible result rows grouped by section.
func RenderResults(rows []widget.ResultRow) string {
	var sb strings.Builder
	section := ""
	for _, r := range rows {
		if !r.Visible {
			continue
		}
		if r.Section != section {
			if section != "" {
				sb.WriteString("\n")
			}
			section = r.Section
			sb.WriteString(SectionStyle.Render(section))
			sb.WriteString("\n")
		}
		sb.WriteString("  ")
		sb.WriteString(LabelStyle.Render(fmt.Sprintf("%-*s", resultLabelWidth, truncate(r.Label, resultLabelWidth))))
		sb.WriteString(resultStyle(r).Render(r.Display))
		if r.Display != locale.Placeholder && r.Unit != "" {
			sb.WriteString(" ")
			sb.WriteString(MutedStyle.Render(r.Unit))
		}
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// RenderWidgetHelp renders the keyboard shortcut help text.
func RenderWidgetHelp(editing, multi bool) string {
	if editing {
		return MutedStyle.Render("Enter: Done | Esc: Revert")
	}
	shortcuts := []string{"↑/↓: Navigate", "Enter: Edit", "←/→: Mode"}
	if multi {
		shortcuts = append(shortcuts, "Tab: Next calculator")
	}
	shortcuts = append(shortcuts, "q: Quit")
	return MutedStyle.Render(strings.Join(shortcuts, " | "))
}

// resultStyle colours the annual saving by sign.
func resultStyle(r widget.ResultRow) lipgloss.Style {
	if r.Key != widget.ResultAnnualSaving || r.Display == locale.Placeholder {
		return ValueStyle
	}
	if r.Value < 0 {
		return LossStyle
	}
	return SavingStyle
}

func focusMarker(focused, editing bool) string {
	switch {
	case focused && editing:
		return "> "
	case focused:
		return IconArrowRight + " "
	default:
		return "  "
	}
}

// truncate truncates a string to the specified length with ellipsis.
// Uses rune-aware counting to properly handle multi-byte UTF-8 characters.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= minTruncateLen {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-minTruncateLen]) + "..."
}
