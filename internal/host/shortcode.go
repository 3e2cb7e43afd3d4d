package host

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/rshade/elvencalc/internal/widget"
)

// Shortcode names as written in page sources.
const (
	ShortcodeEnergy     = "elven_kwh_calc"
	ShortcodeEV         = "elven_ev_calc"
	ShortcodeEVRegional = "elven_ev_calc_dk"
)

//nolint:gochecknoglobals // Compiled once.
var (
	shortcodeRe = regexp.MustCompile(
		`\[(` + ShortcodeEVRegional + `|` + ShortcodeEV + `|` + ShortcodeEnergy + `)((?:\s[^\]]*)?)\]`)
	shortcodeAttrRe = regexp.MustCompile(`([A-Za-z_][\w-]*)\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'\]]+))`)
)

// shortcodeKinds maps shortcode names to widget kinds.
//
//nolint:gochecknoglobals // Fixed lookup table.
var shortcodeKinds = map[string]widget.Kind{
	ShortcodeEnergy:     widget.KindEnergy,
	ShortcodeEV:         widget.KindEV,
	ShortcodeEVRegional: widget.KindEVRegional,
}

// shortcodeAttrs maps shortcode attribute names to container attributes.
//
//nolint:gochecknoglobals // Fixed lookup table.
var shortcodeAttrs = map[widget.Kind][][2]string{
	widget.KindEnergy: {
		{"price", widget.AttrDefaultPrice},
		{"watt", widget.AttrDefaultWatt},
	},
	widget.KindEV: {
		{"price", widget.AttrDefaultPrice},
		{"fuel_price", widget.AttrDefaultFuelPrice},
	},
	widget.KindEVRegional: {
		{"price", widget.AttrDefaultPrice},
		{"fuel_price", widget.AttrDefaultFuelPrice},
	},
}

// ExpandShortcodes replaces calculator shortcodes with their container
// elements. IDs are numbered per kind in order of appearance, starting
// at 1 for every call, so one call should cover one page.
func ExpandShortcodes(src string) string {
	counters := make(map[widget.Kind]int)

	return shortcodeRe.ReplaceAllStringFunc(src, func(match string) string {
		parts := shortcodeRe.FindStringSubmatch(match)
		kind := shortcodeKinds[parts[1]]
		counters[kind]++

		attrs := parseShortcodeAttrs(parts[2])
		id := fmt.Sprintf("%s-%d", kind.MarkerClass(), counters[kind])

		var b strings.Builder
		fmt.Fprintf(&b, `<div id="%s" class="%s"`, id, kind.MarkerClass())
		for _, pair := range shortcodeAttrs[kind] {
			fmt.Fprintf(&b, ` data-%s="%s"`, pair[1], html.EscapeString(attrs[pair[0]]))
		}
		b.WriteString("></div>")
		return b.String()
	})
}

// parseShortcodeAttrs reads key="value", key='value' and key=value pairs.
// Unknown keys are kept; callers pick what they need.
func parseShortcodeAttrs(s string) map[string]string {
	out := make(map[string]string)
	for _, m := range shortcodeAttrRe.FindAllStringSubmatch(s, -1) {
		out[strings.ToLower(m[1])] = m[2] + m[3] + m[4]
	}
	return out
}
