package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/elvencalc/internal/host"
	"github.com/rshade/elvencalc/internal/logging"
	"github.com/rshade/elvencalc/internal/widget"
)

// NewPageCmd creates the "page" command, which mounts every calculator
// found in HTML or Markdown pages.
func NewPageCmd() *cobra.Command {
	var (
		interactive bool
		output      string
	)

	cmd := &cobra.Command{
		Use:   "page FILE...",
		Short: "Run the calculators embedded in HTML or Markdown pages",
		Long: `Load pages, expand calculator shortcodes, render Markdown and mount every
calculator container found. Containers are recognised by their marker
class (elven-kwh-calculator, elven-ev-calculator, elven-ev-calculator-dk)
and read their defaults from data-default-* attributes.

Supported shortcodes:
  [elven_kwh_calc price="2,50" watt="100"]
  [elven_ev_calc price="2,50" fuel_price="14,50"]
  [elven_ev_calc_dk price="2,50" fuel_price="13,00"]`,
		Example: `  # Show every calculator in two posts
  elvencalc page posts/heater.md posts/ev.html

  # Edit them interactively, Tab switches calculator
  elvencalc page posts/heater.md --interactive`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executePage(cmd, args, interactive, output)
		},
	}

	cmd.Flags().BoolVar(&interactive, "interactive", false, "edit the calculators in an interactive TUI")
	cmd.Flags().StringVar(&output, "output", "", "output format: table, json or ndjson (default from config)")

	return cmd
}

// mountedPage pairs a loaded page with its widgets.
type mountedPage struct {
	Path    string            `json:"path"`
	Widgets []widget.Snapshot `json:"widgets"`

	widgets []widget.Widget
}

func executePage(cmd *cobra.Command, paths []string, interactive bool, output string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	start := time.Now()

	format, err := resolveOutput(output)
	if err != nil {
		return err
	}

	pages, err := host.LoadFiles(ctx, paths...)
	if err != nil {
		return err
	}

	mounted := make([]mountedPage, 0, len(pages))
	var all []widget.Widget
	for _, p := range pages {
		widgets, mountErr := p.Mount()
		if mountErr != nil {
			return mountErr
		}
		mounted = append(mounted, mountedPage{Path: p.Path, widgets: widgets})
		all = append(all, widgets...)
	}

	log.Info().Ctx(ctx).
		Str("operation", "page").
		Int("page_count", len(pages)).
		Int("widget_count", len(all)).
		Dur("duration_ms", time.Since(start)).
		Msg("pages loaded")

	if interactive && len(all) > 0 {
		if _, err = runInteractive(cmd, all); err != nil {
			return err
		}
	}

	for i := range mounted {
		mounted[i].Widgets = snapshots(mounted[i].widgets)
	}
	return renderPages(cmd.OutOrStdout(), format, mounted)
}

func renderPages(w io.Writer, format string, pages []mountedPage) error {
	switch format {
	case outputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Pages []mountedPage `json:"pages"`
		}{Pages: pages})
	case outputFormatNDJSON:
		enc := json.NewEncoder(w)
		for _, p := range pages {
			for _, s := range p.Widgets {
				line := struct {
					Path string `json:"path"`
					widget.Snapshot
				}{Path: p.Path, Snapshot: s}
				if err := enc.Encode(line); err != nil {
					return err
				}
			}
		}
		return nil
	default:
		for i, p := range pages {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "# %s\n\n", p.Path)
			if err := renderWidgetsTable(w, p.widgets); err != nil {
				return err
			}
		}
		return nil
	}
}
