// Package host turns page sources into mounted calculator widgets.
//
// A page is HTML or Markdown that may contain calculator shortcodes or
// already-expanded container elements. Loading a page expands shortcodes,
// renders Markdown, and scans the resulting HTML for marker classes.
package host

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/elvencalc/internal/logging"
	"github.com/rshade/elvencalc/internal/widget"
)

// Page is one loaded source with the containers found in it.
type Page struct {
	Path       string
	HTML       string
	Containers []widget.Container
}

// Mount mounts every container of the page, in document order.
func (p Page) Mount() ([]widget.Widget, error) {
	out := make([]widget.Widget, 0, len(p.Containers))
	for _, c := range p.Containers {
		w, err := widget.Mount(c)
		if err != nil {
			return nil, fmt.Errorf("mounting %s in %s: %w", c.ID, p.Path, err)
		}
		out = append(out, w)
	}
	return out, nil
}

// IsMarkdown reports whether path names a Markdown source.
func IsMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	default:
		return false
	}
}

// Render expands shortcodes and, for Markdown sources, renders to HTML.
// Raw HTML in Markdown is kept so container elements survive.
func Render(path string, src []byte) (string, error) {
	expanded := ExpandShortcodes(string(src))
	if !IsMarkdown(path) {
		return expanded, nil
	}

	md := goldmark.New(goldmark.WithRendererOptions(gmhtml.WithUnsafe()))
	var buf bytes.Buffer
	if err := md.Convert([]byte(expanded), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown %s: %w", path, err)
	}
	return buf.String(), nil
}

// ParseHTML finds calculator containers in an HTML document, in document
// order. Containers without an id get a generated one.
func ParseHTML(doc string) ([]widget.Container, error) {
	d, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	selectors := make([]string, 0, len(widget.Kinds))
	for _, k := range widget.Kinds {
		selectors = append(selectors, "."+k.MarkerClass())
	}

	var out []widget.Container
	d.Find(strings.Join(selectors, ", ")).Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		kind, ok := widget.KindForClass(class)
		if !ok {
			return
		}

		id, _ := sel.Attr("id")
		if id == "" {
			id = widget.NewID(kind)
		}

		attrs := make(map[string]string)
		for _, name := range widget.DefaultAttributes[kind] {
			if v, exists := sel.Attr("data-" + name); exists {
				attrs[name] = v
			}
		}

		out = append(out, widget.Container{ID: id, Class: class, Attributes: attrs})
	})
	return out, nil
}

// LoadFile reads, renders and scans one page.
func LoadFile(ctx context.Context, path string) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return Page{}, fmt.Errorf("reading page %s: %w", path, err)
	}

	doc, err := Render(path, src)
	if err != nil {
		return Page{}, err
	}

	containers, err := ParseHTML(doc)
	if err != nil {
		return Page{}, fmt.Errorf("scanning page %s: %w", path, err)
	}

	logging.FromContext(ctx).Debug().
		Str("component", "host").
		Str("path", path).
		Int("containers", len(containers)).
		Msg("page loaded")

	return Page{Path: path, HTML: doc, Containers: containers}, nil
}

// LoadFiles loads pages concurrently and returns them in argument order.
// The first failure cancels the remaining loads.
func LoadFiles(ctx context.Context, paths ...string) ([]Page, error) {
	pages := make([]Page, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			page, err := LoadFile(gCtx, path)
			if err != nil {
				return err
			}
			pages[i] = page
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}
