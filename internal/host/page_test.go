package host_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/elvencalc/internal/host"
	"github.com/rshade/elvencalc/internal/widget"
)

func writePage(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseHTML(t *testing.T) {
	doc := `<html><body>
<div id="a" class="entry elven-kwh-calculator" data-default-price="3,00" data-default-watt=""></div>
<p>text</p>
<div class="elven-ev-calculator-dk" data-default-fuel-price="12,50" data-unrelated="x"></div>
<div class="elven-other"></div>
</body></html>`

	containers, err := host.ParseHTML(doc)
	require.NoError(t, err)
	require.Len(t, containers, 2)

	assert.Equal(t, "a", containers[0].ID)
	assert.Equal(t, map[string]string{
		widget.AttrDefaultPrice: "3,00",
		widget.AttrDefaultWatt:  "",
	}, containers[0].Attributes)

	assert.True(t, strings.HasPrefix(containers[1].ID, widget.MarkerEVRegional+"-"))
	assert.Equal(t, map[string]string{widget.AttrDefaultFuelPrice: "12,50"}, containers[1].Attributes)
}

func TestRender_Markdown(t *testing.T) {
	src := "# Running costs\n\nTry it:\n\n[elven_ev_calc price=\"2,00\"]\n\nDone.\n"

	out, err := host.Render("post.md", []byte(src))
	require.NoError(t, err)

	assert.Contains(t, out, "<h1>Running costs</h1>")
	assert.Contains(t, out, `class="elven-ev-calculator"`)
	assert.Contains(t, out, `data-default-price="2,00"`)
}

func TestRender_HTMLIsNotMarkdown(t *testing.T) {
	out, err := host.Render("page.html", []byte("# not a heading [elven_kwh_calc]"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# not a heading <div"))
}

func TestIsMarkdown(t *testing.T) {
	assert.True(t, host.IsMarkdown("a/b.MD"))
	assert.True(t, host.IsMarkdown("post.markdown"))
	assert.False(t, host.IsMarkdown("page.html"))
}

func TestLoadFiles_KeepsArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writePage(t, dir, "one.md", "[elven_kwh_calc watt=\"60\"]\n"),
		writePage(t, dir, "two.html", `<div id="x" class="elven-ev-calculator"></div>`),
		writePage(t, dir, "three.md", "no calculators here\n"),
	}

	pages, err := host.LoadFiles(context.Background(), paths...)
	require.NoError(t, err)
	require.Len(t, pages, 3)

	for i, p := range pages {
		assert.Equal(t, paths[i], p.Path)
	}
	require.Len(t, pages[0].Containers, 1)
	assert.Equal(t, "elven-kwh-calculator-1", pages[0].Containers[0].ID)
	assert.Equal(t, "60", pages[0].Containers[0].Attributes[widget.AttrDefaultWatt])
	require.Len(t, pages[1].Containers, 1)
	assert.Equal(t, "x", pages[1].Containers[0].ID)
	assert.Empty(t, pages[2].Containers)
}

func TestLoadFiles_MissingFile(t *testing.T) {
	dir := t.TempDir()
	ok := writePage(t, dir, "ok.html", "<p></p>")

	_, err := host.LoadFiles(context.Background(), ok, filepath.Join(dir, "missing.html"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFile_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := host.LoadFile(ctx, "whatever.html")
	require.ErrorIs(t, err, context.Canceled)
}

func TestPage_Mount(t *testing.T) {
	dir := t.TempDir()
	path := writePage(t, dir, "page.md",
		"[elven_kwh_calc price=\"3,00\"]\n\n[elven_kwh_calc]\n\n[elven_ev_calc_dk fuel_price=\"12\"]\n")

	page, err := host.LoadFile(context.Background(), path)
	require.NoError(t, err)

	widgets, err := page.Mount()
	require.NoError(t, err)
	require.Len(t, widgets, 3)

	assert.Equal(t, "elven-kwh-calculator-1", widgets[0].ID())
	assert.Equal(t, "3,00", widgets[0].Snapshot().Fields[widget.FieldPrice])
	assert.Equal(t, "2,50", widgets[1].Snapshot().Fields[widget.FieldPrice], "empty attribute falls back")
	assert.Equal(t, widget.KindEVRegional, widgets[2].Kind())
	assert.Equal(t, "12", widgets[2].Snapshot().Fields[widget.FieldFuelPrice])
}
