package prettyhttp

import (
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestPaletteNames_SortedAndIncludeNone(t *testing.T) {
	names := PaletteNames()
	if !sort.StringsAreSorted(names) {
		t.Fatalf("palette names must be sorted: %v", names)
	}
	found := false
	for _, name := range names {
		if name == "none" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected \"none\" among palette names: %v", names)
	}
}

func TestResolvePalette_UnknownName(t *testing.T) {
	_, err := ResolvePalette("no-such-theme", nil, true)
	if err == nil {
		t.Fatal("expected an error for an unknown palette")
	}
	if !strings.Contains(err.Error(), "no-such-theme") {
		t.Fatalf("error should name the bad palette: %v", err)
	}
}

func TestResolvePalette_DefaultsAndCase(t *testing.T) {
	renderer := lipgloss.NewRenderer(io.Discard)
	if _, err := ResolvePalette("", renderer, true); err != nil {
		t.Fatalf("empty name must resolve to the default palette: %v", err)
	}
	if _, err := ResolvePalette("  Tokyo-Night  ", renderer, true); err != nil {
		t.Fatalf("names must be case- and space-insensitive: %v", err)
	}
}

func TestResolvePalette_ColorDisabledStillValidates(t *testing.T) {
	renderer := lipgloss.NewRenderer(io.Discard)
	if _, err := ResolvePalette("bogus", renderer, false); err == nil {
		t.Fatal("validation must happen even when color is disabled")
	}
	pal, err := ResolvePalette("default", renderer, false)
	if err != nil {
		t.Fatalf("ResolvePalette failed: %v", err)
	}
	if got := pal.Title.Render("plain"); got != "plain" {
		t.Fatalf("disabled color must leave lines untouched, got %q", got)
	}
}

func TestNoColorPalette_RendersUnstyled(t *testing.T) {
	pal := NoColorPalette(lipgloss.NewRenderer(io.Discard))
	for _, style := range []lipgloss.Style{pal.Frame, pal.Body, pal.Error, pal.statusStyle(500)} {
		if got := style.Render("x"); got != "x" {
			t.Fatalf("no-color style altered its input: %q", got)
		}
	}
}

func TestColorPalette_StatusStyleBuckets(t *testing.T) {
	pal := DefaultColorPalette(lipgloss.NewRenderer(io.Discard))
	cases := map[int]lipgloss.Style{
		200: pal.Status2xx,
		204: pal.Status2xx,
		301: pal.Status3xx,
		404: pal.Status4xx,
		500: pal.Status5xx,
		503: pal.Status5xx,
	}
	for code, want := range cases {
		if got := pal.statusStyle(code); got.GetForeground() != want.GetForeground() {
			t.Fatalf("status %d picked the wrong style", code)
		}
	}
}
