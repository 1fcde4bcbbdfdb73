package prettyhttp

import (
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mohamed-7018/prettyhttp/internal/theme"
)

// ColorPalette configures the Lip Gloss styles for each class of transcript
// line. Styles wrap whole finished lines right before they reach the sink;
// the printer itself stays colorless.
type ColorPalette struct {
	Frame     lipgloss.Style
	Title     lipgloss.Style
	Method    lipgloss.Style
	URL       lipgloss.Style
	Header    lipgloss.Style
	Body      lipgloss.Style
	Time      lipgloss.Style
	Status2xx lipgloss.Style
	Status3xx lipgloss.Style
	Status4xx lipgloss.Style
	Status5xx lipgloss.Style
	Error     lipgloss.Style
}

// DefaultColorPalette returns the default theme tuned for Lip Gloss. The
// renderer governs how colors degrade on limited terminals.
func DefaultColorPalette(renderer *lipgloss.Renderer) ColorPalette {
	return paletteFromTheme(renderer, theme.Default)
}

// NoColorPalette disables all styling while keeping the rendering path
// shared with the colored one.
func NoColorPalette(renderer *lipgloss.Renderer) ColorPalette {
	if renderer == nil {
		renderer = lipgloss.NewRenderer(os.Stdout)
	}
	base := renderer.NewStyle()
	return ColorPalette{
		Frame:     base,
		Title:     base,
		Method:    base,
		URL:       base,
		Header:    base,
		Body:      base,
		Time:      base,
		Status2xx: base,
		Status3xx: base,
		Status4xx: base,
		Status5xx: base,
		Error:     base,
	}
}

func paletteFromTheme(renderer *lipgloss.Renderer, t theme.Palette) ColorPalette {
	if renderer == nil {
		renderer = lipgloss.NewRenderer(os.Stdout)
	}
	style := func(c string) lipgloss.Style {
		return renderer.NewStyle().Foreground(lipgloss.Color(c))
	}
	return ColorPalette{
		Frame:     style(t.Frame),
		Title:     style(t.Title).Bold(true),
		Method:    style(t.Method).Bold(true),
		URL:       style(t.URL),
		Header:    style(t.Header),
		Body:      style(t.Body),
		Time:      style(t.Time),
		Status2xx: style(t.Status2xx).Bold(true),
		Status3xx: style(t.Status3xx),
		Status4xx: style(t.Status4xx).Bold(true),
		Status5xx: style(t.Status5xx).Bold(true),
		Error:     style(t.Error).Bold(true),
	}
}

// statusStyle picks the style for an HTTP status code.
func (p ColorPalette) statusStyle(code int) lipgloss.Style {
	switch {
	case code >= 500:
		return p.Status5xx
	case code >= 400:
		return p.Status4xx
	case code >= 300:
		return p.Status3xx
	default:
		return p.Status2xx
	}
}
