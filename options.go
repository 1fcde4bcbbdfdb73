package prettyhttp

import (
	"net/http"

	"github.com/charmbracelet/lipgloss"
)

// WithNext sets the RoundTripper the Transport forwards to.
func WithNext(next http.RoundTripper) Option {
	return func(t *Transport) {
		t.next = next
	}
}

// WithSink routes transcript lines to the given sink instead of stdout.
func WithSink(sink LineSink) Option {
	return func(t *Transport) {
		t.sink = sink
	}
}

// WithRequestHeader toggles the request header and query parameter sections.
func WithRequestHeader(enabled bool) Option {
	return func(t *Transport) {
		t.requestHeader = enabled
	}
}

// WithRequestBody toggles the request body section.
func WithRequestBody(enabled bool) Option {
	return func(t *Transport) {
		t.requestBody = enabled
	}
}

// WithResponseHeader toggles the response header section.
func WithResponseHeader(enabled bool) Option {
	return func(t *Transport) {
		t.responseHeader = enabled
	}
}

// WithResponseBody toggles the response body section.
func WithResponseBody(enabled bool) Option {
	return func(t *Transport) {
		t.responseBody = enabled
	}
}

// WithErrors toggles the error box for failed exchanges.
func WithErrors(enabled bool) Option {
	return func(t *Transport) {
		t.logErrors = enabled
	}
}

// WithEnabled turns the whole Transport on or off. When disabled it is a
// pass-through with no logging cost.
func WithEnabled(enabled bool) Option {
	return func(t *Transport) {
		t.enabled = enabled
	}
}

// WithMaxWidth sets the display column budget used by the printer and the
// box rules.
func WithMaxWidth(width int) Option {
	return func(t *Transport) {
		t.opts.MaxWidth = width
	}
}

// WithCompact toggles single-line flattening of small nested structures.
func WithCompact(compact bool) Option {
	return func(t *Transport) {
		t.opts.Compact = compact
	}
}

// WithMaxDepth bounds printer recursion into nested body structures.
func WithMaxDepth(depth int) Option {
	return func(t *Transport) {
		t.opts.MaxDepth = depth
	}
}

// WithPrintOptions replaces the printer options wholesale.
func WithPrintOptions(opts Options) Option {
	return func(t *Transport) {
		t.opts = opts
	}
}

// WithFilter installs the predicate deciding whether an exchange is logged.
func WithFilter(filter Filter) Option {
	return func(t *Transport) {
		t.filter = filter
	}
}

// WithRenderer supplies the lipgloss renderer used to resolve palette
// styles. Bind it to the writer the sink targets so colors degrade with
// that writer's capabilities.
func WithRenderer(renderer *lipgloss.Renderer) Option {
	return func(t *Transport) {
		t.renderer = renderer
	}
}

// WithPalette selects a named color palette; see PaletteNames. The default
// is "none".
func WithPalette(name string) Option {
	return func(t *Transport) {
		t.paletteName = name
	}
}

// WithColorPalette installs a fully custom palette, bypassing the registry.
func WithColorPalette(palette ColorPalette) Option {
	return func(t *Transport) {
		t.palette = palette
		t.paletteSet = true
	}
}

// WithMetrics enables Prometheus metrics on the default registerer.
func WithMetrics() Option {
	return func(t *Transport) {
		t.metrics = NewMetricsCollector()
	}
}

// WithMetricsCollector sets a custom metrics collector.
func WithMetricsCollector(collector *MetricsCollector) Option {
	return func(t *Transport) {
		t.metrics = collector
	}
}

// WithCompactBodyLimit makes JSON bodies larger than limit bytes render as
// a single compacted block instead of a multi-line tree. Zero disables the
// escape hatch.
func WithCompactBodyLimit(limit int) Option {
	return func(t *Transport) {
		t.compactLimit = limit
	}
}
