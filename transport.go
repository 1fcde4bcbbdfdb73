package prettyhttp

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Transport is an http.RoundTripper that renders a boxed, human-readable
// transcript of every exchange passing through it. It observes only: the
// request and response are forwarded unmodified, bodies are restored after
// reading, and a failure while rendering never disturbs the traffic it is
// watching.
type Transport struct {
	next http.RoundTripper

	requestHeader  bool
	requestBody    bool
	responseHeader bool
	responseBody   bool
	logErrors      bool
	enabled        bool

	opts         Options
	sink         LineSink
	palette      ColorPalette
	paletteSet   bool
	renderer     *lipgloss.Renderer
	paletteName  string
	filter       Filter
	metrics      *MetricsCollector
	compactLimit int

	// Serializes rendering so concurrent requests do not interleave their
	// transcripts. The observed traffic itself is never blocked on this
	// beyond the duration of one transcript.
	mu sync.Mutex
}

// Option configures a Transport.
type Option func(*Transport)

// RoundTripperFunc adapts a function to an http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

// RoundTrip implements http.RoundTripper.
func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// New builds a Transport around http.DefaultTransport unless WithNext
// overrides it. By default it logs request headers, both bodies, and
// errors to stdout, uncolored, at 90 columns with compact flattening.
func New(options ...Option) (*Transport, error) {
	t := &Transport{
		next:           http.DefaultTransport,
		requestHeader:  true,
		requestBody:    true,
		responseHeader: false,
		responseBody:   true,
		logErrors:      true,
		enabled:        true,
		opts:           *DefaultOptions,
		paletteName:    paletteNoneName,
	}
	for _, o := range options {
		o(t)
	}
	if err := t.opts.Validate(); err != nil {
		return nil, err
	}
	if t.renderer == nil {
		t.renderer = lipgloss.NewRenderer(os.Stdout)
	}
	if !t.paletteSet {
		pal, err := ResolvePalette(t.paletteName, t.renderer, true)
		if err != nil {
			return nil, err
		}
		t.palette = pal
	}
	if t.sink == nil {
		t.sink = WriterSink(os.Stdout)
	}
	return t, nil
}

// RoundTrip forwards the request and logs the exchange once its outcome is
// known. The returned response is usable as if the Transport were absent.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.next
	if next == nil {
		next = http.DefaultTransport
	}
	if !t.enabled {
		return next.RoundTrip(req)
	}

	var reqBody []byte
	if t.requestBody && req.Body != nil && req.Body != http.NoBody {
		b, err := io.ReadAll(req.Body)
		req.Body.Close()
		reqBody = b
		req.Body = io.NopCloser(bytes.NewReader(b))
		if err != nil {
			reqBody = nil
		}
	}

	start := time.Now()
	resp, err := next.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		if t.shouldLog(FilterArgs{Request: req, Err: err}) {
			t.logExchange(req, reqBody, nil, nil, elapsed, err)
		} else {
			t.metrics.recordSkipped()
		}
		return nil, err
	}

	if !t.shouldLog(FilterArgs{Request: req, Response: resp}) {
		t.metrics.recordSkipped()
		return resp, nil
	}

	var respBody []byte
	if t.responseBody && resp.Body != nil {
		b, rerr := io.ReadAll(resp.Body)
		resp.Body.Close()
		respBody = b
		resp.Body = io.NopCloser(bytes.NewReader(b))
		if rerr != nil {
			respBody = nil
		}
	}

	t.logExchange(req, reqBody, resp, respBody, elapsed, nil)
	return resp, nil
}

func (t *Transport) shouldLog(args FilterArgs) bool {
	if t.filter == nil {
		return true
	}
	return t.filter(args)
}

// logExchange renders a full transcript. Panics raised while rendering are
// swallowed: a broken log line must not fail the request it describes.
func (t *Transport) logExchange(req *http.Request, reqBody []byte, resp *http.Response, respBody []byte, elapsed time.Duration, errOutcome error) {
	defer func() {
		_ = recover()
	}()

	renderStart := time.Now()
	t.mu.Lock()
	defer t.mu.Unlock()

	emit := t.sink
	if t.metrics != nil {
		inner := t.sink
		emit = func(line string) {
			t.metrics.recordLine()
			inner(line)
		}
	}

	t.printRequest(emit, req, reqBody)
	if errOutcome != nil {
		if t.logErrors {
			t.printError(emit, req, errOutcome)
		}
		t.metrics.recordRender(time.Since(renderStart))
		t.metrics.recordExchange("error")
		return
	}
	t.printResponse(emit, req, resp, respBody, elapsed)
	t.metrics.recordRender(time.Since(renderStart))
	t.metrics.recordExchange("response")
}
