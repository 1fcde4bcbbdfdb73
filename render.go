package prettyhttp

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// styled wraps a sink so every line passes through one lipgloss style. With
// a no-color palette the style is a no-op and lines flow through untouched.
func styled(emit LineSink, s lipgloss.Style) LineSink {
	return func(line string) {
		emit(s.Render(line))
	}
}

func (t *Transport) rule(emit LineSink) {
	styled(emit, t.palette.Frame)("╚" + strings.Repeat("═", t.opts.MaxWidth) + "╝")
}

func (t *Transport) printRequest(emit LineSink, req *http.Request, body []byte) {
	emit("")
	styled(emit, t.palette.Title)("╔╣ Request ║ " + req.Method)
	styled(emit, t.palette.URL)("║  " + req.URL.String())
	t.rule(emit)

	if t.requestHeader {
		t.printSection(emit, "Query Parameters", queryPairs(req.URL.RawQuery))
		t.printSection(emit, "Headers", headerPairs(req.Header))
	}
	if t.requestBody {
		t.printBody(emit, body, req.Header.Get("Content-Type"))
	}
}

func (t *Transport) printResponse(emit LineSink, req *http.Request, resp *http.Response, body []byte, elapsed time.Duration) {
	status := resp.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	emit("")
	title := fmt.Sprintf("╔╣ Response ║ %s ║ Status: %s ║ Time: %d ms", req.Method, status, elapsed.Milliseconds())
	styled(emit, t.palette.statusStyle(resp.StatusCode))(title)
	styled(emit, t.palette.URL)("║  " + req.URL.String())
	t.rule(emit)

	if t.responseHeader {
		t.printSection(emit, "Headers", headerPairs(resp.Header))
	}
	if t.responseBody {
		t.printBody(emit, body, resp.Header.Get("Content-Type"))
	}
}

func (t *Transport) printError(emit LineSink, req *http.Request, err error) {
	emit("")
	styled(emit, t.palette.Error)("╔╣ Error ║ " + req.Method)
	styled(emit, t.palette.URL)("║  " + req.URL.String())
	t.rule(emit)

	styled(emit, t.palette.Frame)("╔ Message")
	_ = PrintBlock(collapseNewlines(err.Error()), &t.opts, styled(emit, t.palette.Error))
	t.rule(emit)
}

// printSection renders a key/value table between a header line and a rule.
// Empty sections are elided entirely.
func (t *Transport) printSection(emit LineSink, header string, pairs [][2]string) {
	if len(pairs) == 0 {
		return
	}
	styled(emit, t.palette.Frame)("╔ " + header)
	kv := styled(emit, t.palette.Header)
	for _, p := range pairs {
		pre := "╟ " + p[0] + ": "
		if len(pre)+len(p[1]) > t.opts.MaxWidth {
			kv(pre)
			_ = PrintBlock(collapseNewlines(p[1]), &t.opts, kv)
			continue
		}
		kv(pre + p[1])
	}
	t.rule(emit)
}

// printBody renders the body box. JSON bodies go through the structured
// printer; anything else wraps as a plain block. A body that fails to parse
// as JSON falls back to the block path rather than being dropped.
func (t *Transport) printBody(emit LineSink, body []byte, contentType string) {
	if len(body) == 0 {
		return
	}
	styled(emit, t.palette.Frame)("╔ Body")
	bodySink := styled(emit, t.palette.Body)
	bodySink("║")

	if jsonBody(body, contentType) {
		if t.compactLimit > 0 && len(body) > t.compactLimit {
			if compacted, err := CompactJSON(body); err == nil {
				_ = PrintBlock(string(compacted), &t.opts, bodySink)
				bodySink("║")
				t.rule(emit)
				return
			}
		}
		if v, err := FromJSON(body); err == nil {
			_ = PrintValue(v, &t.opts, bodySink)
			bodySink("║")
			t.rule(emit)
			return
		}
	}
	_ = PrintBlock(collapseNewlines(string(body)), &t.opts, bodySink)
	bodySink("║")
	t.rule(emit)
}

func jsonBody(body []byte, contentType string) bool {
	if strings.Contains(contentType, "json") {
		return true
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) < 2 {
		return false
	}
	first, last := trimmed[0], trimmed[len(trimmed)-1]
	return (first == '{' && last == '}') || (first == '[' && last == ']')
}

// queryPairs splits a raw query string into decoded key/value pairs,
// keeping the order they appear in the URL.
func queryPairs(rawQuery string) [][2]string {
	if rawQuery == "" {
		return nil
	}
	var pairs [][2]string
	for _, part := range strings.Split(rawQuery, "&") {
		if part == "" {
			continue
		}
		k, v, _ := strings.Cut(part, "=")
		if dk, err := url.QueryUnescape(k); err == nil {
			k = dk
		}
		if dv, err := url.QueryUnescape(v); err == nil {
			v = dv
		}
		pairs = append(pairs, [2]string{k, v})
	}
	return pairs
}

// headerPairs flattens an http.Header into sorted key/value pairs so
// transcripts are deterministic across runs.
func headerPairs(h http.Header) [][2]string {
	if len(h) == 0 {
		return nil
	}
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([][2]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, [2]string{k, strings.Join(h[k], ", ")})
	}
	return pairs
}
