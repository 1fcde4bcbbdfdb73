package prettyhttp

import (
	"bytes"

	"pkt.systems/jpact"
)

// CompactJSON rewrites a JSON document onto a single line with all
// insignificant whitespace removed. The transport uses it as the escape
// hatch for bodies too large to be worth a multi-line transcript; it is
// exported because callers pre-filtering their own payloads want the same
// behavior.
func CompactJSON(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(data))
	if err := jpact.CompactWriter(&buf, bytes.NewReader(data), 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
