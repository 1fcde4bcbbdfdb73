package prettyhttp

import (
	"strings"
	"testing"
)

// FuzzPrintValue checks that any JSON document the decoder accepts can be
// printed without panicking, and that printing is deterministic.
func FuzzPrintValue(f *testing.F) {
	f.Add([]byte(`{"a": 1}`))
	f.Add([]byte(`[1, "two", null, true]`))
	f.Add([]byte(`{"nested": {"deep": [{"x": "y"}]}}`))
	f.Add([]byte(`"just a string"`))
	f.Add([]byte(`{"long": "` + strings.Repeat("x", 300) + `"}`))

	f.Fuzz(func(t *testing.T, data []byte) {
		v, err := FromJSON(data)
		if err != nil {
			return
		}
		var first, second []string
		if err := PrintValue(v, nil, func(line string) { first = append(first, line) }); err != nil {
			t.Fatalf("PrintValue failed on decoded input: %v", err)
		}
		if err := PrintValue(v, nil, func(line string) { second = append(second, line) }); err != nil {
			t.Fatalf("second PrintValue failed: %v", err)
		}
		if len(first) != len(second) {
			t.Fatalf("print is not deterministic: %d vs %d lines", len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("line %d differs between prints: %q vs %q", i, first[i], second[i])
			}
		}
	})
}
