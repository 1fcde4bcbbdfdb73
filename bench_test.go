package prettyhttp

import "testing"

var benchDoc = []byte(`{
	"id": "b7c9",
	"status": "active",
	"tags": ["alpha", "beta", "gamma"],
	"owner": {"name": "ada", "email": "ada@example.com"},
	"counts": [1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12],
	"note": "a reasonably long free-text field that will exercise the scalar wrapping path of the printer"
}`)

func BenchmarkPrintValue(b *testing.B) {
	v, err := FromJSON(benchDoc)
	if err != nil {
		b.Fatalf("FromJSON failed: %v", err)
	}
	discard := func(string) {}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := PrintValue(v, nil, discard); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFromJSON(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := FromJSON(benchDoc); err != nil {
			b.Fatal(err)
		}
	}
}
