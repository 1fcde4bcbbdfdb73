package prettyhttp

import (
	"encoding/json"
	"testing"
)

func TestFromJSON_PreservesKeyOrder(t *testing.T) {
	v, err := FromJSON([]byte(`{"b": 1, "a": 2, "c": 3}`))
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	if v.Kind() != KindMapping {
		t.Fatalf("expected mapping, got kind %d", v.Kind())
	}
	var keys []string
	for _, f := range v.Fields() {
		keys = append(keys, f.Key)
	}
	expected := []string{"b", "a", "c"}
	for i, k := range expected {
		if keys[i] != k {
			t.Fatalf("key order not preserved: expected %v, got %v", expected, keys)
		}
	}
}

func TestFromJSON_NumbersKeepSourceForm(t *testing.T) {
	v, err := FromJSON([]byte(`{"price": 1.50, "big": 9007199254740993}`))
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	fields := v.Fields()
	if got := fields[0].Value.inline(); got != "1.50" {
		t.Fatalf("expected 1.50, got %q", got)
	}
	if got := fields[1].Value.inline(); got != "9007199254740993" {
		t.Fatalf("expected integer to survive unrounded, got %q", got)
	}
}

func TestFromJSON_Invalid(t *testing.T) {
	if _, err := FromJSON([]byte(`{"a": `)); err == nil {
		t.Fatal("expected an error for truncated JSON")
	}
	if _, err := FromJSON(nil); err == nil {
		t.Fatal("expected an error for empty input")
	}
}

func TestFromJSON_NullsRenderNotElided(t *testing.T) {
	v, err := FromJSON([]byte(`{"gone": null}`))
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	if got := v.Fields()[0].Value.inline(); got != "null" {
		t.Fatalf(`expected "null", got %q`, got)
	}
}

func TestScalar_FallbackForUnknownShapes(t *testing.T) {
	type odd struct {
		X int
	}
	v := Scalar(odd{X: 7})
	if v.Kind() != KindScalar {
		t.Fatalf("unknown shapes must become scalars, got kind %d", v.Kind())
	}
	if got := v.inline(); got != "{7}" {
		t.Fatalf("expected default string conversion, got %q", got)
	}
}

func TestScalar_Variants(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, "null"},
		{true, "true"},
		{42, "42"},
		{json.Number("3.14"), "3.14"},
		{"plain", "plain"},
	}
	for _, tc := range cases {
		if got := Scalar(tc.in).inline(); got != tc.want {
			t.Fatalf("Scalar(%v).inline() = %q, want %q", tc.in, got, tc.want)
		}
	}
	if got := Scalar("s").display(); got != `"s"` {
		t.Fatalf("string scalars must quote under mapping keys, got %q", got)
	}
	if got := Scalar(42).display(); got != "42" {
		t.Fatalf("numbers must not quote, got %q", got)
	}
}

func TestValue_InlineRendering(t *testing.T) {
	m := Mapping(
		Field{Key: "a", Value: Scalar(1)},
		Field{Key: "b", Value: Sequence(Scalar(1), Scalar(2))},
	)
	if got := m.inline(); got != "{a: 1, b: [1, 2]}" {
		t.Fatalf("unexpected inline mapping: %q", got)
	}
	if got := Binary([]byte{1, 2, 255}).inline(); got != "[1, 2, 255]" {
		t.Fatalf("unexpected inline buffer: %q", got)
	}
}
