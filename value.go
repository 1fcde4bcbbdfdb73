package prettyhttp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds. The set is closed: anything
// the printer does not recognize is constructed as a scalar up front, so
// dispatch never falls through silently.
type Kind int

const (
	KindScalar Kind = iota
	KindMapping
	KindSequence
	KindBinary
)

// Field is one key/value entry of a mapping. Mappings are slices of fields
// rather than Go maps so that iteration order is exactly the order fields
// were added; the printer never sorts keys.
type Field struct {
	Key   string
	Value Value
}

// Value is the tree handed to the printer: a mapping with stable field
// order, an ordered sequence, a binary buffer, or a scalar rendered through
// its default string form. Values are immutable once constructed.
type Value struct {
	kind   Kind
	scalar string
	quoted bool
	fields []Field
	elems  []Value
	buf    []byte
}

// Scalar wraps any leaf value. Strings are remembered as strings so they can
// be quoted when emitted as a mapping value; everything else renders through
// fmt.Sprint. A nil argument becomes the null scalar.
func Scalar(v any) Value {
	switch x := v.(type) {
	case nil:
		return Value{kind: KindScalar, scalar: "null"}
	case string:
		return Value{kind: KindScalar, scalar: x, quoted: true}
	case json.Number:
		return Value{kind: KindScalar, scalar: x.String()}
	case bool:
		return Value{kind: KindScalar, scalar: strconv.FormatBool(x)}
	case fmt.Stringer:
		return Value{kind: KindScalar, scalar: x.String()}
	default:
		return Value{kind: KindScalar, scalar: fmt.Sprint(x)}
	}
}

// Null is the scalar rendering of an absent value. Absent values are printed,
// not elided.
func Null() Value { return Value{kind: KindScalar, scalar: "null"} }

// Mapping builds an ordered mapping from the given fields.
func Mapping(fields ...Field) Value { return Value{kind: KindMapping, fields: fields} }

// Sequence builds an ordered sequence from the given elements.
func Sequence(elems ...Value) Value { return Value{kind: KindSequence, elems: elems} }

// Binary wraps a raw byte buffer. The printer emits it as fixed-size chunks
// of decimal byte values, never base64 or hex.
func Binary(b []byte) Value { return Value{kind: KindBinary, buf: b} }

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// Fields returns the mapping entries in insertion order. Nil for other kinds.
func (v Value) Fields() []Field { return v.fields }

// Elems returns the sequence elements in order. Nil for other kinds.
func (v Value) Elems() []Value { return v.elems }

// FromJSON decodes a JSON document into a Value tree. Object key order is
// preserved exactly as it appears in the document, and numbers keep their
// source representation (UseNumber, so no float64 round-tripping).
func FromJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return Value{}, fmt.Errorf("decode json: %w", err)
	}
	v, err := decodeFromToken(dec, tok)
	if err != nil {
		return Value{}, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return decodeFromToken(dec, tok)
}

func decodeFromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			var fields []Field
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("object key is %T, not string", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				fields = append(fields, Field{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Mapping(fields...), nil
		case '[':
			var elems []Value
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				elems = append(elems, val)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Sequence(elems...), nil
		}
		return Value{}, fmt.Errorf("unexpected delimiter %v", t)
	case string:
		return Scalar(t), nil
	case json.Number:
		return Scalar(t), nil
	case bool:
		return Scalar(t), nil
	case nil:
		return Null(), nil
	default:
		return Scalar(t), nil
	}
}

// inline renders the value on a single line in its conventional string form:
// "{k: v, k2: v2}" for mappings, "[a, b]" for sequences, decimal bytes for
// buffers, the bare scalar otherwise. The flatten heuristics compare this
// rendering against MaxWidth rather than the final indented line, which can
// under- or over-flatten near the width boundary. That inexactness is the
// accepted behavior and is kept as-is.
func (v Value) inline() string {
	switch v.kind {
	case KindMapping:
		var sb strings.Builder
		sb.WriteByte('{')
		for i, f := range v.fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Key)
			sb.WriteString(": ")
			sb.WriteString(f.Value.inline())
		}
		sb.WriteByte('}')
		return sb.String()
	case KindSequence:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, e := range v.elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(e.inline())
		}
		sb.WriteByte(']')
		return sb.String()
	case KindBinary:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, b := range v.buf {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(int(b)))
		}
		sb.WriteByte(']')
		return sb.String()
	default:
		return v.scalar
	}
}

// display is the rendering used when the value sits directly under a mapping
// key: string scalars are quoted there, everything else matches inline.
func (v Value) display() string {
	if v.kind == KindScalar && v.quoted {
		return `"` + v.scalar + `"`
	}
	return v.inline()
}
