package prettyhttp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// LineSink receives each finished display line, in strict top-to-bottom
// emission order. The printer never buffers a result; lines stream to the
// sink as they are produced. The sink is expected to be synchronous: if it
// blocks, the whole print call blocks with it.
type LineSink func(line string)

// Options controls the pretty-printing behavior.
type Options struct {
	// MaxWidth is the max display columns before a value wraps. Default 90.
	MaxWidth int
	// Compact flattens small leaf-only mappings and short sequences onto a
	// single line.
	Compact bool
	// Prefix is applied to every output line, ahead of indentation.
	Prefix string
	// Indent defines one level of nested indentation. Default two spaces.
	Indent string
	// InitialIndent is the indent level applied at the root.
	InitialIndent int
	// MaxDepth bounds recursion into nested structures. Nodes deeper than
	// this emit a truncation marker instead of recursing. Values <= 0 fall
	// back to DefaultMaxDepth.
	MaxDepth int
}

// DefaultMaxDepth is the recursion bound used when Options.MaxDepth is unset.
// Typical HTTP payloads nest far shallower than this.
const DefaultMaxDepth = 16

// DefaultOptions holds the fallback printer configuration: the vertical-bar
// margin, two-space indentation, and compact flattening at 90 columns.
var DefaultOptions = &Options{MaxWidth: 90, Compact: true, Prefix: "║ ", Indent: "  ", InitialIndent: 1, MaxDepth: DefaultMaxDepth}

// Validate rejects options the printer cannot run with. A non-positive
// MaxWidth has no defined wrapping behavior, so it fails here rather than
// somewhere inside the recursion.
func (o *Options) Validate() error {
	if o.MaxWidth <= 0 {
		return fmt.Errorf("prettyhttp: MaxWidth must be positive, got %d", o.MaxWidth)
	}
	if o.InitialIndent < 0 {
		return fmt.Errorf("prettyhttp: InitialIndent must not be negative, got %d", o.InitialIndent)
	}
	return nil
}

const truncationMark = "..."

const binaryChunkSize = 20

// PrintValue renders v as display lines delivered to sink. Passing nil opts
// uses DefaultOptions. The call is synchronous and completes before
// returning; the input is traversed exactly once and never mutated.
func PrintValue(v Value, opts *Options, sink LineSink) error {
	if sink == nil {
		return errors.New("prettyhttp: nil sink")
	}
	if opts == nil {
		opts = DefaultOptions
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	p := acquirePrinter(*opts, sink)
	defer releasePrinter(p)
	p.printValue(v)
	return nil
}

// PrintBlock renders text as consecutive MaxWidth-sized chunk lines, each
// carrying the configured prefix. Empty text emits no lines.
func PrintBlock(text string, opts *Options, sink LineSink) error {
	if sink == nil {
		return errors.New("prettyhttp: nil sink")
	}
	if opts == nil {
		opts = DefaultOptions
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	p := acquirePrinter(*opts, sink)
	defer releasePrinter(p)
	p.printBlock(text)
	return nil
}

// printer holds the per-call recursion state. It is acquired from a pool and
// never shared between calls.
type printer struct {
	opts    Options
	sink    LineSink
	scratch strings.Builder
}

func (p *printer) printValue(v Value) {
	level := p.opts.InitialIndent
	switch v.kind {
	case KindMapping:
		p.printMapping(v, level, true, false, false, 0)
	case KindSequence:
		p.line(level, "[")
		p.printSequence(v, level, 0)
		p.line(level, "]")
	case KindBinary:
		p.printBinary(v.buf, level)
	default:
		p.printBlock(v.display())
	}
}

// printMapping emits one mapping. The bare opening brace line is only
// printed at the root and for sequence elements; for keyed nesting the
// parent has already emitted the `"key": {` line. The closing brace is
// always emitted here, with a trailing comma when this mapping is a
// non-last element of an enclosing sequence.
func (p *printer) printMapping(v Value, level int, open, isListElem, isLastInList bool, depth int) {
	if open {
		p.line(level, "{")
	}
	inner := level + 1
	if depth >= p.maxDepth() {
		p.line(inner, truncationMark)
		p.closeMapping(level, isListElem, isLastInList)
		return
	}
	for i, f := range v.fields {
		last := i == len(v.fields)-1
		key := `"` + f.Key + `"`
		sep := ","
		if last {
			sep = ""
		}
		switch f.Value.kind {
		case KindMapping:
			if p.opts.Compact && flattenableMapping(f.Value, p.opts.MaxWidth) {
				p.line(inner, key+": "+f.Value.inline()+sep)
			} else {
				p.line(inner, key+": {")
				p.printMapping(f.Value, inner, false, false, false, depth+1)
			}
		case KindSequence:
			if p.opts.Compact && flattenableSequence(f.Value, p.opts.MaxWidth) {
				p.line(inner, key+": "+f.Value.inline()+sep)
			} else {
				p.line(inner, key+": [")
				p.printSequence(f.Value, inner, depth+1)
				p.line(inner, "]"+sep)
			}
		case KindBinary:
			p.line(inner, key+": [")
			p.printBinary(f.Value.buf, inner+1)
			p.line(inner, "]"+sep)
		default:
			p.printScalarField(key, f.Value, inner, last)
		}
	}
	p.closeMapping(level, isListElem, isLastInList)
}

func (p *printer) closeMapping(level int, isListElem, isLastInList bool) {
	closing := "}"
	if isListElem && !isLastInList {
		closing += ","
	}
	p.line(level, closing)
}

// printScalarField emits a single `key: value` line, or chunks the value at
// MaxWidth when the pair does not fit the remaining line width. The key
// label appears only on the first chunk line, and chunked values carry no
// trailing separator.
func (p *printer) printScalarField(key string, v Value, level int, last bool) {
	val := collapseNewlines(v.display())
	avail := p.opts.MaxWidth - len(p.opts.Indent)*level
	if len(key)+2+len(val) > avail {
		w := p.opts.MaxWidth
		for i := 0; i < len(val); i += w {
			end := min(i+w, len(val))
			if i == 0 {
				p.line(level, key+": "+val[i:end])
			} else {
				p.line(level, val[i:end])
			}
		}
		return
	}
	sep := ","
	if last {
		sep = ""
	}
	p.line(level, key+": "+val+sep)
}

// printSequence emits the elements of a sequence. The enclosing bracket
// lines belong to the caller, so an empty sequence still shows its brackets.
func (p *printer) printSequence(v Value, level, depth int) {
	if depth >= p.maxDepth() {
		p.line(level+1, truncationMark)
		return
	}
	for i, e := range v.elems {
		last := i == len(v.elems)-1
		sep := ","
		if last {
			sep = ""
		}
		switch e.kind {
		case KindMapping:
			if p.opts.Compact && flattenableMapping(e, p.opts.MaxWidth) {
				p.line(level+1, e.inline()+sep)
			} else {
				p.printMapping(e, level+1, true, true, last, depth+1)
			}
		case KindSequence:
			if p.opts.Compact && flattenableSequence(e, p.opts.MaxWidth) {
				p.line(level+1, e.inline()+sep)
			} else {
				p.line(level+1, "[")
				p.printSequence(e, level+1, depth+1)
				p.line(level+1, "]"+sep)
			}
		case KindBinary:
			p.line(level+1, "[")
			p.printBinary(e.buf, level+2)
			p.line(level+1, "]"+sep)
		default:
			p.line(level+1, e.inline()+sep)
		}
	}
}

// printBinary partitions the buffer into 20-byte chunks and emits one line
// per chunk as a comma-joined decimal byte list, so dumps stay bounded in
// width regardless of total length.
func (p *printer) printBinary(b []byte, level int) {
	for i := 0; i < len(b); i += binaryChunkSize {
		end := min(i+binaryChunkSize, len(b))
		p.scratch.Reset()
		for j := i; j < end; j++ {
			if j > i {
				p.scratch.WriteString(", ")
			}
			p.scratch.WriteString(strconv.Itoa(int(b[j])))
		}
		p.line(level, p.scratch.String())
	}
}

// printBlock splits text into consecutive MaxWidth-sized substrings, one
// line per chunk. The wrap is pure length-based with no word-boundary
// awareness.
func (p *printer) printBlock(text string) {
	w := p.opts.MaxWidth
	for i := 0; i < len(text); i += w {
		end := min(i+w, len(text))
		p.emit(text[i:end])
	}
}

func (p *printer) maxDepth() int {
	if p.opts.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return p.opts.MaxDepth
}

func (p *printer) line(level int, content string) {
	var sb strings.Builder
	sb.Grow(len(p.opts.Prefix) + level*len(p.opts.Indent) + len(content))
	sb.WriteString(p.opts.Prefix)
	for i := 0; i < level; i++ {
		sb.WriteString(p.opts.Indent)
	}
	sb.WriteString(content)
	p.sink(sb.String())
}

func (p *printer) emit(content string) {
	p.sink(p.opts.Prefix + content)
}

// flattenableMapping reports whether m can collapse onto one line: none of
// its direct values are mappings, sequences, or buffers, and its inline
// rendering is shorter than maxWidth.
func flattenableMapping(m Value, maxWidth int) bool {
	for _, f := range m.fields {
		switch f.Value.kind {
		case KindMapping, KindSequence, KindBinary:
			return false
		}
	}
	return len(m.inline()) < maxWidth
}

// flattenableSequence reports whether s can collapse onto one line: fewer
// than 10 elements and an inline rendering shorter than maxWidth.
func flattenableSequence(s Value, maxWidth int) bool {
	return len(s.elems) < 10 && len(s.inline()) < maxWidth
}

// collapseNewlines replaces each run of CR/LF characters with a single
// space so scalars always occupy whole lines of their own.
func collapseNewlines(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	inRun := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\r' || c == '\n' {
			if !inRun {
				sb.WriteByte(' ')
				inRun = true
			}
			continue
		}
		inRun = false
		sb.WriteByte(c)
	}
	return sb.String()
}
