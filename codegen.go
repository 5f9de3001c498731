package json

import (
	"sort"
	"strconv"
)

// byteWriter is the minimal sink numeric and string formatting needs; it
// lets writeNumberValue and writeStringValue work with a bare genBuffer as
// well as a full Generator (Number.String() only ever needs this much).
type byteWriter interface {
	Write(b []byte)
	WriteChar(c byte)
}

// Generator is the strategy interface codegen dispatches through. The two
// built-in strategies (dump = minified, pretty = indented) differ only in
// what WriteMin picks and whether the indentation hooks do anything;
// everything else is shared recursion over Value.
//
// The interface is deliberately open: a caller can implement Generator
// itself (embedding one of the built-ins for the primitives) and also
// implement ObjectWriter to override how an Object's entries are emitted,
// e.g. to sort keys before printing. See SortedKeysGenerator.
type Generator interface {
	byteWriter
	// WriteMin picks between the pretty and minified spelling of a
	// delimiter, e.g. ": " vs ":".
	WriteMin(pretty, minified []byte)
	NewLine()
	Indent()
	Dedent()
	Consume() string
}

// ObjectWriter lets a Generator override how an Object's entries are
// emitted. Generators that don't implement it get the default
// insertion-order emission.
type ObjectWriter interface {
	WriteObject(g Generator, o *Object)
}

// genBuffer holds the shared byte-sink behaviour every Generator needs;
// DumpGenerator and PrettyGenerator both embed it.
type genBuffer struct {
	buf []byte
}

func (g *genBuffer) Write(b []byte)   { g.buf = append(g.buf, b...) }
func (g *genBuffer) WriteChar(c byte) { g.buf = append(g.buf, c) }
func (g *genBuffer) Consume() string  { return string(g.buf) }

// dumpBuffer is an alias of genBuffer. Nothing in the package refers to it;
// Number.String() formats into a bare genBuffer directly.
type dumpBuffer = genBuffer

// DumpGenerator emits minified JSON: write_min always picks the minified
// spelling, and the indentation hooks are no-ops.
type DumpGenerator struct {
	genBuffer
}

func newDumpGenerator() *DumpGenerator {
	return &DumpGenerator{genBuffer{buf: make([]byte, 0, 1024)}}
}

func (g *DumpGenerator) WriteMin(_, minified []byte) { g.Write(minified) }
func (g *DumpGenerator) NewLine()                    {}
func (g *DumpGenerator) Indent()                     {}
func (g *DumpGenerator) Dedent()                     {}

// PrettyGenerator emits indented JSON: write_min picks the pretty spelling,
// and new_line/indent/dedent are active.
type PrettyGenerator struct {
	genBuffer
	dent            int
	spacesPerIndent int
}

func newPrettyGenerator(spaces int) *PrettyGenerator {
	return &PrettyGenerator{genBuffer: genBuffer{buf: make([]byte, 0, 1024)}, spacesPerIndent: spaces}
}

func (g *PrettyGenerator) WriteMin(pretty, _ []byte) { g.Write(pretty) }

func (g *PrettyGenerator) NewLine() {
	g.WriteChar('\n')
	for i := 0; i < g.dent*g.spacesPerIndent; i++ {
		g.WriteChar(' ')
	}
}

func (g *PrettyGenerator) Indent() { g.dent++ }
func (g *PrettyGenerator) Dedent() { g.dent-- }

// SortedKeysGenerator wraps another Generator and sorts an Object's keys
// before emitting them, an example of the "external Generator" extension
// point spec.md §4.5 names, grounded on original_source/tests/customgen.rs.
type SortedKeysGenerator struct {
	Generator
}

// NewSortedKeysDumpGenerator returns a minified generator that emits object
// keys in sorted order.
func NewSortedKeysDumpGenerator() *SortedKeysGenerator {
	return &SortedKeysGenerator{Generator: newDumpGenerator()}
}

// NewSortedKeysPrettyGenerator returns a pretty generator that emits object
// keys in sorted order.
func NewSortedKeysPrettyGenerator(spaces int) *SortedKeysGenerator {
	return &SortedKeysGenerator{Generator: newPrettyGenerator(spaces)}
}

func (g *SortedKeysGenerator) WriteObject(inner Generator, o *Object) {
	type entry struct {
		key   string
		value Value
	}
	entries := make([]entry, 0, o.Len())
	it := o.Iter()
	for {
		key, value, ok := it.Next()
		if !ok {
			break
		}
		entries = append(entries, entry{key, value})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	inner.WriteChar('{')
	inner.Indent()
	for i, e := range entries {
		if i == 0 {
			inner.NewLine()
		} else {
			inner.Write([]byte(","))
			inner.NewLine()
		}
		writeStringValue(inner, e.key)
		inner.WriteMin([]byte(": "), []byte(":"))
		writeJSON(inner, e.value)
	}
	inner.Dedent()
	inner.NewLine()
	inner.WriteChar('}')
}

// writeStringValue emits a JSON string literal, escaping the minimal set
// spec.md §4.5 requires and passing every other byte through untouched.
func writeStringValue(g byteWriter, s string) {
	g.WriteChar('"')
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch ch {
		case '\\', '"':
			g.WriteChar('\\')
			g.WriteChar(ch)
		case '\n':
			g.Write([]byte(`\n`))
		case '\r':
			g.Write([]byte(`\r`))
		case '\t':
			g.Write([]byte(`\t`))
		case 0xC:
			g.Write([]byte(`\f`))
		case 0x8:
			g.Write([]byte(`\b`))
		default:
			g.WriteChar(ch)
		}
	}
	g.WriteChar('"')
}

// writeDigitsFromUint64 is the recursive base-10 printer spec.md §4.5
// names, used for the integer fast path of writeNumberValue.
func writeDigitsFromUint64(g byteWriter, num uint64) {
	digit := byte(num % 10)
	if num > 9 {
		writeDigitsFromUint64(g, num/10)
	}
	g.WriteChar(digit + '0')
}

// writeNumberValue handles zero/negative-zero explicitly, sends NaN to
// `null` (JSON has no NaN literal, and the codec's own parser never
// produces one besides via this path), and otherwise picks integer,
// standard decimal, or scientific notation the way spec.md §4.5 and §4.1
// describe.
func writeNumberValue(g byteWriter, n Number) {
	if n.IsNaN() {
		g.Write([]byte("null"))
		return
	}

	positive, mantissa, exponent := n.Parts()

	if mantissa == 0 {
		if positive {
			g.WriteChar('0')
		} else {
			g.Write([]byte("-0"))
		}
		return
	}

	if !positive {
		g.WriteChar('-')
	}

	// Exactly representable as a plain uint64 integer: exponent 0 (bare
	// mantissa) or a non-negative exponent that still fits in 64 bits.
	if exponent == 0 {
		writeDigitsFromUint64(g, mantissa)
		return
	}
	if exponent > 0 {
		if shifted, ok := safeShiftLeft(mantissa, exponent); ok {
			writeDigitsFromUint64(g, shifted)
			return
		}
	}

	writeDecimalOrScientific(g, mantissa, exponent)
}

// safeShiftLeft computes mantissa*10^exponent, reporting ok=false if the
// result would not fit in a uint64 (so the caller falls back to scientific
// notation instead of silently wrapping when printing).
func safeShiftLeft(mantissa uint64, exponent int16) (uint64, bool) {
	result := mantissa
	for i := int16(0); i < exponent; i++ {
		next := result * 10
		if next/10 != result {
			return 0, false
		}
		result = next
	}
	return result, true
}

// writeDecimalOrScientific renders a fractional or very large/small number,
// matching original_source/tests/print_dec.rs: positional notation (12.5
// prints as "12.5") unless the fraction needs 18 or more digits, in which
// case scientific notation — normalized to a single leading significant
// digit — is used, except where that normalized exponent would be 0 (the
// decimal point already falls right after the leading digit). So
// issue_108_exponent_positive's "10.000000000000000001" is printed as
// "1.0000000000000000001e+1", while its exponent−19 sibling
// (issue_108_exponent_0) stays positional. Values below about 1e-15, and
// integers too large for a uint64, are also printed in scientific notation.
func writeDecimalOrScientific(g byteWriter, mantissa uint64, exponent int16) {
	digits := strconv.FormatUint(mantissa, 10)
	numDigits := int32(len(digits))

	// Position of the decimal point counted from the left of digits: the
	// value is digits * 10^exponent, i.e. point sits numDigits+exponent
	// places from the left. Widened to int32: exponent is int16, and
	// negating a pointPos that lands on math.MinInt16 would otherwise
	// overflow back on itself below.
	pointPos := numDigits + int32(exponent)

	// exponent > 0 only reaches here when the integer overflowed uint64 in
	// writeNumberValue.
	useScientific := exponent > 0 || pointPos < -14 || (exponent <= -18 && pointPos != 1)

	if !useScientific {
		switch {
		case pointPos <= 0:
			g.Write([]byte("0."))
			for i := int32(0); i < -pointPos; i++ {
				g.WriteChar('0')
			}
			g.Write([]byte(digits))
		case int(pointPos) >= len(digits):
			g.Write([]byte(digits))
			for i := numDigits; i < pointPos; i++ {
				g.WriteChar('0')
			}
		default:
			g.Write([]byte(digits[:pointPos]))
			g.WriteChar('.')
			g.Write([]byte(digits[pointPos:]))
		}
		return
	}

	// Scientific: one leading digit, '.', remaining digits (if any), 'e',
	// signed exponent.
	sciExponent := pointPos - 1

	g.WriteChar(digits[0])
	if len(digits) > 1 {
		g.WriteChar('.')
		g.Write([]byte(digits[1:]))
	}
	g.WriteChar('e')
	if sciExponent >= 0 {
		g.WriteChar('+')
	} else {
		g.WriteChar('-')
		sciExponent = -sciExponent
	}
	writeDigitsFromUint64(g, uint64(sciExponent))
}

// writeJSON is the recursive dispatcher over Value's variants, shared by
// every Generator implementation.
func writeJSON(g Generator, v Value) {
	switch v.kind {
	case KindShort:
		writeStringValue(g, v.shortVal.String())
	case KindString:
		writeStringValue(g, v.strValue)
	case KindNumber:
		writeNumberValue(g, v.numValue)
	case KindBool:
		if v.boolValue {
			g.Write([]byte("true"))
		} else {
			g.Write([]byte("false"))
		}
	case KindNull:
		g.Write([]byte("null"))
	case KindArray:
		writeArray(g, v.arrValue)
	case KindObject:
		if ow, ok := g.(ObjectWriter); ok {
			ow.WriteObject(g, v.objValue)
		} else {
			writeObject(g, v.objValue)
		}
	}
}

func writeArray(g Generator, arr []Value) {
	g.WriteChar('[')
	g.Indent()
	for i, item := range arr {
		if i == 0 {
			g.NewLine()
		} else {
			g.Write([]byte(","))
			g.NewLine()
		}
		writeJSON(g, item)
	}
	g.Dedent()
	g.NewLine()
	g.WriteChar(']')
}

func writeObject(g Generator, o *Object) {
	g.WriteChar('{')
	g.Indent()
	if o != nil {
		it := o.Iter()
		first := true
		for {
			key, value, ok := it.Next()
			if !ok {
				break
			}
			if first {
				first = false
				g.NewLine()
			} else {
				g.Write([]byte(","))
				g.NewLine()
			}
			writeStringValue(g, key)
			g.WriteMin([]byte(": "), []byte(":"))
			writeJSON(g, value)
		}
	}
	g.Dedent()
	g.NewLine()
	g.WriteChar('}')
}

func (g *DumpGenerator) writeJSON(v Value)    { writeJSON(g, v) }
func (g *PrettyGenerator) writeJSON(v Value)  { writeJSON(g, v) }
func (g *SortedKeysGenerator) writeJSON(v Value) { writeJSON(g, v) }
