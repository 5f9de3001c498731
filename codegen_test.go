package json

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteStringValueEscaping(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", `"hello"`},
		{"quote", `a"b`, `"a\"b"`},
		{"backslash", `a\b`, `"a\\b"`},
		{"newline", "a\nb", `"a\nb"`},
		{"tab", "a\tb", `"a\tb"`},
		{"carriage return", "a\rb", `"a\rb"`},
		{"form feed", "a\fb", `"a\fb"`},
		{"backspace", "a\bb", `"a\bb"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &genBuffer{}
			writeStringValue(g, tt.input)
			if got := string(g.buf); got != tt.want {
				t.Errorf("writeStringValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteNumberValueIntegerFastPath(t *testing.T) {
	g := &genBuffer{}
	writeNumberValue(g, NumberFromParts(true, 42, 0))
	require.Equal(t, "42", string(g.buf))
}

func TestWriteNumberValueZeroAndNegativeZero(t *testing.T) {
	g := &genBuffer{}
	writeNumberValue(g, Zero)
	require.Equal(t, "0", string(g.buf))

	g = &genBuffer{}
	writeNumberValue(g, NumberFromParts(false, 0, 0))
	require.Equal(t, "-0", string(g.buf))
}

func TestWriteNumberValueNaNBecomesNull(t *testing.T) {
	g := &genBuffer{}
	writeNumberValue(g, NaN)
	require.Equal(t, "null", string(g.buf))
}

func TestSortedKeysGeneratorSortsObjectKeys(t *testing.T) {
	o := NewObject()
	o.Insert("zeta", NewInt(1))
	o.Insert("alpha", NewInt(2))
	o.Insert("mid", NewInt(3))

	g := NewSortedKeysDumpGenerator()
	g.writeJSON(NewObjectValue(o))

	require.Equal(t, `{"alpha":2,"mid":3,"zeta":1}`, g.Consume())
}

func TestDumpGeneratorVsPrettyGeneratorProduceEquivalentValues(t *testing.T) {
	v := NewArray([]Value{NewInt(1), NewString("x"), Null})

	dump := newDumpGenerator()
	dump.writeJSON(v)

	pretty := newPrettyGenerator(4)
	pretty.writeJSON(v)

	reparsedFromDump, err := Parse(dump.Consume())
	require.NoError(t, err)
	reparsedFromPretty, err := Parse(pretty.Consume())
	require.NoError(t, err)

	require.True(t, reparsedFromDump.Equal(reparsedFromPretty))
}
