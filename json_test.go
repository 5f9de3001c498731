package json

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAndStringifyRoundTrip(t *testing.T) {
	tests := []string{
		`null`,
		`true`,
		`false`,
		`0`,
		`3.14`,
		`"hello"`,
		`[1,2,3]`,
		`{"a":1,"b":[2,3],"c":{"d":4}}`,
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			v, err := Parse(input)
			require.NoError(t, err)

			out := Stringify(v)
			reparsed, err := Parse(out)
			require.NoError(t, err)
			require.True(t, v.Equal(reparsed), "stringify then parse should reproduce an equal Value")
		})
	}
}

func TestStringifyPrettyParsesBackEqual(t *testing.T) {
	v, err := Parse(`{"a":1,"b":[2,3]}`)
	require.NoError(t, err)

	for _, spaces := range []int{0, 2, 4} {
		pretty := StringifyPretty(v, spaces)
		reparsed, err := Parse(pretty)
		require.NoError(t, err)
		require.True(t, v.Equal(reparsed))
	}
}

func TestNullRoundTrip(t *testing.T) {
	v, err := Parse("null")
	require.NoError(t, err)
	require.True(t, v.IsNull())
	require.Equal(t, "null", Stringify(v))
}

func TestFromConvertsScalars(t *testing.T) {
	require.True(t, From(nil).IsNull())
	require.True(t, From(true).IsBool())

	v := From(42)
	n, err := v.AsNumber()
	require.NoError(t, err)
	require.Equal(t, int64(42), n.Int64())

	require.True(t, From("s").IsString())
	require.True(t, From(3.5).IsNumber())
}

func TestFromSlice(t *testing.T) {
	v := FromSlice([]int{1, 2, 3})
	require.True(t, v.IsArray())
	require.Equal(t, 3, v.Len())
}

func TestFromPtr(t *testing.T) {
	require.True(t, FromPtr[int](nil).IsNull())

	x := 7
	v := FromPtr(&x)
	n, err := v.AsNumber()
	require.NoError(t, err)
	require.Equal(t, int64(7), n.Int64())
}

func TestArrayAndObjBuilders(t *testing.T) {
	v := Array(NewInt(1), NewString("x"))
	require.True(t, v.IsArray())
	require.Equal(t, 2, v.Len())

	o := Obj(ObjectValues{"k": NewInt(1)})
	require.True(t, o.IsObject())
	val, err := o.Field("k")
	require.NoError(t, err)
	n, _ := val.AsNumber()
	require.Equal(t, int64(1), n.Int64())
}
