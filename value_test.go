package json

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueKindAndPredicates(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind Kind
	}{
		{"null", Null, KindNull},
		{"bool", NewBool(true), KindBool},
		{"number", NewInt(5), KindNumber},
		{"short string", NewString("hi"), KindShort},
		{"long string", NewString("this string is deliberately longer than thirty bytes"), KindString},
		{"array", NewArray(nil), KindArray},
		{"object", NewObjectValue(NewObject()), KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
		})
	}
}

func TestValueShortAndStringAreEquivalent(t *testing.T) {
	short := NewString("short")
	require.Equal(t, KindShort, short.Kind())

	long := NewString("a string that is definitely longer than thirty bytes of capacity")
	require.Equal(t, KindString, long.Kind())

	a, err := short.AsString()
	require.NoError(t, err)
	require.Equal(t, "short", a)

	require.True(t, short.Equal(NewString("short")))
}

func TestValueAccessorsWrongTypeErrors(t *testing.T) {
	v := NewBool(true)

	if _, err := v.AsNumber(); err == nil {
		t.Error("AsNumber() on a bool should error")
	}
	if _, err := v.AsString(); err == nil {
		t.Error("AsString() on a bool should error")
	}
	if _, err := v.AsArray(); err == nil {
		t.Error("AsArray() on a bool should error")
	}
	if _, err := v.AsObject(); err == nil {
		t.Error("AsObject() on a bool should error")
	}
}

func TestValueIndexIsFluentAndAtIsStrict(t *testing.T) {
	arr := NewArray([]Value{NewInt(1), NewInt(2)})

	require.True(t, arr.Index(5).IsNull())
	require.True(t, NewBool(true).Index(0).IsNull())

	_, err := arr.At(5)
	require.Error(t, err)

	v, err := arr.At(0)
	require.NoError(t, err)
	require.Equal(t, int64(1), v.numValue.Int64())
}

func TestValueKeyIsFluentAndFieldIsStrict(t *testing.T) {
	o := NewObject()
	o.Insert("present", NewInt(1))
	obj := NewObjectValue(o)

	require.True(t, obj.Key("missing").IsNull())
	require.True(t, NewInt(1).Key("x").IsNull())

	_, err := obj.Field("missing")
	require.Error(t, err)

	v, err := obj.Field("present")
	require.NoError(t, err)
	require.Equal(t, int64(1), v.numValue.Int64())
}

func TestValueEqualArraysAndObjects(t *testing.T) {
	a := NewArray([]Value{NewInt(1), NewString("x")})
	b := NewArray([]Value{NewInt(1), NewString("x")})
	c := NewArray([]Value{NewInt(1), NewString("y")})

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))

	oa := NewObject()
	oa.Insert("k", NewInt(1))
	ob := NewObject()
	ob.Insert("k", NewInt(1))

	require.True(t, NewObjectValue(oa).Equal(NewObjectValue(ob)))
}

func TestValueDumpAndPretty(t *testing.T) {
	v := NewArray([]Value{NewInt(1), NewBool(true), Null})

	require.Equal(t, "[1,true,null]", v.Dump())
	require.Equal(t, "[1,true,null]", v.String())

	pretty := v.Pretty(2)
	require.Equal(t, "[\n  1,\n  true,\n  null\n]", pretty)
}

func TestValueLen(t *testing.T) {
	require.Equal(t, 0, Null.Len())
	require.Equal(t, 2, NewArray([]Value{NewInt(1), NewInt(2)}).Len())

	o := NewObject()
	o.Insert("a", NewInt(1))
	require.Equal(t, 1, NewObjectValue(o).Len())
}
