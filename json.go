// Package json implements a self-contained JSON codec: an exact decimal
// Number type, a hashed-binary-tree Object container, and a single-pass
// byte-oriented parser and generator built on top of them.
package json

// Parse parses a JSON document held as a string.
func Parse(text string) (Value, error) {
	return parseDocument([]byte(text))
}

// ParseBytes parses a JSON document held as a byte slice. The slice is read
// only; the returned Value copies out of it rather than aliasing it.
func ParseBytes(data []byte) (Value, error) {
	return parseDocument(data)
}

// ParseString is an alias for Parse, named for parity with ParseBytes.
func ParseString(text string) (Value, error) {
	return parseDocument([]byte(text))
}

// Stringify renders v as minified JSON text.
func Stringify(v Value) string {
	return v.Dump()
}

// StringifyPretty renders v as JSON text indented by spaces per nesting
// level.
func StringifyPretty(v Value, spaces int) string {
	return v.Pretty(spaces)
}

// Array builds an Array Value from a list of already-constructed Values,
// the Go equivalent of the array![...] construction macro.
func Array(elements ...Value) Value {
	return NewArray(elements)
}

// ObjectValues holds the key/value pairs passed to Obj, the Go equivalent of the
// object!{...} construction macro (Go has no literal macro facility, so
// construction goes through a small builder instead).
type ObjectValues map[string]Value

// Obj builds an Object Value from a map literal. Iteration order of a Go
// map is unspecified, so callers that care about a particular insertion
// order should build the Object directly with NewObject/Insert instead.
func Obj(fields ObjectValues) Value {
	o := NewObjectWithCapacity(len(fields))
	for k, v := range fields {
		o.Insert(k, v)
	}
	return NewObjectValue(o)
}

// From converts any of the scalar/collection types the codec knows how to
// represent into a Value. It is the Go counterpart of the macro-generated
// trait plumbing spec.md §4.6 describes for turning native scalars into
// Values: every integer width, f32/f64, bool, string, Number and Value,
// plus []Value and map[string]Value. Other slice and map types are not
// converted element by element (FromSlice does that for slices); like any
// other unrecognised type they yield Null.
func From(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null
	case Value:
		return x
	case bool:
		return NewBool(x)
	case string:
		return NewString(x)
	case int:
		return NewInt(int64(x))
	case int8:
		return NewInt(int64(x))
	case int16:
		return NewInt(int64(x))
	case int32:
		return NewInt(int64(x))
	case int64:
		return NewInt(x)
	case uint:
		return NewUint(uint64(x))
	case uint8:
		return NewUint(uint64(x))
	case uint16:
		return NewUint(uint64(x))
	case uint32:
		return NewUint(uint64(x))
	case uint64:
		return NewUint(x)
	case float32:
		return NewFloat32(x)
	case float64:
		return NewFloat64(x)
	case Number:
		return NewNumber(x)
	case []Value:
		return NewArray(x)
	case map[string]Value:
		o := NewObjectWithCapacity(len(x))
		for k, val := range x {
			o.Insert(k, val)
		}
		return NewObjectValue(o)
	default:
		return Null
	}
}

// FromSlice converts a slice of any convertible element type into an Array
// Value, the Go shape of spec.md §4.6's "Vec<T> of convertible T" rule.
func FromSlice[T any](items []T) Value {
	elements := make([]Value, len(items))
	for i, item := range items {
		elements[i] = From(item)
	}
	return NewArray(elements)
}

// FromPtr converts a possibly-nil pointer into a Value, Null for nil and
// From(*p) otherwise — the Go shape of spec.md §4.6's "Option<T> of
// convertible T" rule.
func FromPtr[T any](p *T) Value {
	if p == nil {
		return Null
	}
	return From(*p)
}
