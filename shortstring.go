package json

// shortStringCap is the inline capacity of a ShortString, matching
// spec.md's 30-byte threshold for Short vs String values.
const shortStringCap = 30

// ShortString is a fixed-capacity inline string buffer used for JSON string
// values of shortStringCap bytes or fewer, avoiding a heap allocation for
// the common case of short object keys and values.
type ShortString struct {
	value [shortStringCap]byte
	len   uint8
}

// newShortString builds a ShortString from a byte slice of length <=
// shortStringCap. The caller must enforce the length invariant; like the
// original Rust Short::from_slice, this constructor is unchecked.
func newShortString(s string) ShortString {
	var sh ShortString
	sh.len = uint8(len(s))
	copy(sh.value[:], s)
	return sh
}

// String returns the live prefix of the buffer as a string.
func (s ShortString) String() string {
	return string(s.value[:s.len])
}

// Len returns the number of live bytes.
func (s ShortString) Len() int {
	return int(s.len)
}

// Equal compares the live prefixes of two ShortStrings.
func (s ShortString) Equal(other ShortString) bool {
	return s.len == other.len && s.value == other.value
}
