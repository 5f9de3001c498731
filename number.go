package json

import (
	"strconv"
	"strings"
)

// category tags for Number. Only positiveCategory and negativeCategory are
// finite; any other value is NaN. Kept as a distinct type (rather than a
// plain bool) so the NaN state has somewhere to live without stealing a
// mantissa/exponent bit pattern.
type numCategory uint8

const (
	negativeCategory numCategory = iota
	positiveCategory
	nanCategory
)

// Number is an exact, lossless decimal scalar: sign * mantissa * 10^exponent.
// It is the type every JSON number parses into, and the only numeric type
// the codec ever serialises. There is no representation for infinity; an
// infinite input collapses to NaN (see NumberFromFloat64).
type Number struct {
	category numCategory
	exponent int16
	mantissa uint64
}

// NaN is the single distinguished not-a-number state.
var NaN = Number{category: nanCategory}

// Zero is the canonical positive zero.
var Zero = Number{category: positiveCategory}

// NumberFromParts constructs a Number from its parts with no normalisation.
func NumberFromParts(positive bool, mantissa uint64, exponent int16) Number {
	cat := negativeCategory
	if positive {
		cat = positiveCategory
	}
	return Number{category: cat, mantissa: mantissa, exponent: exponent}
}

// Parts returns the raw (positive, mantissa, exponent) triple. Calling this
// on NaN returns an unspecified but stable triple; check IsNaN first.
func (n Number) Parts() (positive bool, mantissa uint64, exponent int16) {
	return n.category == positiveCategory, n.mantissa, n.exponent
}

// IsNaN reports whether n is the NaN state.
func (n Number) IsNaN() bool {
	return n.category != positiveCategory && n.category != negativeCategory
}

// IsZero reports whether n's mantissa is zero and n is not NaN.
func (n Number) IsZero() bool {
	return n.mantissa == 0 && !n.IsNaN()
}

// IsSignPositive reports whether n's sign bit is positive. False for NaN.
func (n Number) IsSignPositive() bool {
	return n.category == positiveCategory
}

// IsEmpty reports whether n is zero or NaN.
func (n Number) IsEmpty() bool {
	return n.IsZero() || n.IsNaN()
}

// AsFixedPointUint64 returns mantissa * 10^(exponent+point), truncated to a
// uint64 with wrapping overflow semantics. It fails for NaN and for
// negative numbers.
func (n Number) AsFixedPointUint64(point int16) (uint64, bool) {
	if n.category != positiveCategory {
		return 0, false
	}
	eDiff := point + n.exponent
	switch {
	case eDiff == 0:
		return n.mantissa, true
	case eDiff < 0:
		return n.mantissa / pow10Uint64(uint(-eDiff)), true
	default:
		return n.mantissa * pow10Uint64(uint(eDiff)), true
	}
}

// AsFixedPointInt64 returns sign*mantissa * 10^(exponent+point), truncated
// to an int64 with wrapping overflow semantics. It fails for NaN.
func (n Number) AsFixedPointInt64(point int16) (int64, bool) {
	if n.IsNaN() {
		return 0, false
	}
	num := int64(n.mantissa)
	if !n.IsSignPositive() {
		num = -num
	}
	eDiff := point + n.exponent
	switch {
	case eDiff == 0:
		return num, true
	case eDiff < 0:
		return num / int64(pow10Uint64(uint(-eDiff))), true
	default:
		return num * int64(pow10Uint64(uint(eDiff))), true
	}
}

// pow10Uint64 computes 10^e with wrapping multiplication, matching the
// spec's "overflow implies inequality / wraps" arithmetic contract.
func pow10Uint64(e uint) uint64 {
	var result uint64 = 1
	for i := uint(0); i < e; i++ {
		result *= 10
	}
	return result
}

// Equal implements the spec's exponent-aligned equality: the mantissa of the
// operand with the larger exponent is multiplied (wrapping) by 10^difference
// and compared with the other mantissa. Two zeros are always equal; two NaNs
// are always equal.
func (n Number) Equal(other Number) bool {
	if n.IsZero() && other.IsZero() {
		return true
	}
	if n.IsNaN() && other.IsNaN() {
		return true
	}
	if n.category != other.category {
		return false
	}

	eDiff := n.exponent - other.exponent
	switch {
	case eDiff == 0:
		return n.mantissa == other.mantissa
	case eDiff > 0:
		return n.mantissa*pow10Uint64(uint(eDiff)) == other.mantissa
	default:
		return n.mantissa == other.mantissa*pow10Uint64(uint(-eDiff))
	}
}

// Neg flips the sign of a finite Number and leaves NaN untouched.
func (n Number) Neg() Number {
	if n.IsNaN() {
		return n
	}
	cat := negativeCategory
	if n.category == negativeCategory {
		cat = positiveCategory
	}
	return Number{category: cat, mantissa: n.mantissa, exponent: n.exponent}
}

// Mul multiplies two Numbers. NaN propagates; otherwise mantissas multiply,
// exponents add, and signs XOR.
func (n Number) Mul(other Number) Number {
	if n.IsNaN() || other.IsNaN() {
		return NaN
	}
	cat := positiveCategory
	if n.category != other.category {
		cat = negativeCategory
	}
	return Number{
		category: cat,
		mantissa: n.mantissa * other.mantissa,
		exponent: n.exponent + other.exponent,
	}
}

// MulAssign multiplies n in place by other.
func (n *Number) MulAssign(other Number) {
	*n = n.Mul(other)
}

var pos10Pow64 = [23]float64{
	1.0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7,
	1e8, 1e9, 1e10, 1e11, 1e12, 1e13, 1e14, 1e15,
	1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

var neg10Pow64 = [23]float64{
	1.0, 1e-1, 1e-2, 1e-3, 1e-4, 1e-5, 1e-6, 1e-7,
	1e-8, 1e-9, 1e-10, 1e-11, 1e-12, 1e-13, 1e-14, 1e-15,
	1e-16, 1e-17, 1e-18, 1e-19, 1e-20, 1e-21, 1e-22,
}

var pos10Pow32 = [16]float32{
	1.0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7,
	1e8, 1e9, 1e10, 1e11, 1e12, 1e13, 1e14, 1e15,
}

var neg10Pow32 = [16]float32{
	1.0, 1e-1, 1e-2, 1e-3, 1e-4, 1e-5, 1e-6, 1e-7,
	1e-8, 1e-9, 1e-10, 1e-11, 1e-12, 1e-13, 1e-14, 1e-15,
}

func exponentToPowerF64(e int16) float64 {
	index := e
	if index < 0 {
		index = -index
	}
	if int(index) < len(pos10Pow64) {
		if e < 0 {
			return neg10Pow64[index]
		}
		return pos10Pow64[index]
	}
	return math10Pow(float64(e))
}

func exponentToPowerF32(e int16) float32 {
	index := e
	if index < 0 {
		index = -index
	}
	if int(index) < len(pos10Pow32) {
		if e < 0 {
			return neg10Pow32[index]
		}
		return pos10Pow32[index]
	}
	return float32(math10Pow(float64(e)))
}

// Float64 converts n to the nearest float64. NaN maps to math.NaN. Very
// small exponents are shifted into the subnormal range in two stages (as
// spec.md §4.1 requires) to avoid premature underflow to zero.
func (n Number) Float64() float64 {
	if n.IsNaN() {
		return nan64()
	}

	num := float64(n.mantissa)
	e := n.exponent

	if e < -308 {
		num *= exponentToPowerF64(e + 308)
		e = -308
	}

	f := num * exponentToPowerF64(e)
	if !n.IsSignPositive() {
		f = -f
	}
	return f
}

// Float32 converts n to the nearest float32, with the same two-stage
// subnormal shift as Float64 but using f32's smaller exponent range.
func (n Number) Float32() float32 {
	if n.IsNaN() {
		return nan32()
	}

	num := float32(n.mantissa)
	e := n.exponent

	if e < -127 {
		num *= exponentToPowerF32(e + 127)
		e = -127
	}

	f := num * exponentToPowerF32(e)
	if !n.IsSignPositive() {
		f = -f
	}
	return f
}

// NumberFromFloat64 converts a float64 into a Number. Infinities and NaN
// collapse to NaN, matching the spec's documented fallback. The exact
// decimal mantissa/exponent is obtained via Go's shortest-round-trip float
// formatter (strconv), which belongs to the same family of algorithms as
// the Grisu2 the spec names: both produce the shortest decimal string that
// round-trips back to the same binary float.
func NumberFromFloat64(f float64) Number {
	if isInfOrNaN64(f) {
		return NaN
	}
	positive := !isNegativeSign64(f)
	mantissa, exponent := grisuLikeDecompose(absFloat64(f))
	return NumberFromParts(positive, mantissa, exponent)
}

// NumberFromFloat32 converts a float32 into a Number the same way
// NumberFromFloat64 does, after widening it to float64: the digits are the
// shortest ones that round-trip the widened float64, so float32(3.14)
// becomes 3.140000104904175 rather than 3.14.
func NumberFromFloat32(f float32) Number {
	if isInfOrNaN32(f) {
		return NaN
	}
	positive := !isNegativeSign32(f)
	mantissa, exponent := grisuLikeDecompose(float64(absFloat32(f)))
	return NumberFromParts(positive, mantissa, exponent)
}

// grisuLikeDecompose extracts the shortest round-tripping decimal mantissa
// and base-10 exponent for a non-negative, finite float64, such that
// mantissa * 10^exponent == f (up to the precision of the original float).
func grisuLikeDecompose(f float64) (uint64, int16) {
	if f == 0 {
		return 0, 0
	}

	// 'e' with prec -1 asks strconv for the shortest decimal that parses
	// back to exactly f, formatted as d.ddddde±dd.
	buf := strconv.AppendFloat(nil, f, 'e', -1, 64)
	s := string(buf)

	mantissaPart, expPart, _ := strings.Cut(s, "e")
	exp, _ := strconv.Atoi(expPart)

	digits := strings.Replace(mantissaPart, ".", "", 1)
	mantissa, _ := strconv.ParseUint(digits, 10, 64)

	// exp is the power of ten for a single leading digit (d.ddd); shift it
	// down by the number of fractional digits we folded into the mantissa.
	fractionDigits := len(digits) - 1
	exponent := exp - fractionDigits

	return mantissa, int16(exponent)
}

// String renders n in decimal form when representable without loss in a
// moderate digit count, scientific notation otherwise, and "nan" for NaN.
// This differs from how the JSON serialiser treats NaN (it maps to the
// `null` literal, since JSON has no NaN token — see codegen.go). The parser
// never produces NaN, but NumberFromFloat64/NumberFromFloat32 do for
// infinite and NaN inputs, and such values serialise as `null`.
func (n Number) String() string {
	if n.IsNaN() {
		return "nan"
	}
	g := &genBuffer{}
	writeNumberValue(g, n)
	return string(g.buf)
}
