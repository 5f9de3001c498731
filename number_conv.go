package json

// Integer conversions to and from Number, grounded on original_source's
// impl_signed!/impl_unsigned!/impl_integer! macros: integers always convert
// with exponent 0, and converting back out multiplies the mantissa by
// 10^exponent when the exponent is positive (wrapping on overflow, which is
// "fine" per the original's own comment).

// NumberFromInt64 builds a Number from a signed 64-bit integer.
func NumberFromInt64(v int64) Number {
	if v < 0 {
		return NumberFromParts(false, uint64(-v), 0)
	}
	return NumberFromParts(true, uint64(v), 0)
}

// NumberFromUint64 builds a Number from an unsigned 64-bit integer.
func NumberFromUint64(v uint64) Number {
	return NumberFromParts(true, v, 0)
}

// Int64 converts n to an int64. A negative exponent (a fractional value
// like 3.14) is not divided back out: the raw mantissa is cast as-is, the
// same truncation the original number.rs impl_integer! macro performs.
// Overflow on the exponent>0 branch wraps rather than panics.
func (n Number) Int64() int64 {
	if n.IsNaN() {
		return 0
	}
	positive, mantissa, exponent := n.Parts()
	if exponent <= 0 {
		if positive {
			return int64(mantissa)
		}
		return -int64(mantissa)
	}
	shifted := mantissa * pow10Uint64(uint(exponent))
	if positive {
		return int64(shifted)
	}
	return -int64(shifted)
}

// Uint64 converts n to a uint64 with the same truncation rule as Int64.
func (n Number) Uint64() uint64 {
	if n.IsNaN() {
		return 0
	}
	positive, mantissa, exponent := n.Parts()
	var shifted uint64
	if exponent <= 0 {
		shifted = mantissa
	} else {
		shifted = mantissa * pow10Uint64(uint(exponent))
	}
	if positive {
		return shifted
	}
	return uint64(-int64(shifted))
}

func (n Number) Int() int     { return int(n.Int64()) }
func (n Number) Int32() int32 { return int32(n.Int64()) }
func (n Number) Int16() int16 { return int16(n.Int64()) }
func (n Number) Int8() int8   { return int8(n.Int64()) }

func (n Number) Uint() uint     { return uint(n.Uint64()) }
func (n Number) Uint32() uint32 { return uint32(n.Uint64()) }
func (n Number) Uint16() uint16 { return uint16(n.Uint64()) }
func (n Number) Uint8() uint8   { return uint8(n.Uint64()) }
