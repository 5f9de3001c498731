package json

import "unicode/utf8"

// maxNestingDepth bounds how many nested arrays/objects the parser will
// descend into, guarding the recursive-descent implementation against a
// stack overflow on adversarial input (spec's "ExceededDepthLimit, optional;
// recommended to defend against deep recursion").
const maxNestingDepth = 512

// bigNumberCeiling is the point past which accumulating another decimal
// digit into the mantissa would start discarding significant bits; beyond
// it the parser stops growing the mantissa and tracks the skipped digits
// as exponent instead. Named MAX_PRECISION in original_source's parser.
const bigNumberCeiling uint64 = 576460752303423500

// parser walks a byte slice once, left to right, never backtracking past a
// byte it has already committed to the value tree it is building.
type parser struct {
	src     []byte
	idx     int
	depth   int
	scratch []byte
}

func newParser(src []byte) *parser {
	return &parser{src: src}
}

func (p *parser) isEOF() bool    { return p.idx >= len(p.src) }
func (p *parser) readByte() byte { return p.src[p.idx] }
func (p *parser) bump()          { p.idx++ }

// expectByte consumes and returns the next byte, or UnexpectedEndOfJSONError
// if the input is exhausted.
func (p *parser) expectByte() (byte, error) {
	if p.isEOF() {
		return 0, &UnexpectedEndOfJSONError{}
	}
	ch := p.readByte()
	p.bump()
	return ch, nil
}

// expectSequence consumes exactly the given bytes in order, used for the
// tail of true/false/null after their first byte has already matched.
func (p *parser) expectSequence(rest ...byte) error {
	for _, want := range rest {
		ch, err := p.expectByte()
		if err != nil {
			return err
		}
		if ch != want {
			return p.unexpectedCharacter(ch)
		}
	}
	return nil
}

// expect skips whitespace then consumes exactly the given byte.
func (p *parser) expect(want byte) error {
	p.skipWhitespace()
	ch, err := p.expectByte()
	if err != nil {
		return err
	}
	if ch != want {
		return p.unexpectedCharacter(ch)
	}
	return nil
}

func isWhitespace(b byte) bool {
	return (b >= 0x09 && b <= 0x0D) || b == 0x20
}

func (p *parser) skipWhitespace() {
	for !p.isEOF() && isWhitespace(p.readByte()) {
		p.bump()
	}
}

// position computes the 1-based line and column of byte offset index,
// walking every byte up to it. Only the error path pays for this.
func (p *parser) position(index int) (line, column int) {
	line, column = 1, 1
	for i := 0; i < index && i < len(p.src); {
		r, size := utf8.DecodeRune(p.src[i:])
		if size == 0 {
			size = 1
		}
		if r == '\n' {
			line++
			column = 1
		} else {
			column++
		}
		i += size
	}
	return line, column
}

// unexpectedCharacter builds an UnexpectedCharacterError for the byte just
// consumed, decoding it back to its Unicode scalar if it is the lead byte
// of a multi-byte UTF-8 sequence (the continuation bytes are read straight
// out of p.src). A lead byte whose continuation bytes do not form valid
// UTF-8 yields a FailedUTF8Error instead.
func (p *parser) unexpectedCharacter(b byte) error {
	line, column := p.position(p.idx - 1)

	ch := rune(b)
	if b >= utf8.RuneSelf {
		r, size := utf8.DecodeRune(p.src[p.idx-1:])
		if r == utf8.RuneError && size <= 1 {
			return &FailedUTF8Error{}
		}
		ch = r
		p.idx += size - 1
	}

	return &UnexpectedCharacterError{Ch: ch, Line: line, Column: column}
}

// allowedStringByte is the 256-entry table deciding which bytes a string's
// fast path may copy untouched: everything except '"', '\\', and the
// control bytes 0x00-0x1F.
var allowedStringByte = func() [256]bool {
	var t [256]bool
	for i := range t {
		t[i] = i >= 0x20 && i != '"' && i != '\\'
	}
	return t
}()

// readString scans a string body (opening quote already consumed). The
// fast path converts the scanned span of p.src straight to a string (a
// single copy, no scratch buffer); the first '\\' switches to
// readComplexString.
func (p *parser) readString() (string, error) {
	start := p.idx
	for {
		ch, err := p.expectByte()
		if err != nil {
			return "", err
		}
		if allowedStringByte[ch] {
			continue
		}
		switch ch {
		case '"':
			return string(p.src[start : p.idx-1]), nil
		case '\\':
			return p.readComplexString(start)
		default:
			return "", p.unexpectedCharacter(ch)
		}
	}
}

// readComplexString handles the slow path once an escape has been seen:
// copy the already-scanned prefix into scratch, then interpret escapes one
// at a time until the closing quote.
func (p *parser) readComplexString(start int) (string, error) {
	p.scratch = append(p.scratch[:0], p.src[start:p.idx-1]...)
	ch := byte('\\')

	for {
		if allowedStringByte[ch] {
			p.scratch = append(p.scratch, ch)
		} else {
			switch ch {
			case '"':
				return string(p.scratch), nil

			case '\\':
				escaped, err := p.expectByte()
				if err != nil {
					return "", err
				}
				if escaped == 'u' {
					if err := p.readCodepoint(); err != nil {
						return "", err
					}
					next, err := p.expectByte()
					if err != nil {
						return "", err
					}
					ch = next
					continue
				}
				switch escaped {
				case '"', '\\', '/':
					p.scratch = append(p.scratch, escaped)
				case 'b':
					p.scratch = append(p.scratch, 0x8)
				case 'f':
					p.scratch = append(p.scratch, 0xC)
				case 't':
					p.scratch = append(p.scratch, '\t')
				case 'r':
					p.scratch = append(p.scratch, '\r')
				case 'n':
					p.scratch = append(p.scratch, '\n')
				default:
					return "", p.unexpectedCharacter(escaped)
				}

			default:
				return "", p.unexpectedCharacter(ch)
			}
		}

		next, err := p.expectByte()
		if err != nil {
			return "", err
		}
		ch = next
	}
}

func (p *parser) readHexDigit() (uint32, error) {
	ch, err := p.expectByte()
	if err != nil {
		return 0, err
	}
	switch {
	case ch >= '0' && ch <= '9':
		return uint32(ch - '0'), nil
	case ch >= 'a' && ch <= 'f':
		return uint32(ch-'a') + 10, nil
	case ch >= 'A' && ch <= 'F':
		return uint32(ch-'A') + 10, nil
	default:
		return 0, p.unexpectedCharacter(ch)
	}
}

func (p *parser) readHexCodepoint() (uint32, error) {
	var cp uint32
	for i := 0; i < 4; i++ {
		d, err := p.readHexDigit()
		if err != nil {
			return 0, err
		}
		cp = cp<<4 | d
	}
	return cp, nil
}

// readCodepoint reads a \uXXXX escape (the "\u" itself already consumed),
// pairs it with a following low surrogate if it is a high surrogate, and
// appends the resulting scalar's UTF-8 encoding to scratch.
func (p *parser) readCodepoint() error {
	cp, err := p.readHexCodepoint()
	if err != nil {
		return err
	}

	switch {
	case cp <= 0xD7FF:
		// plain scalar, nothing further to do
	case cp >= 0xD800 && cp <= 0xDBFF:
		high := cp - 0xD800
		// A high surrogate not followed by another \u escape is a lone
		// surrogate.
		for _, want := range []byte{'\\', 'u'} {
			ch, err := p.expectByte()
			if err != nil {
				return err
			}
			if ch != want {
				return &FailedUTF8Error{}
			}
		}
		low, err := p.readHexCodepoint()
		if err != nil {
			return err
		}
		if low < 0xDC00 || low > 0xDFFF {
			return &FailedUTF8Error{}
		}
		cp = (high<<10 | (low - 0xDC00)) + 0x10000
	case cp >= 0xE000 && cp <= 0xFFFF:
		// plain scalar
	default:
		return &FailedUTF8Error{}
	}

	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], rune(cp))
	p.scratch = append(p.scratch, buf[:n]...)
	return nil
}

// parseNumber accumulates the integer digits of a number whose first digit
// (1-9) has already been consumed, switching to readBigNumber once the
// mantissa reaches bigNumberCeiling.
func (p *parser) parseNumber(first byte) (Number, error) {
	mantissa := uint64(first - '0')

	for {
		if mantissa >= bigNumberCeiling {
			return p.readBigNumber(mantissa)
		}
		if p.isEOF() {
			return NumberFromParts(true, mantissa, 0), nil
		}
		ch := p.readByte()
		switch {
		case ch >= '0' && ch <= '9':
			p.bump()
			mantissa = (mantissa << 3) + (mantissa << 1) + uint64(ch-'0')
		case ch == '.' || ch == 'e' || ch == 'E':
			return p.parseNumberTail(mantissa, 0)
		default:
			return NumberFromParts(true, mantissa, 0), nil
		}
	}
}

// readBigNumber continues consuming integer digits past bigNumberCeiling
// without growing the mantissa further, incrementing the exponent once per
// digit instead: an intentional, documented loss of precision past 18
// significant digits.
func (p *parser) readBigNumber(mantissa uint64) (Number, error) {
	exponent := int32(0)
	for {
		if p.isEOF() {
			return NumberFromParts(true, mantissa, int16(exponent)), nil
		}
		ch := p.readByte()
		if ch < '0' || ch > '9' {
			break
		}
		p.bump()
		exponent++
	}
	return p.parseNumberTail(mantissa, exponent)
}

// parseNumberTail reads an optional fractional part and an optional
// exponent, given the integer part already accumulated as mantissa *
// 10^exponent. It is also the entry point for a leading-zero number (called
// with mantissa=0, exponent=0), which is why it never itself consumes
// additional integer digits.
func (p *parser) parseNumberTail(mantissa uint64, exponent int32) (Number, error) {
	if p.isEOF() {
		return NumberFromParts(true, mantissa, int16(exponent)), nil
	}

	ch := p.readByte()

	if ch == '.' {
		p.bump()
		for {
			if p.isEOF() {
				return NumberFromParts(true, mantissa, int16(exponent)), nil
			}
			ch = p.readByte()
			if ch < '0' || ch > '9' {
				break
			}
			p.bump()
			if mantissa < bigNumberCeiling {
				mantissa = (mantissa << 3) + (mantissa << 1) + uint64(ch-'0')
				exponent--
			}
		}
	}

	if ch == 'e' || ch == 'E' {
		p.bump()

		ch, err := p.expectByte()
		if err != nil {
			return Number{}, err
		}

		sign := int32(1)
		if ch == '-' || ch == '+' {
			if ch == '-' {
				sign = -1
			}
			ch, err = p.expectByte()
			if err != nil {
				return Number{}, err
			}
		}

		if ch < '0' || ch > '9' {
			return Number{}, p.unexpectedCharacter(ch)
		}
		expDigits := int32(ch - '0')

		for !p.isEOF() {
			ch = p.readByte()
			if ch < '0' || ch > '9' {
				break
			}
			p.bump()
			expDigits = (expDigits << 3) + (expDigits << 1) + int32(ch-'0')
		}

		exponent += expDigits * sign
	}

	return NumberFromParts(true, mantissa, int16(exponent)), nil
}

// parseValue skips leading whitespace, consumes the first byte, and
// dispatches on it.
func (p *parser) parseValue() (Value, error) {
	p.skipWhitespace()
	ch, err := p.expectByte()
	if err != nil {
		return Value{}, err
	}
	return p.parseValueFrom(ch)
}

// parseValueFrom dispatches on an already-consumed first byte, the shape
// every production in the table in spec.md needs: parseArray/parseObject's
// element loops read their own first byte (to also recognise the closing
// delimiter) and hand it here rather than calling parseValue and
// re-skipping whitespace that was already skipped.
func (p *parser) parseValueFrom(ch byte) (Value, error) {
	switch {
	case ch == '[':
		return p.parseArray()
	case ch == '{':
		return p.parseObject()
	case ch == '"':
		s, err := p.readString()
		if err != nil {
			return Value{}, err
		}
		return NewString(s), nil
	case ch == '0':
		n, err := p.parseNumberTail(0, 0)
		if err != nil {
			return Value{}, err
		}
		return NewNumber(n), nil
	case ch >= '1' && ch <= '9':
		n, err := p.parseNumber(ch)
		if err != nil {
			return Value{}, err
		}
		return NewNumber(n), nil
	case ch == '-':
		return p.parseNegativeNumber()
	case ch == 't':
		if err := p.expectSequence('r', 'u', 'e'); err != nil {
			return Value{}, err
		}
		return NewBool(true), nil
	case ch == 'f':
		if err := p.expectSequence('a', 'l', 's', 'e'); err != nil {
			return Value{}, err
		}
		return NewBool(false), nil
	case ch == 'n':
		if err := p.expectSequence('u', 'l', 'l'); err != nil {
			return Value{}, err
		}
		return Null, nil
	default:
		return Value{}, p.unexpectedCharacter(ch)
	}
}

func (p *parser) parseNegativeNumber() (Value, error) {
	ch, err := p.expectByte()
	if err != nil {
		return Value{}, err
	}

	var n Number
	switch {
	case ch == '0':
		n, err = p.parseNumberTail(0, 0)
	case ch >= '1' && ch <= '9':
		n, err = p.parseNumber(ch)
	default:
		return Value{}, p.unexpectedCharacter(ch)
	}
	if err != nil {
		return Value{}, err
	}
	return NewNumber(n.Neg()), nil
}

func (p *parser) enterNesting() error {
	p.depth++
	if p.depth > maxNestingDepth {
		return &ExceededDepthLimitError{Limit: maxNestingDepth}
	}
	return nil
}

func (p *parser) exitNesting() {
	p.depth--
}

// parseArray reads a '[' ... ']' production (the opening '[' already
// consumed).
func (p *parser) parseArray() (Value, error) {
	if err := p.enterNesting(); err != nil {
		return Value{}, err
	}
	defer p.exitNesting()

	p.skipWhitespace()
	ch, err := p.expectByte()
	if err != nil {
		return Value{}, err
	}
	if ch == ']' {
		return NewArray(nil), nil
	}

	elements := make([]Value, 0, 4)
	first, err := p.parseValueFrom(ch)
	if err != nil {
		return Value{}, err
	}
	elements = append(elements, first)

	for {
		p.skipWhitespace()
		ch, err := p.expectByte()
		if err != nil {
			return Value{}, err
		}
		switch ch {
		case ']':
			return NewArray(elements), nil
		case ',':
			v, err := p.parseValue()
			if err != nil {
				return Value{}, err
			}
			elements = append(elements, v)
		default:
			return Value{}, p.unexpectedCharacter(ch)
		}
	}
}

// parseObject reads a '{' ... '}' production (the opening '{' already
// consumed).
func (p *parser) parseObject() (Value, error) {
	if err := p.enterNesting(); err != nil {
		return Value{}, err
	}
	defer p.exitNesting()

	obj := NewObjectWithCapacity(4)

	p.skipWhitespace()
	ch, err := p.expectByte()
	if err != nil {
		return Value{}, err
	}
	if ch == '}' {
		return NewObjectValue(obj), nil
	}
	if ch != '"' {
		return Value{}, p.unexpectedCharacter(ch)
	}

	key, err := p.readString()
	if err != nil {
		return Value{}, err
	}
	if err := p.expect(':'); err != nil {
		return Value{}, err
	}
	value, err := p.parseValue()
	if err != nil {
		return Value{}, err
	}
	obj.Insert(key, value)

	for {
		p.skipWhitespace()
		ch, err := p.expectByte()
		if err != nil {
			return Value{}, err
		}
		switch ch {
		case '}':
			return NewObjectValue(obj), nil
		case ',':
			if err := p.expect('"'); err != nil {
				return Value{}, err
			}
			key, err := p.readString()
			if err != nil {
				return Value{}, err
			}
			if err := p.expect(':'); err != nil {
				return Value{}, err
			}
			value, err := p.parseValue()
			if err != nil {
				return Value{}, err
			}
			obj.Insert(key, value)
		default:
			return Value{}, p.unexpectedCharacter(ch)
		}
	}
}

// ensureEnd rejects any trailing byte that is not whitespace.
func (p *parser) ensureEnd() error {
	for !p.isEOF() {
		ch := p.readByte()
		if isWhitespace(ch) {
			p.bump()
			continue
		}
		p.bump()
		return p.unexpectedCharacter(ch)
	}
	return nil
}

// parseDocument parses exactly one value followed by optional trailing
// whitespace, the contract Parse/ParseString/ParseBytes expose in json.go.
func parseDocument(src []byte) (Value, error) {
	p := newParser(src)
	v, err := p.parseValue()
	if err != nil {
		return Value{}, err
	}
	if err := p.ensureEnd(); err != nil {
		return Value{}, err
	}
	return v, nil
}
