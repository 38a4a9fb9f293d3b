package base64ct

import "slices"

// ──────────────────────────────────────────────────────────────────────────────
// Constant-shape comparisons
// ──────────────────────────────────────────────────────────────────────────────
//
// The helpers below operate on values in 0..255 and return 0xFF for "true"
// and 0x00 for "false". They never branch on their operands.

func eq(x, y uint32) uint32 { return (((-(x ^ y)) >> 8) & 0xFF) ^ 0xFF }
func gt(x, y uint32) uint32 { return ((y - x) >> 8) & 0xFF }
func ge(x, y uint32) uint32 { return gt(y, x) ^ 0xFF }
func lt(x, y uint32) uint32 { return gt(y, x) }
func le(x, y uint32) uint32 { return ge(y, x) }

// invalid is the value returned by decodeChar for bytes outside the alphabet.
const invalid = 0xFF

// encodeChar converts a 6-bit value to its alphabet character.
//
// Salts and outputs are secret material, so the character is selected with
// masks over every range instead of a table index or a comparison ladder.
// Execution time does not depend on x.
func encodeChar(x uint32) byte {
	return byte((lt(x, 26) & (x + 'A')) |
		(ge(x, 26) & lt(x, 52) & (x + ('a' - 26))) |
		(ge(x, 52) & lt(x, 62) & (x - (52 - '0'))) |
		(eq(x, 62) & '+') |
		(eq(x, 63) & '/'))
}

// decodeChar converts an alphabet character to its 6-bit value, or returns
// [invalid]. A zero result from the range masks is ambiguous between 'A' and
// a non-alphabet byte; the final term resolves it without branching.
func decodeChar(c uint32) uint32 {
	x := (ge(c, 'A') & le(c, 'Z') & (c - 'A')) |
		(ge(c, 'a') & le(c, 'z') & (c - ('a' - 26))) |
		(ge(c, '0') & le(c, '9') & (c + (52 - '0'))) |
		(eq(c, '+') & 62) |
		(eq(c, '/') & 63)
	return x | (eq(x, 0) & (eq(c, 'A') ^ 0xFF))
}

// ──────────────────────────────────────────────────────────────────────────────
// Encoding
// ──────────────────────────────────────────────────────────────────────────────

// EncodedLen returns the length of the unpadded encoding of n bytes.
func EncodedLen(n int) int {
	olen := (n / 3) << 2
	switch n % 3 {
	case 2:
		olen += 3
	case 1:
		olen += 2
	}
	return olen
}

// DecodedLen returns the maximum number of bytes an encoding of n characters
// can decode to.
func DecodedLen(n int) int {
	return n * 6 / 8
}

// Encode writes the unpadded encoding of src into dst followed by a zero
// terminator and returns the encoded length, terminator excluded.
//
// dst must hold at least [EncodedLen](len(src))+1 bytes; otherwise nothing
// is written and [ErrShortBuffer] is returned.
func Encode(dst, src []byte) (int, error) {
	olen := EncodedLen(len(src))
	if len(dst) <= olen {
		return 0, ErrShortBuffer
	}

	var acc, accLen uint32
	n := 0
	for _, b := range src {
		acc = (acc << 8) + uint32(b)
		accLen += 8
		for accLen >= 6 {
			accLen -= 6
			dst[n] = encodeChar((acc >> accLen) & 0x3F)
			n++
		}
	}
	if accLen > 0 {
		dst[n] = encodeChar((acc << (6 - accLen)) & 0x3F)
		n++
	}
	dst[n] = 0
	return n, nil
}

// AppendEncode appends the unpadded encoding of src to dst and returns the
// extended buffer.
func AppendEncode(dst, src []byte) []byte {
	n := EncodedLen(len(src))
	dst = slices.Grow(dst, n+1)
	// Capacity is guaranteed above; the terminator lands past the new length.
	_, _ = Encode(dst[len(dst):len(dst)+n+1], src)
	return dst[:len(dst)+n]
}

// EncodeToString returns the unpadded encoding of src.
func EncodeToString(src []byte) string {
	return string(AppendEncode(nil, src))
}

// ──────────────────────────────────────────────────────────────────────────────
// Decoding
// ──────────────────────────────────────────────────────────────────────────────

// Decode decodes alphabet characters from the start of src into dst.
//
// Decoding stops at the first byte that is not part of the alphabet; that
// byte and everything after it are returned as rest, which is not an error
// by itself. The number of bytes written to dst is returned as n.
//
// Decode fails with [ErrShortBuffer] when the encoded value does not fit in
// dst, with [ErrTrailingBits] when the consumed length is 1 modulo 4, and
// with [ErrNonCanonical] when the final character carries non-zero bits that
// do not belong to any byte.
func Decode(dst []byte, src string) (n int, rest string, err error) {
	var acc, accLen uint32
	i := 0
	for ; i < len(src); i++ {
		d := decodeChar(uint32(src[i]))
		if d == invalid {
			break
		}
		acc = (acc << 6) + d
		accLen += 6
		if accLen >= 8 {
			accLen -= 8
			if n >= len(dst) {
				return 0, "", ErrShortBuffer
			}
			dst[n] = byte(acc >> accLen)
			n++
		}
	}

	// A length of 1 modulo 4 leaves 6 buffered bits; every other length
	// leaves 0, 2 or 4, all of which must be zero.
	if accLen > 4 {
		return 0, "", ErrTrailingBits
	}
	if acc&((1<<accLen)-1) != 0 {
		return 0, "", ErrNonCanonical
	}
	return n, src[i:], nil
}

// DecodeString decodes the whole of s, which must consist of alphabet
// characters only.
func DecodeString(s string) ([]byte, error) {
	buf := make([]byte, DecodedLen(len(s)))
	n, rest, err := Decode(buf, s)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, ErrInvalidChar
	}
	return buf[:n], nil
}
