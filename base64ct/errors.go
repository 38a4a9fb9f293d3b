package base64ct

import "errors"

// Sentinel errors returned by the Base64 codec.
//
// Use [errors.Is] for comparisons:
//
//	n, rest, err := base64ct.Decode(buf[:], s)
//	if errors.Is(err, base64ct.ErrShortBuffer) {
//	    // encoded value is longer than the field allows
//	}
var (
	// ErrShortBuffer is returned when the destination cannot hold the
	// encoded text plus its terminator, or when decoding would produce more
	// bytes than the destination capacity.
	ErrShortBuffer = errors.New("base64ct: destination buffer too small")

	// ErrTrailingBits is returned when the encoded length is 1 modulo 4.
	// Six buffered bits can never form a whole byte.
	ErrTrailingBits = errors.New("base64ct: truncated encoding leaves unprocessable bits")

	// ErrNonCanonical is returned when the leftover bits of the last
	// character are not all zero.
	ErrNonCanonical = errors.New("base64ct: non-zero trailing bits")

	// ErrInvalidChar is returned by [DecodeString] when the input contains a
	// byte outside the alphabet.
	ErrInvalidChar = errors.New("base64ct: invalid character in input")
)
