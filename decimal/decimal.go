// Package decimal parses and formats minimal unsigned decimal integers as
// they appear in hash-string parameter blocks.
package decimal

import (
	"errors"
	"math"
	"strconv"
)

var (
	// ErrNoDigits is returned when the input does not start with a digit.
	ErrNoDigits = errors.New("decimal: no digits")

	// ErrNonMinimal is returned for a digit run with a leading zero, such as
	// "0120". The value zero itself is written "0".
	ErrNonMinimal = errors.New("decimal: non-minimal encoding (leading zero)")

	// ErrOverflow is returned when the digit run exceeds math.MaxUint64.
	ErrOverflow = errors.New("decimal: value out of range")
)

// Parse consumes the leading run of ASCII digits in s and returns its value
// and the remainder of s, starting at the first non-digit byte.
//
// Signs, whitespace and leading zeros are rejected. Overflow is detected
// before it happens, one digit at a time.
func Parse(s string) (v uint64, rest string, err error) {
	i := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		d := uint64(c - '0')
		if v > math.MaxUint64/10 {
			return 0, "", ErrOverflow
		}
		v *= 10
		if d > math.MaxUint64-v {
			return 0, "", ErrOverflow
		}
		v += d
	}
	if i == 0 {
		return 0, "", ErrNoDigits
	}
	if s[0] == '0' && i > 1 {
		return 0, "", ErrNonMinimal
	}
	return v, s[i:], nil
}

// Append appends the minimal decimal form of v to dst.
func Append(dst []byte, v uint64) []byte {
	return strconv.AppendUint(dst, v, 10)
}
