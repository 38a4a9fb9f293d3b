package hashstring

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by [Decode] and [Encode].
//
// Every decode failure wraps [ErrInvalidHash], so a credential store only
// needs one check to reject a string:
//
//	p, err := hashstring.Decode(stored)
//	if errors.Is(err, hashstring.ErrInvalidHash) {
//	    // reject the credential
//	}
//
// The kind errors below also wrap [ErrInvalidHash] and can be matched
// individually when a caller wants a diagnostic.
var (
	// ErrInvalidHash is the root of every decode failure.
	ErrInvalidHash = errors.New("hashstring: invalid hash string")

	// ErrGrammar is returned when an expected literal is missing: wrong
	// algorithm identifier, wrong separator or a missing field.
	ErrGrammar = fmt.Errorf("%w: grammar mismatch", ErrInvalidHash)

	// ErrNumber is returned when a decimal field has no digits, has a leading
	// zero or does not fit in 64 bits.
	ErrNumber = fmt.Errorf("%w: malformed number", ErrInvalidHash)

	// ErrRange is returned when a numeric field falls outside its bound,
	// when m < 8×p, or when a salt or output is shorter than its minimum.
	ErrRange = fmt.Errorf("%w: value out of range", ErrInvalidHash)

	// ErrBinary is returned when a Base64 field ends with an impossible
	// length or with non-zero leftover bits.
	ErrBinary = fmt.Errorf("%w: malformed base64", ErrInvalidHash)

	// ErrCapacity is returned when a binary field decodes to more bytes than
	// its declared maximum.
	ErrCapacity = fmt.Errorf("%w: field exceeds capacity", ErrInvalidHash)

	// ErrTrailing is returned when a complete record was parsed but input
	// remains.
	ErrTrailing = fmt.Errorf("%w: trailing data", ErrInvalidHash)

	// ErrShortBuffer is returned by [Encode] when the destination cannot hold
	// the hash string and its terminator.
	ErrShortBuffer = errors.New("hashstring: destination buffer too small")

	// ErrFieldTooLong is returned by the Params setters when the value is
	// longer than the field capacity.
	ErrFieldTooLong = errors.New("hashstring: value exceeds field capacity")

	// ErrInvalidParams is returned by [Params.Validate] when a record breaks
	// one of the format invariants.
	ErrInvalidParams = errors.New("hashstring: invalid parameters")
)
