package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	ok, err := hasher.Check(password, hash)
//	if errors.Is(err, hashing.ErrInvalidHash) {
//	    // hash string is malformed
//	}
//
// Errors caused by a malformed hash string also wrap the matching
// hashstring kind error, e.g. [hashstring.ErrRange].
var (
	// ErrInvalidHash is returned when a hash string cannot be parsed, or
	// when it lacks the salt and output needed for verification.
	ErrInvalidHash = errors.New("hashing: invalid or unrecognised hash string")

	// ErrInvalidOption is returned when a constructor is called with a
	// parameter value that falls outside the allowed range (e.g., a salt
	// shorter than 8 bytes).
	ErrInvalidOption = errors.New("hashing: invalid option value")

	// ErrAlgorithmMismatch is returned when the hash string was produced by
	// a different algorithm than argon2i.
	ErrAlgorithmMismatch = errors.New("hashing: hash was produced by a different algorithm")

	// ErrUnsupportedParams is returned by [Argon2iHasher.Check] for hash
	// strings that carry a keyid or associated data. Those inputs cannot be
	// fed to the underlying Argon2 implementation, so the output cannot be
	// recomputed.
	ErrUnsupportedParams = errors.New("hashing: keyid and associated data are not supported for verification")
)
