package hashing

import (
	"strings"

	"github.com/hasbyte1/go-argon2-hashstring/hashstring"
)

// DriverName identifies a hashing algorithm driver.
// Using a named string type prevents accidental confusion with plain strings.
type DriverName string

// DriverArgon2i selects the Argon2i driver.
const DriverArgon2i DriverName = hashstring.Algorithm

// Hasher is the interface satisfied by password-hashing drivers.
//
// All implementations must be safe for concurrent use by multiple goroutines.
type Hasher interface {
	// Make hashes a plaintext password and returns the encoded hash string.
	// A fresh cryptographic salt is generated for every call, so two calls
	// with the same password will produce different outputs.
	Make(password string) (string, error)

	// Check verifies that password matches the previously encoded hash.
	// Returns (true, nil) on match, (false, nil) on mismatch, or
	// (false, err) if the hash is structurally invalid.
	//
	// Comparison is performed in constant time to prevent timing attacks.
	Check(password, hash string) (bool, error)

	// NeedsRehash returns true when the hash was produced with parameters
	// different from the hasher's current configuration. Callers should
	// re-hash the password on next successful login when this returns true.
	NeedsRehash(hash string) (bool, error)

	// Info extracts metadata from an encoded hash string without verifying it.
	Info(hash string) (HashInfo, error)

	// Driver returns the DriverName implemented by this hasher.
	Driver() DriverName
}

// HashInfo carries metadata parsed from an encoded hash string.
type HashInfo struct {
	// Driver is the hashing algorithm that produced the hash.
	Driver DriverName

	// Kind reports whether the string carries a salt and an output.
	Kind hashstring.Kind

	// Params holds the values extracted from the hash string:
	//   "memory"   → uint32 (KiB)
	//   "time"     → uint32 (iterations)
	//   "threads"  → uint8  (degree of parallelism)
	//   "salt_len" → int
	//   "key_len"  → int    (output length in bytes; 0 without output)
	//   "key_id"   → []byte (only when present)
	//   "data"     → []byte (only when present)
	Params map[string]any
}

// DetectDriver inspects a hash string and returns the [DriverName] that
// produced it. It is a prefix check only and does not parse the hash.
//
// The second return value is false when the hash format is not recognised.
func DetectDriver(hash string) (DriverName, bool) {
	if strings.HasPrefix(hash, "$"+hashstring.Algorithm+"$") {
		return DriverArgon2i, true
	}
	return "", false
}

// isModularCrypt reports whether hash looks like "$<id>$…", the shape shared
// by bcrypt, scrypt and the other Argon2 variants.
func isModularCrypt(hash string) bool {
	return len(hash) > 2 && hash[0] == '$' && strings.IndexByte(hash[1:], '$') > 0
}
