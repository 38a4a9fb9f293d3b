// Package hashing provides Argon2i password hashing on top of the hash-string
// codec in package hashstring.
//
// # Architecture
//
// The central abstraction is the [Hasher] interface. [Argon2iHasher] is the
// shipped driver: it derives outputs with golang.org/x/crypto/argon2 and
// stores every parameter, the salt and the output in one hash string, so no
// external configuration is needed to verify a previously produced hash.
//
// # Quick start
//
//	h, err := hashing.NewArgon2iHasher(hashing.DefaultArgon2Options())
//	if err != nil { log.Fatal(err) }
//
//	hash, _ := h.Make("my-secret-password")
//	ok, _   := h.Check("my-secret-password", hash) // true
//
// # Security defaults
//
//   - m=64 MiB, t=3 iterations, p=2 lanes, 16-byte salt, 32-byte output.
//
// # Rotation
//
// Call [Argon2iHasher.NeedsRehash] on every successful login. It returns true
// when the stored hash was produced with parameters other than the current
// ones. Re-hash and persist immediately:
//
//	ok, _ := h.Check(password, storedHash)
//	if ok {
//	    if needs, _ := h.NeedsRehash(storedHash); needs {
//	        newHash, _ := h.Make(password)
//	        persist(userID, newHash)
//	    }
//	}
//
// # Hash format
//
//	$argon2i$m=65536,t=3,p=2$<base64-salt>$<base64-output>
//
// Hash strings carrying a keyid or associated data decode fine through
// [Argon2iHasher.Info] but cannot be verified: x/crypto's Argon2 takes
// neither input.
package hashing
