package hashing

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"

	"github.com/hasbyte1/go-argon2-hashstring/hashstring"
)

// ──────────────────────────────────────────────────────────────────────────────
// Options
// ──────────────────────────────────────────────────────────────────────────────

const (
	// DefaultArgon2Memory is the default memory cost in KiB (64 MiB).
	DefaultArgon2Memory uint32 = 64 * 1024

	// DefaultArgon2Time is the default number of iterations.
	DefaultArgon2Time uint32 = 3

	// DefaultArgon2Threads is the default degree of parallelism.
	DefaultArgon2Threads uint8 = 2

	// DefaultArgon2KeyLen is the default output length in bytes.
	DefaultArgon2KeyLen uint32 = 32

	// DefaultArgon2SaltLen is the default random salt length in bytes.
	DefaultArgon2SaltLen uint32 = 16
)

// Argon2Options configures an [Argon2iHasher].
//
// All parameters are written into the hash string, so changing them only
// affects newly produced hashes; existing hashes stay verifiable.
type Argon2Options struct {
	// Memory is the memory cost in KiB.
	// Minimum: 8 * Threads.  Default: [DefaultArgon2Memory] (64 MiB).
	Memory uint32

	// Time is the number of passes over memory (iterations).
	// Minimum: 1.  Default: [DefaultArgon2Time] (3).
	Time uint32

	// Threads is the degree of parallelism.
	// Minimum: 1.  Default: [DefaultArgon2Threads] (2).
	Threads uint8

	// KeyLen is the length of the derived output in bytes.
	// Range: 12–64.  Default: [DefaultArgon2KeyLen] (32).
	KeyLen uint32

	// SaltLen is the length of the random salt in bytes.
	// Range: 8–48.  Default: [DefaultArgon2SaltLen] (16).
	SaltLen uint32
}

// DefaultArgon2Options returns Argon2Options with the recommended defaults.
func DefaultArgon2Options() Argon2Options {
	return Argon2Options{
		Memory:  DefaultArgon2Memory,
		Time:    DefaultArgon2Time,
		Threads: DefaultArgon2Threads,
		KeyLen:  DefaultArgon2KeyLen,
		SaltLen: DefaultArgon2SaltLen,
	}
}

func validateArgon2Options(opts Argon2Options) error {
	if opts.Time < 1 {
		return fmt.Errorf("%w: argon2 time must be ≥ 1, got %d", ErrInvalidOption, opts.Time)
	}
	if opts.Threads < 1 {
		return fmt.Errorf("%w: argon2 threads must be ≥ 1, got %d", ErrInvalidOption, opts.Threads)
	}
	if uint64(opts.Memory) < hashstring.MemoryPerLane*uint64(opts.Threads) {
		return fmt.Errorf("%w: argon2 memory (%d KiB) must be ≥ 8×threads (%d KiB)",
			ErrInvalidOption, opts.Memory, hashstring.MemoryPerLane*uint64(opts.Threads))
	}
	if opts.KeyLen < hashstring.MinOutputLen || opts.KeyLen > hashstring.MaxOutputLen {
		return fmt.Errorf("%w: argon2 key_len must be in [%d, %d], got %d",
			ErrInvalidOption, hashstring.MinOutputLen, hashstring.MaxOutputLen, opts.KeyLen)
	}
	if opts.SaltLen < hashstring.MinSaltLen || opts.SaltLen > hashstring.MaxSaltLen {
		return fmt.Errorf("%w: argon2 salt_len must be in [%d, %d], got %d",
			ErrInvalidOption, hashstring.MinSaltLen, hashstring.MaxSaltLen, opts.SaltLen)
	}
	return nil
}

// randomSalt returns n cryptographically random bytes.
func randomSalt(n uint32) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("hashing: argon2: failed to generate salt: %w", err)
	}
	return b, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Argon2iHasher
// ──────────────────────────────────────────────────────────────────────────────

// Argon2iHasher hashes passwords using the Argon2i algorithm and stores the
// result as a hash string (see package hashstring):
//
//	$argon2i$m=…,t=…,p=…$<salt>$<output>
//
// # Thread safety
//
// Argon2iHasher is immutable after construction and safe for concurrent use.
type Argon2iHasher struct {
	opts Argon2Options
}

// NewArgon2iHasher constructs an Argon2iHasher with the given options.
// Use [DefaultArgon2Options] for recommended defaults.
func NewArgon2iHasher(opts Argon2Options) (*Argon2iHasher, error) {
	if err := validateArgon2Options(opts); err != nil {
		return nil, err
	}
	return &Argon2iHasher{opts: opts}, nil
}

// Driver returns [DriverArgon2i].
func (h *Argon2iHasher) Driver() DriverName { return DriverArgon2i }

// Options returns the current Argon2 parameter set.
func (h *Argon2iHasher) Options() Argon2Options { return h.opts }

// Make hashes password with Argon2i and returns the full hash string.
// A fresh random salt of the configured length is generated for each call.
func (h *Argon2iHasher) Make(password string) (string, error) {
	salt, err := randomSalt(h.opts.SaltLen)
	if err != nil {
		return "", err
	}
	return h.MakeSalted(password, salt)
}

// MakeSalted is [Argon2iHasher.Make] with a caller-supplied salt of 8–48
// bytes. The result is deterministic, which makes it suitable for
// known-answer tests; production code should use Make.
func (h *Argon2iHasher) MakeSalted(password string, salt []byte) (string, error) {
	p, err := h.Params()
	if err != nil {
		return "", err
	}
	if len(salt) < hashstring.MinSaltLen || len(salt) > hashstring.MaxSaltLen {
		return "", fmt.Errorf("%w: salt must be %d–%d bytes, got %d",
			ErrInvalidOption, hashstring.MinSaltLen, hashstring.MaxSaltLen, len(salt))
	}
	if err := p.SetSalt(salt); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}
	key := argon2.Key(
		[]byte(password), salt,
		h.opts.Time, h.opts.Memory, h.opts.Threads, h.opts.KeyLen,
	)
	if err := p.SetOutput(key); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}
	text, err := p.MarshalText()
	if err != nil {
		return "", fmt.Errorf("hashing: argon2: %w", err)
	}
	return string(text), nil
}

// Params returns the hasher's configuration as a parameters-only record,
// suitable for publishing the current policy as a hash string.
func (h *Argon2iHasher) Params() (hashstring.Params, error) {
	p := hashstring.Params{M: h.opts.Memory, T: h.opts.Time, P: h.opts.Threads}
	if err := p.Validate(); err != nil {
		return hashstring.Params{}, fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}
	return p, nil
}

// Check verifies that password matches the Argon2i hash string.
// The parameters are read from the hash string itself, so verification
// works even when the hasher's options have changed.
//
// Parameters-only and salt strings carry no output and are rejected with
// [ErrInvalidHash].
func (h *Argon2iHasher) Check(password, hash string) (bool, error) {
	p, err := decodeArgon2i(hash)
	if err != nil {
		return false, err
	}
	if p.Kind() != hashstring.Full {
		return false, fmt.Errorf("%w: %s hash string has no output to verify", ErrInvalidHash, p.Kind())
	}
	if len(p.KeyID()) > 0 || len(p.AssociatedData()) > 0 {
		return false, ErrUnsupportedParams
	}
	want := p.Output()
	computed := argon2.Key([]byte(password), p.Salt(), p.T, p.M, p.P, uint32(len(want)))
	return subtle.ConstantTimeCompare(computed, want) == 1, nil
}

// NeedsRehash returns true if any parameter stored in hash differs from the
// hasher's current configuration.
func (h *Argon2iHasher) NeedsRehash(hash string) (bool, error) {
	p, err := decodeArgon2i(hash)
	if err != nil {
		return false, err
	}
	return p.M != h.opts.Memory ||
		p.T != h.opts.Time ||
		p.P != h.opts.Threads ||
		len(p.Output()) != int(h.opts.KeyLen), nil
}

// Info parses the hash string and returns the encoded parameters.
// See [HashInfo] for the keys of Params.
func (h *Argon2iHasher) Info(hash string) (HashInfo, error) {
	p, err := decodeArgon2i(hash)
	if err != nil {
		return HashInfo{}, err
	}
	params := map[string]any{
		"memory":   p.M,
		"time":     p.T,
		"threads":  p.P,
		"salt_len": len(p.Salt()),
		"key_len":  len(p.Output()),
	}
	if id := p.KeyID(); len(id) > 0 {
		params["key_id"] = append([]byte(nil), id...)
	}
	if ad := p.AssociatedData(); len(ad) > 0 {
		params["data"] = append([]byte(nil), ad...)
	}
	return HashInfo{Driver: DriverArgon2i, Kind: p.Kind(), Params: params}, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Shared helpers
// ──────────────────────────────────────────────────────────────────────────────

// decodeArgon2i parses hash, telling apart strings from another algorithm
// and malformed argon2i strings.
func decodeArgon2i(hash string) (*hashstring.Params, error) {
	if _, ok := DetectDriver(hash); !ok && isModularCrypt(hash) {
		return nil, fmt.Errorf("%w: hash is not argon2i", ErrAlgorithmMismatch)
	}
	p, err := hashstring.Decode(hash)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	return p, nil
}
