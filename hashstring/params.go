package hashstring

import "fmt"

// ──────────────────────────────────────────────────────────────────────────────
// Format constants
// ──────────────────────────────────────────────────────────────────────────────

const (
	// Algorithm is the only identifier accepted and produced by this package.
	Algorithm = "argon2i"

	// MaxKeyIDLen is the capacity of the keyid field in bytes.
	MaxKeyIDLen = 8

	// MaxDataLen is the capacity of the associated data field in bytes.
	MaxDataLen = 32

	// MinSaltLen and MaxSaltLen bound a present salt.
	MinSaltLen = 8
	MaxSaltLen = 48

	// MinOutputLen and MaxOutputLen bound a present output.
	MinOutputLen = 12
	MaxOutputLen = 64

	// MaxParallelism is the largest accepted p.
	MaxParallelism = 255

	// MemoryPerLane is the minimum memory cost, in KiB, per unit of
	// parallelism: m must be at least MemoryPerLane × p.
	MemoryPerLane = 8

	// MaxEncodedLen is the length of the longest hash string this package can
	// produce, terminator excluded.
	MaxEncodedLen = len("$"+Algorithm+"$m=") + 10 +
		len(",t=") + 10 +
		len(",p=") + 3 +
		len(",keyid=") + (MaxKeyIDLen*8+5)/6 +
		len(",data=") + (MaxDataLen*8+5)/6 +
		1 + (MaxSaltLen*8+5)/6 +
		1 + (MaxOutputLen*8+5)/6
)

// Kind describes which optional trailing segments a record carries.
type Kind int

const (
	// ParamsOnly records carry neither salt nor output.
	ParamsOnly Kind = iota
	// Salted records carry a salt but no output.
	Salted
	// Full records carry both salt and output.
	Full
)

// String returns a short name for k.
func (k Kind) String() string {
	switch k {
	case ParamsOnly:
		return "params-only"
	case Salted:
		return "salted"
	case Full:
		return "full"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Params
// ──────────────────────────────────────────────────────────────────────────────

// Params is the in-memory form of an Argon2i hash string.
//
// The binary fields live in fixed arrays sized to the protocol maxima, with
// a separate length; a zero length means the field is absent from the text
// form. The setters keep unused bytes zeroed, so two records holding the
// same values compare equal with ==.
//
// A Params value is not safe for concurrent mutation.
type Params struct {
	// M is the memory cost in KiB, in [1, 2^32−1].
	M uint32

	// T is the time cost (number of passes), in [1, 2^32−1].
	T uint32

	// P is the degree of parallelism, in [1, 255].
	P uint8

	keyID     [MaxKeyIDLen]byte
	keyIDLen  int
	data      [MaxDataLen]byte
	dataLen   int
	salt      [MaxSaltLen]byte
	saltLen   int
	output    [MaxOutputLen]byte
	outputLen int
}

// KeyID returns the key identifier, or an empty slice when absent.
// The slice aliases p.
func (p *Params) KeyID() []byte { return p.keyID[:p.keyIDLen] }

// AssociatedData returns the associated data, or an empty slice when absent.
// The slice aliases p.
func (p *Params) AssociatedData() []byte { return p.data[:p.dataLen] }

// Salt returns the salt, or an empty slice when absent. The slice aliases p.
func (p *Params) Salt() []byte { return p.salt[:p.saltLen] }

// Output returns the hash output, or an empty slice when absent.
// The slice aliases p.
func (p *Params) Output() []byte { return p.output[:p.outputLen] }

// SetKeyID copies b into the keyid field. An empty b removes the field.
func (p *Params) SetKeyID(b []byte) error {
	return setField(p.keyID[:], &p.keyIDLen, b, "keyid")
}

// SetAssociatedData copies b into the data field. An empty b removes the field.
func (p *Params) SetAssociatedData(b []byte) error {
	return setField(p.data[:], &p.dataLen, b, "data")
}

// SetSalt copies b into the salt field. An empty b removes the salt.
// The minimum length is checked by [Params.Validate], not here.
func (p *Params) SetSalt(b []byte) error {
	return setField(p.salt[:], &p.saltLen, b, "salt")
}

// SetOutput copies b into the output field. An empty b removes the output.
// The minimum length is checked by [Params.Validate], not here.
func (p *Params) SetOutput(b []byte) error {
	return setField(p.output[:], &p.outputLen, b, "output")
}

func setField(dst []byte, n *int, src []byte, name string) error {
	if len(src) > len(dst) {
		return fmt.Errorf("%w: %s is %d bytes, capacity %d", ErrFieldTooLong, name, len(src), len(dst))
	}
	*n = copy(dst, src)
	clear(dst[*n:])
	return nil
}

// Kind reports which trailing segments p carries.
func (p *Params) Kind() Kind {
	switch {
	case p.saltLen == 0:
		return ParamsOnly
	case p.outputLen == 0:
		return Salted
	default:
		return Full
	}
}

// Validate checks the invariants every encodable record must satisfy.
// [Encode] does not call it; callers building a record by hand should.
func (p *Params) Validate() error {
	if p.M < 1 {
		return fmt.Errorf("%w: m must be ≥ 1, got %d", ErrInvalidParams, p.M)
	}
	if p.T < 1 {
		return fmt.Errorf("%w: t must be ≥ 1, got %d", ErrInvalidParams, p.T)
	}
	if p.P < 1 {
		return fmt.Errorf("%w: p must be ≥ 1, got %d", ErrInvalidParams, p.P)
	}
	if uint64(p.M) < MemoryPerLane*uint64(p.P) {
		return fmt.Errorf("%w: m (%d KiB) must be ≥ 8×p (%d KiB)",
			ErrInvalidParams, p.M, MemoryPerLane*uint64(p.P))
	}
	if p.saltLen != 0 && p.saltLen < MinSaltLen {
		return fmt.Errorf("%w: salt must be %d–%d bytes, got %d",
			ErrInvalidParams, MinSaltLen, MaxSaltLen, p.saltLen)
	}
	if p.outputLen != 0 {
		if p.saltLen == 0 {
			return fmt.Errorf("%w: output requires a salt", ErrInvalidParams)
		}
		if p.outputLen < MinOutputLen {
			return fmt.Errorf("%w: output must be %d–%d bytes, got %d",
				ErrInvalidParams, MinOutputLen, MaxOutputLen, p.outputLen)
		}
	}
	return nil
}
