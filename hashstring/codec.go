package hashstring

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/hasbyte1/go-argon2-hashstring/base64ct"
	"github.com/hasbyte1/go-argon2-hashstring/decimal"
)

// ──────────────────────────────────────────────────────────────────────────────
// Decoding
// ──────────────────────────────────────────────────────────────────────────────

// Decode parses a hash string of the form
//
//	$argon2i$m=<num>,t=<num>,p=<num>[,keyid=<b64>][,data=<b64>][$<b64>[$<b64>]]
//
// Fields are read strictly left to right with no backtracking. Any failure
// returns a nil record and an error wrapping [ErrInvalidHash]; no partially
// decoded record is ever exposed.
func Decode(s string) (*Params, error) {
	var p Params
	d := decoder{rest: s}

	if err := d.literal("$" + Algorithm); err != nil {
		return nil, err
	}
	if err := d.literal("$m="); err != nil {
		return nil, err
	}
	m, err := d.decimal("m")
	if err != nil {
		return nil, err
	}
	if err := d.literal(",t="); err != nil {
		return nil, err
	}
	t, err := d.decimal("t")
	if err != nil {
		return nil, err
	}
	if err := d.literal(",p="); err != nil {
		return nil, err
	}
	par, err := d.decimal("p")
	if err != nil {
		return nil, err
	}
	if err := checkCosts(m, t, par); err != nil {
		return nil, err
	}
	p.M, p.T, p.P = uint32(m), uint32(t), uint8(par)

	if d.optional(",keyid=") {
		if p.keyIDLen, err = d.binary("keyid", p.keyID[:]); err != nil {
			return nil, err
		}
	}
	if d.optional(",data=") {
		if p.dataLen, err = d.binary("data", p.data[:]); err != nil {
			return nil, err
		}
	}
	if d.done() {
		return &p, nil
	}

	if err := d.literal("$"); err != nil {
		return nil, err
	}
	if p.saltLen, err = d.binary("salt", p.salt[:]); err != nil {
		return nil, err
	}
	if p.saltLen < MinSaltLen {
		return nil, fmt.Errorf("%w: salt is %d bytes, minimum %d", ErrRange, p.saltLen, MinSaltLen)
	}
	if d.done() {
		return &p, nil
	}

	if err := d.literal("$"); err != nil {
		return nil, err
	}
	if p.outputLen, err = d.binary("output", p.output[:]); err != nil {
		return nil, err
	}
	if p.outputLen < MinOutputLen {
		return nil, fmt.Errorf("%w: output is %d bytes, minimum %d", ErrRange, p.outputLen, MinOutputLen)
	}
	if !d.done() {
		return nil, fmt.Errorf("%w: %d unparsed bytes after output", ErrTrailing, len(d.rest))
	}
	return &p, nil
}

// checkCosts validates the parameter block as a whole.
func checkCosts(m, t, p uint64) error {
	if m < 1 || m > math.MaxUint32 {
		return fmt.Errorf("%w: m must be in [1, %d], got %d", ErrRange, uint64(math.MaxUint32), m)
	}
	if t < 1 || t > math.MaxUint32 {
		return fmt.Errorf("%w: t must be in [1, %d], got %d", ErrRange, uint64(math.MaxUint32), t)
	}
	if p < 1 || p > MaxParallelism {
		return fmt.Errorf("%w: p must be in [1, %d], got %d", ErrRange, MaxParallelism, p)
	}
	if m < MemoryPerLane*p {
		return fmt.Errorf("%w: m (%d KiB) must be ≥ 8×p (%d KiB)", ErrRange, m, MemoryPerLane*p)
	}
	return nil
}

// decoder is a cursor over the unparsed remainder of a hash string. Each
// method either consumes a prefix of rest or fails without consuming.
type decoder struct {
	rest string
}

func (d *decoder) done() bool { return d.rest == "" }

// literal consumes lit or fails with ErrGrammar.
func (d *decoder) literal(lit string) error {
	if !strings.HasPrefix(d.rest, lit) {
		return fmt.Errorf("%w: expected %q", ErrGrammar, lit)
	}
	d.rest = d.rest[len(lit):]
	return nil
}

// optional consumes lit when present and reports whether it did.
func (d *decoder) optional(lit string) bool {
	if !strings.HasPrefix(d.rest, lit) {
		return false
	}
	d.rest = d.rest[len(lit):]
	return true
}

func (d *decoder) decimal(name string) (uint64, error) {
	v, rest, err := decimal.Parse(d.rest)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrNumber, name, err)
	}
	d.rest = rest
	return v, nil
}

// binary decodes a Base64 run into dst and returns the decoded length.
func (d *decoder) binary(name string, dst []byte) (int, error) {
	n, rest, err := base64ct.Decode(dst, d.rest)
	switch {
	case errors.Is(err, base64ct.ErrShortBuffer):
		return 0, fmt.Errorf("%w: %s longer than %d bytes", ErrCapacity, name, len(dst))
	case err != nil:
		return 0, fmt.Errorf("%w: %s: %w", ErrBinary, name, err)
	}
	d.rest = rest
	return n, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Encoding
// ──────────────────────────────────────────────────────────────────────────────

// Encode writes the hash string for p into dst, followed by a zero
// terminator, and returns the string length with the terminator excluded.
//
// Segments are emitted in the fixed order of the grammar; keyid and data are
// written only when non-empty, the output only when a salt is present. Each
// write checks the remaining capacity first and fails with [ErrShortBuffer];
// bytes already written are left in dst.
//
// Encode trusts p: ranges and field presence rules are not re-checked. Use
// [Params.Validate] on records that did not come from [Decode].
func Encode(dst []byte, p *Params) (int, error) {
	e := encoder{dst: dst}

	if err := e.literal("$" + Algorithm + "$m="); err != nil {
		return 0, err
	}
	if err := e.decimal(uint64(p.M)); err != nil {
		return 0, err
	}
	if err := e.literal(",t="); err != nil {
		return 0, err
	}
	if err := e.decimal(uint64(p.T)); err != nil {
		return 0, err
	}
	if err := e.literal(",p="); err != nil {
		return 0, err
	}
	if err := e.decimal(uint64(p.P)); err != nil {
		return 0, err
	}
	if p.keyIDLen > 0 {
		if err := e.literal(",keyid="); err != nil {
			return 0, err
		}
		if err := e.binary(p.KeyID()); err != nil {
			return 0, err
		}
	}
	if p.dataLen > 0 {
		if err := e.literal(",data="); err != nil {
			return 0, err
		}
		if err := e.binary(p.AssociatedData()); err != nil {
			return 0, err
		}
	}
	if p.saltLen == 0 {
		return e.n, nil
	}
	if err := e.literal("$"); err != nil {
		return 0, err
	}
	if err := e.binary(p.Salt()); err != nil {
		return 0, err
	}
	if p.outputLen == 0 {
		return e.n, nil
	}
	if err := e.literal("$"); err != nil {
		return 0, err
	}
	if err := e.binary(p.Output()); err != nil {
		return 0, err
	}
	return e.n, nil
}

// encoder appends into a fixed buffer, keeping room for a terminator after
// every write.
type encoder struct {
	dst []byte
	n   int
}

func (e *encoder) free() int { return len(e.dst) - e.n }

func (e *encoder) literal(s string) error {
	if len(s) >= e.free() {
		return fmt.Errorf("%w: need %d more bytes", ErrShortBuffer, len(s)+1-e.free())
	}
	e.n += copy(e.dst[e.n:], s)
	e.dst[e.n] = 0
	return nil
}

func (e *encoder) decimal(v uint64) error {
	var tmp [20]byte
	return e.literal(string(decimal.Append(tmp[:0], v)))
}

func (e *encoder) binary(b []byte) error {
	n, err := base64ct.Encode(e.dst[e.n:], b)
	if err != nil {
		return fmt.Errorf("%w: need %d more bytes",
			ErrShortBuffer, base64ct.EncodedLen(len(b))+1-e.free())
	}
	e.n += n
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Convenience forms
// ──────────────────────────────────────────────────────────────────────────────

// String returns the hash string for p. Fields are not validated.
func (p *Params) String() string {
	var buf [MaxEncodedLen + 1]byte
	n, err := Encode(buf[:], p)
	if err != nil {
		// MaxEncodedLen covers every value the field types can hold.
		panic("hashstring: " + err.Error())
	}
	return string(buf[:n])
}

// EncodedLen returns the length of the hash string for p, terminator
// excluded. A destination for [Encode] needs EncodedLen()+1 bytes.
func (p *Params) EncodedLen() int {
	var buf [MaxEncodedLen + 1]byte
	n, _ := Encode(buf[:], p)
	return n
}

// MarshalText implements [encoding.TextMarshaler]. Unlike [Params.String],
// it refuses records that break the format invariants.
func (p *Params) MarshalText() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	buf := make([]byte, p.EncodedLen()+1)
	n, err := Encode(buf, p)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. On failure p is left
// unchanged.
func (p *Params) UnmarshalText(text []byte) error {
	dec, err := Decode(string(text))
	if err != nil {
		return err
	}
	*p = *dec
	return nil
}
