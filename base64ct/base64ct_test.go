package base64ct_test

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/hasbyte1/go-argon2-hashstring/base64ct"
)

// pattern returns n deterministic bytes covering the full byte range.
func pattern(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i*37 + 11)
	}
	return b
}

// ──────────────────────────────────────────────────────────────────────────────
// Encoding
// ──────────────────────────────────────────────────────────────────────────────

func TestEncodedLen(t *testing.T) {
	for n := 0; n <= 64; n++ {
		want := base64.RawStdEncoding.EncodedLen(n)
		if got := base64ct.EncodedLen(n); got != want {
			t.Errorf("EncodedLen(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestEncode_MatchesStdlib(t *testing.T) {
	for n := 0; n <= 64; n++ {
		src := pattern(n)
		want := base64.RawStdEncoding.EncodeToString(src)
		if got := base64ct.EncodeToString(src); got != want {
			t.Errorf("len %d: got %q, want %q", n, got, want)
		}
	}
}

func TestEncode_FullAlphabet(t *testing.T) {
	// 48 bytes whose 6-bit groups enumerate 0..63 in order.
	var src []byte
	for v := 0; v < 64; v += 4 {
		src = append(src,
			byte(v<<2|(v+1)>>4),
			byte((v+1)<<4|(v+2)>>2),
			byte((v+2)<<6|(v+3)),
		)
	}
	want := "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	if got := base64ct.EncodeToString(src); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncode_Terminator(t *testing.T) {
	src := []byte("hello")
	buf := bytes.Repeat([]byte{'#'}, 16)
	n, err := base64ct.Encode(buf, src)
	if err != nil {
		t.Fatal(err)
	}
	if string(buf[:n]) != "aGVsbG8" {
		t.Errorf("encoded = %q", buf[:n])
	}
	if buf[n] != 0 {
		t.Errorf("byte after encoding = %#x, want 0", buf[n])
	}
}

func TestEncode_ShortBuffer(t *testing.T) {
	src := pattern(20)
	olen := base64ct.EncodedLen(len(src))

	if _, err := base64ct.Encode(make([]byte, olen+1), src); err != nil {
		t.Errorf("exact capacity: unexpected error %v", err)
	}
	if _, err := base64ct.Encode(make([]byte, olen), src); !errors.Is(err, base64ct.ErrShortBuffer) {
		t.Errorf("no room for terminator: expected ErrShortBuffer, got %v", err)
	}
	if _, err := base64ct.Encode(nil, nil); !errors.Is(err, base64ct.ErrShortBuffer) {
		t.Errorf("nil buffer: expected ErrShortBuffer, got %v", err)
	}
}

func TestAppendEncode_KeepsPrefix(t *testing.T) {
	got := base64ct.AppendEncode([]byte("salt="), []byte{0xff, 0xee})
	if string(got) != "salt=/+4" {
		t.Errorf("got %q", got)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Decoding
// ──────────────────────────────────────────────────────────────────────────────

func TestRoundTrip(t *testing.T) {
	for n := 0; n <= 64; n++ {
		src := pattern(n)
		enc := base64ct.EncodeToString(src)
		got, err := base64ct.DecodeString(enc)
		if err != nil {
			t.Fatalf("len %d: DecodeString(%q): %v", n, enc, err)
		}
		if !bytes.Equal(got, src) {
			t.Errorf("len %d: round-trip mismatch", n)
		}
	}
}

func TestDecode_StopsAtNonAlphabet(t *testing.T) {
	var buf [8]byte
	n, rest, err := base64ct.Decode(buf[:], "Hj5+dsK0$4fXX")
	if err != nil {
		t.Fatal(err)
	}
	if n != 6 {
		t.Errorf("n = %d, want 6", n)
	}
	if rest != "$4fXX" {
		t.Errorf("rest = %q, want %q", rest, "$4fXX")
	}
}

func TestDecode_EmptyInput(t *testing.T) {
	n, rest, err := base64ct.Decode(nil, ",data=")
	if err != nil || n != 0 || rest != ",data=" {
		t.Errorf("n=%d rest=%q err=%v", n, rest, err)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		cap  int
		want error
	}{
		{"length 1 mod 4", "Hj5+dsK0Z", 8, base64ct.ErrTrailingBits},
		{"single char", "A", 8, base64ct.ErrTrailingBits},
		{"nonzero 4 leftover bits", "Hj5+dsK0ZR", 8, base64ct.ErrNonCanonical},
		{"nonzero 2 leftover bits", "Hj5+dsK0ZQB", 8, base64ct.ErrNonCanonical},
		{"over capacity", "Mwmcv5/avkXJ", 8, base64ct.ErrShortBuffer},
		{"zero capacity", "AA", 0, base64ct.ErrShortBuffer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, tt.cap)
			_, _, err := base64ct.Decode(buf, tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestDecode_CanonicalTail(t *testing.T) {
	for _, in := range []string{"Hj5+dsK0ZQ", "Hj5+dsK0ZQA"} {
		var buf [8]byte
		if _, rest, err := base64ct.Decode(buf[:], in); err != nil || rest != "" {
			t.Errorf("Decode(%q): rest=%q err=%v", in, rest, err)
		}
	}
}

func TestDecode_ZeroValueCharacter(t *testing.T) {
	// 'A' decodes to 0 and must not be mistaken for a stop byte.
	got, err := base64ct.DecodeString("AAAA")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{0, 0, 0}) {
		t.Errorf("got %x", got)
	}
}

func TestDecodeString_InvalidChar(t *testing.T) {
	for _, in := range []string{"AAAA=", "AA AA", "AA\x00A", "AA-_"} {
		if _, err := base64ct.DecodeString(in); !errors.Is(err, base64ct.ErrInvalidChar) {
			t.Errorf("DecodeString(%q): expected ErrInvalidChar, got %v", in, err)
		}
	}
}

func TestDecode_EveryByteValue(t *testing.T) {
	alphabet := "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	for c := 0; c < 256; c++ {
		var buf [1]byte
		s := string([]byte{byte(c), 'A'})
		n, rest, err := base64ct.Decode(buf[:], s)
		idx := bytes.IndexByte([]byte(alphabet), byte(c))
		if idx < 0 {
			if err != nil || n != 0 || rest != s {
				t.Errorf("byte %#x: expected stop, got n=%d rest=%q err=%v", c, n, rest, err)
			}
			continue
		}
		if err != nil || n != 1 || buf[0] != byte(idx<<2) {
			t.Errorf("byte %q: n=%d val=%#x err=%v", c, n, buf[0], err)
		}
	}
}
