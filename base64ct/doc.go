// Package base64ct implements unpadded standard-alphabet Base64
// (A–Z a–z 0–9 + /, no "=") with constant-shape character mapping.
//
// The byte↔character conversion is computed with arithmetic and bit masks
// rather than a lookup table or a comparison ladder, so the time spent on a
// character does not depend on its value. Hash strings carry salts and
// password-derived outputs; this property keeps their encoding from leaking
// through timing and must be preserved by any change to this package.
//
// Unlike [encoding/base64], the decoder is prefix-oriented: it consumes
// alphabet characters and hands back the first byte it did not recognise,
// which lets a grammar-driven parser continue from there. It also writes into
// caller-owned, fixed-capacity buffers and rejects non-canonical encodings.
package base64ct
