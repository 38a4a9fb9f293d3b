// Package hashstring decodes and encodes Argon2i hash strings: the single
// self-describing text a credential store keeps per password.
//
// # Format
//
//	$argon2i$m=<num>,t=<num>,p=<num>[,keyid=<b64>][,data=<b64>][$<b64-salt>[$<b64-output>]]
//
//   - m (memory cost, KiB) and t (time cost) are in [1, 2^32−1];
//     p (parallelism) is in [1, 255]; m must be at least 8×p.
//   - Numbers are minimal decimals: no sign, no leading zeros.
//   - <b64> is unpadded standard Base64 (see package base64ct) with canonical
//     trailing bits.
//   - keyid holds up to 8 bytes and data up to 32; an empty field is omitted
//     along with its ",name=" prefix.
//   - The salt (8–48 bytes) and output (12–64 bytes) are optional, but an
//     output cannot appear without a salt.
//
// Field order is fixed. No whitespace, padding or trailing data is accepted.
//
// # Shapes
//
// A string may stop after the parameter block (a parameters-only string,
// used to publish a policy), after the salt (a salt string, used before the
// output is computed) or carry both salt and output. [Params.Kind] reports
// which.
//
// # Buffers
//
// [Params] keeps each binary field in a fixed array sized to its protocol
// maximum. [Encode] writes into a caller-owned buffer and, like a C string
// writer, needs one spare byte for a zero terminator. Neither function
// allocates or keeps state between calls, so both are safe for concurrent use
// on distinct records.
package hashstring
