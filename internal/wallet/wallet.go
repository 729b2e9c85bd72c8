// Package wallet formats and re-verifies search hits: private key -> WIF,
// hash160 -> Base58Check address, and an independent re-derivation of a
// candidate hit's hash160 from its private key, so a hit is never reported
// on the strength of the hot loop alone. Grounded on original_source/vanitygen.c's
// verify_key()/fmt_privkey()/fmt_address() and Amr-9-HexHunter's bitcoin
// address formatting package.
package wallet

import (
	"github.com/btcsuite/btcd/btcec/v2"
	sha256 "github.com/minio/sha256-simd"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160"
)

const (
	addressVersion = 0x00
	wifVersion     = 0x80
)

// Hash160 computes RIPEMD160(SHA256(b)). Used off the hot path (formatting,
// verification) where sha256-simd's larger call overhead is immaterial; the
// hot loop uses hash160fast instead.
func Hash160(b []byte) [20]byte {
	sum := sha256.Sum256(b)
	h := ripemd160.New()
	h.Write(sum[:])
	var out [20]byte
	copy(out[:], h.Sum(nil))
	return out
}

func checksum(payload []byte) [4]byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	var out [4]byte
	copy(out[:], second[:4])
	return out
}

// base58Check appends a 4-byte double-SHA256 checksum to version||payload and
// Base58-encodes the result.
func base58Check(version byte, payload []byte) string {
	buf := make([]byte, 0, 1+len(payload)+4)
	buf = append(buf, version)
	buf = append(buf, payload...)
	sum := checksum(buf)
	buf = append(buf, sum[:]...)
	return base58.Encode(buf)
}

// EncodeAddress renders a hash160 as a mainnet P2PKH address.
func EncodeAddress(h160 [20]byte) string {
	return base58Check(addressVersion, h160[:])
}

// EncodeWIF renders a 32-byte private key as a compressed-pubkey WIF string.
func EncodeWIF(priv [32]byte) string {
	payload := make([]byte, 0, 33)
	payload = append(payload, priv[:]...)
	payload = append(payload, 0x01) // compressed-pubkey marker
	return base58Check(wifVersion, payload)
}

// CompressedPubkey derives the 33-byte compressed public key for priv.
func CompressedPubkey(priv [32]byte) [33]byte {
	_, pub := btcec.PrivKeyFromBytes(priv[:])
	var out [33]byte
	copy(out[:], pub.SerializeCompressed())
	return out
}

// overflowsScalar reports whether priv, read as a big-endian 256-bit
// integer, is >= the secp256k1 group order n. btcec.PrivKeyFromBytes goes
// through ModNScalar.SetByteSlice, which silently reduces mod n instead of
// rejecting; callers that must not accept an out-of-range key check this
// first.
func overflowsScalar(priv [32]byte) bool {
	var s btcec.ModNScalar
	overflow := s.SetByteSlice(priv[:])
	return overflow
}

// Verify independently re-derives hash160 from priv and checks it against
// want, guarding against a corrupted batch or a field-arithmetic bug
// producing a false hit in the hot loop. A private key that overflows
// scalar reduction (>= n) is rejected outright, per spec: deriving its
// pubkey would silently operate on the reduced value instead.
func Verify(priv [32]byte, want [20]byte) bool {
	if overflowsScalar(priv) {
		return false
	}
	pub := CompressedPubkey(priv)
	got := Hash160(pub[:])
	return got == want
}
