// Package hash160fast computes HASH160 = RIPEMD160(SHA256(x)) over a
// compressed public key using precomposed, fixed-size padding blocks
// instead of a general streaming hash.Hash, since the engine's hot loop
// only ever hashes a single fixed-length input (33 bytes, then 32 bytes).
// The padding tail is written once at construction time; each call only
// mutates the meaningful bytes, avoiding the per-call memset/pad overhead
// a standard library hash.Hash would pay.
package hash160fast

import "math/bits"

// Hasher holds the two fixed 64-byte blocks the engine reuses across every
// candidate: one laid out for a 33-byte SHA-256 input (the compressed
// public key), one for a 32-byte RIPEMD-160 input (the SHA-256 digest).
type Hasher struct {
	shaBlock [64]byte
	rmdBlock [64]byte
}

// New returns a Hasher with both padding blocks precomposed.
func New() *Hasher {
	h := &Hasher{}

	// SHA-256 block for a 33-byte message: terminator at offset 33,
	// big-endian bit-length (264) in the last 2 bytes.
	h.shaBlock[33] = 0x80
	h.shaBlock[62] = byte((33 * 8) >> 8)
	h.shaBlock[63] = byte((33 * 8) & 0xff)

	// RIPEMD-160 block for a 32-byte message: terminator at offset 32,
	// little-endian bit-length (256) at offsets 56-57.
	h.rmdBlock[32] = 0x80
	h.rmdBlock[56] = byte((32 * 8) & 0xff)
	h.rmdBlock[57] = byte((32 * 8) >> 8)

	return h
}

// Hash160 computes RIPEMD160(SHA256(pub)) for a 33-byte compressed public
// key, writing through the Hasher's preallocated blocks.
func (h *Hasher) Hash160(pub *[33]byte) [20]byte {
	copy(h.shaBlock[:33], pub[:])
	var shaDigest [32]byte
	sha256Block(&shaDigest, &h.shaBlock)

	copy(h.rmdBlock[:32], shaDigest[:])
	var out [20]byte
	ripemd160Block(&out, &h.rmdBlock)
	return out
}

func ror(x uint32, n uint) uint32 { return bits.RotateLeft32(x, -int(n)) }
func rol(x uint32, n uint) uint32 { return bits.RotateLeft32(x, int(n)) }

var sha256K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// sha256Block runs the single-block SHA-256 compression function over a
// freshly composed 64-byte padded block (the standard IV each time, since
// every hashed message here fits in exactly one block).
func sha256Block(out *[32]byte, block *[64]byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = uint32(block[i*4])<<24 | uint32(block[i*4+1])<<16 | uint32(block[i*4+2])<<8 | uint32(block[i*4+3])
	}
	for t := 16; t < 64; t++ {
		s0 := ror(w[t-15], 7) ^ ror(w[t-15], 18) ^ (w[t-15] >> 3)
		s1 := ror(w[t-2], 17) ^ ror(w[t-2], 19) ^ (w[t-2] >> 10)
		w[t] = w[t-16] + s0 + w[t-7] + s1
	}

	a, b, c, d := uint32(0x6a09e667), uint32(0xbb67ae85), uint32(0x3c6ef372), uint32(0xa54ff53a)
	e, f, g, h := uint32(0x510e527f), uint32(0x9b05688c), uint32(0x1f83d9ab), uint32(0x5be0cd19)

	for t := 0; t < 64; t++ {
		s3 := ror(e, 6) ^ ror(e, 11) ^ ror(e, 25)
		f1 := g ^ (e & (f ^ g))
		temp1 := h + s3 + f1 + sha256K[t] + w[t]
		s2 := ror(a, 2) ^ ror(a, 13) ^ ror(a, 22)
		f0 := (a & b) | (c & (a | b))
		temp2 := s2 + f0

		h, g, f = g, f, e
		e = d + temp1
		d, c, b = c, b, a
		a = temp1 + temp2
	}

	digest := [8]uint32{
		0x6a09e667 + a, 0xbb67ae85 + b, 0x3c6ef372 + c, 0xa54ff53a + d,
		0x510e527f + e, 0x9b05688c + f, 0x1f83d9ab + g, 0x5be0cd19 + h,
	}
	for i, v := range digest {
		out[i*4] = byte(v >> 24)
		out[i*4+1] = byte(v >> 16)
		out[i*4+2] = byte(v >> 8)
		out[i*4+3] = byte(v)
	}
}

const (
	rmdK1, rmdK2, rmdK3, rmdK4, rmdK5     = 0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xa953fd4e
	rmdKK1, rmdKK2, rmdKK3, rmdKK4, rmdKK5 = 0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x7a6d76e9, 0x00000000
)

func rmdF1(x, y, z uint32) uint32 { return x ^ y ^ z }
func rmdF2(x, y, z uint32) uint32 { return z ^ (x & (y ^ z)) }
func rmdF3(x, y, z uint32) uint32 { return (x | ^y) ^ z }
func rmdF4(x, y, z uint32) uint32 { return y ^ (z & (x ^ y)) }
func rmdF5(x, y, z uint32) uint32 { return x ^ (y | ^z) }

// ripemd160Block runs the single-block RIPEMD-160 compression function,
// grounded directly on original_source/rmd160.c's rmd160_transform (its
// dual-lane schedule and shift tables are reproduced verbatim below).
func ripemd160Block(out *[20]byte, block *[64]byte) {
	var in [16]uint32
	for i := 0; i < 16; i++ {
		in[i] = uint32(block[i*4]) | uint32(block[i*4+1])<<8 | uint32(block[i*4+2])<<16 | uint32(block[i*4+3])<<24
	}

	state := [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}

	aa, bb, cc, dd, ee := state[0], state[1], state[2], state[3], state[4]
	aaa, bbb, ccc, ddd, eee := state[0], state[1], state[2], state[3], state[4]

	round := func(a, b, c, d, e *uint32, f func(x, y, z uint32) uint32, k uint32, x uint32, s uint) {
		*a += f(*b, *c, *d) + x + k
		*a = rol(*a, s) + *e
		*c = rol(*c, 10)
	}

	// round 1: left lane
	round(&aa, &bb, &cc, &dd, &ee, rmdF1, rmdK1, in[0], 11)
	round(&ee, &aa, &bb, &cc, &dd, rmdF1, rmdK1, in[1], 14)
	round(&dd, &ee, &aa, &bb, &cc, rmdF1, rmdK1, in[2], 15)
	round(&cc, &dd, &ee, &aa, &bb, rmdF1, rmdK1, in[3], 12)
	round(&bb, &cc, &dd, &ee, &aa, rmdF1, rmdK1, in[4], 5)
	round(&aa, &bb, &cc, &dd, &ee, rmdF1, rmdK1, in[5], 8)
	round(&ee, &aa, &bb, &cc, &dd, rmdF1, rmdK1, in[6], 7)
	round(&dd, &ee, &aa, &bb, &cc, rmdF1, rmdK1, in[7], 9)
	round(&cc, &dd, &ee, &aa, &bb, rmdF1, rmdK1, in[8], 11)
	round(&bb, &cc, &dd, &ee, &aa, rmdF1, rmdK1, in[9], 13)
	round(&aa, &bb, &cc, &dd, &ee, rmdF1, rmdK1, in[10], 14)
	round(&ee, &aa, &bb, &cc, &dd, rmdF1, rmdK1, in[11], 15)
	round(&dd, &ee, &aa, &bb, &cc, rmdF1, rmdK1, in[12], 6)
	round(&cc, &dd, &ee, &aa, &bb, rmdF1, rmdK1, in[13], 7)
	round(&bb, &cc, &dd, &ee, &aa, rmdF1, rmdK1, in[14], 9)
	round(&aa, &bb, &cc, &dd, &ee, rmdF1, rmdK1, in[15], 8)

	// round 2: left lane
	round(&ee, &aa, &bb, &cc, &dd, rmdF2, rmdK2, in[7], 7)
	round(&dd, &ee, &aa, &bb, &cc, rmdF2, rmdK2, in[4], 6)
	round(&cc, &dd, &ee, &aa, &bb, rmdF2, rmdK2, in[13], 8)
	round(&bb, &cc, &dd, &ee, &aa, rmdF2, rmdK2, in[1], 13)
	round(&aa, &bb, &cc, &dd, &ee, rmdF2, rmdK2, in[10], 11)
	round(&ee, &aa, &bb, &cc, &dd, rmdF2, rmdK2, in[6], 9)
	round(&dd, &ee, &aa, &bb, &cc, rmdF2, rmdK2, in[15], 7)
	round(&cc, &dd, &ee, &aa, &bb, rmdF2, rmdK2, in[3], 15)
	round(&bb, &cc, &dd, &ee, &aa, rmdF2, rmdK2, in[12], 7)
	round(&aa, &bb, &cc, &dd, &ee, rmdF2, rmdK2, in[0], 12)
	round(&ee, &aa, &bb, &cc, &dd, rmdF2, rmdK2, in[9], 15)
	round(&dd, &ee, &aa, &bb, &cc, rmdF2, rmdK2, in[5], 9)
	round(&cc, &dd, &ee, &aa, &bb, rmdF2, rmdK2, in[2], 11)
	round(&bb, &cc, &dd, &ee, &aa, rmdF2, rmdK2, in[14], 7)
	round(&aa, &bb, &cc, &dd, &ee, rmdF2, rmdK2, in[11], 13)
	round(&ee, &aa, &bb, &cc, &dd, rmdF2, rmdK2, in[8], 12)

	// round 3: left lane
	round(&dd, &ee, &aa, &bb, &cc, rmdF3, rmdK3, in[3], 11)
	round(&cc, &dd, &ee, &aa, &bb, rmdF3, rmdK3, in[10], 13)
	round(&bb, &cc, &dd, &ee, &aa, rmdF3, rmdK3, in[14], 6)
	round(&aa, &bb, &cc, &dd, &ee, rmdF3, rmdK3, in[4], 7)
	round(&ee, &aa, &bb, &cc, &dd, rmdF3, rmdK3, in[9], 14)
	round(&dd, &ee, &aa, &bb, &cc, rmdF3, rmdK3, in[15], 9)
	round(&cc, &dd, &ee, &aa, &bb, rmdF3, rmdK3, in[8], 13)
	round(&bb, &cc, &dd, &ee, &aa, rmdF3, rmdK3, in[1], 15)
	round(&aa, &bb, &cc, &dd, &ee, rmdF3, rmdK3, in[2], 14)
	round(&ee, &aa, &bb, &cc, &dd, rmdF3, rmdK3, in[7], 8)
	round(&dd, &ee, &aa, &bb, &cc, rmdF3, rmdK3, in[0], 13)
	round(&cc, &dd, &ee, &aa, &bb, rmdF3, rmdK3, in[6], 6)
	round(&bb, &cc, &dd, &ee, &aa, rmdF3, rmdK3, in[13], 5)
	round(&aa, &bb, &cc, &dd, &ee, rmdF3, rmdK3, in[11], 12)
	round(&ee, &aa, &bb, &cc, &dd, rmdF3, rmdK3, in[5], 7)
	round(&dd, &ee, &aa, &bb, &cc, rmdF3, rmdK3, in[12], 5)

	// round 4: left lane
	round(&cc, &dd, &ee, &aa, &bb, rmdF4, rmdK4, in[1], 11)
	round(&bb, &cc, &dd, &ee, &aa, rmdF4, rmdK4, in[9], 12)
	round(&aa, &bb, &cc, &dd, &ee, rmdF4, rmdK4, in[11], 14)
	round(&ee, &aa, &bb, &cc, &dd, rmdF4, rmdK4, in[10], 15)
	round(&dd, &ee, &aa, &bb, &cc, rmdF4, rmdK4, in[0], 14)
	round(&cc, &dd, &ee, &aa, &bb, rmdF4, rmdK4, in[8], 15)
	round(&bb, &cc, &dd, &ee, &aa, rmdF4, rmdK4, in[12], 9)
	round(&aa, &bb, &cc, &dd, &ee, rmdF4, rmdK4, in[4], 8)
	round(&ee, &aa, &bb, &cc, &dd, rmdF4, rmdK4, in[13], 9)
	round(&dd, &ee, &aa, &bb, &cc, rmdF4, rmdK4, in[3], 14)
	round(&cc, &dd, &ee, &aa, &bb, rmdF4, rmdK4, in[7], 5)
	round(&bb, &cc, &dd, &ee, &aa, rmdF4, rmdK4, in[15], 6)
	round(&aa, &bb, &cc, &dd, &ee, rmdF4, rmdK4, in[14], 8)
	round(&ee, &aa, &bb, &cc, &dd, rmdF4, rmdK4, in[5], 6)
	round(&dd, &ee, &aa, &bb, &cc, rmdF4, rmdK4, in[6], 5)
	round(&cc, &dd, &ee, &aa, &bb, rmdF4, rmdK4, in[2], 12)

	// round 5: left lane
	round(&bb, &cc, &dd, &ee, &aa, rmdF5, rmdK5, in[4], 9)
	round(&aa, &bb, &cc, &dd, &ee, rmdF5, rmdK5, in[0], 15)
	round(&ee, &aa, &bb, &cc, &dd, rmdF5, rmdK5, in[5], 5)
	round(&dd, &ee, &aa, &bb, &cc, rmdF5, rmdK5, in[9], 11)
	round(&cc, &dd, &ee, &aa, &bb, rmdF5, rmdK5, in[7], 6)
	round(&bb, &cc, &dd, &ee, &aa, rmdF5, rmdK5, in[12], 8)
	round(&aa, &bb, &cc, &dd, &ee, rmdF5, rmdK5, in[2], 13)
	round(&ee, &aa, &bb, &cc, &dd, rmdF5, rmdK5, in[10], 12)
	round(&dd, &ee, &aa, &bb, &cc, rmdF5, rmdK5, in[14], 5)
	round(&cc, &dd, &ee, &aa, &bb, rmdF5, rmdK5, in[1], 12)
	round(&bb, &cc, &dd, &ee, &aa, rmdF5, rmdK5, in[3], 13)
	round(&aa, &bb, &cc, &dd, &ee, rmdF5, rmdK5, in[8], 14)
	round(&ee, &aa, &bb, &cc, &dd, rmdF5, rmdK5, in[11], 11)
	round(&dd, &ee, &aa, &bb, &cc, rmdF5, rmdK5, in[6], 8)
	round(&cc, &dd, &ee, &aa, &bb, rmdF5, rmdK5, in[15], 5)
	round(&bb, &cc, &dd, &ee, &aa, rmdF5, rmdK5, in[13], 6)

	// round 1: right lane
	round(&aaa, &bbb, &ccc, &ddd, &eee, rmdF5, rmdKK1, in[5], 8)
	round(&eee, &aaa, &bbb, &ccc, &ddd, rmdF5, rmdKK1, in[14], 9)
	round(&ddd, &eee, &aaa, &bbb, &ccc, rmdF5, rmdKK1, in[7], 9)
	round(&ccc, &ddd, &eee, &aaa, &bbb, rmdF5, rmdKK1, in[0], 11)
	round(&bbb, &ccc, &ddd, &eee, &aaa, rmdF5, rmdKK1, in[9], 13)
	round(&aaa, &bbb, &ccc, &ddd, &eee, rmdF5, rmdKK1, in[2], 15)
	round(&eee, &aaa, &bbb, &ccc, &ddd, rmdF5, rmdKK1, in[11], 15)
	round(&ddd, &eee, &aaa, &bbb, &ccc, rmdF5, rmdKK1, in[4], 5)
	round(&ccc, &ddd, &eee, &aaa, &bbb, rmdF5, rmdKK1, in[13], 7)
	round(&bbb, &ccc, &ddd, &eee, &aaa, rmdF5, rmdKK1, in[6], 7)
	round(&aaa, &bbb, &ccc, &ddd, &eee, rmdF5, rmdKK1, in[15], 8)
	round(&eee, &aaa, &bbb, &ccc, &ddd, rmdF5, rmdKK1, in[8], 11)
	round(&ddd, &eee, &aaa, &bbb, &ccc, rmdF5, rmdKK1, in[1], 14)
	round(&ccc, &ddd, &eee, &aaa, &bbb, rmdF5, rmdKK1, in[10], 14)
	round(&bbb, &ccc, &ddd, &eee, &aaa, rmdF5, rmdKK1, in[3], 12)
	round(&aaa, &bbb, &ccc, &ddd, &eee, rmdF5, rmdKK1, in[12], 6)

	// round 2: right lane
	round(&eee, &aaa, &bbb, &ccc, &ddd, rmdF4, rmdKK2, in[6], 9)
	round(&ddd, &eee, &aaa, &bbb, &ccc, rmdF4, rmdKK2, in[11], 13)
	round(&ccc, &ddd, &eee, &aaa, &bbb, rmdF4, rmdKK2, in[3], 15)
	round(&bbb, &ccc, &ddd, &eee, &aaa, rmdF4, rmdKK2, in[7], 7)
	round(&aaa, &bbb, &ccc, &ddd, &eee, rmdF4, rmdKK2, in[0], 12)
	round(&eee, &aaa, &bbb, &ccc, &ddd, rmdF4, rmdKK2, in[13], 8)
	round(&ddd, &eee, &aaa, &bbb, &ccc, rmdF4, rmdKK2, in[5], 9)
	round(&ccc, &ddd, &eee, &aaa, &bbb, rmdF4, rmdKK2, in[10], 11)
	round(&bbb, &ccc, &ddd, &eee, &aaa, rmdF4, rmdKK2, in[14], 7)
	round(&aaa, &bbb, &ccc, &ddd, &eee, rmdF4, rmdKK2, in[15], 7)
	round(&eee, &aaa, &bbb, &ccc, &ddd, rmdF4, rmdKK2, in[8], 12)
	round(&ddd, &eee, &aaa, &bbb, &ccc, rmdF4, rmdKK2, in[12], 7)
	round(&ccc, &ddd, &eee, &aaa, &bbb, rmdF4, rmdKK2, in[4], 6)
	round(&bbb, &ccc, &ddd, &eee, &aaa, rmdF4, rmdKK2, in[9], 15)
	round(&aaa, &bbb, &ccc, &ddd, &eee, rmdF4, rmdKK2, in[1], 13)
	round(&eee, &aaa, &bbb, &ccc, &ddd, rmdF4, rmdKK2, in[2], 11)

	// round 3: right lane
	round(&ddd, &eee, &aaa, &bbb, &ccc, rmdF3, rmdKK3, in[15], 9)
	round(&ccc, &ddd, &eee, &aaa, &bbb, rmdF3, rmdKK3, in[5], 7)
	round(&bbb, &ccc, &ddd, &eee, &aaa, rmdF3, rmdKK3, in[1], 15)
	round(&aaa, &bbb, &ccc, &ddd, &eee, rmdF3, rmdKK3, in[3], 11)
	round(&eee, &aaa, &bbb, &ccc, &ddd, rmdF3, rmdKK3, in[7], 8)
	round(&ddd, &eee, &aaa, &bbb, &ccc, rmdF3, rmdKK3, in[14], 6)
	round(&ccc, &ddd, &eee, &aaa, &bbb, rmdF3, rmdKK3, in[6], 6)
	round(&bbb, &ccc, &ddd, &eee, &aaa, rmdF3, rmdKK3, in[9], 14)
	round(&aaa, &bbb, &ccc, &ddd, &eee, rmdF3, rmdKK3, in[11], 12)
	round(&eee, &aaa, &bbb, &ccc, &ddd, rmdF3, rmdKK3, in[8], 13)
	round(&ddd, &eee, &aaa, &bbb, &ccc, rmdF3, rmdKK3, in[12], 5)
	round(&ccc, &ddd, &eee, &aaa, &bbb, rmdF3, rmdKK3, in[2], 14)
	round(&bbb, &ccc, &ddd, &eee, &aaa, rmdF3, rmdKK3, in[10], 13)
	round(&aaa, &bbb, &ccc, &ddd, &eee, rmdF3, rmdKK3, in[0], 13)
	round(&eee, &aaa, &bbb, &ccc, &ddd, rmdF3, rmdKK3, in[4], 7)
	round(&ddd, &eee, &aaa, &bbb, &ccc, rmdF3, rmdKK3, in[13], 5)

	// round 4: right lane
	round(&ccc, &ddd, &eee, &aaa, &bbb, rmdF2, rmdKK4, in[8], 15)
	round(&bbb, &ccc, &ddd, &eee, &aaa, rmdF2, rmdKK4, in[6], 5)
	round(&aaa, &bbb, &ccc, &ddd, &eee, rmdF2, rmdKK4, in[4], 8)
	round(&eee, &aaa, &bbb, &ccc, &ddd, rmdF2, rmdKK4, in[1], 11)
	round(&ddd, &eee, &aaa, &bbb, &ccc, rmdF2, rmdKK4, in[3], 14)
	round(&ccc, &ddd, &eee, &aaa, &bbb, rmdF2, rmdKK4, in[11], 14)
	round(&bbb, &ccc, &ddd, &eee, &aaa, rmdF2, rmdKK4, in[15], 6)
	round(&aaa, &bbb, &ccc, &ddd, &eee, rmdF2, rmdKK4, in[0], 14)
	round(&eee, &aaa, &bbb, &ccc, &ddd, rmdF2, rmdKK4, in[5], 6)
	round(&ddd, &eee, &aaa, &bbb, &ccc, rmdF2, rmdKK4, in[12], 9)
	round(&ccc, &ddd, &eee, &aaa, &bbb, rmdF2, rmdKK4, in[2], 12)
	round(&bbb, &ccc, &ddd, &eee, &aaa, rmdF2, rmdKK4, in[13], 9)
	round(&aaa, &bbb, &ccc, &ddd, &eee, rmdF2, rmdKK4, in[9], 12)
	round(&eee, &aaa, &bbb, &ccc, &ddd, rmdF2, rmdKK4, in[7], 5)
	round(&ddd, &eee, &aaa, &bbb, &ccc, rmdF2, rmdKK4, in[10], 15)
	round(&ccc, &ddd, &eee, &aaa, &bbb, rmdF2, rmdKK4, in[14], 8)

	// round 5: right lane
	round(&bbb, &ccc, &ddd, &eee, &aaa, rmdF1, rmdKK5, in[12], 8)
	round(&aaa, &bbb, &ccc, &ddd, &eee, rmdF1, rmdKK5, in[15], 5)
	round(&eee, &aaa, &bbb, &ccc, &ddd, rmdF1, rmdKK5, in[10], 12)
	round(&ddd, &eee, &aaa, &bbb, &ccc, rmdF1, rmdKK5, in[4], 9)
	round(&ccc, &ddd, &eee, &aaa, &bbb, rmdF1, rmdKK5, in[1], 12)
	round(&bbb, &ccc, &ddd, &eee, &aaa, rmdF1, rmdKK5, in[5], 5)
	round(&aaa, &bbb, &ccc, &ddd, &eee, rmdF1, rmdKK5, in[8], 14)
	round(&eee, &aaa, &bbb, &ccc, &ddd, rmdF1, rmdKK5, in[7], 6)
	round(&ddd, &eee, &aaa, &bbb, &ccc, rmdF1, rmdKK5, in[6], 8)
	round(&ccc, &ddd, &eee, &aaa, &bbb, rmdF1, rmdKK5, in[2], 13)
	round(&bbb, &ccc, &ddd, &eee, &aaa, rmdF1, rmdKK5, in[13], 6)
	round(&aaa, &bbb, &ccc, &ddd, &eee, rmdF1, rmdKK5, in[14], 5)
	round(&eee, &aaa, &bbb, &ccc, &ddd, rmdF1, rmdKK5, in[0], 15)
	round(&ddd, &eee, &aaa, &bbb, &ccc, rmdF1, rmdKK5, in[3], 13)
	round(&ccc, &ddd, &eee, &aaa, &bbb, rmdF1, rmdKK5, in[9], 11)
	round(&bbb, &ccc, &ddd, &eee, &aaa, rmdF1, rmdKK5, in[11], 11)

	// combine results
	t := state[1] + cc + ddd
	state[1] = state[2] + dd + eee
	state[2] = state[3] + ee + aaa
	state[3] = state[4] + aa + bbb
	state[4] = state[0] + bb + ccc
	state[0] = t

	for i, v := range state {
		out[i*4] = byte(v)
		out[i*4+1] = byte(v >> 8)
		out[i*4+2] = byte(v >> 16)
		out[i*4+3] = byte(v >> 24)
	}
}
