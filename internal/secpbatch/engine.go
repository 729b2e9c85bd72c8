// Package secpbatch implements the batched secp256k1 search loop: amortizing
// one modular inversion across many candidate keys per batch via Montgomery's
// trick, and advancing through consecutive multiples of the generator with a
// specialized Jacobian+affine addition rather than the general group-law API.
// Ported from original_source/vanitygen.c's engine()/my_secp256k1_gej_add_ge_var()/
// my_secp256k1_fe_inv_all_gej_var(), expressed over btcec/v2's FieldVal and
// JacobianPoint types instead of a vendored libsecp256k1.
package secpbatch

import (
	"context"
	"crypto/rand"
	"io"
	"sync/atomic"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/coralbyte/vanitybtc/internal/hash160fast"
	"github.com/coralbyte/vanitybtc/internal/pattern"
)

// STEP is the number of secp256k1 additions batched between modular
// inversions. 3072 matches the original implementation's tuning: large
// enough to amortize one inversion's cost across many additions, small
// enough that the batch buffers stay cache-resident.
const STEP = 3072

// affinePoint is a lightweight (x, y) pair, avoiding the validation and
// allocation overhead of a full btcec.PublicKey for points that only ever
// feed the hot-path hash.
type affinePoint struct {
	X, Y btcec.FieldVal
}

// Engine holds one worker's batch state: STEP-sized Jacobian and affine
// buffers, scratch field elements for the inversion tree, and the fixed
// generator used as the right-hand operand of every addition.
type Engine struct {
	base [STEP]btcec.JacobianPoint
	rslt [STEP]affinePoint
	inv  [STEP]btcec.FieldVal

	g affinePoint // the generator G, affine

	hasher *hash160fast.Hasher
}

// NewEngine builds an Engine with its generator point precomputed.
func NewEngine() *Engine {
	e := &Engine{hasher: hash160fast.New()}

	var one btcec.ModNScalar
	one.SetInt(1)
	var gj btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(&one, &gj)
	gj.ToAffine()
	e.g.X.Set(&gj.X)
	e.g.Y.Set(&gj.Y)

	return e
}

// Rekey draws 32 bytes from r and returns them as the next private key to
// search from, resampling when the most significant 64 bits are zero (spec's
// degenerate-near-zero-start heuristic). privkey is big-endian.
func Rekey(r io.Reader) ([32]byte, error) {
	var b [32]byte
	for {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return b, err
		}
		zero := true
		for i := 0; i < 8; i++ {
			if b[i] != 0 {
				zero = false
				break
			}
		}
		if !zero {
			return b, nil
		}
	}
}

// Run executes the worker's main loop: rekey, fill a STEP-sized batch of
// consecutive multiples of G starting at k+1, batch-invert to affine, scan
// for a pattern hit, and either rekey (on hit) or step forward by STEP (on a
// clean pass). Exits when ctx is done.
func (e *Engine) Run(ctx context.Context, table *pattern.Table, counter *uint64, hits chan<- [52]byte) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		privkey, err := Rekey(rand.Reader)
		if err != nil {
			return err
		}

		var scalar btcec.ModNScalar
		scalar.SetByteSlice(privkey[:])
		btcec.ScalarBaseMultNonConst(&scalar, &e.base[STEP-1])

		hit := false
		for !hit {
			select {
			case <-ctx.Done():
				return nil
			default:
			}

			e.fillBatch()
			e.batchToAffine()

			for k := 0; k < STEP; k++ {
				atomic.AddUint64(counter, 1)

				var pub [33]byte
				if e.rslt[k].Y.IsOdd() {
					pub[0] = 0x03
				} else {
					pub[0] = 0x02
				}
				xb := e.rslt[k].X.Bytes()
				copy(pub[1:], xb[:])

				h160 := e.hasher.Hash160(&pub)
				if !table.Contains(h160) {
					continue
				}

				privHit := addSmallBE(privkey, uint64(k+1))
				var rec [52]byte
				copy(rec[:32], privHit[:])
				copy(rec[32:], h160[:])

				select {
				case hits <- rec:
				case <-ctx.Done():
					return nil
				}
				hit = true
				break
			}

			if !hit {
				privkey = addSmallBE(privkey, STEP)
			}
		}
	}
}

// fillBatch advances the chain: base[i] := base[(i-1) mod STEP] + G, for
// i = 0..STEP-1. Because base[STEP-1] persists across calls, each call
// continues the chain from the previous batch without recomputing a scalar
// multiplication.
func (e *Engine) fillBatch() {
	addJacobianAffine(&e.base[0], &e.base[STEP-1], &e.g)
	for k := 1; k < STEP; k++ {
		addJacobianAffine(&e.base[k], &e.base[k-1], &e.g)
	}
}

// batchToAffine converts all STEP Jacobian points to affine using
// Montgomery's trick: one field inversion amortized across the batch.
func (e *Engine) batchToAffine() {
	e.inv[0].Set(&e.base[0].Z)
	for i := 1; i < STEP; i++ {
		e.inv[i].Mul2(&e.inv[i-1], &e.base[i].Z)
	}

	var u btcec.FieldVal
	u.Set(&e.inv[STEP-1])
	u.Inverse()

	for i := STEP - 1; i > 0; i-- {
		e.inv[i].Mul2(&e.inv[i-1], &u)
		u.Mul(&e.base[i].Z)
	}
	e.inv[0].Set(&u)

	for i := 0; i < STEP; i++ {
		var zinv2, zinv3 btcec.FieldVal
		zinv2.SquareVal(&e.inv[i])
		zinv3.Mul2(&zinv2, &e.inv[i])

		e.rslt[i].X.Mul2(&e.base[i].X, &zinv2)
		e.rslt[i].Y.Mul2(&e.base[i].Y, &zinv3)
		e.rslt[i].X.Normalize()
		e.rslt[i].Y.Normalize()
	}
}

// addJacobianAffine computes r := a + b where a is Jacobian and b is affine
// (Z implicitly 1), using the specialized formula from
// my_secp256k1_gej_add_ge_var: 8 multiplications, 3 squarings, a handful of
// negations/adds. It does not handle a == b, a == -b, or a at infinity;
// collisions across STEP consecutive multiples of G starting from a random
// base have negligible probability and are out of scope, per spec.
func addJacobianAffine(r, a *btcec.JacobianPoint, b *affinePoint) {
	var z12, u1, u2, s1, s2, h, ii, i2, h2, h3, t btcec.FieldVal

	z12.SquareVal(&a.Z)

	u1.Set(&a.X)
	u1.Normalize()
	u2.Mul2(&b.X, &z12)

	s1.Set(&a.Y)
	s1.Normalize()
	s2.Mul2(&b.Y, &z12)
	s2.Mul(&a.Z)

	h.Set(&u1)
	h.Negate(1)
	h.Add(&u2)

	ii.Set(&s1)
	ii.Negate(1)
	ii.Add(&s2)

	i2.SquareVal(&ii)
	h2.SquareVal(&h)
	h3.Mul2(&h, &h2)

	var rz btcec.FieldVal
	rz.Mul2(&a.Z, &h)

	t.Mul2(&u1, &h2)

	var rx btcec.FieldVal
	rx.Set(&t)
	rx.MulInt(2)
	rx.Add(&h3)
	rx.Negate(3)
	rx.Add(&i2)

	var ry btcec.FieldVal
	ry.Set(&rx)
	ry.Negate(5)
	ry.Add(&t)
	ry.Mul(&ii)

	h3.Mul(&s1)
	h3.Negate(1)
	ry.Add(&h3)

	r.X = rx
	r.Y = ry
	r.Z = rz
}

// addSmallBE adds delta to a 32-byte big-endian value, carrying across the
// whole width. Mirrors the nested-carry-chain increments in engine()/the
// STEP advance, expressed as one routine instead of repeated inline ifs.
func addSmallBE(v [32]byte, delta uint64) [32]byte {
	carry := delta
	for i := 31; i >= 0 && carry > 0; i-- {
		sum := uint64(v[i]) + (carry & 0xff)
		carry >>= 8
		if sum > 0xff {
			sum -= 0x100
			carry++
		}
		v[i] = byte(sum)
	}
	return v
}
