// Copyright 2024 The BigInt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "github.com/migueldecimal128/bigint/internal/mago"

// BigInt is an immutable signed arbitrary-precision integer. The zero
// value is not ready for use; construct one via Zero(), FromInt64,
// FromUint64, or a parse function. Values returned by this package's functions
// are always safe to share across goroutines — nothing about a BigInt is
// ever mutated after it is returned.
type BigInt struct {
	m    meta
	mag  []mago.Word // little-endian magnitude, length == m.length(), no trailing zero limb
}

// bigZero is the canonical zero sentinel: initialized once at package load
// and never mutated. All zero-valued BigInts share this backing array.
var bigZero = &BigInt{m: newMeta(false, 0), mag: nil}

// Zero returns the immutable value 0.
func Zero() *BigInt { return bigZero }

// One returns the immutable value 1.
func One() *BigInt { return FromInt64(1) }

// newBigInt builds a BigInt from a sign and an already-normalized magnitude
// slice that this constructor will take ownership of (callers must not
// retain a mutable alias to mag afterward).
func newBigInt(neg bool, mag []mago.Word) *BigInt {
	n := mago.NormLen(mag, len(mag))
	if n == 0 {
		return bigZero
	}
	return &BigInt{m: newMeta(neg, n), mag: mag[:n]}
}

// FromInt64 converts a signed 64-bit integer to a BigInt.
func FromInt64(x int64) *BigInt {
	neg := x < 0
	ux := uint64(x)
	if neg {
		ux = uint64(-x) // safe: -math.MinInt64 wraps correctly in uint64 arithmetic
	}
	return FromUint64OfSign(neg, ux)
}

// FromUint64 converts an unsigned 64-bit integer to a BigInt.
func FromUint64(x uint64) *BigInt {
	return FromUint64OfSign(false, x)
}

// FromUint64OfSign builds a BigInt with the given sign and unsigned
// magnitude, splitting the narrow width into a sign flag and magnitude as
// §4.3's mixed-width dispatch rules require.
func FromUint64OfSign(neg bool, x uint64) *BigInt {
	if x == 0 {
		return bigZero
	}
	mag := make([]mago.Word, 2)
	mag[0] = mago.Word(x)
	mag[1] = mago.Word(x >> 32)
	return newBigInt(neg, mag)
}

// FromInt32 converts a signed 32-bit integer to a BigInt.
func FromInt32(x int32) *BigInt { return FromInt64(int64(x)) }

// FromUint32 converts an unsigned 32-bit integer to a BigInt.
func FromUint32(x uint32) *BigInt { return FromUint64(uint64(x)) }

// Sign returns -1, 0, or +1 according to whether x is negative, zero, or
// positive.
func (x *BigInt) Sign() int { return x.m.signum() }

// IsZero reports whether x is the value 0.
func (x *BigInt) IsZero() bool { return x.m.length() == 0 }

// BitLen returns the number of bits required to represent |x|, with
// BitLen(0) == 0.
func (x *BigInt) BitLen() int { return mago.BitLen(x.mag, x.m.length()) }

// Clone returns x; since BigInt is immutable there is nothing to copy, but
// Clone exists so callers migrating mutable code have an obvious no-op hook.
func (x *BigInt) Clone() *BigInt { return x }

// Cmp returns -1, 0, or +1 according to whether x < y, x == y, or x > y.
func (x *BigInt) Cmp(y *BigInt) int {
	sx, sy := x.Sign(), y.Sign()
	switch {
	case sx != sy:
		if sx < sy {
			return -1
		}
		return 1
	case sx == 0:
		return 0
	}
	c := mago.Compare(x.mag, x.m.length(), y.mag, y.m.length())
	if sx < 0 {
		return -c
	}
	return c
}

// CmpAbs compares |x| to |y|, ignoring sign.
func (x *BigInt) CmpAbs(y *BigInt) int {
	return mago.Compare(x.mag, x.m.length(), y.mag, y.m.length())
}

// Neg returns -x.
func (x *BigInt) Neg() *BigInt {
	if x.IsZero() {
		return bigZero
	}
	mag := append([]mago.Word(nil), x.mag...)
	return newBigInt(!x.m.negative(), mag)
}

// Abs returns |x|.
func (x *BigInt) Abs() *BigInt {
	if !x.m.negative() {
		return x
	}
	return x.Neg()
}
