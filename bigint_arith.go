package bigint

import "github.com/migueldecimal128/bigint/internal/mago"

// Add returns x + y.
func (x *BigInt) Add(y *BigInt) *BigInt {
	return newBigInt(signedAdd(x.m, x.mag, y.m, y.mag))
}

// Sub returns x - y.
func (x *BigInt) Sub(y *BigInt) *BigInt {
	return newBigInt(signedAdd(x.m, x.mag, y.m.negated(), y.mag))
}

// signedAdd implements §4.1.3's signed dispatch over unsigned primitives:
// same sign is an unsigned add that keeps the sign; opposite signs compare
// magnitudes and subtract the smaller from the larger, taking the larger's
// sign (equal magnitudes yield zero).
func signedAdd(xm meta, x []mago.Word, ym meta, y []mago.Word) (bool, []mago.Word) {
	xN, yN := xm.length(), ym.length()
	if xm.negative() == ym.negative() {
		z := make([]mago.Word, maxInt(xN, yN)+1)
		n := mago.SetAdd(z, x, xN, y, yN)
		return xm.negative(), z[:n]
	}
	switch mago.Compare(x, xN, y, yN) {
	case 0:
		return false, nil
	case 1:
		z := make([]mago.Word, xN)
		n := mago.SetSub(z, x, xN, y, yN)
		return xm.negative(), z[:n]
	default:
		z := make([]mago.Word, yN)
		n := mago.SetSub(z, y, yN, x, xN)
		return ym.negative(), z[:n]
	}
}

// Mul returns x * y.
func (x *BigInt) Mul(y *BigInt) *BigInt {
	if x.IsZero() || y.IsZero() {
		return bigZero
	}
	xN, yN := x.m.length(), y.m.length()
	z := make([]mago.Word, xN+yN)
	mago.SetMul(z, x.mag, xN, y.mag, yN)
	return newBigInt(x.m.negative() != y.m.negative(), z)
}

// Sqr returns x * x, using the squaring fast path (schoolbook with
// symmetric cross-term doubling, or Karatsuba above the recursion
// threshold — see internal/mago's SetSqrAuto).
func (x *BigInt) Sqr() *BigInt {
	if x.IsZero() {
		return bigZero
	}
	xN := x.m.length()
	z := make([]mago.Word, 2*xN)
	mago.SetSqrAuto(z, x.mag, xN)
	return newBigInt(false, z)
}

// QuoRem returns the quotient and remainder of x/y, truncating toward
// zero: x == quo*y + rem, sign(rem) is 0 or sign(x), and |rem| < |y|.
func (x *BigInt) QuoRem(y *BigInt) (quo, rem *BigInt) {
	if y.IsZero() {
		panic(newError(DivisionByZero, "QuoRem"))
	}
	if x.IsZero() {
		return bigZero, bigZero
	}
	xN, yN := x.m.length(), y.m.length()
	q := make([]mago.Word, maxInt(xN-yN+1, 1))
	un := make([]mago.Word, maxInt(xN+1, yN))
	qN := mago.SetDiv(q, un, xN, x.mag, y.mag, yN)
	quo = newBigInt(x.m.negative() != y.m.negative(), q[:qN])
	rem = newBigInt(x.m.negative(), un[:yN])
	return quo, rem
}

// Quo returns the truncating quotient x/y.
func (x *BigInt) Quo(y *BigInt) *BigInt { q, _ := x.QuoRem(y); return q }

// Rem returns the truncating remainder x%y.
func (x *BigInt) Rem(y *BigInt) *BigInt { _, r := x.QuoRem(y); return r }

// Mod returns the Euclidean-style modulus of x by a strictly positive y:
// 0 <= Mod(x,y) < y. y must be positive (spec.md §4.1.6's "modulus
// requires a non-negative divisor").
func (x *BigInt) Mod(y *BigInt) *BigInt {
	if y.Sign() <= 0 {
		panic(newError(NegativeModulus, "Mod"))
	}
	r := x.Rem(y)
	if r.Sign() < 0 {
		return r.Add(y)
	}
	return r
}

// Shl returns x << bitCount.
func (x *BigInt) Shl(bitCount int) *BigInt {
	if bitCount < 0 {
		panic(newError(NegativeArgument, "Shl: negative bit count"))
	}
	if x.IsZero() {
		return bigZero
	}
	xN := x.m.length()
	z := make([]mago.Word, xN+bitCount/32+1)
	n := mago.SetShiftLeft(z, x.mag, xN, bitCount)
	return newBigInt(x.m.negative(), z[:n])
}

// Shr returns x >> bitCount using arithmetic shift semantics: for a
// negative x, if any bit shifted out was set, the magnitude of the logical
// shift result is incremented by one so the value floors toward -infinity,
// matching two's-complement sign extension.
func (x *BigInt) Shr(bitCount int) *BigInt {
	if bitCount < 0 {
		panic(newError(NegativeArgument, "Shr: negative bit count"))
	}
	if x.IsZero() {
		return bigZero
	}
	xN := x.m.length()
	z := make([]mago.Word, xN+1)
	n := mago.SetShiftRight(z, x.mag, xN, bitCount)
	result := newBigInt(x.m.negative(), append([]mago.Word(nil), z[:n]...))
	if x.m.negative() && mago.TestAnyBitInLowerN(x.mag, xN, bitCount) {
		result = result.Sub(One())
	}
	return result
}

// TestBit reports the value of bit i (0 = least significant) of x's
// magnitude.
func (x *BigInt) TestBit(i int) bool {
	if i < 0 {
		panic(newError(NegativeArgument, "TestBit: negative bit index"))
	}
	return mago.TestBit(x.mag, x.m.length(), i)
}

// SetBit returns a copy of x with bit i set.
func (x *BigInt) SetBit(i int) *BigInt {
	if i < 0 {
		panic(newError(NegativeArgument, "SetBit: negative bit index"))
	}
	n := maxInt(x.m.length(), i/32+1)
	z := make([]mago.Word, n)
	rn := mago.SetBit(z, x.mag, x.m.length(), i)
	return newBigInt(x.m.negative(), z[:rn])
}

// ClearBit returns a copy of x with bit i cleared.
func (x *BigInt) ClearBit(i int) *BigInt {
	if i < 0 {
		panic(newError(NegativeArgument, "ClearBit: negative bit index"))
	}
	z := make([]mago.Word, x.m.length())
	rn := mago.ClearBit(z, x.mag, x.m.length(), i)
	return newBigInt(x.m.negative(), z[:rn])
}

// TrailingZeroBits returns the count of consecutive zero low bits of |x|.
func (x *BigInt) TrailingZeroBits() int {
	return mago.CountTrailingZeros(x.mag, x.m.length())
}

// PopCount returns the number of set bits in |x|.
func (x *BigInt) PopCount() int {
	return mago.CountOneBits(x.mag, x.m.length())
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
