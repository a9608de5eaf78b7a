package mago

// KaratsubaThreshold is the operand length (in limbs) below which SetSqrAuto
// falls back to schoolbook squaring. A threshold of 2 is correctness-only;
// production-sized thresholds (a few dozen limbs, mirroring the teacher's
// karatsubaThreshold = 40) pay off only once SetMul/SetSqr's O(n^2) constant
// starts to dominate the recursion overhead.
const KaratsubaThreshold = 24

// SetSqrAuto squares x[0:xN] into z, dispatching to Karatsuba recursion for
// operands at or above KaratsubaThreshold and schoolbook SetSqr below it.
// z must have length >= 2*xN and must not alias x.
func SetSqrAuto(z []Word, x []Word, xN int) int {
	if xN < KaratsubaThreshold {
		return SetSqr(z, x, xN)
	}
	scratch := make([]Word, karatsubaScratchLen(xN))
	sqrKaratsuba(z[:2*xN], x[:xN], scratch)
	return NormLen(z, 2*xN)
}

// karatsubaScratchLen returns the limb count SetSqrAuto's recursive helper
// needs for the "s = xLow + xHigh" sum and its square, per §4.1.5's
// "3*k1 + 3 limbs" scratch requirement computed at the top level.
func karatsubaScratchLen(n int) int {
	k1 := n - n/2
	return 3*k1 + 3
}

// sqrKaratsuba squares x into z (len(z) == 2*len(x)) using the split
//
//	n  = len(x), k0 = n/2, k1 = n-k0
//	zLow  = sqr(x[0:k0])
//	zHigh = sqr(x[k0:n])
//	s     = x[0:k0] + x[k0:n]          (k1+1 limbs)
//	zMid  = sqr(s) - zLow - zHigh
//	z     = zLow + zMid*B^k0 + zHigh*B^(2*k0)
//
// scratch must hold at least karatsubaScratchLen(n) limbs.
func sqrKaratsuba(z []Word, x []Word, scratch []Word) {
	n := len(x)
	if n < KaratsubaThreshold {
		SetSqr(z, x, n)
		return
	}

	k0 := n / 2
	k1 := n - k0
	xLow := x[:k0]
	xHigh := x[k0:]

	// zLow and zHigh land directly in their final columns of z.
	zLow := z[:2*k0]
	zHigh := z[2*k0 : 2*k0+2*k1]
	lowScratch := scratch[:karatsubaScratchLen(k0)]
	highScratch := scratch[:karatsubaScratchLen(k1)]
	sqrKaratsuba(zLow, xLow, lowScratch)
	sqrKaratsuba(zHigh, xHigh, highScratch)

	// s = xLow + xHigh, at most k1+1 limbs.
	s := scratch[:k1+1]
	sN := SetAdd(s, xHigh, k1, xLow, k0)
	s = s[:sN]

	mid := scratch[k1+1 : k1+1+2*len(s)]
	midN := SetSqrAuto(mid, s, len(s))
	mid = mid[:midN]

	// mid -= zLow ; mid -= zHigh (magnitude subtraction, mid is the largest
	// of the three by construction since s >= xLow, s >= xHigh).
	zLowN := NormLen(zLow, len(zLow))
	zHighN := NormLen(zHigh, len(zHigh))
	midN = SetSub(mid, mid, midN, zLow[:zLowN], zLowN)
	midN = SetSub(mid, mid, midN, zHigh[:zHighN], zHighN)
	mid = mid[:midN]

	// z += mid << (k0 words)
	addShiftedWords(z, mid, k0)
}

// addShiftedWords computes z += (addend << (wordsShift*32)), word-aligned,
// propagating carry into z's higher limbs. len(z) must be large enough to
// hold the result.
func addShiftedWords(z []Word, addend []Word, wordsShift int) {
	n := len(addend)
	if n == 0 {
		return
	}
	carry := uint64(0)
	for i := 0; i < n; i++ {
		s := uint64(z[wordsShift+i]) + uint64(addend[i]) + carry
		z[wordsShift+i] = Word(s)
		carry = s >> wordBits
	}
	for i := wordsShift + n; carry != 0 && i < len(z); i++ {
		s := uint64(z[i]) + carry
		z[i] = Word(s)
		carry = s >> wordBits
	}
}
