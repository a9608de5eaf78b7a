package mago

// SetAdd computes z = x[0:xN] + y[0:yN] as unsigned magnitudes, ripple-
// carrying over the shorter operand and propagating the carry through the
// remainder of the longer one before emitting a final carry limb. z must
// have length >= max(xN, yN)+1; z may alias x or y. Returns the normalized
// length of the result.
func SetAdd(z []Word, x []Word, xN int, y []Word, yN int) int {
	if xN < yN {
		x, y = y, x
		xN, yN = yN, xN
	}
	var carry uint64
	for i := 0; i < yN; i++ {
		sum := uint64(x[i]) + uint64(y[i]) + carry
		z[i] = Word(sum)
		carry = sum >> wordBits
	}
	for i := yN; i < xN; i++ {
		sum := uint64(x[i]) + carry
		z[i] = Word(sum)
		carry = sum >> wordBits
	}
	z[xN] = Word(carry)
	return NormLen(z, xN+1)
}

// SetAdd64 computes z = x[0:xN] + y, where y is a 64-bit scalar treated as
// a 2-limb little-endian operand. z must have length >= max(xN,2)+1.
func SetAdd64(z []Word, x []Word, xN int, y uint64) int {
	var yb [2]Word
	yb[0] = Word(y)
	yb[1] = Word(y >> wordBits)
	yN := NormLen(yb[:], 2)
	return SetAdd(z, x, xN, yb[:], yN)
}

// SetSub computes z = x[0:xN] - y[0:yN], under the precondition that the
// magnitude of x is >= the magnitude of y (the caller must have verified
// this via Compare). Borrow propagates through the remainder of x; the
// result is normalized before return. z may alias x or y.
func SetSub(z []Word, x []Word, xN int, y []Word, yN int) int {
	var borrow uint64
	for i := 0; i < yN; i++ {
		diff := uint64(x[i]) - uint64(y[i]) - borrow
		z[i] = Word(diff)
		borrow = (diff >> wordBits) & 1
	}
	for i := yN; i < xN; i++ {
		diff := uint64(x[i]) - borrow
		z[i] = Word(diff)
		borrow = (diff >> wordBits) & 1
	}
	if borrow != 0 {
		panic("mago: SetSub underflow — caller must ensure |x| >= |y|")
	}
	return NormLen(z, xN)
}

// SetSub64 computes z = x[0:xN] - y where y is a 64-bit scalar, under the
// same |x| >= y precondition as SetSub.
func SetSub64(z []Word, x []Word, xN int, y uint64) int {
	var yb [2]Word
	yb[0] = Word(y)
	yb[1] = Word(y >> wordBits)
	yN := NormLen(yb[:], 2)
	return SetSub(z, x, xN, yb[:], yN)
}
