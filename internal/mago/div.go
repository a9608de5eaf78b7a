package mago

import (
	"math/bits"
	"sync"
)

// wordSlicePool recycles the scratch slices divKnuthD needs for the
// normalized divisor and the quotient-correction buffer, mirroring the
// teacher's natPool get/put pattern so that repeated divisions by
// multi-limb divisors don't allocate once the pool has warmed up.
var wordSlicePool sync.Pool

func getWordSlice(n int) []Word {
	if v := wordSlicePool.Get(); v != nil {
		s := v.([]Word)
		if cap(s) >= n {
			return s[:n]
		}
	}
	return make([]Word, n)
}

func putWordSlice(s []Word) {
	wordSlicePool.Put(s)
}

// SetDiv32 performs long division of x[0:xN] by the 32-bit divisor w,
// writing the quotient into q (len(q) >= xN) and returning the quotient's
// normalized length and the 32-bit remainder.
func SetDiv32(q []Word, x []Word, xN int, w Word) (qN int, rem Word) {
	if w == 0 {
		panic("mago: division by zero")
	}
	var r uint64
	for i := xN - 1; i >= 0; i-- {
		cur := r<<wordBits | uint64(x[i])
		q[i] = Word(cur / uint64(w))
		r = cur % uint64(w)
	}
	return NormLen(q, xN), Word(r)
}

// SetDiv64 performs long division of x[0:xN] by the 64-bit divisor dw,
// normalizing the dividend into unBuf (scratch of length >= xN+1) the way
// Knuth Algorithm D normalizes its divisor to make the leading limb's high
// bit set, then un-normalizing the remainder at the end.
func SetDiv64(q []Word, x []Word, xN int, unBuf []Word, dw uint64) (qN int, rem uint64) {
	if dw == 0 {
		panic("mago: division by zero")
	}
	var db [2]Word
	db[0] = Word(dw)
	db[1] = Word(dw >> wordBits)
	dN := NormLen(db[:], 2)
	if dN <= 1 {
		qN, r := SetDiv32(q, x, xN, db[0])
		return qN, uint64(r)
	}
	un := unBuf[:xN+1]
	for i := 0; i < dN && i < len(un); i++ {
		un[i] = 0
	}
	qN = SetDiv(q, un, xN, x, db[:], dN)
	rN := NormLen(un, dN)
	var out uint64
	for i := rN - 1; i >= 0; i-- {
		out = out<<wordBits | uint64(un[i])
	}
	return qN, out
}

// CalcRem64 returns x[0:xN] mod dw for a 64-bit divisor, without computing
// the quotient explicitly (it is discarded into scratch sized the same as
// x, since Algorithm D produces q and r together).
func CalcRem64(x []Word, xN int, dw uint64) uint64 {
	q := make([]Word, xN+1)
	un := make([]Word, xN+1)
	_, r := SetDiv64(q, x, xN, un, dw)
	return r
}

// TrySetDivFastPath attempts the cheap special cases from §4.1.6: if
// |x| < |y| the quotient is 0 and the remainder is x; if xN == yN, a direct
// leading-limb compare may let the quotient be decided without invoking the
// general algorithm. It reports ok=false when neither fast path applies, in
// which case the caller must fall back to SetDiv.
func TrySetDivFastPath(q []Word, r []Word, x []Word, xN int, y []Word, yN int) (qN, rN int, ok bool) {
	cmp := Compare(x, xN, y, yN)
	if cmp < 0 {
		copy(r[:xN], x[:xN])
		return 0, NormLen(r, xN), true
	}
	if cmp == 0 {
		q[0] = 1
		return 1, 0, true
	}
	if xN == yN {
		// x > y, same length: the quotient is at most base/1 in general,
		// but it is cheap to special-case the common quotient-of-1 result
		// (x < 2y) via a single subtract-and-compare; anything larger
		// falls back to the general algorithm below.
		rN := SetSub(r, x, xN, y, yN)
		if Compare(r, rN, y, yN) < 0 {
			q[0] = 1
			return 1, rN, true
		}
		return 0, 0, false
	}
	return 0, 0, false
}

// SetDiv implements Knuth Algorithm D (TAOCP vol. 2, §4.3.1): q = x/y with
// remainder returned in-place through un, the normalized dividend scratch
// the caller supplies (length >= xN+1). y is not modified. Requires yN >= 1;
// panics on division by zero. q must have length >= xN-yN+1.
//
// un doubles as both the normalized-dividend scratch on entry and the
// (denormalized) remainder storage on return, in un[0:yN], mirroring the
// teacher's divLarge which reuses u for both roles.
func SetDiv(q []Word, un []Word, xN int, x []Word, y []Word, yN int) (qN int) {
	if yN == 0 {
		panic("mago: division by zero")
	}
	if qq, rN, ok := TrySetDivFastPath(q, un, x, xN, y, yN); ok {
		for i := rN; i < yN && i < len(un); i++ {
			un[i] = 0
		}
		return qq
	}
	if yN == 1 {
		qN, r := SetDiv32(q, x, xN, y[0])
		un[0] = r
		return qN
	}
	return divKnuthD(q, un, x, xN, y, yN)
}

// divKnuthD is the general m>=n, n>=2 case of Knuth Algorithm D: normalize
// so the divisor's leading limb has its top bit set (improves the 2-limb
// quotient estimate's accuracy), form a trial quotient digit per step using
// the leading two limbs of the remaining dividend against the leading limb
// of the divisor, correct it against the divisor's second limb, subtract,
// and re-add-correct if the trial digit was one too large.
func divKnuthD(q []Word, un []Word, x []Word, xN int, y []Word, yN int) int {
	m := xN - yN
	shift := uint(bits.LeadingZeros32(y[yN-1]))

	vn := getWordSlice(yN)
	defer putWordSlice(vn)
	shiftLeftInto(vn, y[:yN], shift)

	for i := range un[:xN+1] {
		un[i] = 0
	}
	carryOut := shiftLeftInto(un[:xN], x[:xN], shift)
	un[xN] = carryOut

	for j := m; j >= 0; j-- {
		var qhat, rhat uint64
		top := (uint64(un[j+yN]) << wordBits) | uint64(un[j+yN-1])
		vTop := uint64(vn[yN-1])
		if uint64(un[j+yN]) == vTop {
			qhat = uint64(wordMax)
			rhat = top - qhat*vTop
		} else {
			qhat = top / vTop
			rhat = top % vTop
		}
		if yN >= 2 {
			for rhat <= uint64(wordMax) {
				if qhat*uint64(vn[yN-2]) <= rhat<<wordBits|uint64(un[j+yN-2]) {
					break
				}
				qhat--
				rhat += vTop
			}
		}

		borrow := mulSubVVW(un[j:j+yN+1], vn, qhat)
		if borrow != 0 {
			qhat--
			carry := addVV(un[j:j+yN], un[j:j+yN], vn)
			un[j+yN] += carry
		}
		q[j] = Word(qhat)
	}

	shiftRightInto(un[:yN], un[:yN], shift)
	return NormLen(q, m+1)
}

const (
	decimalChunkBase = 1000000000 // 10^9, the largest power of ten fitting a 32-bit limb with room for a carry
	barrettMu        = 0x44B82FA09 // floor(2^64 / 10^9)
)

// DivideByBillionInPlace divides z[0:n] by 10^9 in place, high limb to low,
// using the Barrett reciprocal barrettMu = floor(2^64/10^9) to approximate
// each step's quotient digit via a 64x64->128 multiply-high instead of a
// true 64-bit division. It returns the normalized new length and the
// 32-bit remainder (always < 10^9). This is the core step of the decimal
// print loop: a full base-10^9 long division of the whole magnitude by a
// single-limb divisor, grounded on SetDiv32's high-to-low digit loop but
// specialized to avoid a hardware division per limb.
func DivideByBillionInPlace(z []Word, n int) (newLen int, remainder uint32) {
	var rem uint64
	for i := n - 1; i >= 0; i-- {
		combined := rem<<wordBits | uint64(z[i])
		qHat, rHat := barrettDivModBillion(combined)
		z[i] = Word(qHat)
		rem = uint64(rHat)
	}
	return NormLen(z, n), uint32(rem)
}

// barrettDivModBillion computes combined/10^9 and combined%10^9 for
// combined < 10^9 * 2^32 (so the quotient fits in 32 bits), via the fixed
// -point reciprocal multiply-high followed by a branchless correction: the
// multiply-high quotient estimate can fall short of the true quotient by at
// most one, leaving rHat at most one multiple of the divisor too large, so a
// single masked subtract suffices.
func barrettDivModBillion(combined uint64) (qHat, rHat uint64) {
	hi, _ := bits.Mul64(combined, barrettMu)
	qHat = hi // mu = floor(2^64/10^9), so hi64(combined*mu) is already the quotient estimate
	rHat = combined - qHat*decimalChunkBase
	// rHat < 2*10^9, so the sign bit of rHat-10^9 tells whether a correction
	// is due: mask is all ones when rHat < 10^9, zero otherwise.
	mask := uint64(int64(rHat-decimalChunkBase) >> 63)
	qHat += ^mask & 1
	rHat -= ^mask & decimalChunkBase
	return qHat, rHat
}

// shiftLeftInto left-shifts x[0:len(dst)] by shift bits (0<=shift<32) into
// dst and returns the bits shifted out the top as a new limb.
func shiftLeftInto(dst []Word, x []Word, shift uint) Word {
	if shift == 0 {
		copy(dst, x)
		return 0
	}
	var carry Word
	for i := 0; i < len(dst); i++ {
		dst[i] = x[i]<<shift | carry
		carry = x[i] >> (wordBits - shift)
	}
	return carry
}

func shiftRightInto(dst []Word, x []Word, shift uint) {
	if shift == 0 {
		copy(dst, x)
		return
	}
	var carry Word
	for i := len(dst) - 1; i >= 0; i-- {
		xi := x[i]
		dst[i] = xi>>shift | carry
		carry = xi << (wordBits - shift)
	}
}

// mulSubVVW computes z -= vn*qhat (z has length yN+1, vn length yN) and
// returns the borrow.
func mulSubVVW(z []Word, vn []Word, qhat uint64) Word {
	var borrow, carry uint64
	for i := 0; i < len(vn); i++ {
		p := uint64(vn[i]) * qhat
		p += carry
		carry = p >> wordBits
		sub := uint64(z[i]) - (p & uint64(wordMax)) - borrow
		z[i] = Word(sub)
		borrow = (sub >> wordBits) & 1
	}
	sub := uint64(z[len(vn)]) - carry - borrow
	z[len(vn)] = Word(sub)
	borrow = (sub >> wordBits) & 1
	return Word(borrow)
}

// addVV computes z = x + y over equal-length slices and returns the carry.
func addVV(z, x, y []Word) Word {
	var carry uint64
	for i := range z {
		s := uint64(x[i]) + uint64(y[i]) + carry
		z[i] = Word(s)
		carry = s >> wordBits
	}
	return Word(carry)
}
