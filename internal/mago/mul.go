package mago

// SetMul32 computes z = x[0:xN] * w for a single-limb multiplier w, with one
// running carry. The result has length <= xN+1. z must not alias x.
func SetMul32(z []Word, x []Word, xN int, w Word) int {
	var carry uint64
	for i := 0; i < xN; i++ {
		p := uint64(x[i])*uint64(w) + carry
		z[i] = Word(p)
		carry = p >> wordBits
	}
	z[xN] = Word(carry)
	return NormLen(z, xN+1)
}

// SetMul64 computes z = x[0:xN] * dw for a two-limb multiplier dw. The
// result has length <= xN+2. z must not alias x.
func SetMul64(z []Word, x []Word, xN int, dw uint64) int {
	lo := Word(dw)
	hi := Word(dw >> wordBits)

	for i := range z[:xN+2] {
		z[i] = 0
	}
	if xN == 0 {
		return 0
	}

	var carry uint64
	for i := 0; i < xN; i++ {
		p := uint64(x[i])*uint64(lo) + carry
		z[i] = Word(p)
		carry = p >> wordBits
	}
	z[xN] = Word(carry)

	if hi != 0 {
		carry = 0
		for i := 0; i < xN; i++ {
			p := uint64(x[i])*uint64(hi) + uint64(z[i+1]) + carry
			z[i+1] = Word(p)
			carry = p >> wordBits
		}
		z[xN+1] = Word(carry)
	}
	return NormLen(z, xN+2)
}

// SetMul computes the schoolbook product z = x[0:xN] * y[0:yN] in
// O(xN*yN). The result has length <= xN+yN. z must not alias x or y — the
// accumulator layer is responsible for multiplying into scratch and then
// swapping pointers (see the root package's Accumulator.swapPrimaryTmp1).
func SetMul(z []Word, x []Word, xN int, y []Word, yN int) int {
	for i := range z[:xN+yN] {
		z[i] = 0
	}
	if xN == 0 || yN == 0 {
		return 0
	}
	for j := 0; j < yN; j++ {
		yj := y[j]
		if yj == 0 {
			continue
		}
		var carry uint64
		for i := 0; i < xN; i++ {
			p := uint64(x[i])*uint64(yj) + uint64(z[i+j]) + carry
			z[i+j] = Word(p)
			carry = p >> wordBits
		}
		z[xN+j] += Word(carry)
	}
	return NormLen(z, xN+yN)
}

// MulAddWordInPlace computes z = z[0:n]*factor + addend in place (z may
// grow by at most one limb; the caller must ensure len(z) > n). It returns
// the normalized new length. This is the primitive the decimal parser uses
// to fold in a chunk of up to nine decimal digits at a time: z = z*10^k +
// chunk.
func MulAddWordInPlace(z []Word, n int, factor Word, addend Word) int {
	var carry uint64 = uint64(addend)
	for i := 0; i < n; i++ {
		p := uint64(z[i])*uint64(factor) + carry
		z[i] = Word(p)
		carry = p >> wordBits
	}
	z[n] = Word(carry)
	return NormLen(z, n+1)
}

// SetSqr computes the schoolbook square z = x[0:xN]^2. It zeroes
// z[0:2*xN] itself before accumulating; z must not alias x.
//
// Cross terms x[i]*x[j] for i<j are added into column i+j once, then added
// a second time (a fused add, not a left-shift of the accumulated partial
// product, as a left shift of the full running column sum could overflow a
// limb before the doubling could be observed). Diagonal terms x[i]^2 are
// added once at column 2*i.
func SetSqr(z []Word, x []Word, xN int) int {
	for i := range z[:2*xN] {
		z[i] = 0
	}
	if xN == 0 {
		return 0
	}
	for i := 0; i < xN; i++ {
		// Cross terms x[i]*x[j], j > i, added at column i+j — then added a
		// second time to account for the symmetric x[j]*x[i] term.
		var carry uint64
		for j := i + 1; j < xN; j++ {
			p := uint64(x[i])*uint64(x[j]) + uint64(z[i+j]) + carry
			z[i+j] = Word(p)
			carry = p >> wordBits
		}
		k := i + xN
		for carry != 0 && k < 2*xN {
			s := uint64(z[k]) + carry
			z[k] = Word(s)
			carry = s >> wordBits
			k++
		}
	}
	// Double the accumulated cross-term sum via a fused self-add (not a
	// shift) so the per-limb carry chain is observed correctly.
	doubleDestructive(z, 2*xN)
	// Add the diagonal terms x[i]^2 at column 2*i.
	var carry uint64
	for i := 0; i < xN; i++ {
		p := uint64(x[i])*uint64(x[i]) + uint64(z[2*i]) + carry
		z[2*i] = Word(p)
		carry = p >> wordBits
		if carry != 0 {
			k := 2*i + 1
			s := uint64(z[k]) + carry
			z[k] = Word(s)
			carry = s >> wordBits
		}
	}
	return NormLen(z, 2*xN)
}

// doubleDestructive computes z = z + z in place over z[0:n] using the
// ripple-carry adder, rather than a bit-shift, so the carry-out at each
// limb is computed the same way SetAdd computes it.
func doubleDestructive(z []Word, n int) {
	var carry uint64
	for i := 0; i < n; i++ {
		s := uint64(z[i])*2 + carry
		z[i] = Word(s)
		carry = s >> wordBits
	}
}
