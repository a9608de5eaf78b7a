package bigint

import "github.com/migueldecimal128/bigint/internal/mago"

// addSigned is the shared implementation behind every Add/Sub overload:
// same sign is an unsigned add kept in place over the primary buffer;
// opposite signs compare magnitudes and subtract the smaller from the
// larger, in place when the accumulator's magnitude is the larger, and
// otherwise writing into tmp1 and swapping (§4.1.3).
func (a *Accumulator) addSigned(yNeg bool, y []mago.Word, yN int) *Accumulator {
	if a.n == 0 {
		buf := a.primary.reserveDiscard(maxInt(yN, mago.MinCapacity))
		copy(buf, y[:yN])
		a.n = yN
		a.neg = yNeg
		return a
	}
	if a.neg == yNeg {
		dst := a.primary.reserveCopy(maxInt(a.n, yN)+1, a.n)
		n := mago.SetAdd(dst, dst, a.n, y, yN)
		a.n = n
		return a
	}
	switch mago.Compare(a.mag(), a.n, y, yN) {
	case 0:
		a.n = 0
		a.neg = false
	case 1:
		dst := a.primary.reserveCopy(a.n, a.n)
		n := mago.SetSub(dst, dst, a.n, y, yN)
		a.n = n
	default:
		tmp := a.tmp1.reserveDiscard(yN)
		n := mago.SetSub(tmp, y, yN, a.mag(), a.n)
		a.swapPrimaryTmp1(n)
		a.neg = yNeg
	}
	return a
}

// AddBigInt adds v to the accumulator in place.
func (a *Accumulator) AddBigInt(v *BigInt) *Accumulator {
	return a.addSigned(v.m.negative(), v.mag, v.m.length())
}

// SubBigInt subtracts v from the accumulator in place.
func (a *Accumulator) SubBigInt(v *BigInt) *Accumulator {
	return a.addSigned(!v.m.negative(), v.mag, v.m.length())
}

// AddAccumulator adds another accumulator's current value; safe when o
// is a.
func (a *Accumulator) AddAccumulator(o *Accumulator) *Accumulator {
	if o == a {
		return a.doubleSelf()
	}
	return a.addSigned(o.neg, o.mag(), o.n)
}

// SubAccumulator subtracts another accumulator's current value.
func (a *Accumulator) SubAccumulator(o *Accumulator) *Accumulator {
	if o == a {
		a.SetZero()
		return a
	}
	return a.addSigned(!o.neg, o.mag(), o.n)
}

func (a *Accumulator) doubleSelf() *Accumulator {
	dst := a.primary.reserveCopy(a.n+1, a.n)
	n := mago.SetAdd(dst, dst, a.n, dst, a.n)
	a.n = n
	return a
}

// AddAbsValueOf adds |v| to the accumulator, ignoring v's sign — the
// "unsigned widths where |v| = v is implicit" operation of §4.3.
func (a *Accumulator) AddAbsValueOf(v *BigInt) *Accumulator {
	return a.addSigned(false, v.mag, v.m.length())
}

// AddInt64 adds a signed 64-bit value in place.
func (a *Accumulator) AddInt64(x int64) *Accumulator {
	neg, mag := splitInt64(x)
	return a.addSigned(neg, mag[:], 2)
}

// AddUint64 adds an unsigned 64-bit value in place.
func (a *Accumulator) AddUint64(x uint64) *Accumulator {
	var mag [2]mago.Word
	mag[0] = mago.Word(x)
	mag[1] = mago.Word(x >> 32)
	return a.addSigned(false, mag[:], 2)
}

func splitInt64(x int64) (neg bool, mag [2]mago.Word) {
	neg = x < 0
	ux := uint64(x)
	if neg {
		ux = uint64(-x)
	}
	mag[0] = mago.Word(ux)
	mag[1] = mago.Word(ux >> 32)
	return neg, mag
}

// MulBigInt multiplies the accumulator by v in place, via the swap
// protocol: the product is built in tmp1 (which cannot alias the primary
// buffer per §4.1.4), then tmp1 and primary trade places.
func (a *Accumulator) MulBigInt(v *BigInt) *Accumulator {
	if a.n == 0 || v.IsZero() {
		a.SetZero()
		return a
	}
	yN := v.m.length()
	tmp := a.tmp1.reserveDiscard(a.n + yN)
	n := mago.SetMul(tmp, a.mag(), a.n, v.mag, yN)
	a.swapPrimaryTmp1(n)
	a.neg = a.neg != v.m.negative()
	return a
}

// MulAccumulator multiplies by another accumulator's value; when v is a,
// it squares through SquareSelf.
func (a *Accumulator) MulAccumulator(v *Accumulator) *Accumulator {
	if v == a {
		return a.SquareSelf()
	}
	if a.n == 0 || v.n == 0 {
		a.SetZero()
		return a
	}
	tmp := a.tmp1.reserveDiscard(a.n + v.n)
	n := mago.SetMul(tmp, a.mag(), a.n, v.mag(), v.n)
	a.swapPrimaryTmp1(n)
	a.neg = a.neg != v.neg
	return a
}

// SquareSelf squares the accumulator's current value in place.
func (a *Accumulator) SquareSelf() *Accumulator {
	if a.n == 0 {
		return a
	}
	tmp := a.tmp1.reserveDiscard(2 * a.n)
	n := mago.SetSqrAuto(tmp, a.mag(), a.n)
	a.swapPrimaryTmp1(n)
	a.neg = false
	return a
}

// AddSquareOf squares v into tmp1, then adds the result to the
// accumulator — safe when v is a, since v's magnitude is read in full
// before tmp1 (a separate buffer from primary) is written.
func (a *Accumulator) AddSquareOf(v *Accumulator) *Accumulator {
	if v.n == 0 {
		return a
	}
	tmp := a.tmp1.reserveDiscard(2 * v.n)
	n := mago.SetSqrAuto(tmp, v.mag(), v.n)
	return a.addSigned(false, tmp, n)
}

// AddSquareOfBigInt squares v into tmp1, then adds the result to the
// accumulator.
func (a *Accumulator) AddSquareOfBigInt(v *BigInt) *Accumulator {
	if v.IsZero() {
		return a
	}
	vn := v.m.length()
	tmp := a.tmp1.reserveDiscard(2 * vn)
	n := mago.SetSqrAuto(tmp, v.mag, vn)
	return a.addSigned(false, tmp, n)
}

// QuoRemBigInt divides the accumulator by v in place (leaving the
// quotient as the new accumulator value) and returns the remainder as an
// immutable BigInt.
func (a *Accumulator) QuoRemBigInt(v *BigInt) (remainder *BigInt) {
	if v.IsZero() {
		panic(newError(DivisionByZero, "Accumulator.QuoRemBigInt"))
	}
	if a.n == 0 {
		return bigZero
	}
	yN := v.m.length()
	q := a.tmp1.reserveDiscard(maxInt(a.n-yN+1, 1))
	un := a.tmp2.reserveDiscard(maxInt(a.n+1, yN))
	qN := mago.SetDiv(q, un, a.n, a.mag(), v.mag, yN)

	remNeg := a.neg
	remMag := append([]mago.Word(nil), un[:yN]...)

	a.swapPrimaryTmp1(qN)
	a.neg = a.neg != v.m.negative()
	return newBigInt(remNeg, remMag)
}

// ModBigInt reduces the accumulator modulo a strictly positive v,
// Euclidean-style: the result satisfies 0 <= result < v.
func (a *Accumulator) ModBigInt(v *BigInt) *Accumulator {
	if v.Sign() <= 0 {
		panic(newError(NegativeModulus, "Accumulator.ModBigInt"))
	}
	rem := a.Snapshot().Mod(v)
	a.SetBigInt(rem)
	return a
}

// ShiftLeft shifts the accumulator's magnitude left in place.
func (a *Accumulator) ShiftLeft(bitCount int) *Accumulator {
	if bitCount < 0 {
		panic(newError(NegativeArgument, "Accumulator.ShiftLeft"))
	}
	if a.n == 0 {
		return a
	}
	tmp := a.tmp1.reserveDiscard(a.n + bitCount/32 + 1)
	n := mago.SetShiftLeft(tmp, a.mag(), a.n, bitCount)
	a.swapPrimaryTmp1(n)
	return a
}

// ShiftRight shifts the accumulator's magnitude right in place, applying
// the arithmetic-shift correction for negative values (§4.1.7): the
// magnitude grows by one so the result floors toward -infinity, matching
// two's-complement sign extension.
func (a *Accumulator) ShiftRight(bitCount int) *Accumulator {
	if bitCount < 0 {
		panic(newError(NegativeArgument, "Accumulator.ShiftRight"))
	}
	if a.n == 0 {
		return a
	}
	roundUp := a.neg && mago.TestAnyBitInLowerN(a.mag(), a.n, bitCount)
	dst := a.primary.reserveCopy(a.n, a.n)
	n := mago.SetShiftRight(dst, dst, a.n, bitCount)
	a.n = n
	if roundUp {
		return a.addSigned(true, []mago.Word{1}, 1)
	}
	return a
}

// TestBit reports the value of bit i of the accumulator's magnitude.
func (a *Accumulator) TestBit(i int) bool {
	if i < 0 {
		panic(newError(NegativeArgument, "Accumulator.TestBit"))
	}
	return mago.TestBit(a.primary.data, a.n, i)
}

// SetBit sets bit i of the accumulator's magnitude in place.
func (a *Accumulator) SetBit(i int) *Accumulator {
	if i < 0 {
		panic(newError(NegativeArgument, "Accumulator.SetBit"))
	}
	m := maxInt(a.n, i/32+1)
	dst := a.primary.reserveZeroed(m, a.n)
	n := mago.SetBit(dst, dst, a.n, i)
	a.n = n
	return a
}

// ClearBit clears bit i of the accumulator's magnitude in place.
func (a *Accumulator) ClearBit(i int) *Accumulator {
	if i < 0 {
		panic(newError(NegativeArgument, "Accumulator.ClearBit"))
	}
	dst := a.primary.reserveCopy(a.n, a.n)
	n := mago.ClearBit(dst, dst, a.n, i)
	a.n = n
	return a
}

// ApplyBitMask clears all bits outside [index, index+width) and forces the
// accumulator's sign non-negative (§4.1.8).
func (a *Accumulator) ApplyBitMask(index, width int) *Accumulator {
	if width < 0 || index < 0 {
		panic(newError(NegativeArgument, "Accumulator.ApplyBitMask"))
	}
	a.neg = false
	if width == 0 {
		a.n = 0
		return a
	}
	n := mago.ApplyBitMask(a.primary.data, a.primary.data, a.n, index, width)
	a.n = n
	return a
}
