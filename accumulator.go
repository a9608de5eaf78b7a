package bigint

import "github.com/migueldecimal128/bigint/internal/mago"

// growableBuf is a single limb buffer with the "first allocation past the
// initial size is exact, every subsequent one adds ~50% headroom" growth
// policy from §4.2.1. It tracks whether it has ever been grown so it can
// tell a first reallocation from a later one.
type growableBuf struct {
	data  []mago.Word
	grown bool
}

// newGrownHeadroomSize computes the next capacity for a requested minimum
// m, given whether this buffer has grown before.
func (g *growableBuf) newGrownHeadroomSize(m int) int {
	var want int
	if !g.grown {
		want = m
	} else {
		want = m + m/2
	}
	return mago.RoundToQuantum(maxInt(want, m))
}

// reserveDiscard ensures capacity >= m and returns data[:m]; existing
// content beyond the live prefix is not preserved.
func (g *growableBuf) reserveDiscard(m int) []mago.Word {
	if cap(g.data) >= m {
		return g.data[:m]
	}
	g.data = make([]mago.Word, g.newGrownHeadroomSize(m))
	g.grown = true
	return g.data[:m]
}

// reserveCopy ensures capacity >= m and returns data[:m], preserving the
// first liveLen limbs of the previous content.
func (g *growableBuf) reserveCopy(m int, liveLen int) []mago.Word {
	if cap(g.data) >= m {
		return g.data[:m]
	}
	newData := make([]mago.Word, g.newGrownHeadroomSize(m))
	copy(newData, g.data[:liveLen])
	g.data = newData
	g.grown = true
	return g.data[:m]
}

// reserveZeroed is reserveCopy plus a guarantee that data[liveLen:m] is
// zero, for sparse-write routines (§4.2.2).
func (g *growableBuf) reserveZeroed(m int, liveLen int) []mago.Word {
	if cap(g.data) >= m {
		d := g.data[:m]
		for i := liveLen; i < m; i++ {
			d[i] = 0
		}
		return d
	}
	return g.reserveCopy(m, liveLen) // make() already zero-fills fresh memory
}

// Accumulator is a mutable signed arbitrary-precision integer that owns a
// primary limb buffer plus two scratch buffers, tmp1 and tmp2, so that
// repeated in-place arithmetic amortizes to zero allocation once the
// buffers have grown to their working size. An Accumulator is not safe for
// concurrent use; see the package doc for the sharing rules that apply to
// BigInt instead.
type Accumulator struct {
	neg     bool
	n       int // normalized length, into primary.data
	primary growableBuf
	tmp1    growableBuf
	tmp2    growableBuf
}

// NewAccumulator returns an Accumulator holding zero, with its primary
// buffer pre-sized to the minimum capacity.
func NewAccumulator() *Accumulator {
	return &Accumulator{primary: growableBuf{data: make([]mago.Word, mago.MinCapacity)}}
}

// NewAccumulatorWithBitCapacity returns a zero-valued Accumulator whose
// primary buffer is pre-sized to hold at least bitCapacity bits without an
// initial reallocation.
func NewAccumulatorWithBitCapacity(bitCapacity int) *Accumulator {
	limbs := mago.RoundToQuantum(maxInt((bitCapacity+31)/32, mago.MinCapacity))
	return &Accumulator{primary: growableBuf{data: make([]mago.Word, limbs)}}
}

// NewAccumulatorFromBigInt returns an Accumulator initialized to a copy of
// v's value.
func NewAccumulatorFromBigInt(v *BigInt) *Accumulator {
	a := NewAccumulator()
	a.SetBigInt(v)
	return a
}

// mag returns the accumulator's live magnitude; callers must treat it as
// read-only except when it is the intended write destination of the
// operation currently being performed.
func (a *Accumulator) mag() []mago.Word { return a.primary.data[:a.n] }

// SetBigInt resets the accumulator to a copy of v's value.
func (a *Accumulator) SetBigInt(v *BigInt) *Accumulator {
	n := v.m.length()
	buf := a.primary.reserveDiscard(maxInt(n, mago.MinCapacity))
	copy(buf, v.mag)
	for i := n; i < len(buf); i++ {
		buf[i] = 0
	}
	a.n = n
	a.neg = v.m.negative()
	return a
}

// SetZero resets the accumulator to 0 without shrinking its buffers.
func (a *Accumulator) SetZero() *Accumulator {
	a.n = 0
	a.neg = false
	return a
}

// Sign returns -1, 0, or +1.
func (a *Accumulator) Sign() int {
	if a.n == 0 {
		return 0
	}
	if a.neg {
		return -1
	}
	return 1
}

// IsZero reports whether the accumulator currently holds 0.
func (a *Accumulator) IsZero() bool { return a.n == 0 }

// BitLen returns the bit length of the accumulator's magnitude.
func (a *Accumulator) BitLen() int { return mago.BitLen(a.primary.data, a.n) }

// Cmp compares the accumulator's value to a BigInt's.
func (a *Accumulator) Cmp(y *BigInt) int {
	sx, sy := a.Sign(), y.Sign()
	switch {
	case sx != sy:
		if sx < sy {
			return -1
		}
		return 1
	case sx == 0:
		return 0
	}
	c := mago.Compare(a.mag(), a.n, y.mag, y.m.length())
	if sx < 0 {
		return -c
	}
	return c
}

// Snapshot returns a new immutable BigInt holding a deep copy of the
// accumulator's current value. The accumulator remains usable and
// independent of the returned value afterward.
func (a *Accumulator) Snapshot() *BigInt {
	if a.n == 0 {
		return bigZero
	}
	mag := append([]mago.Word(nil), a.mag()...)
	return newBigInt(a.neg, mag)
}

// swapPrimaryTmp1 exchanges the primary buffer with tmp1 (no data
// movement) and sets the new normalized length — the swap protocol of
// §4.2.3 used after multiplying, squaring, or dividing into scratch.
func (a *Accumulator) swapPrimaryTmp1(n int) {
	a.primary, a.tmp1 = a.tmp1, a.primary
	a.n = n
}
