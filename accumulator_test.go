package bigint

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulatorBasic(t *testing.T) {
	a := NewAccumulator()
	assert.True(t, a.IsZero())
	assert.Equal(t, 0, a.Sign())

	a.SetBigInt(FromInt64(-5))
	assert.Equal(t, -1, a.Sign())
	assert.Equal(t, 0, a.Snapshot().Cmp(FromInt64(-5)))
}

func TestAccumulatorAddSub(t *testing.T) {
	a := NewAccumulatorFromBigInt(FromInt64(10))
	a.AddBigInt(FromInt64(5))
	assert.Equal(t, 0, a.Snapshot().Cmp(FromInt64(15)))
	a.SubBigInt(FromInt64(20))
	assert.Equal(t, 0, a.Snapshot().Cmp(FromInt64(-5)))
}

func TestAccumulatorAddAccumulatorSelfAliasing(t *testing.T) {
	a := NewAccumulatorFromBigInt(FromInt64(7))
	a.AddAccumulator(a)
	assert.Equal(t, 0, a.Snapshot().Cmp(FromInt64(14)))
}

func TestAccumulatorSubAccumulatorSelfAliasing(t *testing.T) {
	a := NewAccumulatorFromBigInt(FromInt64(7))
	a.SubAccumulator(a)
	assert.True(t, a.IsZero())
}

func TestAccumulatorMulAndSquareSelf(t *testing.T) {
	a := NewAccumulatorFromBigInt(FromInt64(6))
	a.MulBigInt(FromInt64(7))
	assert.Equal(t, 0, a.Snapshot().Cmp(FromInt64(42)))

	a.SetBigInt(FromInt64(-3))
	a.SquareSelf()
	assert.Equal(t, 0, a.Snapshot().Cmp(FromInt64(9)))
}

func TestAccumulatorMulAccumulatorSelfDispatchesToSquare(t *testing.T) {
	a := NewAccumulatorFromBigInt(FromInt64(4))
	a.MulAccumulator(a)
	assert.Equal(t, 0, a.Snapshot().Cmp(FromInt64(16)))
}

func TestAccumulatorAddSquareOfSelfAliasing(t *testing.T) {
	a := NewAccumulatorFromBigInt(FromInt64(3))
	a.AddSquareOf(a) // 3 + 3*3 == 12
	assert.Equal(t, 0, a.Snapshot().Cmp(FromInt64(12)))
}

func TestAccumulatorQuoRemAndMod(t *testing.T) {
	a := NewAccumulatorFromBigInt(FromInt64(-7))
	rem := a.QuoRemBigInt(FromInt64(3))
	assert.Equal(t, 0, a.Snapshot().Cmp(FromInt64(-2)))
	assert.Equal(t, 0, rem.Cmp(FromInt64(-1)))

	a.SetBigInt(FromInt64(-7))
	a.ModBigInt(FromInt64(3))
	assert.Equal(t, 0, a.Snapshot().Cmp(FromInt64(2)))
}

func TestAccumulatorQuoRemPanicsOnZero(t *testing.T) {
	require.Panics(t, func() {
		a := NewAccumulatorFromBigInt(FromInt64(1))
		a.QuoRemBigInt(Zero())
	})
}

func TestAccumulatorShifts(t *testing.T) {
	a := NewAccumulatorFromBigInt(FromInt64(1))
	a.ShiftLeft(64)
	assert.Equal(t, 65, a.BitLen())
	a.ShiftRight(64)
	assert.Equal(t, 0, a.Snapshot().Cmp(FromInt64(1)))
}

func TestAccumulatorShiftRightArithmeticRounding(t *testing.T) {
	a := NewAccumulatorFromBigInt(FromInt64(-5))
	a.ShiftRight(1)
	assert.Equal(t, 0, a.Snapshot().Cmp(FromInt64(-3)))
}

func TestAccumulatorBitOps(t *testing.T) {
	a := NewAccumulator()
	a.SetBit(3)
	assert.True(t, a.TestBit(3))
	a.ClearBit(3)
	assert.True(t, a.IsZero())
}

func TestAccumulatorApplyBitMask(t *testing.T) {
	a := NewAccumulatorFromBigInt(FromInt64(-1)) // all magnitude bits set in two's-complement sense isn't relevant here
	a.SetBigInt(MustParseHex("0xFF"))
	a.ApplyBitMask(4, 4)
	assert.Equal(t, 0, a.Snapshot().Cmp(FromInt64(0xF0)))
	assert.False(t, a.Sign() < 0)
}

func TestAccumulatorApplyBitMaskZeroWidth(t *testing.T) {
	a := NewAccumulatorFromBigInt(FromInt64(5))
	a.ApplyBitMask(0, 0)
	assert.True(t, a.IsZero())
}

func TestAccumulatorGrowthPastInitialCapacity(t *testing.T) {
	a := NewAccumulator()
	big, err := ParseHex("0x" + "FF" + "FFFFFFFF" + "FFFFFFFF" + "FFFFFFFF" + "FFFFFFFF" + "FFFFFFFF")
	require.NoError(t, err)
	a.SetBigInt(big)
	a.SquareSelf()
	assert.Equal(t, 0, a.Snapshot().Cmp(big.Sqr()))
}

func TestAccumulatorMatchesBigIntRandomOps(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	for i := 0; i < 100; i++ {
		base := FromInt64(r.Int63() - (1 << 62))
		delta := FromInt64(r.Int63()%1000 - 500)
		a := NewAccumulatorFromBigInt(base)
		a.AddBigInt(delta)
		want := base.Add(delta)
		assert.Equal(t, 0, a.Snapshot().Cmp(want))
	}
}
