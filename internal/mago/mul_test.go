package mago

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetMul32(t *testing.T) {
	z := make([]Word, 3)
	n := SetMul32(z, []Word{1, 2}, 2, 3)
	assert.Equal(t, []Word{3, 6}, z[:n])
}

func TestSetMul32Overflow(t *testing.T) {
	z := make([]Word, 2)
	n := SetMul32(z, []Word{wordMax}, 1, 2)
	assert.Equal(t, []Word{wordMax - 1, 1}, z[:n])
}

func TestSetMulAgainstRepeatedAdd(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		xN := r.Intn(4) + 1
		yN := r.Intn(4) + 1
		x := randomWords(r, xN)
		y := randomWords(r, yN)

		z := make([]Word, xN+yN)
		n := SetMul(z, x, xN, y, yN)

		// x*y == sum of x shifted by each set word of y, computed the slow
		// way via SetMul32 + SetAdd, as a cross-check of the two-operand
		// schoolbook path against the known-correct single-limb path.
		acc := make([]Word, xN+yN)
		accN := 0
		for j := 0; j < yN; j++ {
			term := make([]Word, xN+1)
			termN := SetMul32(term, x, xN, y[j])
			shifted := make([]Word, xN+1+j)
			copy(shifted[j:], term[:termN])
			sum := make([]Word, xN+yN+1)
			accN = SetAdd(sum, acc, accN, shifted, NormLen(shifted, xN+1+j))
			copy(acc, sum)
		}
		assert.Equal(t, 0, Compare(z[:n], n, acc[:accN], accN))
	}
}

func TestSetSqrMatchesSetMul(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		xN := r.Intn(6) + 1
		x := randomWords(r, xN)

		sqr := make([]Word, 2*xN)
		sqrN := SetSqr(sqr, x, xN)

		mul := make([]Word, 2*xN)
		mulN := SetMul(mul, x, xN, x, xN)

		assert.Equal(t, 0, Compare(sqr[:sqrN], sqrN, mul[:mulN], mulN))
	}
}

func TestMulAddWordInPlace(t *testing.T) {
	z := make([]Word, 4)
	z[0], z[1] = 12, 0
	n := 1
	n = MulAddWordInPlace(z, n, 1000, 345)
	assert.Equal(t, []Word{12345}, z[:n])
}
