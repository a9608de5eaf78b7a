package mago

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAdd(t *testing.T) {
	tests := []struct {
		name string
		x, y []Word
		want []Word
	}{
		{"no carry", []Word{1, 2}, []Word{3, 4}, []Word{4, 6}},
		{"carry into new limb", []Word{wordMax}, []Word{1}, []Word{0, 1}},
		{"ripple carry", []Word{wordMax, wordMax}, []Word{1}, []Word{0, 0, 1}},
		{"different lengths", []Word{1, 2, 3}, []Word{9}, []Word{10, 2, 3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			z := make([]Word, len(tc.x)+len(tc.y)+1)
			n := SetAdd(z, tc.x, len(tc.x), tc.y, len(tc.y))
			assert.Equal(t, tc.want, z[:n])
		})
	}
}

func TestSetAddZeroPlusZero(t *testing.T) {
	z := make([]Word, 1)
	n := SetAdd(z, nil, 0, nil, 0)
	assert.Equal(t, 0, n)
}

func TestSetAddAliasedWithX(t *testing.T) {
	z := []Word{wordMax, wordMax, 0}
	n := SetAdd(z, z, 2, []Word{1}, 1)
	assert.Equal(t, []Word{0, 0, 1}, z[:n])
}

func TestSetSub(t *testing.T) {
	tests := []struct {
		name string
		x, y []Word
		want []Word
	}{
		{"no borrow", []Word{5, 5}, []Word{2, 1}, []Word{3, 4}},
		{"borrow", []Word{0, 1}, []Word{1}, []Word{wordMax}},
		{"ripple borrow", []Word{0, 0, 1}, []Word{1}, []Word{wordMax, wordMax}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			z := make([]Word, len(tc.x))
			n := SetSub(z, tc.x, len(tc.x), tc.y, len(tc.y))
			assert.Equal(t, tc.want, z[:n])
		})
	}
}

func TestSetSubEqual(t *testing.T) {
	z := make([]Word, 1)
	n := SetSub(z, []Word{5}, 1, []Word{5}, 1)
	assert.Equal(t, 0, n)
}

func TestSetSubUnderflowPanics(t *testing.T) {
	require.Panics(t, func() {
		z := make([]Word, 1)
		SetSub(z, []Word{1}, 1, []Word{2}, 1)
	})
}

func TestAddSubRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		xLen := r.Intn(5) + 1
		x := randomWords(r, xLen)
		yLen := r.Intn(xLen) + 1
		y := randomWords(r, yLen)
		yN := NormLen(y, yLen)

		sum := make([]Word, xLen+1)
		sumN := SetAdd(sum, x, xLen, y, yN)

		diff := make([]Word, xLen+1)
		diffN := SetSub(diff, sum, sumN, y, yN)
		assert.Equal(t, 0, Compare(diff[:diffN], diffN, x, NormLen(x, xLen)))
	}
}

func randomWords(r *rand.Rand, n int) []Word {
	w := make([]Word, n)
	for i := range w {
		w[i] = Word(r.Uint32())
	}
	return w
}
