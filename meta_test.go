package bigint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMetaZeroForcesNonNegative(t *testing.T) {
	m := newMeta(true, 0)
	assert.False(t, m.negative())
	assert.Equal(t, 0, m.length())
	assert.Equal(t, 0, m.signum())
}

func TestNewMetaPacksSignAndLength(t *testing.T) {
	m := newMeta(true, 7)
	assert.True(t, m.negative())
	assert.Equal(t, 7, m.length())
	assert.Equal(t, -1, m.signum())

	m2 := newMeta(false, 7)
	assert.False(t, m2.negative())
	assert.Equal(t, 1, m2.signum())
}

func TestMetaNegated(t *testing.T) {
	m := newMeta(false, 3)
	assert.True(t, m.negated().negative())
	assert.Equal(t, 3, m.negated().length())

	zero := newMeta(false, 0)
	assert.Equal(t, zero, zero.negated())
}

func TestMetaWithLength(t *testing.T) {
	m := newMeta(true, 5)
	m2 := m.withLength(9)
	assert.True(t, m2.negative())
	assert.Equal(t, 9, m2.length())

	m3 := m.withLength(0)
	assert.False(t, m3.negative())
	assert.Equal(t, 0, m3.length())
}

func TestMetaWithSign(t *testing.T) {
	m := newMeta(false, 4)
	assert.True(t, m.withSign(true).negative())
	assert.False(t, m.withSign(true).withSign(false).negative())

	zero := newMeta(false, 0)
	assert.False(t, zero.withSign(true).negative())
}

func TestMetaSignMask(t *testing.T) {
	pos := newMeta(false, 1)
	neg := newMeta(true, 1)
	assert.Equal(t, uint32(0), pos.signMask())
	assert.Equal(t, ^uint32(0), neg.signMask())
}
