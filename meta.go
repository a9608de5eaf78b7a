package bigint

// meta packs a value's sign and normalized magnitude length into a single
// 32-bit word: bit 31 is the sign bit (0 = non-negative, 1 = negative),
// bits 0..30 are the unsigned normalized length. Zero is always encoded
// with sign 0 regardless of how it was produced.
type meta uint32

const metaSignBit = uint32(1) << 31

// newMeta packs neg and length (length must be >= 0) into a meta word.
func newMeta(neg bool, length int) meta {
	if length < 0 {
		invalidState("negative normalized length")
	}
	m := meta(uint32(length) &^ uint32(metaSignBit))
	if neg && length != 0 {
		m |= meta(metaSignBit)
	}
	return m
}

// signBit returns 0 or 1.
func (m meta) signBit() uint32 {
	return uint32(m) >> 31
}

// signMask returns 0 (non-negative) or ^uint32(0) (negative), useful for
// branchless sign-dependent arithmetic.
func (m meta) signMask() uint32 {
	return uint32(0) - m.signBit()
}

// negative reports whether the sign bit is set.
func (m meta) negative() bool {
	return m.signBit() != 0
}

// signum returns -1, 0, or +1 per the usual Sign() convention.
func (m meta) signum() int {
	if m.length() == 0 {
		return 0
	}
	if m.negative() {
		return -1
	}
	return 1
}

// length returns the normalized magnitude length.
func (m meta) length() int {
	return int(uint32(m) &^ metaSignBit)
}

// withLength returns m with its length replaced (sign preserved, but
// forced non-negative if the new length is 0 — negating zero is a no-op).
func (m meta) withLength(n int) meta {
	if n == 0 {
		return newMeta(false, 0)
	}
	return newMeta(m.negative(), n)
}

// negated returns m with its sign flipped; zero is returned unchanged.
func (m meta) negated() meta {
	if m.length() == 0 {
		return m
	}
	return newMeta(!m.negative(), m.length())
}

// withSign returns m with the sign replaced by neg (zero stays non-negative).
func (m meta) withSign(neg bool) meta {
	return newMeta(neg, m.length())
}
