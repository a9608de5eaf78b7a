package bigint

import "github.com/migueldecimal128/bigint/internal/mago"

// TwosComplementByteLen returns the minimum number of bytes needed to
// represent x in two's-complement form, always >= 1.
func (x *BigInt) TwosComplementByteLen() int {
	if x.IsZero() {
		return 1
	}
	bl := x.BitLen()
	if !x.m.negative() {
		return bl/8 + 1 // +1 guarantees a clear sign bit for positive values
	}
	// A negative power of two (magnitude has exactly one set bit) fits
	// exactly in bl bits of two's complement; anything else needs bl+1.
	if x.PopCount() == 1 {
		return (bl-1)/8 + 1
	}
	return bl/8 + 1
}

// ToBinaryBytes writes x into buf[offset:], either as a two's-complement or
// sign-magnitude-free unsigned encoding, in the requested byte order.
// requestedLength <= 0 means "exactly the minimum length"; a longer request
// sign-extends (two's complement) or zero-extends (unsigned).
func (x *BigInt) ToBinaryBytes(isTwosComplement, isBigEndian bool, buf []byte, offset int, requestedLength int) []byte {
	minLen := x.minUnsignedByteLen()
	if isTwosComplement {
		minLen = x.TwosComplementByteLen()
	}
	n := requestedLength
	if n <= 0 {
		n = minLen
	}
	if n < minLen {
		panic(newError(OutOfRange, "ToBinaryBytes: requested length too small"))
	}
	if buf == nil || len(buf) < offset+n {
		buf = make([]byte, offset+n)
	}
	dst := buf[offset : offset+n]

	if !isTwosComplement {
		writeUnsignedBigEndian(dst, x.mag, x.m.length())
	} else {
		writeTwosComplementBigEndian(dst, x)
	}
	if !isBigEndian {
		reverseBytes(dst)
	}
	return buf
}

func (x *BigInt) minUnsignedByteLen() int {
	if x.IsZero() {
		return 1
	}
	return (x.BitLen() + 7) / 8
}

// writeUnsignedBigEndian writes |mag| right-justified into dst, zero-padded
// on the left.
func writeUnsignedBigEndian(dst []byte, mag []mago.Word, n int) {
	for i := range dst {
		dst[i] = 0
	}
	pos := len(dst)
	for i := 0; i < n; i++ {
		w := mag[i]
		for b := 0; b < 4 && pos > 0; b++ {
			pos--
			dst[pos] = byte(w)
			w >>= 8
		}
	}
}

// writeTwosComplementBigEndian writes x's two's-complement encoding,
// right-justified into dst and sign-extended to the left.
func writeTwosComplementBigEndian(dst []byte, x *BigInt) {
	writeUnsignedBigEndian(dst, x.mag, x.m.length())
	if !x.m.negative() {
		return
	}
	// negate in place: invert then add 1, over the whole byte-endian buffer
	// (dst is currently big-endian at this point, before the caller's
	// optional reversal)
	carry := byte(1)
	for i := len(dst) - 1; i >= 0; i-- {
		v := ^dst[i]
		sum := uint16(v) + uint16(carry)
		dst[i] = byte(sum)
		carry = byte(sum >> 8)
	}
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// FromTwosComplementBytes parses buf as a two's-complement integer in the
// given byte order.
func FromTwosComplementBytes(buf []byte, isBigEndian bool) *BigInt {
	if len(buf) == 0 {
		return bigZero
	}
	be := append([]byte(nil), buf...)
	if !isBigEndian {
		reverseBytes(be)
	}
	neg := be[0]&0x80 != 0
	if neg {
		carry := byte(1)
		for i := len(be) - 1; i >= 0; i-- {
			v := ^be[i]
			sum := uint16(v) + uint16(carry)
			be[i] = byte(sum)
			carry = byte(sum >> 8)
		}
	}
	mag := magnitudeFromBigEndianBytes(be)
	return newBigInt(neg, mag)
}

// FromUnsignedBytes parses buf as an unsigned magnitude in the given byte
// order.
func FromUnsignedBytes(buf []byte, isBigEndian bool) *BigInt {
	if len(buf) == 0 {
		return bigZero
	}
	be := append([]byte(nil), buf...)
	if !isBigEndian {
		reverseBytes(be)
	}
	mag := magnitudeFromBigEndianBytes(be)
	return newBigInt(false, mag)
}

func magnitudeFromBigEndianBytes(be []byte) []mago.Word {
	n := (len(be) + 3) / 4
	mag := make([]mago.Word, n)
	pos := len(be)
	for i := 0; i < n; i++ {
		var w mago.Word
		for b := 0; b < 4 && pos > 0; b++ {
			pos--
			w |= mago.Word(be[pos]) << (8 * uint(b))
		}
		mag[i] = w
	}
	return mag
}

// LittleEndianLimbs32 returns the magnitude of x as a little-endian slice
// of 32-bit limbs; the result shares no storage with x.
func (x *BigInt) LittleEndianLimbs32() []uint32 {
	out := make([]uint32, x.m.length())
	copy(out, x.mag)
	return out
}

// LittleEndianLimbs64 returns the magnitude of x packed into little-endian
// 64-bit limbs.
func (x *BigInt) LittleEndianLimbs64() []uint64 {
	n := x.m.length()
	out := make([]uint64, (n+1)/2)
	for i := 0; i < n; i += 2 {
		lo := uint64(x.mag[i])
		var hi uint64
		if i+1 < n {
			hi = uint64(x.mag[i+1])
		}
		out[i/2] = lo | hi<<32
	}
	return out
}

// MarshalBinary implements encoding.BinaryMarshaler using the two's
// complement big-endian encoding.
func (x *BigInt) MarshalBinary() ([]byte, error) {
	return x.ToBinaryBytes(true, true, nil, 0, 0), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *BigInt) UnmarshalBinary(data []byte) error {
	v := FromTwosComplementBytes(data, true)
	*x = *v
	return nil
}
