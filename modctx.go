package bigint

import "github.com/migueldecimal128/bigint/internal/mago"

// ModContext holds a modulus n and reusable scratch for repeated modular
// multiply/square/add/sub, the way an Accumulator holds scratch for plain
// arithmetic — used by the primality tests to avoid reallocating on every
// Miller-Rabin or Lucas step.
type ModContext struct {
	n    *BigInt
	mul  growableBuf
	un   growableBuf
	qbuf growableBuf
}

// NewModContext builds a ModContext for modulus n. n must be positive.
func NewModContext(n *BigInt) *ModContext {
	if n.Sign() <= 0 {
		panic(newError(NegativeModulus, "NewModContext"))
	}
	return &ModContext{n: n}
}

// reduce computes z mod c.n in place over z[0:zN], reusing c's scratch,
// and returns the remainder's normalized length written into z.
func (c *ModContext) reduce(z []mago.Word, zN int) int {
	yN := c.n.m.length()
	if mago.Compare(z, zN, c.n.mag, yN) < 0 {
		return zN
	}
	q := c.qbuf.reserveDiscard(maxInt(zN-yN+1, 1))
	un := c.un.reserveDiscard(maxInt(zN+1, yN))
	mago.SetDiv(q, un, zN, z, c.n.mag, yN)
	copy(z, un[:yN])
	return mago.NormLen(z, yN)
}

// ModMul computes (x*y) mod n.
func (c *ModContext) ModMul(x, y *BigInt) *BigInt {
	xN, yN := x.m.length(), y.m.length()
	z := c.mul.reserveDiscard(xN + yN)
	n := mago.SetMul(z, x.mag, xN, y.mag, yN)
	n = c.reduce(z, n)
	r := newBigInt(false, append([]mago.Word(nil), z[:n]...))
	if x.m.negative() != y.m.negative() && r.Sign() != 0 {
		r = c.n.Sub(r)
	}
	return r
}

// ModSqr computes x^2 mod n.
func (c *ModContext) ModSqr(x *BigInt) *BigInt {
	xN := x.m.length()
	z := c.mul.reserveDiscard(2 * xN)
	n := mago.SetSqrAuto(z, x.mag, xN)
	n = c.reduce(z, n)
	return newBigInt(false, append([]mago.Word(nil), z[:n]...))
}

// ModAdd computes (x+y) mod n.
func (c *ModContext) ModAdd(x, y *BigInt) *BigInt {
	return c.reduceBigInt(x.Add(y))
}

// ModSub computes (x-y) mod n, Euclidean-style (result always in [0,n)).
func (c *ModContext) ModSub(x, y *BigInt) *BigInt {
	return c.reduceBigInt(x.Sub(y))
}

func (c *ModContext) reduceBigInt(v *BigInt) *BigInt {
	return v.Mod(c.n)
}

// ModPow computes base^exp mod n via left-to-right square-and-multiply,
// the modular exponentiation used by the Miller-Rabin witness test.
func (c *ModContext) ModPow(base *BigInt, exp *BigInt) *BigInt {
	if exp.Sign() == 0 {
		return One()
	}
	result := One()
	b := base.Mod(c.n)
	bl := exp.BitLen()
	for i := bl - 1; i >= 0; i-- {
		result = c.ModSqr(result)
		if exp.TestBit(i) {
			result = c.ModMul(result, b)
		}
	}
	return result
}
