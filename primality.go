package bigint

// smallPrimes is the fixed filter table used before any modular
// exponentiation is attempted — every prime up to 317.
var smallPrimes = []uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67,
	71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139,
	149, 151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223,
	227, 229, 233, 239, 241, 251, 257, 263, 269, 271, 277, 281, 283, 293,
	307, 311, 313, 317,
}

// IsProbablePrime reports whether n is prime, via the Baillie-PSW
// compound test: a small-prime filter, a Miller-Rabin witness at base 2,
// and a strong Lucas probable-prime test. No composite n is known to pass
// both the Miller-Rabin-base-2 and strong-Lucas stages; this combination
// has no known counterexample up to very large bounds, though none is
// proven not to exist.
func IsProbablePrime(n *BigInt) bool {
	if ok, isPrime := smallPrimeFilter(n); ok {
		logger.Debug().Str("n", n.String()).Bool("prime", isPrime).Msg("decided by small-prime filter")
		return isPrime
	}
	if !millerRabinBase2(n) {
		logger.Debug().Str("n", n.String()).Msg("rejected by miller-rabin base 2")
		return false
	}
	result := strongLucas(n)
	logger.Debug().Str("n", n.String()).Bool("prime", result).Msg("decided by strong lucas")
	return result
}

// smallPrimeFilter rejects n<=1, fast-accepts n in {2,3}, rejects even n,
// and trial-divides the small-prime table, returning (decided, isPrime).
func smallPrimeFilter(n *BigInt) (decided bool, isPrime bool) {
	if n.Sign() <= 0 || n.Cmp(One()) == 0 {
		return true, false
	}
	if n.Cmp(FromInt64(3)) <= 0 {
		return true, true // n == 2 or n == 3
	}
	if !n.TestBit(0) {
		return true, false
	}
	for _, p := range smallPrimes[1:] { // 2 already handled by the even check
		pv := FromUint64(p)
		if n.Cmp(pv) == 0 {
			return true, true
		}
		if n.Rem(pv).Sign() == 0 {
			return true, false
		}
	}
	return false, false
}

// factorOutTwos writes m as d*2^s with d odd; callers pass n-1 or n+1.
func factorOutTwos(m *BigInt) (d *BigInt, s int) {
	d = m
	for !d.TestBit(0) {
		d = d.Shr(1)
		s++
	}
	return d, s
}

// millerRabinBase2 is the single-witness Miller-Rabin test at base a=2,
// sufficient as the first Baillie-PSW stage.
func millerRabinBase2(n *BigInt) bool {
	nMinus1 := n.Sub(One())
	d, s := factorOutTwos(nMinus1)

	ctx := NewModContext(n)
	x := ctx.ModPow(FromInt64(2), d)
	if x.Cmp(One()) == 0 || x.Cmp(nMinus1) == 0 {
		return true
	}
	for i := 0; i < s-1; i++ {
		x = ctx.ModSqr(x)
		if x.Cmp(nMinus1) == 0 {
			return true
		}
		if x.Cmp(One()) == 0 {
			return false
		}
	}
	return false
}

// jacobiSymbol computes the Jacobi symbol (a|n) for odd positive n, via
// the standard reduction by factors of two (sign flips on n mod 8) and
// quadratic-reciprocity numerator/denominator swap.
func jacobiSymbol(a, n *BigInt) int {
	if n.Sign() <= 0 || !n.TestBit(0) {
		panic(newError(NegativeArgument, "jacobiSymbol: n must be odd and positive"))
	}
	a = a.Mod(n)
	result := 1
	for a.Sign() != 0 {
		for !a.TestBit(0) {
			a = a.Shr(1)
			r8 := nMod8(n)
			if r8 == 3 || r8 == 5 {
				result = -result
			}
		}
		a, n = n, a
		if nMod4(a) == 3 && nMod4(n) == 3 {
			result = -result
		}
		a = a.Mod(n)
	}
	if n.Cmp(One()) == 0 {
		return result
	}
	return 0
}

func nMod8(x *BigInt) int {
	v := uint64(0)
	if x.TestBit(0) {
		v |= 1
	}
	if x.TestBit(1) {
		v |= 2
	}
	if x.TestBit(2) {
		v |= 4
	}
	return int(v)
}

func nMod4(x *BigInt) int {
	v := uint64(0)
	if x.TestBit(0) {
		v |= 1
	}
	if x.TestBit(1) {
		v |= 2
	}
	return int(v)
}

// isPerfectSquare reports whether n is a perfect square, via Newton's
// method on the integer square root followed by an exact verification —
// used to short-circuit the strong Lucas stage, which otherwise loops
// forever searching for a D with jacobi(D,n) == -1 when n is a square.
func isPerfectSquare(n *BigInt) bool {
	if n.Sign() < 0 {
		return false
	}
	if n.Sign() == 0 {
		return true
	}
	x := n
	for {
		y := x.Add(n.Quo(x)).Shr(1)
		if y.Cmp(x) >= 0 {
			break
		}
		x = y
	}
	return x.Mul(x).Cmp(n) == 0
}

// selfridgeParams scans signed D in {5,-7,9,-11,...} for the first value
// with jacobi(D,n) == -1, returning the Selfridge (D,P,Q) triple for the
// strong Lucas test. It reports composite==true if a zero Jacobi symbol
// proves n composite outright.
func selfridgeParams(n *BigInt) (d int64, p int64, q int64, composite bool) {
	dAbs := int64(5)
	sign := int64(1)
	for {
		dVal := sign * dAbs
		dBig := FromInt64(dVal)
		j := jacobiSymbol(dBig, n)
		if j == -1 {
			return dVal, 1, (1 - dVal) / 4, false
		}
		if j == 0 {
			if dBig.Abs().Cmp(n) != 0 {
				return 0, 0, 0, true
			}
		}
		dAbs += 2
		sign = -sign
	}
}

// strongLucas performs the strong Lucas probable-prime test with
// Selfridge parameter selection, per §4.5's doubling recurrence on the
// Lucas sequence: U_{2m}=U_m*V_m, V_{2m}=V_m^2-2*Q^m, Q^{2m}=(Q^m)^2, and
// the add-one step for odd bits of d.
func strongLucas(n *BigInt) bool {
	if isPerfectSquare(n) {
		return false
	}
	d, p, q, composite := selfridgeParams(n)
	if composite {
		return false
	}

	nPlus1 := n.Add(One())
	delta, s := factorOutTwos(nPlus1)

	ctx := NewModContext(n)
	_ = p // Selfridge P is always 1, which drops out of the recurrence below
	dBig := FromInt64(d)
	qBig := FromInt64(q)

	u, v, qk := lucasUVQ(ctx, delta, qBig, dBig)

	if u.Sign() == 0 || v.Sign() == 0 {
		return true
	}
	for i := 0; i < s-1; i++ {
		v = ctx.ModSub(ctx.ModSqr(v), ctx.ModMul(FromInt64(2), qk))
		qk = ctx.ModSqr(qk)
		if v.Sign() == 0 {
			return true
		}
	}
	return false
}

// lucasUVQ computes (U_delta, V_delta, Q^delta) mod n via left-to-right
// binary doubling over delta's bits, using the doubling identities plus
// the add-one step for each set bit.
func lucasUVQ(ctx *ModContext, delta *BigInt, q, d *BigInt) (u, v, qk *BigInt) {
	u = Zero()
	v = FromInt64(2)
	qk = One()

	bl := delta.BitLen()
	for i := bl - 1; i >= 0; i-- {
		u2 := ctx.ModMul(u, v)
		v2 := ctx.ModSub(ctx.ModSqr(v), ctx.ModMul(FromInt64(2), qk))
		qk2 := ctx.ModSqr(qk)

		u, v, qk = u2, v2, qk2
		if delta.TestBit(i) {
			u, v = lucasAddOne(ctx, u, v, d)
			qk = ctx.ModMul(qk, q)
		}
	}
	return u, v, qk
}

// lucasAddOne applies U_{2m+1}=(U_{2m}+V_{2m})/2, V_{2m+1}=(V_{2m}+D*U_{2m})/2,
// halving modulo the odd n held by ctx: (x+n)/2 if x is odd, else x/2. The
// Selfridge choice P=1 drops out of the U update entirely.
func lucasAddOne(ctx *ModContext, u, v, d *BigInt) (newU, newV *BigInt) {
	newU = halveModOdd(ctx, u.Add(v))
	newV = halveModOdd(ctx, v.Add(ctx.ModMul(d, u)))
	return newU, newV
}

func halveModOdd(ctx *ModContext, x *BigInt) *BigInt {
	x = x.Mod(ctx.n)
	if x.TestBit(0) {
		x = x.Add(ctx.n)
	}
	return x.Shr(1)
}
