// Copyright 2024 The BigInt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bigint implements signed arbitrary-precision integers in two
// complementary forms:
//
//   - BigInt, an immutable value safe to share across goroutines, with the
//     full algebraic surface (Add, Sub, Mul, Sqr, QuoRem, Mod, shifts, bit
//     tests, comparisons, decimal/hex text I/O, and binary encoding).
//   - Accumulator, a mutable value that owns a growable primary limb
//     buffer plus two scratch buffers (tmp1, tmp2), intended for iterative
//     numerical work — running sums, sums of squares, modular
//     exponentiation loops — where BigInt's per-operation allocation would
//     dominate.
//
// Both sit on internal/mago, a limb-algebra package that operates on
// explicit-length little-endian 32-bit limb slices and writes results into
// caller-supplied buffers; only Karatsuba squaring, Knuth division and
// CalcRem64 allocate scratch of their own.
//
// ModContext and IsProbablePrime implement Baillie-PSW compound
// primality testing (a single Miller-Rabin witness at base 2 followed by
// a strong Lucas probable-prime test), exercising the modular
// multiplication and Jacobi symbol machinery built on top of BigInt.
//
// Accumulator is not safe for concurrent use. BigInt values, once
// returned, are never mutated and may be shared freely.
package bigint
