// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigmath

import "math/big"

// Root returns the integer part of the n'th root of x, truncated toward zero.
//
// Root panics with an InvalidArgument error if n < 1, or if n is even and
// x < 0.
func (x *Int) Root(n int) *Int {
	if n < 1 {
		panic(invalidArgument("bigmath: Root: invalid root %d", n))
	}
	if x.Sign() < 0 && n%2 == 0 {
		panic(invalidArgument("bigmath: Root: even root of negative number %s", x))
	}
	z := new(Int)
	z.v.Abs(&x.v)
	nthRoot(&z.v, n)
	if x.Sign() < 0 {
		z.v.Neg(&z.v)
	}
	return z
}

// RootRem returns Root(n) and the remainder x - Root(n)**n, which has the
// sign of x. RootRem panics under the same conditions as Root.
func (x *Int) RootRem(n int) (root, rem *Int) {
	root = x.Root(n)
	rem = x.Sub(root.Pow(n))
	return root, rem
}

// Sqrt returns ⌊√x⌋. Sqrt panics with an InvalidArgument error if x < 0.
func (x *Int) Sqrt() *Int {
	if x.Sign() < 0 {
		panic(invalidArgument("bigmath: Sqrt: square root of negative number %s", x))
	}
	z := new(Int)
	z.v.Sqrt(&x.v)
	return z
}

// SqrtRem returns ⌊√x⌋ and the remainder x - ⌊√x⌋². SqrtRem panics with an
// InvalidArgument error if x < 0.
func (x *Int) SqrtRem() (root, rem *Int) {
	root = x.Sqrt()
	rem = x.Sub(root.Mul(root))
	return root, rem
}

// nthRoot sets z to ⌊z**(1/n)⌋ for z >= 0 and n >= 1.
func nthRoot(z *big.Int, n int) {
	if n == 1 || z.Cmp(big.NewInt(2)) < 0 {
		return
	}
	if n == 2 {
		z.Sqrt(z)
		return
	}
	a := new(big.Int).Set(z)

	// Solve tⁿ - a = 0 for t using Newton's method, starting from an
	// overestimate so that the sequence is decreasing:
	//   t₀ = 2**⌈bitlen(a)/n⌉ > a**(1/n)
	// and
	//   t₂ = ((n-1)t + a/tⁿ⁻¹) / n
	// until t₂ >= t.
	t := new(big.Int).Lsh(big.NewInt(1), uint((a.BitLen()+n-1)/n))
	bn := big.NewInt(int64(n))
	bn1 := big.NewInt(int64(n - 1))
	u := new(big.Int)
	v := new(big.Int)
	for {
		u.Exp(t, bn1, nil) // u = tⁿ⁻¹
		u.Quo(a, u)        //   = a/tⁿ⁻¹
		v.Mul(t, bn1)      // v = (n-1)t
		u.Add(u, v)        // u = (n-1)t + a/tⁿ⁻¹
		u.Quo(u, bn)       //   = ((n-1)t + a/tⁿ⁻¹) / n
		if u.Cmp(t) >= 0 {
			break
		}
		t.Set(u)
	}
	z.Set(t)
}
