// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements number-theoretic functions on Ints.

package bigmath

import (
	"math"
	"math/big"
)

// Repetition bounds for IsPrime.
const (
	minPrimeReps = 5
	maxPrimeReps = 10
)

// IsPrime reports whether x is probably prime.
//
// The probability factor, a value in [0, 1], selects the number of
// Miller-Rabin rounds as floor(5 + 5*factor). Composites are misreported as
// prime with a probability of at most 4**-rounds. IsPrime panics with an
// InvalidArgument error if the resulting count is outside [5, 10].
func (x *Int) IsPrime(factor float64) bool {
	reps := math.Floor(factor*5 + 5)
	if !(reps >= minPrimeReps && reps <= maxPrimeReps) {
		panic(invalidArgument("bigmath: IsPrime: probability factor %g out of range [0, 1]", factor))
	}
	return x.v.ProbablyPrime(int(reps))
}

// Rounds used for internal primality tests.
const nextPrimeReps = 20

// NextPrime returns the smallest prime greater than x.
func (x *Int) NextPrime() *Int {
	if x.v.Cmp(&intTwo.v) < 0 {
		return NewInt(2)
	}
	z := x.Copy().Inc()
	if z.Even() {
		z.Inc()
	}
	for !z.v.ProbablyPrime(nextPrimeReps) {
		z.v.Add(&z.v, &intTwo.v)
	}
	return z
}

// Jacobi returns the Jacobi symbol (x/y), either +1, -1, or 0.
// Jacobi panics with an InvalidArgument error if y is even.
func (x *Int) Jacobi(y *Int) int {
	if y.Even() {
		panic(invalidArgument("bigmath: Jacobi: even modulus %s", y))
	}
	return big.Jacobi(&x.v, &y.v)
}

// Legendre returns the Legendre symbol (x/p) for an odd prime p and true. If x
// is less than 1 or even, Legendre returns 0 and false.
//
// Legendre panics with an InvalidArgument error if p is even.
func (x *Int) Legendre(p *Int) (int, bool) {
	if x.Lt(intOne) || x.Even() {
		return 0, false
	}
	return x.Jacobi(p), true
}

// Invert returns the multiplicative inverse of x in the ring ℤ/mℤ, in the range
// [0, |m|), and true. If there is no such inverse (x and m are not relatively
// prime, or m == 0), Invert returns nil and false.
func (x *Int) Invert(m *Int) (*Int, bool) {
	if m.IsZero() {
		return nil, false
	}
	z := new(Int)
	if z.v.ModInverse(&x.v, &m.v) == nil {
		return nil, false
	}
	return z, true
}

// Factorial returns x!. Factorial panics with an InvalidArgument error if
// x < 0 or x does not fit in an int64.
func (x *Int) Factorial() *Int {
	if x.Sign() < 0 || !x.IsInt64() {
		panic(invalidArgument("bigmath: Factorial: argument %s out of range", x))
	}
	z := new(Int)
	z.v.MulRange(1, x.Int64())
	return z
}

// PerfectSquare reports whether x is the square of an integer.
func (x *Int) PerfectSquare() bool {
	if x.Sign() < 0 {
		return false
	}
	r := new(big.Int).Sqrt(&x.v)
	return r.Mul(r, r).Cmp(&x.v) == 0
}
