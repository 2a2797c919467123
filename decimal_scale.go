// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the package scale and the scaled decimal operations.

package bigmath

import (
	"math/big"
	"sync/atomic"

	"github.com/cockroachdb/apd/v3"
)

// DefaultScale is the initial package scale.
const DefaultScale = 2

// MaxScale is the largest supported scale.
const MaxScale = apd.MaxExponent

var globalScale atomic.Int32

func init() {
	globalScale.Store(DefaultScale)
}

// Scale returns the package scale: the number of fractional digits computed by
// Decimal.Div, DivQ, DivQR and Sqrt.
func Scale() int {
	return int(globalScale.Load())
}

// SetScale sets the package scale to n. The new scale applies to every
// operation started after the call, in all goroutines; it is not a per
// goroutine setting. See package bigmath/context for scoped scales.
//
// SetScale panics with an InvalidArgument error if n < 0 or n > MaxScale.
func SetScale(n int) {
	checkScale("SetScale", n)
	globalScale.Store(int32(n))
}

func checkScale(op string, n int) {
	if n < 0 || n > MaxScale {
		panic(invalidArgument("bigmath: %s: scale %d out of range [0, %d]", op, n, MaxScale))
	}
}

var bigTen = big.NewInt(10)

// pow10 returns 10**n for n >= 0.
func pow10(n int64) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(n), nil)
}

// quo returns x/y truncated to scale fractional digits. y must not be zero.
func quo(x, y *apd.Decimal, scale int32) *Decimal {
	a, b := decimalCoeff(x), decimalCoeff(y)
	// x/y × 10**scale = a/b × 10**k
	k := int64(x.Exponent) - int64(y.Exponent) + int64(scale)
	if k >= 0 {
		a.Mul(a, pow10(k))
	} else {
		b.Mul(b, pow10(-k))
	}
	return newDecimalBig(a.Quo(a, b), -scale)
}

// rem returns the truncated remainder of x/y. y must not be zero.
func rem(x, y *apd.Decimal) *Decimal {
	a, b := decimalCoeff(x), decimalCoeff(y)
	e := x.Exponent
	if y.Exponent < e {
		e = y.Exponent
	}
	// align both coefficients on the smallest exponent
	a.Mul(a, pow10(int64(x.Exponent)-int64(e)))
	b.Mul(b, pow10(int64(y.Exponent)-int64(e)))
	return newDecimalBig(a.Rem(a, b), e).norm()
}

// sqrt returns √x truncated to scale fractional digits. x must not be
// negative.
func sqrt(x *apd.Decimal, scale int32) *Decimal {
	// ⌊√x × 10**scale⌋ = ⌊√(c × 10**k)⌋ = ⌊√⌊c × 10**k⌋⌋
	c := decimalCoeff(x)
	k := int64(x.Exponent) + 2*int64(scale)
	if k >= 0 {
		c.Mul(c, pow10(k))
	} else {
		c.Quo(c, pow10(-k))
	}
	return newDecimalBig(c.Sqrt(c), -scale)
}

// truncate returns x rounded toward zero to scale fractional digits.
func truncate(x *apd.Decimal, scale int32) *Decimal {
	c := decimalCoeff(x)
	k := int64(x.Exponent) + int64(scale)
	if k >= 0 {
		c.Mul(c, pow10(k))
	} else {
		c.Quo(c, pow10(-k))
	}
	return newDecimalBig(c, -scale)
}

// decimalCoeff returns the signed coefficient of x.
func decimalCoeff(x *apd.Decimal) *big.Int {
	c := x.Coeff.MathBigInt()
	if x.Negative {
		c.Neg(c)
	}
	return c
}
