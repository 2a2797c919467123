// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the Decimal type.

package bigmath

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"
)

// A Decimal represents a finite decimal number of arbitrary precision: an
// integer coefficient scaled by a power of ten. The zero value for a Decimal
// represents the value 0.
//
// Add, Sub, Mul, Mod, Div, DivQ, DivQR, Sqrt and the mutating Plus, Minus, Inc
// and Dec truncate their result to the package scale (see SetScale); the
// *Scale variants, Pow and PowMod take an explicit scale. Results of scaled
// operations always carry exactly that many fractional digits. Cmp, Abs and
// Neg are exact.
//
// Like Int, operations are either pure or mutating (Plus, Minus, Set, ...).
// Copying a Decimal value is not supported; use Copy.
type Decimal struct {
	v apd.Decimal
}

var (
	decimalOne = NewDecimal(1, 0)
	decimalTwo = NewDecimal(2, 0)
)

// exactCtx performs unrounded arithmetic. Results are truncated afterwards.
var exactCtx = apd.BaseContext

// NewDecimal returns a new *Decimal set to coeff × 10**exp.
func NewDecimal(coeff int64, exp int32) *Decimal {
	z := new(Decimal)
	z.v.SetFinite(coeff, exp)
	return z.norm()
}

// ParseDecimal returns a new *Decimal set to the value of s. s is an optional
// sign followed by decimal digits with an optional decimal point and an
// optional exponent ("e" or "E" followed by a signed integer). Infinities and
// NaNs are rejected.
//
// The returned error has kind InvalidArgument.
func ParseDecimal(s string) (*Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, errors.WithStack(invalidArgument("bigmath: cannot parse %q as a decimal (%v)", s, err))
	}
	if d.Form != apd.Finite {
		return nil, errors.WithStack(invalidArgument("bigmath: cannot parse %q as a decimal (not finite)", s))
	}
	z := new(Decimal)
	z.v.Set(d)
	return z.norm(), nil
}

// newDecimalBig returns a new *Decimal set to c × 10**exp.
func newDecimalBig(c *big.Int, exp int32) *Decimal {
	z := new(Decimal)
	z.v.Coeff.SetMathBigInt(c)
	z.v.Coeff.Abs(&z.v.Coeff)
	z.v.Negative = c.Sign() < 0
	z.v.Exponent = exp
	return z
}

// norm clears the sign of zero values and returns z.
func (z *Decimal) norm() *Decimal {
	if z.v.Coeff.Sign() == 0 {
		z.v.Negative = false
	}
	return z
}

// coeff returns the signed coefficient of x.
func (x *Decimal) coeff() *big.Int {
	return decimalCoeff(&x.v)
}

// integer returns x truncated toward zero and whether x is an integer.
func (x *Decimal) integer() (*big.Int, bool) {
	c := x.coeff()
	if x.v.Exponent >= 0 {
		return c.Mul(c, pow10(int64(x.v.Exponent))), true
	}
	q, r := new(big.Int).QuoRem(c, pow10(-int64(x.v.Exponent)), new(big.Int))
	return q, r.Sign() == 0
}

// Copy returns a new *Decimal set to x.
func (x *Decimal) Copy() *Decimal {
	z := new(Decimal)
	z.v.Set(&x.v)
	return z
}

// Set sets z to x and returns z.
func (z *Decimal) Set(x *Decimal) *Decimal {
	z.v.Set(&x.v)
	return z
}

// SetString sets z to the value of s, as accepted by ParseDecimal, and returns
// z. If s cannot be parsed, z is unchanged and an error of kind
// InvalidArgument is returned.
func (z *Decimal) SetString(s string) (*Decimal, error) {
	x, err := ParseDecimal(s)
	if err != nil {
		return z, err
	}
	return z.Set(x), nil
}

// String returns the plain decimal representation of x, without exponent.
func (x *Decimal) String() string {
	if x == nil {
		return "<nil>"
	}
	return x.v.Text('f')
}

// Exponent returns the power of ten x's coefficient is scaled by. For values
// with fractional digits, -Exponent is their count.
func (x *Decimal) Exponent() int {
	return int(x.v.Exponent)
}

// IsInteger reports whether x has no fractional part.
func (x *Decimal) IsInteger() bool {
	_, ok := x.integer()
	return ok
}

// Int returns x truncated toward zero.
func (x *Decimal) Int() *Int {
	i, _ := x.integer()
	return newIntBig(i)
}

// orZero lets Complex handle zero values. It may be called on a nil receiver.
func (x *Decimal) orZero() *Decimal {
	if x == nil {
		return new(Decimal)
	}
	return x
}

func (*Decimal) two() *Decimal { return NewDecimal(2, 0) }

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// Values that differ only in their number of trailing fractional zeros are
// equal.
func (x *Decimal) Cmp(y *Decimal) int {
	return sign(x.v.Cmp(&y.v))
}

// Eq reports whether x == y.
func (x *Decimal) Eq(y *Decimal) bool { return x.Cmp(y) == 0 }

// Ne reports whether x != y.
func (x *Decimal) Ne(y *Decimal) bool { return x.Cmp(y) != 0 }

// Lt reports whether x < y.
func (x *Decimal) Lt(y *Decimal) bool { return x.Cmp(y) < 0 }

// Lte reports whether x <= y.
func (x *Decimal) Lte(y *Decimal) bool { return x.Cmp(y) <= 0 }

// Gt reports whether x > y.
func (x *Decimal) Gt(y *Decimal) bool { return x.Cmp(y) > 0 }

// Gte reports whether x >= y.
func (x *Decimal) Gte(y *Decimal) bool { return x.Cmp(y) >= 0 }

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x *Decimal) Sign() int {
	return x.v.Sign()
}

// IsZero reports whether x == 0.
func (x *Decimal) IsZero() bool { return x.v.IsZero() }

// IsOne reports whether x == 1.
func (x *Decimal) IsOne() bool { return x.Cmp(decimalOne) == 0 }

// Even reports whether x is an integer and x mod 2 == 0.
func (x *Decimal) Even() bool { return rem(&x.v, &decimalTwo.v).IsZero() }

// Odd reports whether x is an integer and |x mod 2| == 1. Negative odd
// integers are odd. Non-integers are neither even nor odd. The remainder is
// exact: the package scale does not apply.
func (x *Decimal) Odd() bool { return rem(&x.v, &decimalTwo.v).Abs().IsOne() }

// Max returns a copy of the larger of x and y.
func (x *Decimal) Max(y *Decimal) *Decimal {
	if x.Cmp(y) >= 0 {
		return x.Copy()
	}
	return y.Copy()
}

// Min returns a copy of the smaller of x and y.
func (x *Decimal) Min(y *Decimal) *Decimal {
	if x.Cmp(y) <= 0 {
		return x.Copy()
	}
	return y.Copy()
}

// check converts backend errors into panics. They only happen when exponent
// limits are exceeded.
func check(_ apd.Condition, err error) {
	if err != nil {
		panic(invalidArgument("bigmath: %v", err))
	}
}

// Add returns x+y truncated to Scale() fractional digits.
func (x *Decimal) Add(y *Decimal) *Decimal {
	return x.AddScale(y, Scale())
}

// AddScale returns x+y truncated to scale fractional digits.
// AddScale panics with an InvalidArgument error if scale is out of range.
func (x *Decimal) AddScale(y *Decimal, scale int) *Decimal {
	checkScale("AddScale", scale)
	var z apd.Decimal
	check(exactCtx.Add(&z, &x.v, &y.v))
	return truncate(&z, int32(scale))
}

// Sub returns x-y truncated to Scale() fractional digits.
func (x *Decimal) Sub(y *Decimal) *Decimal {
	return x.SubScale(y, Scale())
}

// SubScale returns x-y truncated to scale fractional digits.
// SubScale panics with an InvalidArgument error if scale is out of range.
func (x *Decimal) SubScale(y *Decimal, scale int) *Decimal {
	checkScale("SubScale", scale)
	var z apd.Decimal
	check(exactCtx.Sub(&z, &x.v, &y.v))
	return truncate(&z, int32(scale))
}

// Mul returns x*y truncated to Scale() fractional digits.
func (x *Decimal) Mul(y *Decimal) *Decimal {
	return x.MulScale(y, Scale())
}

// MulScale returns x*y truncated to scale fractional digits.
// MulScale panics with an InvalidArgument error if scale is out of range.
func (x *Decimal) MulScale(y *Decimal, scale int) *Decimal {
	checkScale("MulScale", scale)
	var z apd.Decimal
	check(exactCtx.Mul(&z, &x.v, &y.v))
	return truncate(&z, int32(scale))
}

// Abs returns |x|.
func (x *Decimal) Abs() *Decimal {
	z := new(Decimal)
	z.v.Abs(&x.v)
	return z
}

// Neg returns -x.
func (x *Decimal) Neg() *Decimal {
	z := new(Decimal)
	z.v.Neg(&x.v)
	return z.norm()
}

// Div returns x/y truncated to Scale() fractional digits.
// Div panics with ErrDivisionByZero if y == 0.
func (x *Decimal) Div(y *Decimal) *Decimal {
	return x.DivScale(y, Scale())
}

// DivScale returns x/y truncated to scale fractional digits.
//
// DivScale panics with ErrDivisionByZero if y == 0, and with an
// InvalidArgument error if scale is out of range.
func (x *Decimal) DivScale(y *Decimal, scale int) *Decimal {
	checkScale("DivScale", scale)
	if y.IsZero() {
		panic(ErrDivisionByZero)
	}
	return quo(&x.v, &y.v, int32(scale))
}

// Mod returns the remainder of x/y with the sign of x, truncated to Scale()
// fractional digits:
//
//	x - y × trunc(x/y)
//
// Mod panics with ErrDivisionByZero if y == 0.
func (x *Decimal) Mod(y *Decimal) *Decimal {
	return x.ModScale(y, Scale())
}

// ModScale is like Mod but truncates the remainder to scale fractional digits.
// ModScale panics with ErrDivisionByZero if y == 0, and with an
// InvalidArgument error if scale is out of range.
func (x *Decimal) ModScale(y *Decimal, scale int) *Decimal {
	checkScale("ModScale", scale)
	if y.IsZero() {
		panic(ErrDivisionByZero)
	}
	r := rem(&x.v, &y.v)
	return truncate(&r.v, int32(scale))
}

// DivQ returns the quotient (x - x.Mod(y)) / y, computed by Div.
// DivQ panics with ErrDivisionByZero if y == 0.
func (x *Decimal) DivQ(y *Decimal) *Decimal {
	q, _ := x.DivQR(y)
	return q
}

// DivQR returns DivQ(y) and Mod(y).
// DivQR panics with ErrDivisionByZero if y == 0.
func (x *Decimal) DivQR(y *Decimal) (q, r *Decimal) {
	return x.DivQRScale(y, Scale())
}

// DivQRScale is like DivQR with every step computed at scale fractional
// digits. DivQRScale panics with ErrDivisionByZero if y == 0, and with an
// InvalidArgument error if scale is out of range.
func (x *Decimal) DivQRScale(y *Decimal, scale int) (q, r *Decimal) {
	r = x.ModScale(y, scale)
	q = x.SubScale(r, scale).DivScale(y, scale)
	return q, r
}

// Pow returns x**exp truncated to scale fractional digits. Negative exponents
// are computed as 1 / x**-exp.
//
// Pow panics with an InvalidArgument error if exp is not an integer or scale
// is out of range, and with ErrDivisionByZero if x == 0 and exp < 0.
func (x *Decimal) Pow(exp *Decimal, scale int) *Decimal {
	checkScale("Pow", scale)
	n, ok := exp.integer()
	if !ok || !n.IsInt64() {
		panic(invalidArgument("bigmath: Pow: invalid exponent %s", exp))
	}
	neg := n.Sign() < 0
	if neg && x.IsZero() {
		panic(ErrDivisionByZero)
	}
	n.Abs(n)
	e := new(big.Int).Mul(big.NewInt(int64(x.v.Exponent)), n)
	if !e.IsInt64() || e.Int64() > apd.MaxExponent || e.Int64() < apd.MinExponent {
		panic(invalidArgument("bigmath: Pow: exponent overflow in %s**%s", x, exp))
	}
	c := x.coeff()
	p := newDecimalBig(c.Exp(c, n, nil), int32(e.Int64()))
	if neg {
		return quo(&decimalOne.v, &p.v, int32(scale))
	}
	return p.Trunc(scale)
}

// PowMod returns x**exp mod m truncated to scale fractional digits. The result
// has the sign of x**exp.
//
// PowMod panics with an InvalidArgument error if any operand is not an
// integer, or exp < 0, and with ErrDivisionByZero if m == 0.
func (x *Decimal) PowMod(exp, m *Decimal, scale int) *Decimal {
	checkScale("PowMod", scale)
	b, ok1 := x.integer()
	e, ok2 := exp.integer()
	n, ok3 := m.integer()
	if !ok1 || !ok2 || !ok3 || e.Sign() < 0 {
		panic(invalidArgument("bigmath: PowMod: invalid operands %s, %s, %s", x, exp, m))
	}
	if n.Sign() == 0 {
		panic(ErrDivisionByZero)
	}
	neg := b.Sign() < 0 && e.Bit(0) == 1
	r := new(big.Int).Exp(b.Abs(b), e, n.Abs(n))
	if neg {
		r.Neg(r)
	}
	return newDecimalBig(r, 0).Trunc(scale)
}

// Sqrt returns √x truncated to Scale() fractional digits.
// Sqrt panics with an InvalidArgument error if x < 0.
func (x *Decimal) Sqrt() *Decimal {
	return x.SqrtScale(Scale())
}

// SqrtScale returns √x truncated to scale fractional digits.
//
// SqrtScale panics with an InvalidArgument error if x < 0 or scale is out of
// range.
func (x *Decimal) SqrtScale(scale int) *Decimal {
	checkScale("SqrtScale", scale)
	if x.Sign() < 0 {
		panic(invalidArgument("bigmath: Sqrt: square root of negative number %s", x))
	}
	return sqrt(&x.v, int32(scale))
}

// Trunc returns x truncated toward zero to scale fractional digits. If x has
// fewer fractional digits, the result is padded with zeros.
// Trunc panics with an InvalidArgument error if scale is out of range.
func (x *Decimal) Trunc(scale int) *Decimal {
	checkScale("Trunc", scale)
	return truncate(&x.v, int32(scale))
}

// Plus sets z to z+v truncated to Scale() fractional digits and returns z. v is
// converted with DecimalOf; Plus panics with an InvalidArgument error if the
// conversion fails.
func (z *Decimal) Plus(v interface{}) *Decimal {
	return z.Set(z.Add(mustDecimalOf("Plus", v)))
}

// Minus sets z to z-v truncated to Scale() fractional digits and returns z. v
// is converted with DecimalOf; Minus panics with an InvalidArgument error if
// the conversion fails.
func (z *Decimal) Minus(v interface{}) *Decimal {
	return z.Set(z.Sub(mustDecimalOf("Minus", v)))
}

// Inc sets z to z+1 truncated to Scale() fractional digits and returns z.
func (z *Decimal) Inc() *Decimal {
	return z.Set(z.Add(decimalOne))
}

// Dec sets z to z-1 truncated to Scale() fractional digits and returns z.
func (z *Decimal) Dec() *Decimal {
	return z.Set(z.Sub(decimalOne))
}
