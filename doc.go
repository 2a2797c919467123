// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigmath implements arbitrary-precision integer and decimal arithmetic,
and complex numbers built on either, with a fluent method chaining API.

The following numeric types are supported:

    Int             signed integers, backed by a *big.Int
    Decimal         finite decimal numbers, backed by an apd.Decimal
    IntComplex      complex numbers with Int real and imaginary parts
    DecimalComplex  complex numbers with Decimal real and imaginary parts

The zero value for an Int or Decimal corresponds to 0. Thus, new values can be
declared in the usual ways and denote 0 without further initialization:

    x := new(Int)      // x is an *Int of value 0

Alternatively, new values can be allocated and initialized with the functions:

    func NewInt(x int64) *Int
    func NewDecimal(coeff int64, exp int32) *Decimal
    func ParseInt(s string) (*Int, error)
    func ParseDecimal(s string) (*Decimal, error)

or converted from any supported Go value with IntOf, DecimalOf and their Must
counterparts:

    x := MustDecimal("1.25")            // x := 1.25
    z := MustComplexInt(3, -4)          // z := 3 - 4i

Unlike math/big, numeric operations do not take a result receiver. Operations
are either pure, leaving their operands untouched and returning a new value:

    func (x *Int) Unary() *Int          // z = unary x
    func (x *Int) Binary(y *Int) *Int   // z = x binary y
    func (x *Int) Pred() P              // p = pred(x)

or mutating, setting the receiver and returning it for chaining:

    func (z *Int) Plus(v interface{}) *Int     // z += v

For instance, given two *Int values a and b:

    c := a.Add(b).Mul(b)    // c = (a + b) × b; a and b are unchanged
    a.Plus(1).Minus(b)      // a = a + 1 - b

Operations which cannot produce a result, for example a division by zero, panic
with an Error value. Its Kind classifies the failure and can be tested with
errors.Is, independently of any wrapping:

    if errors.Is(err, bigmath.DivisionByZero) { ... }

Functions like ParseInt return such errors instead of panicking. Package
bigmath/context provides a wrapper that catches Error panics.

Decimal arithmetic (Add, Sub, Mul, Mod, Div, DivQ, DivQR, Sqrt and the mutating
Plus, Minus, Inc and Dec) truncates its result toward zero to the package
scale, a process-wide number of fractional digits set with SetScale. Explicit
scale variants (AddScale, SubScale, MulScale, ModScale, DivScale, DivQRScale,
SqrtScale, Pow, PowMod, Trunc) ignore it. Cmp, Abs and Neg are exact:

    SetScale(4)
    x := NewDecimal(1, 0).Div(NewDecimal(3, 0))     // x = 0.3333
    y := MustDecimal("1.23456").Add(x)              // y = 1.5678

Values are not safe for concurrent mutation. The package scale and the random
source used by RandomBits and RandomRange are safe for concurrent use.
*/
package bigmath
