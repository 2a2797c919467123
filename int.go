// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the Int type: construction, comparison and arithmetic.

package bigmath

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

// An Int represents a signed integer of arbitrary size.
// The zero value for an Int represents the value 0.
//
// Operations on an Int are either pure, returning a new *Int and leaving their
// operands untouched (Add, Sub, ...), or mutating, modifying the receiver and
// returning it (Plus, Minus, Set, SetBit, ...).
//
// Copying an Int value is not supported; use Copy.
type Int struct {
	v big.Int
}

var (
	intOne = NewInt(1)
	intTwo = NewInt(2)
)

// NewInt returns a new *Int set to x.
func NewInt(x int64) *Int {
	z := new(Int)
	z.v.SetInt64(x)
	return z
}

// ParseInt returns a new *Int set to the value of s. s may have an optional
// sign followed by digits in base 10, or in base 16, 8 or 2 if prefixed with
// "0x", "0o" (or a plain leading "0") and "0b" respectively. Single
// underscores may separate digits.
//
// The returned error has kind InvalidArgument.
func ParseInt(s string) (*Int, error) {
	z := new(Int)
	if _, ok := z.v.SetString(s, 0); !ok {
		return nil, errors.WithStack(invalidArgument("bigmath: cannot parse %q as an integer", s))
	}
	return z, nil
}

func newIntBig(x *big.Int) *Int {
	z := new(Int)
	z.v.Set(x)
	return z
}

// Copy returns a new *Int set to x.
func (x *Int) Copy() *Int {
	return newIntBig(&x.v)
}

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) *Int {
	z.v.Set(&x.v)
	return z
}

// SetString sets z to the value of s, as accepted by ParseInt, and returns z.
// If s cannot be parsed, z is unchanged and an error of kind InvalidArgument
// is returned.
func (z *Int) SetString(s string) (*Int, error) {
	x, err := ParseInt(s)
	if err != nil {
		return z, err
	}
	return z.Set(x), nil
}

// Big returns a new *big.Int set to x.
func (x *Int) Big() *big.Int {
	return new(big.Int).Set(&x.v)
}

// Int64 returns the int64 representation of x. If x cannot be represented in
// an int64, the result is undefined.
func (x *Int) Int64() int64 {
	return x.v.Int64()
}

// IsInt64 reports whether x can be represented as an int64.
func (x *Int) IsInt64() bool {
	return x.v.IsInt64()
}

// String returns the decimal representation of x.
func (x *Int) String() string {
	if x == nil {
		return "<nil>"
	}
	return x.v.String()
}

// Text returns the string representation of x in the given base. Base must be
// between 2 and 62, inclusive.
func (x *Int) Text(base int) string {
	return x.v.Text(base)
}

// Format implements fmt.Formatter with the same verbs and flags as *big.Int.
func (x *Int) Format(s fmt.State, ch rune) {
	if x == nil {
		fmt.Fprint(s, "<nil>")
		return
	}
	x.v.Format(s, ch)
}

// Decimal returns x as a new *Decimal.
func (x *Int) Decimal() *Decimal {
	return newDecimalBig(&x.v, 0)
}

// orZero lets Complex handle zero values. It may be called on a nil receiver.
func (x *Int) orZero() *Int {
	if x == nil {
		return new(Int)
	}
	return x
}

func (*Int) two() *Int { return NewInt(2) }

// sign normalizes the result of a backend comparison.
func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	}
	return 0
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x *Int) Cmp(y *Int) int {
	return sign(x.v.Cmp(&y.v))
}

// Eq reports whether x == y.
func (x *Int) Eq(y *Int) bool { return x.Cmp(y) == 0 }

// Ne reports whether x != y.
func (x *Int) Ne(y *Int) bool { return x.Cmp(y) != 0 }

// Lt reports whether x < y.
func (x *Int) Lt(y *Int) bool { return x.Cmp(y) < 0 }

// Lte reports whether x <= y.
func (x *Int) Lte(y *Int) bool { return x.Cmp(y) <= 0 }

// Gt reports whether x > y.
func (x *Int) Gt(y *Int) bool { return x.Cmp(y) > 0 }

// Gte reports whether x >= y.
func (x *Int) Gte(y *Int) bool { return x.Cmp(y) >= 0 }

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x *Int) Sign() int {
	return x.v.Sign()
}

// IsZero reports whether x == 0.
func (x *Int) IsZero() bool { return x.v.Sign() == 0 }

// IsOne reports whether x == 1.
func (x *Int) IsOne() bool { return x.Cmp(intOne) == 0 }

// Even reports whether bit 0 of x is clear.
func (x *Int) Even() bool { return x.v.Bit(0) == 0 }

// Odd reports whether bit 0 of x is set.
func (x *Int) Odd() bool { return x.v.Bit(0) == 1 }

// Max returns a copy of the larger of x and y.
func (x *Int) Max(y *Int) *Int {
	if x.Cmp(y) >= 0 {
		return x.Copy()
	}
	return y.Copy()
}

// Min returns a copy of the smaller of x and y.
func (x *Int) Min(y *Int) *Int {
	if x.Cmp(y) <= 0 {
		return x.Copy()
	}
	return y.Copy()
}

// Add returns x+y.
func (x *Int) Add(y *Int) *Int {
	z := new(Int)
	z.v.Add(&x.v, &y.v)
	return z
}

// Sub returns x-y.
func (x *Int) Sub(y *Int) *Int {
	z := new(Int)
	z.v.Sub(&x.v, &y.v)
	return z
}

// Mul returns x*y.
func (x *Int) Mul(y *Int) *Int {
	z := new(Int)
	z.v.Mul(&x.v, &y.v)
	return z
}

// Div returns the quotient x/y truncated toward zero.
// Div panics with ErrDivisionByZero if y == 0.
func (x *Int) Div(y *Int) *Int {
	if y.IsZero() {
		panic(ErrDivisionByZero)
	}
	z := new(Int)
	z.v.Quo(&x.v, &y.v)
	return z
}

// Mod returns the remainder of x/y with the sign of x, such that
//
//	x.Div(y).Mul(y).Add(x.Mod(y)) == x
//
// Mod panics with ErrDivisionByZero if y == 0.
func (x *Int) Mod(y *Int) *Int {
	if y.IsZero() {
		panic(ErrDivisionByZero)
	}
	z := new(Int)
	z.v.Rem(&x.v, &y.v)
	return z
}

// DivRem returns the quotient and remainder of x/y, as computed by Div and
// Mod. DivRem panics with ErrDivisionByZero if y == 0.
func (x *Int) DivRem(y *Int) (q, r *Int) {
	if y.IsZero() {
		panic(ErrDivisionByZero)
	}
	q, r = new(Int), new(Int)
	q.v.QuoRem(&x.v, &y.v, &r.v)
	return q, r
}

// Pow returns x**n. Pow panics with an InvalidArgument error if n < 0.
func (x *Int) Pow(n int) *Int {
	if n < 0 {
		panic(invalidArgument("bigmath: Pow: negative exponent %d", n))
	}
	z := new(Int)
	z.v.Exp(&x.v, big.NewInt(int64(n)), nil)
	return z
}

// ModPow returns x**e mod |m|, in the range [0, |m|). If e < 0, the modular
// inverse of x raised to -e is returned.
//
// ModPow panics with ErrDivisionByZero if m == 0, and with an InvalidArgument
// error if e < 0 and x has no inverse modulo m.
func (x *Int) ModPow(e, m *Int) *Int {
	if m.IsZero() {
		panic(ErrDivisionByZero)
	}
	mod := new(big.Int).Abs(&m.v)
	z := new(Int)
	if z.v.Exp(&x.v, &e.v, mod) == nil {
		panic(invalidArgument("bigmath: ModPow: %s has no inverse modulo %s", x, m))
	}
	return z
}

// GCD returns the greatest common divisor of |x| and |y|. GCD(0, 0) == 0.
func (x *Int) GCD(y *Int) *Int {
	a := new(big.Int).Abs(&x.v)
	b := new(big.Int).Abs(&y.v)
	z := new(Int)
	z.v.GCD(nil, nil, a, b)
	return z
}

// Abs returns |x|.
func (x *Int) Abs() *Int {
	z := new(Int)
	z.v.Abs(&x.v)
	return z
}

// Neg returns -x.
func (x *Int) Neg() *Int {
	z := new(Int)
	z.v.Neg(&x.v)
	return z
}

// Not returns the one's complement ^x.
func (x *Int) Not() *Int {
	z := new(Int)
	z.v.Not(&x.v)
	return z
}

// Plus sets z to z+v and returns z. v is converted with IntOf; Plus panics
// with an InvalidArgument error if the conversion fails.
func (z *Int) Plus(v interface{}) *Int {
	y := mustIntOf("Plus", v)
	z.v.Add(&z.v, &y.v)
	return z
}

// Minus sets z to z-v and returns z. v is converted with IntOf; Minus panics
// with an InvalidArgument error if the conversion fails.
func (z *Int) Minus(v interface{}) *Int {
	y := mustIntOf("Minus", v)
	z.v.Sub(&z.v, &y.v)
	return z
}

// Inc sets z to z+1 and returns z.
func (z *Int) Inc() *Int {
	z.v.Add(&z.v, &intOne.v)
	return z
}

// Dec sets z to z-1 and returns z.
func (z *Int) Dec() *Int {
	z.v.Sub(&z.v, &intOne.v)
	return z
}
