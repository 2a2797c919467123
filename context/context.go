// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides explicit-scale evaluation contexts for Decimals.
//
// Operators that set a receiver z to a function of other decimal arguments
// like:
//
//	func (c *Context) UnaryOp(z, x *bigmath.Decimal) *bigmath.Decimal
//	func (c *Context) BinaryOp(z, x, y *bigmath.Decimal) *bigmath.Decimal
//
// set z to the result of x.Op(args) computed at c's scale instead of the
// package scale, and return z. Neg and Abs are exact.
//
// A Context catches bigmath errors: if an operation panics with a
// bigmath.Error, such as a division by zero, z is left unchanged and the error
// is recorded. Further operations with the context will be no-ops (they simply
// return the receiver z) until (*Context).Err is called to check for errors.
package context

import (
	"github.com/db47h/bigmath"
	"github.com/pkg/errors"
)

// A Context evaluates Decimal operations at a fixed scale and records the
// first error they raise.
type Context struct {
	scale int
	err   error
}

// New creates a new context with the given scale. If scale < 0, it is set to
// the current package scale.
func New(scale int) *Context {
	return new(Context).SetScale(scale)
}

// Scale returns the number of fractional digits computed by c's scaled
// operations.
func (c *Context) Scale() int {
	return c.scale
}

// SetScale sets c's scale and returns c.
//
// If scale > bigmath.MaxScale, it is set to bigmath.MaxScale. If scale < 0,
// it is set to bigmath.Scale().
func (c *Context) SetScale(scale int) *Context {
	// special case
	if scale < 0 {
		scale = bigmath.Scale()
	}
	// general case
	if scale > bigmath.MaxScale {
		scale = bigmath.MaxScale
	}
	c.scale = scale
	return c
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// Do calls fn unless c has a pending error. If fn panics with a bigmath.Error,
// the error is recorded in c. Do reports whether c has no pending error on
// return.
func (c *Context) Do(fn func()) bool {
	c.do("Do", fn)
	return c.err == nil
}

// do runs fn if c has no pending error and catches bigmath errors. Any other
// panic is propagated.
func (c *Context) do(op string, fn func()) {
	if c.err != nil {
		return
	}
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		err, ok := v.(error)
		var e bigmath.Error
		if !ok || !errors.As(err, &e) {
			panic(v)
		}
		c.err = errors.WithMessage(err, op)
	}()
	fn()
}

// New returns a new Decimal with value 0.
func (c *Context) New() *bigmath.Decimal {
	return new(bigmath.Decimal)
}

// NewInt64 returns a new *bigmath.Decimal set to x.
func (c *Context) NewInt64(x int64) *bigmath.Decimal {
	return bigmath.NewDecimal(x, 0)
}

// Parse returns a new Decimal set to the value of s, as accepted by
// bigmath.ParseDecimal. If s cannot be parsed, or c has a pending error, the
// result is 0 and the parse error, if any, is recorded in c.
func (c *Context) Parse(s string) *bigmath.Decimal {
	z := c.New()
	if c.err != nil {
		return z
	}
	d, err := bigmath.ParseDecimal(s)
	if err != nil {
		c.err = errors.WithMessage(err, "Parse")
		return z
	}
	return z.Set(d)
}

// Round sets z to x truncated to c's scale and returns z.
func (c *Context) Round(z, x *bigmath.Decimal) *bigmath.Decimal {
	c.do("Round", func() { z.Set(x.Trunc(c.scale)) })
	return z
}

// Add sets z to the sum x+y truncated to c's scale and returns z.
func (c *Context) Add(z, x, y *bigmath.Decimal) *bigmath.Decimal {
	c.do("Add", func() { z.Set(x.AddScale(y, c.scale)) })
	return z
}

// Sub sets z to the difference x-y truncated to c's scale and returns z.
func (c *Context) Sub(z, x, y *bigmath.Decimal) *bigmath.Decimal {
	c.do("Sub", func() { z.Set(x.SubScale(y, c.scale)) })
	return z
}

// Mul sets z to the product x×y truncated to c's scale and returns z.
func (c *Context) Mul(z, x, y *bigmath.Decimal) *bigmath.Decimal {
	c.do("Mul", func() { z.Set(x.MulScale(y, c.scale)) })
	return z
}

// Div sets z to the quotient x/y truncated to c's scale and returns z.
func (c *Context) Div(z, x, y *bigmath.Decimal) *bigmath.Decimal {
	c.do("Div", func() { z.Set(x.DivScale(y, c.scale)) })
	return z
}

// Mod sets z to the remainder x.Mod(y) truncated to c's scale and returns z.
func (c *Context) Mod(z, x, y *bigmath.Decimal) *bigmath.Decimal {
	c.do("Mod", func() { z.Set(x.ModScale(y, c.scale)) })
	return z
}

// DivQ sets z to the quotient (x - x.Mod(y)) / y and returns z.
func (c *Context) DivQ(z, x, y *bigmath.Decimal) *bigmath.Decimal {
	c.do("DivQ", func() {
		q, _ := x.DivQRScale(y, c.scale)
		z.Set(q)
	})
	return z
}

// Neg sets z to -x and returns z.
func (c *Context) Neg(z, x *bigmath.Decimal) *bigmath.Decimal {
	if c.err != nil {
		return z
	}
	return z.Set(x.Neg())
}

// Abs sets z to |x| and returns z.
func (c *Context) Abs(z, x *bigmath.Decimal) *bigmath.Decimal {
	if c.err != nil {
		return z
	}
	return z.Set(x.Abs())
}

// Sqrt sets z to the square root of x truncated to c's scale, and returns z.
func (c *Context) Sqrt(z, x *bigmath.Decimal) *bigmath.Decimal {
	c.do("Sqrt", func() { z.Set(x.SqrtScale(c.scale)) })
	return z
}

// Pow sets z to x**exp truncated to c's scale and returns z.
func (c *Context) Pow(z, x, exp *bigmath.Decimal) *bigmath.Decimal {
	c.do("Pow", func() { z.Set(x.Pow(exp, c.scale)) })
	return z
}

// PowMod sets z to x**exp mod m truncated to c's scale and returns z.
func (c *Context) PowMod(z, x, exp, m *bigmath.Decimal) *bigmath.Decimal {
	c.do("PowMod", func() { z.Set(x.PowMod(exp, m, c.scale)) })
	return z
}
