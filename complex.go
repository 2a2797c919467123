// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements complex numbers over Ints and Decimals.

package bigmath

import "github.com/pkg/errors"

// Scalar is the set of operations Complex requires from its component type.
// It is implemented by *Int and *Decimal.
type Scalar[T any] interface {
	Add(y T) T
	Sub(y T) T
	Mul(y T) T
	Div(y T) T
	Neg() T
	Abs() T
	Sqrt() T
	Sign() int
	Cmp(y T) int
	Copy() T
	String() string
	orZero() T
	two() T
}

// A Complex represents the complex number r + ii where the real part r and the
// imaginary part i are of type T. Complex values are immutable: all
// operations return new values. The zero value is 0 + 0i.
//
// Division and square roots are computed with the semantics of T: Int
// components use truncated integer division and integer square roots, Decimal
// components use the package scale.
type Complex[T Scalar[T]] struct {
	r, i T
}

// IntComplex is a complex number with Int components.
type IntComplex = Complex[*Int]

// DecimalComplex is a complex number with Decimal components.
type DecimalComplex = Complex[*Decimal]

// NewComplex returns the complex number r + ii. r and i are copied.
func NewComplex[T Scalar[T]](r, i T) Complex[T] {
	return Complex[T]{r.orZero().Copy(), i.orZero().Copy()}
}

// ComplexInt returns the complex number r + ii with r and i converted by
// IntOf. The returned error has kind InvalidArgument.
func ComplexInt(r, i interface{}) (IntComplex, error) {
	x, err := IntOf(r)
	if err != nil {
		return IntComplex{}, errors.WithMessage(err, "real part")
	}
	y, err := IntOf(i)
	if err != nil {
		return IntComplex{}, errors.WithMessage(err, "imaginary part")
	}
	return IntComplex{x, y}, nil
}

// MustComplexInt is like ComplexInt but panics on error.
func MustComplexInt(r, i interface{}) IntComplex {
	return IntComplex{mustIntOf("MustComplexInt", r), mustIntOf("MustComplexInt", i)}
}

// ComplexDecimal returns the complex number r + ii with r and i converted by
// DecimalOf. The returned error has kind InvalidArgument.
func ComplexDecimal(r, i interface{}) (DecimalComplex, error) {
	x, err := DecimalOf(r)
	if err != nil {
		return DecimalComplex{}, errors.WithMessage(err, "real part")
	}
	y, err := DecimalOf(i)
	if err != nil {
		return DecimalComplex{}, errors.WithMessage(err, "imaginary part")
	}
	return DecimalComplex{x, y}, nil
}

// MustComplexDecimal is like ComplexDecimal but panics on error.
func MustComplexDecimal(r, i interface{}) DecimalComplex {
	return DecimalComplex{mustDecimalOf("MustComplexDecimal", r), mustDecimalOf("MustComplexDecimal", i)}
}

func (z Complex[T]) parts() (r, i T) {
	return z.r.orZero(), z.i.orZero()
}

// Real returns a copy of the real part of z.
func (z Complex[T]) Real() T {
	return z.r.orZero().Copy()
}

// Imag returns a copy of the imaginary part of z.
func (z Complex[T]) Imag() T {
	return z.i.orZero().Copy()
}

// Copy returns a deep copy of z.
func (z Complex[T]) Copy() Complex[T] {
	return NewComplex(z.r, z.i)
}

// String returns z formatted as "r" if its imaginary part is zero, or as
// "r + ii" or "r - |i|i" otherwise.
func (z Complex[T]) String() string {
	r, i := z.parts()
	switch i.Sign() {
	case 0:
		return r.String()
	case -1:
		return r.String() + " - " + i.Abs().String() + "i"
	}
	return r.String() + " + " + i.String() + "i"
}

// Equals reports whether z and w have equal parts.
func (z Complex[T]) Equals(w Complex[T]) bool {
	r, i := z.parts()
	wr, wi := w.parts()
	return r.Cmp(wr) == 0 && i.Cmp(wi) == 0
}

// EqualsScalar reports whether z equals k + 0i.
func (z Complex[T]) EqualsScalar(k T) bool {
	r, i := z.parts()
	return r.Cmp(k) == 0 && i.Sign() == 0
}

// Add returns z+w.
func (z Complex[T]) Add(w Complex[T]) Complex[T] {
	r, i := z.parts()
	wr, wi := w.parts()
	return Complex[T]{r.Add(wr), i.Add(wi)}
}

// AddScalar returns z+k.
func (z Complex[T]) AddScalar(k T) Complex[T] {
	r, i := z.parts()
	return Complex[T]{r.Add(k), i.Copy()}
}

// Sub returns z-w.
func (z Complex[T]) Sub(w Complex[T]) Complex[T] {
	r, i := z.parts()
	wr, wi := w.parts()
	return Complex[T]{r.Sub(wr), i.Sub(wi)}
}

// SubScalar returns z-k.
func (z Complex[T]) SubScalar(k T) Complex[T] {
	r, i := z.parts()
	return Complex[T]{r.Sub(k), i.Copy()}
}

// Mul returns z×w.
func (z Complex[T]) Mul(w Complex[T]) Complex[T] {
	r, i := z.parts()
	wr, wi := w.parts()
	return Complex[T]{
		r.Mul(wr).Sub(i.Mul(wi)),
		i.Mul(wr).Add(r.Mul(wi)),
	}
}

// MulScalar returns z×k.
func (z Complex[T]) MulScalar(k T) Complex[T] {
	r, i := z.parts()
	return Complex[T]{r.Mul(k), i.Mul(k)}
}

// Div returns z/w computed as z×conj(w) / |w|².
// Div panics with ErrDivisionByZero if w == 0.
func (z Complex[T]) Div(w Complex[T]) Complex[T] {
	r, i := z.parts()
	wr, wi := w.parts()
	d := wr.Mul(wr).Add(wi.Mul(wi))
	if d.Sign() == 0 {
		panic(ErrDivisionByZero)
	}
	return Complex[T]{
		r.Mul(wr).Add(i.Mul(wi)).Div(d),
		i.Mul(wr).Sub(r.Mul(wi)).Div(d),
	}
}

// DivScalar returns (r/k) + (i/k)i.
// DivScalar panics with ErrDivisionByZero if k == 0.
func (z Complex[T]) DivScalar(k T) Complex[T] {
	if k.Sign() == 0 {
		panic(ErrDivisionByZero)
	}
	r, i := z.parts()
	return Complex[T]{r.Div(k), i.Div(k)}
}

// Inverse returns 1/z. Inverse panics with ErrInvertingZero if z == 0.
func (z Complex[T]) Inverse() Complex[T] {
	r, i := z.parts()
	d := r.Mul(r).Add(i.Mul(i))
	if d.Sign() == 0 {
		panic(ErrInvertingZero)
	}
	return Complex[T]{r.Div(d), i.Div(d).Neg()}
}

// Abs returns the modulus √(r² + i²) of z.
func (z Complex[T]) Abs() T {
	r, i := z.parts()
	return r.Mul(r).Add(i.Mul(i)).Sqrt()
}

// Conjugate returns r - ii.
func (z Complex[T]) Conjugate() Complex[T] {
	r, i := z.parts()
	return Complex[T]{r.Copy(), i.Neg()}
}

// Neg returns -z.
func (z Complex[T]) Neg() Complex[T] {
	r, i := z.parts()
	return Complex[T]{r.Neg(), i.Neg()}
}

// Sqrt returns the principal square root of z. With m = |z|:
//
//	√z = √((m+r)/2) + √((m-r)/-2)i  if i < 0
//	√z = √((m+r)/2) + √((m-r)/2)i   otherwise
//
// where the square root of a negative value v is taken as -√-v.
func (z Complex[T]) Sqrt() Complex[T] {
	r, i := z.parts()
	if r.Sign() == 0 && i.Sign() == 0 {
		return Complex[T]{r.Copy(), i.Copy()}
	}
	m := z.Abs()
	two := r.two()
	re := signedSqrt(m.Add(r).Div(two))
	if i.Sign() < 0 {
		return Complex[T]{re, signedSqrt(m.Sub(r).Div(two.Neg()))}
	}
	return Complex[T]{re, signedSqrt(m.Sub(r).Div(two))}
}

// signedSqrt returns √v for v >= 0 and -√-v otherwise.
func signedSqrt[T Scalar[T]](v T) T {
	if v.Sign() < 0 {
		return v.Neg().Sqrt().Neg()
	}
	return v.Sqrt()
}
