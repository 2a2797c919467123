// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements bitwise operations on Ints.
//
// Negative values behave as if they were represented in two's complement
// with an infinite number of leading 1 bits.

package bigmath

import (
	"math/big"
	"math/bits"
)

// And returns x & y.
func (x *Int) And(y *Int) *Int {
	z := new(Int)
	z.v.And(&x.v, &y.v)
	return z
}

// Or returns x | y.
func (x *Int) Or(y *Int) *Int {
	z := new(Int)
	z.v.Or(&x.v, &y.v)
	return z
}

// Xor returns x ^ y.
func (x *Int) Xor(y *Int) *Int {
	z := new(Int)
	z.v.Xor(&x.v, &y.v)
	return z
}

// TestBit reports whether the i'th bit of x is set.
// TestBit panics with an InvalidArgument error if i < 0.
func (x *Int) TestBit(i int) bool {
	checkIndex("TestBit", i)
	return x.v.Bit(i) == 1
}

// SetBit sets the i'th bit of z to 1 if on is true, to 0 otherwise, and
// returns z. SetBit panics with an InvalidArgument error if i < 0.
func (z *Int) SetBit(i int, on bool) *Int {
	checkIndex("SetBit", i)
	var b uint
	if on {
		b = 1
	}
	z.v.SetBit(&z.v, i, b)
	return z
}

// ClearBit clears the i'th bit of z and returns z.
// ClearBit panics with an InvalidArgument error if i < 0.
func (z *Int) ClearBit(i int) *Int {
	checkIndex("ClearBit", i)
	z.v.SetBit(&z.v, i, 0)
	return z
}

// Scan0 returns the index of the first 0 bit of x at or above index i, or -1
// if there is none (x < 0 and all bits from i upward are set).
// Scan0 panics with an InvalidArgument error if i < 0.
func (x *Int) Scan0(i int) int {
	checkIndex("Scan0", i)
	if x.v.Sign() < 0 {
		// zero bits of x are the one bits of |x|-1
		return scan(complement(&x.v).Bits(), i, false)
	}
	return scan(x.v.Bits(), i, true)
}

// Scan1 returns the index of the first 1 bit of x at or above index i, or -1
// if there is none (x >= 0 and all bits from i upward are clear).
// Scan1 panics with an InvalidArgument error if i < 0.
func (x *Int) Scan1(i int) int {
	checkIndex("Scan1", i)
	if x.v.Sign() < 0 {
		return scan(complement(&x.v).Bits(), i, true)
	}
	return scan(x.v.Bits(), i, false)
}

// PopCount returns the number of 1 bits in x, or -1 if x < 0 (an infinite
// number of bits are set).
func (x *Int) PopCount() int {
	if x.v.Sign() < 0 {
		return -1
	}
	return popCount(x.v.Bits())
}

// HamDist returns the Hamming distance between x and y: the number of bit
// positions where they differ. If x and y have different signs the distance
// is infinite and HamDist returns -1.
func (x *Int) HamDist(y *Int) int {
	xn, yn := x.v.Sign() < 0, y.v.Sign() < 0
	if xn != yn {
		return -1
	}
	a, b := &x.v, &y.v
	if xn {
		// ^x ^ ^y == x ^ y
		a, b = complement(a), complement(b)
	}
	return popCount(new(big.Int).Xor(a, b).Bits())
}

// complement returns ^x == -x-1 for x < 0, a non negative value.
func complement(x *big.Int) *big.Int {
	return new(big.Int).Not(x)
}

// scan returns the index of the first bit at or above i in the little-endian
// magnitude m that is 0 if zero is true, 1 otherwise. Bits above the last word
// are 0. The result is -1 if no bit is found.
func scan(m []big.Word, i int, zero bool) int {
	j := i / bits.UintSize
	if j >= len(m) {
		if zero {
			return i
		}
		return -1
	}
	w := uint(m[j])
	if zero {
		w = ^w
	}
	w &= ^uint(0) << uint(i%bits.UintSize)
	for {
		if w != 0 {
			return j*bits.UintSize + bits.TrailingZeros(w)
		}
		j++
		if j == len(m) {
			if zero {
				return j * bits.UintSize
			}
			return -1
		}
		w = uint(m[j])
		if zero {
			w = ^w
		}
	}
}

func popCount(m []big.Word) (n int) {
	for _, w := range m {
		n += bits.OnesCount(uint(w))
	}
	return n
}
