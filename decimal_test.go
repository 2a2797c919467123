// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigmath

import (
	"encoding"
	"encoding/gob"
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

var (
	// required implemented interfaces
	_ fmt.Stringer             = new(Decimal)
	_ encoding.TextMarshaler   = new(Decimal)
	_ encoding.TextUnmarshaler = new(Decimal)
	_ gob.GobEncoder           = new(Decimal)
	_ gob.GobDecoder           = new(Decimal)
	_ Scalar[*Decimal]         = new(Decimal)
)

func makeDecimal(s string) *Decimal {
	x, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return x
}

// withScale sets the package scale to n for the duration of t.
func withScale(t *testing.T, n int) {
	t.Helper()
	old := Scale()
	SetScale(n)
	t.Cleanup(func() { SetScale(old) })
}

func TestDecimalZeroValue(t *testing.T) {
	// zero (uninitialized) value is a ready-to-use 0
	var x Decimal
	if s := x.String(); s != "0" {
		t.Errorf("zero value = %s; want 0", s)
	}
	if !x.IsZero() || x.IsOne() || !x.Even() || x.Odd() || x.Sign() != 0 || !x.IsInteger() {
		t.Errorf("zero value predicates are wrong")
	}
	var y Decimal
	if z := x.Add(&y); !z.IsZero() {
		t.Errorf("0 + 0 = %s; want 0", z)
	}
	if z := x.Add(NewDecimal(3, 0)).Mul(&y); !z.IsZero() {
		t.Errorf("3 × 0 = %s; want 0", z)
	}
}

func TestParseDecimal(t *testing.T) {
	for _, test := range []struct {
		s, want string
	}{
		{"0", "0"},
		{"-0", "0"},
		{"-0.00", "0.00"},
		{"1.50", "1.50"},
		{"+1.5", "1.5"},
		{"-123.456", "-123.456"},
		{".5", "0.5"},
		{"1e3", "1000"},
		{"1.5E-3", "0.0015"},
		{"12345678901234567890.123456789", "12345678901234567890.123456789"},
		{"", ""},
		{"abc", ""},
		{"1.2.3", ""},
		{"Inf", ""},
		{"-Infinity", ""},
		{"NaN", ""},
	} {
		x, err := ParseDecimal(test.s)
		if test.want == "" {
			if err == nil {
				t.Errorf("ParseDecimal(%q) = %s; want error", test.s, x)
			} else if !errors.Is(err, InvalidArgument) {
				t.Errorf("ParseDecimal(%q) error %v is not an InvalidArgument error", test.s, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDecimal(%q) failed: %v", test.s, err)
			continue
		}
		if got := x.String(); got != test.want {
			t.Errorf("ParseDecimal(%q) = %s; want %s", test.s, got, test.want)
		}
	}
}

func TestNewDecimal(t *testing.T) {
	for _, test := range []struct {
		coeff int64
		exp   int32
		want  string
	}{
		{0, 0, "0"},
		{0, -2, "0.00"},
		{123, -2, "1.23"},
		{-123, -5, "-0.00123"},
		{7, 3, "7000"},
	} {
		x := NewDecimal(test.coeff, test.exp)
		if s := x.String(); s != test.want {
			t.Errorf("NewDecimal(%d, %d) = %s; want %s", test.coeff, test.exp, s, test.want)
		}
	}
}

func TestDecimalSetString(t *testing.T) {
	z := NewDecimal(42, 0)
	if _, err := z.SetString("4..2"); err == nil {
		t.Fatal("SetString(4..2) succeeded")
	}
	if z.String() != "42" {
		t.Fatalf("failed SetString modified z: %s", z)
	}
	if r, err := z.SetString("-7.25"); err != nil || r != z || z.String() != "-7.25" {
		t.Fatalf("SetString(-7.25) = %s, %v", r, err)
	}
}

func TestDecimalCmp(t *testing.T) {
	vals := []string{"-1e30", "-2", "-1.5", "0", "0.001", "1", "1.0000000000000000001", "2.5", "1e30"}
	for i, a := range vals {
		for j, b := range vals {
			x, y := makeDecimal(a), makeDecimal(b)
			want := 0
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			if c := x.Cmp(y); c != want {
				t.Errorf("%s.Cmp(%s) = %d; want %d", x, y, c, want)
			}
			if c := y.Cmp(x); c != -want {
				t.Errorf("%s.Cmp(%s) = %d; want %d", y, x, c, -want)
			}
			if x.Eq(y) != (want == 0) || x.Ne(y) != (want != 0) ||
				x.Lt(y) != (want < 0) || x.Lte(y) != (want <= 0) ||
				x.Gt(y) != (want > 0) || x.Gte(y) != (want >= 0) {
				t.Errorf("predicates for %s, %s disagree with Cmp", x, y)
			}
		}
	}
	// trailing zeros do not matter
	if !makeDecimal("1.500").Eq(makeDecimal("1.5")) {
		t.Error("1.500 != 1.5")
	}
}

func TestDecimalPredicates(t *testing.T) {
	for _, test := range []struct {
		x                         string
		zero, one, even, odd, int bool
		sign                      int
	}{
		{"0", true, false, true, false, true, 0},
		{"0.00", true, false, true, false, true, 0},
		{"1", false, true, false, true, true, 1},
		{"1.00", false, true, false, true, true, 1},
		{"-1", false, false, false, true, true, -1},
		{"4", false, false, true, false, true, 1},
		{"-3", false, false, false, true, true, -1},
		{"-4.00", false, false, true, false, true, -1},
		{"3.5", false, false, false, false, false, 1},
		{"2.5", false, false, false, false, false, 1},
		{"1e3", false, false, true, false, true, 1},
	} {
		x := makeDecimal(test.x)
		if x.IsZero() != test.zero || x.IsOne() != test.one || x.Even() != test.even ||
			x.Odd() != test.odd || x.IsInteger() != test.int || x.Sign() != test.sign {
			t.Errorf("predicates for %s are wrong", test.x)
		}
	}
}

func TestDecimalArith(t *testing.T) {
	for _, test := range []struct {
		scale           int
		x, y            string
		sum, diff, prod string
		rem             string
	}{
		{2, "1.5", "2.25", "3.75", "-0.75", "3.37", "1.50"},
		{2, "1.00", "1", "2.00", "0.00", "1.00", "0.00"},
		{1, "-7.5", "2", "-5.5", "-9.5", "-15.0", "-1.5"},
		{1, "7.5", "-2", "5.5", "9.5", "-15.0", "1.5"},
		{2, "0.1", "0.2", "0.30", "-0.10", "0.02", "0.10"},
		{2, "-1.239", "1", "-0.23", "-2.23", "-1.23", "-0.23"},
		{3, "-2.5", "0.004", "-2.496", "-2.504", "-0.010", "0.000"},
		{0, "1.234", "1", "2", "0", "1", "0"},
		{20, "1e20", "1e-20", "100000000000000000000.00000000000000000001", "99999999999999999999.99999999999999999999", "1.00000000000000000000", "0.00000000000000000000"},
	} {
		withScale(t, test.scale)
		x, y := makeDecimal(test.x), makeDecimal(test.y)
		for _, r := range []struct {
			op        string
			got, want string
		}{
			{"+", x.Add(y).String(), test.sum},
			{"-", x.Sub(y).String(), test.diff},
			{"×", x.Mul(y).String(), test.prod},
			{"mod", x.Mod(y).String(), test.rem},
			{"+", x.AddScale(y, test.scale).String(), test.sum},
			{"-", x.SubScale(y, test.scale).String(), test.diff},
			{"×", x.MulScale(y, test.scale).String(), test.prod},
			{"mod", x.ModScale(y, test.scale).String(), test.rem},
		} {
			if r.got != r.want {
				t.Errorf("scale %d: %s %s %s = %s; want %s", test.scale, x, r.op, y, r.got, r.want)
			}
		}
		// operands are left untouched
		if x.String() != makeDecimal(test.x).String() || y.String() != makeDecimal(test.y).String() {
			t.Errorf("operands modified: %s, %s", x, y)
		}
	}
}

func TestDecimalScaleImplicit(t *testing.T) {
	withScale(t, 2)
	x, one := makeDecimal("1.234"), NewDecimal(1, 0)
	if s := x.Add(one).String(); s != "2.23" {
		t.Errorf("1.234 + 1 = %s; want 2.23", s)
	}
	if s := x.Sub(one).String(); s != "0.23" {
		t.Errorf("1.234 - 1 = %s; want 0.23", s)
	}
	if s := x.Mul(makeDecimal("1.111")).String(); s != "1.37" {
		t.Errorf("1.234 × 1.111 = %s; want 1.37", s)
	}
	if s := x.Mod(one).String(); s != "0.23" {
		t.Errorf("1.234 mod 1 = %s; want 0.23", s)
	}
	if s := x.Copy().Plus(1).String(); s != "2.23" {
		t.Errorf("1.234 Plus 1 = %s; want 2.23", s)
	}
	if s := x.Copy().Minus(1).String(); s != "0.23" {
		t.Errorf("1.234 Minus 1 = %s; want 0.23", s)
	}
	if s := x.Copy().Inc().String(); s != "2.23" {
		t.Errorf("1.234 Inc = %s; want 2.23", s)
	}
	if s := x.Copy().Dec().String(); s != "0.23" {
		t.Errorf("1.234 Dec = %s; want 0.23", s)
	}
	// exact operations
	if s := x.Neg().String(); s != "-1.234" {
		t.Errorf("-1.234 = %s", s)
	}
	if !x.Gt(makeDecimal("1.233")) {
		t.Error("1.234 <= 1.233")
	}
	mustPanic(t, InvalidArgument, func() { x.AddScale(one, -1) })
	mustPanic(t, InvalidArgument, func() { x.ModScale(one, MaxScale+1) })
}

func TestDecimalDiv(t *testing.T) {
	for _, test := range []struct {
		scale int
		x, y  string
		quo   string
	}{
		{2, "1", "3", "0.33"},
		{4, "1", "3", "0.3333"},
		{0, "1", "3", "0"},
		{2, "-1", "3", "-0.33"},
		{2, "10", "4", "2.50"},
		{2, "-7", "2", "-3.50"},
		{3, "2", "-3", "-0.666"},
		{2, "0.001", "1", "0.00"},
		{2, "-0.001", "1", "0.00"},
		{0, "1e10", "1e-5", "1000000000000000"},
		{5, "1.5", "0.25", "6.00000"},
	} {
		withScale(t, test.scale)
		x, y := makeDecimal(test.x), makeDecimal(test.y)
		if s := x.Div(y).String(); s != test.quo {
			t.Errorf("scale %d: %s / %s = %s; want %s", test.scale, x, y, s, test.quo)
		}
		if s := x.DivScale(y, test.scale).String(); s != test.quo {
			t.Errorf("%s.DivScale(%s, %d) = %s; want %s", x, y, test.scale, s, test.quo)
		}
	}
}

func TestDecimalDivQR(t *testing.T) {
	withScale(t, 2)
	for _, test := range []struct {
		x, y, q, r string
	}{
		{"7.5", "2", "3.00", "1.50"},
		{"-7.5", "2", "-3.00", "-1.50"},
		{"7", "7", "1.00", "0.00"},
		{"0.5", "2", "0.00", "0.50"},
		{"10", "0.3", "33.00", "0.10"},
	} {
		x, y := makeDecimal(test.x), makeDecimal(test.y)
		q, r := x.DivQR(y)
		if q.String() != test.q || r.String() != test.r {
			t.Errorf("%s.DivQR(%s) = %s, %s; want %s, %s", x, y, q, r, test.q, test.r)
		}
		if s := x.DivQ(y).String(); s != test.q {
			t.Errorf("%s.DivQ(%s) = %s; want %s", x, y, s, test.q)
		}
		if q, r := x.DivQRScale(y, 2); q.String() != test.q || r.String() != test.r {
			t.Errorf("%s.DivQRScale(%s, 2) = %s, %s; want %s, %s", x, y, q, r, test.q, test.r)
		}
		// x == q × y + r
		if z := q.Mul(y).Add(r); !z.Eq(x) {
			t.Errorf("%s × %s + %s = %s; want %s", q, y, r, z, x)
		}
	}
}

func TestDecimalDivisionByZero(t *testing.T) {
	x, zero := NewDecimal(5, 0), NewDecimal(0, -3)
	for name, f := range map[string]func(){
		"Div":      func() { x.Div(zero) },
		"DivScale": func() { x.DivScale(zero, 3) },
		"Mod":      func() { x.Mod(zero) },
		"DivQ":     func() { x.DivQ(zero) },
		"DivQR":    func() { x.DivQR(zero) },
		"ModScale": func() { x.ModScale(zero, 2) },
		"Pow":      func() { zero.Pow(NewDecimal(-1, 0), 2) },
		"PowMod":   func() { x.PowMod(NewDecimal(2, 0), zero, 2) },
	} {
		t.Run(name, func(t *testing.T) {
			mustPanic(t, DivisionByZero, f)
		})
	}
}

func TestDecimalPow(t *testing.T) {
	for _, test := range []struct {
		x, exp string
		scale  int
		want   string
	}{
		{"1.5", "2", 2, "2.25"},
		{"1.5", "2", 1, "2.2"},
		{"1.5", "2", 4, "2.2500"},
		{"2", "10", 0, "1024"},
		{"2", "-2", 4, "0.2500"},
		{"-2", "3", 0, "-8"},
		{"-2", "-3", 3, "-0.125"},
		{"3", "-1", 2, "0.33"},
		{"7.25", "0", 2, "1.00"},
		{"0", "5", 0, "0"},
		{"10", "2.0", 0, "100"},
	} {
		x, e := makeDecimal(test.x), makeDecimal(test.exp)
		if s := x.Pow(e, test.scale).String(); s != test.want {
			t.Errorf("%s**%s (scale %d) = %s; want %s", x, e, test.scale, s, test.want)
		}
	}
	mustPanic(t, InvalidArgument, func() { NewDecimal(2, 0).Pow(makeDecimal("0.5"), 2) })
	mustPanic(t, InvalidArgument, func() { NewDecimal(2, 0).Pow(NewDecimal(2, 0), -1) })
}

func TestDecimalPowMod(t *testing.T) {
	for _, test := range []struct {
		x, exp, m string
		scale     int
		want      string
	}{
		{"4", "13", "497", 0, "445"},
		{"4", "13", "497", 2, "445.00"},
		{"-4", "3", "5", 0, "-4"},
		{"-4", "2", "5", 0, "1"},
		{"2", "10", "-1000", 0, "24"},
		{"3", "0", "7", 0, "1"},
	} {
		x, e, m := makeDecimal(test.x), makeDecimal(test.exp), makeDecimal(test.m)
		if s := x.PowMod(e, m, test.scale).String(); s != test.want {
			t.Errorf("%s**%s mod %s = %s; want %s", x, e, m, s, test.want)
		}
	}
	for _, args := range [][3]string{
		{"2.5", "2", "7"},
		{"2", "2.5", "7"},
		{"2", "2", "7.5"},
		{"2", "-1", "7"},
	} {
		x, e, m := makeDecimal(args[0]), makeDecimal(args[1]), makeDecimal(args[2])
		mustPanic(t, InvalidArgument, func() { x.PowMod(e, m, 0) })
	}
}

func TestDecimalSqrt(t *testing.T) {
	for _, test := range []struct {
		scale int
		x     string
		want  string
	}{
		{2, "2", "1.41"},
		{10, "2", "1.4142135623"},
		{0, "2", "1"},
		{2, "0", "0.00"},
		{2, "0.25", "0.50"},
		{3, "0.0004", "0.020"},
		{2, "1e10", "100000.00"},
		{2, "152415787532388367501905199875019052100", "12345678901234567890.00"},
	} {
		withScale(t, test.scale)
		x := makeDecimal(test.x)
		if s := x.Sqrt().String(); s != test.want {
			t.Errorf("scale %d: √%s = %s; want %s", test.scale, x, s, test.want)
		}
		if s := x.SqrtScale(test.scale).String(); s != test.want {
			t.Errorf("%s.SqrtScale(%d) = %s; want %s", x, test.scale, s, test.want)
		}
	}
	mustPanic(t, InvalidArgument, func() { NewDecimal(-1, 0).Sqrt() })
}

func TestDecimalTrunc(t *testing.T) {
	for _, test := range []struct {
		x     string
		scale int
		want  string
	}{
		{"2.259", 2, "2.25"},
		{"-2.259", 2, "-2.25"},
		{"2.259", 0, "2"},
		{"0.009", 2, "0.00"},
		{"-0.009", 2, "0.00"},
		{"1024", 2, "1024.00"},
		{"1e3", 1, "1000.0"},
	} {
		if s := makeDecimal(test.x).Trunc(test.scale).String(); s != test.want {
			t.Errorf("%s.Trunc(%d) = %s; want %s", test.x, test.scale, s, test.want)
		}
	}
	mustPanic(t, InvalidArgument, func() { NewDecimal(1, 0).Trunc(-1) })
}

func TestDecimalScale(t *testing.T) {
	if DefaultScale != 2 {
		t.Fatalf("DefaultScale = %d", DefaultScale)
	}
	withScale(t, 4)
	if Scale() != 4 {
		t.Fatalf("Scale() = %d; want 4", Scale())
	}
	if s := NewDecimal(1, 0).Div(NewDecimal(3, 0)).String(); s != "0.3333" {
		t.Fatalf("1/3 = %s; want 0.3333", s)
	}
	mustPanic(t, InvalidArgument, func() { SetScale(-1) })
	mustPanic(t, InvalidArgument, func() { SetScale(MaxScale + 1) })
	if Scale() != 4 {
		t.Fatalf("failed SetScale changed the scale to %d", Scale())
	}
}

func TestDecimalUnary(t *testing.T) {
	x := makeDecimal("-5.50")
	if s := x.Abs().String(); s != "5.50" {
		t.Errorf("|-5.50| = %s", s)
	}
	if s := x.Neg().String(); s != "5.50" {
		t.Errorf("-(-5.50) = %s", s)
	}
	if s := NewDecimal(0, -1).Neg().String(); s != "0.0" {
		t.Errorf("-0.0 = %s", s)
	}
	if x.String() != "-5.50" {
		t.Errorf("operand modified: %s", x)
	}
	if m := x.Max(NewDecimal(1, 0)); m.String() != "1" {
		t.Errorf("Max(-5.50, 1) = %s", m)
	}
	if m := x.Min(NewDecimal(1, 0)); m.String() != "-5.50" {
		t.Errorf("Min(-5.50, 1) = %s", m)
	}
}

func TestDecimalInt(t *testing.T) {
	for _, test := range []struct {
		x, want string
		exp     int
	}{
		{"0", "0", 0},
		{"12.99", "12", -2},
		{"-12.99", "-12", -2},
		{"1e5", "100000", 5},
		{"-0.5", "0", -1},
	} {
		x := makeDecimal(test.x)
		if s := x.Int().String(); s != test.want {
			t.Errorf("%s.Int() = %s; want %s", test.x, s, test.want)
		}
		if e := x.Exponent(); e != test.exp {
			t.Errorf("%s.Exponent() = %d; want %d", test.x, e, test.exp)
		}
	}
}

func TestDecimalMutating(t *testing.T) {
	withScale(t, 2)
	a := makeDecimal("10.5")
	b := a.Add(NewDecimal(5, 0))
	if a.String() != "10.5" || b.String() != "15.50" {
		t.Fatalf("Add modified its receiver: a = %s, b = %s", a, b)
	}
	if r := a.Plus(5); r != a || a.String() != "15.50" {
		t.Fatalf("Plus(5) = %s, a = %s", r, a)
	}
	a.Minus("0.25").Plus(NewInt(2)).Plus(0.5).Minus(makeDecimal("1.75"))
	if a.String() != "16.00" {
		t.Fatalf("a = %s; want 16.00", a)
	}
	if s := a.Inc().Inc().Dec().String(); s != "17.00" {
		t.Fatalf("a = %s; want 17.00", s)
	}
	mustPanic(t, InvalidArgument, func() { a.Plus("nope") })
	mustPanic(t, InvalidArgument, func() { a.Minus([]int{1}) })
	if a.String() != "17.00" {
		t.Fatalf("failed Plus modified a: %s", a)
	}
	c := a.Copy()
	c.Inc()
	if a.String() != "17.00" {
		t.Fatalf("Copy aliases a")
	}
}
