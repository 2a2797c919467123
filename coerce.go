// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements conversions of Go values to Ints and Decimals.

package bigmath

import (
	"math/big"
	"strconv"

	"github.com/pkg/errors"
)

// IntOf converts v to a new *Int. v may be an *Int or *big.Int (copied), a
// string (see ParseInt), any Go integer type, a float32 or float64 with an
// integer value, or a *Decimal with an integer value. Nil pointers are
// rejected.
//
// The returned error has kind InvalidArgument.
func IntOf(v interface{}) (*Int, error) {
	switch v := v.(type) {
	case *Int:
		if v == nil {
			return nil, errNil(v)
		}
		return v.Copy(), nil
	case *big.Int:
		if v == nil {
			return nil, errNil(v)
		}
		return newIntBig(v), nil
	case *Decimal:
		if v == nil {
			return nil, errNil(v)
		}
		i, ok := v.integer()
		if !ok {
			return nil, errors.WithStack(invalidArgument("bigmath: %s is not an integer", v))
		}
		return newIntBig(i), nil
	case string:
		return ParseInt(v)
	case int:
		return NewInt(int64(v)), nil
	case int8:
		return NewInt(int64(v)), nil
	case int16:
		return NewInt(int64(v)), nil
	case int32:
		return NewInt(int64(v)), nil
	case int64:
		return NewInt(v), nil
	case uint:
		return newIntBig(new(big.Int).SetUint64(uint64(v))), nil
	case uint8:
		return NewInt(int64(v)), nil
	case uint16:
		return NewInt(int64(v)), nil
	case uint32:
		return NewInt(int64(v)), nil
	case uint64:
		return newIntBig(new(big.Int).SetUint64(v)), nil
	case float32:
		return ParseInt(strconv.FormatFloat(float64(v), 'f', -1, 32))
	case float64:
		return ParseInt(strconv.FormatFloat(v, 'f', -1, 64))
	}
	return nil, errors.WithStack(invalidArgument("bigmath: cannot convert %T to *Int", v))
}

// MustInt is like IntOf but panics if v cannot be converted.
func MustInt(v interface{}) *Int {
	return mustIntOf("MustInt", v)
}

func mustIntOf(op string, v interface{}) *Int {
	x, err := IntOf(v)
	if err != nil {
		panic(errors.WithMessage(err, op))
	}
	return x
}

// DecimalOf converts v to a new *Decimal. v may be a *Decimal (copied), an
// *Int or *big.Int, a string (see ParseDecimal), any Go integer type, or a
// float32 or float64, converted from its shortest decimal representation. Nil
// pointers are rejected.
//
// The returned error has kind InvalidArgument.
func DecimalOf(v interface{}) (*Decimal, error) {
	switch v := v.(type) {
	case *Decimal:
		if v == nil {
			return nil, errNil(v)
		}
		return v.Copy(), nil
	case *Int:
		if v == nil {
			return nil, errNil(v)
		}
		return v.Decimal(), nil
	case *big.Int:
		if v == nil {
			return nil, errNil(v)
		}
		return newDecimalBig(v, 0), nil
	case string:
		return ParseDecimal(v)
	case int:
		return NewDecimal(int64(v), 0), nil
	case int8:
		return NewDecimal(int64(v), 0), nil
	case int16:
		return NewDecimal(int64(v), 0), nil
	case int32:
		return NewDecimal(int64(v), 0), nil
	case int64:
		return NewDecimal(v, 0), nil
	case uint:
		return newDecimalBig(new(big.Int).SetUint64(uint64(v)), 0), nil
	case uint8:
		return NewDecimal(int64(v), 0), nil
	case uint16:
		return NewDecimal(int64(v), 0), nil
	case uint32:
		return NewDecimal(int64(v), 0), nil
	case uint64:
		return newDecimalBig(new(big.Int).SetUint64(v), 0), nil
	case float32:
		return ParseDecimal(strconv.FormatFloat(float64(v), 'f', -1, 32))
	case float64:
		return ParseDecimal(strconv.FormatFloat(v, 'f', -1, 64))
	}
	return nil, errors.WithStack(invalidArgument("bigmath: cannot convert %T to *Decimal", v))
}

// MustDecimal is like DecimalOf but panics if v cannot be converted.
func MustDecimal(v interface{}) *Decimal {
	return mustDecimalOf("MustDecimal", v)
}

func mustDecimalOf(op string, v interface{}) *Decimal {
	x, err := DecimalOf(v)
	if err != nil {
		panic(errors.WithMessage(err, op))
	}
	return x
}

func errNil(v interface{}) error {
	return errors.WithStack(invalidArgument("bigmath: cannot convert a nil %T", v))
}
