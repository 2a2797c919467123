// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Ints and Decimals.

package bigmath

import (
	"encoding/binary"
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"
)

// Gob codec versions. Permit backward-compatible changes to the encoding.
const (
	intGobVersion     byte = 1
	decimalGobVersion byte = 1
)

// GobEncode implements the gob.GobEncoder interface.
func (x *Int) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	// version + sign + magnitude
	m := x.v.Bytes()
	buf := make([]byte, 2+len(m))
	buf[0] = intGobVersion
	if x.v.Sign() < 0 {
		buf[1] = 1
	}
	copy(buf[2:], m)
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Int) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		z.v.SetInt64(0)
		return nil
	}
	if buf[0] != intGobVersion {
		return errors.Errorf("Int.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 2 {
		return errors.New("Int.GobDecode: buffer too small")
	}
	z.v.SetBytes(buf[2:])
	if buf[1]&1 != 0 {
		z.v.Neg(&z.v)
	}
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x *Int) MarshalText() ([]byte, error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.v.Append(nil, 10), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The text
// is parsed as by ParseInt.
func (z *Int) UnmarshalText(text []byte) error {
	if _, err := z.SetString(string(text)); err != nil {
		return errors.WithMessagef(err, "bigmath: cannot unmarshal %q into a *bigmath.Int", text)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface. Ints are encoded as
// JSON numbers.
func (x *Int) MarshalJSON() ([]byte, error) {
	if x == nil {
		return []byte("null"), nil
	}
	return x.v.Append(nil, 10), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. It accepts JSON
// numbers with an integer value and quoted strings as accepted by ParseInt.
func (z *Int) UnmarshalJSON(text []byte) error {
	s := string(text)
	switch {
	case s == "null":
		// Ignore null, like in the main JSON package.
		return nil
	case len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"':
		s = s[1 : len(s)-1]
	}
	return z.UnmarshalText([]byte(s))
}

// GobEncode implements the gob.GobEncoder interface.
func (x *Decimal) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	// version + sign + exponent + coefficient
	m := x.v.Coeff.MathBigInt().Bytes()
	buf := make([]byte, 1+1+4+len(m))
	buf[0] = decimalGobVersion
	if x.v.Negative {
		buf[1] = 1
	}
	binary.BigEndian.PutUint32(buf[2:], uint32(x.v.Exponent))
	copy(buf[6:], m)
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Decimal) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Decimal{}
		return nil
	}
	if buf[0] != decimalGobVersion {
		return errors.Errorf("Decimal.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 6 {
		return errors.New("Decimal.GobDecode: buffer too small")
	}
	exp := int32(binary.BigEndian.Uint32(buf[2:]))
	if exp < apd.MinExponent || exp > apd.MaxExponent {
		return errors.Errorf("Decimal.GobDecode: exponent %d out of range [%d, %d]", exp, apd.MinExponent, apd.MaxExponent)
	}
	c := new(big.Int).SetBytes(buf[6:])
	if buf[1]&1 != 0 {
		c.Neg(c)
	}
	z.Set(newDecimalBig(c, exp).norm())
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. Decimals are
// marshaled in full precision, as returned by String. In JSON, they are
// encoded as strings.
func (x *Decimal) MarshalText() ([]byte, error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return []byte(x.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The text
// is parsed as by ParseDecimal.
func (z *Decimal) UnmarshalText(text []byte) error {
	if _, err := z.SetString(string(text)); err != nil {
		return errors.WithMessagef(err, "bigmath: cannot unmarshal %q into a *bigmath.Decimal", text)
	}
	return nil
}
