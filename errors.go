// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigmath

import "fmt"

// A Kind classifies the errors reported by this package. A Kind is itself an
// error so that it can be used as the target of errors.Is:
//
//	if errors.Is(err, bigmath.DivisionByZero) { ... }
type Kind int

// Error kinds.
const (
	DivisionByZero  Kind = iota + 1 // zero divisor, modulus or squared modulus
	InvalidArgument                 // unparsable value, negative index, out of range parameter
)

func (k Kind) Error() string {
	switch k {
	case DivisionByZero:
		return "division by zero"
	case InvalidArgument:
		return "invalid argument"
	}
	return fmt.Sprintf("bigmath.Kind(%d)", int(k))
}

// An Error panic is raised by an Int, Decimal or Complex operation that cannot
// produce a result, for example a division by zero. Constructors and decoders
// return Error values instead of panicking. An Error implements the error
// interface and matches its Kind with errors.Is.
type Error struct {
	Kind Kind
	msg  string
}

func (err Error) Error() string {
	return err.msg
}

// Is reports whether target is err's Kind.
func (err Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == err.Kind
}

// The two causes of a DivisionByZero error.
var (
	ErrDivisionByZero = Error{DivisionByZero, "division by zero"}
	ErrInvertingZero  = Error{DivisionByZero, "division by zero while inverting zero"}
)

func invalidArgument(format string, args ...interface{}) Error {
	return Error{InvalidArgument, fmt.Sprintf(format, args...)}
}

func checkIndex(op string, i int) {
	if i < 0 {
		panic(invalidArgument("bigmath: %s: negative bit index %d", op, i))
	}
}
