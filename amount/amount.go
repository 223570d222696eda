// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package amount - unsigned 128 bit token quantities
package amount

import (
	"lukechampine.com/uint128"

	"github.com/bitmark-inc/noteledger/fault"
)

// Size - bytes in the stored big-endian form
const Size = 16

// longest decimal u128: 340282366920938463463374607431768211455
const maximumDigits = 39

// Amount - a non-negative token quantity
type Amount struct {
	value uint128.Uint128
}

// Zero - the empty amount
var Zero = Amount{}

// Max - largest representable amount
var Max = Amount{value: uint128.Max}

// FromUint64 - widen a 64 bit value
func FromUint64(v uint64) Amount {
	return Amount{value: uint128.From64(v)}
}

// FromBytes - decode the 16 byte big-endian form
func FromBytes(b []byte) (Amount, error) {
	if Size != len(b) {
		return Zero, fault.ErrInvalidAmount
	}
	return Amount{value: uint128.FromBytesBE(b)}, nil
}

// Parse - decimal digits only, no sign or base prefix
func Parse(s string) (Amount, error) {
	if 0 == len(s) || len(s) > maximumDigits {
		return Zero, fault.ErrInvalidAmount
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return Zero, fault.ErrInvalidAmount
		}
	}
	v, err := uint128.FromString(s)
	if nil != err {
		return Zero, fault.ErrInvalidAmount
	}
	return Amount{value: v}, nil
}

// Bytes - 16 byte big-endian form
func (a Amount) Bytes() []byte {
	b := make([]byte, Size)
	a.value.PutBytesBE(b)
	return b
}

// IsZero - true for 0
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// Cmp - -1, 0 or +1
func (a Amount) Cmp(b Amount) int {
	return a.value.Cmp(b.value)
}

// Add - checked addition, ok is false on overflow
func (a Amount) Add(b Amount) (Amount, bool) {
	sum := a.value.AddWrap(b.value)
	if sum.Cmp(a.value) < 0 {
		return Zero, false
	}
	return Amount{value: sum}, true
}

// Sub - checked subtraction, ok is false if b > a
func (a Amount) Sub(b Amount) (Amount, bool) {
	if a.value.Cmp(b.value) < 0 {
		return Zero, false
	}
	return Amount{value: a.value.SubWrap(b.value)}, true
}

// String - decimal
func (a Amount) String() string {
	return a.value.String()
}

// MarshalText - decimal text so JSON never loses precision
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.value.String()), nil
}

// UnmarshalText - decimal text
func (a *Amount) UnmarshalText(s []byte) error {
	v, err := Parse(string(s))
	if nil != err {
		return err
	}
	*a = v
	return nil
}
