// Copyright (C) 2022 Creditor Corp. Group.
// See LICENSE for copying information.

package numbers

import (
	"errors"
	"math/big"
)

// Zero defines 0 number.
const Zero = 0

// OneBigInt defies 1 as *big.Int type.
var OneBigInt = big.NewInt(1)

// MaxUInt128Value defines maximum value of uint128 type.
var MaxUInt128Value = new(big.Int).Sub(new(big.Int).Lsh(OneBigInt, 128), OneBigInt)

// ErrNotUint128 defines that the number does not fit into uint128 range.
var ErrNotUint128 = errors.New("value is out of uint128 range")

// IsNegative returns true if the number is less than zero.
func IsNegative(num *big.Int) bool {
	return num.Sign() < Zero
}

// IsGreater returns true is a > b.
func IsGreater(a, b *big.Int) bool {
	return a.Cmp(b) > Zero
}

// IsUint128 returns true if 0 <= num <= MaxUInt128Value.
func IsUint128(num *big.Int) bool {
	return num != nil && !IsNegative(num) && !IsGreater(num, MaxUInt128Value)
}

// ParseUint128 parses decimal string into *big.Int checking uint128 bounds.
func ParseUint128(s string) (*big.Int, error) {
	num, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.New("invalid decimal number: " + s)
	}
	if !IsUint128(num) {
		return nil, ErrNotUint128
	}

	return num, nil
}

// Uint128OrZero returns a copy of num, or 0 for nil.
func Uint128OrZero(num *big.Int) *big.Int {
	if num == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(num)
}
