// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package bitcoin

import (
	"fmt"
	"strconv"
	"strings"
)

// coinIDSeparator defines separator between block and tx index in coin ID.
const coinIDSeparator = ":"

// BTC defines the native coin identifier.
var BTC = CoinID{}

// CoinID defines identifier of fungible token: native coin or etched rune
// referenced by block height and transaction index of the etching.
type CoinID struct {
	Block uint64
	Tx    uint32
}

// NewRuneCoinID is a constructor for rune CoinID.
func NewRuneCoinID(block uint64, tx uint32) CoinID {
	return CoinID{Block: block, Tx: tx}
}

// ParseCoinID returns CoinID parsed from "block:tx" string.
func ParseCoinID(s string) (CoinID, error) {
	data := strings.Split(s, coinIDSeparator)
	if len(data) != 2 {
		return CoinID{}, fmt.Errorf("%w: %q", ErrInvalidCoinID, s)
	}

	block, err := strconv.ParseUint(data[0], 10, 64)
	if err != nil {
		return CoinID{}, fmt.Errorf("%w: invalid block in %q", ErrInvalidCoinID, s)
	}

	tx, err := strconv.ParseUint(data[1], 10, 32)
	if err != nil {
		return CoinID{}, fmt.Errorf("%w: invalid tx in %q", ErrInvalidCoinID, s)
	}

	return CoinID{Block: block, Tx: uint32(tx)}, nil
}

// IsBTC returns true if id references the native coin.
func (id CoinID) IsBTC() bool {
	return id == BTC
}

// String returns CoinID as string.
func (id CoinID) String() string {
	return fmt.Sprintf("%d%s%d", id.Block, coinIDSeparator, id.Tx)
}

// MarshalText implements encoding.TextMarshaler.
func (id CoinID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *CoinID) UnmarshalText(text []byte) error {
	parsed, err := ParseCoinID(string(text))
	if err != nil {
		return err
	}

	*id = parsed

	return nil
}

// Compare orders coin ids by block, then by tx.
func (id CoinID) Compare(other CoinID) int {
	switch {
	case id.Block < other.Block:
		return -1
	case id.Block > other.Block:
		return 1
	case id.Tx < other.Tx:
		return -1
	case id.Tx > other.Tx:
		return 1
	}

	return 0
}
