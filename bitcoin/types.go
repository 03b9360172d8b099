// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package bitcoin

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/wire"

	"github.com/BoostyLabs/reetypes/internal/numbers"
)

// outPointSeparator defines separator between txid and vout in outpoint string.
const outPointSeparator = ":"

// CoinBalance describes amount of the fungible token.
type CoinBalance struct {
	ID    CoinID   `json:"id"`
	Value *big.Int `json:"value"` // uint128.
}

// NewCoinBalance is a constructor for CoinBalance.
func NewCoinBalance(id CoinID, value uint64) CoinBalance {
	return CoinBalance{ID: id, Value: new(big.Int).SetUint64(value)}
}

// coinBalanceJSON mirrors CoinBalance for encoding.
type coinBalanceJSON struct {
	ID    CoinID      `json:"id"`
	Value json.Number `json:"value"`
}

// MarshalJSON implements json.Marshaler, nil value is encoded as 0.
func (b CoinBalance) MarshalJSON() ([]byte, error) {
	return json.Marshal(coinBalanceJSON{
		ID:    b.ID,
		Value: json.Number(numbers.Uint128OrZero(b.Value).String()),
	})
}

// UnmarshalJSON implements json.Unmarshaler, checks uint128 bounds.
func (b *CoinBalance) UnmarshalJSON(data []byte) error {
	var raw coinBalanceJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	value, err := numbers.ParseUint128(raw.Value.String())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCoinValue, err)
	}

	b.ID = raw.ID
	b.Value = value

	return nil
}

// UTXO describes unspent transaction output with optionally linked coin balance.
type UTXO struct {
	Txid      Txid         `json:"txid"`
	Vout      uint32       `json:"vout"` // output index in transaction outputs.
	MaybeRune *CoinBalance `json:"maybe_rune"`
	Sats      uint64       `json:"sats"`
}

// NewUTXO creates UTXO from "txid:vout" outpoint string.
func NewUTXO(outPoint string, maybeRune *CoinBalance, sats uint64) (UTXO, error) {
	txid, vout, err := parseOutPoint(outPoint)
	if err != nil {
		return UTXO{}, err
	}

	return UTXO{
		Txid:      txid,
		Vout:      vout,
		MaybeRune: maybeRune,
		Sats:      sats,
	}, nil
}

// ParseOutPoint parses "txid:vout" string into wire.OutPoint.
func ParseOutPoint(outPoint string) (wire.OutPoint, error) {
	txid, vout, err := parseOutPoint(outPoint)
	if err != nil {
		return wire.OutPoint{}, err
	}

	return wire.OutPoint{Hash: txid.Hash(), Index: vout}, nil
}

// parseOutPoint splits outpoint string into txid and vout.
func parseOutPoint(outPoint string) (Txid, uint32, error) {
	parts := strings.Split(outPoint, outPointSeparator)
	if len(parts) != 2 {
		return Txid{}, 0, fmt.Errorf("%w: expected txid:vout, got %q", ErrInvalidOutPoint, outPoint)
	}

	txid, err := ParseTxid(parts[0])
	if err != nil {
		return Txid{}, 0, fmt.Errorf("%w: invalid txid in outpoint: %v", ErrInvalidOutPoint, err)
	}

	vout, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return Txid{}, 0, fmt.Errorf("%w: invalid vout in outpoint %q", ErrInvalidOutPoint, outPoint)
	}

	return txid, uint32(vout), nil
}

// OutPoint returns UTXO reference as "txid:vout" string.
func (u UTXO) OutPoint() string {
	return u.Txid.String() + outPointSeparator + strconv.FormatUint(uint64(u.Vout), 10)
}

// WireOutPoint returns UTXO reference as wire.OutPoint.
func (u UTXO) WireOutPoint() wire.OutPoint {
	return wire.OutPoint{Hash: u.Txid.Hash(), Index: u.Vout}
}

// Matches returns true if UTXO is referenced by the outpoint.
func (u UTXO) Matches(outPoint wire.OutPoint) bool {
	return u.Txid.Hash() == outPoint.Hash && u.Vout == outPoint.Index
}

// RuneAmount returns linked coin amount, 0 if there is no linked coin.
func (u UTXO) RuneAmount() *big.Int {
	if u.MaybeRune == nil {
		return new(big.Int)
	}

	return numbers.Uint128OrZero(u.MaybeRune.Value)
}
