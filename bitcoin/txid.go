// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package bitcoin

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/BoostyLabs/reetypes/internal/reverse"
)

// Txid defines transaction identifier stored in internal (wire) byte order.
// String form is big-endian hex, the way block explorers show it.
type Txid [chainhash.HashSize]byte

// ParseTxid parses Txid from 64 chars hex string in display order.
func ParseTxid(s string) (Txid, error) {
	if len(s) != chainhash.MaxHashStringSize {
		return Txid{}, fmt.Errorf("%w: expected %d hex chars, got %d", ErrInvalidTxid, chainhash.MaxHashStringSize, len(s))
	}

	var txid Txid
	if _, err := hex.Decode(txid[:], []byte(s)); err != nil {
		return Txid{}, fmt.Errorf("%w: %v", ErrInvalidTxid, err)
	}

	return Txid(reverse.Hash32(txid)), nil
}

// TxidFromHash converts chainhash.Hash into Txid, both are in internal order.
func TxidFromHash(hash chainhash.Hash) Txid {
	return Txid(hash)
}

// Hash returns Txid as chainhash.Hash.
func (txid Txid) Hash() chainhash.Hash {
	return chainhash.Hash(txid)
}

// String returns Txid as lowercase hex in display order.
func (txid Txid) String() string {
	displayed := reverse.Hash32(txid)

	return hex.EncodeToString(displayed[:])
}

// MarshalText implements encoding.TextMarshaler.
func (txid Txid) MarshalText() ([]byte, error) {
	return []byte(txid.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (txid *Txid) UnmarshalText(text []byte) error {
	parsed, err := ParseTxid(string(text))
	if err != nil {
		return err
	}

	*txid = parsed

	return nil
}

// TxRecord describes pools involved into the transaction.
type TxRecord struct {
	Pools []string `json:"pools"`
}
