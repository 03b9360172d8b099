// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package bitcoin

import "errors"

var (
	// ErrInvalidCoinID defines that coin id string is malformed.
	ErrInvalidCoinID = errors.New("invalid coin id")
	// ErrInvalidTxid defines that txid string is malformed.
	ErrInvalidTxid = errors.New("invalid txid")
	// ErrInvalidOutPoint defines that outpoint string is malformed.
	ErrInvalidOutPoint = errors.New("invalid outpoint")
	// ErrInvalidPubkey defines that public key bytes are malformed.
	ErrInvalidPubkey = errors.New("invalid public key")
	// ErrInvalidCoinValue defines that coin value is out of uint128 range.
	ErrInvalidCoinValue = errors.New("invalid coin value")
)
