// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

// Package exchange defines arguments and responses exchanged between the
// orchestrator and exchanges managing liquidity pools.
package exchange

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/psbt"

	"github.com/BoostyLabs/reetypes/bitcoin"
	"github.com/BoostyLabs/reetypes/intention"
)

// GetMinimalTxValueArgs describes request for minimal transaction value accepted by the pool.
type GetMinimalTxValueArgs struct {
	PoolAddress                string `json:"pool_address"`
	ZeroConfirmedTxQueueLength uint32 `json:"zero_confirmed_tx_queue_length"`
}

// PoolBasic describes pool in the pools listing.
type PoolBasic struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// PoolInfo describes pool state reported by the exchange.
type PoolInfo struct {
	Key               bitcoin.Pubkey        `json:"key"`
	KeyDerivationPath [][]byte              `json:"key_derivation_path"`
	Name              string                `json:"name"`
	Address           string                `json:"address"`
	Nonce             uint64                `json:"nonce"`
	CoinReserved      []bitcoin.CoinBalance `json:"coin_reserved"`
	BtcReserved       uint64                `json:"btc_reserved"`
	UTXOs             []bitcoin.UTXO        `json:"utxos"`
	Attributes        string                `json:"attributes"`
}

// ExecuteTxArgs describes request to execute the intention of the signed transaction.
type ExecuteTxArgs struct {
	PSBTHex                    string                 `json:"psbt_hex"`
	Txid                       bitcoin.Txid           `json:"txid"`
	IntentionSet               intention.IntentionSet `json:"intention_set"`
	IntentionIndex             uint32                 `json:"intention_index"`
	ZeroConfirmedTxQueueLength uint32                 `json:"zero_confirmed_tx_queue_length"`
}

// Intention returns intention addressed to the exchange.
func (args *ExecuteTxArgs) Intention() (intention.Intention, error) {
	if int(args.IntentionIndex) >= len(args.IntentionSet.Intentions) {
		return intention.Intention{}, fmt.Errorf("intention index %d exceeds available intentions (%d)",
			args.IntentionIndex, len(args.IntentionSet.Intentions))
	}

	return args.IntentionSet.Intentions[args.IntentionIndex], nil
}

// DecodePSBT returns decoded PSBT, checks that it describes transaction with args Txid.
func (args *ExecuteTxArgs) DecodePSBT() (*psbt.Packet, error) {
	raw, err := hex.DecodeString(args.PSBTHex)
	if err != nil {
		return nil, err
	}

	packet, err := psbt.NewFromRawBytes(bytes.NewReader(raw), false)
	if err != nil {
		return nil, err
	}

	if txHash := packet.UnsignedTx.TxHash(); bitcoin.TxidFromHash(txHash) != args.Txid {
		return nil, fmt.Errorf("psbt txid %s mismatches provided %s", txHash, args.Txid)
	}

	return packet, nil
}

// ExecuteTxResponse describes exchange response on ExecuteTxArgs:
// hex of the PSBT with pool inputs signed, or the rejection reason.
type ExecuteTxResponse struct {
	SignedPSBTHex string `json:"Ok,omitempty"`
	Err           string `json:"Err,omitempty"`
}

// NewExecuteTxResponse is a constructor for ExecuteTxResponse, err takes precedence over signedPSBTHex.
func NewExecuteTxResponse(signedPSBTHex string, err error) ExecuteTxResponse {
	if err != nil {
		return ExecuteTxResponse{Err: err.Error()}
	}

	return ExecuteTxResponse{SignedPSBTHex: signedPSBTHex}
}

// RollbackTxArgs describes request to roll back not confirmed transaction.
type RollbackTxArgs struct {
	Txid bitcoin.Txid `json:"txid"`
}

// NewBlockInfo describes notification about the new block.
type NewBlockInfo struct {
	BlockHeight    uint32         `json:"block_height"`
	BlockHash      string         `json:"block_hash"`
	BlockTimestamp uint64         `json:"block_timestamp"`
	ConfirmedTxids []bitcoin.Txid `json:"confirmed_txids"`
}

// IsConfirmed returns true if txid is confirmed in the block.
func (info *NewBlockInfo) IsConfirmed(txid bitcoin.Txid) bool {
	for _, confirmed := range info.ConfirmedTxids {
		if confirmed == txid {
			return true
		}
	}

	return false
}
