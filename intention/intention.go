// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package intention

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/wire"

	"github.com/BoostyLabs/reetypes/bitcoin"
)

// ErrInvalidIntention defines errors class for intention validation.
var ErrInvalidIntention = errors.New("invalid intention")

// InputCoin describes coins moved by the initiator into the pool.
type InputCoin struct {
	From string              `json:"from"`
	Coin bitcoin.CoinBalance `json:"coin"`
}

// OutputCoin describes coins moved from the pool to the recipient.
type OutputCoin struct {
	To   string              `json:"to"`
	Coin bitcoin.CoinBalance `json:"coin"`
}

// Intention describes single exchange action inside the IntentionSet.
//
// PoolUTXOSpend and PoolUTXOReceive hold "txid:vout" outpoints, their order
// follows the order of transaction inputs and outputs.
type Intention struct {
	ExchangeID      string       `json:"exchange_id"`
	Action          string       `json:"action"`
	ActionParams    string       `json:"action_params"` // opaque, exchange specific.
	PoolAddress     string       `json:"pool_address"`
	Nonce           uint64       `json:"nonce"`
	PoolUTXOSpend   []string     `json:"pool_utxo_spend"`
	PoolUTXOReceive []string     `json:"pool_utxo_receive"`
	InputCoins      []InputCoin  `json:"input_coins"`
	OutputCoins     []OutputCoin `json:"output_coins"`
}

// intentionAlias drops Intention methods to avoid MarshalJSON recursion.
type intentionAlias Intention

// MarshalJSON implements json.Marshaler, encodes empty lists as [] instead of null.
func (i Intention) MarshalJSON() ([]byte, error) {
	alias := intentionAlias(i)
	if alias.PoolUTXOSpend == nil {
		alias.PoolUTXOSpend = []string{}
	}
	if alias.PoolUTXOReceive == nil {
		alias.PoolUTXOReceive = []string{}
	}
	if alias.InputCoins == nil {
		alias.InputCoins = []InputCoin{}
	}
	if alias.OutputCoins == nil {
		alias.OutputCoins = []OutputCoin{}
	}

	return json.Marshal(alias)
}

// Validate checks that required fields are set and all pool outpoints are parsable.
func (i *Intention) Validate() error {
	switch {
	case i.ExchangeID == "":
		return fmt.Errorf("%w: empty exchange id", ErrInvalidIntention)
	case i.Action == "":
		return fmt.Errorf("%w: empty action", ErrInvalidIntention)
	case i.PoolAddress == "":
		return fmt.Errorf("%w: empty pool address", ErrInvalidIntention)
	}

	for _, outPoint := range i.PoolUTXOSpend {
		if _, err := bitcoin.ParseOutPoint(outPoint); err != nil {
			return fmt.Errorf("%w: pool utxo spend: %w", ErrInvalidIntention, err)
		}
	}
	for _, outPoint := range i.PoolUTXOReceive {
		if _, err := bitcoin.ParseOutPoint(outPoint); err != nil {
			return fmt.Errorf("%w: pool utxo receive: %w", ErrInvalidIntention, err)
		}
	}

	return nil
}

// SpendOutPoints returns parsed PoolUTXOSpend keeping the order.
func (i *Intention) SpendOutPoints() ([]wire.OutPoint, error) {
	outPoints := make([]wire.OutPoint, 0, len(i.PoolUTXOSpend))
	for _, s := range i.PoolUTXOSpend {
		outPoint, err := bitcoin.ParseOutPoint(s)
		if err != nil {
			return nil, err
		}

		outPoints = append(outPoints, outPoint)
	}

	return outPoints, nil
}

// IntentionSet describes signable bundle of intentions initiated by the same address.
// The order of Intentions is significant.
type IntentionSet struct {
	InitiatorAddress string      `json:"initiator_address"`
	TxFeeInSats      uint64      `json:"tx_fee_in_sats"`
	Intentions       []Intention `json:"intentions"`
}

// intentionSetAlias drops IntentionSet methods to avoid MarshalJSON recursion.
type intentionSetAlias IntentionSet

// MarshalJSON implements json.Marshaler, encodes empty intentions as [] instead of null.
func (s IntentionSet) MarshalJSON() ([]byte, error) {
	alias := intentionSetAlias(s)
	if alias.Intentions == nil {
		alias.Intentions = []Intention{}
	}

	return json.Marshal(alias)
}

// Validate checks initiator address and every intention.
func (s *IntentionSet) Validate() error {
	if s.InitiatorAddress == "" {
		return fmt.Errorf("%w: empty initiator address", ErrInvalidIntention)
	}
	if len(s.Intentions) == 0 {
		return fmt.Errorf("%w: no intentions", ErrInvalidIntention)
	}

	for idx := range s.Intentions {
		if err := s.Intentions[idx].Validate(); err != nil {
			return fmt.Errorf("intention #%d: %w", idx, err)
		}
	}

	return nil
}

// Encode returns IntentionSet as JSON text.
func Encode(s IntentionSet) ([]byte, error) {
	return json.Marshal(s)
}

// Decode parses IntentionSet from JSON text.
func Decode(data []byte) (IntentionSet, error) {
	var s IntentionSet
	if err := json.Unmarshal(data, &s); err != nil {
		return IntentionSet{}, err
	}

	return s, nil
}
