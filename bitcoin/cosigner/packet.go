// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package cosigner

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/BoostyLabs/reetypes/bitcoin"
)

// txVersion defines transaction version for built packets.
const txVersion int32 = 2

// ErrPacketBuilder defines errors class for packet building.
var ErrPacketBuilder = errors.New("build packet")

// PacketInput describes spent utxo with its owner data.
type PacketInput struct {
	UTXO        bitcoin.UTXO
	Address     string         // owner address, defines spent output script.
	InternalKey bitcoin.Pubkey // optional, taproot internal key of the owner.
}

// PacketOutput describes transaction output.
type PacketOutput struct {
	Address string
	Sats    uint64
}

// PacketBuilder provides unsigned PSBT building related logic.
type PacketBuilder struct {
	networkParams *chaincfg.Params
}

// NewPacketBuilder is a constructor for PacketBuilder.
func NewPacketBuilder(networkParams *chaincfg.Params) *PacketBuilder {
	return &PacketBuilder{
		networkParams: networkParams,
	}
}

// Build constructs unsigned PSBT keeping inputs and outputs order.
// Every input declares its spent output (witness utxo) as SignPoolInputs requires.
func (b *PacketBuilder) Build(inputs []PacketInput, outputs []PacketOutput) (_ *psbt.Packet, err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrPacketBuilder, err)
		}
	}()

	tx := wire.NewMsgTx(txVersion)
	prevOuts := make([]*wire.TxOut, len(inputs))
	for i, input := range inputs {
		outPoint := input.UTXO.WireOutPoint()
		tx.AddTxIn(wire.NewTxIn(&outPoint, nil, nil))

		pkScript, err := b.AddressScript(input.Address)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}

		prevOuts[i] = wire.NewTxOut(int64(input.UTXO.Sats), pkScript)
	}

	for i, output := range outputs {
		pkScript, err := b.AddressScript(output.Address)
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", i, err)
		}

		tx.AddTxOut(wire.NewTxOut(int64(output.Sats), pkScript))
	}

	packet, err := psbt.NewFromUnsignedTx(tx)
	if err != nil {
		return nil, err
	}

	for i, input := range inputs {
		packet.Inputs[i].WitnessUtxo = prevOuts[i]
		if len(input.InternalKey) != 0 && txscript.IsPayToTaproot(prevOuts[i].PkScript) {
			packet.Inputs[i].TaprootInternalKey = input.InternalKey.XOnly()
		}
	}

	return packet, nil
}

// AddressScript returns output script paying to the address.
func (b *PacketBuilder) AddressScript(address string) ([]byte, error) {
	decoded, err := btcutil.DecodeAddress(address, b.networkParams)
	if err != nil {
		return nil, err
	}
	if !decoded.IsForNet(b.networkParams) {
		return nil, fmt.Errorf("address %s is not for %s network", address, b.networkParams.Name)
	}

	return txscript.PayToAddrScript(decoded)
}
