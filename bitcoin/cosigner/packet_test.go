// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package cosigner_test

import (
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/stretchr/testify/require"

	"github.com/BoostyLabs/reetypes/bitcoin"
	"github.com/BoostyLabs/reetypes/bitcoin/cosigner"
)

func TestPacketBuilder(t *testing.T) {
	builder := cosigner.NewPacketBuilder(&chaincfg.MainNetParams)

	privKey, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	internalKey, err := bitcoin.NewPubkey(privKey.PubKey().SerializeCompressed())
	require.NoError(t, err)

	taprootAddr, err := internalKey.TaprootAddress(&chaincfg.MainNetParams)
	require.NoError(t, err)

	segwitAddr, err := btcutil.NewAddressWitnessPubKeyHash(btcutil.Hash160(internalKey), &chaincfg.MainNetParams)
	require.NoError(t, err)

	t.Run("Build", func(t *testing.T) {
		inputs := []cosigner.PacketInput{
			{
				UTXO:        mustUTXO(t, poolOutPoint0, 43_000),
				Address:     taprootAddr.EncodeAddress(),
				InternalKey: internalKey,
			},
			{
				UTXO:        mustUTXO(t, userOutPoint, 10_000),
				Address:     segwitAddr.EncodeAddress(),
				InternalKey: internalKey,
			},
		}
		outputs := []cosigner.PacketOutput{
			{Address: segwitAddr.EncodeAddress(), Sats: 30_000},
			{Address: taprootAddr.EncodeAddress(), Sats: 22_000},
		}

		packet, err := builder.Build(inputs, outputs)
		require.NoError(t, err)
		require.EqualValues(t, 2, packet.UnsignedTx.Version)

		require.Len(t, packet.UnsignedTx.TxIn, 2)
		require.Equal(t, poolOutPoint0, packet.UnsignedTx.TxIn[0].PreviousOutPoint.String())
		require.Equal(t, userOutPoint, packet.UnsignedTx.TxIn[1].PreviousOutPoint.String())

		require.EqualValues(t, 43_000, packet.Inputs[0].WitnessUtxo.Value)
		require.True(t, txscript.IsPayToTaproot(packet.Inputs[0].WitnessUtxo.PkScript))
		require.Equal(t, internalKey.XOnly(), packet.Inputs[0].TaprootInternalKey)

		require.EqualValues(t, 10_000, packet.Inputs[1].WitnessUtxo.Value)
		require.True(t, txscript.IsPayToWitnessPubKeyHash(packet.Inputs[1].WitnessUtxo.PkScript))
		require.Empty(t, packet.Inputs[1].TaprootInternalKey)

		require.Len(t, packet.UnsignedTx.TxOut, 2)
		require.EqualValues(t, 30_000, packet.UnsignedTx.TxOut[0].Value)
		require.EqualValues(t, 22_000, packet.UnsignedTx.TxOut[1].Value)
	})

	t.Run("invalid address", func(t *testing.T) {
		_, err := builder.Build([]cosigner.PacketInput{{UTXO: mustUTXO(t, poolOutPoint0, 1), Address: "bc1qnope"}}, nil)
		require.ErrorIs(t, err, cosigner.ErrPacketBuilder)

		_, err = builder.Build(nil, []cosigner.PacketOutput{{Address: "", Sats: 1}})
		require.ErrorIs(t, err, cosigner.ErrPacketBuilder)
	})

	t.Run("AddressScript wrong network", func(t *testing.T) {
		testnetAddr, err := internalKey.TaprootAddress(&chaincfg.TestNet3Params)
		require.NoError(t, err)

		_, err = builder.AddressScript(testnetAddr.EncodeAddress())
		require.Error(t, err)

		script, err := builder.AddressScript(taprootAddr.EncodeAddress())
		require.NoError(t, err)
		require.True(t, txscript.IsPayToTaproot(script))
	})
}
