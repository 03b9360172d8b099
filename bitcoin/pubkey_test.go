// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package bitcoin_test

import (
	"encoding/json"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/stretchr/testify/require"

	"github.com/BoostyLabs/reetypes/bitcoin"
)

func TestPubkey(t *testing.T) {
	privKey, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	compressed := privKey.PubKey().SerializeCompressed()

	t.Run("NewPubkey compressed", func(t *testing.T) {
		pk, err := bitcoin.NewPubkey(compressed)
		require.NoError(t, err)
		require.Equal(t, bitcoin.Pubkey(compressed), pk)
		require.Equal(t, compressed[1:], pk.XOnly())

		pubKey, err := pk.PublicKey()
		require.NoError(t, err)
		require.True(t, pubKey.IsEqual(privKey.PubKey()))
	})

	t.Run("NewPubkey x-only", func(t *testing.T) {
		pk, err := bitcoin.NewPubkey(schnorr.SerializePubKey(privKey.PubKey()))
		require.NoError(t, err)
		require.Len(t, pk, 33)
		require.EqualValues(t, 0x02, pk[0])
		require.Equal(t, compressed[1:], pk.XOnly())
	})

	t.Run("NewPubkey invalid", func(t *testing.T) {
		tests := [][]byte{
			nil,
			make([]byte, 20),
			append([]byte{0x05}, compressed[1:]...),
			privKey.PubKey().SerializeUncompressed(),
		}
		for _, test := range tests {
			_, err := bitcoin.NewPubkey(test)
			require.ErrorIs(t, err, bitcoin.ErrInvalidPubkey)
		}

		_, err := bitcoin.NewPubkeyFromHex("not hex")
		require.ErrorIs(t, err, bitcoin.ErrInvalidPubkey)
	})

	t.Run("TaprootAddress", func(t *testing.T) {
		pk, err := bitcoin.NewPubkey(compressed)
		require.NoError(t, err)

		addr, err := pk.TaprootAddress(&chaincfg.MainNetParams)
		require.NoError(t, err)

		expected := schnorr.SerializePubKey(txscript.ComputeTaprootKeyNoScript(privKey.PubKey()))
		require.Equal(t, expected, addr.ScriptAddress())
	})

	t.Run("JSON", func(t *testing.T) {
		pk, err := bitcoin.NewPubkey(compressed)
		require.NoError(t, err)

		data, err := json.Marshal(pk)
		require.NoError(t, err)
		require.Equal(t, `"`+pk.String()+`"`, string(data))

		var decoded bitcoin.Pubkey
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.Equal(t, pk, decoded)
	})
}
