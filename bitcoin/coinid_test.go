// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package bitcoin_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BoostyLabs/reetypes/bitcoin"
)

func TestCoinID(t *testing.T) {
	t.Run("ParseCoinID", func(t *testing.T) {
		tests := []struct {
			input   string
			result  bitcoin.CoinID
			invalid bool
		}{
			{input: "868703:142", result: bitcoin.CoinID{Block: 868703, Tx: 142}},
			{input: "0:0", result: bitcoin.BTC},
			{input: "18446744073709551615:4294967295", result: bitcoin.CoinID{Block: 18446744073709551615, Tx: 4294967295}},
			{input: "840000", invalid: true},
			{input: "840000:846:1", invalid: true},
			{input: "840000:4294967296", invalid: true},
			{input: "84pp00:846", invalid: true},
			{input: "-1:846", invalid: true},
			{input: "", invalid: true},
		}
		for _, test := range tests {
			id, err := bitcoin.ParseCoinID(test.input)
			if test.invalid {
				require.ErrorIs(t, err, bitcoin.ErrInvalidCoinID)
				continue
			}
			require.NoError(t, err)
			require.Equal(t, test.result, id)
			require.Equal(t, test.input, id.String())
		}
	})

	t.Run("BTC", func(t *testing.T) {
		require.True(t, bitcoin.BTC.IsBTC())
		require.False(t, bitcoin.NewRuneCoinID(840000, 846).IsBTC())
		require.Equal(t, "0:0", bitcoin.BTC.String())
	})

	t.Run("Compare", func(t *testing.T) {
		require.Equal(t, -1, bitcoin.NewRuneCoinID(1, 5).Compare(bitcoin.NewRuneCoinID(2, 0)))
		require.Equal(t, 1, bitcoin.NewRuneCoinID(2, 1).Compare(bitcoin.NewRuneCoinID(2, 0)))
		require.Equal(t, 0, bitcoin.NewRuneCoinID(2, 1).Compare(bitcoin.NewRuneCoinID(2, 1)))
	})

	t.Run("JSON", func(t *testing.T) {
		data, err := json.Marshal(bitcoin.NewRuneCoinID(840106, 129))
		require.NoError(t, err)
		require.JSONEq(t, `"840106:129"`, string(data))

		var id bitcoin.CoinID
		require.NoError(t, json.Unmarshal(data, &id))
		require.Equal(t, bitcoin.NewRuneCoinID(840106, 129), id)

		require.Error(t, json.Unmarshal([]byte(`"840106"`), &id))
	})
}
