// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package cosigner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"

	"github.com/BoostyLabs/reetypes/bitcoin"
	"github.com/BoostyLabs/reetypes/bitcoin/cosigner"
)

func TestConfig(t *testing.T) {
	const valid = `
key_name = "key_1"
derivation_path = ["706f6f6c", "0001"]
network = "regtest"
`

	t.Run("ParseConfig", func(t *testing.T) {
		cfg, err := cosigner.ParseConfig(valid)
		require.NoError(t, err)
		require.Equal(t, "key_1", cfg.KeyName)

		path, err := cfg.Path()
		require.NoError(t, err)
		require.Equal(t, [][]byte{[]byte("pool"), {0x00, 0x01}}, path)

		params, err := cfg.NetworkParams()
		require.NoError(t, err)
		require.Equal(t, &chaincfg.RegressionNetParams, params)
	})

	t.Run("default network", func(t *testing.T) {
		cfg, err := cosigner.ParseConfig(`key_name = "key_1"`)
		require.NoError(t, err)

		params, err := cfg.NetworkParams()
		require.NoError(t, err)
		require.Equal(t, &chaincfg.MainNetParams, params)

		path, err := cfg.Path()
		require.NoError(t, err)
		require.Empty(t, path)
	})

	t.Run("invalid", func(t *testing.T) {
		tests := []string{
			`derivation_path = ["00"]`,
			`key_name = "key_1"
derivation_path = ["zz"]`,
			`key_name = "key_1"
network = "litecoin"`,
			`key_name = "key_1"
unknown = 1`,
			`key_name = `,
		}
		for _, test := range tests {
			_, err := cosigner.ParseConfig(test)
			require.ErrorIs(t, err, cosigner.ErrConfig, test)
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "signer.toml")
		require.NoError(t, os.WriteFile(path, []byte(valid), 0o600))

		cfg, err := cosigner.LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, "regtest", cfg.Network)

		_, err = cosigner.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
		require.ErrorIs(t, err, cosigner.ErrConfig)
	})

	t.Run("SignParams", func(t *testing.T) {
		cfg, err := cosigner.ParseConfig(valid)
		require.NoError(t, err)

		poolInputs := []bitcoin.UTXO{mustUTXO(t, poolOutPoint0, 1_000)}
		params, err := cfg.SignParams(poolInputs)
		require.NoError(t, err)
		require.Equal(t, "key_1", params.KeyName)
		require.Equal(t, poolInputs, params.PoolInputs)
		require.Len(t, params.DerivationPath, 2)
	})
}
