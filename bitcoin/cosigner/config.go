// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package cosigner

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/BoostyLabs/reetypes/bitcoin"
)

// ErrConfig defines errors class for pool signer config.
var ErrConfig = errors.New("pool signer config")

// Config describes which key of the remote signer the pool signs with.
//
//	key_name = "key_1"
//	derivation_path = ["706f6f6c", "0001"]
//	network = "mainnet"
type Config struct {
	KeyName        string   `toml:"key_name"`
	DerivationPath []string `toml:"derivation_path"` // hex encoded path elements.
	Network        string   `toml:"network"`
}

// LoadConfig reads Config from TOML file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Join(ErrConfig, err)
	}

	return cfg, checkConfig(cfg, meta)
}

// ParseConfig reads Config from TOML text.
func ParseConfig(data string) (Config, error) {
	var cfg Config
	meta, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, errors.Join(ErrConfig, err)
	}

	return cfg, checkConfig(cfg, meta)
}

// checkConfig rejects unknown keys and not decodable values.
func checkConfig(cfg Config, meta toml.MetaData) error {
	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}

		return fmt.Errorf("%w: unknown keys: %s", ErrConfig, strings.Join(keys, ", "))
	}
	if cfg.KeyName == "" {
		return fmt.Errorf("%w: key_name is required", ErrConfig)
	}
	if _, err := cfg.Path(); err != nil {
		return err
	}
	if _, err := cfg.NetworkParams(); err != nil {
		return err
	}

	return nil
}

// Path returns decoded derivation path.
func (cfg Config) Path() ([][]byte, error) {
	path := make([][]byte, len(cfg.DerivationPath))
	for i, element := range cfg.DerivationPath {
		decoded, err := hex.DecodeString(element)
		if err != nil {
			return nil, fmt.Errorf("%w: derivation path element %d: %v", ErrConfig, i, err)
		}

		path[i] = decoded
	}

	return path, nil
}

// NetworkParams returns chain params of the configured network, mainnet by default.
func (cfg Config) NetworkParams() (*chaincfg.Params, error) {
	switch cfg.Network {
	case "", chaincfg.MainNetParams.Name:
		return &chaincfg.MainNetParams, nil
	case chaincfg.TestNet3Params.Name:
		return &chaincfg.TestNet3Params, nil
	case chaincfg.SigNetParams.Name:
		return &chaincfg.SigNetParams, nil
	case chaincfg.RegressionNetParams.Name:
		return &chaincfg.RegressionNetParams, nil
	}

	return nil, fmt.Errorf("%w: unknown network %q", ErrConfig, cfg.Network)
}

// SignParams returns SignParams for provided pool utxos.
func (cfg Config) SignParams(poolInputs []bitcoin.UTXO) (SignParams, error) {
	path, err := cfg.Path()
	if err != nil {
		return SignParams{}, err
	}

	return SignParams{
		PoolInputs:     poolInputs,
		KeyName:        cfg.KeyName,
		DerivationPath: path,
	}, nil
}
