// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package bitcoin

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// Pubkey defines 33 bytes compressed secp256k1 public key.
type Pubkey []byte

// NewPubkey creates Pubkey from compressed (33 bytes) or x-only (32 bytes) key.
// X-only keys are lifted to the even Y compressed form.
func NewPubkey(raw []byte) (Pubkey, error) {
	switch len(raw) {
	case btcec.PubKeyBytesLenCompressed:
		pubKey, err := btcec.ParsePubKey(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPubkey, err)
		}

		return pubKey.SerializeCompressed(), nil
	case schnorr.PubKeyBytesLen:
		pubKey, err := schnorr.ParsePubKey(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPubkey, err)
		}

		return pubKey.SerializeCompressed(), nil
	}

	return nil, fmt.Errorf("%w: unexpected length %d", ErrInvalidPubkey, len(raw))
}

// NewPubkeyFromHex creates Pubkey from hex string.
func NewPubkeyFromHex(s string) (Pubkey, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPubkey, err)
	}

	return NewPubkey(raw)
}

// XOnly returns 32 bytes x-only representation of the key.
func (pk Pubkey) XOnly() []byte {
	if len(pk) != btcec.PubKeyBytesLenCompressed {
		return nil
	}

	return append([]byte(nil), pk[1:]...)
}

// PublicKey returns parsed secp256k1 public key.
func (pk Pubkey) PublicKey() (*btcec.PublicKey, error) {
	return btcec.ParsePubKey(pk)
}

// TaprootAddress returns key-path only (BIP-86) taproot address of the key.
func (pk Pubkey) TaprootAddress(networkParams *chaincfg.Params) (*btcutil.AddressTaproot, error) {
	pubKey, err := pk.PublicKey()
	if err != nil {
		return nil, err
	}

	outputKey := txscript.ComputeTaprootKeyNoScript(pubKey)

	return btcutil.NewAddressTaproot(schnorr.SerializePubKey(outputKey), networkParams)
}

// String returns Pubkey as hex string.
func (pk Pubkey) String() string {
	return hex.EncodeToString(pk)
}

// MarshalText implements encoding.TextMarshaler.
func (pk Pubkey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (pk *Pubkey) UnmarshalText(text []byte) error {
	parsed, err := NewPubkeyFromHex(string(text))
	if err != nil {
		return err
	}

	*pk = parsed

	return nil
}
