// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package signer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ErrUnknownKey defines that there is no key with requested name.
var ErrUnknownKey = errors.New("unknown key")

// deriveTag defines BIP-340 tag of the derivation tweak hash.
var deriveTag = []byte("REE/derive")

// LocalSigner keeps named master keys in memory and signs with keys derived
// from them. Derivation tweaks the key for every path element:
//
//	k' = k + TaggedHash("REE/derive", compressed(k*G) || element) mod n.
type LocalSigner struct {
	mu   sync.RWMutex
	keys map[string]*btcec.PrivateKey
}

// NewLocalSigner is a constructor for LocalSigner.
func NewLocalSigner() *LocalSigner {
	return &LocalSigner{
		keys: make(map[string]*btcec.PrivateKey),
	}
}

// AddKey registers master key under provided name, replacing existing one.
func (s *LocalSigner) AddKey(keyName string, privateKey *btcec.PrivateKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.keys[keyName] = privateKey
}

// SignWithSchnorr implements Schnorr.
func (s *LocalSigner) SignWithSchnorr(ctx context.Context, digest [DigestSize]byte, keyName string, derivationPath [][]byte) ([]byte, error) {
	privateKey, err := s.derive(ctx, keyName, derivationPath)
	if err != nil {
		return nil, err
	}

	sig, err := schnorr.Sign(privateKey, digest[:])
	if err != nil {
		return nil, err
	}

	return sig.Serialize(), nil
}

// PublicKey returns public key of the derived key.
func (s *LocalSigner) PublicKey(ctx context.Context, keyName string, derivationPath [][]byte) (*btcec.PublicKey, error) {
	privateKey, err := s.derive(ctx, keyName, derivationPath)
	if err != nil {
		return nil, err
	}

	return privateKey.PubKey(), nil
}

// derive returns private key derived from the named master key by path.
func (s *LocalSigner) derive(ctx context.Context, keyName string, derivationPath [][]byte) (*btcec.PrivateKey, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	master, ok := s.keys[keyName]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, keyName)
	}

	key := master.Key
	for idx, element := range derivationPath {
		pubKey := btcec.PrivKeyFromScalar(&key).PubKey()
		tweakHash := chainhash.TaggedHash(deriveTag, pubKey.SerializeCompressed(), element)

		var tweak btcec.ModNScalar
		if overflow := tweak.SetByteSlice(tweakHash[:]); overflow {
			return nil, fmt.Errorf("derivation path element %d: tweak overflows curve order", idx)
		}

		key.Add(&tweak)
		if key.IsZero() {
			return nil, fmt.Errorf("derivation path element %d: derived zero key", idx)
		}
	}

	return btcec.PrivKeyFromScalar(&key), nil
}
