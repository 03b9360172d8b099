// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package signer

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// DigestSize defines size of the message digest to sign.
const DigestSize = chainhash.HashSize

// Schnorr is the signing capability of the key holder that keeps private keys
// outside of the process, e.g. threshold signing service.
//
// SignWithSchnorr returns 64 bytes BIP-340 signature of the digest made by the key
// identified by keyName and derivationPath.
type Schnorr interface {
	SignWithSchnorr(ctx context.Context, digest [DigestSize]byte, keyName string, derivationPath [][]byte) ([]byte, error)
}

// Func is an adapter to use ordinary function as Schnorr signer.
type Func func(ctx context.Context, digest [DigestSize]byte, keyName string, derivationPath [][]byte) ([]byte, error)

// SignWithSchnorr calls f(ctx, digest, keyName, derivationPath).
func (f Func) SignWithSchnorr(ctx context.Context, digest [DigestSize]byte, keyName string, derivationPath [][]byte) ([]byte, error) {
	return f(ctx, digest, keyName, derivationPath)
}
