// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package cosigner

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/BoostyLabs/reetypes/bitcoin"
	"github.com/BoostyLabs/reetypes/bitcoin/signer"
)

// sigHashType defines signature hash type for pool inputs signing.
const sigHashType = txscript.SigHashDefault

// SignParams defines parameters for SignPoolInputs method.
type SignParams struct {
	PoolInputs     []bitcoin.UTXO // utxos owned by the pool.
	KeyName        string
	DerivationPath [][]byte
}

// CoSigner signs pool owned inputs of the transactions built together with other parties.
type CoSigner struct {
	signer signer.Schnorr
}

// New is a constructor for CoSigner.
func New(schnorrSigner signer.Schnorr) *CoSigner {
	return &CoSigner{
		signer: schnorrSigner,
	}
}

// SignPoolInputs signs with taproot key path spend every packet input that spends
// one of params.PoolInputs, other inputs are left untouched.
//
// The packet is updated in place. On error the witnesses already written for
// preceding inputs are kept, so the packet must not be treated as untouched.
func (c *CoSigner) SignPoolInputs(ctx context.Context, packet *psbt.Packet, params SignParams) error {
	prevOuts := make([]*wire.TxOut, 0, len(packet.Inputs))
	for idx := range packet.Inputs {
		if packet.Inputs[idx].WitnessUtxo == nil {
			return fmt.Errorf("input %d: %w", idx, ErrWitnessUTXORequired)
		}

		prevOuts = append(prevOuts, packet.Inputs[idx].WitnessUtxo)
	}

	var hasher *sigHasher
	for i, txIn := range packet.UnsignedTx.TxIn {
		if !ownedByPool(params.PoolInputs, txIn.PreviousOutPoint) {
			continue
		}
		if i >= len(packet.Inputs) {
			return NewInputIndexError(i, len(packet.Inputs))
		}

		if hasher == nil {
			var err error
			hasher, err = newSigHasher(packet.UnsignedTx, prevOuts)
			if err != nil {
				return err
			}
		}

		sigHash, err := hasher.keySpend(i, sigHashType)
		if err != nil {
			return err
		}

		log.Debugf("Signing pool input %d (%v) with key %s", i, txIn.PreviousOutPoint, params.KeyName)

		rawSig, err := c.signer.SignWithSchnorr(ctx, sigHash, params.KeyName, params.DerivationPath)
		if err != nil {
			log.Warnf("Signer failed on pool input %d (%v): %v", i, txIn.PreviousOutPoint, err)
			return err
		}

		witness, err := serializeWitness(keySpendWitness(mustSchnorrSignature(rawSig), sigHashType))
		if err != nil {
			return err
		}

		packet.Inputs[i].FinalScriptWitness = witness
	}

	return nil
}

// SignPSBTHex signs pool inputs of hex encoded PSBT, returns updated hex encoded PSBT.
func (c *CoSigner) SignPSBTHex(ctx context.Context, psbtHex string, params SignParams) (string, error) {
	raw, err := hex.DecodeString(psbtHex)
	if err != nil {
		return "", err
	}

	packet, err := psbt.NewFromRawBytes(bytes.NewReader(raw), false)
	if err != nil {
		return "", err
	}

	if err = c.SignPoolInputs(ctx, packet, params); err != nil {
		return "", err
	}

	w := bytes.NewBuffer(nil)
	if err = packet.Serialize(w); err != nil {
		return "", err
	}

	return hex.EncodeToString(w.Bytes()), nil
}

// TaprootKeySpendSigHash returns BIP-341 key path spend signature hash of the input idx
// with default sighash type. prevOuts must hold spent outputs of all inputs in inputs order.
func TaprootKeySpendSigHash(tx *wire.MsgTx, prevOuts []*wire.TxOut, idx int) ([signer.DigestSize]byte, error) {
	hasher, err := newSigHasher(tx, prevOuts)
	if err != nil {
		return [signer.DigestSize]byte{}, err
	}

	return hasher.keySpend(idx, sigHashType)
}

// sigHasher keeps precomputed midstate of the transaction signature hashes.
type sigHasher struct {
	tx        *wire.MsgTx
	fetcher   txscript.PrevOutputFetcher
	sigHashes *txscript.TxSigHashes
}

// newSigHasher is a constructor for sigHasher.
func newSigHasher(tx *wire.MsgTx, prevOuts []*wire.TxOut) (*sigHasher, error) {
	if len(prevOuts) != len(tx.TxIn) {
		return nil, fmt.Errorf("%w: %d prevouts for %d inputs", ErrPrevOutsMismatch, len(prevOuts), len(tx.TxIn))
	}

	// the fetcher is keyed by outpoint, so every input must spend a distinct one
	// for prevOuts to be committed in inputs order.
	prevOutFetcherMap := make(map[wire.OutPoint]*wire.TxOut, len(tx.TxIn))
	for idx, txIn := range tx.TxIn {
		if prevOuts[idx] == nil {
			return nil, fmt.Errorf("input %d: %w", idx, ErrWitnessUTXORequired)
		}
		if _, ok := prevOutFetcherMap[txIn.PreviousOutPoint]; ok {
			return nil, fmt.Errorf("input %d: %w: %v", idx, ErrDuplicateOutPoint, txIn.PreviousOutPoint)
		}

		prevOutFetcherMap[txIn.PreviousOutPoint] = prevOuts[idx]
	}

	fetcher := txscript.NewMultiPrevOutFetcher(prevOutFetcherMap)

	return &sigHasher{
		tx:        tx,
		fetcher:   fetcher,
		sigHashes: txscript.NewTxSigHashes(tx, fetcher),
	}, nil
}

// keySpend returns key path spend signature hash of the input idx.
func (h *sigHasher) keySpend(idx int, hashType txscript.SigHashType) ([signer.DigestSize]byte, error) {
	var digest [signer.DigestSize]byte
	if idx < 0 || idx >= len(h.tx.TxIn) {
		return digest, NewInputIndexError(idx, len(h.tx.TxIn))
	}

	sigHash, err := txscript.CalcTaprootSignatureHash(h.sigHashes, hashType, h.tx, idx, h.fetcher)
	if err != nil {
		return digest, err
	}

	copy(digest[:], sigHash)

	return digest, nil
}

// ownedByPool returns true if outPoint references one of pool utxos.
func ownedByPool(poolInputs []bitcoin.UTXO, outPoint wire.OutPoint) bool {
	for _, utxo := range poolInputs {
		if utxo.Matches(outPoint) {
			return true
		}
	}

	return false
}

// mustSchnorrSignature returns signer response as the fixed size schnorr signature,
// panics if the signer broke its contract of returning 64 bytes.
func mustSchnorrSignature(raw []byte) []byte {
	if len(raw) != schnorr.SignatureSize {
		panic(fmt.Sprintf("signer returned %d bytes schnorr signature, expected %d", len(raw), schnorr.SignatureSize))
	}

	return raw
}

// keySpendWitness returns taproot key path spend witness.
// Sighash type byte is appended for non default types only (BIP-341).
func keySpendWitness(sig []byte, hashType txscript.SigHashType) wire.TxWitness {
	rawSig := make([]byte, 0, schnorr.SignatureSize+1)
	rawSig = append(rawSig, sig...)
	if hashType != txscript.SigHashDefault {
		rawSig = append(rawSig, byte(hashType))
	}

	return wire.TxWitness{rawSig}
}

// serializeWitness returns witness in the psbt final script witness format.
func serializeWitness(witness wire.TxWitness) ([]byte, error) {
	w := bytes.NewBuffer(nil)
	if err := psbt.WriteTxWitness(w, witness); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}
