// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package cosigner

import (
	"errors"
	"fmt"
)

var (
	// ErrWitnessUTXORequired defines that psbt input does not declare spent output.
	ErrWitnessUTXORequired = errors.New("witness utxo required")
	// ErrPrevOutsMismatch defines that declared spent outputs do not cover all transaction inputs.
	ErrPrevOutsMismatch = errors.New("prevouts do not match transaction inputs")
	// ErrDuplicateOutPoint defines that several transaction inputs spend the same output.
	ErrDuplicateOutPoint = errors.New("duplicate outpoint")
)

// InputIndexError is the error type to describe transaction input without psbt input data.
type InputIndexError struct {
	Index     int
	Available int
}

// NewInputIndexError is a constructor for InputIndexError.
func NewInputIndexError(index, available int) *InputIndexError {
	return &InputIndexError{Index: index, Available: available}
}

// Error returns error description.
func (e *InputIndexError) Error() string {
	return fmt.Sprintf("input index %d exceeds available inputs (%d)", e.Index, e.Available)
}
