// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package cosigner

import "github.com/btcsuite/btclog"

// log is a logger that is initialized with no output filters.
// This means the package will not perform any logging by default until the caller
// requests it.
var log btclog.Logger

func init() {
	DisableLog()
}

// DisableLog disables all library log output.
func DisableLog() {
	log = btclog.Disabled
}

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger btclog.Logger) {
	log = logger
}
