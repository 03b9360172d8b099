// Copyright (C) 2022 Creditor Corp. Group.
// See LICENSE for copying information.

package reverse

// Bytes takes a bytes as argument and return the reverse of bytes.
// NOTE: reverses in place.
func Bytes(value []byte) []byte {
	for i, j := 0, len(value)-1; i < j; i, j = i+1, j-1 {
		value[i], value[j] = value[j], value[i]
	}

	return value
}

// Hash32 returns reversed copy of 32 bytes array, switching between
// internal and display byte order of transaction hashes.
func Hash32(value [32]byte) [32]byte {
	Bytes(value[:])

	return value
}
