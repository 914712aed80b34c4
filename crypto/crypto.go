// Copyright 2014 The go-ethereum Authors
// (original work)
// Copyright 2024 The Erigon Authors
// (modifications)
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

// Package crypto implements the hashing and signature-recovery primitives
// behind the ECRECOVER precompile.
package crypto

import (
	"hash"

	"github.com/holiman/uint256"
	"golang.org/x/crypto/sha3"

	"github.com/erigontech/evm-precompiles/common"
)

const (
	// SignatureLength indicates the byte length required to carry a signature
	// with recovery id.
	SignatureLength = 64 + 1 // 64 bytes ECDSA signature + 1 byte recovery id

	// RecoveryIDOffset points to the byte offset within the signature that
	// contains the recovery id.
	RecoveryIDOffset = 64

	// DigestLength sets the signature digest exact length
	DigestLength = 32
)

var (
	secp256k1N     = new(uint256.Int).SetBytes(common.FromHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"))
	secp256k1halfN = new(uint256.Int).Rsh(secp256k1N, 1)
)

// KeccakState wraps sha3.state. In addition to the usual hash methods, it
// also supports Read to get a variable amount of data from the hash state.
// Read is faster than Sum because it doesn't copy the internal state, but
// also modifies the internal state.
type KeccakState interface {
	hash.Hash
	Read([]byte) (int, error)
}

// NewKeccakState creates a new KeccakState.
func NewKeccakState() KeccakState {
	return sha3.NewLegacyKeccak256().(KeccakState)
}

// Keccak256 calculates and returns the Keccak256 hash of the input data.
func Keccak256(data ...[]byte) []byte {
	b := make([]byte, 32)
	d := NewKeccakState()
	for _, b := range data {
		d.Write(b) //nolint:errcheck
	}
	d.Read(b) //nolint:errcheck
	return b
}

// Keccak256Hash calculates and returns the Keccak256 hash of the input data,
// converting it to an internal Hash data structure.
func Keccak256Hash(data ...[]byte) (h common.Hash) {
	d := NewKeccakState()
	for _, b := range data {
		d.Write(b) //nolint:errcheck
	}
	d.Read(h[:]) //nolint:errcheck
	return h
}

// ValidateSignatureValues verifies whether the signature values are valid for
// precompile recovery. The v value is assumed to be either 0 or 1. The upper
// half of the s range is rejected (ECDSA malleability, see the Homestead
// rules for transaction signatures; recovery applies it unconditionally).
func ValidateSignatureValues(v byte, r, s *uint256.Int) bool {
	if r.IsZero() || s.IsZero() {
		return false
	}
	if s.Gt(secp256k1halfN) {
		return false
	}
	return r.Lt(secp256k1N) && (v == 0 || v == 1)
}
