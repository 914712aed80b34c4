// Copyright 2024 The Erigon Authors
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

package precompiles

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every handler failure unwraps to exactly one of the taxonomy sentinels, so
// callers can switch on the failure kind without parsing messages.
func TestErrorTaxonomy(t *testing.T) {
	t.Parallel()

	err := invalidInputError("declared length is too large")
	assert.Equal(t, "declared length is too large", err.Error())
	require.ErrorIs(t, err, ErrInvalidInput)
	require.NotErrorIs(t, err, ErrInvalidPoint)

	err = invalidPointError("g1 point is not on curve")
	assert.Equal(t, "g1 point is not on curve", err.Error())
	require.ErrorIs(t, err, ErrInvalidPoint)
	require.NotErrorIs(t, err, ErrInvalidInput)

	// the sentinels themselves match only each other
	require.ErrorIs(t, ErrOutOfGas, ErrOutOfGas)
	require.NotErrorIs(t, ErrOutOfGas, ErrInvalidInput)
	require.NotErrorIs(t, ErrNotPrecompile, ErrInvalidInput)
}

// The sentinel messages are part of the contract with callers.
func TestErrorMessages(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "out of gas", ErrOutOfGas.Error())
	assert.Equal(t, "invalid input", ErrInvalidInput.Error())
	assert.Equal(t, "invalid point", ErrInvalidPoint.Error())
	assert.Equal(t, "invalid pairing", ErrInvalidPairing.Error())
	assert.Equal(t, "invalid signature", ErrInvalidSignature.Error())
	assert.Equal(t, "allocation failure", ErrAllocation.Error())
	assert.Equal(t, "not a precompile at this hardfork", ErrNotPrecompile.Error())
}

// A tagged error presents its own message but unwraps to the sentinel.
func TestTaggedErrorUnwrap(t *testing.T) {
	t.Parallel()
	err := invalidInputError("zero modulus")
	require.Equal(t, ErrInvalidInput, errors.Unwrap(err))
}
