// Copyright 2025 The Erigon Authors
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

import "errors"

// The closed set of failure kinds a precompile can produce. Every error
// returned by a handler unwraps to exactly one of these, so callers can
// classify with errors.Is while site-specific messages stay intact.
var (
	// ErrOutOfGas is returned when the computed cost exceeds the supplied
	// gas limit. Supplying exactly the computed cost always succeeds.
	ErrOutOfGas = errors.New("out of gas")

	// ErrInvalidInput covers shape, length and structural violations caught
	// before any cryptographic work.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidPoint covers well-formed encodings of points that are off
	// the curve or outside the required subgroup.
	ErrInvalidPoint = errors.New("invalid point")

	// ErrInvalidPairing covers pairing verification failures where the
	// caller must distinguish them from malformed input. The pairing
	// precompiles themselves encode inequality in their boolean output, so
	// no handler in the current set returns it.
	ErrInvalidPairing = errors.New("invalid pairing")

	// ErrInvalidSignature covers signature-recovery failures where recovery
	// is expected to error rather than return. ECRECOVER deliberately maps
	// every recovery failure to a zero output instead, so no handler in the
	// current set returns it.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrAllocation is reserved for output-buffer allocation failures. The
	// Go runtime aborts on exhausted memory instead of reporting it, so the
	// kind is declared for the taxonomy but never constructed here.
	ErrAllocation = errors.New("allocation failure")
)

// ErrNotPrecompile is returned by Dispatch when the address does not name a
// precompile at the caller's hardfork. It is a dispatch outcome, not part of
// the handler failure set above.
var ErrNotPrecompile = errors.New("not a precompile at this hardfork")

// taggedError carries a site-specific message while unwrapping to one of the
// failure kinds above.
type taggedError struct {
	kind error
	msg  string
}

func (e *taggedError) Error() string { return e.msg }

func (e *taggedError) Unwrap() error { return e.kind }

func invalidInputError(msg string) error {
	return &taggedError{kind: ErrInvalidInput, msg: msg}
}

func invalidPointError(msg string) error {
	return &taggedError{kind: ErrInvalidPoint, msg: msg}
}
