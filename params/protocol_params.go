// Copyright 2017 The go-ethereum Authors
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

// Package params defines the protocol gas schedule of the precompiled
// contracts.
package params

const (
	EcrecoverGas        uint64 = 3000 // Elliptic curve sender recovery gas price
	Sha256BaseGas       uint64 = 60   // Base price for a SHA256 operation
	Sha256PerWordGas    uint64 = 12   // Per-word price for a SHA256 operation
	Ripemd160BaseGas    uint64 = 600  // Base price for a RIPEMD160 operation
	Ripemd160PerWordGas uint64 = 120  // Per-word price for a RIPEMD160 operation
	IdentityBaseGas     uint64 = 15   // Base price for a data copy operation
	IdentityPerWordGas  uint64 = 3    // Per-word price for a data copy operation

	ModExpQuadCoeffDiv   uint64 = 20  // Divisor for the quadratic particle of the modexp cost before repricing
	ModExpRepricedDiv    uint64 = 3   // Divisor for the quadratic particle of the modexp cost after repricing
	ModExpMinGasRepriced uint64 = 200 // Floor price for a repriced modexp operation

	Bn254AddGas            uint64 = 150   // Gas needed for an elliptic curve addition
	Bn254ScalarMulGas      uint64 = 6000  // Gas needed for an elliptic curve scalar multiplication
	Bn254PairingBaseGas    uint64 = 45000 // Base price for an elliptic curve pairing check
	Bn254PairingPerPairGas uint64 = 34000 // Per-pair price for an elliptic curve pairing check

	Blake2PerRoundGas uint64 = 1 // Per-round price of the BLAKE2b F compression

	Bls12381G1AddGas          uint64 = 500    // Price for BLS12-381 elliptic curve G1 point addition
	Bls12381G1MulGas          uint64 = 12000  // Price for BLS12-381 elliptic curve G1 point scalar multiplication
	Bls12381G2AddGas          uint64 = 800    // Price for BLS12-381 elliptic curve G2 point addition
	Bls12381G2MulGas          uint64 = 45000  // Price for BLS12-381 elliptic curve G2 point scalar multiplication
	Bls12381PairingBaseGas    uint64 = 115000 // Base gas price for BLS12-381 elliptic curve pairing check
	Bls12381PairingPerPairGas uint64 = 23000  // Per-pair gas price for BLS12-381 elliptic curve pairing check
	Bls12381MapFpToG1Gas      uint64 = 5500   // Gas price for BLS12-381 mapping field element to G1 operation
	Bls12381MapFp2ToG2Gas     uint64 = 110000 // Gas price for BLS12-381 mapping field element to G2 operation

	BlobTxPointEvaluationPrecompileGas uint64 = 50000 // Gas price for the point evaluation precompile
)

// Bls12381MultiExpDiscountTable holds the multi-scalar-multiplication batch
// discount in thousandths. Each row is a batch-size breakpoint and its
// discount; the discount for a batch of k pairs is the entry of the largest
// breakpoint not exceeding k, and batches past the last breakpoint keep its
// discount.
var Bls12381MultiExpDiscountTable = [...][2]uint64{
	{1, 1000},
	{2, 820},
	{4, 580},
	{8, 430},
	{16, 320},
	{32, 250},
	{64, 200},
	{128, 174},
}
