// Copyright 2014 The go-ethereum Authors
// (original work)
// Copyright 2025 The Erigon Authors
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

// Package precompiles implements the native contracts reachable at the
// reserved addresses 0x01 through 0x13, together with the hardfork-gated
// dispatch over them. Every contract is a pure function of its input bytes:
// the same input and gas limit always produce the same output, gas use and
// error, so handlers may be called concurrently without synchronization.
package precompiles

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/holiman/uint256"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck

	"github.com/erigontech/evm-precompiles/chain"
	"github.com/erigontech/evm-precompiles/common"
	"github.com/erigontech/evm-precompiles/common/math"
	"github.com/erigontech/evm-precompiles/crypto"
	"github.com/erigontech/evm-precompiles/crypto/blake2b"
	"github.com/erigontech/evm-precompiles/crypto/bls12381"
	"github.com/erigontech/evm-precompiles/crypto/bn256"
	libkzg "github.com/erigontech/evm-precompiles/crypto/kzg"
	"github.com/erigontech/evm-precompiles/params"
)

// PrecompiledContract is the basic interface for native Go contracts. The implementation
// requires a deterministic gas count based on the input size of the Run method of the
// contract.
type PrecompiledContract interface {
	RequiredGas(input []byte) uint64  // RequiredGas calculates the contract gas use
	Run(input []byte) ([]byte, error) // Run runs the precompiled contract
}

// activation binds a contract implementation to the address and hardfork at
// which it goes live.
type activation struct {
	addr     common.Address
	fork     chain.Hardfork
	contract PrecompiledContract
}

// activations is the full precompile schedule, ordered by address and then by
// activating hardfork. A later row for an already listed address replaces the
// earlier implementation from its hardfork on, which is how the ModExp
// repricing is expressed. Availability is decided by interval comparison
// against the activating fork, so hardforks appended to the enumeration later
// inherit the schedule without any change here.
var activations = []activation{
	{common.BytesToAddress([]byte{0x01}), chain.Frontier, &ecrecover{}},
	{common.BytesToAddress([]byte{0x02}), chain.Frontier, &sha256hash{}},
	{common.BytesToAddress([]byte{0x03}), chain.Frontier, &ripemd160hash{}},
	{common.BytesToAddress([]byte{0x04}), chain.Frontier, &dataCopy{}},
	{common.BytesToAddress([]byte{0x05}), chain.Byzantium, &bigModExp{}},
	{common.BytesToAddress([]byte{0x05}), chain.Berlin, &bigModExp{repriced: true}},
	{common.BytesToAddress([]byte{0x06}), chain.Byzantium, &bn254Add{}},
	{common.BytesToAddress([]byte{0x07}), chain.Byzantium, &bn254ScalarMul{}},
	{common.BytesToAddress([]byte{0x08}), chain.Byzantium, &bn254Pairing{}},
	{common.BytesToAddress([]byte{0x09}), chain.Istanbul, &blake2F{}},
	{common.BytesToAddress([]byte{0x0a}), chain.Cancun, &pointEvaluation{}},
	{common.BytesToAddress([]byte{0x0b}), chain.Prague, &bls12381G1Add{}},
	{common.BytesToAddress([]byte{0x0c}), chain.Prague, &bls12381G1Mul{}},
	{common.BytesToAddress([]byte{0x0d}), chain.Prague, &bls12381G1MultiExp{}},
	{common.BytesToAddress([]byte{0x0e}), chain.Prague, &bls12381G2Add{}},
	{common.BytesToAddress([]byte{0x0f}), chain.Prague, &bls12381G2Mul{}},
	{common.BytesToAddress([]byte{0x10}), chain.Prague, &bls12381G2MultiExp{}},
	{common.BytesToAddress([]byte{0x11}), chain.Prague, &bls12381Pairing{}},
	{common.BytesToAddress([]byte{0x12}), chain.Prague, &bls12381MapFpToG1{}},
	{common.BytesToAddress([]byte{0x13}), chain.Prague, &bls12381MapFp2ToG2{}},
}

// precompileSet materializes the schedule at a single hardfork.
func precompileSet(fork chain.Hardfork) map[common.Address]PrecompiledContract {
	set := make(map[common.Address]PrecompiledContract)
	for i := range activations {
		a := &activations[i]
		if fork.AtLeast(a.fork) {
			set[a.addr] = a.contract
		}
	}
	return set
}

// PrecompiledContractsFrontier contains the default set of pre-compiled
// contracts used in the Frontier and Homestead releases.
var PrecompiledContractsFrontier = precompileSet(chain.Frontier)

// PrecompiledContractsByzantium contains the default set of pre-compiled
// contracts used in the Byzantium release.
var PrecompiledContractsByzantium = precompileSet(chain.Byzantium)

// PrecompiledContractsIstanbul contains the default set of pre-compiled
// contracts used in the Istanbul release.
var PrecompiledContractsIstanbul = precompileSet(chain.Istanbul)

// PrecompiledContractsBerlin contains the default set of pre-compiled
// contracts used in the Berlin release.
var PrecompiledContractsBerlin = precompileSet(chain.Berlin)

// PrecompiledContractsCancun contains the default set of pre-compiled
// contracts used in the Cancun release.
var PrecompiledContractsCancun = precompileSet(chain.Cancun)

// PrecompiledContractsPrague contains the default set of pre-compiled
// contracts used in the Prague release.
var PrecompiledContractsPrague = precompileSet(chain.Prague)

// Precompile returns the contract live at addr under the given hardfork. The
// schedule is scanned in activation order and the last matching row wins, so
// repriced implementations shadow their predecessors.
func Precompile(addr common.Address, fork chain.Hardfork) (PrecompiledContract, bool) {
	var found PrecompiledContract
	for i := range activations {
		a := &activations[i]
		if a.addr == addr && fork.AtLeast(a.fork) {
			found = a.contract
		}
	}
	return found, found != nil
}

// IsAvailable reports whether addr names a precompile under the given
// hardfork.
func IsAvailable(addr common.Address, fork chain.Hardfork) bool {
	_, ok := Precompile(addr, fork)
	return ok
}

// ActivePrecompiles returns the addresses of the precompiles live under the
// given hardfork, in ascending address order.
func ActivePrecompiles(fork chain.Hardfork) []common.Address {
	var addrs []common.Address
	for i := range activations {
		a := &activations[i]
		if fork.Before(a.fork) {
			continue
		}
		if n := len(addrs); n > 0 && addrs[n-1] == a.addr {
			continue
		}
		addrs = append(addrs, a.addr)
	}
	return addrs
}

// Result is the outcome of a successful dispatch. The output buffer is owned
// by the caller and never aliases the input or any shared state.
type Result struct {
	Output  []byte
	GasUsed uint64
}

// Dispatch routes a call to the precompile at addr under the given hardfork,
// charging the computed cost against gasLimit. An address with no contract at
// that fork yields ErrNotPrecompile. A failed run reports its own error and
// the caller is expected to treat the entire gas limit as consumed.
func Dispatch(addr common.Address, input []byte, gasLimit uint64, fork chain.Hardfork) (*Result, error) {
	p, ok := Precompile(addr, fork)
	if !ok {
		return nil, ErrNotPrecompile
	}
	gasCost := p.RequiredGas(input)
	if gasCost > gasLimit {
		return nil, ErrOutOfGas
	}
	output, err := p.Run(input)
	if err != nil {
		return nil, err
	}
	return &Result{Output: output, GasUsed: gasCost}, nil
}

// RunPrecompiledContract runs and evaluates the output of a precompiled
// contract. It returns
//   - the returned bytes,
//   - the _remaining_ gas,
//   - any error that occurred
func RunPrecompiledContract(p PrecompiledContract, input []byte, suppliedGas uint64) (ret []byte, remainingGas uint64, err error) {
	gasCost := p.RequiredGas(input)
	if suppliedGas < gasCost {
		return nil, 0, ErrOutOfGas
	}
	suppliedGas -= gasCost
	ret, err = p.Run(input)
	return ret, suppliedGas, err
}

// ECRECOVER implemented as a native contract.
type ecrecover struct{}

func (c *ecrecover) RequiredGas(input []byte) uint64 {
	return params.EcrecoverGas
}

func (c *ecrecover) Run(input []byte) ([]byte, error) {
	const ecRecoverInputLength = 128

	input = common.RightPadBytes(input, ecRecoverInputLength)
	// "input" is (hash, v, r, s), each 32 bytes
	// but for ecrecover we want (r, s, v)

	r := new(uint256.Int).SetBytes(input[64:96])
	s := new(uint256.Int).SetBytes(input[96:128])
	v := input[63] - 27

	// Recovery failures answer with an all-zero word rather than an error.
	// Upper-half s values are rejected as malleable.
	if !allZero(input[32:63]) || !crypto.ValidateSignatureValues(v, r, s) {
		return make([]byte, 32), nil
	}
	// We must make sure not to modify the 'input', so placing the 'v' along
	// with the signature needs to be done on a new allocation
	sig := make([]byte, 65)
	copy(sig, input[64:128])
	sig[64] = v
	// v needs to be at the end for libsecp256k1
	pubKey, err := crypto.Ecrecover(input[:32], sig)
	// make sure the public key is a valid one
	if err != nil {
		return make([]byte, 32), nil
	}

	// the first byte of pubkey is bitcoin heritage
	return common.LeftPadBytes(crypto.Keccak256(pubKey[1:])[12:], 32), nil
}

// SHA256 implemented as a native contract.
type sha256hash struct{}

// RequiredGas returns the gas required to execute the pre-compiled contract.
//
// This method does not require any overflow checking as the input size gas costs
// required for anything significant is so high it's impossible to pay for.
func (c *sha256hash) RequiredGas(input []byte) uint64 {
	return uint64(len(input)+31)/32*params.Sha256PerWordGas + params.Sha256BaseGas
}

func (c *sha256hash) Run(input []byte) ([]byte, error) {
	h := sha256.Sum256(input)
	return h[:], nil
}

// RIPEMD160 implemented as a native contract.
type ripemd160hash struct{}

// RequiredGas returns the gas required to execute the pre-compiled contract.
//
// This method does not require any overflow checking as the input size gas costs
// required for anything significant is so high it's impossible to pay for.
func (c *ripemd160hash) RequiredGas(input []byte) uint64 {
	return uint64(len(input)+31)/32*params.Ripemd160PerWordGas + params.Ripemd160BaseGas
}

func (c *ripemd160hash) Run(input []byte) ([]byte, error) {
	ripemd := ripemd160.New()
	ripemd.Write(input)
	return common.LeftPadBytes(ripemd.Sum(nil), 32), nil
}

// data copy implemented as a native contract.
type dataCopy struct{}

// RequiredGas returns the gas required to execute the pre-compiled contract.
//
// This method does not require any overflow checking as the input size gas costs
// required for anything significant is so high it's impossible to pay for.
func (c *dataCopy) RequiredGas(input []byte) uint64 {
	return uint64(len(input)+31)/32*params.IdentityPerWordGas + params.IdentityBaseGas
}

func (c *dataCopy) Run(in []byte) ([]byte, error) {
	return common.Copy(in), nil
}

// bigModExp implements a native big integer exponential modular operation.
type bigModExp struct {
	repriced bool // selects the post-Berlin cost formula with its 200 gas floor
}

var (
	big8  = big.NewInt(8)
	big32 = big.NewInt(32)

	bigQuadCoeffDiv = new(big.Int).SetUint64(params.ModExpQuadCoeffDiv)
	bigRepricedDiv  = new(big.Int).SetUint64(params.ModExpRepricedDiv)
)

var (
	errModExpLengthTooLarge = invalidInputError("declared length is too large")
	errModExpZeroModulus    = invalidInputError("zero modulus")
)

// modExpLengths reads the three declared operand lengths from the call
// header. A length that cannot be addressed once combined with the 96 byte
// header offset is rejected, so the body offsets computed from the returned
// values never wrap.
func modExpLengths(input []byte) (baseLen, expLen, modLen uint64, err error) {
	var (
		baseLenBig = new(big.Int).SetBytes(getData(input, 0, 32))
		expLenBig  = new(big.Int).SetBytes(getData(input, 32, 32))
		modLenBig  = new(big.Int).SetBytes(getData(input, 64, 32))
	)
	if !baseLenBig.IsUint64() || !expLenBig.IsUint64() || !modLenBig.IsUint64() {
		return 0, 0, 0, errModExpLengthTooLarge
	}
	baseLen, expLen, modLen = baseLenBig.Uint64(), expLenBig.Uint64(), modLenBig.Uint64()
	expOffset, overflow := math.SafeAdd(baseLen, expLen)
	if overflow {
		return 0, 0, 0, errModExpLengthTooLarge
	}
	bodyLen, overflow := math.SafeAdd(expOffset, modLen)
	if overflow || bodyLen > math.MaxInt64-96 {
		return 0, 0, 0, errModExpLengthTooLarge
	}
	return baseLen, expLen, modLen, nil
}

// RequiredGas returns the gas required to execute the pre-compiled contract.
func (c *bigModExp) RequiredGas(input []byte) uint64 {
	var (
		baseLen = new(big.Int).SetBytes(getData(input, 0, 32))
		expLen  = new(big.Int).SetBytes(getData(input, 32, 32))
		modLen  = new(big.Int).SetBytes(getData(input, 64, 32))
	)
	if len(input) > 96 {
		input = input[96:]
	} else {
		input = input[:0]
	}
	// Retrieve the head 32 bytes of exp for the adjusted exponent length
	var expHead *big.Int
	if big.NewInt(int64(len(input))).Cmp(baseLen) <= 0 {
		expHead = new(big.Int)
	} else {
		if expLen.Cmp(big32) > 0 {
			expHead = new(big.Int).SetBytes(getData(input, baseLen.Uint64(), 32))
		} else {
			expHead = new(big.Int).SetBytes(getData(input, baseLen.Uint64(), expLen.Uint64()))
		}
	}
	// Calculate the adjusted exponent length
	var msb int
	if bitlen := expHead.BitLen(); bitlen > 0 {
		msb = bitlen - 1
	}
	adjExpLen := new(big.Int)
	if expLen.Cmp(big32) > 0 {
		adjExpLen.Sub(expLen, big32)
		adjExpLen.Mul(big8, adjExpLen)
	}
	adjExpLen.Add(adjExpLen, big.NewInt(int64(msb)))
	// The cost is quadratic in the larger of the two operand lengths and
	// linear in the adjusted exponent length, with the divisor and the price
	// floor depending on the repricing.
	gas := new(big.Int).Set(math.BigMax(modLen, baseLen))
	gas.Mul(gas, gas)
	gas.Mul(gas, adjExpLen)
	if c.repriced {
		gas.Div(gas, bigRepricedDiv)
		if gas.BitLen() > 64 {
			return math.MaxUint64
		}
		if gas.Uint64() < params.ModExpMinGasRepriced {
			return params.ModExpMinGasRepriced
		}
		return gas.Uint64()
	}
	gas.Div(gas, bigQuadCoeffDiv)
	if gas.BitLen() > 64 {
		return math.MaxUint64
	}
	return gas.Uint64()
}

// newBn254Point unmarshals a binary blob into a bn254 curve point, tagging
// any rejection as an invalid point.
func newBn254Point(blob []byte) (*bn254.G1Affine, error) {
	p := new(bn254.G1Affine)
	if err := bn256.UnmarshalCurvePoint(blob, p); err != nil {
		return nil, invalidPointError(err.Error())
	}
	return p, nil
}

// newBn254TwistPoint unmarshals a binary blob into a bn254 twist point,
// tagging any rejection as an invalid point.
func newBn254TwistPoint(blob []byte) (*bn254.G2Affine, error) {
	p := new(bn254.G2Affine)
	if err := bn256.UnmarshalTwistPoint(blob, p); err != nil {
		return nil, invalidPointError(err.Error())
	}
	return p, nil
}

// bn254Add implements the elliptic curve addition precompile.
type bn254Add struct{}

// RequiredGas returns the gas required to execute the pre-compiled contract.
func (c *bn254Add) RequiredGas(input []byte) uint64 {
	return params.Bn254AddGas
}

func (c *bn254Add) Run(input []byte) ([]byte, error) {
	x, err := newBn254Point(getData(input, 0, 64))
	if err != nil {
		return nil, err
	}
	y, err := newBn254Point(getData(input, 64, 64))
	if err != nil {
		return nil, err
	}
	res := new(bn254.G1Affine)
	res.Add(x, y)
	return bn256.MarshalCurvePoint(res, make([]byte, 0, 64)), nil
}

// bn254ScalarMul implements the elliptic curve scalar multiplication
// precompile.
type bn254ScalarMul struct{}

// RequiredGas returns the gas required to execute the pre-compiled contract.
func (c *bn254ScalarMul) RequiredGas(input []byte) uint64 {
	return params.Bn254ScalarMulGas
}

func (c *bn254ScalarMul) Run(input []byte) ([]byte, error) {
	p, err := newBn254Point(getData(input, 0, 64))
	if err != nil {
		return nil, err
	}
	scalar := new(big.Int).SetBytes(getData(input, 64, 32))
	res := new(bn254.G1Affine).ScalarMultiplication(p, scalar)
	return bn256.MarshalCurvePoint(res, make([]byte, 0, 64)), nil
}

var (
	// true32Byte is returned if the bn254 pairing check succeeds.
	true32Byte = []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}

	// false32Byte is returned if the bn254 pairing check fails.
	false32Byte = make([]byte, 32)

	// errBadPairingInput is returned if the bn254 pairing input is invalid.
	errBadPairingInput = invalidInputError("bad elliptic curve pairing size")
)

// bn254Pairing implements the elliptic curve pairing check precompile.
type bn254Pairing struct{}

// RequiredGas returns the gas required to execute the pre-compiled contract.
func (c *bn254Pairing) RequiredGas(input []byte) uint64 {
	return params.Bn254PairingBaseGas + uint64(len(input)/192)*params.Bn254PairingPerPairGas
}

func (c *bn254Pairing) Run(input []byte) ([]byte, error) {
	// Handle some corner cases cheaply
	if len(input)%192 > 0 {
		return nil, errBadPairingInput
	}
	// Convert the input into a set of coordinates
	var (
		cs []bn254.G1Affine
		ts []bn254.G2Affine
	)
	for i := 0; i < len(input); i += 192 {
		c, err := newBn254Point(input[i : i+64])
		if err != nil {
			return nil, err
		}
		t, err := newBn254TwistPoint(input[i+64 : i+192])
		if err != nil {
			return nil, err
		}
		cs = append(cs, *c)
		ts = append(ts, *t)
	}
	// An empty pair list is a vacuous product, defined to hold
	if len(cs) == 0 {
		return common.Copy(true32Byte), nil
	}
	ok, err := bn254.PairingCheck(cs, ts)
	if err != nil {
		return nil, invalidInputError(err.Error())
	}
	if ok {
		return common.Copy(true32Byte), nil
	}
	return common.Copy(false32Byte), nil
}

const (
	blake2FInputLength        = 213
	blake2FFinalBlockBytes    = byte(1)
	blake2FNonFinalBlockBytes = byte(0)
)

var (
	errBlake2FInvalidInputLength = invalidInputError("invalid input length")
	errBlake2FInvalidFinalFlag   = invalidInputError("invalid final flag")
)

// blake2F implements the BLAKE2b F compression function precompile.
type blake2F struct{}

func (c *blake2F) RequiredGas(input []byte) uint64 {
	// If the input is malformed, we can't calculate the gas, return 0 and let the
	// actual call choke and fault.
	if len(input) != blake2FInputLength {
		return 0
	}
	return uint64(binary.BigEndian.Uint32(input[0:4])) * params.Blake2PerRoundGas
}

func (c *blake2F) Run(input []byte) ([]byte, error) {
	// Make sure the input is valid (correct length and final flag)
	if len(input) != blake2FInputLength {
		return nil, errBlake2FInvalidInputLength
	}
	if input[212] != blake2FNonFinalBlockBytes && input[212] != blake2FFinalBlockBytes {
		return nil, errBlake2FInvalidFinalFlag
	}
	// Parse the input into the Blake2b call parameters
	var (
		rounds = binary.BigEndian.Uint32(input[0:4])
		final  = input[212] == blake2FFinalBlockBytes

		h [8]uint64
		m [16]uint64
		t [2]uint64
	)
	for i := 0; i < 8; i++ {
		offset := 4 + i*8
		h[i] = binary.LittleEndian.Uint64(input[offset : offset+8])
	}
	for i := 0; i < 16; i++ {
		offset := 68 + i*8
		m[i] = binary.LittleEndian.Uint64(input[offset : offset+8])
	}
	t[0] = binary.LittleEndian.Uint64(input[196:204])
	t[1] = binary.LittleEndian.Uint64(input[204:212])

	// Execute the compression function, extract and return the result
	blake2b.F(&h, m, t, final, rounds)

	output := make([]byte, 64)
	for i := 0; i < 8; i++ {
		offset := i * 8
		binary.LittleEndian.PutUint64(output[offset:offset+8], h[i])
	}
	return output, nil
}

// pointEvaluation implements the EIP-4844 point evaluation precompile.
type pointEvaluation struct{}

// RequiredGas returns the gas required to execute the pre-compiled contract.
func (c *pointEvaluation) RequiredGas(input []byte) uint64 {
	return params.BlobTxPointEvaluationPrecompileGas
}

func (c *pointEvaluation) Run(input []byte) ([]byte, error) {
	out, err := libkzg.PointEvaluationPrecompile(libkzg.Ctx(), input)
	if err != nil {
		return nil, tagKzgError(err)
	}
	return out, nil
}

// tagKzgError classifies a point evaluation failure. Shape and versioned hash
// violations are caught before any proof verification and count as invalid
// input, a failed verification counts as an invalid point.
func tagKzgError(err error) error {
	switch {
	case errors.Is(err, libkzg.ErrContextFreed):
		return err
	case errors.Is(err, libkzg.ErrInvalidInputLength), errors.Is(err, libkzg.ErrMismatchedVersion):
		return invalidInputError(err.Error())
	default:
		return invalidPointError(err.Error())
	}
}

// tagBlsError classifies a BLS12-381 operation failure. Off-curve and
// off-subgroup points are invalid points, everything else is caught by the
// codec before any curve arithmetic and counts as invalid input.
func tagBlsError(err error) error {
	switch {
	case errors.Is(err, bls12381.ErrG1PointIsNotOnCurve),
		errors.Is(err, bls12381.ErrG2PointIsNotOnCurve),
		errors.Is(err, bls12381.ErrG1PointSubgroup),
		errors.Is(err, bls12381.ErrG2PointSubgroup):
		return invalidPointError(err.Error())
	default:
		return invalidInputError(err.Error())
	}
}

// msmDiscount returns the multi-scalar-multiplication discount, in
// thousandths, for a batch of k pairs. The value is the entry of the largest
// breakpoint not exceeding k, and batches past the last breakpoint keep its
// discount.
func msmDiscount(k int) uint64 {
	discount := params.Bls12381MultiExpDiscountTable[0][1]
	for _, entry := range params.Bls12381MultiExpDiscountTable {
		if uint64(k) < entry[0] {
			break
		}
		discount = entry[1]
	}
	return discount
}

// bls12381G1Add implements the BLS12-381 G1 point addition precompile.
type bls12381G1Add struct{}

// RequiredGas returns the gas required to execute the pre-compiled contract.
func (c *bls12381G1Add) RequiredGas(input []byte) uint64 {
	return params.Bls12381G1AddGas
}

func (c *bls12381G1Add) Run(input []byte) ([]byte, error) {
	out, err := bls12381.G1Add(input)
	if err != nil {
		return nil, tagBlsError(err)
	}
	return out, nil
}

// bls12381G1Mul implements the BLS12-381 G1 scalar multiplication precompile.
type bls12381G1Mul struct{}

// RequiredGas returns the gas required to execute the pre-compiled contract.
func (c *bls12381G1Mul) RequiredGas(input []byte) uint64 {
	return params.Bls12381G1MulGas
}

func (c *bls12381G1Mul) Run(input []byte) ([]byte, error) {
	out, err := bls12381.G1Mul(input)
	if err != nil {
		return nil, tagBlsError(err)
	}
	return out, nil
}

// bls12381G1MultiExp implements the BLS12-381 G1 multi-scalar-multiplication
// precompile.
type bls12381G1MultiExp struct{}

// RequiredGas returns the gas required to execute the pre-compiled contract.
func (c *bls12381G1MultiExp) RequiredGas(input []byte) uint64 {
	// Calculate G1 point, scalar value pair length
	k := len(input) / bls12381.LenPairG1
	if k == 0 {
		// Return 0 gas for small input length
		return 0
	}
	// The per-multiplication price is discounted by batch size, with the
	// product saturating rather than wrapping.
	gas, overflow := math.SafeMul(uint64(k), params.Bls12381G1MulGas)
	if overflow {
		return math.MaxUint64
	}
	if gas, overflow = math.SafeMul(gas, msmDiscount(k)); overflow {
		return math.MaxUint64
	}
	return gas / 1000
}

func (c *bls12381G1MultiExp) Run(input []byte) ([]byte, error) {
	out, err := bls12381.G1MSM(input)
	if err != nil {
		return nil, tagBlsError(err)
	}
	return out, nil
}

// bls12381G2Add implements the BLS12-381 G2 point addition precompile.
type bls12381G2Add struct{}

// RequiredGas returns the gas required to execute the pre-compiled contract.
func (c *bls12381G2Add) RequiredGas(input []byte) uint64 {
	return params.Bls12381G2AddGas
}

func (c *bls12381G2Add) Run(input []byte) ([]byte, error) {
	out, err := bls12381.G2Add(input)
	if err != nil {
		return nil, tagBlsError(err)
	}
	return out, nil
}

// bls12381G2Mul implements the BLS12-381 G2 scalar multiplication precompile.
type bls12381G2Mul struct{}

// RequiredGas returns the gas required to execute the pre-compiled contract.
func (c *bls12381G2Mul) RequiredGas(input []byte) uint64 {
	return params.Bls12381G2MulGas
}

func (c *bls12381G2Mul) Run(input []byte) ([]byte, error) {
	out, err := bls12381.G2Mul(input)
	if err != nil {
		return nil, tagBlsError(err)
	}
	return out, nil
}

// bls12381G2MultiExp implements the BLS12-381 G2 multi-scalar-multiplication
// precompile.
type bls12381G2MultiExp struct{}

// RequiredGas returns the gas required to execute the pre-compiled contract.
func (c *bls12381G2MultiExp) RequiredGas(input []byte) uint64 {
	// Calculate G2 point, scalar value pair length
	k := len(input) / bls12381.LenPairG2
	if k == 0 {
		// Return 0 gas for small input length
		return 0
	}
	// The per-multiplication price is discounted by batch size, with the
	// product saturating rather than wrapping.
	gas, overflow := math.SafeMul(uint64(k), params.Bls12381G2MulGas)
	if overflow {
		return math.MaxUint64
	}
	if gas, overflow = math.SafeMul(gas, msmDiscount(k)); overflow {
		return math.MaxUint64
	}
	return gas / 1000
}

func (c *bls12381G2MultiExp) Run(input []byte) ([]byte, error) {
	out, err := bls12381.G2MSM(input)
	if err != nil {
		return nil, tagBlsError(err)
	}
	return out, nil
}

// bls12381Pairing implements the BLS12-381 pairing check precompile.
type bls12381Pairing struct{}

// RequiredGas returns the gas required to execute the pre-compiled contract.
func (c *bls12381Pairing) RequiredGas(input []byte) uint64 {
	return params.Bls12381PairingBaseGas + uint64(len(input)/bls12381.LenPairingPair)*params.Bls12381PairingPerPairGas
}

func (c *bls12381Pairing) Run(input []byte) ([]byte, error) {
	ok, err := bls12381.Pairing(input)
	if err != nil {
		return nil, tagBlsError(err)
	}
	if ok {
		return common.Copy(true32Byte), nil
	}
	return common.Copy(false32Byte), nil
}

// bls12381MapFpToG1 implements the BLS12-381 map field element to G1
// precompile.
type bls12381MapFpToG1 struct{}

// RequiredGas returns the gas required to execute the pre-compiled contract.
func (c *bls12381MapFpToG1) RequiredGas(input []byte) uint64 {
	return params.Bls12381MapFpToG1Gas
}

func (c *bls12381MapFpToG1) Run(input []byte) ([]byte, error) {
	out, err := bls12381.MapFpToG1(input)
	if err != nil {
		return nil, tagBlsError(err)
	}
	return out, nil
}

// bls12381MapFp2ToG2 implements the BLS12-381 map field element to G2
// precompile.
type bls12381MapFp2ToG2 struct{}

// RequiredGas returns the gas required to execute the pre-compiled contract.
func (c *bls12381MapFp2ToG2) RequiredGas(input []byte) uint64 {
	return params.Bls12381MapFp2ToG2Gas
}

func (c *bls12381MapFp2ToG2) Run(input []byte) ([]byte, error) {
	out, err := bls12381.MapFp2ToG2(input)
	if err != nil {
		return nil, tagBlsError(err)
	}
	return out, nil
}
