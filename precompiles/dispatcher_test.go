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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erigontech/evm-precompiles/chain"
	"github.com/erigontech/evm-precompiles/common"
	"github.com/erigontech/evm-precompiles/params"
)

func TestPrecompileActivation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		addr      byte
		fork      chain.Hardfork
		available bool
	}{
		{0x01, chain.Frontier, true},
		{0x04, chain.Frontier, true},
		{0x05, chain.Frontier, false},
		{0x05, chain.Homestead, false},
		{0x05, chain.Byzantium, true},
		{0x08, chain.Byzantium, true},
		{0x09, chain.Byzantium, false},
		{0x09, chain.Istanbul, true},
		{0x0a, chain.Shanghai, false},
		{0x0a, chain.Cancun, true},
		{0x0b, chain.Cancun, false},
		{0x0b, chain.Prague, true},
		{0x13, chain.Prague, true},
		// later releases inherit the full set
		{0x01, chain.Osaka, true},
		{0x13, chain.Osaka, true},
		// neighbours of the reserved range stay empty
		{0x00, chain.Prague, false},
		{0x14, chain.Osaka, false},
	}
	for _, tt := range tests {
		addr := common.BytesToAddress([]byte{tt.addr})
		assert.Equal(t, tt.available, IsAvailable(addr, tt.fork),
			"address 0x%02x at %v", tt.addr, tt.fork)
	}
}

func TestActivePrecompiles(t *testing.T) {
	t.Parallel()
	counts := map[chain.Hardfork]int{
		chain.Frontier:  4,
		chain.Homestead: 4,
		chain.Byzantium: 8,
		chain.Istanbul:  9,
		chain.Berlin:    9, // repricing shadows, it does not add
		chain.London:    9,
		chain.Cancun:    10,
		chain.Prague:    19,
		chain.Osaka:     19,
	}
	for fork, want := range counts {
		addrs := ActivePrecompiles(fork)
		require.Len(t, addrs, want, "fork %v", fork)
		for i := 1; i < len(addrs); i++ {
			assert.Equal(t, -1, bytes.Compare(addrs[i-1].Bytes(), addrs[i].Bytes()),
				"fork %v: addresses out of order at %d", fork, i)
		}
	}
}

func TestPrecompileSetsMatchSchedule(t *testing.T) {
	t.Parallel()
	sets := map[chain.Hardfork]map[common.Address]PrecompiledContract{
		chain.Frontier:  PrecompiledContractsFrontier,
		chain.Byzantium: PrecompiledContractsByzantium,
		chain.Istanbul:  PrecompiledContractsIstanbul,
		chain.Berlin:    PrecompiledContractsBerlin,
		chain.Cancun:    PrecompiledContractsCancun,
		chain.Prague:    PrecompiledContractsPrague,
	}
	for fork, set := range sets {
		addrs := ActivePrecompiles(fork)
		require.Len(t, set, len(addrs), "fork %v", fork)
		for _, addr := range addrs {
			_, ok := set[addr]
			assert.True(t, ok, "fork %v: %v missing from the set", fork, addr.Hex())
		}
	}
}

// The Berlin release swaps the modular exponentiation for its repriced
// implementation at the same address.
func TestPrecompileModExpReprice(t *testing.T) {
	t.Parallel()
	addr := common.BytesToAddress([]byte{0x05})
	// single byte base, exponent and modulus, exponent 0xff
	input := common.FromHex("0x00000000000000000000000000000000000000000000000000000000000000010000000000000000000000000000000000000000000000000000000000000001000000000000000000000000000000000000000000000000000000000000000102ff0d")

	pre, ok := Precompile(addr, chain.Byzantium)
	require.True(t, ok)
	post, ok := Precompile(addr, chain.Berlin)
	require.True(t, ok)

	// 1 * 7 / 20 rounds down to nothing, the repriced schedule floors at 200
	assert.Equal(t, uint64(0), pre.RequiredGas(input))
	assert.Equal(t, uint64(200), post.RequiredGas(input))

	// both agree on the result itself: 2^255 mod 13
	out, _, err := RunPrecompiledContract(post, input, 200)
	require.NoError(t, err)
	assert.Equal(t, "08", common.Bytes2Hex(out))
}

func TestDispatch(t *testing.T) {
	t.Parallel()
	identity := common.BytesToAddress([]byte{0x04})
	input := []byte{0x01, 0x02, 0x03}

	res, err := Dispatch(identity, input, 20, chain.Frontier)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, res.Output)
	assert.Equal(t, uint64(18), res.GasUsed)

	// the answer is a private copy, not a view of the caller's buffer
	input[0] = 0xff
	assert.Equal(t, byte(0x01), res.Output[0])
}

func TestDispatchNotPrecompile(t *testing.T) {
	t.Parallel()
	// not yet activated
	_, err := Dispatch(common.BytesToAddress([]byte{0x0b}), nil, 1<<20, chain.Cancun)
	require.ErrorIs(t, err, ErrNotPrecompile)
	// never a precompile
	_, err = Dispatch(common.HexToAddress("0xdeadbeef"), nil, 1<<20, chain.Prague)
	require.ErrorIs(t, err, ErrNotPrecompile)
}

func TestDispatchOutOfGas(t *testing.T) {
	t.Parallel()
	addr := common.BytesToAddress([]byte{0x02})
	_, err := Dispatch(addr, nil, params.Sha256BaseGas-1, chain.Frontier)
	require.ErrorIs(t, err, ErrOutOfGas)

	res, err := Dispatch(addr, nil, params.Sha256BaseGas, chain.Frontier)
	require.NoError(t, err)
	assert.Equal(t, params.Sha256BaseGas, res.GasUsed)
}

// Every recorded vector must clear dispatch with its own gas figure as the
// limit: the schedule charges exactly the recorded amount and a limit equal
// to the cost is enough to run.
func TestDispatchVectorCorpus(t *testing.T) {
	t.Parallel()
	corpus := []struct {
		file string
		addr byte
		fork chain.Hardfork
	}{
		{"ecRecover", 0x01, chain.Frontier},
		{"modexp", 0x05, chain.Byzantium},
		{"modexp_repriced", 0x05, chain.Berlin},
		{"bn254Add", 0x06, chain.Byzantium},
		{"bn254ScalarMul", 0x07, chain.Byzantium},
		{"bn254Pairing", 0x08, chain.Byzantium},
		{"blake2F", 0x09, chain.Istanbul},
		{"pointEvaluation", 0x0a, chain.Cancun},
		{"blsG1Add", 0x0b, chain.Prague},
		{"blsG1Mul", 0x0c, chain.Prague},
		{"blsG1MultiExp", 0x0d, chain.Prague},
		{"blsG2Add", 0x0e, chain.Prague},
		{"blsG2Mul", 0x0f, chain.Prague},
		{"blsG2MultiExp", 0x10, chain.Prague},
		{"blsPairing", 0x11, chain.Prague},
	}
	for _, c := range corpus {
		vectors, err := loadJson(c.file)
		require.NoError(t, err, c.file)
		addr := common.BytesToAddress([]byte{c.addr})
		for _, vec := range vectors {
			res, err := Dispatch(addr, common.Hex2Bytes(vec.Input), vec.Gas, c.fork)
			require.NoError(t, err, "%s: %s", c.file, vec.Name)
			assert.Equal(t, vec.Gas, res.GasUsed, "%s: %s", c.file, vec.Name)
			assert.Equal(t, vec.Expected, common.Bytes2Hex(res.Output), "%s: %s", c.file, vec.Name)
		}
	}
}

func TestDispatchRunFailure(t *testing.T) {
	t.Parallel()
	addr := common.BytesToAddress([]byte{0x09})
	// one byte short of a well-formed compression call
	_, err := Dispatch(addr, make([]byte, blake2FInputLength-1), 1<<20, chain.Istanbul)
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, errBlake2FInvalidInputLength)
}
