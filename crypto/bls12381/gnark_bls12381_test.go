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

package bls12381

import (
	"encoding/hex"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	infG1 = make([]byte, LenPointG1)
	infG2 = make([]byte, LenPointG2)
)

func generators() (g1 []byte, g2 []byte) {
	_, _, g1Aff, g2Aff := bls12381.Generators()
	return encodePointG1(&g1Aff), encodePointG2(&g2Aff)
}

func scalar(v uint64) []byte {
	out := make([]byte, LenScalar)
	out[31] = byte(v)
	out[30] = byte(v >> 8)
	return out
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// fieldSlot left pads a big-endian byte string into a 64-byte element slot.
func fieldSlot(b []byte) []byte {
	out := make([]byte, LenFieldElement)
	copy(out[LenFieldElement-len(b):], b)
	return out
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// onCurveNotInSubgroupG1 is (0, -2): it satisfies y^2 = x^3 + 4 but has order
// divisible by the cofactor.
func onCurveNotInSubgroupG1(t *testing.T) []byte {
	y := mustHex(t, "1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaa9")
	return concat(fieldSlot(nil), fieldSlot(y))
}

// onCurveNotInSubgroupG2 has x = u and a matching square root for y.
func onCurveNotInSubgroupG2(t *testing.T) []byte {
	y0 := mustHex(t, "135203e60180a68ee2e9c448d77a2cd91c3dedd930b1cf60ef396489f61eb45e304466cf3e67fa0af1ee7b04121bdea2")
	y1 := mustHex(t, "140d2a0ca7fdc0223895aa4843747ffad8ac19034879ca1b67e64a4501b6c551cb36cb8e58c411de58318ef3c9ab641b")
	return concat(fieldSlot(nil), fieldSlot([]byte{0x01}), fieldSlot(y0), fieldSlot(y1))
}

func TestG1AddLaws(t *testing.T) {
	t.Parallel()
	gen, _ := generators()

	// O + O = O
	res, err := G1Add(concat(infG1, infG1))
	require.NoError(t, err)
	assert.Equal(t, infG1, res)

	// P + O = P
	res, err = G1Add(concat(gen, infG1))
	require.NoError(t, err)
	assert.Equal(t, gen, res)

	// P + (-P) = O
	var neg bls12381.G1Affine
	_, _, g1Aff, _ := bls12381.Generators()
	neg.Neg(&g1Aff)
	res, err = G1Add(concat(gen, encodePointG1(&neg)))
	require.NoError(t, err)
	assert.Equal(t, infG1, res)

	// P + P agrees with 2 * P
	sum, err := G1Add(concat(gen, gen))
	require.NoError(t, err)
	dbl, err := G1Mul(concat(gen, scalar(2)))
	require.NoError(t, err)
	assert.Equal(t, dbl, sum)
}

func TestG1MulLaws(t *testing.T) {
	t.Parallel()
	gen, _ := generators()

	// 0 * P = O
	res, err := G1Mul(concat(gen, scalar(0)))
	require.NoError(t, err)
	assert.Equal(t, infG1, res)

	// 1 * P = P
	res, err = G1Mul(concat(gen, scalar(1)))
	require.NoError(t, err)
	assert.Equal(t, gen, res)

	// r * P = O, the scalar wraps at the group order
	order := make([]byte, LenScalar)
	fr.Modulus().FillBytes(order)
	res, err = G1Mul(concat(gen, order))
	require.NoError(t, err)
	assert.Equal(t, infG1, res)

	// anything * O = O
	res, err = G1Mul(concat(infG1, scalar(7)))
	require.NoError(t, err)
	assert.Equal(t, infG1, res)
}

func TestG1MSM(t *testing.T) {
	t.Parallel()
	gen, _ := generators()

	// 2*P + 3*P = 5*P
	res, err := G1MSM(concat(gen, scalar(2), gen, scalar(3)))
	require.NoError(t, err)
	five, err := G1Mul(concat(gen, scalar(5)))
	require.NoError(t, err)
	assert.Equal(t, five, res)

	// a single pair degenerates to plain multiplication
	res, err = G1MSM(concat(gen, scalar(9)))
	require.NoError(t, err)
	nine, err := G1Mul(concat(gen, scalar(9)))
	require.NoError(t, err)
	assert.Equal(t, nine, res)

	// infinity inputs vanish from the sum
	res, err = G1MSM(concat(infG1, scalar(5), gen, scalar(4)))
	require.NoError(t, err)
	four, err := G1Mul(concat(gen, scalar(4)))
	require.NoError(t, err)
	assert.Equal(t, four, res)

	_, err = G1MSM(nil)
	require.ErrorIs(t, err, ErrInvalidInputLength)
}

func TestG2AddLaws(t *testing.T) {
	t.Parallel()
	_, gen := generators()

	res, err := G2Add(concat(infG2, infG2))
	require.NoError(t, err)
	assert.Equal(t, infG2, res)

	res, err = G2Add(concat(gen, infG2))
	require.NoError(t, err)
	assert.Equal(t, gen, res)

	var neg bls12381.G2Affine
	_, _, _, g2Aff := bls12381.Generators()
	neg.Neg(&g2Aff)
	res, err = G2Add(concat(gen, encodePointG2(&neg)))
	require.NoError(t, err)
	assert.Equal(t, infG2, res)

	sum, err := G2Add(concat(gen, gen))
	require.NoError(t, err)
	dbl, err := G2Mul(concat(gen, scalar(2)))
	require.NoError(t, err)
	assert.Equal(t, dbl, sum)
}

func TestG2MulLaws(t *testing.T) {
	t.Parallel()
	_, gen := generators()

	res, err := G2Mul(concat(gen, scalar(0)))
	require.NoError(t, err)
	assert.Equal(t, infG2, res)

	res, err = G2Mul(concat(gen, scalar(1)))
	require.NoError(t, err)
	assert.Equal(t, gen, res)

	order := make([]byte, LenScalar)
	fr.Modulus().FillBytes(order)
	res, err = G2Mul(concat(gen, order))
	require.NoError(t, err)
	assert.Equal(t, infG2, res)
}

func TestG2MSM(t *testing.T) {
	t.Parallel()
	_, gen := generators()

	res, err := G2MSM(concat(gen, scalar(2), gen, scalar(3)))
	require.NoError(t, err)
	five, err := G2Mul(concat(gen, scalar(5)))
	require.NoError(t, err)
	assert.Equal(t, five, res)

	_, err = G2MSM(nil)
	require.ErrorIs(t, err, ErrInvalidInputLength)
}

func TestPairing(t *testing.T) {
	t.Parallel()
	g1, g2 := generators()

	// the empty product is the identity
	ok, err := Pairing(nil)
	require.NoError(t, err)
	assert.True(t, ok)

	// infinity pairs contribute nothing
	ok, err = Pairing(concat(infG1, infG2))
	require.NoError(t, err)
	assert.True(t, ok)

	// e(G1, G2) alone is not the identity
	ok, err = Pairing(concat(g1, g2))
	require.NoError(t, err)
	assert.False(t, ok)

	// e(G1, G2) * e(-G1, G2) = 1
	var neg bls12381.G1Affine
	_, _, g1Aff, _ := bls12381.Generators()
	neg.Neg(&g1Aff)
	ok, err = Pairing(concat(g1, g2, encodePointG1(&neg), g2))
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = Pairing(make([]byte, LenPairingPair-1))
	require.ErrorIs(t, err, ErrInvalidInputLength)
}

func TestMapFpToG1(t *testing.T) {
	t.Parallel()
	// zero maps to a well defined subgroup point
	out, err := MapFpToG1(fieldSlot(nil))
	require.NoError(t, err)
	require.Len(t, out, LenPointG1)

	// the image is a usable group element: multiplying by one round-trips
	same, err := G1Mul(concat(out, scalar(1)))
	require.NoError(t, err)
	assert.Equal(t, out, same)

	_, err = MapFpToG1(fieldSlot(nil)[:63])
	require.ErrorIs(t, err, ErrInvalidInputLength)
}

func TestMapFp2ToG2(t *testing.T) {
	t.Parallel()
	out, err := MapFp2ToG2(concat(fieldSlot([]byte{0x01}), fieldSlot(nil)))
	require.NoError(t, err)
	require.Len(t, out, LenPointG2)

	same, err := G2Mul(concat(out, scalar(1)))
	require.NoError(t, err)
	assert.Equal(t, out, same)

	_, err = MapFp2ToG2(fieldSlot(nil))
	require.ErrorIs(t, err, ErrInvalidInputLength)
}

func TestDecodeG1Failures(t *testing.T) {
	t.Parallel()
	gen, _ := generators()

	// dirty padding
	dirty := append([]byte{}, gen...)
	dirty[0] = 0x01
	_, err := decodePointG1(dirty)
	require.ErrorIs(t, err, ErrInvalidFieldElementTopBytes)

	// coordinate at the field modulus
	modulus := make([]byte, 48)
	fp.Modulus().FillBytes(modulus)
	_, err = decodePointG1(concat(fieldSlot(modulus), gen[64:]))
	require.ErrorIs(t, err, ErrInvalidFieldElement)

	// (1, 1) does not satisfy the curve equation
	_, err = decodePointG1(concat(fieldSlot([]byte{0x01}), fieldSlot([]byte{0x01})))
	require.ErrorIs(t, err, ErrG1PointIsNotOnCurve)

	// on the curve but not in the r-order subgroup
	_, err = decodePointG1(onCurveNotInSubgroupG1(t))
	require.ErrorIs(t, err, ErrG1PointSubgroup)

	_, err = decodePointG1(gen[:127])
	require.ErrorIs(t, err, ErrInvalidInputLength)
}

func TestDecodeG2Failures(t *testing.T) {
	t.Parallel()
	_, gen := generators()

	dirty := append([]byte{}, gen...)
	dirty[0] = 0x01
	_, err := decodePointG2(dirty)
	require.ErrorIs(t, err, ErrInvalidFieldElementTopBytes)

	modulus := make([]byte, 48)
	fp.Modulus().FillBytes(modulus)
	_, err = decodePointG2(concat(fieldSlot(modulus), gen[64:]))
	require.ErrorIs(t, err, ErrInvalidFieldElement)

	_, err = decodePointG2(concat(fieldSlot([]byte{0x01}), fieldSlot(nil), fieldSlot([]byte{0x01}), fieldSlot(nil)))
	require.ErrorIs(t, err, ErrG2PointIsNotOnCurve)

	_, err = decodePointG2(onCurveNotInSubgroupG2(t))
	require.ErrorIs(t, err, ErrG2PointSubgroup)

	_, err = decodePointG2(gen[:255])
	require.ErrorIs(t, err, ErrInvalidInputLength)
}
