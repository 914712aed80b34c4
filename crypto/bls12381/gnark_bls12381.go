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

// Package bls12381 wraps the gnark-crypto BLS12-381 implementation behind
// the ABI encoding used by the curve precompiles: field elements occupy
// 64-byte slots with 16 zero bytes of left padding, points are uncompressed
// affine coordinates, and the all-zero encoding is the point at infinity.
package bls12381

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Element and point sizes in the ABI encoding.
const (
	LenFieldElement = 64
	LenPointG1      = 2 * LenFieldElement
	LenPointG2      = 4 * LenFieldElement
	LenScalar       = 32
	LenPairG1       = LenPointG1 + LenScalar
	LenPairG2       = LenPointG2 + LenScalar
	LenPairingPair  = LenPointG1 + LenPointG2
)

var (
	ErrInvalidInputLength          = errors.New("invalid input length")
	ErrInvalidFieldElementTopBytes = errors.New("invalid field element top bytes")
	ErrInvalidFieldElement         = errors.New("invalid field element")
	ErrG1PointIsNotOnCurve         = errors.New("g1 point is not on curve")
	ErrG2PointIsNotOnCurve         = errors.New("g2 point is not on curve")
	ErrG1PointSubgroup             = errors.New("g1 point is not on correct subgroup")
	ErrG2PointSubgroup             = errors.New("g2 point is not on correct subgroup")
)

// decodeFieldElement decodes a base field element from its 64-byte slot.
// The top 16 bytes must be zero and the remaining 48 must encode a value
// below the field modulus.
func decodeFieldElement(in []byte) (fp.Element, error) {
	if len(in) != LenFieldElement {
		return fp.Element{}, ErrInvalidInputLength
	}
	for i := 0; i < 16; i++ {
		if in[i] != byte(0x00) {
			return fp.Element{}, ErrInvalidFieldElementTopBytes
		}
	}
	var buf [48]byte
	copy(buf[:], in[16:])

	elem, err := fp.BigEndian.Element(&buf)
	if err != nil {
		return fp.Element{}, ErrInvalidFieldElement
	}
	return elem, nil
}

// decodePointG1 decodes a G1 point from 128 bytes and rejects anything that
// is not on the curve or outside the r-order subgroup. The all-zero input
// decodes to the point at infinity.
func decodePointG1(in []byte) (*bls12381.G1Affine, error) {
	if len(in) != LenPointG1 {
		return nil, ErrInvalidInputLength
	}
	x, err := decodeFieldElement(in[:64])
	if err != nil {
		return nil, err
	}
	y, err := decodeFieldElement(in[64:])
	if err != nil {
		return nil, err
	}
	p := bls12381.G1Affine{X: x, Y: y}
	if !p.IsOnCurve() {
		return nil, ErrG1PointIsNotOnCurve
	}
	if !p.IsInSubGroup() {
		return nil, ErrG1PointSubgroup
	}
	return &p, nil
}

// decodePointG2 decodes a G2 point from 256 bytes laid out as
// x.c0 | x.c1 | y.c0 | y.c1, with the same curve and subgroup requirements
// as decodePointG1.
func decodePointG2(in []byte) (*bls12381.G2Affine, error) {
	if len(in) != LenPointG2 {
		return nil, ErrInvalidInputLength
	}
	x0, err := decodeFieldElement(in[:64])
	if err != nil {
		return nil, err
	}
	x1, err := decodeFieldElement(in[64:128])
	if err != nil {
		return nil, err
	}
	y0, err := decodeFieldElement(in[128:192])
	if err != nil {
		return nil, err
	}
	y1, err := decodeFieldElement(in[192:])
	if err != nil {
		return nil, err
	}
	p := bls12381.G2Affine{X: bls12381.E2{A0: x0, A1: x1}, Y: bls12381.E2{A0: y0, A1: y1}}
	if !p.IsOnCurve() {
		return nil, ErrG2PointIsNotOnCurve
	}
	if !p.IsInSubGroup() {
		return nil, ErrG2PointSubgroup
	}
	return &p, nil
}

// encodePointG1 encodes a point into 128 bytes.
func encodePointG1(p *bls12381.G1Affine) []byte {
	out := make([]byte, LenPointG1)
	fp.BigEndian.PutElement((*[fp.Bytes]byte)(out[16:64]), p.X)
	fp.BigEndian.PutElement((*[fp.Bytes]byte)(out[80:128]), p.Y)
	return out
}

// encodePointG2 encodes a point into 256 bytes.
func encodePointG2(p *bls12381.G2Affine) []byte {
	out := make([]byte, LenPointG2)
	fp.BigEndian.PutElement((*[fp.Bytes]byte)(out[16:64]), p.X.A0)
	fp.BigEndian.PutElement((*[fp.Bytes]byte)(out[80:128]), p.X.A1)
	fp.BigEndian.PutElement((*[fp.Bytes]byte)(out[144:192]), p.Y.A0)
	fp.BigEndian.PutElement((*[fp.Bytes]byte)(out[208:256]), p.Y.A1)
	return out
}

// G1Add adds the two G1 points in the 256-byte input and returns the
// 128-byte encoding of the sum.
func G1Add(input []byte) ([]byte, error) {
	if len(input) != 2*LenPointG1 {
		return nil, ErrInvalidInputLength
	}
	p0, err := decodePointG1(input[:128])
	if err != nil {
		return nil, err
	}
	p1, err := decodePointG1(input[128:])
	if err != nil {
		return nil, err
	}
	p0.Add(p0, p1)
	return encodePointG1(p0), nil
}

// G1Mul multiplies the G1 point in the 160-byte input by the trailing
// 32-byte scalar. The scalar is interpreted big-endian and implicitly
// reduced modulo the group order.
func G1Mul(input []byte) ([]byte, error) {
	if len(input) != LenPairG1 {
		return nil, ErrInvalidInputLength
	}
	p0, err := decodePointG1(input[:128])
	if err != nil {
		return nil, err
	}
	e := new(big.Int).SetBytes(input[128:])

	r := new(bls12381.G1Affine)
	r.ScalarMultiplication(p0, e)
	return encodePointG1(r), nil
}

// G1MSM computes e_0*p_0 + e_1*p_1 + ... + e_(k-1)*p_(k-1) over the k
// (point, scalar) pairs in the input.
func G1MSM(input []byte) ([]byte, error) {
	k := len(input) / LenPairG1
	if len(input) == 0 || len(input)%LenPairG1 != 0 {
		return nil, ErrInvalidInputLength
	}
	points := make([]bls12381.G1Affine, k)
	scalars := make([]fr.Element, k)
	for i := 0; i < k; i++ {
		off := LenPairG1 * i
		t0, t1, t2 := off, off+LenPointG1, off+LenPairG1
		p, err := decodePointG1(input[t0:t1])
		if err != nil {
			return nil, err
		}
		points[i] = *p
		scalars[i] = *new(fr.Element).SetBytes(input[t1:t2])
	}
	r := new(bls12381.G1Affine)
	if _, err := r.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return nil, err
	}
	return encodePointG1(r), nil
}

// G2Add adds the two G2 points in the 512-byte input and returns the
// 256-byte encoding of the sum.
func G2Add(input []byte) ([]byte, error) {
	if len(input) != 2*LenPointG2 {
		return nil, ErrInvalidInputLength
	}
	p0, err := decodePointG2(input[:256])
	if err != nil {
		return nil, err
	}
	p1, err := decodePointG2(input[256:])
	if err != nil {
		return nil, err
	}
	r := new(bls12381.G2Affine)
	r.Add(p0, p1)
	return encodePointG2(r), nil
}

// G2Mul multiplies the G2 point in the 288-byte input by the trailing
// 32-byte scalar, reduced modulo the group order.
func G2Mul(input []byte) ([]byte, error) {
	if len(input) != LenPairG2 {
		return nil, ErrInvalidInputLength
	}
	p0, err := decodePointG2(input[:256])
	if err != nil {
		return nil, err
	}
	e := new(big.Int).SetBytes(input[256:])

	r := new(bls12381.G2Affine)
	r.ScalarMultiplication(p0, e)
	return encodePointG2(r), nil
}

// G2MSM computes the multi-scalar multiplication over the k (point, scalar)
// pairs in the input.
func G2MSM(input []byte) ([]byte, error) {
	k := len(input) / LenPairG2
	if len(input) == 0 || len(input)%LenPairG2 != 0 {
		return nil, ErrInvalidInputLength
	}
	points := make([]bls12381.G2Affine, k)
	scalars := make([]fr.Element, k)
	for i := 0; i < k; i++ {
		off := LenPairG2 * i
		t0, t1, t2 := off, off+LenPointG2, off+LenPairG2
		p, err := decodePointG2(input[t0:t1])
		if err != nil {
			return nil, err
		}
		points[i] = *p
		scalars[i] = *new(fr.Element).SetBytes(input[t1:t2])
	}
	r := new(bls12381.G2Affine)
	if _, err := r.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return nil, err
	}
	return encodePointG2(r), nil
}

// Pairing computes the pairing product over the k (G1, G2) pairs in the
// input and reports whether it equals the identity in the target group.
// An empty input is the vacuous product and reports true.
func Pairing(input []byte) (bool, error) {
	k := len(input) / LenPairingPair
	if len(input)%LenPairingPair != 0 {
		return false, ErrInvalidInputLength
	}
	if k == 0 {
		return true, nil
	}
	p := make([]bls12381.G1Affine, 0, k)
	q := make([]bls12381.G2Affine, 0, k)
	for i := 0; i < k; i++ {
		off := LenPairingPair * i
		t0, t1, t2 := off, off+LenPointG1, off+LenPairingPair
		p1, err := decodePointG1(input[t0:t1])
		if err != nil {
			return false, err
		}
		p2, err := decodePointG2(input[t1:t2])
		if err != nil {
			return false, err
		}
		p = append(p, *p1)
		q = append(q, *p2)
	}
	return bls12381.PairingCheck(p, q)
}

// MapFpToG1 maps the base field element in the 64-byte input onto G1 and
// returns the 128-byte encoding of the resulting point. Every canonical
// field element maps to some valid point.
func MapFpToG1(input []byte) ([]byte, error) {
	if len(input) != LenFieldElement {
		return nil, ErrInvalidInputLength
	}
	fe, err := decodeFieldElement(input)
	if err != nil {
		return nil, err
	}
	r := bls12381.MapToG1(fe)
	return encodePointG1(&r), nil
}

// MapFp2ToG2 maps the quadratic extension field element in the 128-byte
// input onto G2 and returns the 256-byte encoding of the resulting point.
func MapFp2ToG2(input []byte) ([]byte, error) {
	if len(input) != 2*LenFieldElement {
		return nil, ErrInvalidInputLength
	}
	c0, err := decodeFieldElement(input[:64])
	if err != nil {
		return nil, err
	}
	c1, err := decodeFieldElement(input[64:])
	if err != nil {
		return nil, err
	}
	r := bls12381.MapToG2(bls12381.E2{A0: c0, A1: c1})
	return encodePointG2(&r), nil
}
