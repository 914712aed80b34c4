package kzg

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"
	"sync"

	gokzg4844 "github.com/crate-crypto/go-kzg-4844"
)

const (
	BlobCommitmentVersionKZG uint8 = 0x01
	PrecompileInputLength    int   = 192
)

type VersionedHash [32]byte

var (
	ErrInvalidInputLength = errors.New("invalid input length")
	ErrMismatchedVersion  = errors.New("mismatched versioned hash")
	ErrContextFreed       = errors.New("kzg context is not loaded")

	// The value that gets returned when the `verify_kzg_proof“ precompile is called
	precompileReturnValue [64]byte

	trustedSetupFile string

	gokzgCtx      *Context
	initCryptoCtx sync.Once
)

func init() {
	new(big.Int).SetUint64(gokzg4844.ScalarsPerBlob).FillBytes(precompileReturnValue[:32])
	copy(precompileReturnValue[32:], gokzg4844.BlsModulus[:])
}

// SetTrustedSetupFilePath overrides the embedded trusted setup with the given
// JSON file. It only has an effect before the first context is built.
func SetTrustedSetupFilePath(path string) {
	trustedSetupFile = path
}

// Context owns a loaded trusted setup. Its verification calls are safe for
// unlimited concurrent readers; Free must be serialized with in-flight
// verifications by the caller.
type Context struct {
	inner *gokzg4844.Context
}

// NewContext loads the trusted setup and returns a context in the loaded
// state. Most callers want the process-wide context from Ctx instead.
func NewContext() (*Context, error) {
	inner, err := loadKZGContext()
	if err != nil {
		return nil, err
	}
	return &Context{inner: inner}, nil
}

// VerifyKZGProof checks that the polynomial behind the commitment evaluates
// to y at the point z, as attested by the proof.
func (c *Context) VerifyKZGProof(commitment gokzg4844.KZGCommitment, z, y gokzg4844.Scalar, proof gokzg4844.KZGProof) error {
	if c == nil || c.inner == nil {
		return ErrContextFreed
	}
	return c.inner.VerifyKZGProof(commitment, z, y, proof)
}

// Free releases the trusted setup. Calling it again is a no-op; verification
// calls on a freed context fail with ErrContextFreed.
func (c *Context) Free() {
	if c != nil {
		c.inner = nil
	}
}

func loadKZGContext() (*gokzg4844.Context, error) {
	if trustedSetupFile != "" {
		file, err := os.ReadFile(trustedSetupFile)
		if err != nil {
			return nil, fmt.Errorf("could not read file, err: %w", err)
		}

		setup := new(gokzg4844.JSONTrustedSetup)
		if err = json.Unmarshal(file, setup); err != nil {
			return nil, fmt.Errorf("could not unmarshal, err: %w", err)
		}

		return gokzg4844.NewContext4096(setup)
	}
	// Initialize context to match the configurations that the
	// specs are using.
	return gokzg4844.NewContext4096Secure()
}

// InitKZGCtx initializes the global context object returned via Ctx. Calling
// it again after the context is loaded is a no-op.
func InitKZGCtx() {
	initCryptoCtx.Do(func() {
		ctx, err := NewContext()
		if err != nil {
			panic(fmt.Sprintf("could not create KZG context, err: %v", err))
		}
		gokzgCtx = ctx
	})
}

// Ctx returns a context object that stores all of the necessary configurations to allow one to
// create and verify blob proofs.  This function is expensive to run if the crypto context isn't
// initialized, so production services should pre-initialize by calling InitKZGCtx.
func Ctx() *Context {
	InitKZGCtx()
	return gokzgCtx
}

// KZGToVersionedHash implements kzg_to_versioned_hash from EIP-4844
func KZGToVersionedHash(kzg gokzg4844.KZGCommitment) VersionedHash {
	h := sha256.Sum256(kzg[:])
	h[0] = BlobCommitmentVersionKZG

	return VersionedHash(h)
}

// PointEvaluationPrecompile implements point_evaluation_precompile from
// EIP-4844 against the given context. The versioned hash is recomputed from
// the commitment and compared before any proof verification runs.
func PointEvaluationPrecompile(cryptoCtx *Context, input []byte) ([]byte, error) {
	if len(input) != PrecompileInputLength {
		return nil, ErrInvalidInputLength
	}
	// versioned hash: first 32 bytes
	var versionedHash [32]byte
	copy(versionedHash[:], input[:32])

	var x, y [32]byte
	// Evaluation point: next 32 bytes
	copy(x[:], input[32:64])
	// Expected output: next 32 bytes
	copy(y[:], input[64:96])

	// input kzg point: next 48 bytes
	var dataKZG [48]byte
	copy(dataKZG[:], input[96:144])
	if KZGToVersionedHash(dataKZG) != versionedHash {
		return nil, ErrMismatchedVersion
	}

	// Quotient kzg: next 48 bytes
	var quotientKZG [48]byte
	copy(quotientKZG[:], input[144:PrecompileInputLength])

	err := cryptoCtx.VerifyKZGProof(dataKZG, x, y, quotientKZG)
	if err != nil {
		return nil, fmt.Errorf("verify_kzg_proof error: %w", err)
	}

	result := precompileReturnValue // copy the value

	return result[:], nil
}
