package groth16

import "errors"

// The three error classes of the backend. A failed pairing check is not an
// error: Verify and BatchVerify report it as a clean false.

// SetupError reports invalid key-generation input or a randomness source
// failure.
type SetupError struct {
	Err error
}

func (e *SetupError) Error() string { return "groth16: setup: " + e.Err.Error() }
func (e *SetupError) Unwrap() error { return e.Err }

// WitnessError reports a witness that is malformed or does not satisfy the
// circuit; no proof is emitted.
type WitnessError struct {
	Err error
}

func (e *WitnessError) Error() string { return "groth16: witness: " + e.Err.Error() }
func (e *WitnessError) Unwrap() error { return e.Err }

// ProofError reports a structurally invalid proof or mismatched public
// inputs, detected before any pairing is evaluated.
type ProofError struct {
	Err error
}

func (e *ProofError) Error() string { return "groth16: proof: " + e.Err.Error() }
func (e *ProofError) Unwrap() error { return e.Err }

var (
	errWitnessLength       = errors.New("invalid witness length")
	errWitnessConstantWire = errors.New("witness constant wire is not 1")
	errUnsatisfied         = errors.New("constraint system is not satisfied")
	errPublicInputLength   = errors.New("invalid number of public inputs")
	errPointNotInGroup     = errors.New("proof point is not in the expected subgroup")
	errTooManyPublic       = errors.New("more public inputs than variables")
	errBatchLength         = errors.New("proofs and public inputs differ in length")
)
