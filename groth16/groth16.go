// Package groth16 implements the Groth16 zk-SNARK over BN254: a one-time
// trusted setup per circuit, constant-size proofs (two G1 points and one G2
// point), and pairing-based verification, plus batched verification of many
// proofs under one verifying key.
//
// The pipeline is strictly linear: a constraint system is transformed into a
// QAP (package qap), Setup derives the proving and verifying keys from
// secret randomness that is destroyed before returning, Prove binds a full
// witness to a blinded proof, and Verify checks a proof against the public
// inputs alone.
package groth16

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// Proof is a Groth16 proof. Its size is independent of the circuit.
type Proof struct {
	Ar, Krs bn254.G1Affine
	Bs      bn254.G2Affine
}

// ProvingKey holds the per-circuit prover material produced by Setup.
// A, B and K are indexed by variable; K covers private variables only
// (the public counterparts live in the verifying key). Z is the basis
// [τ^i·t(τ)/δ]₁ used to commit to the quotient polynomial.
type ProvingKey struct {
	G1 struct {
		Alpha, Beta, Delta bn254.G1Affine
		A, B, Z            []bn254.G1Affine
		K                  []bn254.G1Affine
	}
	G2 struct {
		Beta, Delta bn254.G2Affine
		B           []bn254.G2Affine
	}
}

// VerifyingKey holds the public verification material produced by Setup.
// G1.K has length NbPublicInputs+1; K[0] is the constant-wire slot.
type VerifyingKey struct {
	G1 struct {
		Alpha bn254.G1Affine
		K     []bn254.G1Affine
	}
	G2 struct {
		Beta, Gamma, Delta bn254.G2Affine
	}
}

// NbPublicInputs returns the number of public inputs the key commits to,
// excluding the constant wire.
func (vk *VerifyingKey) NbPublicInputs() int {
	return len(vk.G1.K) - 1
}
