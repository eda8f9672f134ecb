package groth16

import (
	"math/big"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/snarklet/groth16/internal/parallel"
	"github.com/snarklet/groth16/logger"
)

// Verify checks proof against the public inputs, which exclude the constant
// wire. Structural problems (points outside the curve subgroups, wrong
// public-input count) are a ProofError raised before any pairing is
// evaluated; a well-formed proof that fails the pairing equation is a clean
// false with a nil error.
func Verify(proof *Proof, vk *VerifyingKey, public []fr.Element) (bool, error) {
	log := logger.Logger()
	start := time.Now()

	if len(public) != vk.NbPublicInputs() {
		return false, &ProofError{Err: errPublicInputLength}
	}
	if err := checkProofPoints(proof); err != nil {
		return false, err
	}

	acc, err := foldPublic(vk, public)
	if err != nil {
		return false, err
	}

	// e(Ar, Bs) == e(α, β)·e(acc, γ)·e(Krs, δ), folded into one product
	var arNeg bn254.G1Affine
	arNeg.Neg(&proof.Ar)
	ok, err := bn254.PairingCheck(
		[]bn254.G1Affine{arNeg, vk.G1.Alpha, acc, proof.Krs},
		[]bn254.G2Affine{proof.Bs, vk.G2.Beta, vk.G2.Gamma, vk.G2.Delta},
	)
	if err != nil {
		return false, err
	}

	log.Debug().Dur("took", time.Since(start)).
		Str("backend", "groth16").
		Bool("valid", ok).
		Msg("verifier done")
	return ok, nil
}

// BatchVerify checks many (proof, public inputs) pairs under one verifying
// key with a single multi-pairing. Each proof is weighted by a fresh random
// nonzero scalar, so a batch containing any invalid proof fails except with
// negligible probability. The right-hand pairings collapse to three terms
// regardless of batch size. An empty batch is vacuously valid.
func BatchVerify(vk *VerifyingKey, proofs []*Proof, publics [][]fr.Element, opts ...Option) (bool, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return false, err
	}
	log := logger.Logger()
	start := time.Now()

	if len(proofs) != len(publics) {
		return false, &ProofError{Err: errBatchLength}
	}
	n := len(proofs)
	if n == 0 {
		return true, nil
	}

	for i := range proofs {
		if len(publics[i]) != vk.NbPublicInputs() {
			return false, &ProofError{Err: errPublicInputLength}
		}
		if err := checkProofPoints(proofs[i]); err != nil {
			return false, err
		}
	}

	weights := make([]fr.Element, n)
	for i := range weights {
		if weights[i], err = sampleNonZero(cfg.rng); err != nil {
			return false, err
		}
	}

	g1Points := make([]bn254.G1Affine, n+3)
	g2Points := make([]bn254.G2Affine, n+3)
	accs := make([]bn254.G1Affine, n)
	krss := make([]bn254.G1Affine, n)

	err = parallel.Execute(n, func(startIdx, endIdx int) error {
		var bi big.Int
		for i := startIdx; i < endIdx; i++ {
			g1Points[i].ScalarMultiplication(&proofs[i].Ar, weights[i].BigInt(&bi))
			g2Points[i].Set(&proofs[i].Bs)
			acc, err := foldPublic(vk, publics[i])
			if err != nil {
				return err
			}
			accs[i].Set(&acc)
			krss[i].Set(&proofs[i].Krs)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	// −(Σ r_i)·[α]₁ against [β]₂
	var sumR fr.Element
	for i := range weights {
		sumR.Add(&sumR, &weights[i])
	}
	sumR.Neg(&sumR)
	var bi big.Int
	g1Points[n].ScalarMultiplication(&vk.G1.Alpha, sumR.BigInt(&bi))
	g2Points[n].Set(&vk.G2.Beta)

	// −Σ r_i·acc_i against γ, −Σ r_i·Krs_i against δ
	mec := ecc.MultiExpConfig{}
	var agg bn254.G1Jac
	if _, err := agg.MultiExp(accs, weights, mec); err != nil {
		return false, err
	}
	agg.Neg(&agg)
	g1Points[n+1].FromJacobian(&agg)
	g2Points[n+1].Set(&vk.G2.Gamma)

	if _, err := agg.MultiExp(krss, weights, mec); err != nil {
		return false, err
	}
	agg.Neg(&agg)
	g1Points[n+2].FromJacobian(&agg)
	g2Points[n+2].Set(&vk.G2.Delta)

	ok, err := bn254.PairingCheck(g1Points, g2Points)
	if err != nil {
		return false, err
	}

	log.Debug().Dur("took", time.Since(start)).
		Str("backend", "groth16").
		Int("batchSize", n).
		Bool("valid", ok).
		Msg("batch verifier done")
	return ok, nil
}

// checkProofPoints rejects proofs whose points are off-curve or outside the
// prime-order subgroups, before any pairing work.
func checkProofPoints(proof *Proof) error {
	if !proof.Ar.IsOnCurve() || !proof.Ar.IsInSubGroup() ||
		!proof.Krs.IsOnCurve() || !proof.Krs.IsInSubGroup() ||
		!proof.Bs.IsOnCurve() || !proof.Bs.IsInSubGroup() {
		return &ProofError{Err: errPointNotInGroup}
	}
	return nil
}

// foldPublic computes K[0] + Σ public_i·K[i+1], the public-input commitment.
func foldPublic(vk *VerifyingKey, public []fr.Element) (bn254.G1Affine, error) {
	var accJac bn254.G1Jac
	if len(public) > 0 {
		if _, err := accJac.MultiExp(vk.G1.K[1:], public, ecc.MultiExpConfig{}); err != nil {
			return bn254.G1Affine{}, err
		}
	}
	accJac.AddMixed(&vk.G1.K[0])
	var acc bn254.G1Affine
	acc.FromJacobian(&accJac)
	return acc, nil
}
