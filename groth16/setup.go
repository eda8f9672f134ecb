package groth16

import (
	"io"
	"math/big"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/snarklet/groth16/internal/parallel"
	"github.com/snarklet/groth16/logger"
	"github.com/snarklet/groth16/qap"
)

// toxicWaste is the secret setup randomness. Whoever knows it can forge
// proofs, so it lives in exactly one place and is zeroized on every return
// path out of Setup. It is never logged or serialized.
type toxicWaste struct {
	tau, alpha, beta, gamma, delta fr.Element
}

func sampleToxicWaste(rng io.Reader) (*toxicWaste, error) {
	var tw toxicWaste
	for _, e := range []*fr.Element{&tw.tau, &tw.alpha, &tw.beta, &tw.gamma, &tw.delta} {
		v, err := sampleNonZero(rng)
		if err != nil {
			return nil, err
		}
		e.Set(&v)
	}
	return &tw, nil
}

func (tw *toxicWaste) destroy() {
	tw.tau.SetZero()
	tw.alpha.SetZero()
	tw.beta.SetZero()
	tw.gamma.SetZero()
	tw.delta.SetZero()
}

// Setup runs the per-circuit trusted setup. It samples the five secret
// scalars, evaluates the QAP columns at the secret point and returns the
// proving and verifying keys. The public slots of the input commitment are
// divided by γ and placed in the verifying key; the private slots are
// divided by δ and placed in the proving key.
func Setup(q *qap.QAP, opts ...Option) (*ProvingKey, *VerifyingKey, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, nil, &SetupError{Err: err}
	}
	log := logger.Logger()
	start := time.Now()

	nbPublicWires := q.NbPublic + 1 // constant wire included
	if nbPublicWires > q.NbVariables {
		return nil, nil, &SetupError{Err: errTooManyPublic}
	}

	tw, err := sampleToxicWaste(cfg.rng)
	if err != nil {
		return nil, nil, &SetupError{Err: err}
	}
	defer tw.destroy()

	A, B, C, t := q.EvalAt(tw.tau)

	var gammaInv, deltaInv fr.Element
	gammaInv.Inverse(&tw.gamma)
	deltaInv.Inverse(&tw.delta)

	// input commitments (β·A_j + α·B_j + C_j) / {γ, δ}
	vkK := make([]fr.Element, nbPublicWires)
	pkK := make([]fr.Element, q.NbVariables-nbPublicWires)
	var acc, u fr.Element
	for j := 0; j < q.NbVariables; j++ {
		acc.Mul(&A[j], &tw.beta)
		u.Mul(&B[j], &tw.alpha)
		acc.Add(&acc, &u)
		acc.Add(&acc, &C[j])
		if j < nbPublicWires {
			vkK[j].Mul(&acc, &gammaInv)
		} else {
			pkK[j-nbPublicWires].Mul(&acc, &deltaInv)
		}
	}

	// quotient basis τ^i·t(τ)/δ, i = 0..n-2
	nbZ := q.NbConstraints - 1
	if nbZ < 0 {
		nbZ = 0
	}
	Z := make([]fr.Element, nbZ)
	var zi fr.Element
	zi.Mul(&t, &deltaInv)
	for i := 0; i < nbZ; i++ {
		Z[i].Set(&zi)
		zi.Mul(&zi, &tw.tau)
	}

	_, _, g1, g2 := bn254.Generators()

	pk := &ProvingKey{}
	vk := &VerifyingKey{}

	pk.G1.A = batchMulG1(&g1, A)
	pk.G1.B = batchMulG1(&g1, B)
	pk.G1.K = batchMulG1(&g1, pkK)
	pk.G1.Z = batchMulG1(&g1, Z)
	pk.G2.B = batchMulG2(&g2, B)
	vk.G1.K = batchMulG1(&g1, vkK)

	var bi big.Int
	pk.G1.Alpha.ScalarMultiplication(&g1, tw.alpha.BigInt(&bi))
	pk.G1.Beta.ScalarMultiplication(&g1, tw.beta.BigInt(&bi))
	pk.G1.Delta.ScalarMultiplication(&g1, tw.delta.BigInt(&bi))
	pk.G2.Beta.ScalarMultiplication(&g2, tw.beta.BigInt(&bi))
	pk.G2.Delta.ScalarMultiplication(&g2, tw.delta.BigInt(&bi))

	vk.G1.Alpha.Set(&pk.G1.Alpha)
	vk.G2.Beta.Set(&pk.G2.Beta)
	vk.G2.Gamma.ScalarMultiplication(&g2, tw.gamma.BigInt(&bi))
	vk.G2.Delta.Set(&pk.G2.Delta)
	bi.SetInt64(0)

	log.Debug().Dur("took", time.Since(start)).
		Str("backend", "groth16").
		Int("nbConstraints", q.NbConstraints).
		Int("nbVariables", q.NbVariables).
		Msg("setup done")
	return pk, vk, nil
}

// batchMulG1 computes scalar·base per entry, in parallel. Zero scalars map
// to the point at infinity.
func batchMulG1(base *bn254.G1Affine, scalars []fr.Element) []bn254.G1Affine {
	res := make([]bn254.G1Affine, len(scalars))
	_ = parallel.Execute(len(scalars), func(start, end int) error {
		var bi big.Int
		for i := start; i < end; i++ {
			if scalars[i].IsZero() {
				continue
			}
			res[i].ScalarMultiplication(base, scalars[i].BigInt(&bi))
		}
		return nil
	})
	return res
}

func batchMulG2(base *bn254.G2Affine, scalars []fr.Element) []bn254.G2Affine {
	res := make([]bn254.G2Affine, len(scalars))
	_ = parallel.Execute(len(scalars), func(start, end int) error {
		var bi big.Int
		for i := start; i < end; i++ {
			if scalars[i].IsZero() {
				continue
			}
			res[i].ScalarMultiplication(base, scalars[i].BigInt(&bi))
		}
		return nil
	})
	return res
}
