package groth16

import (
	"math/big"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/snarklet/groth16/constraint"
	"github.com/snarklet/groth16/logger"
	"github.com/snarklet/groth16/qap"
)

// Prove builds a proof that w satisfies the circuit behind pk. The witness
// is validated first (length, constant wire, divisibility of A·B−C by the
// target polynomial); any failure is a WitnessError and no proof is emitted.
// The blinding scalars r and s make the proof non-unique: proving twice with
// fresh randomness yields distinct proofs for the same witness.
func Prove(q *qap.QAP, pk *ProvingKey, w constraint.Witness, opts ...Option) (*Proof, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	log := logger.Logger()
	start := time.Now()

	if len(w) != q.NbVariables {
		return nil, &WitnessError{Err: errWitnessLength}
	}
	if !w[0].IsOne() {
		return nil, &WitnessError{Err: errWitnessConstantWire}
	}

	h, remZero, err := q.Quotient(w)
	if err != nil {
		return nil, &WitnessError{Err: err}
	}
	if !remZero {
		return nil, &WitnessError{Err: errUnsatisfied}
	}

	r, err := sampleNonZero(cfg.rng)
	if err != nil {
		return nil, err
	}
	s, err := sampleNonZero(cfg.rng)
	if err != nil {
		return nil, err
	}
	var rb, sb big.Int
	r.BigInt(&rb)
	s.BigInt(&sb)

	wScalars := []fr.Element(w)
	mec := ecc.MultiExpConfig{}
	proof := &Proof{}

	// Bs = [β + Σ w_j·B_j(τ) + s·δ]₂, independent of the G1 side
	chBs := make(chan error, 1)
	go func() {
		var bsJac bn254.G2Jac
		if _, err := bsJac.MultiExp(pk.G2.B, wScalars, mec); err != nil {
			chBs <- err
			return
		}
		bsJac.AddMixed(&pk.G2.Beta)
		var sDelta bn254.G2Affine
		sDelta.ScalarMultiplication(&pk.G2.Delta, &sb)
		bsJac.AddMixed(&sDelta)
		proof.Bs.FromJacobian(&bsJac)
		chBs <- nil
	}()

	// Ar = [α + Σ w_j·A_j(τ) + r·δ]₁
	var arJac bn254.G1Jac
	if _, err := arJac.MultiExp(pk.G1.A, wScalars, mec); err != nil {
		return nil, err
	}
	arJac.AddMixed(&pk.G1.Alpha)
	var blind bn254.G1Affine
	blind.ScalarMultiplication(&pk.G1.Delta, &rb)
	arJac.AddMixed(&blind)
	proof.Ar.FromJacobian(&arJac)

	// bs1 = [β + Σ w_j·B_j(τ) + s·δ]₁, the G1 shadow of Bs
	var bs1Jac bn254.G1Jac
	if _, err := bs1Jac.MultiExp(pk.G1.B, wScalars, mec); err != nil {
		return nil, err
	}
	bs1Jac.AddMixed(&pk.G1.Beta)
	blind.ScalarMultiplication(&pk.G1.Delta, &sb)
	bs1Jac.AddMixed(&blind)
	var bs1 bn254.G1Affine
	bs1.FromJacobian(&bs1Jac)

	// Krs = Σ_priv w_j·K_j + Σ h_i·Z_i + s·Ar + r·bs1 − r·s·δ
	var krsJac bn254.G1Jac
	privW := wScalars[q.NbPublic+1:]
	if len(privW) > 0 {
		if _, err := krsJac.MultiExp(pk.G1.K, privW, mec); err != nil {
			return nil, err
		}
	}
	if len(h) > 0 {
		hScalars := []fr.Element(h)
		if len(hScalars) > len(pk.G1.Z) {
			hScalars = hScalars[:len(pk.G1.Z)]
		}
		var hz bn254.G1Jac
		if _, err := hz.MultiExp(pk.G1.Z[:len(hScalars)], hScalars, mec); err != nil {
			return nil, err
		}
		krsJac.AddAssign(&hz)
	}
	blind.ScalarMultiplication(&proof.Ar, &sb)
	krsJac.AddMixed(&blind)
	blind.ScalarMultiplication(&bs1, &rb)
	krsJac.AddMixed(&blind)
	var rsNeg fr.Element
	rsNeg.Mul(&r, &s)
	rsNeg.Neg(&rsNeg)
	var rsb big.Int
	blind.ScalarMultiplication(&pk.G1.Delta, rsNeg.BigInt(&rsb))
	krsJac.AddMixed(&blind)
	proof.Krs.FromJacobian(&krsJac)

	if err := <-chBs; err != nil {
		return nil, err
	}

	log.Debug().Dur("took", time.Since(start)).
		Str("backend", "groth16").
		Int("nbConstraints", q.NbConstraints).
		Msg("prover done")
	return proof, nil
}
