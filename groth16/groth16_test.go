package groth16_test

import (
	mrand "math/rand"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/snarklet/groth16/constraint"
	"github.com/snarklet/groth16/groth16"
	"github.com/snarklet/groth16/qap"
)

// multiplierSystem builds c = a * b over variables [1, c, a, b]; c public.
func multiplierSystem(t *testing.T) *constraint.System {
	t.Helper()
	s := constraint.NewSystem(4, 1)
	c := constraint.NewR1C()
	c.L.SetInt64(2, 1)
	c.R.SetInt64(3, 1)
	c.O.SetInt64(1, 1)
	_, err := s.AddConstraint(c)
	require.NoError(t, err)
	return s
}

// cubicSystem builds x³ + x + 5 = out over [1, out, x, x², x³, x³+x].
func cubicSystem(t *testing.T) *constraint.System {
	t.Helper()
	s := constraint.NewSystem(6, 1)

	add := func(build func(c constraint.R1C)) {
		c := constraint.NewR1C()
		build(c)
		_, err := s.AddConstraint(c)
		require.NoError(t, err)
	}
	add(func(c constraint.R1C) { // x * x = x²
		c.L.SetInt64(2, 1)
		c.R.SetInt64(2, 1)
		c.O.SetInt64(3, 1)
	})
	add(func(c constraint.R1C) { // x² * x = x³
		c.L.SetInt64(3, 1)
		c.R.SetInt64(2, 1)
		c.O.SetInt64(4, 1)
	})
	add(func(c constraint.R1C) { // (x³ + x) * 1 = x³+x
		c.L.SetInt64(4, 1)
		c.L.SetInt64(2, 1)
		c.R.SetInt64(0, 1)
		c.O.SetInt64(5, 1)
	})
	add(func(c constraint.R1C) { // (x³+x + 5) * 1 = out
		c.L.SetInt64(5, 1)
		c.L.SetInt64(0, 5)
		c.R.SetInt64(0, 1)
		c.O.SetInt64(1, 1)
	})
	return s
}

func transform(t *testing.T, cs *constraint.System) *qap.QAP {
	t.Helper()
	q, err := qap.Transform(cs)
	require.NoError(t, err)
	return q
}

func witnessFromInt64(values ...int64) constraint.Witness {
	w := make(constraint.Witness, len(values))
	for i, v := range values {
		w[i].SetInt64(v)
	}
	return w
}

func publicFromInt64(values ...int64) []fr.Element {
	p := make([]fr.Element, len(values))
	for i, v := range values {
		p[i].SetInt64(v)
	}
	return p
}

func TestSetupProveVerify(t *testing.T) {
	q := transform(t, multiplierSystem(t))
	pk, vk, err := groth16.Setup(q)
	require.NoError(t, err)
	require.Equal(t, 1, vk.NbPublicInputs())

	proof, err := groth16.Prove(q, pk, witnessFromInt64(1, 12, 3, 4))
	require.NoError(t, err)

	ok, err := groth16.Verify(proof, vk, publicFromInt64(12))
	require.NoError(t, err)
	require.True(t, ok)

	// wrong public input: well-formed proof, failed equation, no error
	ok, err = groth16.Verify(proof, vk, publicFromInt64(13))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCubicCircuit(t *testing.T) {
	q := transform(t, cubicSystem(t))
	pk, vk, err := groth16.Setup(q)
	require.NoError(t, err)

	proof, err := groth16.Prove(q, pk, witnessFromInt64(1, 35, 3, 9, 27, 30))
	require.NoError(t, err)

	ok, err := groth16.Verify(proof, vk, publicFromInt64(35))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = groth16.Verify(proof, vk, publicFromInt64(36))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestProveRejectsBadWitness(t *testing.T) {
	q := transform(t, multiplierSystem(t))
	pk, _, err := groth16.Setup(q)
	require.NoError(t, err)

	var witnessErr *groth16.WitnessError

	// unsatisfied constraint
	_, err = groth16.Prove(q, pk, witnessFromInt64(1, 13, 3, 4))
	require.ErrorAs(t, err, &witnessErr)

	// wrong length
	_, err = groth16.Prove(q, pk, witnessFromInt64(1, 12, 3))
	require.ErrorAs(t, err, &witnessErr)

	// constant wire is not 1
	_, err = groth16.Prove(q, pk, witnessFromInt64(2, 12, 3, 4))
	require.ErrorAs(t, err, &witnessErr)
}

func TestSetupRejectsTooManyPublic(t *testing.T) {
	q := &qap.QAP{NbVariables: 2, NbPublic: 3}
	_, _, err := groth16.Setup(q)
	var setupErr *groth16.SetupError
	require.ErrorAs(t, err, &setupErr)
}

func TestSetupRejectsNilRandomSource(t *testing.T) {
	q := transform(t, multiplierSystem(t))
	_, _, err := groth16.Setup(q, groth16.WithRandomSource(nil))
	var setupErr *groth16.SetupError
	require.ErrorAs(t, err, &setupErr)
}

func TestProofNonUniqueness(t *testing.T) {
	q := transform(t, multiplierSystem(t))
	pk, vk, err := groth16.Setup(q)
	require.NoError(t, err)

	w := witnessFromInt64(1, 12, 3, 4)
	proof1, err := groth16.Prove(q, pk, w)
	require.NoError(t, err)
	proof2, err := groth16.Prove(q, pk, w)
	require.NoError(t, err)

	// fresh blinding randomness makes proofs of the same witness distinct
	require.False(t, proof1.Ar.Equal(&proof2.Ar))

	for _, proof := range []*groth16.Proof{proof1, proof2} {
		ok, err := groth16.Verify(proof, vk, publicFromInt64(12))
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestDeterministicRandomSource(t *testing.T) {
	q := transform(t, multiplierSystem(t))

	pk1, vk1, err := groth16.Setup(q, groth16.WithRandomSource(mrand.New(mrand.NewSource(42))))
	require.NoError(t, err)
	pk2, vk2, err := groth16.Setup(q, groth16.WithRandomSource(mrand.New(mrand.NewSource(42))))
	require.NoError(t, err)

	require.Equal(t, vk1, vk2)
	require.Equal(t, pk1, pk2)
}

func TestVerifyRejectsMalformedProof(t *testing.T) {
	q := transform(t, multiplierSystem(t))
	pk, vk, err := groth16.Setup(q)
	require.NoError(t, err)

	proof, err := groth16.Prove(q, pk, witnessFromInt64(1, 12, 3, 4))
	require.NoError(t, err)

	var proofErr *groth16.ProofError

	// point off the curve
	bad := *proof
	bad.Ar.X.SetOne()
	bad.Ar.Y.SetOne()
	ok, err := groth16.Verify(&bad, vk, publicFromInt64(12))
	require.False(t, ok)
	require.ErrorAs(t, err, &proofErr)

	// public input count mismatch
	ok, err = groth16.Verify(proof, vk, nil)
	require.False(t, ok)
	require.ErrorAs(t, err, &proofErr)
}

func TestBatchVerify(t *testing.T) {
	q := transform(t, multiplierSystem(t))
	pk, vk, err := groth16.Setup(q)
	require.NoError(t, err)

	witnesses := []constraint.Witness{
		witnessFromInt64(1, 12, 3, 4),
		witnessFromInt64(1, 15, 3, 5),
		witnessFromInt64(1, 42, 6, 7),
	}
	proofs := make([]*groth16.Proof, len(witnesses))
	publics := make([][]fr.Element, len(witnesses))
	for i, w := range witnesses {
		proofs[i], err = groth16.Prove(q, pk, w)
		require.NoError(t, err)
		publics[i] = w.Public(q.NbPublic)
	}

	ok, err := groth16.BatchVerify(vk, proofs, publics)
	require.NoError(t, err)
	require.True(t, ok)

	// one corrupted proof sinks the whole batch
	corrupted := *proofs[1]
	corrupted.Krs = proofs[0].Krs
	ok, err = groth16.BatchVerify(vk, []*groth16.Proof{proofs[0], &corrupted, proofs[2]}, publics)
	require.NoError(t, err)
	require.False(t, ok)

	// one wrong public input does too
	badPublics := [][]fr.Element{publics[0], publicFromInt64(16), publics[2]}
	ok, err = groth16.BatchVerify(vk, proofs, badPublics)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBatchVerifyEdgeCases(t *testing.T) {
	q := transform(t, multiplierSystem(t))
	pk, vk, err := groth16.Setup(q)
	require.NoError(t, err)

	// empty batch is vacuously valid
	ok, err := groth16.BatchVerify(vk, nil, nil)
	require.NoError(t, err)
	require.True(t, ok)

	proof, err := groth16.Prove(q, pk, witnessFromInt64(1, 12, 3, 4))
	require.NoError(t, err)

	var proofErr *groth16.ProofError
	_, err = groth16.BatchVerify(vk, []*groth16.Proof{proof}, nil)
	require.ErrorAs(t, err, &proofErr)

	// single-element batch agrees with Verify
	ok, err = groth16.BatchVerify(vk, []*groth16.Proof{proof}, [][]fr.Element{publicFromInt64(12)})
	require.NoError(t, err)
	require.True(t, ok)
}
