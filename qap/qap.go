// Package qap turns a rank-1 constraint system into a quadratic arithmetic
// program: one polynomial per variable and per matrix (A, B, C), interpolated
// over the domain x = 1..n where n is the number of constraints, plus the
// target polynomial t(x) = (x-1)...(x-n).
//
// A witness w satisfies the constraint system iff t divides
// (Σ w_j·A_j)·(Σ w_j·B_j) − Σ w_j·C_j.
package qap

import (
	"fmt"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/snarklet/groth16/constraint"
	"github.com/snarklet/groth16/internal/parallel"
	"github.com/snarklet/groth16/logger"
	"github.com/snarklet/groth16/polynomial"
)

// QAP is the polynomial form of a constraint system. A[j], B[j], C[j] are the
// per-variable column polynomials (length NbVariables); T is the target
// polynomial with roots exactly at 1..NbConstraints. A system with zero
// constraints yields T == 1, under which divisibility is vacuous.
type QAP struct {
	A, B, C []polynomial.Polynomial
	T       polynomial.Polynomial

	NbConstraints int
	NbVariables   int
	NbPublic      int
}

// Transform interpolates the constraint matrices column by column: variable
// j's A-polynomial passes through (i+1, coefficient of j in constraint i's L
// part) for every constraint i, and likewise for B (R part) and C (O part).
// Columns are independent, so the interpolation runs in parallel across
// variables.
func Transform(cs *constraint.System) (*QAP, error) {
	log := logger.Logger()
	start := time.Now()

	n := cs.NbConstraints()
	q := &QAP{
		A:             make([]polynomial.Polynomial, cs.NbVariables),
		B:             make([]polynomial.Polynomial, cs.NbVariables),
		C:             make([]polynomial.Polynomial, cs.NbVariables),
		T:             polynomial.Vanishing(n),
		NbConstraints: n,
		NbVariables:   cs.NbVariables,
		NbPublic:      cs.NbPublic,
	}

	err := parallel.Execute(cs.NbVariables, func(startVar, endVar int) error {
		points := make([]polynomial.Point, n)
		for i := range points {
			points[i].X.SetInt64(int64(i + 1))
		}
		for j := startVar; j < endVar; j++ {
			for i := 0; i < n; i++ {
				points[i].Y = cs.Constraints[i].L.Coeff(j)
			}
			p, err := polynomial.Interpolate(points)
			if err != nil {
				return fmt.Errorf("qap: interpolate A_%d: %w", j, err)
			}
			q.A[j] = p

			for i := 0; i < n; i++ {
				points[i].Y = cs.Constraints[i].R.Coeff(j)
			}
			if p, err = polynomial.Interpolate(points); err != nil {
				return fmt.Errorf("qap: interpolate B_%d: %w", j, err)
			}
			q.B[j] = p

			for i := 0; i < n; i++ {
				points[i].Y = cs.Constraints[i].O.Coeff(j)
			}
			if p, err = polynomial.Interpolate(points); err != nil {
				return fmt.Errorf("qap: interpolate C_%d: %w", j, err)
			}
			q.C[j] = p
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if unconstrained := cs.UnconstrainedVariables(); len(unconstrained) > 0 {
		log.Warn().Ints("variables", unconstrained).Msg("variables appear in no constraint")
	}
	log.Debug().Dur("took", time.Since(start)).
		Int("nbConstraints", n).
		Int("nbVariables", cs.NbVariables).
		Msg("r1cs to qap")
	return q, nil
}

// CombineWitness folds the witness into the three column sets and returns
// the aggregate polynomials A(x) = Σ w_j·A_j(x), B(x), C(x).
func (q *QAP) CombineWitness(w constraint.Witness) (a, b, c polynomial.Polynomial) {
	a = combine(q.A, w)
	b = combine(q.B, w)
	c = combine(q.C, w)
	return
}

func combine(cols []polynomial.Polynomial, w constraint.Witness) polynomial.Polynomial {
	var res polynomial.Polynomial
	for j := range cols {
		if j >= len(w) || w[j].IsZero() || cols[j].IsZero() {
			continue
		}
		res = res.Add(cols[j].Scale(w[j]))
	}
	return res
}

// Quotient computes h = (A·B − C) / t for the given witness and reports the
// division remainder. A satisfying witness leaves a zero remainder.
func (q *QAP) Quotient(w constraint.Witness) (h polynomial.Polynomial, remainderIsZero bool, err error) {
	a, b, c := q.CombineWitness(w)
	num := a.Mul(b).Sub(c)
	h, rem, err := num.Div(q.T)
	if err != nil {
		return nil, false, err
	}
	return h, rem.IsZero(), nil
}

// IsDivisible reports whether t divides (A·B − C) under witness w, i.e.
// whether w satisfies the underlying constraint system.
func (q *QAP) IsDivisible(w constraint.Witness) bool {
	if len(w) != q.NbVariables {
		return false
	}
	_, ok, err := q.Quotient(w)
	return err == nil && ok
}

// evalAt evaluates every column of cols at x.
func evalAt(cols []polynomial.Polynomial, x fr.Element) []fr.Element {
	res := make([]fr.Element, len(cols))
	for j := range cols {
		res[j] = cols[j].Eval(x)
	}
	return res
}

// EvalAt evaluates all three column sets and the target polynomial at x.
// Key generation uses this with the secret evaluation point.
func (q *QAP) EvalAt(x fr.Element) (a, b, c []fr.Element, t fr.Element) {
	return evalAt(q.A, x), evalAt(q.B, x), evalAt(q.C, x), q.T.Eval(x)
}
