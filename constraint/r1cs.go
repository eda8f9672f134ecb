// Package constraint implements a sparse rank-1 constraint system (R1CS).
//
// A constraint has the form (L·w) * (R·w) = (O·w) where L, R, O are sparse
// linear combinations over the witness vector w. Variable 0 is reserved for
// the constant 1; public inputs follow at indices 1..NbPublic, then private
// values.
package constraint

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

var (
	// ErrInvalidWitnessSize is returned when building a witness whose public
	// and private parts do not add up to the system's variable count.
	ErrInvalidWitnessSize = errors.New("constraint: witness size does not match variable count")

	// ErrVariableOutOfRange is returned when a constraint references a
	// variable index outside the system.
	ErrVariableOutOfRange = errors.New("constraint: variable index out of range")
)

// LinearCombination is a sparse map variable index -> coefficient. A missing
// key reads as zero; reads go through Coeff so the default is explicit
// rather than an accident of map semantics.
type LinearCombination map[int]fr.Element

// Coeff returns the coefficient of variable i, zero when absent.
func (lc LinearCombination) Coeff(i int) fr.Element {
	if c, ok := lc[i]; ok {
		return c
	}
	return fr.Element{}
}

// Set records a coefficient for variable i. A zero coefficient removes the
// entry so the sparse invariant (stored => nonzero) holds.
func (lc LinearCombination) Set(i int, c fr.Element) {
	if c.IsZero() {
		delete(lc, i)
		return
	}
	lc[i] = c
}

// SetInt64 records a small signed coefficient for variable i.
func (lc LinearCombination) SetInt64(i int, c int64) {
	var e fr.Element
	e.SetInt64(c)
	lc.Set(i, e)
}

// eval computes lc · w.
func (lc LinearCombination) eval(w []fr.Element) fr.Element {
	var res, t fr.Element
	for i, c := range lc {
		t.Mul(&c, &w[i])
		res.Add(&res, &t)
	}
	return res
}

// maxVariable returns the largest variable index referenced, or -1.
func (lc LinearCombination) maxVariable() int {
	m := -1
	for i := range lc {
		if i > m {
			m = i
		}
	}
	return m
}

// R1C is one rank-1 constraint (L·w) * (R·w) = (O·w).
type R1C struct {
	L, R, O LinearCombination
}

// NewR1C returns a constraint with empty linear combinations.
func NewR1C() R1C {
	return R1C{
		L: make(LinearCombination),
		R: make(LinearCombination),
		O: make(LinearCombination),
	}
}

// System is an ordered list of constraints over NbVariables variables.
// It is built once per circuit and never mutated afterwards.
type System struct {
	Constraints []R1C
	NbVariables int
	NbPublic    int // public inputs, excluding the constant-1 wire

	// Wires tracks which variable indices appear in at least one
	// constraint; key generation warns about unconstrained wires.
	Wires *bitset.BitSet
}

// NewSystem returns an empty system over nbVariables variables, of which
// nbPublic (excluding the constant wire) are public inputs.
func NewSystem(nbVariables, nbPublic int) *System {
	s := &System{
		NbVariables: nbVariables,
		NbPublic:    nbPublic,
		Wires:       bitset.New(uint(nbVariables)),
	}
	s.Wires.Set(0) // the constant wire is always live
	return s
}

// NbConstraints returns the number of constraints in the system.
func (s *System) NbConstraints() int {
	return len(s.Constraints)
}

// AddConstraint appends c and returns its index. Constraint i is bound to
// interpolation point x = i+1 in the QAP transform. Referencing a variable
// outside the system is an error; the variable count is fixed at
// construction.
func (s *System) AddConstraint(c R1C) (int, error) {
	for _, lc := range []LinearCombination{c.L, c.R, c.O} {
		if m := lc.maxVariable(); m >= s.NbVariables {
			return 0, fmt.Errorf("%w: variable %d in a system of %d variables", ErrVariableOutOfRange, m, s.NbVariables)
		}
	}
	for _, lc := range []LinearCombination{c.L, c.R, c.O} {
		for i := range lc {
			s.Wires.Set(uint(i))
		}
	}
	s.Constraints = append(s.Constraints, c)
	return len(s.Constraints) - 1, nil
}

// IsSatisfied reports whether w satisfies every constraint. The check is
// pure; a witness of the wrong length satisfies nothing.
func (s *System) IsSatisfied(w Witness) bool {
	if len(w) != s.NbVariables {
		return false
	}
	var prod fr.Element
	for i := range s.Constraints {
		l := s.Constraints[i].L.eval(w)
		r := s.Constraints[i].R.eval(w)
		o := s.Constraints[i].O.eval(w)
		prod.Mul(&l, &r)
		if !prod.Equal(&o) {
			return false
		}
	}
	return true
}

// UnconstrainedVariables returns the indices of variables that appear in no
// constraint, in increasing order.
func (s *System) UnconstrainedVariables() []int {
	var res []int
	for i, ok := s.Wires.NextClear(0); ok && i < uint(s.NbVariables); i, ok = s.Wires.NextClear(i + 1) {
		res = append(res, int(i))
	}
	return res
}
