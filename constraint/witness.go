package constraint

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Witness is a full variable assignment [1, public..., private...].
type Witness []fr.Element

// NewWitness assembles a witness from its public and private parts,
// prepending the constant-1 wire. Lengths are validated against the system.
func (s *System) NewWitness(public, private []fr.Element) (Witness, error) {
	if len(public) != s.NbPublic {
		return nil, fmt.Errorf("%w: got %d public inputs, want %d", ErrInvalidWitnessSize, len(public), s.NbPublic)
	}
	if 1+len(public)+len(private) != s.NbVariables {
		return nil, fmt.Errorf("%w: got %d values, want %d", ErrInvalidWitnessSize, 1+len(public)+len(private), s.NbVariables)
	}
	w := make(Witness, 0, s.NbVariables)
	var one fr.Element
	one.SetOne()
	w = append(w, one)
	w = append(w, public...)
	w = append(w, private...)
	return w, nil
}

// Public returns the public-input slice of w (excluding the constant wire).
func (w Witness) Public(nbPublic int) []fr.Element {
	return w[1 : 1+nbPublic]
}

// Clone returns an independent copy of w.
func (w Witness) Clone() Witness {
	c := make(Witness, len(w))
	copy(c, w)
	return c
}
