package groth16

import (
	"crypto/rand"
	"errors"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Option configures Setup, Prove or BatchVerify.
type Option func(*config) error

type config struct {
	rng io.Reader
}

// WithRandomSource overrides the randomness source, which defaults to
// crypto/rand.Reader. Deterministic sources belong in tests only; toxic
// waste and proof blinding are only as secret as this reader.
func WithRandomSource(r io.Reader) Option {
	return func(c *config) error {
		if r == nil {
			return errors.New("groth16: nil random source")
		}
		c.rng = r
		return nil
	}
}

func newConfig(opts ...Option) (*config, error) {
	c := &config{rng: rand.Reader}
	for _, o := range opts {
		if err := o(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// sampleNonZero draws a uniform nonzero scalar from rng, reading it to
// completion before returning.
func sampleNonZero(rng io.Reader) (fr.Element, error) {
	var e fr.Element
	for {
		n, err := rand.Int(rng, fr.Modulus())
		if err != nil {
			return fr.Element{}, err
		}
		if n.Sign() == 0 {
			continue
		}
		e.SetBigInt(n)
		return e, nil
	}
}
