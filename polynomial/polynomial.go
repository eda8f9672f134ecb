// Package polynomial implements dense univariate polynomials over the BN254
// scalar field, with the exact-arithmetic operations the QAP pipeline needs:
// Horner evaluation, schoolbook multiplication, long division and Lagrange
// interpolation.
//
// Coefficients are stored lowest degree first. The empty slice is the zero
// polynomial; constructors and arithmetic trim trailing zero coefficients so
// Degree is always len-1 (and -1 for the zero polynomial).
package polynomial

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

var (
	// ErrZeroInverse is returned when inverting the zero element.
	ErrZeroInverse = errors.New("polynomial: inverse of zero field element")

	// ErrDivisionByZero is returned when dividing by the zero polynomial.
	ErrDivisionByZero = errors.New("polynomial: division by zero polynomial")

	// ErrDuplicatePoints is returned when interpolation points share an x
	// coordinate; the basis denominators vanish and no unique polynomial
	// exists.
	ErrDuplicatePoints = errors.New("polynomial: duplicate x coordinate in interpolation points")
)

// Polynomial is a dense coefficient vector, lowest degree first.
type Polynomial []fr.Element

// New builds a polynomial from coefficients (lowest degree first) and trims
// trailing zeros.
func New(coeffs ...fr.Element) Polynomial {
	return Polynomial(coeffs).trim()
}

// NewFromInt64 builds a polynomial from small signed coefficients. Test and
// example helper.
func NewFromInt64(coeffs ...int64) Polynomial {
	p := make(Polynomial, len(coeffs))
	for i, c := range coeffs {
		p[i].SetInt64(c)
	}
	return p.trim()
}

// One returns the constant polynomial 1.
func One() Polynomial {
	var one fr.Element
	one.SetOne()
	return Polynomial{one}
}

// Inverse returns 1/x, or ErrZeroInverse when x is zero.
func Inverse(x fr.Element) (fr.Element, error) {
	if x.IsZero() {
		return fr.Element{}, ErrZeroInverse
	}
	var inv fr.Element
	inv.Inverse(&x)
	return inv, nil
}

func (p Polynomial) trim() Polynomial {
	n := len(p)
	for n > 0 && p[n-1].IsZero() {
		n--
	}
	return p[:n]
}

// Degree returns len-1; the zero polynomial has degree -1.
func (p Polynomial) Degree() int {
	return len(p.trim()) - 1
}

// IsZero reports whether every coefficient is zero.
func (p Polynomial) IsZero() bool {
	for i := range p {
		if !p[i].IsZero() {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of p.
func (p Polynomial) Clone() Polynomial {
	q := make(Polynomial, len(p))
	copy(q, p)
	return q
}

// Equal reports whether p and q represent the same polynomial, ignoring
// trailing zero coefficients.
func (p Polynomial) Equal(q Polynomial) bool {
	a, b := p.trim(), q.trim()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(&b[i]) {
			return false
		}
	}
	return true
}

// Eval evaluates p at x using Horner's method.
func (p Polynomial) Eval(x fr.Element) fr.Element {
	var res fr.Element
	for i := len(p) - 1; i >= 0; i-- {
		res.Mul(&res, &x)
		res.Add(&res, &p[i])
	}
	return res
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	res := make(Polynomial, n)
	copy(res, p)
	for i := range q {
		res[i].Add(&res[i], &q[i])
	}
	return res.trim()
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	res := make(Polynomial, n)
	copy(res, p)
	for i := range q {
		res[i].Sub(&res[i], &q[i])
	}
	return res.trim()
}

// Mul returns p * q by coefficient convolution.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	a, b := p.trim(), q.trim()
	if len(a) == 0 || len(b) == 0 {
		return Polynomial{}
	}
	res := make(Polynomial, len(a)+len(b)-1)
	var t fr.Element
	for i := range a {
		if a[i].IsZero() {
			continue
		}
		for j := range b {
			t.Mul(&a[i], &b[j])
			res[i+j].Add(&res[i+j], &t)
		}
	}
	return res.trim()
}

// Scale returns s * p.
func (p Polynomial) Scale(s fr.Element) Polynomial {
	res := make(Polynomial, len(p))
	for i := range p {
		res[i].Mul(&p[i], &s)
	}
	return res.trim()
}

// Div performs long division and returns (quotient, remainder) with
// p = quotient*divisor + remainder and deg(remainder) < deg(divisor).
// Division never truncates: callers needing exact divisibility must check
// the remainder is the zero polynomial themselves.
func (p Polynomial) Div(divisor Polynomial) (quo, rem Polynomial, err error) {
	d := divisor.trim()
	if len(d) == 0 {
		return nil, nil, ErrDivisionByZero
	}

	rem = p.Clone().trim()
	if len(rem) < len(d) {
		return Polynomial{}, rem, nil
	}

	leadInv, err := Inverse(d[len(d)-1])
	if err != nil {
		// unreachable after trim, the leading coefficient is nonzero
		return nil, nil, err
	}

	quo = make(Polynomial, len(rem)-len(d)+1)
	var c, t fr.Element
	for len(rem) >= len(d) {
		shift := len(rem) - len(d)
		c.Mul(&rem[len(rem)-1], &leadInv)
		quo[shift].Set(&c)

		// rem -= c * x^shift * divisor
		for i := range d {
			t.Mul(&c, &d[i])
			rem[shift+i].Sub(&rem[shift+i], &t)
		}
		rem = rem[:len(rem)-1].trim()
	}
	return quo.trim(), rem, nil
}

// Vanishing returns the target polynomial t(x) = (x-1)(x-2)...(x-n), built by
// incremental multiplication. n == 0 yields the constant polynomial 1, making
// any divisibility check against it vacuously true.
func Vanishing(n int) Polynomial {
	t := One()
	var minusI fr.Element
	var one fr.Element
	one.SetOne()
	for i := 1; i <= n; i++ {
		minusI.SetInt64(int64(i))
		minusI.Neg(&minusI)
		t = t.Mul(Polynomial{minusI, one})
	}
	return t
}
