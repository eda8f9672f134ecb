package polynomial

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Point is an (x, y) interpolation pair.
type Point struct {
	X, Y fr.Element
}

// Interpolate returns the unique polynomial of degree <= n-1 through the n
// given points, using Lagrange basis polynomials
//
//	L_i(x) = Π_{j≠i} (x - x_j) / (x_i - x_j)
//
// Points sharing an x coordinate make a basis denominator vanish; that case
// fails with ErrDuplicatePoints rather than silently producing a wrong
// result. An empty point set yields the zero polynomial.
func Interpolate(points []Point) (Polynomial, error) {
	n := len(points)
	if n == 0 {
		return Polynomial{}, nil
	}

	res := make(Polynomial, n)
	basis := make(Polynomial, 0, n)

	var t, denom, diff fr.Element
	var one fr.Element
	one.SetOne()

	for i := range points {
		// numerator Π_{j≠i} (x - x_j), denominator Π_{j≠i} (x_i - x_j)
		basis = append(basis[:0], one)
		denom.SetOne()
		for j := range points {
			if j == i {
				continue
			}
			var minusXj fr.Element
			minusXj.Neg(&points[j].X)
			basis = basis.Mul(Polynomial{minusXj, one})

			diff.Sub(&points[i].X, &points[j].X)
			denom.Mul(&denom, &diff)
		}

		denomInv, err := Inverse(denom)
		if err != nil {
			return nil, ErrDuplicatePoints
		}

		// res += y_i / denom * L_i
		var scale fr.Element
		scale.Mul(&points[i].Y, &denomInv)
		for k := range basis {
			t.Mul(&basis[k], &scale)
			res[k].Add(&res[k], &t)
		}
	}

	return res.trim(), nil
}
