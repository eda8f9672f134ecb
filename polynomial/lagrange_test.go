package polynomial

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestInterpolate(t *testing.T) {
	// three points of p(x) = x² + 1
	points := make([]Point, 3)
	for i := range points {
		points[i].X.SetInt64(int64(i + 1))
		points[i].Y.SetInt64(int64((i+1)*(i+1) + 1))
	}

	p, err := Interpolate(points)
	require.NoError(t, err)
	require.True(t, p.Equal(NewFromInt64(1, 0, 1)))
}

func TestInterpolateEmpty(t *testing.T) {
	p, err := Interpolate(nil)
	require.NoError(t, err)
	require.True(t, p.IsZero())
}

func TestInterpolateDuplicateX(t *testing.T) {
	points := make([]Point, 2)
	points[0].X.SetInt64(3)
	points[0].Y.SetInt64(1)
	points[1].X.SetInt64(3)
	points[1].Y.SetInt64(2)

	_, err := Interpolate(points)
	require.ErrorIs(t, err, ErrDuplicatePoints)
}

func TestInterpolateConstant(t *testing.T) {
	points := []Point{{}}
	points[0].X.SetInt64(9)
	points[0].Y.SetInt64(42)

	p, err := Interpolate(points)
	require.NoError(t, err)
	require.Equal(t, 0, p.Degree())

	var x fr.Element
	x.SetInt64(123)
	got := p.Eval(x)
	require.True(t, got.Equal(&points[0].Y))
}

func TestInterpolateRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	properties.Property("interpolation passes through its points", prop.ForAll(
		func(n uint8) bool {
			size := int(n%10) + 1
			points := make([]Point, size)
			for i := range points {
				points[i].X.SetInt64(int64(i + 1))
				points[i].Y.SetRandom()
			}
			p, err := Interpolate(points)
			if err != nil || p.Degree() >= size {
				return false
			}
			for i := range points {
				got := p.Eval(points[i].X)
				if !got.Equal(&points[i].Y) {
					return false
				}
			}
			return true
		},
		gopter.Gen(func(genParams *gopter.GenParameters) *gopter.GenResult {
			return gopter.NewGenResult(uint8(genParams.NextUint64()), gopter.NoShrinker)
		}),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
