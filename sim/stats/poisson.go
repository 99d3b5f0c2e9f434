package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// PoissonTest returns the two-sided p-value for the hypothesis that an
// observed count and an expected count were generated by Poisson processes
// with the same rate, using the normal-approximation score test:
//
//	z = (observed - expected) / sqrt(observed + expected)
//	p = 2 * P(Z > |z|)
//
// Equal counts give p = 1. The p-value underflows to zero for wildly
// discrepant counts; callers taking its logarithm get -Inf in that case.
func PoissonTest(observed, expected float64) float64 {
	if observed == expected {
		return 1
	}
	z := (observed - expected) / math.Sqrt(observed+expected)
	return 2 * distuv.UnitNormal.Survival(math.Abs(z))
}
