// Package stats provides the sampling and statistical primitives the
// outbreak simulator draws on: Bernoulli trials, Poisson and normal draws,
// uniform and weighted population selection, and the Poisson-rate test used
// for likelihood scoring.
//
// Every function takes the caller's RNG explicitly. A simulation run owns a
// single stream and threads it through all draws in a fixed order, so none
// of these functions may hold hidden random state.
package stats

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// Bernoulli performs a single success/failure trial with probability p.
func Bernoulli(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// Poisson draws a count from a Poisson distribution with the given mean.
// A non-positive mean yields zero without consuming the stream.
func Poisson(rng *rand.Rand, mean float64) int {
	if mean <= 0 {
		return 0
	}
	return int(distuv.Poisson{Lambda: mean, Src: rng}.Rand())
}

// Normal draws from a normal distribution with the given mean and standard
// deviation. The stream is consumed even when std is zero, so draw order
// stays fixed across parameter choices.
func Normal(rng *rand.Rand, mean, std float64) float64 {
	return distuv.Normal{Mu: mean, Sigma: std, Src: rng}.Rand()
}

// NormalRound draws from Normal(mean, std) rounded to the nearest integer,
// floored at zero. Used for incubation and duration offsets in days.
func NormalRound(rng *rand.Rand, mean, std float64) int {
	v := int(math.Round(Normal(rng, mean, std)))
	if v < 0 {
		return 0
	}
	return v
}

// ChooseIndices selects n indices uniformly at random from [0, max).
// Draws are independent, so the same index can appear more than once.
func ChooseIndices(rng *rand.Rand, max, n int) []int {
	if max <= 0 || n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(max)
	}
	return out
}

// ChooseWeighted selects up to n distinct indices without replacement, with
// selection probability proportional to the supplied weights. Fewer than n
// indices come back when the weights cannot support n distinct draws.
func ChooseWeighted(rng *rand.Rand, weights []float64, n int) []int {
	if n <= 0 || len(weights) == 0 {
		return nil
	}
	w := make([]float64, len(weights))
	copy(w, weights)
	sampler := sampleuv.NewWeighted(w, rng)
	out := make([]int, 0, n)
	for len(out) < n {
		idx, ok := sampler.Take()
		if !ok {
			break
		}
		out = append(out, idx)
	}
	return out
}
