package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResults_FreshIsZeroFilledAndNotReady(t *testing.T) {
	r := NewResults(5)
	assert.False(t, r.Ready)
	assert.False(t, r.HasLikelihood)
	assert.Len(t, r.Infections, 5)
	for _, v := range r.Infections {
		assert.Equal(t, 0, v)
	}
	assert.Nil(t, r.CumExposed)
}

func TestResults_FinalizeComputesPrefixSums(t *testing.T) {
	r := NewResults(4)
	r.Infections = []int{1, 0, 2, 3}
	r.Tests = []int{0, 10, 0, 5}
	r.Diagnoses = []int{0, 2, 1, 0}
	r.Finalize()

	assert.True(t, r.Ready)
	assert.Equal(t, []int{1, 1, 3, 6}, r.CumExposed)
	assert.Equal(t, []int{0, 10, 10, 15}, r.CumTested)
	assert.Equal(t, []int{0, 2, 3, 3}, r.CumDiagnosed)
}

func TestResults_MergeSumsEverythingButDayIndex(t *testing.T) {
	a := NewResults(3)
	a.T = []int{0, 1, 2}
	a.Infections = []int{1, 2, 3}
	a.NSusceptible = []int{9, 8, 7}
	a.Finalize()

	b := NewResults(3)
	b.T = []int{0, 1, 2}
	b.Infections = []int{10, 0, 1}
	b.NSusceptible = []int{5, 5, 5}
	b.Finalize()

	require.NoError(t, a.Merge(b))
	assert.Equal(t, []int{0, 1, 2}, a.T)
	assert.Equal(t, []int{11, 2, 4}, a.Infections)
	assert.Equal(t, []int{14, 13, 12}, a.NSusceptible)
	assert.Equal(t, []int{11, 13, 17}, a.CumExposed)
}

func TestResults_MergeLengthMismatch(t *testing.T) {
	a := NewResults(3)
	b := NewResults(4)
	assert.Error(t, a.Merge(b))
}

func TestResults_Summary(t *testing.T) {
	r := NewResults(3)
	r.NSusceptible = []int{10, 8, 6}
	r.NExposed = []int{1, 3, 5}
	r.NInfectious = []int{1, 2, 4}
	s := r.Summary()
	assert.Equal(t, Summary{NSusceptible: 6, NExposed: 5, NInfectious: 4}, s)
}
