package sim

import (
	"fmt"
)

// Results holds the per-day time series produced by a single run (or the
// elementwise sum of an ensemble's runs). Daily fields are accumulated
// during the day loop; cumulative series and the readiness flag are set by
// Finalize after the loop completes.
type Results struct {
	T []int // day index

	// Active-population state counts, measured before the day's removals.
	NSusceptible []int
	NExposed     []int // includes infectious agents (exposed until recovery)
	NInfectious  []int
	NRecovered   []int

	// Daily event counts.
	Infections []int
	Tests      []int
	Diagnoses  []int
	Recoveries []int

	// Cumulative prefix sums, filled by Finalize.
	CumExposed   []int
	CumTested    []int
	CumDiagnosed []int

	// Log-likelihood of the run against observed diagnoses, set by
	// Sim.Likelihood.
	Likelihood    float64
	HasLikelihood bool

	// Ready distinguishes a freshly initialized, zero-filled record from a
	// completed run.
	Ready bool
}

// NewResults returns a zero-filled record for npts days.
func NewResults(npts int) *Results {
	return &Results{
		T:            make([]int, npts),
		NSusceptible: make([]int, npts),
		NExposed:     make([]int, npts),
		NInfectious:  make([]int, npts),
		NRecovered:   make([]int, npts),
		Infections:   make([]int, npts),
		Tests:        make([]int, npts),
		Diagnoses:    make([]int, npts),
		Recoveries:   make([]int, npts),
	}
}

// Finalize computes the cumulative series from the daily ones and marks the
// record ready. Called exactly once, after the day loop.
func (r *Results) Finalize() {
	r.CumExposed = cumsum(r.Infections)
	r.CumTested = cumsum(r.Tests)
	r.CumDiagnosed = cumsum(r.Diagnoses)
	r.Ready = true
}

func cumsum(xs []int) []int {
	out := make([]int, len(xs))
	total := 0
	for i, x := range xs {
		total += x
		out[i] = total
	}
	return out
}

// Merge adds another run's series into this one elementwise. The day index
// is left alone; everything else, cumulative series included, sums. Both
// records must cover the same number of days.
func (r *Results) Merge(other *Results) error {
	if len(r.T) != len(other.T) {
		return fmt.Errorf("results: cannot merge %d-day and %d-day runs", len(r.T), len(other.T))
	}
	addInto(r.NSusceptible, other.NSusceptible)
	addInto(r.NExposed, other.NExposed)
	addInto(r.NInfectious, other.NInfectious)
	addInto(r.NRecovered, other.NRecovered)
	addInto(r.Infections, other.Infections)
	addInto(r.Tests, other.Tests)
	addInto(r.Diagnoses, other.Diagnoses)
	addInto(r.Recoveries, other.Recoveries)
	addInto(r.CumExposed, other.CumExposed)
	addInto(r.CumTested, other.CumTested)
	addInto(r.CumDiagnosed, other.CumDiagnosed)
	if r.HasLikelihood && other.HasLikelihood {
		r.Likelihood += other.Likelihood
	}
	return nil
}

func addInto(dst, src []int) {
	for i := range dst {
		dst[i] += src[i]
	}
}

// Summary holds the final-day state counts of a run.
type Summary struct {
	NSusceptible int
	NExposed     int
	NInfectious  int
}

// Summary returns the final-day state counts.
func (r *Results) Summary() Summary {
	last := len(r.T) - 1
	return Summary{
		NSusceptible: r.NSusceptible[last],
		NExposed:     r.NExposed[last],
		NInfectious:  r.NInfectious[last],
	}
}

// Print displays the end-of-run summary.
func (r *Results) Print() {
	s := r.Summary()
	fmt.Println("=== Simulation summary ===")
	fmt.Printf("Susceptible : %d\n", s.NSusceptible)
	fmt.Printf("Exposed     : %d\n", s.NExposed)
	fmt.Printf("Infectious  : %d\n", s.NInfectious)
	last := len(r.T) - 1
	if r.Ready {
		fmt.Printf("Cumulative infections : %d\n", r.CumExposed[last])
		fmt.Printf("Cumulative tests      : %d\n", r.CumTested[last])
		fmt.Printf("Cumulative diagnoses  : %d\n", r.CumDiagnosed[last])
	}
	if r.HasLikelihood {
		fmt.Printf("Log-likelihood        : %.4f\n", r.Likelihood)
	}
}
