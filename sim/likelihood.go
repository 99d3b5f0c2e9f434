package sim

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/outbreak-sim/outbreak-sim/sim/stats"
)

// Likelihood scores the run's modeled daily diagnoses against the observed
// series: for each day with an observed value, the log of the Poisson-rate
// p-value of observed vs. modeled counts, summed over days. Unobserved days
// are skipped, neither penalized nor imputed.
//
// If the run has not completed, it is run first with the configured seed
// infection count. On a completed run the value is computed once and
// cached: calling Likelihood again returns the same scalar without
// re-executing the day loop.
func (s *Sim) Likelihood() (float64, error) {
	if s.Results == nil || !s.Results.Ready {
		if _, err := s.Run(s.Config.SeedInfections); err != nil {
			return 0, err
		}
	}
	if s.Results.HasLikelihood {
		return s.Results.Likelihood, nil
	}

	loglike := 0.0
	for d := 0; d < s.Data.Len() && d < len(s.Results.Diagnoses); d++ {
		observed, ok := s.Data.PositivesOn(d)
		if !ok {
			continue
		}
		modeled := float64(s.Results.Diagnoses[d])
		p := stats.PoissonTest(observed, modeled)
		logp := math.Log(p)
		loglike += logp
		logrus.Debugf("day %d data=%.0f model=%.0f log(p)=%.4f loglike=%.4f",
			d, observed, modeled, logp, loglike)
	}

	s.Results.Likelihood = loglike
	s.Results.HasLikelihood = true
	return loglike, nil
}
