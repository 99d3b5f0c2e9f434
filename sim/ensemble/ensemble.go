// Package ensemble runs independent replicas of a simulation in parallel
// and merges their outputs into a single result-bearing run.
//
// Each replica owns a private copy of the base configuration with a derived
// seed (base + replica index) and a 1/n-scale population, so replicas share
// no mutable state and the only synchronization point is the final merge.
// The merge sums every result series elementwise and unions the replica
// populations; because per-agent Poisson contact sampling is nonlinear in
// population size, the merged output is a parallel-ensemble approximation
// of a full-scale run, not an exact decomposition of one.
package ensemble

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/outbreak-sim/outbreak-sim/sim"
)

// RunOne executes a single replica to completion and returns it. It is the
// unit of work MultiRun dispatches in parallel, exposed for callers that
// manage their own scheduling.
func RunOne(s *sim.Sim) (*sim.Sim, error) {
	if _, err := s.Run(s.Config.SeedInfections); err != nil {
		return nil, err
	}
	return s, nil
}

// MultiRun splits the base configuration into n replicas, runs them in
// parallel, and merges populations and results into the first replica,
// whose population-size parameters are restored to the base values for
// downstream reporting. Any replica failure aborts the whole ensemble.
func MultiRun(base sim.Config, data *sim.Data, n int) (*sim.Sim, error) {
	if n < 1 {
		return nil, fmt.Errorf("ensemble: replica count must be >= 1, got %d", n)
	}

	sims := make([]*sim.Sim, n)
	for i := range sims {
		cfg := base
		cfg.Seed = int64(sim.NewSimulationKey(base.Seed).Replica(i))
		cfg.NGuests = base.NGuests / n
		cfg.NCrew = base.NCrew / n
		s, err := sim.NewSim(cfg, data)
		if err != nil {
			return nil, err
		}
		sims[i] = s
	}

	logrus.Infof("ensemble: running %d replicas of %d agents each", n, sims[0].Config.N())
	var g errgroup.Group
	for _, s := range sims {
		s := s
		g.Go(func() error {
			_, err := RunOne(s)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := sims[0]
	for _, s := range sims[1:] {
		if err := out.People.Merge(s.People); err != nil {
			return nil, err
		}
		if err := out.Results.Merge(s.Results); err != nil {
			return nil, err
		}
	}
	out.Config.NGuests = base.NGuests
	out.Config.NCrew = base.NCrew
	return out, nil
}
