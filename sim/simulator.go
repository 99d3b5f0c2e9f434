package sim

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"github.com/outbreak-sim/outbreak-sim/sim/stats"
)

// Sim is the core object that owns a population and advances it one day at
// a time. A single run is strictly sequential; each day applies, in order:
// the per-agent state/transmission pass, testing and removal, day-triggered
// interventions, and result accumulation.
//
// Population, Results, and the random stream are created fresh at the start
// of every Run. Config is copied in at construction and mutated only by
// interventions (the testing-policy change rescales Symptomatic), so a Sim
// must not be reused concurrently.
type Sim struct {
	Config  Config
	Data    *Data
	People  *Population
	Results *Results

	rng   *rand.Rand
	runID uuid.UUID
}

// NewSim validates the configuration and prepares a run against the given
// observed data (which may be nil: no testing occurs and likelihood is
// zero). The population is created by Run, not here.
func NewSim(cfg Config, data *Data) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Sim{
		Config: cfg,
		Data:   data,
		runID:  uuid.New(),
	}, nil
}

// reset seeds the run's random stream and builds a fresh population and
// results record. Crew are created first, then guests; the first
// seedInfections agents in that order are forced infectious.
func (s *Sim) reset(seedInfections int) error {
	if seedInfections < 0 || seedInfections > s.Config.N() {
		return fmt.Errorf("sim: seed infections %d outside population of %d", seedInfections, s.Config.N())
	}
	s.rng = NewRNG(NewSimulationKey(s.Config.Seed))
	s.Results = NewResults(s.Config.NPts())
	s.People = NewPopulation()

	for i := 0; i < s.Config.N(); i++ {
		crew := i < s.Config.NCrew
		age, sex := AgeSex(s.rng, crew)
		p := NewPerson(&s.Config, s.newUID(), age, sex, crew)
		if err := s.People.Add(p); err != nil {
			return err
		}
	}
	for i := 0; i < seedInfections; i++ {
		s.People.At(i).SeedInfection()
	}
	return nil
}

// newUID draws a 9-digit identifier from the run stream, redrawing on the
// rare collision so no agent is ever silently replaced.
func (s *Sim) newUID() string {
	for {
		uid := fmt.Sprintf("%09d", s.rng.Intn(1_000_000_000))
		if !s.People.Has(uid) {
			return uid
		}
	}
}

// Run executes the simulation and returns the finalized results. The
// population is rebuilt from the configured seed, so two runs of the same
// configuration produce identical results.
func (s *Sim) Run(seedInfections int) (*Results, error) {
	start := time.Now()
	if err := s.reset(seedInfections); err != nil {
		return nil, err
	}
	logrus.Infof("[run %s] starting: %d agents, %d days, seed %d",
		s.runID, s.People.Len(), s.Config.NDays, s.Config.Seed)

	for t := 0; t <= s.Config.NDays; t++ {
		s.step(t)
	}
	s.Results.Finalize()

	logrus.Infof("[run %s] finished in %s", s.runID, time.Since(start))
	return s.Results, nil
}

// step advances the simulation by one day. Agents are processed in
// insertion order with immediate mutation: an agent exposed by an earlier
// peer in this pass is visited later in the same pass and may itself become
// infectious the same day. Do not snapshot; the ordering dependence is part
// of the model's observable behavior.
func (s *Sim) step(t int) {
	logrus.Infof("[run %s] day %d of %d", s.runID, t, s.Config.NDays)
	res := s.Results

	// Test-selection weights, aligned with iteration order. Each agent's
	// weight is fixed at the moment it is visited, before any state change:
	// an agent that recovers during its own visit keeps the symptomatic
	// weight for today's testing.
	weights := make([]float64, 0, s.People.Len())

	for i := 0; i < s.People.Len(); i++ {
		p := s.People.At(i)

		if p.Infectious {
			weights = append(weights, s.Config.Symptomatic)
		} else {
			weights = append(weights, 1.0)
		}

		if p.Exposed {
			res.NExposed[t]++
			if !p.Infectious && p.DayInfectious != Unset && t >= p.DayInfectious {
				p.Infectious = true
				logrus.Debugf("person %s became infectious", p.UID)
			}
		}

		if p.Infectious {
			// Recovery is checked before transmission: an agent recovering
			// today contributes no contacts.
			if p.DayRecovers != Unset && t >= p.DayRecovers {
				p.Exposed = false
				p.Infectious = false
				p.Recovered = true
				res.Recoveries[t]++
			} else {
				res.NInfectious[t]++
				s.transmit(p, t)
			}
		}

		if p.Recovered {
			res.NRecovered[t]++
		}
	}

	// Active size before today's diagnosis removals; the susceptible count
	// is defined against this, so susceptible + exposed always reconstructs
	// the pre-removal population.
	activeBefore := s.People.Len()

	s.test(t, weights)

	if t == s.Config.QuarantineDay {
		s.quarantine()
	}
	if t == s.Config.TestingChangeDay {
		s.changeTesting()
	}
	if t == s.Config.EvacuationDay {
		s.evacuate(t)
	}

	res.T[t] = t
	res.NSusceptible[t] = activeBefore - res.NExposed[t]
}

// transmit draws the agent's daily contact count from Poisson(contact
// rate), selects that many targets positionally over the current active
// population (repeats allowed, self included), and exposes each
// not-yet-exposed target that passes the per-contact Bernoulli trial.
func (s *Sim) transmit(p *Person, t int) {
	k := stats.Poisson(s.rng, p.Contacts)
	for _, idx := range stats.ChooseIndices(s.rng, s.People.Len(), k) {
		if !stats.Bernoulli(s.rng, s.Config.RContact) {
			continue
		}
		target := s.People.At(idx)
		if target.Exposed {
			continue
		}
		s.Results.Infections[t]++
		target.Expose(t, &s.Config, s.rng)
		logrus.Debugf("person %s infected person %s", p.UID, target.UID)
	}
}

// test runs the day's diagnostic testing: it takes the day's capacity from
// the observed series (skipping out-of-range, unobserved, or zero days),
// selects that many distinct agents by symptomatic-biased weighted sampling
// without replacement, diagnoses each infectious selectee that passes the
// sensitivity trial, and finally moves the diagnosed off the ship. Removal
// is deferred until after the selection loop so the population is never
// mutated while being sampled.
func (s *Sim) test(t int, weights []float64) {
	capacity, ok := s.Data.TestsOn(t)
	if !ok {
		return
	}
	n := int(capacity)
	s.Results.Tests[t] = n

	var diagnosed []string
	for _, idx := range stats.ChooseWeighted(s.rng, weights, n) {
		p := s.People.At(idx)
		if p.Infectious && stats.Bernoulli(s.rng, s.Config.Sensitivity) {
			s.Results.Diagnoses[t]++
			p.Diagnosed = true
			p.DayDiagnosed = t
			diagnosed = append(diagnosed, p.UID)
			logrus.Debugf("person %s was diagnosed", p.UID)
		}
	}
	s.People.RemoveAll(diagnosed)
}

// quarantine rescales every active agent's contact rate once, on the
// configured trigger day. A single factor applies to crew and guests alike.
func (s *Sim) quarantine() {
	logrus.Infof("[run %s] implementing quarantine", s.runID)
	for i := 0; i < s.People.Len(); i++ {
		s.People.At(i).Contacts *= s.Config.QuarantineEff
	}
}

// changeTesting rescales the symptomatic test-selection weight once,
// affecting all subsequent days' testing.
func (s *Sim) changeTesting() {
	logrus.Infof("[run %s] implementing testing change", s.runID)
	s.Config.Symptomatic *= s.Config.TestingSymptoms
}

// evacuate is the scheduled hook for modeling evacuations off the vessel.
// Deliberately a no-op in this version: evacuation policies were never
// calibrated, and the hook must not alter state.
func (s *Sim) evacuate(t int) {
	logrus.Infof("[run %s] evacuation scheduled for day %d: not implemented", s.runID, t)
}
