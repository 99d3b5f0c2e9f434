package sim

import (
	"golang.org/x/exp/rand"

	"github.com/outbreak-sim/outbreak-sim/sim/stats"
)

// Unset marks a scheduled-event day that has not been assigned.
const Unset = -1

// Person is a single agent. Static attributes are fixed at creation
// (interventions may rescale Contacts); state flags and scheduled days
// mutate in place until the agent is diagnosed or the run ends.
//
// Flag invariants: Infectious implies Exposed; recovery clears both and
// sets Recovered; Diagnosed is terminal and removes the agent from the
// active population.
type Person struct {
	UID      string
	Age      float64
	Sex      int // 0 female, 1 male
	Crew     bool
	Contacts float64 // mean daily contact count

	Exposed    bool
	Infectious bool
	Recovered  bool
	Diagnosed  bool

	// Scheduled-event days, each Unset until assigned, assigned at most
	// once, with DayExposed <= DayInfectious <= DayRecovers.
	DayExposed    int
	DayInfectious int
	DayRecovers   int
	DayDiagnosed  int
}

// NewPerson creates a susceptible agent. The contact rate comes from the
// crew or guest parameter depending on the agent's role.
func NewPerson(cfg *Config, uid string, age float64, sex int, crew bool) *Person {
	contacts := cfg.ContactsGuest
	if crew {
		contacts = cfg.ContactsCrew
	}
	return &Person{
		UID:           uid,
		Age:           age,
		Sex:           sex,
		Crew:          crew,
		Contacts:      contacts,
		DayExposed:    Unset,
		DayInfectious: Unset,
		DayRecovers:   Unset,
		DayDiagnosed:  Unset,
	}
}

// Expose transitions the agent to Exposed at day t and schedules the onset
// of infectiousness and recovery: an incubation offset and an infectious
// duration, each drawn from the configured normal distributions and rounded
// to whole days.
func (p *Person) Expose(t int, cfg *Config, rng *rand.Rand) {
	p.Exposed = true
	p.DayExposed = t
	incub := stats.NormalRound(rng, cfg.IncubMean, cfg.IncubStd)
	dur := stats.NormalRound(rng, cfg.DurMean, cfg.DurStd)
	p.DayInfectious = t + incub
	p.DayRecovers = p.DayInfectious + dur
}

// SeedInfection forces the agent directly into the Exposed and Infectious
// states at day 0, bypassing the transmission process. Seeded agents have
// no scheduled recovery day.
func (p *Person) SeedInfection() {
	p.Exposed = true
	p.Infectious = true
	p.DayExposed = 0
	p.DayInfectious = 0
}
