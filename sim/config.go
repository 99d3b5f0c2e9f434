package sim

import (
	"fmt"
)

// Config holds every parameter of a single simulation run as named fields.
// Construct with DefaultConfig and override as needed; Validate rejects
// malformed configurations before any day is simulated.
type Config struct {
	NGuests int `yaml:"n_guests"` // non-crew population size
	NCrew   int `yaml:"n_crew"`   // crew population size
	NDays   int `yaml:"n_days"`   // run length; days 0..NDays inclusive are simulated

	Seed           int64 `yaml:"seed"`
	SeedInfections int   `yaml:"seed_infections"` // agents forced infectious at day 0

	ContactsGuest float64 `yaml:"contacts_guest"` // mean daily contacts per guest
	ContactsCrew  float64 `yaml:"contacts_crew"`  // mean daily contacts per crew member
	RContact      float64 `yaml:"r_contact"`      // per-contact transmission probability

	IncubMean float64 `yaml:"incub"`     // incubation period mean, days
	IncubStd  float64 `yaml:"incub_std"` // incubation period std
	DurMean   float64 `yaml:"dur"`       // infectious duration mean, days
	DurStd    float64 `yaml:"dur_std"`   // infectious duration std

	Sensitivity float64 `yaml:"sensitivity"` // true-positive probability per test
	Symptomatic float64 `yaml:"symptomatic"` // test-selection weight for infectious agents

	// Day-triggered one-shot interventions. Unset (-1) disables a trigger.
	QuarantineDay    int     `yaml:"quarantine"`
	QuarantineEff    float64 `yaml:"quarantine_eff"`   // contact-rate multiplier at quarantine
	TestingChangeDay int     `yaml:"testing_change"`
	TestingSymptoms  float64 `yaml:"testing_symptoms"` // symptomatic-weight multiplier at change
	EvacuationDay    int     `yaml:"evacuation"`       // scheduled hook; a no-op in this version
}

// DefaultConfig returns the Diamond Princess calibration defaults.
func DefaultConfig() Config {
	return Config{
		NGuests:        2666,
		NCrew:          1045,
		NDays:          32,
		Seed:           1,
		SeedInfections: 1,

		ContactsGuest: 30,
		ContactsCrew:  30,
		RContact:      0.05,

		IncubMean: 6.0,
		IncubStd:  1.0,
		DurMean:   8.0,
		DurStd:    2.0,

		Sensitivity: 0.8,
		Symptomatic: 50,

		QuarantineDay:    15,
		QuarantineEff:    0.3,
		TestingChangeDay: 23,
		TestingSymptoms:  0.5,
		EvacuationDay:    Unset,
	}
}

// NPts returns the number of simulated time points (days 0..NDays).
func (c *Config) NPts() int {
	return c.NDays + 1
}

// N returns the total population size at seeding.
func (c *Config) N() int {
	return c.NGuests + c.NCrew
}

// Validate fails fast on precondition violations. Data-availability gaps
// are not errors (those are skipped at runtime); this catches
// configurations that could never run meaningfully.
func (c *Config) Validate() error {
	if c.NGuests < 0 || c.NCrew < 0 {
		return fmt.Errorf("config: population sizes must be non-negative (guests=%d crew=%d)", c.NGuests, c.NCrew)
	}
	if c.NDays < 1 {
		return fmt.Errorf("config: n_days must be >= 1, got %d", c.NDays)
	}
	if c.SeedInfections < 0 || c.SeedInfections > c.N() {
		return fmt.Errorf("config: seed_infections %d outside population of %d", c.SeedInfections, c.N())
	}
	if c.RContact < 0 || c.RContact > 1 {
		return fmt.Errorf("config: r_contact %v outside [0, 1]", c.RContact)
	}
	if c.Sensitivity < 0 || c.Sensitivity > 1 {
		return fmt.Errorf("config: sensitivity %v outside [0, 1]", c.Sensitivity)
	}
	if c.ContactsGuest < 0 || c.ContactsCrew < 0 {
		return fmt.Errorf("config: contact rates must be non-negative")
	}
	if c.IncubStd < 0 || c.DurStd < 0 {
		return fmt.Errorf("config: distribution std must be non-negative")
	}
	if c.Symptomatic <= 0 {
		return fmt.Errorf("config: symptomatic weight must be positive, got %v", c.Symptomatic)
	}
	if c.QuarantineDay != Unset && c.TestingChangeDay != Unset && c.TestingChangeDay < c.QuarantineDay {
		return fmt.Errorf("config: trigger days must be monotonic (quarantine=%d testing_change=%d)",
			c.QuarantineDay, c.TestingChangeDay)
	}
	return nil
}
