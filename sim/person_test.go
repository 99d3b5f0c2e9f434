package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPerson_ContactRateByRole(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ContactsCrew = 20
	cfg.ContactsGuest = 10

	crew := NewPerson(&cfg, "000000001", 30, 0, true)
	guest := NewPerson(&cfg, "000000002", 70, 1, false)

	assert.Equal(t, 20.0, crew.Contacts)
	assert.Equal(t, 10.0, guest.Contacts)
	assert.Equal(t, Unset, crew.DayExposed)
	assert.Equal(t, Unset, crew.DayInfectious)
	assert.Equal(t, Unset, crew.DayRecovers)
	assert.Equal(t, Unset, crew.DayDiagnosed)
	assert.False(t, crew.Exposed)
}

func TestExpose_SchedulesMonotoneDays(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IncubMean, cfg.IncubStd = 6, 0
	cfg.DurMean, cfg.DurStd = 8, 0
	rng := NewRNG(NewSimulationKey(1))

	p := NewPerson(&cfg, "000000001", 70, 0, false)
	p.Expose(3, &cfg, rng)

	assert.True(t, p.Exposed)
	assert.False(t, p.Infectious)
	assert.Equal(t, 3, p.DayExposed)
	assert.Equal(t, 9, p.DayInfectious)
	assert.Equal(t, 17, p.DayRecovers)
}

func TestExpose_OffsetsNeverNegative(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IncubMean, cfg.IncubStd = 0, 0.1
	cfg.DurMean, cfg.DurStd = 0, 0.1
	rng := NewRNG(NewSimulationKey(1))

	for i := 0; i < 200; i++ {
		p := NewPerson(&cfg, "000000001", 70, 0, false)
		p.Expose(5, &cfg, rng)
		assert.GreaterOrEqual(t, p.DayInfectious, p.DayExposed)
		assert.GreaterOrEqual(t, p.DayRecovers, p.DayInfectious)
	}
}

func TestSeedInfection(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPerson(&cfg, "000000001", 70, 0, false)
	p.SeedInfection()

	assert.True(t, p.Exposed)
	assert.True(t, p.Infectious)
	assert.Equal(t, 0, p.DayExposed)
	assert.Equal(t, 0, p.DayInfectious)
	// Seeded agents have no scheduled recovery.
	assert.Equal(t, Unset, p.DayRecovers)
}
