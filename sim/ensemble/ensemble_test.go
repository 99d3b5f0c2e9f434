package ensemble

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outbreak-sim/outbreak-sim/sim"
)

func baseConfig() sim.Config {
	cfg := sim.DefaultConfig()
	cfg.NGuests = 30
	cfg.NCrew = 12
	cfg.NDays = 10
	cfg.Seed = 11
	cfg.SeedInfections = 1
	cfg.ContactsGuest = 5
	cfg.ContactsCrew = 5
	cfg.RContact = 0.1
	cfg.IncubMean, cfg.IncubStd = 3, 1
	cfg.DurMean, cfg.DurStd = 5, 2
	cfg.QuarantineDay = sim.Unset
	cfg.TestingChangeDay = sim.Unset
	return cfg
}

func testData(days int) *sim.Data {
	d := &sim.Data{}
	for i := 0; i < days; i++ {
		d.NewTests = append(d.NewTests, 4)
		d.NewPositives = append(d.NewPositives, math.NaN())
	}
	return d
}

func TestMultiRun_SingleReplicaMatchesDirectRun(t *testing.T) {
	cfg := baseConfig()
	data := testData(11)

	direct, err := sim.NewSim(cfg, data)
	require.NoError(t, err)
	want, err := direct.Run(cfg.SeedInfections)
	require.NoError(t, err)

	merged, err := MultiRun(cfg, data, 1)
	require.NoError(t, err)

	assert.Equal(t, want, merged.Results)
	assert.Equal(t, cfg.NGuests, merged.Config.NGuests)
	assert.Equal(t, cfg.NCrew, merged.Config.NCrew)
	assert.Equal(t, direct.People, merged.People)
}

func TestMultiRun_MergesReplicaResults(t *testing.T) {
	cfg := baseConfig()
	data := testData(11)
	const n = 3

	merged, err := MultiRun(cfg, data, n)
	require.NoError(t, err)

	// Reconstruct the expected merge from independently executed replicas
	// with the same derived seeds and split populations.
	var want *sim.Results
	for i := 0; i < n; i++ {
		rcfg := cfg
		rcfg.Seed = int64(sim.NewSimulationKey(cfg.Seed).Replica(i))
		rcfg.NGuests = cfg.NGuests / n
		rcfg.NCrew = cfg.NCrew / n
		s, err := sim.NewSim(rcfg, data)
		require.NoError(t, err)
		res, err := s.Run(rcfg.SeedInfections)
		require.NoError(t, err)
		if want == nil {
			want = res
		} else {
			require.NoError(t, want.Merge(res))
		}
	}

	assert.Equal(t, want, merged.Results)

	// The merged population unions every replica's agents, active and
	// removed; the split loses the integer-division remainder.
	perReplica := cfg.NGuests/n + cfg.NCrew/n
	assert.Equal(t, n*perReplica, merged.People.Len()+merged.People.RemovedLen())

	// The population-size parameters are restored for reporting.
	assert.Equal(t, cfg.NGuests, merged.Config.NGuests)
	assert.Equal(t, cfg.NCrew, merged.Config.NCrew)
}

func TestMultiRun_Deterministic(t *testing.T) {
	cfg := baseConfig()
	data := testData(11)

	m1, err := MultiRun(cfg, data, 4)
	require.NoError(t, err)
	m2, err := MultiRun(cfg, data, 4)
	require.NoError(t, err)

	assert.Equal(t, m1.Results, m2.Results)
}

func TestMultiRun_InvalidReplicaCount(t *testing.T) {
	_, err := MultiRun(baseConfig(), nil, 0)
	assert.Error(t, err)
}

func TestMultiRun_ReplicaConfigFailureAborts(t *testing.T) {
	cfg := baseConfig()
	cfg.RContact = 2 // invalid, every replica inherits it
	_, err := MultiRun(cfg, nil, 2)
	assert.Error(t, err)
}

func TestRunOne(t *testing.T) {
	cfg := baseConfig()
	s, err := sim.NewSim(cfg, nil)
	require.NoError(t, err)
	got, err := RunOne(s)
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.True(t, got.Results.Ready)
}
