// Package sim provides the core day-stepped simulation engine for a closed
// vessel population exposed to an infectious disease.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - person.go: the per-agent epidemiological state machine
//     (Susceptible → Exposed → Infectious → Recovered, Diagnosed terminal)
//   - population.go: the insertion-ordered active population and the
//     removed-agent side collection
//   - simulator.go: the day loop — transmission, testing and removal,
//     interventions, result accumulation
//
// # Architecture
//
// A Sim owns a Population and advances it one day at a time. Within a day,
// agents are processed in a fixed iteration order with immediate mutation:
// an agent exposed earlier in the pass is visible to agents processed later
// in the same pass. That ordering dependence is intentional and must be
// preserved; snapshotting would change observable outcomes and break
// reproducibility.
//
// Sub-packages:
//   - sim/stats/: sampling primitives and the Poisson-rate test
//   - sim/ensemble/: parallel multi-run execution and result merging
//
// All randomness flows through a single stream per run (see rng.go), seeded
// once from the configured seed before population creation.
package sim
