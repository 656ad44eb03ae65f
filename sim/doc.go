// Package sim provides the core discrete-event simulation engine for the
// shared-medium contention backoff simulator.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - strategy.go: the five contention-window backoff policies
//   - collision.go: minimum-countdown scan and tie (collision) detection
//   - simulator.go: per-run state, the event loop, and stats accumulation
//
// # Architecture
//
// A run is strictly sequential: the Simulator owns all mutable state
// (countdowns, contention window, stats) and resolves one event per Step.
// Callers that sweep strategies or node counts run independent Simulator
// instances; there is no cross-run shared state.
//
// Randomness is explicit. Every run derives its generator from a
// SimulationKey, so identical key and configuration reproduce identical
// stats bit for bit.
package sim
