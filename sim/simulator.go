// sim/simulator.go
package sim

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Simulator is the core object that holds simulated time, per-node
// countdown state, the shared contention window, and the event loop.
// State is exported so tests can seed specific contention scenarios;
// everything here belongs to a single run and a single goroutine.
type Simulator struct {
	Config Config
	Policy BackoffPolicy
	// Countdowns holds each node's remaining backoff in whole slot units.
	// Draws are integer slot counts and decrements are whole slots, so
	// integer state stays exact for tie detection.
	Countdowns []int64
	// Window is the contention window shared across all nodes. Only the
	// policy updates it, via explicit pass-by-value calls.
	Window int64
	Stats  *Stats

	rng *rand.Rand
}

// NewSimulator builds a run from a validated config and a reproducibility
// key. Each node's initial countdown is drawn independently and uniformly
// from [0, MinWindow]; the window starts at MinWindow.
func NewSimulator(cfg Config, key SimulationKey) *Simulator {
	s := &Simulator{
		Config:     cfg,
		Policy:     NewBackoffPolicy(cfg.Strategy, cfg.MinWindow),
		Countdowns: make([]int64, cfg.NumNodes),
		Window:     cfg.MinWindow,
		Stats:      &Stats{PeakWindow: cfg.MinWindow},
		rng:        key.Rand(""),
	}
	for i := range s.Countdowns {
		s.Countdowns[i] = drawBackoff(s.rng, cfg.MinWindow)
	}
	return s
}

// Step resolves exactly one channel event: find the minimum countdown and
// its contender set, apply the success or collision branch, then advance
// global time by one packet-transmission quantum and decrement every node
// not involved in the event by one slot.
//
// Time always advances by the fixed packet-transmission time regardless of
// how small the winning countdown was. This mirrors the published model's
// behavior and is kept for compatibility with its utilization figures.
func (s *Simulator) Step() {
	value, contenders := NextEvent(s.Countdowns)

	if len(contenders) == 1 {
		winner := contenders[0]
		logrus.Tracef("[t=%.6f] success: node %d (countdown %d slots)", s.Stats.TotalTime, winner, value)
		s.Stats.Successes++
		s.Stats.SuccessfulTime += s.Config.PacketTransmissionTime()
		s.Window = s.Policy.OnSuccess(s.Window)
		s.Countdowns[winner] = drawBackoff(s.rng, s.Window)
	} else {
		logrus.Tracef("[t=%.6f] collision: nodes %v (countdown %d slots)", s.Stats.TotalTime, contenders, value)
		s.Stats.Collisions++
		s.Window = s.Policy.OnCollision(s.Window)
		for _, n := range contenders {
			s.Countdowns[n] = drawBackoff(s.rng, s.Window)
		}
	}
	if s.Window > s.Stats.PeakWindow {
		s.Stats.PeakWindow = s.Window
	}

	s.Stats.TotalTime += s.Config.PacketTransmissionTime()

	// Contenders were just redrawn and sit out this decrement.
	involved := make(map[int]bool, len(contenders))
	for _, n := range contenders {
		involved[n] = true
	}
	for i := range s.Countdowns {
		if !involved[i] {
			s.Countdowns[i]--
		}
	}

	s.Stats.Iterations++
}

// Run drives the event loop until accumulated simulated time reaches the
// configured duration, then returns the channel utilization and the full
// stats. No early exit or convergence criterion exists.
func (s *Simulator) Run() (float64, *Stats) {
	for s.Stats.TotalTime < s.Config.Duration {
		s.Step()
	}
	logrus.Debugf("[t=%.6f] simulation ended after %d events (%d successes, %d collisions)",
		s.Stats.TotalTime, s.Stats.Iterations, s.Stats.Successes, s.Stats.Collisions)
	return s.Stats.Utilization(), s.Stats
}
