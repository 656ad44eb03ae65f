// Tracks run-wide channel statistics for final reporting.

package sim

import "fmt"

// Stats aggregates the counters accumulated over one simulation run.
// Created at run start, mutated once per event, read once at the end.
type Stats struct {
	Iterations     int64   // resolved channel events
	Successes      int64   // events with exactly one contender
	Collisions     int64   // events with two or more contenders
	TotalTime      float64 // elapsed simulated time in seconds
	SuccessfulTime float64 // time spent in collision-free transmission, seconds
	PeakWindow     int64   // largest contention window reached during the run
}

// Utilization returns the fraction of simulated time spent in successful
// transmission. Zero before any event has been resolved.
func (s *Stats) Utilization() float64 {
	if s.TotalTime == 0 {
		return 0
	}
	return s.SuccessfulTime / s.TotalTime
}

// Summary renders the single human-readable results line for a completed
// run: the inputs that produced it and the utilization to four decimals.
func (s *Stats) Summary(numNodes int, packetSizeBytes int64, duration float64, strategy Strategy) string {
	return fmt.Sprintf("nodes=%d packet=%dB duration=%gs strategy=%s utilization=%.4f",
		numNodes, packetSizeBytes, duration, strategy, s.Utilization())
}

// Print displays aggregated statistics at the end of the simulation.
func (s *Stats) Print() {
	fmt.Println("=== Simulation Statistics ===")
	fmt.Printf("Events resolved      : %d\n", s.Iterations)
	fmt.Printf("Successes            : %d\n", s.Successes)
	fmt.Printf("Collisions           : %d\n", s.Collisions)
	fmt.Printf("Simulated time       : %.6f s\n", s.TotalTime)
	fmt.Printf("Successful time      : %.6f s\n", s.SuccessfulTime)
	fmt.Printf("Peak window          : %d slots\n", s.PeakWindow)
	fmt.Printf("Utilization          : %.4f\n", s.Utilization())
}
