package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig marks configuration validation failures. Detected once,
// before any simulation state is constructed; never recoverable.
var ErrInvalidConfig = errors.New("invalid simulation config")

// Config holds everything a single simulation run needs. Immutable after
// Validate; the engine copies what it mutates into per-run state.
type Config struct {
	NumNodes        int      // contending stations on the shared medium (must be > 0)
	PacketSizeBytes int64    // fixed packet size for the whole run (must be > 0)
	Duration        float64  // total simulated time in seconds (must be > 0)
	Strategy        Strategy // backoff strategy, one of the five enumerated values
	DataRateBps     float64  // channel data rate in bits per second (must be > 0)
	SlotDuration    float64  // backoff slot length in seconds (must be > 0)
	MinWindow       int64    // minimum contention window in slots (must be > 0)
}

// PacketTransmissionTime returns the time in seconds one packet occupies
// the channel at the configured data rate.
func (c Config) PacketTransmissionTime() float64 {
	return float64(c.PacketSizeBytes) * 8 / c.DataRateBps
}

// Validate checks every numeric field and the strategy range. The engine
// refuses to run with an unvalidated config, so malformed input from any
// parameter source fails closed here.
func (c Config) Validate() error {
	if c.NumNodes <= 0 {
		return fmt.Errorf("%w: num nodes must be > 0, got %d", ErrInvalidConfig, c.NumNodes)
	}
	if c.PacketSizeBytes <= 0 {
		return fmt.Errorf("%w: packet size must be > 0 bytes, got %d", ErrInvalidConfig, c.PacketSizeBytes)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration must be > 0 seconds, got %g", ErrInvalidConfig, c.Duration)
	}
	if !c.Strategy.Valid() {
		return fmt.Errorf("%w: strategy must be in [%d, %d], got %d",
			ErrInvalidConfig, StrategyBinaryExponential, StrategyExponentialDecrease, c.Strategy)
	}
	if c.DataRateBps <= 0 {
		return fmt.Errorf("%w: data rate must be > 0 bps, got %g", ErrInvalidConfig, c.DataRateBps)
	}
	if c.SlotDuration <= 0 {
		return fmt.Errorf("%w: slot duration must be > 0 seconds, got %g", ErrInvalidConfig, c.SlotDuration)
	}
	if c.MinWindow <= 0 {
		return fmt.Errorf("%w: min contention window must be > 0 slots, got %d", ErrInvalidConfig, c.MinWindow)
	}
	return nil
}
