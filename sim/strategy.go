package sim

import "fmt"

// Strategy identifies one of the five contention-window backoff strategies.
// The numeric values are part of the external interface (parameter files
// and CLI flags use them directly).
type Strategy int

const (
	StrategyBinaryExponential   Strategy = 1 // double on collision, reset on success
	StrategyLinear              Strategy = 2 // +2 on collision, hold on success
	StrategyExponentialReset    Strategy = 3 // double on collision, hold on success
	StrategyLinearDecrease      Strategy = 4 // +2 on collision, -2 on success
	StrategyExponentialDecrease Strategy = 5 // double on collision, -2 on success
)

// Valid reports whether s is one of the enumerated strategies.
func (s Strategy) Valid() bool {
	return s >= StrategyBinaryExponential && s <= StrategyExponentialDecrease
}

// String returns the strategy's short display name.
func (s Strategy) String() string {
	switch s {
	case StrategyBinaryExponential:
		return "binary-exponential"
	case StrategyLinear:
		return "linear"
	case StrategyExponentialReset:
		return "exponential-reset"
	case StrategyLinearDecrease:
		return "linear-decrease"
	case StrategyExponentialDecrease:
		return "exponential-decrease"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// BackoffPolicy updates the shared contention window after each channel
// event. Implementations are pure: same window in, same window out, no
// state beyond construction-time parameters. The engine owns the window
// and passes it through by value.
type BackoffPolicy interface {
	// OnSuccess returns the window after a collision-free transmission.
	OnSuccess(window int64) int64
	// OnCollision returns the window after two or more nodes collide.
	// No clamp is applied on this path.
	OnCollision(window int64) int64
	Name() string
}

// binaryExponential resets to the minimum window on success and doubles
// on collision (classic BEB).
type binaryExponential struct {
	minWindow int64
}

func (p binaryExponential) OnSuccess(int64) int64          { return p.minWindow }
func (p binaryExponential) OnCollision(window int64) int64 { return window * 2 }
func (p binaryExponential) Name() string                   { return StrategyBinaryExponential.String() }

// linear holds the window on success and grows it linearly on collision.
type linear struct{}

func (linear) OnSuccess(window int64) int64   { return window }
func (linear) OnCollision(window int64) int64 { return window + 2 }
func (linear) Name() string                   { return StrategyLinear.String() }

// exponentialReset doubles on collision; the success branch is a no-op
// (its reset behavior is triggered outside this path).
type exponentialReset struct{}

func (exponentialReset) OnSuccess(window int64) int64   { return window }
func (exponentialReset) OnCollision(window int64) int64 { return window * 2 }
func (exponentialReset) Name() string                   { return StrategyExponentialReset.String() }

// linearDecrease shrinks by 2 on success, floored at 2, and grows
// linearly on collision.
type linearDecrease struct{}

func (linearDecrease) OnSuccess(window int64) int64   { return shrinkWindow(window) }
func (linearDecrease) OnCollision(window int64) int64 { return window + 2 }
func (linearDecrease) Name() string                   { return StrategyLinearDecrease.String() }

// exponentialDecrease shrinks by 2 on success, floored at 2, and doubles
// on collision.
type exponentialDecrease struct{}

func (exponentialDecrease) OnSuccess(window int64) int64   { return shrinkWindow(window) }
func (exponentialDecrease) OnCollision(window int64) int64 { return window * 2 }
func (exponentialDecrease) Name() string                   { return StrategyExponentialDecrease.String() }

// shrinkWindow applies the shared decrease rule: subtract 2, flooring the
// result at 2. Keeps the draw range [0, w] well-defined on every path.
func shrinkWindow(window int64) int64 {
	window -= 2
	if window < 2 {
		return 2
	}
	return window
}

// NewBackoffPolicy creates the policy variant for the given strategy.
// Strategy validity is enforced by Config.Validate before any policy is
// constructed, so an unknown value here is a programming error.
func NewBackoffPolicy(strategy Strategy, minWindow int64) BackoffPolicy {
	switch strategy {
	case StrategyBinaryExponential:
		return binaryExponential{minWindow: minWindow}
	case StrategyLinear:
		return linear{}
	case StrategyExponentialReset:
		return exponentialReset{}
	case StrategyLinearDecrease:
		return linearDecrease{}
	case StrategyExponentialDecrease:
		return exponentialDecrease{}
	default:
		panic(fmt.Sprintf("unknown backoff strategy %d; valid strategies: [1, 5]", strategy))
	}
}
