package visual

import (
	"fmt"
	"math"
)

const maxInt = int(^uint(0) >> 1)

// GrowthPolicy sizes the per-tick workload.
type GrowthPolicy interface {
	// RawCount returns the unrounded instance count for the given elapsed
	// time and interaction state.
	RawCount(elapsedSeconds float64, in Interaction) float64
}

// ExponentialGrowth is MinInstances * 2^(Rate*elapsed), floored at
// MinInstances. It ignores interaction.
type ExponentialGrowth struct {
	Rate float64
}

// RawCount implements GrowthPolicy.
func (g ExponentialGrowth) RawCount(elapsedSeconds float64, _ Interaction) float64 {
	return maxFloat(MinInstances, MinInstances*math.Pow(2, g.Rate*elapsedSeconds))
}

// SteppedGrowth doubles once per whole elapsed second starting from 1,
// floored at MinInstances, and is boosted while the pointer is held.
type SteppedGrowth struct{}

// RawCount implements GrowthPolicy.
func (SteppedGrowth) RawCount(elapsedSeconds float64, in Interaction) float64 {
	count := maxFloat(MinInstances, math.Pow(2, math.Floor(elapsedSeconds)))
	if in.Active {
		count *= SteppedInteractionBoost
	}
	return count
}

// DefaultGrowth is the canonical growth law.
var DefaultGrowth GrowthPolicy = ExponentialGrowth{Rate: GrowthRate}

// InstanceCount rounds a raw count up, since every started instance is
// drawn. Counts beyond the int range saturate.
func InstanceCount(raw float64) int {
	c := math.Ceil(raw)
	if c >= float64(maxInt) || math.IsInf(c, 1) {
		return maxInt
	}
	if c < MinInstances || math.IsNaN(c) {
		return MinInstances
	}
	return int(c)
}

// Sizer turns elapsed time into the per-instance offset sequence.
type Sizer struct {
	Policy GrowthPolicy
}

// Compute returns a freshly allocated offset slice for this tick.
func (s Sizer) Compute(elapsedSeconds float64, in Interaction) []float64 {
	policy := s.Policy
	if policy == nil {
		policy = DefaultGrowth
	}
	return offsets(elapsedSeconds, InstanceCount(policy.RawCount(elapsedSeconds, in)))
}

// ComputeInstances applies the canonical growth law. The intensity does
// not affect the count.
func ComputeInstances(elapsedSeconds, intensity float64) []float64 {
	return Sizer{}.Compute(elapsedSeconds, Interaction{Intensity: intensity})
}

// offsets builds elapsed - i*OffsetStep for each instance. Values are not
// wrapped; shaders treat them as a periodic phase.
func offsets(elapsedSeconds float64, count int) []float64 {
	out := make([]float64, count)
	for i := range out {
		out[i] = elapsedSeconds - float64(i)*OffsetStep
	}
	return out
}

// ParseGrowth resolves a policy name: "exponential" (or empty) or "stepped".
func ParseGrowth(name string) (GrowthPolicy, error) {
	switch name {
	case "", "exponential":
		return DefaultGrowth, nil
	case "stepped":
		return SteppedGrowth{}, nil
	default:
		return nil, fmt.Errorf("unknown growth policy %q (want exponential or stepped)", name)
	}
}
