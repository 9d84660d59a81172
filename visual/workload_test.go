package visual

import (
	"math"
	"testing"
)

// TestComputeInstances_NeverBelowFloor tests that the count never drops below MinInstances
func TestComputeInstances_NeverBelowFloor(t *testing.T) {
	for _, elapsed := range []float64{0, 0.01, 0.5, 1, 2.5, 7} {
		if n := len(ComputeInstances(elapsed, 0)); n < MinInstances {
			t.Errorf("elapsed %f: expected at least %d instances, got %d", elapsed, MinInstances, n)
		}
	}
}

// TestComputeInstances_AtStart tests that the count is exactly MinInstances at t=0
func TestComputeInstances_AtStart(t *testing.T) {
	if n := len(ComputeInstances(0, 0)); n != MinInstances {
		t.Errorf("Expected %d instances at t=0, got %d", MinInstances, n)
	}
}

// TestComputeInstances_OneSecond tests the growth after one second
func TestComputeInstances_OneSecond(t *testing.T) {
	want := int(math.Ceil(MinInstances * math.Pow(2, 0.2)))
	got := len(ComputeInstances(1.0, 0))

	if got != want {
		t.Errorf("Expected %d instances at t=1s, got %d", want, got)
	}
	if got < 48000 || got > 48200 {
		t.Errorf("Expected roughly 48k instances at t=1s, got %d", got)
	}
}

// TestComputeInstances_Monotonic tests that the count never shrinks as time passes
func TestComputeInstances_Monotonic(t *testing.T) {
	prev := 0
	for elapsed := 0.0; elapsed <= 6; elapsed += 0.1 {
		n := len(ComputeInstances(elapsed, 0))
		if n < prev {
			t.Fatalf("elapsed %f: count dropped from %d to %d", elapsed, prev, n)
		}
		prev = n
	}
}

// TestComputeInstances_IgnoresIntensity tests that intensity does not change the count
func TestComputeInstances_IgnoresIntensity(t *testing.T) {
	a := len(ComputeInstances(3, 0))
	b := len(ComputeInstances(3, 1))
	if a != b {
		t.Errorf("Expected intensity not to change count, got %d and %d", a, b)
	}
}

// TestComputeInstances_OffsetsExact tests that offsets step back 0.05s per instance without wrapping
func TestComputeInstances_OffsetsExact(t *testing.T) {
	elapsed := 2.75
	offsets := ComputeInstances(elapsed, 0)

	for i, got := range offsets {
		want := elapsed - float64(i)*0.05
		if got != want {
			t.Fatalf("offset[%d]: expected %v, got %v", i, want, got)
		}
	}
	if last := offsets[len(offsets)-1]; last >= 0 {
		t.Errorf("Expected trailing offsets to go negative, got %f", last)
	}
}

// TestComputeInstances_FreshSlice tests that every call returns a new slice
func TestComputeInstances_FreshSlice(t *testing.T) {
	a := ComputeInstances(1, 0)
	b := ComputeInstances(1, 0)
	a[0] = -999

	if b[0] == -999 {
		t.Error("Expected each call to return a new slice")
	}
}

// TestInstanceCount_Rounding tests rounding, flooring and saturation of raw counts
func TestInstanceCount_Rounding(t *testing.T) {
	tests := []struct {
		name string
		raw  float64
		want int
	}{
		{"Exact floor", MinInstances, MinInstances},
		{"Fraction rounds up", MinInstances + 0.1, MinInstances + 1},
		{"Below floor", 10, MinInstances},
		{"NaN", math.NaN(), MinInstances},
		{"Infinite saturates", math.Inf(1), maxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InstanceCount(tt.raw); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

// TestSteppedGrowth_FloorDominatesEarly tests that the stepped policy stays at the floor until 2^t exceeds it
func TestSteppedGrowth_FloorDominatesEarly(t *testing.T) {
	s := SteppedGrowth{}
	if got := s.RawCount(10.9, Interaction{}); got != MinInstances {
		t.Errorf("Expected floor before 2^16 passes it, got %f", got)
	}
	if got := s.RawCount(16.2, Interaction{}); got != 65536 {
		t.Errorf("Expected 2^16 at t=16.2, got %f", got)
	}
}

// TestSteppedGrowth_InteractionBoost tests the boost while the pointer is held
func TestSteppedGrowth_InteractionBoost(t *testing.T) {
	s := SteppedGrowth{}
	idle := s.RawCount(3, Interaction{})
	held := s.RawCount(3, Interaction{Active: true})

	if held != idle*1.5 {
		t.Errorf("Expected held count %f, got %f", idle*1.5, held)
	}
}

// TestSizer_UsesPolicy tests that the sizer delegates to its policy
func TestSizer_UsesPolicy(t *testing.T) {
	s := Sizer{Policy: SteppedGrowth{}}
	n := len(s.Compute(3, Interaction{Active: true}))

	if n != int(math.Ceil(MinInstances*1.5)) {
		t.Errorf("Expected %d instances, got %d", int(math.Ceil(MinInstances*1.5)), n)
	}
}

// TestParseGrowth tests growth policy names
func TestParseGrowth(t *testing.T) {
	tests := []struct {
		name    string
		want    GrowthPolicy
		wantErr bool
	}{
		{"", DefaultGrowth, false},
		{"exponential", DefaultGrowth, false},
		{"stepped", SteppedGrowth{}, false},
		{"linear", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGrowth(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseGrowth(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseGrowth(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
