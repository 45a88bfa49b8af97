package convert

import (
	"testing"
	"time"
)

func TestToInstantEpoch(t *testing.T) {
	got := ToInstant(0)
	want := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ToInstant(0) = %v, want %v", got, want)
	}
}

func TestToInstantScalingLinear(t *testing.T) {
	epoch := ToInstant(0)
	single := ToInstant(1000).Sub(epoch)
	double := ToInstant(2000).Sub(epoch)
	if double != 2*single {
		t.Errorf("doubling ticks: got %v, want %v", double, 2*single)
	}
	if single != 100*time.Microsecond {
		t.Errorf("1000 ticks = %v, want 100µs", single)
	}
}

func TestToInstantModernDate(t *testing.T) {
	want := time.Date(2023, 5, 15, 10, 30, 0, 0, time.UTC)
	ticks := (want.Unix() - tickEpochUnix) * ticksPerSecond
	got := ToInstant(ticks)
	if !got.Equal(want) {
		t.Errorf("ToInstant(%d) = %v, want %v", ticks, got, want)
	}
}

func TestToInstantSubSecond(t *testing.T) {
	// 100ns resolution survives the conversion
	got := ToInstant(7)
	want := time.Date(1, 1, 1, 0, 0, 0, 700, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ToInstant(7) = %v, want %v", got, want)
	}
}
