package chip8

import "time"

// maxTimerCatchUp limits the ticks delivered at once after the caller stalled,
// for example while a window is dragged.
const maxTimerCatchUp = 4

// TimerClock decides when the delay and sound timers are due to count down.
// It measures wall-clock time only, so the timer rate does not depend on how
// many instructions run in between.
type TimerClock struct {
	interval time.Duration
	last     time.Time
}

// NewTimerClock returns a clock ticking at frequency Hz, starting at now.
// A frequency of zero or less selects TimerFrequency.
func NewTimerClock(now time.Time, frequency int) *TimerClock {
	if frequency <= 0 {
		frequency = TimerFrequency
	}
	return &TimerClock{
		interval: time.Second / time.Duration(frequency),
		last:     now,
	}
}

// Ticks returns how many tick intervals passed since the previous tick and
// advances the baseline by that many intervals, so time left over from an
// early or late call counts toward the next tick. A backlog of more than
// maxTimerCatchUp intervals is dropped and the baseline moves to now.
func (t *TimerClock) Ticks(now time.Time) int {
	elapsed := now.Sub(t.last)
	if elapsed < t.interval {
		return 0
	}

	n := int(elapsed / t.interval)
	if n > maxTimerCatchUp {
		t.last = now
		return 1
	}
	t.last = t.last.Add(time.Duration(n) * t.interval)
	return n
}

// Reset moves the baseline to now without ticking.
func (t *TimerClock) Reset(now time.Time) {
	t.last = now
}

func (t *TimerClock) Interval() time.Duration {
	return t.interval
}

// TickTimers counts the delay and sound timers down by one if they are not
// already zero.
func (vm *VM) TickTimers() {
	if vm.CPU.DelayTimer > 0 {
		vm.CPU.DelayTimer--
	}
	if vm.CPU.SoundTimer > 0 {
		vm.CPU.SoundTimer--
	}
}

// SoundActive reports whether the tone should be audible.
func (vm *VM) SoundActive() bool {
	return vm.CPU.SoundTimer != 0
}
