package core

import "time"

// FixedStep helps run updates at a steady steps-per-second rate. Elapsed wall
// time is accumulated and every whole step duration in the accumulator is
// reported as one due step.
type FixedStep struct {
	rate        int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{}
	fs.SetRate(rate)
	return fs
}

// SetRate changes the step rate. It is safe to call from the main loop; time
// already accumulated is kept.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 60
	}
	f.rate = rate
	f.step = time.Second / time.Duration(rate)
}

// Rate returns the configured steps per second.
func (f *FixedStep) Rate() int { return f.rate }

// Interval returns the duration of one step.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Advance accumulates the time since the previous call and returns how many
// steps are due. The first call only records now.
func (f *FixedStep) Advance(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta > 0 {
		f.accumulator += delta
	}
	steps := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		steps++
	}
	return steps
}

// Due is Advance using the wall clock.
func (f *FixedStep) Due() int {
	return f.Advance(time.Now())
}

// Restart drops any accumulated time so the next Advance starts fresh.
func (f *FixedStep) Restart() {
	f.accumulator = 0
	f.last = time.Time{}
}
