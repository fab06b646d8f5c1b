package stage

import "time"

// Clock returns the current time.
type Clock func() time.Time

// SystemClock reads the wall clock.
var SystemClock Clock = time.Now

// Runtime accumulates the time elapsed between successive timestamps.
//
// The first Advance only records its timestamp and returns the initial
// elapsed value. Every later call adds ts - last (which may be negative for
// out-of-order input) and returns the new total.
type Runtime struct {
	last    time.Time
	elapsed time.Duration
	seeded  bool
}

// NewRuntime creates a Runtime starting from seed with elapsed already counted.
// The seed is replaced by the first timestamp passed to Advance.
func NewRuntime(seed time.Time, elapsed time.Duration) *Runtime {
	return &Runtime{last: seed, elapsed: elapsed}
}

// Advance implements Stage.
func (r *Runtime) Advance(ts time.Time) (time.Duration, bool) {
	if r.seeded {
		r.elapsed += ts.Sub(r.last)
	}
	r.seeded = true
	r.last = ts
	return r.elapsed, true
}

// Elapsed returns the accumulated duration without advancing.
func (r *Runtime) Elapsed() time.Duration {
	return r.elapsed
}

// Timestamp creates a producer stage that reads clock on every call.
func Timestamp(clock Clock) *Operator[Void, time.Time] {
	if clock == nil {
		clock = SystemClock
	}
	return Producer(func() time.Time { return clock() })
}

// TimeKeeper tracks elapsed time by feeding clock readings into a Runtime.
type TimeKeeper struct {
	clock   Clock
	op      *Operator[Void, time.Duration]
	elapsed time.Duration
}

// NewTimeKeeper creates a TimeKeeper that starts counting from initial.
func NewTimeKeeper(clock Clock, initial time.Duration) *TimeKeeper {
	if clock == nil {
		clock = SystemClock
	}
	tk := &TimeKeeper{clock: clock}
	tk.op = tk.chain(initial)
	return tk
}

func (tk *TimeKeeper) chain(initial time.Duration) *Operator[Void, time.Duration] {
	return Compose[Void, time.Time, time.Duration](Timestamp(tk.clock), NewRuntime(time.Time{}, initial))
}

// Start seeds the keeper with the current time and returns the elapsed total.
func (tk *TimeKeeper) Start() time.Duration {
	tk.elapsed, _ = tk.op.Advance(Void{})
	return tk.elapsed
}

// Update adds the time since the previous reading and returns the new total.
func (tk *TimeKeeper) Update() time.Duration {
	tk.elapsed, _ = tk.op.Advance(Void{})
	return tk.elapsed
}

// Reset discards the accumulated time. The next call seeds again.
func (tk *TimeKeeper) Reset() {
	tk.op = tk.chain(0)
	tk.elapsed = 0
}

// Elapsed returns the total observed by the last Start or Update.
func (tk *TimeKeeper) Elapsed() time.Duration {
	return tk.elapsed
}
