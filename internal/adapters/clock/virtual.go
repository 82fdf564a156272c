package clock

import (
	"time"

	"github.com/renato0307/cairn/internal/ports"
)

// Virtual is a ports.Scheduler driven by explicit calls to Advance.
// Nothing fires on its own, which makes timer behaviour deterministic in
// tests and in headless simulations.
type Virtual struct {
	now   time.Duration
	seq   uint64
	tasks []*virtualTask
}

type virtualTask struct {
	cancelled bool
	due       time.Duration
	every     time.Duration
	fn        func()
	seq       uint64
}

func (t *virtualTask) Cancel() {
	t.cancelled = true
}

// NewVirtual creates a virtual scheduler at time zero
func NewVirtual() *Virtual {
	return &Virtual{}
}

// Now returns the virtual time elapsed since creation
func (v *Virtual) Now() time.Duration {
	return v.now
}

// After runs fn once, d from the current virtual time
func (v *Virtual) After(d time.Duration, fn func()) ports.Task {
	if d < 0 {
		d = 0
	}
	return v.schedule(d, 0, fn)
}

// Every runs fn every d until cancelled.
// Non-positive periods are raised to one nanosecond.
func (v *Virtual) Every(d time.Duration, fn func()) ports.Task {
	if d <= 0 {
		d = time.Nanosecond
	}
	return v.schedule(d, d, fn)
}

func (v *Virtual) schedule(delay, every time.Duration, fn func()) *virtualTask {
	v.seq++
	t := &virtualTask{
		due:   v.now + delay,
		every: every,
		fn:    fn,
		seq:   v.seq,
	}
	v.tasks = append(v.tasks, t)
	return t
}

// Advance moves virtual time forward by d, firing every task that falls
// due on the way in time order. Tasks due at the same instant fire in the
// order they were scheduled. A periodic task is re-armed before its
// callback runs, so the callback may cancel it.
func (v *Virtual) Advance(d time.Duration) {
	target := v.now + d
	for {
		next := v.next(target)
		if next == nil {
			break
		}
		v.now = next.due
		if next.every > 0 {
			v.seq++
			next.due += next.every
			next.seq = v.seq
		} else {
			next.cancelled = true
		}
		next.fn()
	}
	v.now = target
	v.compact()
}

// Pending returns the number of live tasks
func (v *Virtual) Pending() int {
	v.compact()
	return len(v.tasks)
}

func (v *Virtual) next(limit time.Duration) *virtualTask {
	var best *virtualTask
	for _, t := range v.tasks {
		if t.cancelled || t.due > limit {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (v *Virtual) compact() {
	live := v.tasks[:0]
	for _, t := range v.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(v.tasks); i++ {
		v.tasks[i] = nil
	}
	v.tasks = live
}
