package ports

import "time"

// Task is a handle to scheduled work.
// Cancel is safe to call more than once and after the task has fired.
type Task interface {
	Cancel()
}

// Scheduler runs callbacks on the owner's event loop after a delay.
// Callbacks never run concurrently with each other or with the caller.
type Scheduler interface {
	// After runs fn once, d from now
	After(d time.Duration, fn func()) Task

	// Every runs fn every d until the returned task is cancelled
	Every(d time.Duration, fn func()) Task
}

// ManualClock is a Scheduler whose time only moves when told to
type ManualClock interface {
	Scheduler

	// Advance moves time forward by d, running every task that falls due
	Advance(d time.Duration)

	// Now returns the time elapsed since the clock was created
	Now() time.Duration
}
