package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/cairn/internal/ports"
)

// taskFiredMsg is delivered when a scheduled task's delay elapses
type taskFiredMsg struct {
	id uint64
}

// TeaScheduler implements ports.Scheduler on top of the Bubble Tea event
// loop. Scheduling queues a tea.Tick command which the owning model hands
// back to the runtime via Drain; the resulting taskFiredMsg is routed to
// Fire. Callbacks therefore run inside Update, never concurrently.
type TeaScheduler struct {
	nextID  uint64
	pending []tea.Cmd
	tasks   map[uint64]*teaTask
}

type teaTask struct {
	every     time.Duration
	fn        func()
	id        uint64
	scheduler *TeaScheduler
}

// Cancel drops the task; a tick already in flight is ignored on arrival
func (t *teaTask) Cancel() {
	delete(t.scheduler.tasks, t.id)
}

// NewTeaScheduler creates an empty scheduler
func NewTeaScheduler() *TeaScheduler {
	return &TeaScheduler{tasks: make(map[uint64]*teaTask)}
}

// After runs fn once after d
func (s *TeaScheduler) After(d time.Duration, fn func()) ports.Task {
	return s.add(d, 0, fn)
}

// Every runs fn every d until cancelled
func (s *TeaScheduler) Every(d time.Duration, fn func()) ports.Task {
	return s.add(d, d, fn)
}

func (s *TeaScheduler) add(delay, every time.Duration, fn func()) *teaTask {
	s.nextID++
	t := &teaTask{
		every:     every,
		fn:        fn,
		id:        s.nextID,
		scheduler: s,
	}
	s.tasks[t.id] = t
	s.arm(t.id, delay)
	return t
}

func (s *TeaScheduler) arm(id uint64, d time.Duration) {
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return taskFiredMsg{id: id}
	}))
}

// Fire runs the task a taskFiredMsg refers to. Messages for cancelled
// tasks are dropped. Periodic tasks are re-armed before their callback.
func (s *TeaScheduler) Fire(msg taskFiredMsg) {
	t, ok := s.tasks[msg.id]
	if !ok {
		return
	}
	if t.every > 0 {
		s.arm(t.id, t.every)
	} else {
		delete(s.tasks, t.id)
	}
	t.fn()
}

// Drain returns the commands queued since the last call
func (s *TeaScheduler) Drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Pending returns the number of live tasks
func (s *TeaScheduler) Pending() int {
	return len(s.tasks)
}
