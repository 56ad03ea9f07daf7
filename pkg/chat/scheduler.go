package chat

import (
	"sync"
	"time"
)

// Scheduler runs fn once after delay. Scheduled work is fire-and-forget:
// it cannot be cancelled and is not ordered against other scheduled work.
type Scheduler interface {
	After(delay time.Duration, fn func())
}

// TimerScheduler schedules with time.AfterFunc.
type TimerScheduler struct{}

func (TimerScheduler) After(delay time.Duration, fn func()) {
	time.AfterFunc(delay, fn)
}

// ImmediateScheduler runs fn synchronously, ignoring the delay.
type ImmediateScheduler struct{}

func (ImmediateScheduler) After(_ time.Duration, fn func()) {
	fn()
}

// ManualScheduler queues work until it is explicitly run.
type ManualScheduler struct {
	mu      sync.Mutex
	pending []func()
	delays  []time.Duration
}

func (m *ManualScheduler) After(delay time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, fn)
	m.delays = append(m.delays, delay)
}

// Pending returns how many callbacks are waiting.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Delays returns the delay requested by each queued callback, in queue order.
func (m *ManualScheduler) Delays() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Duration, len(m.delays))
	copy(out, m.delays)
	return out
}

// RunAt runs and removes the i-th pending callback.
func (m *ManualScheduler) RunAt(i int) {
	m.mu.Lock()
	fn := m.pending[i]
	m.pending = append(m.pending[:i], m.pending[i+1:]...)
	m.delays = append(m.delays[:i], m.delays[i+1:]...)
	m.mu.Unlock()

	fn()
}

// Flush runs every pending callback in queue order.
func (m *ManualScheduler) Flush() {
	for m.Pending() > 0 {
		m.RunAt(0)
	}
}
