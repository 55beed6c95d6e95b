// File: mixin.go
// Role: Mixin - the timeout/abort cooperative-cancellation primitive.
package interruptible

import (
	"sync"
	"sync/atomic"
	"time"
)

// Mixin is embedded by every Runner and Solver that needs timeout/abort
// semantics. The zero value is ready to use.
type Mixin struct {
	timeoutExpired atomic.Bool
	aborted        atomic.Bool

	mu      sync.Mutex
	timer   *time.Timer
	onTimer func()
}

// OnTimeoutExpired registers the hook invoked by the watcher goroutine when
// the armed timeout elapses. Typically wired to propagate Interrupt() into
// a nested Runner (e.g. a Solver propagating its own timeout into the
// Runner it drives).
func (m *Mixin) OnTimeoutExpired(fn func()) {
	m.mu.Lock()
	m.onTimer = fn
	m.mu.Unlock()
}

// Go arms a watcher for timeout (if positive) and runs fn, which must poll
// TimeoutExpired/Aborted cooperatively and return promptly once either is
// set. The watcher is disarmed when fn returns, regardless of outcome.
func (m *Mixin) Go(timeout time.Duration, fn func() error) error {
	m.Reset()
	if timeout > 0 {
		m.mu.Lock()
		m.timer = time.AfterFunc(timeout, func() {
			m.timeoutExpired.Store(true)
			m.mu.Lock()
			hook := m.onTimer
			m.mu.Unlock()
			if hook != nil {
				hook()
			}
		})
		m.mu.Unlock()
	}
	err := fn()
	m.mu.Lock()
	if m.timer != nil {
		m.timer.Stop()
	}
	m.mu.Unlock()
	return err
}

// Interrupt sets the timeout-expired flag as if the watcher had fired. Used
// by an enclosing Solver to propagate its own timeout into a Runner.
func (m *Mixin) Interrupt() { m.timeoutExpired.Store(true) }

// Abort sets the hard abort flag, indicating unrecoverable termination.
func (m *Mixin) Abort() { m.aborted.Store(true) }

// TimeoutExpired reports whether the timeout has fired (or Interrupt was
// called).
func (m *Mixin) TimeoutExpired() bool { return m.timeoutExpired.Load() }

// Aborted reports whether Abort was called.
func (m *Mixin) Aborted() bool { return m.aborted.Load() }

// Reset clears both flags and disarms any pending watcher, preparing the
// Mixin for a new Go call.
func (m *Mixin) Reset() {
	m.timeoutExpired.Store(false)
	m.aborted.Store(false)
	m.mu.Lock()
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.mu.Unlock()
}
