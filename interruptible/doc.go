// Package interruptible provides the cooperative timeout/abort mixin
// shared by every long-running operation in the engine (Runner.Go,
// Solver.Solve).
//
// Scheduling is synchronous: the caller blocks inside Mixin.Go while a
// single watcher goroutine (armed via time.AfterFunc, mirroring the
// teacher's deterministic-seed-factory style of centralizing a single
// concern in one small file) waits out the timeout. On expiry it sets an
// atomic flag and invokes the configured OnTimeoutExpired hook so nested
// runners can be interrupted in turn. The protected loop observes the flag
// cooperatively between iterations; nothing is preempted mid-iteration.
package interruptible
