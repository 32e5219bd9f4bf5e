// Cooperative time-triggered scheduler.
//
// A periodic tick interrupt advances per-task counters and raises READY
// flags; the main loop dispatches READY tasks in table order, each one
// synchronously to completion. There is no preemption between tasks.
package core

import "sync/atomic"

// TaskState is the lifecycle state of a scheduled task.
type TaskState uint32

const (
	TaskStandby TaskState = iota // waiting for its period to elapse
	TaskReady                    // period elapsed, waiting for dispatch
	TaskExecute                  // handler running in the main-loop context
)

// Task is one periodic entry in the scheduler table. Period is in ticks
// and must be positive. Handler runs to completion in the main-loop
// context; a handler that never returns stalls the whole table.
type Task struct {
	Handler func()
	Period  uint32

	// state and elapsed are shared between the tick interrupt and the
	// dispatcher. Access only through sync/atomic: the interrupt writes
	// both fields, the dispatcher writes state only.
	state   uint32
	elapsed uint32
}

// State returns the task's current lifecycle state.
func (t *Task) State() TaskState {
	return TaskState(atomic.LoadUint32(&t.state))
}

// Elapsed returns the ticks accumulated toward the next release.
// Strictly less than Period after every OnTick update.
func (t *Task) Elapsed() uint32 {
	return atomic.LoadUint32(&t.elapsed)
}

// Scheduler owns a fixed, ordered task table. Table position is the
// priority: when several tasks are READY in the same round, the lower
// index runs first. The table is established at construction and never
// grows or shrinks.
type Scheduler struct {
	tasks []*Task
	ticks uint32 // tick counter, wraps at 2^32
	idle  func()
}

// NewScheduler builds a scheduler around the given task table.
func NewScheduler(tasks ...*Task) *Scheduler {
	return &Scheduler{tasks: tasks, idle: func() {}}
}

// SetIdleHook replaces the hook invoked once per non-READY slot during
// a dispatch round. The default is a no-op. Call before Run.
func (s *Scheduler) SetIdleHook(idle func()) {
	if idle == nil {
		idle = func() {}
	}
	s.idle = idle
}

// InitTable resets every task to STANDBY with a cleared elapsed
// counter. Idempotent.
func (s *Scheduler) InitTable() {
	for _, t := range s.tasks {
		atomic.StoreUint32(&t.state, uint32(TaskStandby))
		atomic.StoreUint32(&t.elapsed, 0)
	}
}

// OnTick advances time by one tick. Call from the tick interrupt only.
// It never blocks and never allocates. The atomic stores publish every
// update to the dispatcher before the interrupt returns; they take the
// place of the explicit barrier a bare-field version would need.
func (s *Scheduler) OnTick() {
	atomic.AddUint32(&s.ticks, 1)
	for _, t := range s.tasks {
		if atomic.AddUint32(&t.elapsed, 1) >= t.Period {
			atomic.StoreUint32(&t.state, uint32(TaskReady))
			atomic.StoreUint32(&t.elapsed, 0)
		}
	}
}

// Now returns the current tick count. The counter wraps at 2^32 ticks;
// consumers must compare with wraparound-safe unsigned subtraction.
func (s *Scheduler) Now() uint32 {
	return atomic.LoadUint32(&s.ticks)
}

// Dispatch performs one scheduling round: a single pass over the table
// in declaration order. Each READY task runs synchronously to
// completion and returns to STANDBY; every other slot invokes the idle
// hook. Ticks keep accumulating while handlers run, so an overrunning
// round services late releases on the next round rather than losing
// them. There is no deadline-miss detection.
func (s *Scheduler) Dispatch() {
	for _, t := range s.tasks {
		if atomic.CompareAndSwapUint32(&t.state, uint32(TaskReady), uint32(TaskExecute)) {
			t.Handler()
			atomic.StoreUint32(&t.state, uint32(TaskStandby))
		} else {
			s.idle()
		}
	}
}

// Run dispatches rounds forever. It never returns.
func (s *Scheduler) Run() {
	for {
		s.Dispatch()
	}
}
