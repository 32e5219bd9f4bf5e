package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTableResetsDescriptors(t *testing.T) {
	a := &Task{Handler: func() {}, Period: 2}
	b := &Task{Handler: func() {}, Period: 5}
	s := NewScheduler(a, b)
	s.InitTable()

	for i := 0; i < 7; i++ {
		s.OnTick()
	}
	require.Equal(t, TaskReady, a.State())

	s.InitTable()
	assert.Equal(t, TaskStandby, a.State())
	assert.Equal(t, uint32(0), a.Elapsed())
	assert.Equal(t, TaskStandby, b.State())
	assert.Equal(t, uint32(0), b.Elapsed())

	// Calling it again must be harmless.
	s.InitTable()
	assert.Equal(t, TaskStandby, a.State())
	assert.Equal(t, uint32(0), b.Elapsed())
}

func TestTaskRunsOncePerPeriod(t *testing.T) {
	runs := 0
	task := &Task{Handler: func() { runs++ }, Period: 3}
	s := NewScheduler(task)
	s.InitTable()

	for tick := 1; tick <= 30; tick++ {
		s.OnTick()
		s.Dispatch()
	}
	assert.Equal(t, 10, runs)
}

func TestSlowDispatchServicesReleaseOnce(t *testing.T) {
	runs := 0
	task := &Task{Handler: func() { runs++ }, Period: 3}
	s := NewScheduler(task)
	s.InitTable()

	// Three releases pass before the dispatcher gets a turn; READY is a
	// flag, not a queue, so only one run results.
	for i := 0; i < 9; i++ {
		s.OnTick()
	}
	s.Dispatch()
	assert.Equal(t, 1, runs)

	// Counters kept running independently of dispatch, so the next
	// release arrives a full period after the last ISR-side reset.
	for i := 0; i < 3; i++ {
		s.OnTick()
	}
	s.Dispatch()
	assert.Equal(t, 2, runs)
}

func TestDispatchHonorsTableOrder(t *testing.T) {
	var order []string
	mk := func(name string, period uint32) *Task {
		return &Task{Period: period, Handler: func() { order = append(order, name) }}
	}
	a := mk("A", 2)
	b := mk("B", 5)
	c := mk("C", 10)
	s := NewScheduler(a, b, c)
	s.InitTable()

	for i := 0; i < 10; i++ {
		s.OnTick()
	}
	require.Equal(t, TaskReady, a.State())
	require.Equal(t, TaskReady, b.State())
	require.Equal(t, TaskReady, c.State())

	s.Dispatch()
	assert.Equal(t, []string{"A", "B", "C"}, order)
}

func TestLifecycleTransitions(t *testing.T) {
	task := &Task{Period: 1}
	task.Handler = func() {
		assert.Equal(t, TaskExecute, task.State())
	}
	s := NewScheduler(task)
	s.InitTable()
	assert.Equal(t, TaskStandby, task.State())

	s.OnTick()
	require.Equal(t, TaskReady, task.State())

	s.Dispatch()
	assert.Equal(t, TaskStandby, task.State())
}

func TestIdleHookRunsForNonReadySlots(t *testing.T) {
	idle := 0
	a := &Task{Handler: func() {}, Period: 100}
	b := &Task{Handler: func() {}, Period: 100}
	s := NewScheduler(a, b)
	s.SetIdleHook(func() { idle++ })
	s.InitTable()

	s.Dispatch()
	assert.Equal(t, 2, idle)

	for i := 0; i < 100; i++ {
		s.OnTick()
	}
	s.Dispatch()
	assert.Equal(t, 2, idle, "ready slots must not invoke the idle hook")
}

func TestElapsedStaysBelowPeriod(t *testing.T) {
	tasks := []*Task{
		{Handler: func() {}, Period: 1},
		{Handler: func() {}, Period: 2},
		{Handler: func() {}, Period: 7},
	}
	s := NewScheduler(tasks...)
	s.InitTable()

	for i := 0; i < 50; i++ {
		s.OnTick()
		for _, task := range tasks {
			assert.Less(t, task.Elapsed(), task.Period)
		}
	}
}

func TestTicksAccumulateWhileHandlerRuns(t *testing.T) {
	var s *Scheduler
	fastRuns := 0
	slow := &Task{Period: 5}
	fast := &Task{Period: 5, Handler: func() { fastRuns++ }}
	slow.Handler = func() {
		// Stand-in for the tick interrupt firing while this handler
		// occupies the processor.
		for i := 0; i < 5; i++ {
			s.OnTick()
		}
	}
	s = NewScheduler(slow, fast)
	s.InitTable()

	for i := 0; i < 5; i++ {
		s.OnTick()
	}
	s.Dispatch()

	assert.Equal(t, uint32(10), s.Now())
	assert.Equal(t, 1, fastRuns, "fast task is serviced late but within the same round")
	assert.Equal(t, TaskStandby, slow.State())
	assert.Equal(t, TaskStandby, fast.State())
}
