// Package timer runs deferred callbacks off the game's simulated clock.
// Everything runs on the update goroutine, so cancelling a task is just
// removing it from the pending list.
package timer

import (
	"sort"
	"time"
)

// TaskID identifies a scheduled task.
type TaskID uint64

// Owner tags tasks so a group can be cancelled together, e.g. every task
// belonging to one popup instance.
type Owner string

type task struct {
	id    TaskID
	due   time.Duration
	owner Owner
	fn    func()
}

// Scheduler holds pending tasks ordered by due time.
type Scheduler struct {
	now    time.Duration
	nextID TaskID
	tasks  []task
}

// New creates a scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's clock.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once delay has elapsed.
func (s *Scheduler) After(delay time.Duration, owner Owner, fn func()) TaskID {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	t := task{id: s.nextID, due: s.now + delay, owner: owner, fn: fn}

	// Insert after every task due at the same time so equal deadlines run
	// in scheduling order.
	i := sort.Search(len(s.tasks), func(i int) bool { return s.tasks[i].due > t.due })
	s.tasks = append(s.tasks, task{})
	copy(s.tasks[i+1:], s.tasks[i:])
	s.tasks[i] = t
	return t.id
}

// Advance moves the clock forward by dt and runs every task that came due,
// in due order. Tasks scheduled by a running task with zero delay run in
// the same Advance. Returns the number of tasks run.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}
	ran := 0
	for len(s.tasks) > 0 && s.tasks[0].due <= s.now {
		t := s.tasks[0]
		s.tasks = s.tasks[1:]
		if t.fn != nil {
			t.fn()
		}
		ran++
	}
	return ran
}

// Cancel removes a pending task.
func (s *Scheduler) Cancel(id TaskID) bool {
	for i, t := range s.tasks {
		if t.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// CancelOwner removes every pending task with the given owner and returns
// how many were removed.
func (s *Scheduler) CancelOwner(owner Owner) int {
	kept := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		if t.owner == owner {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = task{}
	}
	s.tasks = kept
	return removed
}

// Pending returns the number of tasks waiting to run.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// PendingFor returns the number of tasks waiting for one owner.
func (s *Scheduler) PendingFor(owner Owner) int {
	n := 0
	for _, t := range s.tasks {
		if t.owner == owner {
			n++
		}
	}
	return n
}
