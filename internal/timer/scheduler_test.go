package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceRunsDueTasksInOrder(t *testing.T) {
	s := New()
	var order []string
	s.After(300*time.Millisecond, "", func() { order = append(order, "c") })
	s.After(100*time.Millisecond, "", func() { order = append(order, "a") })
	s.After(100*time.Millisecond, "", func() { order = append(order, "b") })

	assert.Equal(t, 0, s.Advance(50*time.Millisecond))
	assert.Equal(t, 2, s.Advance(100*time.Millisecond))
	assert.Equal(t, []string{"a", "b"}, order)
	assert.Equal(t, 1, s.Pending())

	s.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 0, s.Pending())
}

func TestCancel(t *testing.T) {
	s := New()
	ran := false
	id := s.After(time.Second, "", func() { ran = true })

	assert.True(t, s.Cancel(id))
	assert.False(t, s.Cancel(id))
	s.Advance(2 * time.Second)
	assert.False(t, ran)
}

func TestCancelOwner(t *testing.T) {
	s := New()
	var ran []string
	s.After(time.Second, "popup-1", func() { ran = append(ran, "stale") })
	s.After(time.Second, "popup-1", func() { ran = append(ran, "stale") })
	s.After(time.Second, "notify", func() { ran = append(ran, "notify") })

	assert.Equal(t, 2, s.PendingFor("popup-1"))
	assert.Equal(t, 2, s.CancelOwner("popup-1"))
	assert.Equal(t, 0, s.PendingFor("popup-1"))

	s.Advance(time.Second)
	assert.Equal(t, []string{"notify"}, ran)
}

func TestTaskCanScheduleFollowUp(t *testing.T) {
	s := New()
	var ran []string
	s.After(time.Second, "", func() {
		ran = append(ran, "fade")
		s.After(0, "", func() { ran = append(ran, "remove") })
		s.After(300*time.Millisecond, "", func() { ran = append(ran, "later") })
	})

	s.Advance(time.Second)
	assert.Equal(t, []string{"fade", "remove"}, ran)
	s.Advance(300 * time.Millisecond)
	assert.Equal(t, []string{"fade", "remove", "later"}, ran)
	assert.Equal(t, 1300*time.Millisecond, s.Now())
}
