package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVirtual_AfterFiresOnce(t *testing.T) {
	v := NewVirtual()
	calls := 0
	v.After(2*time.Second, func() { calls++ })

	v.Advance(1999 * time.Millisecond)
	assert.Equal(t, 0, calls)

	v.Advance(time.Millisecond)
	assert.Equal(t, 1, calls)

	v.Advance(time.Minute)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, v.Pending())
}

func TestVirtual_EveryFiresPerPeriod(t *testing.T) {
	v := NewVirtual()
	var at []time.Duration
	v.Every(time.Second, func() { at = append(at, v.Now()) })

	v.Advance(3500 * time.Millisecond)

	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 3 * time.Second}, at)
	assert.Equal(t, 3500*time.Millisecond, v.Now())
}

func TestVirtual_CancelStopsTask(t *testing.T) {
	v := NewVirtual()
	calls := 0
	task := v.Every(time.Second, func() { calls++ })

	v.Advance(2 * time.Second)
	task.Cancel()
	task.Cancel()
	v.Advance(5 * time.Second)

	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, v.Pending())
}

func TestVirtual_CallbackCanCancelItself(t *testing.T) {
	v := NewVirtual()
	calls := 0
	var task interface{ Cancel() }
	task = v.Every(time.Second, func() {
		calls++
		if calls == 3 {
			task.Cancel()
		}
	})

	v.Advance(10 * time.Second)

	assert.Equal(t, 3, calls)
}

func TestVirtual_TasksScheduledDuringAdvanceFire(t *testing.T) {
	v := NewVirtual()
	var order []string
	v.After(time.Second, func() {
		order = append(order, "first")
		v.After(time.Second, func() { order = append(order, "second") })
	})

	v.Advance(5 * time.Second)

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestVirtual_SameInstantFiresInScheduleOrder(t *testing.T) {
	v := NewVirtual()
	var order []int
	for i := 0; i < 4; i++ {
		i := i
		v.After(time.Second, func() { order = append(order, i) })
	}

	v.Advance(time.Second)

	assert.Equal(t, []int{0, 1, 2, 3}, order)
}
