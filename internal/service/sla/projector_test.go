package sla

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"apparel-oms/internal/constants"
	"apparel-oms/internal/storage"
)

var testTemplate = []constants.SLAStep{
	{Name: "quoted", Days: 2},
	{Name: "payment", Days: 3},
	{Name: "design", Days: 5},
	{Name: "production", Days: 10},
	{Name: "shipping", Days: 3},
}

func TestMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, Multiplier(storage.PriorityNormal))
	assert.Equal(t, 0.7, Multiplier(storage.PriorityRush))
	assert.Equal(t, 0.5, Multiplier(storage.PriorityUrgent))
	assert.Equal(t, 1.0, Multiplier("something_else"))
}

func TestProject_NormalAccumulates(t *testing.T) {
	orderDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	steps := Project(orderDate, storage.PriorityNormal, testTemplate)

	assert.Len(t, steps, 5)
	assert.Equal(t, orderDate.AddDate(0, 0, 2), steps[0].Deadline)
	assert.Equal(t, orderDate.AddDate(0, 0, 5), steps[1].Deadline)
	assert.Equal(t, orderDate.AddDate(0, 0, 10), steps[2].Deadline)
	assert.Equal(t, orderDate.AddDate(0, 0, 20), steps[3].Deadline)
	assert.Equal(t, orderDate.AddDate(0, 0, 23), steps[4].Deadline)
}

func TestProject_RushRoundsUp(t *testing.T) {
	orderDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	steps := Project(orderDate, storage.PriorityRush, testTemplate)

	// ceil(2*0.7)=2, ceil(3*0.7)=3, ceil(5*0.7)=4, ceil(10*0.7)=7, ceil(3*0.7)=3
	assert.Equal(t, 2, steps[0].Days)
	assert.Equal(t, 3, steps[1].Days)
	assert.Equal(t, 4, steps[2].Days)
	assert.Equal(t, 7, steps[3].Days)
	assert.Equal(t, 3, steps[4].Days)
	assert.Equal(t, orderDate.AddDate(0, 0, 19), steps[4].Deadline)
}

func TestProject_DeadlinesNonDecreasing(t *testing.T) {
	orderDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	for _, priority := range []string{storage.PriorityNormal, storage.PriorityRush, storage.PriorityUrgent} {
		steps := Project(orderDate, priority, testTemplate)
		for i := 1; i < len(steps); i++ {
			assert.False(t, steps[i].Deadline.Before(steps[i-1].Deadline),
				"priority %s: step %d deadline before step %d", priority, i, i-1)
		}
	}
}

func TestWithTrack(t *testing.T) {
	orderDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	steps := Project(orderDate, storage.PriorityNormal, testTemplate)

	// design step (idx 2) deadline is day 10
	now := orderDate.AddDate(0, 0, 7)
	tracked := WithTrack(steps, 2, now)

	assert.Equal(t, storage.TrackCompleted, tracked[0].Track)
	assert.Equal(t, storage.TrackCompleted, tracked[1].Track)
	assert.Equal(t, storage.TrackCurrent, tracked[2].Track)
	assert.Equal(t, storage.TrackUpcoming, tracked[3].Track)

	// within one day of the deadline
	now = orderDate.AddDate(0, 0, 9).Add(12 * time.Hour)
	tracked = WithTrack(steps, 2, now)
	assert.Equal(t, storage.TrackWarning, tracked[2].Track)

	// past the deadline
	now = orderDate.AddDate(0, 0, 11)
	tracked = WithTrack(steps, 2, now)
	assert.Equal(t, storage.TrackOverdue, tracked[2].Track)
}

func TestWithTrack_CompletedRegardlessOfActual(t *testing.T) {
	orderDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	steps := Project(orderDate, storage.PriorityNormal, testTemplate)
	// no Actual recorded on any step

	tracked := WithTrack(steps, len(steps), orderDate.AddDate(0, 0, 60))
	for _, s := range tracked {
		assert.Equal(t, storage.TrackCompleted, s.Track)
	}
}

func TestCurrentStepIndex(t *testing.T) {
	assert.Equal(t, 0, CurrentStepIndex(storage.StatusDraft))
	assert.Equal(t, 2, CurrentStepIndex(storage.StatusDesigning))
	assert.Equal(t, 4, CurrentStepIndex(storage.StatusInProduction))
	assert.Equal(t, 7, CurrentStepIndex(storage.StatusCompleted))
}
