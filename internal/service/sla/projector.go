package sla

import (
	"math"
	"time"

	"apparel-oms/internal/constants"
	"apparel-oms/internal/storage"
)

// Multiplier returns the SLA day multiplier for a priority code. Unknown
// codes run at normal speed.
func Multiplier(priority string) float64 {
	if m, ok := constants.PriorityMultipliers[priority]; ok {
		return m
	}
	return 1.0
}

// Project builds the deadline schedule for an order. Each step's scaled
// duration is rounded up to whole days and deadlines accumulate from the
// previous step, so the sequence is always non-decreasing.
func Project(orderDate time.Time, priority string, template []constants.SLAStep) []storage.TimelineStep {
	mult := Multiplier(priority)

	steps := make([]storage.TimelineStep, 0, len(template))
	deadline := orderDate
	for _, t := range template {
		days := int(math.Ceil(float64(t.Days) * mult))
		deadline = deadline.AddDate(0, 0, days)
		steps = append(steps, storage.TimelineStep{
			Step:     t.Name,
			Days:     days,
			Deadline: deadline,
		})
	}

	return steps
}

// WithTrack stamps each step with its schedule standing as of now. Steps
// before the current one always show completed, whether or not an actual
// completion date was recorded.
func WithTrack(steps []storage.TimelineStep, currentIdx int, now time.Time) []storage.TimelineStep {
	out := make([]storage.TimelineStep, len(steps))
	copy(out, steps)

	for i := range out {
		switch {
		case i < currentIdx:
			out[i].Track = storage.TrackCompleted
		case i > currentIdx:
			out[i].Track = storage.TrackUpcoming
		case now.After(out[i].Deadline):
			out[i].Track = storage.TrackOverdue
		case out[i].Deadline.Sub(now) <= 24*time.Hour:
			out[i].Track = storage.TrackWarning
		default:
			out[i].Track = storage.TrackCurrent
		}
	}

	return out
}

// CurrentStepIndex maps an order status onto the timeline step the order is
// working through. Completed orders sit past the last step.
func CurrentStepIndex(status storage.OrderStatus) int {
	switch status {
	case storage.StatusDraft, storage.StatusQuoted:
		return 0
	case storage.StatusAwaitingPayment, storage.StatusPartialPaid:
		return 1
	case storage.StatusDesigning:
		return 2
	case storage.StatusAwaitingMockup:
		return 3
	case storage.StatusAwaitingMaterial, storage.StatusQueued, storage.StatusInProduction:
		return 4
	case storage.StatusQCPending:
		return 5
	case storage.StatusReadyToShip, storage.StatusShipped:
		return 6
	case storage.StatusCompleted:
		return 7
	default:
		return 0
	}
}
