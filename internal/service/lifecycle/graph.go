package lifecycle

import (
	"errors"

	"apparel-oms/internal/storage"
)

var (
	ErrIllegalTransition = errors.New("transition not allowed from current status")
	ErrTerminalState     = errors.New("order is in a terminal status")
	ErrReasonRequired    = errors.New("rollback requires a non-empty reason")
)

// ForwardEdge is a legal progress move with its business meaning.
type ForwardEdge struct {
	Target storage.OrderStatus `json:"target"`
	Label  string              `json:"label"`
}

// forwardEdges lists legal progress moves per status. Kept as data so every
// edge can be tested, not buried in branching code.
var forwardEdges = map[storage.OrderStatus][]ForwardEdge{
	storage.StatusDraft: {
		{Target: storage.StatusQuoted, Label: "quotation prepared and sent"},
	},
	storage.StatusQuoted: {
		{Target: storage.StatusAwaitingPayment, Label: "customer confirmed, awaiting payment"},
	},
	storage.StatusAwaitingPayment: {
		{Target: storage.StatusPartialPaid, Label: "deposit received"},
		{Target: storage.StatusDesigning, Label: "payment received in full, design started"},
	},
	storage.StatusPartialPaid: {
		{Target: storage.StatusDesigning, Label: "deposit cleared, design started"},
	},
	storage.StatusDesigning: {
		{Target: storage.StatusAwaitingMockup, Label: "mockup sent for customer approval"},
	},
	storage.StatusAwaitingMockup: {
		{Target: storage.StatusAwaitingMaterial, Label: "mockup approved, sourcing material"},
	},
	storage.StatusAwaitingMaterial: {
		{Target: storage.StatusQueued, Label: "material received, queued for production"},
	},
	storage.StatusQueued: {
		{Target: storage.StatusInProduction, Label: "production started"},
	},
	storage.StatusInProduction: {
		{Target: storage.StatusQCPending, Label: "production finished, awaiting inspection"},
	},
	storage.StatusQCPending: {
		{Target: storage.StatusReadyToShip, Label: "inspection passed"},
	},
	storage.StatusReadyToShip: {
		{Target: storage.StatusShipped, Label: "handed to carrier"},
	},
	storage.StatusShipped: {
		{Target: storage.StatusCompleted, Label: "customer received order"},
	},
	storage.StatusOnHold: {
		{Target: storage.StatusDesigning, Label: "hold released, back in design"},
		{Target: storage.StatusQueued, Label: "hold released, back in queue"},
		{Target: storage.StatusInProduction, Label: "hold released, production resumed"},
	},
	// terminal, no outgoing progress
	storage.StatusCompleted: {},
	storage.StatusCancelled: {},
}

// backwardEdges lists legal rollback targets per status. Every rollback is
// an exception path and must carry a reason for the audit trail. Cancellation
// is handled separately: cancelled is reachable from any non-terminal status.
var backwardEdges = map[storage.OrderStatus][]storage.OrderStatus{
	storage.StatusQuoted:           {storage.StatusDraft},
	storage.StatusAwaitingPayment:  {storage.StatusQuoted, storage.StatusOnHold},
	storage.StatusPartialPaid:      {storage.StatusAwaitingPayment, storage.StatusOnHold},
	storage.StatusDesigning:        {storage.StatusAwaitingPayment, storage.StatusOnHold},
	storage.StatusAwaitingMockup:   {storage.StatusDesigning, storage.StatusOnHold},
	storage.StatusAwaitingMaterial: {storage.StatusAwaitingMockup, storage.StatusOnHold},
	storage.StatusQueued:           {storage.StatusAwaitingMaterial, storage.StatusOnHold},
	storage.StatusInProduction:     {storage.StatusQueued, storage.StatusOnHold},
	storage.StatusQCPending:        {storage.StatusInProduction},
	storage.StatusReadyToShip:      {storage.StatusQCPending},
	storage.StatusShipped:          {storage.StatusReadyToShip},
	storage.StatusCompleted:        {storage.StatusShipped}, // order not yet received
}

func IsTerminal(s storage.OrderStatus) bool {
	return s == storage.StatusCompleted || s == storage.StatusCancelled
}

func isForward(current, target storage.OrderStatus) bool {
	for _, e := range forwardEdges[current] {
		if e.Target == target {
			return true
		}
	}
	return false
}

func isBackward(current, target storage.OrderStatus) bool {
	if target == storage.StatusCancelled {
		return !IsTerminal(current)
	}
	for _, t := range backwardEdges[current] {
		if t == target {
			return true
		}
	}
	return false
}

// CanTransition reports whether target is reachable from current, forward
// or backward. Self-transitions are never legal.
func CanTransition(current, target storage.OrderStatus) bool {
	if current == target {
		return false
	}
	if current == storage.StatusCancelled {
		return false
	}
	if current == storage.StatusCompleted {
		return target == storage.StatusShipped
	}
	return isForward(current, target) || isBackward(current, target)
}

// Transition validates a requested move and returns the new status. Rollbacks
// and cancellations require a non-empty reason; the caller persists the
// result and the reason, nothing is mutated here.
func Transition(current, target storage.OrderStatus, reason string) (storage.OrderStatus, error) {
	if current == target {
		return current, ErrIllegalTransition
	}
	if current == storage.StatusCancelled {
		return current, ErrTerminalState
	}
	if current == storage.StatusCompleted && target != storage.StatusShipped {
		return current, ErrTerminalState
	}

	if isForward(current, target) {
		return target, nil
	}

	if isBackward(current, target) {
		if reason == "" {
			return current, ErrReasonRequired
		}
		return target, nil
	}

	return current, ErrIllegalTransition
}

// AllowedTransitions returns all legal targets from the given status, used
// by the frontend to build the status dropdown.
func AllowedTransitions(current storage.OrderStatus) ([]ForwardEdge, []storage.OrderStatus) {
	if current == storage.StatusCancelled {
		return nil, nil
	}
	if current == storage.StatusCompleted {
		return nil, backwardEdges[current]
	}

	backward := make([]storage.OrderStatus, 0, len(backwardEdges[current])+1)
	backward = append(backward, backwardEdges[current]...)
	backward = append(backward, storage.StatusCancelled)

	return forwardEdges[current], backward
}
