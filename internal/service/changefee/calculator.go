package changefee

import (
	"errors"
	"fmt"

	"apparel-oms/internal/storage"
)

var ErrInvalidAmount = errors.New("base amount must not be negative")

// Rates is the fee configuration for one production phase. The active
// tables are loaded from the admin panel, defaults live in constants.
type Rates struct {
	DesignFee            float64 `json:"design_fee"`
	BaseFee              float64 `json:"base_fee"`
	QuantityChangePct    float64 `json:"quantity_change_percent"`
	AddWorkPct           float64 `json:"add_work_percent"`
	RemoveWorkPenaltyPct float64 `json:"remove_work_penalty_percent"`
	CancelPenaltyPct     float64 `json:"cancel_penalty_percent"`
}

type Options struct {
	QuantityChange int     `json:"quantity_change"`
	WasteQty       float64 `json:"waste_qty"`
	WasteUnitCost  float64 `json:"waste_unit_cost"`
	ReworkFee      float64 `json:"rework_fee"`
	IsRush         bool    `json:"is_rush"`
}

type Calculator struct {
	rates map[storage.ProductionPhase]Rates
}

func NewCalculator(rates map[storage.ProductionPhase]Rates) *Calculator {
	return &Calculator{rates: rates}
}

// CalculateFees prices a single change request. Each request names exactly
// one change type; waste and rework always come in through opts. OtherFee
// and Discount stay zero here, they are filled in by manual steps later.
func (c *Calculator) CalculateFees(phase storage.ProductionPhase, changeType storage.ChangeType, baseAmount float64, opts Options) (storage.FeeBreakdown, error) {
	const op = "service.changefee.CalculateFees"

	if baseAmount < 0 {
		return storage.FeeBreakdown{}, fmt.Errorf("%s: %w", op, ErrInvalidAmount)
	}

	rates, ok := c.rates[phase]
	if !ok {
		return storage.FeeBreakdown{}, fmt.Errorf("%s: no rates for phase %q", op, phase)
	}

	var fees storage.FeeBreakdown

	switch changeType {
	case storage.ChangeDesignRevision:
		fees.DesignFee = rates.DesignFee
	case storage.ChangeQuantity:
		// only an increase costs material; a decrease is handled as remove_work upstream
		if opts.QuantityChange > 0 {
			fees.MaterialFee = baseAmount * rates.QuantityChangePct / 100
		}
	case storage.ChangeSize, storage.ChangeColor:
		fees.BaseFee = rates.BaseFee
	case storage.ChangeAddWork:
		fees.BaseFee = baseAmount * rates.AddWorkPct / 100
	case storage.ChangeRemoveWork:
		// penalty, not a credit
		fees.BaseFee = baseAmount * rates.RemoveWorkPenaltyPct / 100
	case storage.ChangeCancel:
		fees.BaseFee = baseAmount * rates.CancelPenaltyPct / 100
	default:
		// material/shipping/due-date/other: fees entered manually upstream
	}

	if opts.WasteQty > 0 && opts.WasteUnitCost > 0 {
		fees.WasteFee = opts.WasteQty * opts.WasteUnitCost
	}

	fees.ReworkFee = opts.ReworkFee

	if opts.IsRush {
		fees.RushFee = (fees.BaseFee + fees.DesignFee + fees.ReworkFee + fees.MaterialFee + fees.WasteFee) * 0.5
	}

	fees.TotalFee = fees.BaseFee + fees.DesignFee + fees.ReworkFee + fees.MaterialFee +
		fees.WasteFee + fees.RushFee + fees.OtherFee - fees.Discount

	return fees, nil
}

// ImpactLevel classifies how disruptive a change is for the given phase.
// Total function: phases outside the table fall into the medium arm.
func ImpactLevel(phase storage.ProductionPhase, productionStarted, affectsSchedule bool) storage.ImpactLevel {
	switch phase {
	case storage.PhaseDraft:
		return storage.ImpactNone
	case storage.PhaseDesign:
		return storage.ImpactLow
	case storage.PhaseMockupApproved:
		if productionStarted {
			return storage.ImpactMedium
		}
		return storage.ImpactLow
	case storage.PhasePreProduction:
		if affectsSchedule {
			return storage.ImpactMedium
		}
		return storage.ImpactLow
	case storage.PhaseInProduction:
		if productionStarted {
			return storage.ImpactHigh
		}
		return storage.ImpactMedium
	case storage.PhaseQCComplete:
		return storage.ImpactCritical
	default:
		return storage.ImpactMedium
	}
}

// PhaseForStatus maps an order status onto the production phase used for
// change pricing.
func PhaseForStatus(status storage.OrderStatus) storage.ProductionPhase {
	switch status {
	case storage.StatusDraft, storage.StatusQuoted, storage.StatusAwaitingPayment, storage.StatusPartialPaid:
		return storage.PhaseDraft
	case storage.StatusDesigning, storage.StatusAwaitingMockup:
		return storage.PhaseDesign
	case storage.StatusAwaitingMaterial:
		return storage.PhaseMockupApproved
	case storage.StatusQueued:
		return storage.PhasePreProduction
	case storage.StatusInProduction:
		return storage.PhaseInProduction
	case storage.StatusQCPending, storage.StatusReadyToShip, storage.StatusShipped, storage.StatusCompleted:
		return storage.PhaseQCComplete
	default:
		return storage.PhasePreProduction
	}
}

// ProductionStarted reports whether the order has entered the shop floor.
func ProductionStarted(status storage.OrderStatus) bool {
	switch status {
	case storage.StatusInProduction, storage.StatusQCPending, storage.StatusReadyToShip,
		storage.StatusShipped, storage.StatusCompleted:
		return true
	default:
		return false
	}
}
