package gates

import (
	"math"

	"apparel-oms/internal/constants"
	"apparel-oms/internal/storage"
)

type GatesSummary struct {
	ProductionUnlocked bool     `json:"production_unlocked"`
	BlockingGates      []string `json:"blocking_gates"`
}

// cleared means the gate no longer blocks production. A gate that needs
// customer sign-off is not cleared by internal approval alone.
func cleared(g storage.ApprovalGate) bool {
	if g.Status != storage.GateApproved {
		return false
	}
	if g.RequiresCustomerApproval && !g.CustomerConfirmed {
		return false
	}
	return true
}

// Summarize computes the production-unlock decision from the order's gates.
// Production is unlocked iff every mandatory gate has cleared.
func Summarize(list []storage.ApprovalGate) GatesSummary {
	byType := make(map[storage.GateType]storage.ApprovalGate, len(list))
	for _, g := range list {
		byType[g.GateType] = g
	}

	summary := GatesSummary{
		ProductionUnlocked: true,
		BlockingGates:      []string{},
	}

	// walk the canonical order so blocking names come out stable
	for _, t := range constants.GateOrder {
		g, ok := byType[t]
		if !ok {
			continue
		}
		if g.IsMandatory && !cleared(g) {
			summary.ProductionUnlocked = false
			summary.BlockingGates = append(summary.BlockingGates, constants.GateNames[t])
		}
	}

	return summary
}

// ProgressPercent is the item-level progress bar value. Gates without items
// have no progress bar and report 0.
func ProgressPercent(g storage.ApprovalGate) int {
	if g.TotalItems <= 0 {
		return 0
	}
	return int(math.Round(float64(g.ApprovedItems) / float64(g.TotalItems) * 100))
}
