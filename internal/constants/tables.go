package constants

import (
	"apparel-oms/internal/service/changefee"
	"apparel-oms/internal/storage"
)

// Canonical gate display order. Blocking-gate lists are always reported in
// this order no matter how rows come back from the database.
var GateOrder = []storage.GateType{
	storage.GateDesign,
	storage.GateMockup,
	storage.GateMaterial,
	storage.GatePayment,
	storage.GateProductionStart,
}

var GateNames = map[storage.GateType]string{
	storage.GateDesign:          "design",
	storage.GateMockup:          "mockup",
	storage.GateMaterial:        "material",
	storage.GatePayment:         "payment",
	storage.GateProductionStart: "production_start",
}

// SLA day multipliers by order priority.
var PriorityMultipliers = map[string]float64{
	storage.PriorityNormal: 1.0,
	storage.PriorityRush:   0.7,
	storage.PriorityUrgent: 0.5,
}

type SLAStep struct {
	Name string
	Days int
}

// Nominal step durations for a normal-priority order, in calendar days.
var DefaultStepTemplate = []SLAStep{
	{Name: "quoted", Days: 2},
	{Name: "payment", Days: 3},
	{Name: "design", Days: 5},
	{Name: "mockup", Days: 4},
	{Name: "production", Days: 10},
	{Name: "qc", Days: 2},
	{Name: "shipping", Days: 3},
}

// Default change-fee rates per production phase, amounts in THB. The live
// table sits in the fee_rates table and is editable from the admin panel;
// these values seed it and back the calculator in tests.
var DefaultFeeRates = map[storage.ProductionPhase]changefee.Rates{
	storage.PhaseDraft: {
		DesignFee: 0, BaseFee: 0,
		QuantityChangePct: 0, AddWorkPct: 0, RemoveWorkPenaltyPct: 0, CancelPenaltyPct: 0,
	},
	storage.PhaseDesign: {
		DesignFee: 500, BaseFee: 300,
		QuantityChangePct: 5, AddWorkPct: 5, RemoveWorkPenaltyPct: 5, CancelPenaltyPct: 10,
	},
	storage.PhaseMockupApproved: {
		DesignFee: 1000, BaseFee: 500,
		QuantityChangePct: 8, AddWorkPct: 10, RemoveWorkPenaltyPct: 8, CancelPenaltyPct: 15,
	},
	storage.PhasePreProduction: {
		DesignFee: 1500, BaseFee: 800,
		QuantityChangePct: 10, AddWorkPct: 15, RemoveWorkPenaltyPct: 10, CancelPenaltyPct: 25,
	},
	storage.PhaseInProduction: {
		DesignFee: 2500, BaseFee: 1500,
		QuantityChangePct: 15, AddWorkPct: 25, RemoveWorkPenaltyPct: 20, CancelPenaltyPct: 40,
	},
	storage.PhaseQCComplete: {
		DesignFee: 4000, BaseFee: 2500,
		QuantityChangePct: 25, AddWorkPct: 40, RemoveWorkPenaltyPct: 30, CancelPenaltyPct: 60,
	},
}
