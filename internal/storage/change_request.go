package storage

import "time"

type ChangeType string

const (
	ChangeDesignRevision ChangeType = "design_revision"
	ChangeQuantity       ChangeType = "quantity_change"
	ChangeSize           ChangeType = "size_change"
	ChangeColor          ChangeType = "color_change"
	ChangeAddWork        ChangeType = "add_work"
	ChangeRemoveWork     ChangeType = "remove_work"
	ChangeMaterial       ChangeType = "material_change"
	ChangeShipping       ChangeType = "shipping_change"
	ChangeDueDate        ChangeType = "due_date_change"
	ChangeCancel         ChangeType = "cancel"
	ChangeOther          ChangeType = "other"
)

type ProductionPhase string

const (
	PhaseDraft          ProductionPhase = "draft"
	PhaseDesign         ProductionPhase = "design"
	PhaseMockupApproved ProductionPhase = "mockup_approved"
	PhasePreProduction  ProductionPhase = "pre_production"
	PhaseInProduction   ProductionPhase = "in_production"
	PhaseQCComplete     ProductionPhase = "qc_complete"
)

type ImpactLevel string

const (
	ImpactNone     ImpactLevel = "none"
	ImpactLow      ImpactLevel = "low"
	ImpactMedium   ImpactLevel = "medium"
	ImpactHigh     ImpactLevel = "high"
	ImpactCritical ImpactLevel = "critical"
)

type ChangeRequestStatus string

const (
	CRPendingQuote     ChangeRequestStatus = "pending_quote"
	CRAwaitingCustomer ChangeRequestStatus = "awaiting_customer"
	CRAwaitingPayment  ChangeRequestStatus = "awaiting_payment"
	CRInProgress       ChangeRequestStatus = "in_progress"
	CRCompleted        ChangeRequestStatus = "completed"
	CRCancelled        ChangeRequestStatus = "cancelled"
	CRRejected         ChangeRequestStatus = "rejected"
)

type FeeBreakdown struct {
	BaseFee     float64 `json:"base_fee"`
	DesignFee   float64 `json:"design_fee"`
	ReworkFee   float64 `json:"rework_fee"`
	MaterialFee float64 `json:"material_fee"`
	WasteFee    float64 `json:"waste_fee"`
	RushFee     float64 `json:"rush_fee"`
	OtherFee    float64 `json:"other_fee"`
	Discount    float64 `json:"discount"`
	TotalFee    float64 `json:"total_fee"`
}

type ChangeRequest struct {
	ID              int64               `json:"id"`
	OrderID         int64               `json:"order_id"`
	ChangeType      ChangeType          `json:"change_type"`
	OrderPhase      ProductionPhase     `json:"order_phase"`
	Status          ChangeRequestStatus `json:"status"`
	ImpactLevel     ImpactLevel         `json:"impact_level"`
	AffectsSchedule bool                `json:"affects_schedule"`
	Description     *string             `json:"description"`
	Fees            FeeBreakdown        `json:"fees"`
	RequestedAt     time.Time           `json:"requested_at"`
}
