package storage

type FeeRateAdmin struct {
	Phase                ProductionPhase `json:"phase"`
	DesignFee            float64         `json:"design_fee"`
	BaseFee              float64         `json:"base_fee"`
	QuantityChangePct    float64         `json:"quantity_change_percent"`
	AddWorkPct           float64         `json:"add_work_percent"`
	RemoveWorkPenaltyPct float64         `json:"remove_work_penalty_percent"`
	CancelPenaltyPct     float64         `json:"cancel_penalty_percent"`
	IsActive             bool            `json:"is_active"`
}
