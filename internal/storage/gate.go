package storage

type GateType string

const (
	GateDesign          GateType = "design"
	GateMockup          GateType = "mockup"
	GateMaterial        GateType = "material"
	GatePayment         GateType = "payment"
	GateProductionStart GateType = "production_start"
)

type GateStatus string

const (
	GatePending    GateStatus = "pending"
	GateInProgress GateStatus = "in_progress"
	GateApproved   GateStatus = "approved"
	GateRejected   GateStatus = "rejected"
)

type ApprovalGate struct {
	ID                       int64      `json:"id"`
	OrderID                  int64      `json:"order_id"`
	GateType                 GateType   `json:"gate_type"`
	Status                   GateStatus `json:"status"`
	IsMandatory              bool       `json:"is_mandatory"`
	RequiresCustomerApproval bool       `json:"requires_customer_approval"`
	CustomerConfirmed        bool       `json:"customer_confirmed"`
	ApprovedItems            int        `json:"approved_items"`
	TotalItems               int        `json:"total_items"`
	Note                     *string    `json:"note"`
}

type UpdateGate struct {
	Status            GateStatus `json:"status"`
	CustomerConfirmed bool       `json:"customer_confirmed"`
	ApprovedItems     int        `json:"approved_items"`
	TotalItems        int        `json:"total_items"`
	Note              *string    `json:"note"`
}
