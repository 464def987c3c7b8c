package storage

import "time"

type OrderStatus string

const (
	StatusDraft            OrderStatus = "draft"
	StatusQuoted           OrderStatus = "quoted"
	StatusAwaitingPayment  OrderStatus = "awaiting_payment"
	StatusPartialPaid      OrderStatus = "partial_paid"
	StatusDesigning        OrderStatus = "designing"
	StatusAwaitingMockup   OrderStatus = "awaiting_mockup_approval"
	StatusAwaitingMaterial OrderStatus = "awaiting_material"
	StatusQueued           OrderStatus = "queued"
	StatusInProduction     OrderStatus = "in_production"
	StatusQCPending        OrderStatus = "qc_pending"
	StatusReadyToShip      OrderStatus = "ready_to_ship"
	StatusShipped          OrderStatus = "shipped"
	StatusCompleted        OrderStatus = "completed"
	StatusCancelled        OrderStatus = "cancelled"
	StatusOnHold           OrderStatus = "on_hold"
)

const (
	PriorityNormal = "normal"
	PriorityRush   = "rush"
	PriorityUrgent = "urgent"
)

const (
	ModeInHouse   = "in_house"
	ModeOutsource = "outsource"
	ModeHybrid    = "hybrid"
)

type Order struct {
	ID             int64       `json:"id"`
	OrderNum       string      `json:"order_num"`
	CustomerID     int64       `json:"customer_id"`
	Customer       string      `json:"customer"`
	Status         OrderStatus `json:"status"`
	PriorityCode   string      `json:"priority_code"`
	ProductionMode string      `json:"production_mode"`
	TotalAmount    float64     `json:"total_amount"`
	PaidAmount     float64     `json:"paid_amount"`
	OrderDate      time.Time   `json:"order_date"`
	DueDate        *time.Time  `json:"due_date"`
	Note           *string     `json:"note"`
}

type StatusHistory struct {
	ID         int64       `json:"id"`
	OrderID    int64       `json:"order_id"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status"`
	Reason     string      `json:"reason"`
	ChangedBy  string      `json:"changed_by"`
	ChangedAt  time.Time   `json:"changed_at"`
}

type NewOrder struct {
	OrderNum       string     `json:"order_num"`
	CustomerID     int64      `json:"customer_id"`
	PriorityCode   string     `json:"priority_code"`
	ProductionMode string     `json:"production_mode"`
	TotalAmount    float64    `json:"total_amount"`
	OrderDate      time.Time  `json:"order_date"`
	DueDate        *time.Time `json:"due_date"`
	Note           *string    `json:"note"`
}
