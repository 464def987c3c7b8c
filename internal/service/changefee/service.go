package changefee

import (
	"context"
	"fmt"
	"time"

	"apparel-oms/internal/storage"
)

type ChangeFeeStorage interface {
	GetOrder(ctx context.Context, orderID int64) (*storage.Order, error)
	SaveChangeRequest(ctx context.Context, cr storage.ChangeRequest) (int64, error)
}

type ChangeFeeService struct {
	storage ChangeFeeStorage
	calc    *Calculator
}

func NewChangeFeeService(storage ChangeFeeStorage, calc *Calculator) *ChangeFeeService {
	return &ChangeFeeService{storage: storage, calc: calc}
}

// Quote prices a change against the order's current phase without filing it.
func (s *ChangeFeeService) Quote(ctx context.Context, orderID int64, changeType storage.ChangeType, baseAmount float64, opts Options, affectsSchedule bool) (storage.FeeBreakdown, storage.ImpactLevel, error) {
	const op = "service.changefee.Quote"

	order, err := s.storage.GetOrder(ctx, orderID)
	if err != nil {
		return storage.FeeBreakdown{}, "", fmt.Errorf("%s: order: %w", op, err)
	}

	phase := PhaseForStatus(order.Status)

	fees, err := s.calc.CalculateFees(phase, changeType, baseAmount, opts)
	if err != nil {
		return storage.FeeBreakdown{}, "", err
	}

	impact := ImpactLevel(phase, ProductionStarted(order.Status), affectsSchedule)

	return fees, impact, nil
}

// File prices the change and records it against the order. The request
// starts in pending_quote; payment and execution move it forward upstream.
func (s *ChangeFeeService) File(ctx context.Context, orderID int64, changeType storage.ChangeType, baseAmount float64, opts Options, affectsSchedule bool, description *string) (*storage.ChangeRequest, error) {
	const op = "service.changefee.File"

	order, err := s.storage.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: order: %w", op, err)
	}

	phase := PhaseForStatus(order.Status)

	fees, err := s.calc.CalculateFees(phase, changeType, baseAmount, opts)
	if err != nil {
		return nil, err
	}

	cr := storage.ChangeRequest{
		OrderID:         orderID,
		ChangeType:      changeType,
		OrderPhase:      phase,
		Status:          storage.CRPendingQuote,
		ImpactLevel:     ImpactLevel(phase, ProductionStarted(order.Status), affectsSchedule),
		AffectsSchedule: affectsSchedule,
		Description:     description,
		Fees:            fees,
		RequestedAt:     time.Now(),
	}

	id, err := s.storage.SaveChangeRequest(ctx, cr)
	if err != nil {
		return nil, fmt.Errorf("%s: save: %w", op, err)
	}
	cr.ID = id

	return &cr, nil
}
