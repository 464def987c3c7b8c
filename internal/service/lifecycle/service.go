package lifecycle

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"apparel-oms/internal/service/gates"
	"apparel-oms/internal/storage"
)

type LifecycleStorage interface {
	GetOrderStatus(ctx context.Context, orderID int64) (storage.OrderStatus, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, from, to storage.OrderStatus) error
	SaveStatusHistory(ctx context.Context, h storage.StatusHistory) error
}

type LifecycleService struct {
	storage LifecycleStorage
}

func NewLifecycleService(storage LifecycleStorage) *LifecycleService {
	return &LifecycleService{storage: storage}
}

// ApplyTransition validates the requested move against the status graph and
// persists it. The update is conditional on the status it was validated
// against, so two racing requests cannot both win.
func (s *LifecycleService) ApplyTransition(ctx context.Context, orderID int64, target storage.OrderStatus, reason, changedBy string) (storage.OrderStatus, error) {
	const op = "service.lifecycle.ApplyTransition"

	current, err := s.storage.GetOrderStatus(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("%s: get status: %w", op, err)
	}

	next, err := Transition(current, target, reason)
	if err != nil {
		return current, err
	}

	if err := s.storage.UpdateOrderStatus(ctx, orderID, current, next); err != nil {
		return current, fmt.Errorf("%s: update status: %w", op, err)
	}

	err = s.storage.SaveStatusHistory(ctx, storage.StatusHistory{
		OrderID:    orderID,
		FromStatus: current,
		ToStatus:   next,
		Reason:     reason,
		ChangedBy:  changedBy,
		ChangedAt:  time.Now(),
	})
	if err != nil {
		return next, fmt.Errorf("%s: save history: %w", op, err)
	}

	return next, nil
}

type DetailsStorage interface {
	GetOrderByNum(ctx context.Context, orderNum string) (*storage.Order, error)
	GetGatesByOrder(ctx context.Context, orderID int64) ([]storage.ApprovalGate, error)
	GetChangeRequestsByOrder(ctx context.Context, orderID int64) ([]storage.ChangeRequest, error)
	GetQCByOrder(ctx context.Context, orderID int64) ([]storage.QCRecord, error)
	GetStatusHistoryByOrder(ctx context.Context, orderID int64) ([]storage.StatusHistory, error)
}

type OrderDetails struct {
	Order          *storage.Order          `json:"order"`
	Gates          []storage.ApprovalGate  `json:"gates"`
	GatesSummary   gates.GatesSummary      `json:"gates_summary"`
	ChangeRequests []storage.ChangeRequest `json:"change_requests"`
	QCRecords      []storage.QCRecord      `json:"qc_records"`
	StatusHistory  []storage.StatusHistory `json:"status_history"`
}

type DetailsService struct {
	storage DetailsStorage
}

func NewDetailsService(storage DetailsStorage) *DetailsService {
	return &DetailsService{storage: storage}
}

func (s *DetailsService) OrderDetails(ctx context.Context, orderNum string) (*OrderDetails, error) {
	const op = "service.lifecycle.OrderDetails"

	order, err := s.storage.GetOrderByNum(ctx, orderNum)
	if err != nil {
		return nil, fmt.Errorf("%s: order: %w", op, err)
	}

	details := &OrderDetails{Order: order}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		details.Gates, err = s.storage.GetGatesByOrder(gCtx, order.ID)
		if err != nil {
			return fmt.Errorf("gates: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		details.ChangeRequests, err = s.storage.GetChangeRequestsByOrder(gCtx, order.ID)
		if err != nil {
			return fmt.Errorf("change requests: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		details.QCRecords, err = s.storage.GetQCByOrder(gCtx, order.ID)
		if err != nil {
			return fmt.Errorf("qc records: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		details.StatusHistory, err = s.storage.GetStatusHistoryByOrder(gCtx, order.ID)
		if err != nil {
			return fmt.Errorf("status history: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	details.GatesSummary = gates.Summarize(details.Gates)

	return details, nil
}
