package lifecycle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"apparel-oms/internal/storage"
)

type MockLifecycleStorage struct {
	mock.Mock
}

func (m *MockLifecycleStorage) GetOrderStatus(ctx context.Context, orderID int64) (storage.OrderStatus, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(storage.OrderStatus), args.Error(1)
}

func (m *MockLifecycleStorage) UpdateOrderStatus(ctx context.Context, orderID int64, from, to storage.OrderStatus) error {
	args := m.Called(ctx, orderID, from, to)
	return args.Error(0)
}

func (m *MockLifecycleStorage) SaveStatusHistory(ctx context.Context, h storage.StatusHistory) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func TestApplyTransition_Success(t *testing.T) {
	mockStorage := new(MockLifecycleStorage)
	mockStorage.On("GetOrderStatus", mock.Anything, int64(42)).Return(storage.StatusQueued, nil)
	mockStorage.On("UpdateOrderStatus", mock.Anything, int64(42), storage.StatusQueued, storage.StatusInProduction).Return(nil)
	mockStorage.On("SaveStatusHistory", mock.Anything, mock.MatchedBy(func(h storage.StatusHistory) bool {
		return h.OrderID == 42 &&
			h.FromStatus == storage.StatusQueued &&
			h.ToStatus == storage.StatusInProduction
	})).Return(nil)

	svc := NewLifecycleService(mockStorage)

	next, err := svc.ApplyTransition(context.Background(), 42, storage.StatusInProduction, "", "planner")

	assert.NoError(t, err)
	assert.Equal(t, storage.StatusInProduction, next)
	mockStorage.AssertExpectations(t)
}

func TestApplyTransition_IllegalDoesNotPersist(t *testing.T) {
	mockStorage := new(MockLifecycleStorage)
	mockStorage.On("GetOrderStatus", mock.Anything, int64(7)).Return(storage.StatusDraft, nil)

	svc := NewLifecycleService(mockStorage)

	_, err := svc.ApplyTransition(context.Background(), 7, storage.StatusShipped, "", "planner")

	assert.ErrorIs(t, err, ErrIllegalTransition)
	mockStorage.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApplyTransition_ConflictSurfaces(t *testing.T) {
	conflict := errors.New("status changed by someone else")

	mockStorage := new(MockLifecycleStorage)
	mockStorage.On("GetOrderStatus", mock.Anything, int64(9)).Return(storage.StatusQueued, nil)
	mockStorage.On("UpdateOrderStatus", mock.Anything, int64(9), storage.StatusQueued, storage.StatusInProduction).Return(conflict)

	svc := NewLifecycleService(mockStorage)

	_, err := svc.ApplyTransition(context.Background(), 9, storage.StatusInProduction, "", "planner")

	assert.ErrorIs(t, err, conflict)
}

type MockDetailsStorage struct {
	mock.Mock
}

func (m *MockDetailsStorage) GetOrderByNum(ctx context.Context, orderNum string) (*storage.Order, error) {
	args := m.Called(ctx, orderNum)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Order), args.Error(1)
}

func (m *MockDetailsStorage) GetGatesByOrder(ctx context.Context, orderID int64) ([]storage.ApprovalGate, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.ApprovalGate), args.Error(1)
}

func (m *MockDetailsStorage) GetChangeRequestsByOrder(ctx context.Context, orderID int64) ([]storage.ChangeRequest, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.ChangeRequest), args.Error(1)
}

func (m *MockDetailsStorage) GetQCByOrder(ctx context.Context, orderID int64) ([]storage.QCRecord, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.QCRecord), args.Error(1)
}

func (m *MockDetailsStorage) GetStatusHistoryByOrder(ctx context.Context, orderID int64) ([]storage.StatusHistory, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.StatusHistory), args.Error(1)
}

func TestOrderDetails_AggregatesAndSummarizes(t *testing.T) {
	order := &storage.Order{ID: 5, OrderNum: "PO-2026-0042", Status: storage.StatusQueued}

	mockStorage := new(MockDetailsStorage)
	mockStorage.On("GetOrderByNum", mock.Anything, "PO-2026-0042").Return(order, nil)
	mockStorage.On("GetGatesByOrder", mock.Anything, int64(5)).Return([]storage.ApprovalGate{
		{GateType: storage.GateDesign, Status: storage.GateApproved, IsMandatory: true},
		{GateType: storage.GatePayment, Status: storage.GatePending, IsMandatory: true},
	}, nil)
	mockStorage.On("GetChangeRequestsByOrder", mock.Anything, int64(5)).Return([]storage.ChangeRequest{}, nil)
	mockStorage.On("GetQCByOrder", mock.Anything, int64(5)).Return([]storage.QCRecord{}, nil)
	mockStorage.On("GetStatusHistoryByOrder", mock.Anything, int64(5)).Return([]storage.StatusHistory{}, nil)

	svc := NewDetailsService(mockStorage)

	details, err := svc.OrderDetails(context.Background(), "PO-2026-0042")

	assert.NoError(t, err)
	assert.Equal(t, order, details.Order)
	assert.False(t, details.GatesSummary.ProductionUnlocked)
	assert.Equal(t, []string{"payment"}, details.GatesSummary.BlockingGates)
}
