package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"apparel-oms/internal/service/lifecycle"
	"apparel-oms/internal/storage"
)

type MockApplier struct {
	mock.Mock
}

func (m *MockApplier) ApplyTransition(ctx context.Context, orderID int64, target storage.OrderStatus, reason, changedBy string) (storage.OrderStatus, error) {
	args := m.Called(ctx, orderID, target, reason, changedBy)
	return args.Get(0).(storage.OrderStatus), args.Error(1)
}

func doRequest(t *testing.T, applier *MockApplier, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := UpdateOrderStatus(slog.Default(), applier)

	router := chi.NewRouter()
	router.Post("/api/orders/order/{id}/transition", handler)

	req := httptest.NewRequest(http.MethodPost, "/api/orders/order/42/transition", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	return rr
}

func TestUpdateOrderStatus_Success(t *testing.T) {
	applier := new(MockApplier)
	applier.On("ApplyTransition", mock.Anything, int64(42), storage.StatusInProduction, "", "planner").
		Return(storage.StatusInProduction, nil)

	rr := doRequest(t, applier, `{"target":"in_production","changed_by":"planner"}`)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp TransitionResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, storage.StatusInProduction, resp.NewStatus)
	applier.AssertExpectations(t)
}

func TestUpdateOrderStatus_IllegalTransition(t *testing.T) {
	applier := new(MockApplier)
	applier.On("ApplyTransition", mock.Anything, int64(42), storage.StatusShipped, "", "").
		Return(storage.OrderStatus(""), lifecycle.ErrIllegalTransition)

	rr := doRequest(t, applier, `{"target":"shipped"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestUpdateOrderStatus_ReasonRequired(t *testing.T) {
	applier := new(MockApplier)
	applier.On("ApplyTransition", mock.Anything, int64(42), storage.StatusCancelled, "", "").
		Return(storage.OrderStatus(""), lifecycle.ErrReasonRequired)

	rr := doRequest(t, applier, `{"target":"cancelled"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateOrderStatus_BadJSON(t *testing.T) {
	applier := new(MockApplier)

	rr := doRequest(t, applier, `{"target":`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	applier.AssertNotCalled(t, "ApplyTransition")
}
