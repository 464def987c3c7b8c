package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"apparel-oms/internal/service/lifecycle"
	"apparel-oms/internal/storage"
	"apparel-oms/internal/storage/mysql"
)

type TransitionApplier interface {
	ApplyTransition(ctx context.Context, orderID int64, target storage.OrderStatus, reason, changedBy string) (storage.OrderStatus, error)
}

type TransitionResponse struct {
	OrderID   int64               `json:"order_id"`
	NewStatus storage.OrderStatus `json:"new_status"`
	Status    string              `json:"status"`
	Error     string              `json:"error,omitempty"`
}

func UpdateOrderStatus(log *slog.Logger, applier TransitionApplier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.orders.update.UpdateOrderStatus"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		var req struct {
			Target    storage.OrderStatus `json:"target"`
			Reason    string              `json:"reason"`
			ChangedBy string              `json:"changed_by"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		newStatus, err := applier.ApplyTransition(ctx, id, req.Target, req.Reason, req.ChangedBy)
		if err != nil {
			log.Error("transition rejected", slog.String("op", op), slog.Int64("id", id),
				slog.String("target", string(req.Target)), slog.String("error", err.Error()))

			code := http.StatusInternalServerError
			switch {
			case errors.Is(err, lifecycle.ErrReasonRequired):
				code = http.StatusBadRequest
			case errors.Is(err, lifecycle.ErrIllegalTransition), errors.Is(err, lifecycle.ErrTerminalState):
				code = http.StatusUnprocessableEntity
			case errors.Is(err, mysql.ErrStatusConflict):
				code = http.StatusConflict
			case errors.Is(err, mysql.ErrNotFound):
				code = http.StatusNotFound
			}

			w.WriteHeader(code)
			render.JSON(w, r, TransitionResponse{OrderID: id, Error: err.Error()})
			return
		}

		log.Info("order status updated", slog.Int64("id", id), slog.String("status", string(newStatus)))

		render.JSON(w, r, TransitionResponse{
			OrderID:   id,
			NewStatus: newStatus,
			Status:    strconv.Itoa(http.StatusOK),
		})
	}
}
