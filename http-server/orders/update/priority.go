package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"apparel-oms/internal/constants"
	"apparel-oms/internal/service/sla"
	"apparel-oms/internal/storage"
)

type PriorityUpdater interface {
	UpdateOrderPriority(ctx context.Context, orderID int64, priority string) error
	GetOrder(ctx context.Context, orderID int64) (*storage.Order, error)
}

// UpdateOrderPriority changes the priority and hands back the reprojected
// deadline schedule.
func UpdateOrderPriority(log *slog.Logger, updater PriorityUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.orders.update.UpdateOrderPriority"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		var req struct {
			PriorityCode string `json:"priority_code"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		if _, ok := constants.PriorityMultipliers[req.PriorityCode]; !ok {
			http.Error(w, "unknown priority code", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateOrderPriority(ctx, id, req.PriorityCode); err != nil {
			log.Error("failed to update priority", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "failed to update priority", http.StatusInternalServerError)
			return
		}

		order, err := updater.GetOrder(ctx, id)
		if err != nil {
			log.Error("failed to reload order", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "failed to reload order", http.StatusInternalServerError)
			return
		}

		timeline := sla.Project(order.OrderDate, order.PriorityCode, constants.DefaultStepTemplate)
		timeline = sla.WithTrack(timeline, sla.CurrentStepIndex(order.Status), time.Now())

		render.JSON(w, r, map[string]interface{}{
			"order_id": id,
			"timeline": timeline,
			"status":   strconv.Itoa(http.StatusOK),
		})
	}
}
