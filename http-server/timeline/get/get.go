package get

import (
	"context"
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

type GetOrderForTimeline interface {
	GetOrder(ctx context.Context, orderID int64) (*storage.Order, error)
}

type Response struct {
	OrderID  int64                  `json:"order_id"`
	Priority string                 `json:"priority_code"`
	Timeline []storage.TimelineStep `json:"timeline"`
	Status   string                 `json:"status"`
}

func GetOrderTimeline(log *slog.Logger, orders GetOrderForTimeline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.timeline.get.GetOrderTimeline"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		order, err := orders.GetOrder(ctx, id)
		if err != nil {
			log.Error("failed to load order", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}

		timeline := sla.Project(order.OrderDate, order.PriorityCode, constants.DefaultStepTemplate)
		timeline = sla.WithTrack(timeline, sla.CurrentStepIndex(order.Status), time.Now())

		render.JSON(w, r, Response{
			OrderID:  order.ID,
			Priority: order.PriorityCode,
			Timeline: timeline,
			Status:   strconv.Itoa(http.StatusOK),
		})
	}
}
