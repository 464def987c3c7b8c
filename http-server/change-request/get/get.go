package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"apparel-oms/internal/storage"
)

type GetChangeRequests interface {
	GetChangeRequestsByOrder(ctx context.Context, orderID int64) ([]storage.ChangeRequest, error)
}

func GetChangeRequestsByOrder(log *slog.Logger, getCRs GetChangeRequests) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.change_request.get.GetChangeRequestsByOrder"

		orderIDStr := r.URL.Query().Get("order_id")
		orderID, err := strconv.ParseInt(orderIDStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid order_id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := getCRs.GetChangeRequestsByOrder(ctx, orderID)
		if err != nil {
			log.Error("failed to load change requests", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "failed to load change requests", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"change_requests": list,
			"status":          strconv.Itoa(http.StatusOK),
		})
	}
}
