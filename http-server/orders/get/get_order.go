package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"apparel-oms/internal/service/lifecycle"
)

type OrderDetails interface {
	OrderDetails(ctx context.Context, orderNum string) (*lifecycle.OrderDetails, error)
}

func GetOrderDetails(log *slog.Logger, details OrderDetails) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.orders.get.GetOrderDetails"

		orderNum := chi.URLParam(r, "orderNum")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		result, err := details.OrderDetails(ctx, orderNum)
		if err != nil {
			log.Error("failed to load order details", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		render.JSON(w, r, result)
	}
}
