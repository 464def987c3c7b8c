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

type GetCustomers interface {
	GetCustomers(ctx context.Context, search string) ([]*storage.Customer, error)
}

func GetCustomersFilter(log *slog.Logger, getCustomers GetCustomers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.customers.get.GetCustomersFilter"

		search := r.URL.Query().Get("search")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		customers, err := getCustomers.GetCustomers(ctx, search)
		if err != nil {
			log.Error("failed to load customers", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "failed to load customers", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"customers": customers,
			"status":    strconv.Itoa(http.StatusOK),
		})
	}
}
