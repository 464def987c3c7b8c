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

	"apparel-oms/internal/storage"
)

type UpdateCustomer interface {
	UpdateCustomer(ctx context.Context, id int64, c storage.Customer) error
}

func UpdateCustomerByID(log *slog.Logger, update UpdateCustomer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.customers.update.UpdateCustomerByID"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		var req storage.Customer
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := update.UpdateCustomer(ctx, id, req); err != nil {
			log.Error("failed to update customer", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "failed to update customer", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"customer_id": id,
			"status":      strconv.Itoa(http.StatusOK),
		})
	}
}
