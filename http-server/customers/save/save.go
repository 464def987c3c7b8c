package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"apparel-oms/internal/storage"
)

type SaveCustomer interface {
	SaveCustomer(ctx context.Context, c storage.Customer) (int64, error)
}

func SaveNewCustomer(log *slog.Logger, save SaveCustomer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.customers.save.SaveNewCustomer"

		var req storage.Customer
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		if req.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := save.SaveCustomer(ctx, req)
		if err != nil {
			log.Error("failed to save customer", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "failed to save customer", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"customer_id": id,
			"status":      strconv.Itoa(http.StatusOK),
		})
	}
}
