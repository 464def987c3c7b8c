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

type UpdateStock interface {
	UpdateStockItem(ctx context.Context, id int64, it storage.StockItem) error
}

func UpdateStockItemByID(log *slog.Logger, update UpdateStock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.stock.update.UpdateStockItemByID"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		var req storage.StockItem
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := update.UpdateStockItem(ctx, id, req); err != nil {
			log.Error("failed to update stock item", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "failed to update stock item", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"item_id": id,
			"status":  strconv.Itoa(http.StatusOK),
		})
	}
}
