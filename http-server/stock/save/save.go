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

type SaveStock interface {
	SaveStockItem(ctx context.Context, it storage.StockItem) (int64, error)
}

func SaveNewStockItem(log *slog.Logger, save SaveStock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.stock.save.SaveNewStockItem"

		var req storage.StockItem
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		if req.SKU == "" || req.Name == "" {
			http.Error(w, "sku and name are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := save.SaveStockItem(ctx, req)
		if err != nil {
			log.Error("failed to save stock item", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "failed to save stock item", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"item_id": id,
			"status":  strconv.Itoa(http.StatusOK),
		})
	}
}
