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

type GetStock interface {
	GetStockItems(ctx context.Context, category, search string) ([]*storage.StockItem, error)
}

func GetStockItems(log *slog.Logger, getStock GetStock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.stock.get.GetStockItems"

		category := r.URL.Query().Get("category")
		search := r.URL.Query().Get("search")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		items, err := getStock.GetStockItems(ctx, category, search)
		if err != nil {
			log.Error("failed to load stock", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "failed to load stock", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"items":  items,
			"status": strconv.Itoa(http.StatusOK),
		})
	}
}
