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

type GetQC interface {
	GetQCByOrder(ctx context.Context, orderID int64) ([]storage.QCRecord, error)
}

func GetQCByOrder(log *slog.Logger, getQC GetQC) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.qc.get.GetQCByOrder"

		orderIDStr := r.URL.Query().Get("order_id")
		orderID, err := strconv.ParseInt(orderIDStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid order_id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		records, err := getQC.GetQCByOrder(ctx, orderID)
		if err != nil {
			log.Error("failed to load qc records", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "failed to load qc records", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"qc_records": records,
			"status":     strconv.Itoa(http.StatusOK),
		})
	}
}
