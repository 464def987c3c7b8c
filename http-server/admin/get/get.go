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

type FeeRates interface {
	GetFeeRates(ctx context.Context) ([]*storage.FeeRateAdmin, error)
}

func GetFeeRatesAdmin(log *slog.Logger, rates FeeRates) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.admin.get.GetFeeRatesAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := rates.GetFeeRates(ctx)
		if err != nil {
			log.Error("failed to load fee rates", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "failed to load fee rates", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"fee_rates": list,
			"status":    strconv.Itoa(http.StatusOK),
		})
	}
}
