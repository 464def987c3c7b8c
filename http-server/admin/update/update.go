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

type UpdateFeeRates interface {
	UpdateFeeRate(ctx context.Context, phase storage.ProductionPhase, r storage.FeeRateAdmin) error
}

func UpdateFeeRateAdmin(log *slog.Logger, rates UpdateFeeRates) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.admin.update.UpdateFeeRateAdmin"

		phase := storage.ProductionPhase(chi.URLParam(r, "phase"))

		var req storage.FeeRateAdmin
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := rates.UpdateFeeRate(ctx, phase, req); err != nil {
			log.Error("failed to update fee rate", slog.String("op", op),
				slog.String("phase", string(phase)), slog.String("error", err.Error()))
			http.Error(w, "failed to update fee rate", http.StatusInternalServerError)
			return
		}

		log.Info("fee rate updated", slog.String("phase", string(phase)))

		render.JSON(w, r, map[string]interface{}{
			"phase":  phase,
			"status": strconv.Itoa(http.StatusOK),
		})
	}
}
