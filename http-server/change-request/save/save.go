package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"apparel-oms/internal/service/changefee"
	"apparel-oms/internal/storage"
)

type ChangeFiler interface {
	File(ctx context.Context, orderID int64, changeType storage.ChangeType, baseAmount float64, opts changefee.Options, affectsSchedule bool, description *string) (*storage.ChangeRequest, error)
}

func FileChangeRequest(log *slog.Logger, filer ChangeFiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.change_request.save.FileChangeRequest"

		var req struct {
			OrderID         int64              `json:"order_id"`
			ChangeType      storage.ChangeType `json:"change_type"`
			BaseAmount      float64            `json:"base_amount"`
			Options         changefee.Options  `json:"options"`
			AffectsSchedule bool               `json:"affects_schedule"`
			Description     *string            `json:"description"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		if req.OrderID == 0 || req.ChangeType == "" {
			http.Error(w, "order_id and change_type are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		cr, err := filer.File(ctx, req.OrderID, req.ChangeType, req.BaseAmount, req.Options, req.AffectsSchedule, req.Description)
		if err != nil {
			log.Error("failed to file change request", slog.String("op", op), slog.String("error", err.Error()))
			if errors.Is(err, changefee.ErrInvalidAmount) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "failed to file change request", http.StatusInternalServerError)
			return
		}

		log.Info("change request filed", slog.Int64("id", cr.ID), slog.Int64("order_id", cr.OrderID),
			slog.String("impact", string(cr.ImpactLevel)))

		render.JSON(w, r, cr)
	}
}
