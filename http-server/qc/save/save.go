package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"apparel-oms/internal/service/qc"
	"apparel-oms/internal/storage"
)

type QCStorage interface {
	SaveQCRecord(ctx context.Context, rec storage.QCRecord) (int64, error)
}

// SubmitInspection evaluates the submitted checkpoint results and persists
// the record with its derived pass rate and verdict.
func SubmitInspection(log *slog.Logger, store QCStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.qc.save.SubmitInspection"

		var req storage.QCRecord
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		if req.OrderID == 0 {
			http.Error(w, "order_id is required", http.StatusBadRequest)
			return
		}

		rec, err := qc.Evaluate(req)
		if err != nil {
			log.Error("invalid inspection data", slog.String("op", op), slog.String("error", err.Error()))
			if errors.Is(err, qc.ErrInvalidQuantity) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := store.SaveQCRecord(ctx, rec)
		if err != nil {
			log.Error("failed to save qc record", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "failed to save qc record", http.StatusInternalServerError)
			return
		}
		rec.ID = id

		log.Info("inspection recorded", slog.Int64("id", id), slog.Int64("order_id", rec.OrderID),
			slog.Int("pass_rate", rec.PassRate), slog.String("result", string(rec.OverallResult)))

		render.JSON(w, r, rec)
	}
}
