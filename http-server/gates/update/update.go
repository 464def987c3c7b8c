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

	"apparel-oms/internal/service/gates"
	"apparel-oms/internal/storage"
)

type GateUpdater interface {
	UpdateGate(ctx context.Context, gateID int64, upd storage.UpdateGate) error
	GetGatesByOrder(ctx context.Context, orderID int64) ([]storage.ApprovalGate, error)
}

// UpdateGate writes the gate change and answers with the fresh unlock
// summary so the frontend can flip the production button without a second
// round trip.
func UpdateGate(log *slog.Logger, updater GateUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.gates.update.UpdateGate"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		var req struct {
			OrderID int64              `json:"order_id"`
			Update  storage.UpdateGate `json:"update"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateGate(ctx, id, req.Update); err != nil {
			log.Error("failed to update gate", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "failed to update gate", http.StatusInternalServerError)
			return
		}

		list, err := updater.GetGatesByOrder(ctx, req.OrderID)
		if err != nil {
			log.Error("failed to reload gates", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "failed to reload gates", http.StatusInternalServerError)
			return
		}

		log.Info("gate updated", slog.Int64("gate_id", id), slog.Int64("order_id", req.OrderID))

		render.JSON(w, r, map[string]interface{}{
			"gate_id": id,
			"summary": gates.Summarize(list),
			"status":  strconv.Itoa(http.StatusOK),
		})
	}
}
