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

type UpdateChangeRequest interface {
	UpdateChangeRequestStatus(ctx context.Context, id int64, status storage.ChangeRequestStatus) error
}

var allowedStatuses = map[storage.ChangeRequestStatus]struct{}{
	storage.CRAwaitingCustomer: {},
	storage.CRAwaitingPayment:  {},
	storage.CRInProgress:       {},
	storage.CRCompleted:        {},
	storage.CRCancelled:        {},
	storage.CRRejected:         {},
}

// UpdateChangeRequestStatus moves a filed change request through its
// workflow: customer review, payment, execution, completion.
func UpdateChangeRequestStatus(log *slog.Logger, update UpdateChangeRequest) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.change_request.update.UpdateChangeRequestStatus"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		var req struct {
			Status storage.ChangeRequestStatus `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		if _, ok := allowedStatuses[req.Status]; !ok {
			http.Error(w, "unknown change request status", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := update.UpdateChangeRequestStatus(ctx, id, req.Status); err != nil {
			log.Error("failed to update change request", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "failed to update change request", http.StatusInternalServerError)
			return
		}

		log.Info("change request updated", slog.Int64("id", id), slog.String("new_status", string(req.Status)))

		render.JSON(w, r, map[string]interface{}{
			"id":     id,
			"status": strconv.Itoa(http.StatusOK),
		})
	}
}
