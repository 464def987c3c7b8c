package quote

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

type FeeQuoter interface {
	Quote(ctx context.Context, orderID int64, changeType storage.ChangeType, baseAmount float64, opts changefee.Options, affectsSchedule bool) (storage.FeeBreakdown, storage.ImpactLevel, error)
}

type Resp struct {
	Fees        storage.FeeBreakdown `json:"fees"`
	ImpactLevel storage.ImpactLevel  `json:"impact_level"`
}

func QuoteChangeFees(log *slog.Logger, quoter FeeQuoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.change_request.quote.QuoteChangeFees"

		var req struct {
			OrderID         int64              `json:"order_id"`
			ChangeType      storage.ChangeType `json:"change_type"`
			BaseAmount      float64            `json:"base_amount"`
			Options         changefee.Options  `json:"options"`
			AffectsSchedule bool               `json:"affects_schedule"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		fees, impact, err := quoter.Quote(ctx, req.OrderID, req.ChangeType, req.BaseAmount, req.Options, req.AffectsSchedule)
		if err != nil {
			log.Error("failed to quote change fees", slog.String("op", op), slog.String("error", err.Error()))
			if errors.Is(err, changefee.ErrInvalidAmount) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Resp{
			Fees:        fees,
			ImpactLevel: impact,
		})
	}
}
