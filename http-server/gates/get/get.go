package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"apparel-oms/internal/service/gates"
	"apparel-oms/internal/storage"
)

type GetGates interface {
	GetGatesByOrder(ctx context.Context, orderID int64) ([]storage.ApprovalGate, error)
}

type GateView struct {
	storage.ApprovalGate
	ProgressPercent int `json:"progress_percent"`
}

type Response struct {
	Gates   []GateView         `json:"gates"`
	Summary gates.GatesSummary `json:"summary"`
	Status  string             `json:"status"`
}

func GetOrderGates(log *slog.Logger, getGates GetGates) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.gates.get.GetOrderGates"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := getGates.GetGatesByOrder(ctx, id)
		if err != nil {
			log.Error("failed to load gates", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "failed to load gates", http.StatusInternalServerError)
			return
		}

		views := make([]GateView, 0, len(list))
		for _, g := range list {
			views = append(views, GateView{
				ApprovalGate:    g,
				ProgressPercent: gates.ProgressPercent(g),
			})
		}

		render.JSON(w, r, Response{
			Gates:   views,
			Summary: gates.Summarize(list),
			Status:  strconv.Itoa(http.StatusOK),
		})
	}
}
