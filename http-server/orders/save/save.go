package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"apparel-oms/internal/constants"
	"apparel-oms/internal/service/sla"
	"apparel-oms/internal/storage"
)

type SaveOrder interface {
	SaveOrder(ctx context.Context, o storage.NewOrder) (int64, error)
	SaveGate(ctx context.Context, g storage.ApprovalGate) (int64, error)
}

type Response struct {
	OrderID  int64                  `json:"order_id"`
	Timeline []storage.TimelineStep `json:"timeline"`
	Status   string                 `json:"status"`
}

func SaveNewOrder(log *slog.Logger, save SaveOrder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.orders.save.SaveNewOrder"

		var req storage.NewOrder
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		if req.OrderNum == "" || req.CustomerID == 0 {
			http.Error(w, "order_num and customer_id are required", http.StatusBadRequest)
			return
		}
		if req.PriorityCode == "" {
			req.PriorityCode = storage.PriorityNormal
		}
		if req.OrderDate.IsZero() {
			req.OrderDate = time.Now()
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := save.SaveOrder(ctx, req)
		if err != nil {
			log.Error("failed to save order", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "failed to save order", http.StatusInternalServerError)
			return
		}

		// every order starts with the full gate chain; design and mockup
		// additionally wait for the customer's confirmation
		for _, gt := range constants.GateOrder {
			_, err := save.SaveGate(ctx, storage.ApprovalGate{
				OrderID:                  id,
				GateType:                 gt,
				Status:                   storage.GatePending,
				IsMandatory:              true,
				RequiresCustomerApproval: gt == storage.GateDesign || gt == storage.GateMockup,
			})
			if err != nil {
				log.Error("failed to seed gate", slog.String("op", op),
					slog.String("gate", string(gt)), slog.String("error", err.Error()))
				http.Error(w, "failed to seed gates", http.StatusInternalServerError)
				return
			}
		}

		log.Info("order created", slog.Int64("id", id), slog.String("order_num", req.OrderNum))

		// initial deadline schedule shown to operators right after creation
		timeline := sla.Project(req.OrderDate, req.PriorityCode, constants.DefaultStepTemplate)

		render.JSON(w, r, Response{
			OrderID:  id,
			Timeline: timeline,
			Status:   strconv.Itoa(http.StatusOK),
		})
	}
}
