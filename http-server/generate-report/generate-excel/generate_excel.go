package generate_excel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

type OrderBookGenerator interface {
	GenerateOrderBook(ctx context.Context, year, month int) ([]byte, error)
}

func GenerateReportExcel(log *slog.Logger, gen OrderBookGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.generate_report.GenerateReportExcel"

		year, err := strconv.Atoi(r.URL.Query().Get("year"))
		if err != nil {
			http.Error(w, "Invalid year", http.StatusBadRequest)
			return
		}
		month, err := strconv.Atoi(r.URL.Query().Get("month"))
		if err != nil {
			http.Error(w, "Invalid month", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		data, err := gen.GenerateOrderBook(ctx, year, month)
		if err != nil {
			log.Error("failed to generate report", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "failed to generate report", http.StatusInternalServerError)
			return
		}

		filename := fmt.Sprintf("order-book-%d-%02d.xlsx", year, month)
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		w.Write(data)
	}
}
