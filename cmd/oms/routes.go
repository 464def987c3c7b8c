package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getfeerates "apparel-oms/http-server/admin/get"
	upfeerates "apparel-oms/http-server/admin/update"
	getchanges "apparel-oms/http-server/change-request/get"
	quotechange "apparel-oms/http-server/change-request/quote"
	filechange "apparel-oms/http-server/change-request/save"
	upchange "apparel-oms/http-server/change-request/update"
	getcustomers "apparel-oms/http-server/customers/get"
	savecustomer "apparel-oms/http-server/customers/save"
	upcustomer "apparel-oms/http-server/customers/update"
	getgates "apparel-oms/http-server/gates/get"
	upgate "apparel-oms/http-server/gates/update"
	generate_excel "apparel-oms/http-server/generate-report/generate-excel"
	getorders "apparel-oms/http-server/orders/get"
	saveorder "apparel-oms/http-server/orders/save"
	uporder "apparel-oms/http-server/orders/update"
	getqc "apparel-oms/http-server/qc/get"
	saveqc "apparel-oms/http-server/qc/save"
	getstock "apparel-oms/http-server/stock/get"
	savestock "apparel-oms/http-server/stock/save"
	upstock "apparel-oms/http-server/stock/update"
	gettimeline "apparel-oms/http-server/timeline/get"
	"apparel-oms/internal/config"
	"apparel-oms/internal/middleware/auth"
	"apparel-oms/internal/middleware/metrics"
	"apparel-oms/internal/service/changefee"
	generate_excel2 "apparel-oms/internal/service/generate-excel"
	"apparel-oms/internal/service/lifecycle"
	"apparel-oms/internal/storage/mysql"
)

func routes(
	cfg config.Config,
	log *slog.Logger,
	storage *mysql.Storage,
	lifecycleService *lifecycle.LifecycleService,
	detailsService *lifecycle.DetailsService,
	feeService *changefee.ChangeFeeService,
	genService *generate_excel2.GenerateExcelService,
) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(metrics.Collect)

	// orders
	router.Get("/api/orders", getorders.GetOrdersFilter(log, storage))
	router.Get("/api/orders/order/{orderNum}", getorders.GetOrderDetails(log, detailsService))
	router.Post("/api/orders/order/new", saveorder.SaveNewOrder(log, storage))
	router.Post("/api/orders/order/{id}/transition", uporder.UpdateOrderStatus(log, lifecycleService))
	router.Put("/api/orders/order/{id}/priority", uporder.UpdateOrderPriority(log, storage))

	// approval gates
	router.Get("/api/orders/order/{id}/gates", getgates.GetOrderGates(log, storage))
	router.Put("/api/gates/{id}", upgate.UpdateGate(log, storage))

	// change requests and fee quotes
	router.Post("/api/change-request/quote", quotechange.QuoteChangeFees(log, feeService))
	router.Post("/api/change-request", filechange.FileChangeRequest(log, feeService))
	router.Get("/api/change-request/by-order", getchanges.GetChangeRequestsByOrder(log, storage))
	router.Put("/api/change-request/{id}/status", upchange.UpdateChangeRequestStatus(log, storage))

	// quality control
	router.Post("/api/qc", saveqc.SubmitInspection(log, storage))
	router.Get("/api/qc/by-order", getqc.GetQCByOrder(log, storage))

	// delivery timeline
	router.Get("/api/orders/order/{id}/timeline", gettimeline.GetOrderTimeline(log, storage))

	// customers
	router.Get("/api/customers", getcustomers.GetCustomersFilter(log, storage))
	router.Post("/api/customers", savecustomer.SaveNewCustomer(log, storage))
	router.Put("/api/customers/{id}", upcustomer.UpdateCustomerByID(log, storage))

	// stock
	router.Get("/api/stock", getstock.GetStockItems(log, storage))
	router.Post("/api/stock", savestock.SaveNewStockItem(log, storage))
	router.Put("/api/stock/{id}", upstock.UpdateStockItemByID(log, storage))

	// excel order book
	router.Get("/api/report/excel", generate_excel.GenerateReportExcel(log, genService))

	router.Handle("/metrics", metrics.Handler())

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Get("/fee-rates", getfeerates.GetFeeRatesAdmin(log, storage))
	adminRouter.Put("/fee-rates/{phase}", upfeerates.UpdateFeeRateAdmin(log, storage))

	router.Mount("/api/admin", adminRouter)

	return router
}
