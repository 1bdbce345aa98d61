package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/handlers/v1/category"
	"github.com/carson-networks/finance-server/internal/handlers/v1/statistics"
	"github.com/carson-networks/finance-server/internal/handlers/v1/status"
	"github.com/carson-networks/finance-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-server/internal/identity"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

const shutdownTimeout = 10 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

type Rest struct {
	Logger         *logrus.Logger
	Port           string
	Service        *service.Service
	UserID         int64
	AllowedOrigins []string
	Pinger         pinger
}

// RegisterHandlers registers every /api operation on api.
func RegisterHandlers(api huma.API, svc *service.Service) {
	transaction.NewListTransactionsHandler(svc.Transaction).Register(api)
	transaction.NewCreateTransactionHandler(svc.Transaction).Register(api)
	transaction.NewUpdateTransactionHandler(svc.Transaction).Register(api)
	transaction.NewDeleteTransactionHandler(svc.Transaction).Register(api)
	transaction.NewDashboardHandler(svc.Transaction).Register(api)

	category.NewListCategoriesHandler(svc.Category).Register(api)
	category.NewCreateCategoryHandler(svc.Category).Register(api)
	category.NewUpdateCategoryHandler(svc.Category).Register(api)
	category.NewDeleteCategoryHandler(svc.Category).Register(api)

	statistics.NewMonthlySummaryHandler(svc.Statistics).Register(api)
	statistics.NewCategoryBreakdownHandler(svc.Statistics).Register(api)
	statistics.NewTrendHandler(svc.Statistics).Register(api)
	statistics.NewKeyMetricsHandler(svc.Statistics).Register(api)
}

// Handler builds the complete HTTP handler: /status, the huma operations
// with their OpenAPI document, and CORS around all of it.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Pinger)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	config := huma.DefaultConfig("Finanzas API", "1.0.0")
	// Responses are plain JSON without a $schema link.
	config.CreateHooks = nil
	api := humago.New(mux, config)
	// Middlewares apply to operations registered after this call.
	api.UseMiddleware(logging.Middleware(r.Logger), identity.Middleware(r.UserID))
	RegisterHandlers(api, r.Service)

	return cors.New(cors.Options{
		AllowedOrigins: r.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", logging.RequestIDHeader},
		ExposedHeaders: []string{logging.RequestIDHeader},
	}).Handler(mux)
}

// Serve listens until ctx is done and then shuts the server down gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	listenErr := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		listenErr <- server.ListenAndServe()
	}()

	select {
	case err := <-listenErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
