// Package app contains the application setup for the store manager service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/abgdnv/storemanager/internal/config"
	"github.com/abgdnv/storemanager/internal/service"
	"github.com/abgdnv/storemanager/internal/store"
	"github.com/abgdnv/storemanager/internal/transport/rest"
	"github.com/abgdnv/storemanager/pkg/messaging"
	"github.com/abgdnv/storemanager/pkg/server"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Dependencies struct {
	ProductService service.ProductService
	SaleService    service.SaleService
	Logger         *slog.Logger
}

func SetupDependencies(dbPool *pgxpool.Pool, publisher messaging.Publisher, logger *slog.Logger) *Dependencies {
	pService := service.NewService(store.NewPgProductStore(dbPool))
	sService := service.NewSaleService(store.NewPgSaleStore(dbPool), publisher)

	return &Dependencies{
		ProductService: pService,
		SaleService:    sService,
		Logger:         logger,
	}
}

// SetupHttpHandler initializes the HTTP router and routes for the application.
// Used by tests to exercise the full HTTP surface without a listener.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the application.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	productHandler := rest.NewProductHandler(deps.ProductService, deps.Logger)
	productHandler.RegisterRoutes(mux)
	saleHandler := rest.NewSaleHandler(deps.SaleService, deps.Logger)
	saleHandler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures an HTTP server for the application.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
