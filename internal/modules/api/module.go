package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/fx"

	"screener_service/internal/modules/api/service"
	"screener_service/internal/modules/config"
	screenersvc "screener_service/internal/modules/screener/service"
	tickerssvc "screener_service/internal/modules/tickers/service"
	"screener_service/pkg/logger"
)

func NewMux(h *service.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/fields", h.Fields)
	mux.HandleFunc("/tickers/search", h.SearchTickers)
	mux.HandleFunc("/scan", h.Scan)
	return mux
}

func RunHTTP(lc fx.Lifecycle, cfg *config.Config, mux *http.ServeMux) {
	addr := fmt.Sprintf("%s:%d", cfg.Service.Host, cfg.Service.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           withCORS(cfg.CORS.Origins, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}
			logger.Info("listening on %s", addr)
			go func() { _ = srv.Serve(ln) }()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

func Module() fx.Option {
	return fx.Module("api",
		fx.Provide(
			func(s *screenersvc.Screener, ix *tickerssvc.Index) *service.Handler {
				return service.NewHandler(s, ix)
			},
			NewMux,
		),
		fx.Invoke(RunHTTP),
	)
}
