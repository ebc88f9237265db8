package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/cashpulse-api/internal/api/handler"
	"github.com/vfg2006/cashpulse-api/internal/api/handler/router"
	"github.com/vfg2006/cashpulse-api/internal/config"
	"github.com/vfg2006/cashpulse-api/internal/usecases/billing"
	"github.com/vfg2006/cashpulse-api/internal/usecases/mailing"
	"github.com/vfg2006/cashpulse-api/internal/usecases/reporting"
	"github.com/vfg2006/cashpulse-api/pkg/log"
	"github.com/vfg2006/cashpulse-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	analyzer reporting.Analyzer,
	biller billing.Biller,
	welcomer mailing.WelcomeSender,
) (*Server, error) {
	if config == nil {
		return nil, fmt.Errorf("api: config is required")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, analyzer, biller, welcomer),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler builds the routed handler behind the global middleware chain.
func NewHandler(
	config *config.Config,
	analyzer reporting.Analyzer,
	biller billing.Biller,
	welcomer mailing.WelcomeSender,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Reporting(analyzer)...),
		router.WithRoutes(handler.Billing(biller)...),
		router.WithRoutes(handler.Mailing(welcomer)...),
	)

	return alice.New(globalMiddlewares(config.Cors.AllowedOrigins)...).Then(rt)
}

// globalMiddlewares wraps every route. Logging is outermost so a recovered
// panic still carries the correlation id and gets a completion line.
func globalMiddlewares(allowedOrigins []string) []alice.Constructor {
	return []alice.Constructor{
		middleware.Logging(),
		middleware.LogPanic(),
		middleware.Cors(allowedOrigins),
	}
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("server: listening")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("server: stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("server: interrupt received")
	case <-ctx.Done():
		log.L.Info("server: context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithField("timeout", shutdownTimeout.String()).Info("server: shutting down")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("server: shutdown failed")
		return err
	}

	log.L.Info("server: shut down")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
