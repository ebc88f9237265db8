package main

import (
	"context"
	"time"

	"github.com/vfg2006/cashpulse-api/infrastructure/database/postgres"
	"github.com/vfg2006/cashpulse-api/infrastructure/integrator/email"
	"github.com/vfg2006/cashpulse-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/cashpulse-api/infrastructure/integrator/payments"
	"github.com/vfg2006/cashpulse-api/infrastructure/migration"
	"github.com/vfg2006/cashpulse-api/infrastructure/repository"
	"github.com/vfg2006/cashpulse-api/internal/api"
	"github.com/vfg2006/cashpulse-api/internal/config"
	"github.com/vfg2006/cashpulse-api/internal/usecases/billing"
	"github.com/vfg2006/cashpulse-api/internal/usecases/mailing"
	"github.com/vfg2006/cashpulse-api/internal/usecases/narrating"
	"github.com/vfg2006/cashpulse-api/internal/usecases/reporting"
	"github.com/vfg2006/cashpulse-api/pkg/log"
)

const pingTimeout = 5 * time.Second

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.WithError(err).Fatal("config: loading failed")
	}

	log.Setup(cfg.App.LogLevel)
	log.L.WithField("env", cfg.App.Env).Infof("config: log level %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	profileRepo := repository.NewProfileRepository(pgConn)

	generator, err := gemini.New(ctx, cfg)
	if err != nil {
		log.L.WithError(err).Fatal("gemini: client setup failed")
	}

	paymentIntegrator := payments.New(cfg)
	mailer := email.New(cfg)

	narrator := narrating.NewService(generator)
	analyzer := reporting.NewService(narrator)
	biller := billing.NewService(cfg, paymentIntegrator, profileRepo)
	welcomer := mailing.NewService(cfg, mailer)

	server, err := api.New(cfg, analyzer, biller, welcomer)
	if err != nil {
		log.L.WithError(err).Fatal("server: setup failed")
	}

	if err := server.Run(ctx); err != nil {
		log.L.WithError(err).Error("server: exited with error")
	}
}

// pgconn opens the pool and applies the schema. An unreachable database is
// logged and tolerated: analysis and email do not touch it.
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("postgres: opening pool failed")
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := conn.Ping(pingCtx); err != nil {
		log.L.WithError(err).Warn("postgres: database unreachable, subscription updates will fail")
		return conn
	}

	if err := migration.Apply(pingCtx, conn); err != nil {
		log.L.WithError(err).Warn("postgres: applying schema failed")
		return conn
	}

	log.L.Info("postgres: connected")
	return conn
}
