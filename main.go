package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"selfchart/adapters/db/postgres/migrations"
	"selfchart/adapters/geo"
	pgstore "selfchart/adapters/postgres"
	"selfchart/adapters/sqlite"
	"selfchart/app"
	"selfchart/internal"
	"selfchart/internal/config"
	"selfchart/ports"
	"selfchart/ui"
)

func main() {
	// .env is optional; real deployments use the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger := internal.NewDefaultLogger()
	gin.SetMode(cfg.Server.GinMode)

	repo, pinger, cleanup, err := openStore(cfg)
	if err != nil {
		log.Fatalf("store error: %v", err)
	}
	defer cleanup()

	var geocoder *geo.Geocoder
	if cfg.Geo.Enabled {
		geocoder = geo.NewGeocoder(cfg.Geo.BaseURL)
	}

	readings := app.NewReadingService(repo, int64(cfg.Store.MaxPendingSaves), logger)
	server := ui.NewServer(readings, geocoder, logger)

	apiSrv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: server.Handler(),
	}
	opsSrv := &http.Server{
		Addr:    ":" + cfg.Server.OpsPort,
		Handler: ui.NewOpsRouter(pinger),
	}

	var g errgroup.Group
	g.Go(func() error {
		logger.Info("api listening on %s", apiSrv.Addr)
		return apiSrv.ListenAndServe()
	})
	g.Go(func() error {
		logger.Info("ops listening on %s", opsSrv.Addr)
		return opsSrv.ListenAndServe()
	})

	err = g.Wait()

	// Let in-flight background saves finish before exiting.
	readings.Drain()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("server failed: %v", err)
	}
}

// openStore opens the configured reading store and, for postgres, applies
// pending migrations.
func openStore(cfg *config.Config) (ports.ReadingRepository, ui.Pinger, func(), error) {
	switch cfg.Store.Backend {
	case "sqlite":
		store, err := sqlite.Open(cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		return store, store, func() { store.Close() }, nil

	default: // postgres
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			return nil, nil, nil, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := migrations.NewMigrator(db.DB).Up(ctx); err != nil {
			db.Close()
			return nil, nil, nil, err
		}

		return pgstore.NewReadingRepository(db), db, func() { db.Close() }, nil
	}
}
