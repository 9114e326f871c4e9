package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/gorilla/handlers"
	log "github.com/sirupsen/logrus"

	"github.com/pwlogicon/pwlogicon/config"
	"github.com/pwlogicon/pwlogicon/module/core"
	corehttp "github.com/pwlogicon/pwlogicon/module/core/internal/handler/http"
)

func main() {
	configPath := flag.String("c", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := config.ConfigureLogging(cfg); err != nil {
		log.Fatalf("logging: %v", err)
	}

	db, err := config.NewPostgres(cfg)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer func() { _ = db.Close() }()

	rdb, err := config.NewRedis(cfg)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer func() { _ = rdb.Close() }()

	if err := applyMigrations(cfg); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	coreModule := core.Build(db)

	r := gin.Default()

	health := config.NewHealthChecker(db, rdb)
	health.Register(r)

	api := r.Group("", corehttp.RateLimit(rdb, cfg.RateLimitPerMinute, time.Minute))
	coreModule.RegisterRoutes(api)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: cors(r),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("listening on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}

func applyMigrations(cfg *config.Config) error {
	m, err := migrate.New(cfg.MigrationsPath, cfg.PostgresDSN)
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("no new migrations to apply")
			return nil
		}
		return err
	}

	log.Info("migrations applied")
	return nil
}
