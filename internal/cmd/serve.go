package cmd

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"orderstatuscolor/server/internal/api"
	"orderstatuscolor/server/internal/config"
	"orderstatuscolor/server/internal/database"
	"orderstatuscolor/server/internal/services"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the admin order list coloring endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := config.Load()
	setupLogging(cfg)

	log.WithField("database_url", database.RedactURL(cfg.DatabaseURL)).Info("Connecting to PostgreSQL")
	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		return errors.Wrap(err, "postgres is required for order statuses and orders")
	}
	defer database.ClosePostgres(db)

	overrides, closeOverrides, err := newOverrideSource(cfg, db)
	if err != nil {
		return err
	}
	defer closeOverrides()

	colorService := services.NewOrderStatusColorService(
		overrides,
		services.NewOrderStatusRepository(db),
		cfg.DefaultColor,
		cfg.Opacity,
	)
	adminController := api.NewAdminController(colorService, services.NewOrderRepository(db))

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.ServerPort,
		Handler:           api.NewRouter(adminController),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(log.Fields{"port": cfg.ServerPort, "color_store": cfg.ColorStore}).Info("Server starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "server failed")
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newOverrideSource picks the configured color store. The returned func releases it.
func newOverrideSource(cfg *config.Config, db *gorm.DB) (services.OverrideSource, func(), error) {
	if cfg.ColorStore != config.StoreRedis {
		return services.NewPostgresOverrideSource(db), func() {}, nil
	}

	client, err := database.ConnectRedis(cfg.RedisURL, cfg.RedisSentinelAddrs, cfg.RedisMasterName)
	if err != nil {
		return nil, nil, errors.Wrap(err, "redis color store selected but unavailable")
	}
	closeFn := func() {
		if err := database.CloseRedis(client); err != nil {
			log.WithError(err).Warn("Closing Redis")
		}
	}
	return services.NewRedisOverrideSource(client, cfg.RedisColorKey), closeFn, nil
}
