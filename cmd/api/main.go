package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meal-planner/internal/api"
	"meal-planner/internal/core/advisor"
	"meal-planner/internal/infrastructure/config"
	"meal-planner/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Logger must come after config so the level is known.
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	tipCache, err := newTipCache(cfg)
	if err != nil {
		common.LogFatal("Failed to initialize tip cache", zap.Error(err))
	}
	if tipCache != nil {
		defer tipCache.Close()
	}

	router, err := api.SetupRouter(cfg, tipCache)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		common.LogInfo("starting application",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
			zap.Int("port", cfg.Server.Port),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server",
				zap.Error(err),
			)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}

// newTipCache builds the configured tip-cache backend. Returns nil when the
// cache is disabled.
func newTipCache(cfg *config.Config) (advisor.TipCache, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}

	if cfg.Cache.Backend == "redis" {
		return advisor.NewRedisCache(&cfg.Cache)
	}

	manager := advisor.NewCacheManager(cfg)
	if manager == nil {
		return nil, fmt.Errorf("failed to initialize in-memory tip cache")
	}
	return manager, nil
}
