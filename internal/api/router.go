package api

import (
	"context"
	"net/http"
	"time"

	"meal-planner/internal/api/handlers/health"
	planHandler "meal-planner/internal/api/handlers/plan"
	"meal-planner/internal/api/middleware"
	"meal-planner/internal/core/advisor"
	"meal-planner/internal/core/mealplan"
	"meal-planner/internal/core/spoonacular"
	"meal-planner/internal/infrastructure/config"
	"meal-planner/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// One submission covers a recipe search plus a handful of tip calls.
	timeoutDuration = 120 * time.Second
	// Request bodies are small JSON forms (1MB).
	maxBodySize = 1 << 20
)

// SetupRouter assembles the gin engine, middleware chain and services.
// tipCache may be nil when the tip cache is disabled.
func SetupRouter(cfg *config.Config, tipCache advisor.TipCache) (*gin.Engine, error) {
	common.LogInfo("starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))
	router.Use(middleware.Deduplication(cfg))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	common.LogInfo("initializing services",
		zap.Bool("tips_enabled", cfg.OpenRouter.Enabled),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Int("tip_workers", cfg.Tips.Workers),
		zap.String("model", cfg.OpenRouter.Model),
	)

	recipeClient := spoonacular.NewClient(cfg)

	// The advisory-tip stage is an injectable capability: one pipeline, a
	// no-op advisor when tips are turned off.
	var adv advisor.Advisor = advisor.Noop{}
	if cfg.OpenRouter.Enabled {
		adv = advisor.NewTipService(cfg, advisor.NewOpenRouterService(cfg), tipCache)
	}

	planService := mealplan.NewService(recipeClient, adv, cfg.Tips.Workers)

	// Per-request timeout and context injection.
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)
		if tipCache != nil {
			c.Set("tip_cache", tipCache)
		}

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeGatewayTimeout,
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
			return
		}
	})

	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	api := router.Group("/api/v1")
	{
		handler := planHandler.NewHandler(planService, recipeClient)
		tipHandler := planHandler.NewTipHandler(adv)

		planGroup := api.Group("/plan")
		{
			// Generate the weekly plan, shopping list and waste score
			planGroup.POST("/weekly", handler.HandleWeeklyPlan)

			// Plain-text exports of a generated plan
			planGroup.POST("/export/plan", handler.HandleExportPlan)
			planGroup.POST("/export/shopping", handler.HandleExportShopping)
		}

		recipeGroup := api.Group("/recipes")
		{
			// Diet-aware candidate search
			recipeGroup.POST("/search", handler.HandleRecipeSearch)
		}

		tipGroup := api.Group("/tips")
		{
			tipGroup.POST("/substitution", tipHandler.HandleSubstitutionTip)
		}
	}

	common.LogInfo("router setup completed",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("tips_enabled", cfg.OpenRouter.Enabled),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
