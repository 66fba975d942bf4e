package http

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/comitanigiacomo/kanso-calendar/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-calendar/internal/core/services"
)

// HealthCheck reports whether one dependency is reachable.
type HealthCheck func(ctx context.Context) error

type RouterDependencies struct {
	HabitHandler        *HabitHandler
	ProgressHandler     *ProgressHandler
	StatsHandler        *StatsHandler
	NotificationHandler *NotificationHandler

	// AuthHandler and TokenService are nil when the API is open.
	AuthHandler  *AuthHandler
	TokenService *services.TokenService

	// Redis enables the rate limiter when RateLimit.Limit is positive.
	Redis     *redis.Client
	RateLimit middleware.RateLimit

	HealthChecks map[string]HealthCheck
	StartTime    time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	if deps.Redis != nil && deps.RateLimit.Limit > 0 {
		router.Use(middleware.RateLimiterMiddleware(deps.Redis, deps.RateLimit))
	}

	router.GET("/health", healthHandler(deps.HealthChecks, deps.StartTime))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")

	protected := apiV1.Group("")
	if deps.TokenService != nil {
		if deps.AuthHandler != nil {
			deps.AuthHandler.RegisterRoutes(apiV1)
		}
		protected.Use(middleware.AuthMiddleware(deps.TokenService))
	}
	{
		deps.HabitHandler.RegisterRoutes(protected)
		deps.ProgressHandler.RegisterRoutes(protected)
		deps.StatsHandler.RegisterRoutes(protected)
		deps.NotificationHandler.RegisterRoutes(protected)
	}

	return router
}

func healthHandler(checks map[string]HealthCheck, started time.Time) gin.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		body := gin.H{"status": "ok"}
		statusCode := http.StatusOK

		for _, name := range names {
			state := "connected"
			if err := checks[name](ctx); err != nil {
				state = "unreachable"
				statusCode = http.StatusServiceUnavailable
				body["status"] = "degraded"
			}
			body[name] = state
		}

		body["uptime"] = time.Since(started).String()
		c.JSON(statusCode, body)
	}
}
