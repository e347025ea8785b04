package v1

import (
	"github.com/gin-gonic/gin"

	"convert-api/internal/infrastructure/ratelimit"
	"convert-api/internal/interfaces/httpserver/handlers"
	"convert-api/internal/interfaces/httpserver/middlewares"
)

// Routes encapsulates versioned route registration.
type Routes struct {
	handlers *handlers.Provider
	limiter  *ratelimit.Limiter
}

func NewRoutes(provider *handlers.Provider, limiter *ratelimit.Limiter) *Routes {
	return &Routes{handlers: provider, limiter: limiter}
}

// Register attaches all v1 routes under /v1 prefix. Only the conversion
// endpoint consumes rate-limit quota; the read-only endpoints stay open.
func (r *Routes) Register(router gin.IRouter) {
	group := router.Group("/v1")
	group.GET("/formats", r.handlers.Convert.Formats)
	group.GET("/rate-limit-status", r.handlers.Convert.RateLimitStatus)

	limited := group.Group("")
	limited.Use(middlewares.RateLimitMiddleware(r.limiter))
	limited.POST("/convert/:conversion", r.handlers.Convert.Convert)
}
