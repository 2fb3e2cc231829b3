package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"foundhex-site/pkg/middleware"
	"foundhex-site/pkg/pages"
	"foundhex-site/pkg/services"
)

// RouterDeps are the services and settings the router is built from
type RouterDeps struct {
	SignupService  services.SignupService
	DemoService    services.DemoBookingService
	RateLimiter    *middleware.RateLimiter
	AllowedOrigins []string
	SessionTTL     time.Duration
}

// NewRouter registers every route of the site
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Metrics(),
		middleware.Logger(),
		middleware.CORS(deps.AllowedOrigins...),
		middleware.SecurityHeaders(),
	)

	handlers := NewHandlers(deps.SignupService, deps.DemoService, deps.SessionTTL)

	limited := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if deps.RateLimiter == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{deps.RateLimiter.Middleware(), h}
	}

	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := router.Group("/api")
	apiGroup.GET("/catalog", handlers.Catalog)
	apiGroup.POST("/demo-bookings", limited(handlers.BookDemo)...)

	sessions := apiGroup.Group("/signup/sessions")
	sessions.POST("", handlers.StartSignup)
	sessions.GET("/:id", handlers.GetSignup)
	sessions.PATCH("/:id/fields", handlers.UpdateSignupFields)
	sessions.POST("/:id/advance", handlers.AdvanceSignup)
	sessions.POST("/:id/retreat", handlers.RetreatSignup)
	sessions.PUT("/:id/plan", handlers.SelectSignupPlan)
	sessions.POST("/:id/submit", limited(handlers.SubmitSignup)...)

	router.GET("/", handlers.HomePage)
	router.GET("/repx", handlers.RepXPage)
	router.GET("/logos", handlers.LogosPage)
	router.GET(pages.SignupPath, handlers.SignupPage)
	router.POST(pages.SignupPath, handlers.SignupAction)
	router.POST(pages.DemoPath, limited(handlers.DemoAction)...)

	return router
}
