package router

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/hospital-admin/internal/handler"
	authHandler "github.com/jwalitptl/hospital-admin/internal/handler/auth"
	hospitalHandler "github.com/jwalitptl/hospital-admin/internal/handler/hospital"
	patientHandler "github.com/jwalitptl/hospital-admin/internal/handler/patient"
	prometheusHandler "github.com/jwalitptl/hospital-admin/internal/handler/prometheus"
	registrationHandler "github.com/jwalitptl/hospital-admin/internal/handler/registration"
	surgeonHandler "github.com/jwalitptl/hospital-admin/internal/handler/surgeon"
	wardHandler "github.com/jwalitptl/hospital-admin/internal/handler/ward"
	"github.com/jwalitptl/hospital-admin/internal/middleware"
)

type Config struct {
	RateLimit rate.Limit
	RateBurst int
	Version   string
}

type Router struct {
	engine *gin.Engine
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	authH *authHandler.Handler,
	registrationH *registrationHandler.Handler,
	hospitalH *hospitalHandler.Handler,
	wardH *wardHandler.Handler,
	patientH *patientHandler.Handler,
	surgeonH *surgeonHandler.Handler,
	promH *prometheusHandler.Handler,
	cfg Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)

	engine.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		promH.Middleware(),
		limiter.RateLimit(),
	)

	engine.GET("/health", handler.Health(cfg.Version))
	engine.GET("/metrics", promH.Handler())

	v1 := engine.Group("/api/v1")
	authH.RegisterRoutes(v1, auth)
	registrationH.RegisterRoutes(v1)
	hospitalH.RegisterRoutes(v1, auth)
	wardH.RegisterRoutes(v1, auth)
	patientH.RegisterRoutes(v1, auth)
	surgeonH.RegisterRoutes(v1, auth)

	return &Router{engine: engine}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
