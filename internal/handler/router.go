package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/students-api/internal/middleware"
	"github.com/noah-isme/students-api/internal/service"
	"github.com/noah-isme/students-api/pkg/config"
	appErrors "github.com/noah-isme/students-api/pkg/errors"
	"github.com/noah-isme/students-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/students-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/students-api/pkg/middleware/requestid"
	"github.com/noah-isme/students-api/pkg/response"
)

// RouterDeps groups everything NewRouter wires together.
type RouterDeps struct {
	Config   *config.Config
	Logger   *zap.Logger
	Metrics  *service.MetricsService
	Students *StudentHandler
	System   *SystemHandler
}

// NewRouter assembles the gin engine with middleware and routes.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	logr := deps.Logger
	if logr == nil {
		logr = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if cfg.Metrics.Enabled && deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, appErrors.ErrNotFound.WithMessage("route not found"))
	})

	r.GET("/health", deps.System.Health)
	r.GET("/ready", deps.System.Ready)
	if cfg.Metrics.Enabled && deps.Metrics != nil {
		r.GET(cfg.Metrics.Path, deps.System.Prometheus)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		r.GET("/docs", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
		})
	}

	api := r.Group(cfg.APIPrefix)
	students := api.Group("/students")
	students.POST("", deps.Students.Create)
	students.GET("/active", deps.Students.ListActive)

	return r
}
