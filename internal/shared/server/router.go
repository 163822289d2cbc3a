package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mailcue-backend/internal/catalog"
	"mailcue-backend/internal/compound"
	"mailcue-backend/internal/rules"
	"mailcue-backend/internal/services/health"
	"mailcue-backend/internal/shared/config"
	"mailcue-backend/internal/shared/metrics"
	"mailcue-backend/internal/shared/server/middleware"
	"mailcue-backend/internal/shared/server/respond"
	"mailcue-backend/internal/suggestions"
)

// NewRouter loads the catalogs and constructs the Gin engine with
// middleware and routes registered. Catalog defects fail here, before the
// first request is served.
func NewRouter(cfg config.Config) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.APIKey(cfg.APIKey),
	)

	// Dependencies
	cat, err := catalog.Load(cfg.CatalogDir)
	if err != nil {
		return nil, err
	}
	engine, err := rules.NewEngine(cat)
	if err != nil {
		return nil, err
	}
	registry, err := compound.NewRegistry(compound.Builtin(), compound.BuiltinRules(), cat)
	if err != nil {
		return nil, err
	}
	suggestSvc := suggestions.NewService(engine, registry)
	suggestHandler := suggestions.NewHandler(suggestSvc)
	healthSvc := health.NewService(cat.Len(), registry.Count().Total)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	api.GET("/metrics", metrics.Handler())
	suggestHandler.RegisterRoutes(api)
	if cfg.Env == "dev" {
		dev := api.Group("/dev")
		suggestHandler.RegisterDevRoutes(dev)
	}

	return r, nil
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
