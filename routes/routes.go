package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmathewk/PromoDeck/config"
	"github.com/jmathewk/PromoDeck/repository"
	"github.com/jmathewk/PromoDeck/utils"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps carries the explicitly constructed handles the handlers run against.
// Tests swap in an in-memory repository and a fixed clock here.
type Deps struct {
	Config *config.Config
	Repo   repository.OfferRepository
	Assets *utils.AssetStore

	// Now is the reference clock for public visibility; nil means wall clock.
	Now func() time.Time
}

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter(deps Deps) *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware(deps.Config.CORSOrigins))
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())
	router.Use(utils.MetricsMiddleware())

	// Uploaded assets are retrieved at exactly the path the upload returned.
	router.Static(utils.AssetURLPrefix, deps.Assets.Dir)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	initAdminRoutes(router, deps)
	initPublicRoutes(router, deps)

	return router
}
