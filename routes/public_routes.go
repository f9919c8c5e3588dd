package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jmathewk/PromoDeck/controllers"
)

// initPublicRoutes initializes the unauthenticated read-only routes
func initPublicRoutes(router *gin.Engine, deps Deps) {
	public := &controllers.PublicOfferController{Repo: deps.Repo, Now: deps.Now}

	api := router.Group("/api")
	{
		api.GET("/offers", public.Offers)
	}
}
