package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jmathewk/PromoDeck/controllers"
	"github.com/jmathewk/PromoDeck/middleware"
)

// initAdminRoutes initializes all admin-related routes
func initAdminRoutes(router *gin.Engine, deps Deps) {
	auth := &controllers.AuthController{Config: deps.Config}
	offers := &controllers.OfferController{Repo: deps.Repo}
	uploads := &controllers.UploadController{Assets: deps.Assets}
	exports := &controllers.ExportController{Repo: deps.Repo}

	admin := router.Group("/admin")
	{
		// Public admin routes
		admin.POST("/login", auth.Login)

		// Protected admin routes
		admin.Use(middleware.AdminAuthMiddleware(deps.Config.JWTSecret))
		{
			admin.GET("/offers", offers.List)
			admin.POST("/offers", offers.Create)
			admin.PATCH("/offers/:id", offers.Update)
			admin.DELETE("/offers/:id", offers.Delete)
			admin.GET("/offers/export", exports.Export)
			admin.POST("/upload", uploads.Upload)
		}
	}
}
