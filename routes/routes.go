package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"cardhaven-backend/controllers"
)

// Setup mengonfigurasi dan mengembalikan Gin engine.
func Setup(ctrl *controllers.Controller, env string, allowedOrigins []string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	// Kanal live-update untuk viewer
	r.GET("/ws", ctrl.ServeWS)

	api := r.Group("/api")
	{
		// Rute utilitas
		api.GET("/health", ctrl.HealthCheck)
		api.GET("/stats", ctrl.GetStats)

		// Rute admin
		api.POST("/admin/login", ctrl.Login)
		api.POST("/admin/reset-password", ctrl.ResetPassword)
		api.POST("/admin/upload", ctrl.UploadImage)

		// Rute produk
		api.GET("/products", ctrl.GetProducts)
		api.POST("/products", ctrl.CreateProduct)
		api.GET("/products/:id", ctrl.GetProduct)
		api.PUT("/products/:id", ctrl.UpdateProduct)
		api.DELETE("/products/:id", ctrl.DeleteProduct)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	return r
}
