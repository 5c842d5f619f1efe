package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/coursereg/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	registrationController *controllers.RegistrationController,
	healthController *controllers.HealthController,
	metricsHandler http.Handler,
) {
	api := router.Group("/api")

	api.GET("/health", healthController.Health)

	registrations := api.Group("/registrations")
	{
		registrations.POST("/register", registrationController.Register)
		registrations.DELETE("/unregister/:courseId/:email", registrationController.Unregister)
		registrations.GET("/upcoming/:email", registrationController.Upcoming)
	}

	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}
}
