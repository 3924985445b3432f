package routes

import (
	"github.com/gin-gonic/gin"

	"voltswap_client/internal/controllers"
	"voltswap_client/internal/middleware"
)

func VehicleRoutes(r *gin.Engine, a *controllers.API, jwtSecret string) {
	vehicles := r.Group("/vehicles")
	vehicles.Use(middleware.RequireAuth([]byte(jwtSecret)))
	{
		vehicles.GET("", a.ListVehicles)
		vehicles.POST("", a.CreateVehicle)
		vehicles.PUT("/:id", a.UpdateVehicle)
		vehicles.DELETE("/:id", a.DeleteVehicle)
	}

	// Reference data needs no auth; the booking wizard reads it pre-login.
	r.GET("/vehicle-model", a.ListVehicleModels)
}
