package routes

import (
	"github.com/gin-gonic/gin"

	"voltswap_client/internal/controllers"
	"voltswap_client/internal/middleware"
)

func BookingRoutes(r *gin.Engine, a *controllers.API, jwtSecret string) {
	booking := r.Group("/booking")
	booking.Use(middleware.RequireAuth([]byte(jwtSecret)))
	{
		booking.GET("/:id", a.GetBooking)
	}
}
