package routes

import (
	"github.com/gin-gonic/gin"

	"voltswap_client/internal/controllers"
)

func StationRoutes(r *gin.Engine, a *controllers.API) {
	station := r.Group("/station")
	{
		station.GET("", a.ListStations)
		station.GET("/:id", a.GetStation)
	}
}
