package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"voltswap_client/internal/controllers"
	"voltswap_client/internal/mockapi"
)

// SetupRouter mounts the development backend's REST surface, matching the
// paths the production backend exposes.
func SetupRouter(store *mockapi.Store, jwtSecret string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	a := controllers.New(store, jwtSecret)

	UserRoutes(r, a, jwtSecret)
	VehicleRoutes(r, a, jwtSecret)
	StationRoutes(r, a)
	BookingRoutes(r, a, jwtSecret)

	return r
}
