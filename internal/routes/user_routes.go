package routes

import (
	"github.com/gin-gonic/gin"

	"voltswap_client/internal/controllers"
	"voltswap_client/internal/middleware"
)

func UserRoutes(r *gin.Engine, a *controllers.API, jwtSecret string) {
	user := r.Group("/user")
	{
		user.POST("/login", a.Login)
		user.POST("/register", a.Register)
		user.POST("/request-otp", a.RequestOTP)
		user.POST("/verify-otp", a.VerifyOTP)
		user.POST("/forgot-password", a.ForgotPassword)
		user.POST("/reset-password", a.ResetPassword)
	}

	authed := r.Group("/user")
	authed.Use(middleware.RequireAuth([]byte(jwtSecret)))
	{
		authed.GET("/profile", a.Profile)
		authed.PUT("/profile", a.UpdateProfile)
		authed.GET("/id/:id", a.AccountByID)
	}
}
