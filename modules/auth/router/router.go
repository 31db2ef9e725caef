package router

import (
	"calendar-sync-api/core/middleware"
	"calendar-sync-api/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	controller *controller.AuthController
}

func NewAuthRouter(controller *controller.AuthController) *AuthRouter {
	return &AuthRouter{controller: controller}
}

func (r *AuthRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	authRoutes := v1.Group("/auth")
	authRoutes.POST("/register", r.controller.Register)
	authRoutes.POST("/login", r.controller.Login)
	authRoutes.POST("/logout", r.controller.Logout)
	authRoutes.GET("/google", r.controller.GoogleAuth)
	authRoutes.GET("/google/callback", r.controller.GoogleCallback)

	meRoutes := v1.Group("/private/me")
	meRoutes.Use(mw.AuthMiddleware())
	meRoutes.PUT("/timezone", r.controller.UpdateTimezone)
}
