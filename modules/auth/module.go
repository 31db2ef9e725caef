package auth

import (
	"calendar-sync-api/core/cache"
	"calendar-sync-api/core/database"
	"calendar-sync-api/core/middleware"
	"calendar-sync-api/modules/auth/controller"
	"calendar-sync-api/modules/auth/repository"
	"calendar-sync-api/modules/auth/router"
	"calendar-sync-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init wires the auth module and returns its service so other modules can
// resolve sessions through it.
func Init(e *echo.Echo, db database.Database, cache cache.Cache, mw *middleware.Middleware) *service.AuthService {
	repo := repository.NewAuthRepository(db)
	authService := service.NewAuthService(repo, cache)
	authController := controller.NewAuthController(authService)

	router.NewAuthRouter(authController).Setup(e, mw)

	return authService
}
