package middleware

import (
	"net/http"
	"strings"

	"calendar-sync-api/core/cache"
	"calendar-sync-api/core/constants"
	"calendar-sync-api/core/controller"
	"calendar-sync-api/core/errors"
	"calendar-sync-api/core/logger"
	"calendar-sync-api/core/utils"

	"github.com/labstack/echo/v4"
)

type Middleware struct {
	cache cache.Cache
}

func NewMiddleware(cache cache.Cache) *Middleware {
	return &Middleware{cache: cache}
}

// AuthMiddleware guards private routes: it requires a valid, non-revoked
// session token and puts the parsed token data into the request context.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ExtractSessionToken(c)
			if token == "" {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "Missing authorization token")
			}

			tokenData, err := utils.ValidateAndParseToken(token)
			if err != nil {
				logger.Error("Middleware:AuthMiddleware:ValidateAndParseToken", "error", err)
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "Invalid or expired token")
			}

			blacklisted, err := m.cache.IsTokenBlacklisted(c.Request().Context(), token)
			if err != nil {
				logger.Error("Middleware:AuthMiddleware:IsTokenBlacklisted", "error", err)
				return controller.NewErrorResponse(http.StatusInternalServerError, errors.ErrInternalServer, "internal server error")
			}
			if blacklisted {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "Token has been revoked")
			}

			c.Set(constants.ContextTokenData, tokenData)
			return next(c)
		}
	}
}

// ExtractSessionToken pulls the session token from the Authorization header
// or, failing that, the session cookie.
func ExtractSessionToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("session_token"); err == nil && cookie != nil {
		return cookie.Value
	}
	return ""
}
