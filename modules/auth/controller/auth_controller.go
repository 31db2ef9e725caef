package controller

import (
	"net/http"

	"calendar-sync-api/core/constants"
	"calendar-sync-api/core/controller"
	"calendar-sync-api/core/errors"
	"calendar-sync-api/core/middleware"
	"calendar-sync-api/core/utils"
	"calendar-sync-api/modules/auth/dto"
	"calendar-sync-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	controller.BaseController
	AuthService service.AuthServiceInterface
}

func NewAuthController(authService service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		AuthService:    authService,
	}
}

func (ctrl *AuthController) Register(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.RegisterRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	authResponse, err := ctrl.AuthService.Register(ctx, requestData)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, authResponse, "Register success")
}

func (ctrl *AuthController) Login(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.LoginRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	authResponse, err := ctrl.AuthService.Login(ctx, requestData)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	setSessionCookie(c, authResponse.Token)
	return ctrl.SuccessResponse(c, authResponse, "Login success")
}

func (ctrl *AuthController) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	token := middleware.ExtractSessionToken(c)
	if token == "" {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "No session token")
	}

	if err := ctrl.AuthService.Logout(ctx, token); err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, nil, "Logout success")
}

// GoogleAuth starts the Google OAuth flow by redirecting to the consent page.
func (ctrl *AuthController) GoogleAuth(c echo.Context) error {
	ctx := c.Request().Context()

	resp, err := ctrl.AuthService.GoogleAuthURL(ctx)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return c.Redirect(http.StatusTemporaryRedirect, resp.URL)
}

// GoogleCallback completes the OAuth flow and issues a session.
func (ctrl *AuthController) GoogleCallback(c echo.Context) error {
	ctx := c.Request().Context()

	state := c.QueryParam("state")
	code := c.QueryParam("code")
	if state == "" || code == "" {
		return ctrl.BadRequest(errors.ErrInvalidInput, "state and code are required", nil)
	}

	authResponse, err := ctrl.AuthService.GoogleCallback(ctx, state, code)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	setSessionCookie(c, authResponse.Token)
	return ctrl.SuccessResponse(c, authResponse, "Google login success")
}

// UpdateTimezone stores the caller's IANA timezone preference.
func (ctrl *AuthController) UpdateTimezone(c echo.Context) error {
	ctx := c.Request().Context()

	tokenData, ok := tokenDataFromContext(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	requestData := new(dto.UpdateTimezoneRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}
	if requestData.Timezone == "" {
		return ctrl.BadRequest(errors.ErrInvalidInput, "timezone is required", nil)
	}

	if err := ctrl.AuthService.UpdateTimezone(ctx, tokenData.UserID, requestData.Timezone); err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, nil, "Timezone updated")
}

func setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     "session_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func tokenDataFromContext(c echo.Context) (*utils.TokenData, bool) {
	tokenData, ok := c.Get(constants.ContextTokenData).(*utils.TokenData)
	return tokenData, ok
}
