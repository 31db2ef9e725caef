package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"calendar-sync-api/core/config"
	"calendar-sync-api/core/constants"
	"calendar-sync-api/core/errors"
	"calendar-sync-api/core/logger"
	"calendar-sync-api/core/utils"
	"calendar-sync-api/modules/auth/dto"
	"calendar-sync-api/modules/auth/entity"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
)

const (
	ProviderGoogle = "google"

	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

	oauthStateTTL = 10 * time.Minute
)

// googleOAuthConfig builds the OAuth client from process configuration only.
func googleOAuthConfig() (*oauth2.Config, error) {
	cfg, ok := config.GetSafe()
	if !ok {
		return nil, fmt.Errorf("config not initialized")
	}
	if cfg.GoogleAPI.ClientID == "" || cfg.GoogleAPI.ClientSecret == "" {
		return nil, fmt.Errorf("google oauth client is not configured")
	}

	return &oauth2.Config{
		ClientID:     cfg.GoogleAPI.ClientID,
		ClientSecret: cfg.GoogleAPI.ClientSecret,
		RedirectURL:  cfg.GoogleAPI.RedirectURI,
		Endpoint:     google.Endpoint,
		Scopes: []string{
			"openid",
			"email",
			"profile",
			calendar.CalendarReadonlyScope,
			calendar.CalendarEventsReadonlyScope,
		},
	}, nil
}

func (service *AuthService) GoogleAuthURL(ctx context.Context) (*dto.OAuthURLResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	oauthConfig, err := googleOAuthConfig()
	if err != nil {
		logger.Error("AuthService:GoogleAuthURL:Config", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "google login is not available", err)
	}

	state := utils.GenerateOAuthState()
	if state == "" {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate state", nil)
	}

	if err := service.repo.SaveOAuthState(ctx, state, time.Now().Add(oauthStateTTL)); err != nil {
		logger.Error("AuthService:GoogleAuthURL:SaveOAuthState", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to start login", err)
	}

	url := oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	return &dto.OAuthURLResponse{URL: url, State: state}, nil
}

func (service *AuthService) GoogleCallback(ctx context.Context, state string, code string) (*dto.AuthResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultTimeout)
	defer cancel()

	stored, err := service.repo.GetOAuthState(ctx, state)
	if err != nil {
		logger.Error("AuthService:GoogleCallback:GetOAuthState", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to verify state", err)
	}
	if stored == nil || time.Now().After(stored.ExpiresAt) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid or expired oauth state", nil)
	}
	if err := service.repo.DeleteOAuthState(ctx, state); err != nil {
		logger.Error("AuthService:GoogleCallback:DeleteOAuthState", "error", err)
	}

	oauthConfig, err := googleOAuthConfig()
	if err != nil {
		logger.Error("AuthService:GoogleCallback:Config", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "google login is not available", err)
	}

	token, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		logger.Error("AuthService:GoogleCallback:Exchange", "error", err)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "failed to exchange authorization code", err)
	}

	info, err := fetchGoogleUserInfo(ctx, token.AccessToken)
	if err != nil {
		logger.Error("AuthService:GoogleCallback:UserInfo", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to fetch user info", err)
	}
	if info.Email == "" {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "google account has no email", nil)
	}

	user, err := service.repo.GetUserByEmail(ctx, info.Email)
	if err != nil {
		logger.Error("AuthService:GoogleCallback:GetUserByEmail", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load user", err)
	}
	if user == nil {
		user = &entity.User{Email: info.Email}
		if info.Name != "" {
			user.Name = &info.Name
		}
		user, err = service.repo.CreateUser(ctx, user)
		if err != nil {
			logger.Error("AuthService:GoogleCallback:CreateUser", "error", err)
			return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to create user", err)
		}
	}

	login := &entity.SocialLogin{
		UserID:        user.ID,
		Provider:      ProviderGoogle,
		ProviderEmail: &info.Email,
		AccessToken:   &token.AccessToken,
		IsActive:      true,
	}
	if token.RefreshToken != "" {
		login.RefreshToken = &token.RefreshToken
	}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		login.TokenExpiresAt = &expiry
	}
	if err := service.repo.SaveOrUpdateSocialLogin(ctx, login); err != nil {
		logger.Error("AuthService:GoogleCallback:SaveOrUpdateSocialLogin", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to store credential", err)
	}

	return service.issueSession(user)
}

type googleUserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func fetchGoogleUserInfo(ctx context.Context, accessToken string) (*googleUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleUserInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("userinfo endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to parse user info: %w", err)
	}
	return &info, nil
}
