package service

import (
	"context"
	"time"

	"calendar-sync-api/core/cache"
	"calendar-sync-api/core/constants"
	"calendar-sync-api/core/errors"
	"calendar-sync-api/core/logger"
	"calendar-sync-api/core/utils"
	"calendar-sync-api/modules/auth/dto"
	"calendar-sync-api/modules/auth/entity"
	"calendar-sync-api/modules/auth/repository"

	"github.com/google/uuid"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
	UpdateTimezone(ctx context.Context, userID uuid.UUID, timezone string) *errors.AppError

	GoogleAuthURL(ctx context.Context) (*dto.OAuthURLResponse, *errors.AppError)
	GoogleCallback(ctx context.Context, state string, code string) (*dto.AuthResponse, *errors.AppError)

	// ResolveSession turns an inbound session token into the principal it
	// stands for. It is the session provider behind the calendar sync
	// pipeline.
	ResolveSession(ctx context.Context, token string) (*dto.Session, *errors.AppError)
}

type AuthService struct {
	repo  repository.AuthRepositoryInterface
	cache cache.Cache
}

func NewAuthService(repo repository.AuthRepositoryInterface, cache cache.Cache) *AuthService {
	return &AuthService{repo: repo, cache: cache}
}

func (service *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if req.Email == "" || req.Password == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "email and password are required", nil)
	}
	if req.Timezone != "" {
		if _, err := time.LoadLocation(req.Timezone); err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid timezone", err)
		}
	}

	existing, err := service.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("AuthService:Register:GetUserByEmail", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check existing user", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "email already registered", nil)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("AuthService:Register:HashPassword", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	user := &entity.User{Email: req.Email, Password: &hashed}
	if req.Name != "" {
		user.Name = &req.Name
	}
	if req.Timezone != "" {
		user.Timezone = &req.Timezone
	}

	created, err := service.repo.CreateUser(ctx, user)
	if err != nil {
		logger.Error("AuthService:Register:CreateUser", "error", err)
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to create user", err)
	}

	return service.issueSession(created)
}

func (service *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	user, err := service.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("AuthService:Login:GetUserByEmail", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get user", err)
	}
	if user == nil || user.Password == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid credentials", nil)
	}
	if !utils.ComparePassword(*user.Password, req.Password) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid credentials", nil)
	}

	return service.issueSession(user)
}

func (service *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	tokenData, err := utils.ValidateAndParseToken(token)
	if err != nil {
		return errors.NewAppError(errors.ErrUnauthorized, "invalid token", err)
	}

	ttl := time.Until(tokenData.Expiry)
	if err := service.cache.AddToTokenBlacklist(ctx, token, ttl); err != nil {
		logger.Error("AuthService:Logout:AddToTokenBlacklist", "error", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to revoke session", err)
	}
	return nil
}

func (service *AuthService) UpdateTimezone(ctx context.Context, userID uuid.UUID, timezone string) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, err := time.LoadLocation(timezone); err != nil {
		return errors.NewAppError(errors.ErrInvalidInput, "invalid timezone", err)
	}

	if err := service.repo.UpdateUserTimezone(ctx, userID, timezone); err != nil {
		logger.Error("AuthService:UpdateTimezone", "error", err, "user_id", userID)
		return errors.NewAppError(errors.ErrUpdateFailed, "failed to update timezone", err)
	}
	return nil
}

func (service *AuthService) ResolveSession(ctx context.Context, token string) (*dto.Session, *errors.AppError) {
	if token == "" {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "no session", nil)
	}

	blacklisted, err := service.cache.IsTokenBlacklisted(ctx, token)
	if err != nil {
		logger.Error("AuthService:ResolveSession:IsTokenBlacklisted", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check session", err)
	}
	if blacklisted {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "session revoked", nil)
	}

	tokenData, err := utils.ValidateAndParseToken(token)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid session", err)
	}

	user, err := service.repo.GetUserByID(ctx, tokenData.UserID)
	if err != nil {
		logger.Error("AuthService:ResolveSession:GetUserByID", "error", err, "user_id", tokenData.UserID)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load user", err)
	}
	if user == nil || user.Email == "" {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "no principal for session", nil)
	}

	login, err := service.repo.GetSocialLogin(ctx, user.ID, ProviderGoogle)
	if err != nil {
		logger.Error("AuthService:ResolveSession:GetSocialLogin", "error", err, "user_id", user.ID)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load credential", err)
	}
	if login == nil || login.AccessToken == nil || *login.AccessToken == "" {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "no calendar credential for session", nil)
	}

	session := &dto.Session{
		Email:       user.Email,
		AccessToken: *login.AccessToken,
	}
	if user.Timezone != nil {
		session.Timezone = *user.Timezone
	}
	return session, nil
}

func (service *AuthService) issueSession(user *entity.User) (*dto.AuthResponse, *errors.AppError) {
	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		logger.Error("AuthService:issueSession:GenerateToken", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to issue session", err)
	}

	resp := &dto.AuthResponse{
		Token: token,
		User: dto.UserResponse{
			ID:    user.ID.String(),
			Email: user.Email,
		},
	}
	if user.Name != nil {
		resp.User.Name = *user.Name
	}
	if user.Timezone != nil {
		resp.User.Timezone = *user.Timezone
	}
	return resp, nil
}
