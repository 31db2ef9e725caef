package service

import (
	"context"
	"testing"
	"time"

	"calendar-sync-api/core/config"
	"calendar-sync-api/core/errors"
	"calendar-sync-api/core/utils"
	"calendar-sync-api/modules/auth/dto"
	"calendar-sync-api/modules/auth/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthRepo struct {
	usersByEmail map[string]*entity.User
	usersByID    map[uuid.UUID]*entity.User
	logins       map[uuid.UUID]*entity.SocialLogin
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{
		usersByEmail: map[string]*entity.User{},
		usersByID:    map[uuid.UUID]*entity.User{},
		logins:       map[uuid.UUID]*entity.SocialLogin{},
	}
}

func (f *fakeAuthRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.usersByEmail[email], nil
}

func (f *fakeAuthRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.usersByID[id], nil
}

func (f *fakeAuthRepo) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	user.ID = uuid.New()
	f.usersByEmail[user.Email] = user
	f.usersByID[user.ID] = user
	return user, nil
}

func (f *fakeAuthRepo) UpdateUserTimezone(ctx context.Context, id uuid.UUID, timezone string) error {
	if u, ok := f.usersByID[id]; ok {
		u.Timezone = &timezone
	}
	return nil
}

func (f *fakeAuthRepo) SaveOAuthState(ctx context.Context, state string, expiresAt time.Time) error {
	return nil
}

func (f *fakeAuthRepo) GetOAuthState(ctx context.Context, state string) (*entity.OAuthState, error) {
	return nil, nil
}

func (f *fakeAuthRepo) DeleteOAuthState(ctx context.Context, state string) error {
	return nil
}

func (f *fakeAuthRepo) CleanupExpiredOAuthStates(ctx context.Context) (int64, error) {
	return 0, nil
}

func (f *fakeAuthRepo) GetSocialLogin(ctx context.Context, userID uuid.UUID, provider string) (*entity.SocialLogin, error) {
	return f.logins[userID], nil
}

func (f *fakeAuthRepo) SaveOrUpdateSocialLogin(ctx context.Context, login *entity.SocialLogin) error {
	f.logins[login.UserID] = login
	return nil
}

type fakeCache struct {
	blacklisted map[string]bool
}

func (f *fakeCache) AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	if f.blacklisted == nil {
		f.blacklisted = map[string]bool{}
	}
	f.blacklisted[token] = true
	return nil
}

func (f *fakeCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	return f.blacklisted[token], nil
}

func (f *fakeCache) Close() error { return nil }

func initTestConfig(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := config.Init()
	require.NoError(t, err)
}

func seedUser(t *testing.T, repo *fakeAuthRepo, timezone string, accessToken string) (*entity.User, string) {
	t.Helper()

	user := &entity.User{Email: "alice@example.com"}
	if timezone != "" {
		user.Timezone = &timezone
	}
	user, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)

	if accessToken != "" {
		require.NoError(t, repo.SaveOrUpdateSocialLogin(context.Background(), &entity.SocialLogin{
			UserID:      user.ID,
			Provider:    ProviderGoogle,
			AccessToken: &accessToken,
			IsActive:    true,
		}))
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	require.NoError(t, err)
	return user, token
}

func TestResolveSessionReturnsPrincipal(t *testing.T) {
	initTestConfig(t)
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo, &fakeCache{})

	_, token := seedUser(t, repo, "America/New_York", "ya29.credential")

	session, appErr := svc.ResolveSession(context.Background(), token)

	require.Nil(t, appErr)
	assert.Equal(t, "alice@example.com", session.Email)
	assert.Equal(t, "America/New_York", session.Timezone)
	assert.Equal(t, "ya29.credential", session.AccessToken)
}

func TestResolveSessionNoTimezoneLeftEmpty(t *testing.T) {
	initTestConfig(t)
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo, &fakeCache{})

	_, token := seedUser(t, repo, "", "ya29.credential")

	session, appErr := svc.ResolveSession(context.Background(), token)

	require.Nil(t, appErr)
	assert.Empty(t, session.Timezone)
}

func TestResolveSessionMissingToken(t *testing.T) {
	initTestConfig(t)
	svc := NewAuthService(newFakeAuthRepo(), &fakeCache{})

	_, appErr := svc.ResolveSession(context.Background(), "")

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
}

func TestResolveSessionRevokedToken(t *testing.T) {
	initTestConfig(t)
	repo := newFakeAuthRepo()
	cache := &fakeCache{}
	svc := NewAuthService(repo, cache)

	_, token := seedUser(t, repo, "", "ya29.credential")
	require.NoError(t, cache.AddToTokenBlacklist(context.Background(), token, time.Hour))

	_, appErr := svc.ResolveSession(context.Background(), token)

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
}

func TestResolveSessionUnknownUser(t *testing.T) {
	initTestConfig(t)
	svc := NewAuthService(newFakeAuthRepo(), &fakeCache{})

	token, err := utils.GenerateToken(uuid.New(), "ghost@example.com")
	require.NoError(t, err)

	_, appErr := svc.ResolveSession(context.Background(), token)

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
}

func TestResolveSessionNoGoogleCredential(t *testing.T) {
	initTestConfig(t)
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo, &fakeCache{})

	_, token := seedUser(t, repo, "America/New_York", "")

	_, appErr := svc.ResolveSession(context.Background(), token)

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
}

func TestLogoutBlacklistsToken(t *testing.T) {
	initTestConfig(t)
	repo := newFakeAuthRepo()
	cache := &fakeCache{}
	svc := NewAuthService(repo, cache)

	_, token := seedUser(t, repo, "", "ya29.credential")

	require.Nil(t, svc.Logout(context.Background(), token))
	blacklisted, err := cache.IsTokenBlacklisted(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, blacklisted)
}

func TestRegisterRejectsInvalidTimezone(t *testing.T) {
	initTestConfig(t)
	svc := NewAuthService(newFakeAuthRepo(), &fakeCache{})

	_, appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret",
		Timezone: "Not/AZone",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}
