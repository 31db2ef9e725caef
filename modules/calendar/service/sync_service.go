package service

import (
	"context"
	"strings"
	"time"

	"calendar-sync-api/core/errors"
	"calendar-sync-api/core/logger"
	authdto "calendar-sync-api/modules/auth/dto"
	"calendar-sync-api/modules/calendar/repository"

	calendar "google.golang.org/api/calendar/v3"
)

// Response messages surfaced to callers. Internal failure detail never
// leaves the diagnostic log.
const (
	msgUnauthorized   = "Unauthorized"
	msgSessionExpired = "Session expired, please sign in again"
	msgNoEventsFound  = "No events found"
	msgSyncFailed     = "Failed to fetch calendar events"
)

// SessionResolver resolves the inbound session token into the principal it
// stands for.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*authdto.Session, *errors.AppError)
}

// GroupLookup returns all group IDs whose member set contains the email.
type GroupLookup interface {
	GetGroupIDsForMember(ctx context.Context, email string) ([]string, error)
}

// EventFetcher lists the principal's upcoming events under their credential.
type EventFetcher interface {
	FetchWeekEvents(ctx context.Context, accessToken string) ([]*calendar.Event, error)
}

// SyncService runs the calendar sync pipeline: resolve the session, look up
// group memberships, fetch a week of events, rewrite their timestamps into
// the principal's timezone, persist the snapshot, and return it.
type SyncService interface {
	SyncEvents(ctx context.Context, sessionToken string) ([]*calendar.Event, *errors.AppError)
}

type syncService struct {
	sessions SessionResolver
	groups   GroupLookup
	fetcher  EventFetcher
	store    repository.EventStore
}

func NewSyncService(sessions SessionResolver, groups GroupLookup, fetcher EventFetcher, store repository.EventStore) SyncService {
	return &syncService{
		sessions: sessions,
		groups:   groups,
		fetcher:  fetcher,
		store:    store,
	}
}

func (s *syncService) SyncEvents(ctx context.Context, sessionToken string) ([]*calendar.Event, *errors.AppError) {
	session, appErr := s.sessions.ResolveSession(ctx, sessionToken)
	if appErr != nil {
		if appErr.Code == errors.ErrUnauthorized {
			return nil, errors.NewAppError(errors.ErrUnauthorized, msgUnauthorized, appErr.Err)
		}
		logger.Error("SyncService:SyncEvents:ResolveSession", "error", appErr)
		return nil, errors.NewAppError(errors.ErrInternalServer, msgSyncFailed, appErr)
	}
	if session.Email == "" {
		return nil, errors.NewAppError(errors.ErrUnauthorized, msgUnauthorized, nil)
	}

	groupIDs, err := s.groups.GetGroupIDsForMember(ctx, session.Email)
	if err != nil {
		logger.Error("SyncService:SyncEvents:GroupLookup", "error", err, "email", session.Email)
		return nil, errors.NewAppError(errors.ErrInternalServer, msgSyncFailed, err)
	}

	items, err := s.fetcher.FetchWeekEvents(ctx, session.AccessToken)
	if err != nil {
		logger.Error("SyncService:SyncEvents:FetchWeekEvents", "error", err, "email", session.Email)
		if isExpiredGrant(err) {
			return nil, errors.NewAppError(errors.ErrSessionExpired, msgSessionExpired, err)
		}
		return nil, errors.NewAppError(errors.ErrInternalServer, msgSyncFailed, err)
	}
	// A response without an items field is an error; an explicit empty list
	// is the valid zero-events case and flows through.
	if items == nil {
		logger.Error("SyncService:SyncEvents:NoEventsField", "email", session.Email)
		return nil, errors.NewAppError(errors.ErrNoEventsFound, msgNoEventsFound, nil)
	}

	loc, err := resolveTimezone(session.Timezone)
	if err != nil {
		logger.Error("SyncService:SyncEvents:ResolveTimezone", "error", err, "timezone", session.Timezone)
		return nil, errors.NewAppError(errors.ErrInternalServer, msgSyncFailed, err)
	}

	normalized, err := NormalizeEvents(items, loc)
	if err != nil {
		logger.Error("SyncService:SyncEvents:Normalize", "error", err, "email", session.Email)
		return nil, errors.NewAppError(errors.ErrInternalServer, msgSyncFailed, err)
	}

	if err := s.store.SaveEvents(ctx, session.Email, normalized, groupIDs); err != nil {
		logger.Error("SyncService:SyncEvents:SaveEvents", "error", err, "email", session.Email)
		return nil, errors.NewAppError(errors.ErrInternalServer, msgSyncFailed, err)
	}

	logger.Info("SyncService:SyncEvents:Done",
		"email", session.Email,
		"events", len(normalized),
		"groups", len(groupIDs),
	)
	return normalized, nil
}

// isExpiredGrant is the one place that recognizes a revoked or expired
// OAuth grant in the calendar provider's failure.
func isExpiredGrant(err error) bool {
	return err != nil && strings.Contains(err.Error(), "invalid_grant")
}

func resolveTimezone(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}
