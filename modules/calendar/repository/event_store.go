package repository

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"calendar-sync-api/core/logger"
	"calendar-sync-api/core/storage"

	calendar "google.golang.org/api/calendar/v3"
)

// EventStore persists one user's normalized event snapshot together with
// the group IDs computed for the same request. Whether a write overwrites
// or versions earlier snapshots is the document store's contract.
type EventStore interface {
	SaveEvents(ctx context.Context, email string, events []*calendar.Event, groupIDs []string) error
}

type eventDocument struct {
	Email    string            `json:"email"`
	GroupIDs []string          `json:"group_ids"`
	Events   []*calendar.Event `json:"events"`
	SyncedAt time.Time         `json:"synced_at"`
}

type eventStore struct {
	docs storage.DocumentStore
}

func NewEventStore(docs storage.DocumentStore) EventStore {
	return &eventStore{docs: docs}
}

func (s *eventStore) SaveEvents(ctx context.Context, email string, events []*calendar.Event, groupIDs []string) error {
	if groupIDs == nil {
		groupIDs = []string{}
	}

	doc := eventDocument{
		Email:    email,
		GroupIDs: groupIDs,
		Events:   events,
		SyncedAt: time.Now().UTC(),
	}

	body, err := json.Marshal(doc)
	if err != nil {
		logger.Error("EventStore:SaveEvents:Marshal", "error", err, "email", email)
		return err
	}

	key := "calendar-events/" + url.PathEscape(email) + ".json"
	return s.docs.PutJSON(ctx, key, body)
}
