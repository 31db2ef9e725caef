package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	calendar "google.golang.org/api/calendar/v3"
)

type fakeDocumentStore struct {
	key  string
	body []byte
}

func (f *fakeDocumentStore) PutJSON(ctx context.Context, key string, body []byte) error {
	f.key = key
	f.body = body
	return nil
}

func TestSaveEventsWritesOneDocumentPerUser(t *testing.T) {
	docs := &fakeDocumentStore{}
	store := NewEventStore(docs)

	events := []*calendar.Event{{Id: "e1", Summary: "Standup"}}
	err := store.SaveEvents(context.Background(), "alice@example.com", events, []string{"g1", "g2"})
	require.NoError(t, err)

	assert.Equal(t, "calendar-events/alice@example.com.json", docs.key)

	var doc eventDocument
	require.NoError(t, json.Unmarshal(docs.body, &doc))
	assert.Equal(t, "alice@example.com", doc.Email)
	assert.Equal(t, []string{"g1", "g2"}, doc.GroupIDs)
	require.Len(t, doc.Events, 1)
	assert.Equal(t, "e1", doc.Events[0].Id)
	assert.False(t, doc.SyncedAt.IsZero())
}

func TestSaveEventsNilGroupIDsBecomesEmptySlice(t *testing.T) {
	docs := &fakeDocumentStore{}
	store := NewEventStore(docs)

	require.NoError(t, store.SaveEvents(context.Background(), "alice@example.com", nil, nil))

	var doc eventDocument
	require.NoError(t, json.Unmarshal(docs.body, &doc))
	assert.NotNil(t, doc.GroupIDs)
	assert.Empty(t, doc.GroupIDs)
}

func TestSaveEventsEscapesKeyUnsafeCharacters(t *testing.T) {
	docs := &fakeDocumentStore{}
	store := NewEventStore(docs)

	require.NoError(t, store.SaveEvents(context.Background(), "team/lead@example.com", nil, nil))

	assert.Equal(t, "calendar-events/team%2Flead@example.com.json", docs.key)
}
