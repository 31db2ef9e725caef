package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	calendar "google.golang.org/api/calendar/v3"
)

var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}[+-]\d{2}:\d{2}$`)

func mustLoadLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestNormalizeEventsConvertsToPrincipalZone(t *testing.T) {
	loc := mustLoadLocation(t, "America/New_York")

	events := []*calendar.Event{
		{
			Id:      "e1",
			Summary: "Standup",
			Start:   &calendar.EventDateTime{DateTime: "2024-06-01T14:00:00Z"},
			End:     &calendar.EventDateTime{DateTime: "2024-06-01T15:00:00Z"},
		},
	}

	normalized, err := NormalizeEvents(events, loc)
	require.NoError(t, err)
	require.Len(t, normalized, 1)

	assert.Equal(t, "2024-06-01T10:00:00-04:00", normalized[0].Start.DateTime)
	assert.Equal(t, "2024-06-01T11:00:00-04:00", normalized[0].End.DateTime)
}

func TestNormalizeEventsDefaultsToUTC(t *testing.T) {
	events := []*calendar.Event{
		{
			Id:    "e1",
			Start: &calendar.EventDateTime{DateTime: "2024-06-01T14:30:45+02:00"},
			End:   &calendar.EventDateTime{DateTime: "2024-06-01T15:30:45+02:00"},
		},
	}

	normalized, err := NormalizeEvents(events, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, "2024-06-01T12:30:45+00:00", normalized[0].Start.DateTime)
	assert.Regexp(t, timestampPattern, normalized[0].Start.DateTime)
	assert.Regexp(t, timestampPattern, normalized[0].End.DateTime)
}

func TestNormalizeEventsIsIdempotent(t *testing.T) {
	loc := mustLoadLocation(t, "America/New_York")

	events := []*calendar.Event{
		{
			Id:    "e1",
			Start: &calendar.EventDateTime{DateTime: "2024-06-01T14:00:00Z"},
			End:   &calendar.EventDateTime{DateTime: "2024-06-01T15:00:00Z"},
		},
	}

	once, err := NormalizeEvents(events, loc)
	require.NoError(t, err)
	twice, err := NormalizeEvents(once, loc)
	require.NoError(t, err)

	assert.Equal(t, once[0].Start.DateTime, twice[0].Start.DateTime)
	assert.Equal(t, once[0].End.DateTime, twice[0].End.DateTime)
}

func TestNormalizeEventsDateOnly(t *testing.T) {
	loc := mustLoadLocation(t, "America/New_York")

	events := []*calendar.Event{
		{
			Id:    "allday",
			Start: &calendar.EventDateTime{Date: "2024-06-01"},
			End:   &calendar.EventDateTime{Date: "2024-06-02"},
		},
	}

	normalized, err := NormalizeEvents(events, loc)
	require.NoError(t, err)

	// Midnight UTC rendered in New York.
	assert.Equal(t, "2024-05-31T20:00:00-04:00", normalized[0].Start.DateTime)
	assert.Equal(t, "2024-06-01T20:00:00-04:00", normalized[0].End.DateTime)
}

func TestNormalizeEventsDateOnlyWithDeclaredZone(t *testing.T) {
	events := []*calendar.Event{
		{
			Id:    "allday",
			Start: &calendar.EventDateTime{Date: "2024-06-01", TimeZone: "America/New_York"},
			End:   &calendar.EventDateTime{Date: "2024-06-02", TimeZone: "America/New_York"},
		},
	}

	normalized, err := NormalizeEvents(events, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, "2024-06-01T04:00:00+00:00", normalized[0].Start.DateTime)
}

func TestNormalizeEventsPreservesOtherFieldsAndOrder(t *testing.T) {
	events := []*calendar.Event{
		{
			Id:          "e1",
			Summary:     "First",
			Location:    "Room 1",
			Description: "notes",
			Status:      "confirmed",
			Start:       &calendar.EventDateTime{DateTime: "2024-06-01T10:00:00Z"},
			End:         &calendar.EventDateTime{DateTime: "2024-06-01T11:00:00Z"},
		},
		{
			Id:      "e2",
			Summary: "Second",
			Start:   &calendar.EventDateTime{DateTime: "2024-06-01T12:00:00Z"},
			End:     &calendar.EventDateTime{DateTime: "2024-06-01T13:00:00Z"},
		},
	}

	normalized, err := NormalizeEvents(events, time.UTC)
	require.NoError(t, err)
	require.Len(t, normalized, 2)

	assert.Equal(t, "e1", normalized[0].Id)
	assert.Equal(t, "e2", normalized[1].Id)
	assert.Equal(t, "First", normalized[0].Summary)
	assert.Equal(t, "Room 1", normalized[0].Location)
	assert.Equal(t, "notes", normalized[0].Description)
	assert.Equal(t, "confirmed", normalized[0].Status)

	// Inputs are untouched; normalization works on copies.
	assert.Equal(t, "2024-06-01T10:00:00Z", events[0].Start.DateTime)
}

func TestNormalizeEventsMissingStart(t *testing.T) {
	events := []*calendar.Event{
		{
			Id:  "broken",
			End: &calendar.EventDateTime{DateTime: "2024-06-01T11:00:00Z"},
		},
	}

	_, err := NormalizeEvents(events, time.UTC)
	assert.Error(t, err)
}

func TestNormalizeEventsEmptyTimeFields(t *testing.T) {
	events := []*calendar.Event{
		{
			Id:    "broken",
			Start: &calendar.EventDateTime{},
			End:   &calendar.EventDateTime{DateTime: "2024-06-01T11:00:00Z"},
		},
	}

	_, err := NormalizeEvents(events, time.UTC)
	assert.Error(t, err)
}
