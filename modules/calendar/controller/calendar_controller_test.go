package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"calendar-sync-api/core/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	calendar "google.golang.org/api/calendar/v3"
)

type fakeSyncService struct {
	events []*calendar.Event
	err    *errors.AppError
}

func (f *fakeSyncService) SyncEvents(ctx context.Context, sessionToken string) ([]*calendar.Event, *errors.AppError) {
	return f.events, f.err
}

func doGetEvents(t *testing.T, svc *fakeSyncService) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar/events", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ctrl := NewCalendarController(svc)
	require.NoError(t, ctrl.GetEvents(c))
	return rec
}

func TestGetEventsUnauthorized(t *testing.T) {
	rec := doGetEvents(t, &fakeSyncService{
		err: errors.NewAppError(errors.ErrUnauthorized, "Unauthorized", nil),
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestGetEventsSessionExpired(t *testing.T) {
	rec := doGetEvents(t, &fakeSyncService{
		err: errors.NewAppError(errors.ErrSessionExpired, "Session expired, please sign in again", nil),
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Session expired, please sign in again"}`, rec.Body.String())
}

func TestGetEventsNoEventsFound(t *testing.T) {
	rec := doGetEvents(t, &fakeSyncService{
		err: errors.NewAppError(errors.ErrNoEventsFound, "No events found", nil),
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"No events found"}`, rec.Body.String())
}

func TestGetEventsInternalFailure(t *testing.T) {
	rec := doGetEvents(t, &fakeSyncService{
		err: errors.NewAppError(errors.ErrInternalServer, "Failed to fetch calendar events", nil),
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch calendar events"}`, rec.Body.String())
}

func TestGetEventsSuccessReturnsBareArray(t *testing.T) {
	rec := doGetEvents(t, &fakeSyncService{
		events: []*calendar.Event{
			{
				Id:    "e1",
				Start: &calendar.EventDateTime{DateTime: "2024-06-01T10:00:00-04:00"},
				End:   &calendar.EventDateTime{DateTime: "2024-06-01T11:00:00-04:00"},
			},
		},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"e1"`)
	// A bare array, not a wrapped envelope.
	assert.Equal(t, byte('['), rec.Body.Bytes()[0])
}

func TestGetEventsEmptySuccess(t *testing.T) {
	rec := doGetEvents(t, &fakeSyncService{events: []*calendar.Event{}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
