package service

import (
	"context"
	"fmt"
	"time"

	"calendar-sync-api/core/constants"

	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

type googleEventFetcher struct{}

// NewGoogleEventFetcher returns the EventFetcher backed by the Google
// Calendar API.
func NewGoogleEventFetcher() EventFetcher {
	return &googleEventFetcher{}
}

// FetchWeekEvents lists all events on the principal's primary calendar in
// [now, now+7 days), recurring events expanded, ascending by start time.
// A nil slice means the response carried no items field at all; an explicit
// empty list comes back as an empty non-nil slice.
func (f *googleEventFetcher) FetchWeekEvents(ctx context.Context, accessToken string) ([]*calendar.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.CalendarFetchTimeout)
	defer cancel()

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	srv, err := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	// Calendar-day addition so the window tracks DST transitions.
	timeMin := time.Now()
	timeMax := timeMin.AddDate(0, 0, constants.CalendarWindowDays)

	resp, err := srv.Events.List("primary").
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve events: %w", err)
	}

	return resp.Items, nil
}
