package service

import (
	"fmt"
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

// TimestampLayout is the fixed rendering of normalized event timestamps:
// local time in the principal's zone with a numeric offset.
const TimestampLayout = "2006-01-02T15:04:05-07:00"

const dateOnlyLayout = "2006-01-02"

// NormalizeEvents returns a copy of each event with the start and end
// DateTime rewritten into loc. Every other field is carried over untouched
// and the input order is preserved. Formatting is deterministic: feeding an
// already-normalized timestamp back through yields the same string.
func NormalizeEvents(events []*calendar.Event, loc *time.Location) ([]*calendar.Event, error) {
	normalized := make([]*calendar.Event, 0, len(events))
	for _, event := range events {
		converted, err := normalizeEvent(event, loc)
		if err != nil {
			return nil, fmt.Errorf("event %s: %w", event.Id, err)
		}
		normalized = append(normalized, converted)
	}
	return normalized, nil
}

func normalizeEvent(event *calendar.Event, loc *time.Location) (*calendar.Event, error) {
	start, err := normalizeEventTime(event.Start, loc)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	end, err := normalizeEventTime(event.End, loc)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}

	converted := *event
	converted.Start = start
	converted.End = end
	return &converted, nil
}

func normalizeEventTime(edt *calendar.EventDateTime, loc *time.Location) (*calendar.EventDateTime, error) {
	if edt == nil {
		return nil, fmt.Errorf("missing time field")
	}

	instant, err := resolveInstant(edt)
	if err != nil {
		return nil, err
	}

	converted := *edt
	converted.DateTime = instant.In(loc).Format(TimestampLayout)
	return &converted, nil
}

// resolveInstant prefers the precise dateTime; a date-only value (all-day
// event) is taken as midnight of that date in the event's declared zone,
// or UTC when none is declared.
func resolveInstant(edt *calendar.EventDateTime) (time.Time, error) {
	if edt.DateTime != "" {
		instant, err := time.Parse(time.RFC3339, edt.DateTime)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid dateTime %q: %w", edt.DateTime, err)
		}
		return instant, nil
	}

	if edt.Date != "" {
		zone := time.UTC
		if edt.TimeZone != "" {
			loaded, err := time.LoadLocation(edt.TimeZone)
			if err != nil {
				return time.Time{}, fmt.Errorf("invalid timeZone %q: %w", edt.TimeZone, err)
			}
			zone = loaded
		}
		instant, err := time.ParseInLocation(dateOnlyLayout, edt.Date, zone)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: %w", edt.Date, err)
		}
		return instant, nil
	}

	return time.Time{}, fmt.Errorf("neither dateTime nor date is set")
}
