package calendar

import (
	"calendar-sync-api/core/storage"
	"calendar-sync-api/modules/calendar/controller"
	"calendar-sync-api/modules/calendar/repository"
	"calendar-sync-api/modules/calendar/router"
	"calendar-sync-api/modules/calendar/service"

	"github.com/labstack/echo/v4"
)

// Init wires the calendar sync pipeline: sessions come from the auth
// module, memberships from the group module, events from Google Calendar,
// and snapshots go to the document store.
func Init(e *echo.Echo, sessions service.SessionResolver, groups service.GroupLookup, docs storage.DocumentStore) {
	store := repository.NewEventStore(docs)
	fetcher := service.NewGoogleEventFetcher()
	syncService := service.NewSyncService(sessions, groups, fetcher, store)
	calendarController := controller.NewCalendarController(syncService)

	router.NewCalendarRouter(calendarController).Setup(e)
}
