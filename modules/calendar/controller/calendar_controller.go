package controller

import (
	"net/http"

	"calendar-sync-api/core/controller"
	"calendar-sync-api/core/middleware"
	"calendar-sync-api/modules/calendar/service"

	"github.com/labstack/echo/v4"
)

type CalendarController struct {
	service service.SyncService
}

func NewCalendarController(service service.SyncService) *CalendarController {
	return &CalendarController{service: service}
}

// GetEvents runs the calendar sync pipeline for the calling session and
// returns the normalized events. The session is resolved inside the
// pipeline, so this route carries no auth middleware: a missing or invalid
// session yields the pipeline's own Unauthorized response.
// GET /api/v1/calendar/events
func (ctrl *CalendarController) GetEvents(c echo.Context) error {
	token := middleware.ExtractSessionToken(c)

	events, appErr := ctrl.service.SyncEvents(c.Request().Context(), token)
	if appErr != nil {
		return c.JSON(controller.HTTPStatusForCode(appErr.Code), echo.Map{"error": appErr.Message})
	}

	return c.JSON(http.StatusOK, events)
}
