package router

import (
	"calendar-sync-api/modules/calendar/controller"

	"github.com/labstack/echo/v4"
)

type CalendarRouter struct {
	controller *controller.CalendarController
}

func NewCalendarRouter(controller *controller.CalendarController) *CalendarRouter {
	return &CalendarRouter{controller: controller}
}

func (r *CalendarRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.GET("/calendar/events", r.controller.GetEvents)
}
