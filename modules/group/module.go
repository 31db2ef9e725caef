package group

import (
	"calendar-sync-api/core/database"
	"calendar-sync-api/core/middleware"
	"calendar-sync-api/modules/group/controller"
	"calendar-sync-api/modules/group/repository"
	"calendar-sync-api/modules/group/router"
	"calendar-sync-api/modules/group/service"

	"github.com/labstack/echo/v4"
)

// Init wires the group module and returns its service so the calendar
// module can use it for membership lookups.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) service.GroupService {
	repo := repository.NewGroupRepository(db)
	groupService := service.NewGroupService(repo)
	groupController := controller.NewGroupController(groupService)

	router.NewGroupRouter(groupController).Setup(e, mw)

	return groupService
}
