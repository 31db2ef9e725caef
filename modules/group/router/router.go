package router

import (
	"calendar-sync-api/core/middleware"
	"calendar-sync-api/modules/group/controller"

	"github.com/labstack/echo/v4"
)

type GroupRouter struct {
	controller *controller.GroupController
}

func NewGroupRouter(controller *controller.GroupController) *GroupRouter {
	return &GroupRouter{controller: controller}
}

func (r *GroupRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	groupRoutes := v1.Group("/private/groups")
	groupRoutes.Use(mw.AuthMiddleware())

	groupRoutes.POST("", r.controller.CreateGroup)
	groupRoutes.GET("", r.controller.ListMyGroups)
	groupRoutes.POST("/:id/members", r.controller.AddMember)
	groupRoutes.DELETE("/:id/members/:email", r.controller.RemoveMember)
}
