package controller

import (
	"calendar-sync-api/core/constants"
	"calendar-sync-api/core/controller"
	"calendar-sync-api/core/errors"
	"calendar-sync-api/core/utils"
	"calendar-sync-api/modules/group/dto"
	"calendar-sync-api/modules/group/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type GroupController struct {
	controller.BaseController
	GroupService service.GroupService
}

func NewGroupController(groupService service.GroupService) *GroupController {
	return &GroupController{
		BaseController: controller.NewBaseController(),
		GroupService:   groupService,
	}
}

func (ctrl *GroupController) CreateGroup(c echo.Context) error {
	ctx := c.Request().Context()

	tokenData, ok := tokenDataFromContext(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	requestData := new(dto.GroupRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	groupResponse, err := ctrl.GroupService.CreateGroup(ctx, tokenData.Email, requestData)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, groupResponse, "Create group success")
}

func (ctrl *GroupController) ListMyGroups(c echo.Context) error {
	ctx := c.Request().Context()

	tokenData, ok := tokenDataFromContext(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	groups, err := ctrl.GroupService.ListMyGroups(ctx, tokenData.Email)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, groups, "Get groups success")
}

func (ctrl *GroupController) AddMember(c echo.Context) error {
	ctx := c.Request().Context()

	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid group id", nil)
	}

	requestData := new(dto.AddMemberRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}
	if requestData.Email == "" {
		return ctrl.BadRequest(errors.ErrInvalidInput, "email is required", nil)
	}

	if appErr := ctrl.GroupService.AddMember(ctx, groupID, requestData.Email); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, nil, "Add member success")
}

func (ctrl *GroupController) RemoveMember(c echo.Context) error {
	ctx := c.Request().Context()

	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid group id", nil)
	}

	email := c.Param("email")
	if email == "" {
		return ctrl.BadRequest(errors.ErrInvalidInput, "email is required", nil)
	}

	if appErr := ctrl.GroupService.RemoveMember(ctx, groupID, email); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, nil, "Remove member success")
}

func tokenDataFromContext(c echo.Context) (*utils.TokenData, bool) {
	tokenData, ok := c.Get(constants.ContextTokenData).(*utils.TokenData)
	return tokenData, ok
}
