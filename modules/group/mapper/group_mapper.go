package mapper

import (
	"time"

	"calendar-sync-api/modules/group/dto"
	"calendar-sync-api/modules/group/entity"
)

func ToGroupResponse(group *entity.Group) *dto.GroupResponse {
	resp := &dto.GroupResponse{
		ID:        group.ID.String(),
		Name:      group.Name,
		Slug:      group.Slug,
		Members:   group.Members,
		CreatedAt: group.CreatedAt.Format(time.RFC3339),
	}
	if group.Description != nil {
		resp.Description = *group.Description
	}
	if resp.Members == nil {
		resp.Members = []string{}
	}
	return resp
}

func ToGroupListResponse(groups []entity.Group) *dto.GroupListResponse {
	items := make([]dto.GroupResponse, len(groups))
	for i := range groups {
		items[i] = *ToGroupResponse(&groups[i])
	}
	return &dto.GroupListResponse{Groups: items}
}
