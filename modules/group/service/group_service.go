package service

import (
	"context"

	"calendar-sync-api/core/constants"
	"calendar-sync-api/core/errors"
	"calendar-sync-api/core/logger"
	"calendar-sync-api/modules/group/dto"
	"calendar-sync-api/modules/group/entity"
	"calendar-sync-api/modules/group/mapper"
	"calendar-sync-api/modules/group/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type GroupService interface {
	CreateGroup(ctx context.Context, creatorEmail string, req *dto.GroupRequest) (*dto.GroupResponse, *errors.AppError)
	ListMyGroups(ctx context.Context, email string) (*dto.GroupListResponse, *errors.AppError)
	AddMember(ctx context.Context, groupID uuid.UUID, email string) *errors.AppError
	RemoveMember(ctx context.Context, groupID uuid.UUID, email string) *errors.AppError

	// GetGroupIDsForMember is the membership lookup behind the calendar sync
	// pipeline: all group IDs whose members array contains the email, in the
	// store's natural order.
	GetGroupIDsForMember(ctx context.Context, email string) ([]string, error)
}

type groupService struct {
	repo repository.GroupRepository
}

func NewGroupService(repo repository.GroupRepository) GroupService {
	return &groupService{repo: repo}
}

func (s *groupService) CreateGroup(ctx context.Context, creatorEmail string, req *dto.GroupRequest) (*dto.GroupResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if req.Name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "group name is required", nil)
	}

	members := req.Members
	if !contains(members, creatorEmail) {
		members = append(members, creatorEmail)
	}

	group := &entity.Group{
		Name:    req.Name,
		Slug:    slug.Make(req.Name),
		Members: members,
	}
	if req.Description != "" {
		group.Description = &req.Description
	}

	created, err := s.repo.CreateGroup(ctx, group)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create group failed", err)
	}
	return mapper.ToGroupResponse(created), nil
}

func (s *groupService) ListMyGroups(ctx context.Context, email string) (*dto.GroupListResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	groups, err := s.repo.ListGroupsByMemberEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get groups failed", err)
	}
	return mapper.ToGroupListResponse(groups), nil
}

func (s *groupService) AddMember(ctx context.Context, groupID uuid.UUID, email string) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	group, err := s.repo.GetGroupByID(ctx, groupID)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "get group failed", err)
	}
	if group == nil {
		return errors.NewAppError(errors.ErrNotFound, "group not found", nil)
	}

	if err := s.repo.AddMember(ctx, groupID, email); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "add member failed", err)
	}
	logger.Info("GroupService:AddMember", "group_id", groupID, "email", email)
	return nil
}

func (s *groupService) RemoveMember(ctx context.Context, groupID uuid.UUID, email string) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if err := s.repo.RemoveMember(ctx, groupID, email); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "remove member failed", err)
	}
	return nil
}

func (s *groupService) GetGroupIDsForMember(ctx context.Context, email string) ([]string, error) {
	return s.repo.GetGroupIDsByMemberEmail(ctx, email)
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
