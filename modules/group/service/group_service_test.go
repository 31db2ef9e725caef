package service

import (
	"context"
	"errors"
	"testing"
	"time"

	coreerrors "calendar-sync-api/core/errors"
	"calendar-sync-api/modules/group/dto"
	"calendar-sync-api/modules/group/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGroupRepo struct {
	created *entity.Group
	groups  map[uuid.UUID]*entity.Group
	ids     []string
	idsErr  error

	addMemberCalls []string
}

func (f *fakeGroupRepo) CreateGroup(ctx context.Context, group *entity.Group) (*entity.Group, error) {
	group.ID = uuid.New()
	group.CreatedAt = time.Now()
	group.UpdatedAt = group.CreatedAt
	f.created = group
	return group, nil
}

func (f *fakeGroupRepo) GetGroupByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	return f.groups[id], nil
}

func (f *fakeGroupRepo) ListGroupsByMemberEmail(ctx context.Context, email string) ([]entity.Group, error) {
	var out []entity.Group
	for _, g := range f.groups {
		for _, m := range g.Members {
			if m == email {
				out = append(out, *g)
			}
		}
	}
	return out, nil
}

func (f *fakeGroupRepo) GetGroupIDsByMemberEmail(ctx context.Context, email string) ([]string, error) {
	return f.ids, f.idsErr
}

func (f *fakeGroupRepo) AddMember(ctx context.Context, groupID uuid.UUID, email string) error {
	f.addMemberCalls = append(f.addMemberCalls, email)
	return nil
}

func (f *fakeGroupRepo) RemoveMember(ctx context.Context, groupID uuid.UUID, email string) error {
	return nil
}

func TestCreateGroupAddsCreatorAndSlug(t *testing.T) {
	repo := &fakeGroupRepo{}
	svc := NewGroupService(repo)

	resp, appErr := svc.CreateGroup(context.Background(), "alice@example.com", &dto.GroupRequest{
		Name:    "Weekly Standup Crew",
		Members: []string{"bob@example.com"},
	})

	require.Nil(t, appErr)
	assert.Equal(t, "weekly-standup-crew", resp.Slug)
	assert.ElementsMatch(t, []string{"bob@example.com", "alice@example.com"}, resp.Members)
}

func TestCreateGroupCreatorNotDuplicated(t *testing.T) {
	repo := &fakeGroupRepo{}
	svc := NewGroupService(repo)

	resp, appErr := svc.CreateGroup(context.Background(), "alice@example.com", &dto.GroupRequest{
		Name:    "Ops",
		Members: []string{"alice@example.com"},
	})

	require.Nil(t, appErr)
	assert.Equal(t, []string{"alice@example.com"}, resp.Members)
}

func TestCreateGroupRequiresName(t *testing.T) {
	svc := NewGroupService(&fakeGroupRepo{})

	_, appErr := svc.CreateGroup(context.Background(), "alice@example.com", &dto.GroupRequest{})

	require.NotNil(t, appErr)
	assert.Equal(t, coreerrors.ErrInvalidInput, appErr.Code)
}

func TestGetGroupIDsForMember(t *testing.T) {
	repo := &fakeGroupRepo{ids: []string{"g1", "g2"}}
	svc := NewGroupService(repo)

	ids, err := svc.GetGroupIDsForMember(context.Background(), "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, []string{"g1", "g2"}, ids)
}

func TestGetGroupIDsForMemberPassesThroughError(t *testing.T) {
	repo := &fakeGroupRepo{idsErr: errors.New("db down")}
	svc := NewGroupService(repo)

	_, err := svc.GetGroupIDsForMember(context.Background(), "alice@example.com")

	assert.Error(t, err)
}

func TestAddMemberUnknownGroup(t *testing.T) {
	repo := &fakeGroupRepo{groups: map[uuid.UUID]*entity.Group{}}
	svc := NewGroupService(repo)

	appErr := svc.AddMember(context.Background(), uuid.New(), "bob@example.com")

	require.NotNil(t, appErr)
	assert.Equal(t, coreerrors.ErrNotFound, appErr.Code)
	assert.Empty(t, repo.addMemberCalls)
}
