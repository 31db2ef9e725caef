package repository

import (
	"context"
	"database/sql"

	"calendar-sync-api/core/database"
	"calendar-sync-api/core/logger"
	"calendar-sync-api/modules/group/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type GroupRepository interface {
	CreateGroup(ctx context.Context, group *entity.Group) (*entity.Group, error)
	GetGroupByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)
	ListGroupsByMemberEmail(ctx context.Context, email string) ([]entity.Group, error)
	GetGroupIDsByMemberEmail(ctx context.Context, email string) ([]string, error)
	AddMember(ctx context.Context, groupID uuid.UUID, email string) error
	RemoveMember(ctx context.Context, groupID uuid.UUID, email string) error
}

type groupRepository struct {
	db database.Database
}

func NewGroupRepository(db database.Database) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) CreateGroup(ctx context.Context, group *entity.Group) (*entity.Group, error) {
	query := `
		INSERT INTO groups (name, slug, description, members)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		group.Name, group.Slug, group.Description, pq.Array(group.Members),
	).Scan(&group.ID, &group.CreatedAt, &group.UpdatedAt)
	if err != nil {
		logger.Error("GroupRepository:CreateGroup", "error", err)
		return nil, err
	}
	return group, nil
}

func (r *groupRepository) GetGroupByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	var group entity.Group
	query := `
		SELECT id, name, slug, description, members, created_at, updated_at
		FROM groups
		WHERE id = $1
	`
	err := r.db.GetContext(ctx, &group, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("GroupRepository:GetGroupByID", "error", err)
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) ListGroupsByMemberEmail(ctx context.Context, email string) ([]entity.Group, error) {
	var groups []entity.Group
	query := `
		SELECT id, name, slug, description, members, created_at, updated_at
		FROM groups
		WHERE $1 = ANY(members)
	`
	err := r.db.SelectContext(ctx, &groups, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return []entity.Group{}, nil
		}
		logger.Error("GroupRepository:ListGroupsByMemberEmail", "error", err)
		return nil, err
	}
	return groups, nil
}

// GetGroupIDsByMemberEmail returns identifiers in the store's natural order;
// callers must not rely on any particular ordering.
func (r *groupRepository) GetGroupIDsByMemberEmail(ctx context.Context, email string) ([]string, error) {
	var ids []string
	query := `
		SELECT id
		FROM groups
		WHERE $1 = ANY(members)
	`
	err := r.db.SelectContext(ctx, &ids, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return []string{}, nil
		}
		logger.Error("GroupRepository:GetGroupIDsByMemberEmail", "error", err)
		return nil, err
	}
	return ids, nil
}

func (r *groupRepository) AddMember(ctx context.Context, groupID uuid.UUID, email string) error {
	query := `
		UPDATE groups
		SET members = array_append(members, $1), updated_at = now()
		WHERE id = $2 AND NOT ($1 = ANY(members))
	`
	if err := r.db.ExecContext(ctx, query, email, groupID); err != nil {
		logger.Error("GroupRepository:AddMember", "error", err)
		return err
	}
	return nil
}

func (r *groupRepository) RemoveMember(ctx context.Context, groupID uuid.UUID, email string) error {
	query := `
		UPDATE groups
		SET members = array_remove(members, $1), updated_at = now()
		WHERE id = $2
	`
	if err := r.db.ExecContext(ctx, query, email, groupID); err != nil {
		logger.Error("GroupRepository:RemoveMember", "error", err)
		return err
	}
	return nil
}
