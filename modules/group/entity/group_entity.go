package entity

import (
	"calendar-sync-api/core/entity"

	"github.com/lib/pq"
)

// Group is a membership collection. Members is the array of member emails;
// a user belongs to a group when their email appears in it.
type Group struct {
	entity.BaseEntity
	Name        string         `db:"name" json:"name"`
	Slug        string         `db:"slug" json:"slug"`
	Description *string        `db:"description" json:"description,omitempty"`
	Members     pq.StringArray `db:"members" json:"members"`
}

func (Group) TableName() string {
	return "groups"
}
