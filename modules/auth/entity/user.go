package entity

import (
	"calendar-sync-api/core/entity"
)

// User is a registered account. Timezone holds the IANA zone preference used
// when calendar events are normalized; nil means UTC.
type User struct {
	entity.BaseEntity
	Email    string  `db:"email" json:"email"`
	Password *string `db:"password" json:"-"`
	Name     *string `db:"name" json:"name,omitempty"`
	Timezone *string `db:"timezone" json:"timezone,omitempty"`
}

func (User) TableName() string {
	return "users"
}
