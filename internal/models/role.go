package models

import "time"

// Role is an identity-store role extended with a localized display name.
type Role struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	Name       string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	NameSecond string    `gorm:"type:varchar(30);not null" json:"name_second"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewRole seeds the secondary display name from the role name.
func NewRole(name string) *Role {
	return &Role{
		Name:       name,
		NameSecond: name,
	}
}
