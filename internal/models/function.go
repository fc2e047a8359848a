package models

import "time"

// Function is a named group in the permissions catalog. It owns its
// rights: a right never exists without a parent function.
type Function struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(30);not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Rights []Right `gorm:"foreignKey:FunctionID" json:"rights"`
}

// NewFunction constructs a function with an empty, non-nil rights
// collection.
func NewFunction(name string) *Function {
	return &Function{
		Name:   name,
		Rights: []Right{},
	}
}
