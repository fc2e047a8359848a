package models

import "time"

// Position is a job title catalog entry referenced by assignments.
type Position struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(120);not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Assignments []Assignment `gorm:"foreignKey:PositionID" json:"assignments,omitempty"`
}
