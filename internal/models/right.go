package models

import "time"

// Right is a single permission owned by a function.
type Right struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	FunctionID  uint64    `gorm:"not null" json:"function_id"`
	Name        string    `gorm:"type:varchar(120);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
