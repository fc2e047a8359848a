package models

import "time"

// Employee is a staff catalog entry referenced by assignments.
type Employee struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	Surname    string    `gorm:"type:varchar(60);not null" json:"surname"`
	Name       string    `gorm:"type:varchar(60);not null" json:"name"`
	Patronymic string    `gorm:"type:varchar(60)" json:"patronymic"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Assignments []Assignment `gorm:"foreignKey:EmployeeID" json:"assignments,omitempty"`
}
