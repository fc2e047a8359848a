package models

import (
	"fmt"
	"time"
)

// Assignment links an employee to a position. Accounts reference an
// assignment to describe who the account belongs to in the org chart.
type Assignment struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	EmployeeID uint64    `gorm:"not null" json:"employee_id"`
	PositionID uint64    `gorm:"not null" json:"position_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Employee Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Position Position `gorm:"foreignKey:PositionID" json:"position,omitempty"`
}

// View renders the human-readable label shown in pickers and lists.
// Requires Employee and Position to be preloaded; falls back to the
// numeric id when they are not.
func (a Assignment) View() string {
	if a.Employee.ID == 0 || a.Position.ID == 0 {
		return fmt.Sprintf("assignment #%d", a.ID)
	}

	initials := ""
	if a.Employee.Name != "" {
		initials = fmt.Sprintf(" %c.", []rune(a.Employee.Name)[0])
	}
	if a.Employee.Patronymic != "" {
		initials += fmt.Sprintf("%c.", []rune(a.Employee.Patronymic)[0])
	}

	return fmt.Sprintf("%s%s, %s", a.Employee.Surname, initials, a.Position.Name)
}
