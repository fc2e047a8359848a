package dto

import (
	"time"

	"github.com/dkuznetsova/staff-accounts-api/internal/models"
)

// AccountForm is the submitted shape for account create/edit.
type AccountForm struct {
	ID              string  `json:"id"`
	Username        string  `json:"username"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirm_password"`
	AssignmentID    *uint64 `json:"assignment_id"`
}

// AccountView is the flat projection of an account used by the list,
// detail and delete-confirmation responses.
type AccountView struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	AssignmentID *uint64   `json:"assignment_id"`
	Assignment   string    `json:"assignment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AssignmentOption is a picker entry for the account forms.
type AssignmentOption struct {
	ID   uint64 `json:"id"`
	View string `json:"view"`
}

// AccountFormContext carries the catalogs the account forms need to
// render their pickers.
type AccountFormContext struct {
	Assignments []AssignmentOption `json:"assignments"`
	Employees   []models.Employee  `json:"employees"`
	Positions   []models.Position  `json:"positions"`
}

// ToAccountView converts an Account to its projection. The assignment
// display string is filled only when the relation is preloaded.
func ToAccountView(account models.Account) AccountView {
	view := AccountView{
		ID:           account.ID,
		Username:     account.Username,
		Email:        account.Email,
		Phone:        account.Phone,
		AssignmentID: account.AssignmentID,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}

	if account.Assignment != nil {
		view.Assignment = account.Assignment.View()
	}

	return view
}

// ToAccountViews converts a slice of accounts.
func ToAccountViews(accounts []models.Account) []AccountView {
	views := make([]AccountView, len(accounts))
	for i, account := range accounts {
		views[i] = ToAccountView(account)
	}
	return views
}

// ToAssignmentOptions converts assignments to picker entries.
func ToAssignmentOptions(assignments []models.Assignment) []AssignmentOption {
	options := make([]AssignmentOption, len(assignments))
	for i, assignment := range assignments {
		options[i] = AssignmentOption{
			ID:   assignment.ID,
			View: assignment.View(),
		}
	}
	return options
}

// ToAccountForm pre-populates an edit form from the stored record.
func ToAccountForm(account models.Account) AccountForm {
	return AccountForm{
		ID:           account.ID,
		Username:     account.Username,
		Email:        account.Email,
		Phone:        account.Phone,
		AssignmentID: account.AssignmentID,
	}
}
