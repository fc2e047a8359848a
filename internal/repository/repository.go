package repository

import (
	"github.com/dkuznetsova/staff-accounts-api/internal/models"
)

// AccountRepository defines the capability set the identity manager
// needs from the account store.
type AccountRepository interface {
	// Create inserts a new account
	Create(account *models.Account) error

	// FindByID finds an account by ID with optional preloading
	FindByID(id string, preload ...string) (*models.Account, error)

	// FindByUsername finds an account by login name
	FindByUsername(username string) (*models.Account, error)

	// ListAssigned lists accounts holding an assignment, with the
	// assignment chain preloaded
	ListAssigned() ([]models.Account, error)

	// Update persists field changes guarded by the record version
	Update(account *models.Account) error

	// Delete soft deletes an account
	Delete(id string) error

	// Exists reports whether an account with the id is present
	Exists(id string) (bool, error)
}

// CatalogRepository defines data access for the organizational and
// permission catalogs backing the account forms.
type CatalogRepository interface {
	// ListAssignments lists assignments with employee and position preloaded
	ListAssignments() ([]models.Assignment, error)

	// FindAssignment finds an assignment by ID
	FindAssignment(id uint64) (*models.Assignment, error)

	// ListEmployees lists the employee catalog
	ListEmployees() ([]models.Employee, error)

	// ListPositions lists the position catalog
	ListPositions() ([]models.Position, error)

	// ListRoles lists the role catalog
	ListRoles() ([]models.Role, error)

	// CreateRole inserts a new role
	CreateRole(role *models.Role) error

	// ListFunctions lists permission functions with rights preloaded
	ListFunctions() ([]models.Function, error)

	// CreateFunction inserts a new permission function
	CreateFunction(function *models.Function) error
}
