package repository

import (
	"github.com/dkuznetsova/staff-accounts-api/internal/models"
	"gorm.io/gorm"
)

// GormCatalogRepository is a GORM implementation of CatalogRepository
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &GormCatalogRepository{db: db}
}

// ListAssignments lists assignments with employee and position preloaded
func (r *GormCatalogRepository) ListAssignments() ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.
		Preload("Employee").
		Preload("Position").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// FindAssignment finds an assignment by ID
func (r *GormCatalogRepository) FindAssignment(id uint64) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := r.db.Preload("Employee").Preload("Position").First(&assignment, id).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// ListEmployees lists the employee catalog
func (r *GormCatalogRepository) ListEmployees() ([]models.Employee, error) {
	var employees []models.Employee
	if err := r.db.Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// ListPositions lists the position catalog
func (r *GormCatalogRepository) ListPositions() ([]models.Position, error) {
	var positions []models.Position
	if err := r.db.Find(&positions).Error; err != nil {
		return nil, err
	}
	return positions, nil
}

// ListRoles lists the role catalog
func (r *GormCatalogRepository) ListRoles() ([]models.Role, error) {
	var roles []models.Role
	if err := r.db.Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

// CreateRole inserts a new role
func (r *GormCatalogRepository) CreateRole(role *models.Role) error {
	return r.db.Create(role).Error
}

// ListFunctions lists permission functions with rights preloaded
func (r *GormCatalogRepository) ListFunctions() ([]models.Function, error) {
	var functions []models.Function
	if err := r.db.Preload("Rights").Find(&functions).Error; err != nil {
		return nil, err
	}
	return functions, nil
}

// CreateFunction inserts a new permission function
func (r *GormCatalogRepository) CreateFunction(function *models.Function) error {
	return r.db.Create(function).Error
}
