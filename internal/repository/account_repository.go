package repository

import (
	"errors"

	"github.com/dkuznetsova/staff-accounts-api/internal/models"
	"gorm.io/gorm"
)

// ErrConcurrentUpdate is returned when a versioned update matched no
// row: the record was changed or removed after it was loaded.
var ErrConcurrentUpdate = errors.New("account repository: concurrent update detected")

// GormAccountRepository is a GORM implementation of AccountRepository
type GormAccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &GormAccountRepository{db: db}
}

// Create inserts a new account
func (r *GormAccountRepository) Create(account *models.Account) error {
	return r.db.Create(account).Error
}

// FindByID finds an account by ID
func (r *GormAccountRepository) FindByID(id string, preload ...string) (*models.Account, error) {
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}

	var account models.Account
	if err := query.Where("id = ?", id).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByUsername finds an account by login name
func (r *GormAccountRepository) FindByUsername(username string) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("username = ?", username).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// ListAssigned lists accounts holding an assignment, eager-loading the
// assignment together with its employee and position.
func (r *GormAccountRepository) ListAssigned() ([]models.Account, error) {
	var accounts []models.Account
	err := r.db.
		Preload("Assignment").
		Preload("Assignment.Employee").
		Preload("Assignment.Position").
		Where("assignment_id IS NOT NULL").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// Update writes the mutable account fields guarded by the version the
// record carried when it was loaded.
func (r *GormAccountRepository) Update(account *models.Account) error {
	loadedVersion := account.Version

	result := r.db.Model(&models.Account{}).
		Where("id = ? AND version = ?", account.ID, loadedVersion).
		Updates(map[string]interface{}{
			"username":      account.Username,
			"email":         account.Email,
			"phone":         account.Phone,
			"password_hash": account.PasswordHash,
			"assignment_id": account.AssignmentID,
			"version":       loadedVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConcurrentUpdate
	}

	account.Version = loadedVersion + 1
	return nil
}

// Delete soft deletes an account
func (r *GormAccountRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Account{}).Error
}

// Exists reports whether an account with the id is present
func (r *GormAccountRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Account{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
