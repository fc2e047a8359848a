package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dkuznetsova/staff-accounts-api/internal/models"
	"github.com/dkuznetsova/staff-accounts-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrUsernameTaken        = errors.New("username already exists")
	ErrAssignmentNotFound   = errors.New("assignment not found")
	ErrAccountConflict      = errors.New("account was modified concurrently")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AccountService is the identity manager: the full lifecycle of
// account records goes through it.
type AccountService struct {
	accountRepo repository.AccountRepository
	catalogRepo repository.CatalogRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo repository.AccountRepository, catalogRepo repository.CatalogRepository) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		catalogRepo: catalogRepo,
	}
}

// AccountInput carries the fields applied on create and edit. A nil
// AssignmentID clears the link; an empty Password on edit keeps the
// stored one.
type AccountInput struct {
	Username     string
	Email        string
	Phone        string
	Password     string
	AssignmentID *uint64
}

// List returns all accounts holding an assignment, with the
// assignment chain loaded for display.
func (s *AccountService) List() ([]models.Account, error) {
	return s.accountRepo.ListAssigned()
}

// Get retrieves one account with its assignment loaded.
func (s *AccountService) Get(id string) (*models.Account, error) {
	account, err := s.accountRepo.FindByID(id,
		"Assignment", "Assignment.Employee", "Assignment.Position")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return account, nil
}

// Exists reports whether an account with the id is still present.
func (s *AccountService) Exists(id string) (bool, error) {
	return s.accountRepo.Exists(id)
}

// Create builds a new account and inserts it with its password hash in
// one call, so a password-less account is never observable.
func (s *AccountService) Create(input AccountInput) (*models.Account, error) {
	username := strings.TrimSpace(input.Username)

	if _, err := s.accountRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	account := &models.Account{Username: username}
	s.SetEmail(account, input.Email)
	s.SetPhone(account, input.Phone)

	if err := s.setAssignment(account, input.AssignmentID); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}
	account.PasswordHash = string(hash)

	if err := s.accountRepo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return s.Get(account.ID)
}

// Update loads the account, applies the submitted fields and persists
// them under the optimistic version guard. A conflict is downgraded to
// not-found only when the record has since disappeared.
func (s *AccountService) Update(id string, input AccountInput) (*models.Account, error) {
	account, err := s.accountRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	s.SetUsername(account, input.Username)
	s.SetEmail(account, input.Email)
	s.SetPhone(account, input.Phone)

	if err := s.setAssignment(account, input.AssignmentID); err != nil {
		return nil, err
	}

	if input.Password != "" {
		if err := s.SetPassword(account, input.Password); err != nil {
			return nil, err
		}
	}

	if err := s.accountRepo.Update(account); err != nil {
		if errors.Is(err, repository.ErrConcurrentUpdate) {
			exists, existsErr := s.accountRepo.Exists(id)
			if existsErr != nil {
				return nil, fmt.Errorf("failed to recheck account: %w", existsErr)
			}
			if !exists {
				return nil, ErrAccountNotFound
			}
			return nil, ErrAccountConflict
		}
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return s.Get(id)
}

// Delete removes an account. Deleting an id that no longer resolves is
// reported as not-found rather than faulting.
func (s *AccountService) Delete(id string) error {
	exists, err := s.accountRepo.Exists(id)
	if err != nil {
		return fmt.Errorf("failed to check account: %w", err)
	}
	if !exists {
		return ErrAccountNotFound
	}

	if err := s.accountRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

// SetUsername replaces the login name on a loaded account.
func (s *AccountService) SetUsername(account *models.Account, username string) {
	account.Username = strings.TrimSpace(username)
}

// SetEmail replaces the email on a loaded account.
func (s *AccountService) SetEmail(account *models.Account, email string) {
	account.Email = strings.TrimSpace(email)
}

// SetPhone replaces the phone number on a loaded account.
func (s *AccountService) SetPhone(account *models.Account, phone string) {
	account.Phone = strings.TrimSpace(phone)
}

// SetPassword hashes and replaces the password on a loaded account.
func (s *AccountService) SetPassword(account *models.Account, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return ErrFailedToHashPassword
	}
	account.PasswordHash = string(hash)
	return nil
}

// setAssignment checks the referenced assignment exists before the
// foreign key is written.
func (s *AccountService) setAssignment(account *models.Account, assignmentID *uint64) error {
	if assignmentID == nil {
		account.AssignmentID = nil
		return nil
	}

	if _, err := s.catalogRepo.FindAssignment(*assignmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to find assignment: %w", err)
	}

	account.AssignmentID = assignmentID
	return nil
}
