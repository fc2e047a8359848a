package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dkuznetsova/staff-accounts-api/internal/dto"
	apierrors "github.com/dkuznetsova/staff-accounts-api/internal/errors"
	"github.com/dkuznetsova/staff-accounts-api/internal/repository"
	"github.com/dkuznetsova/staff-accounts-api/internal/services"
	"github.com/dkuznetsova/staff-accounts-api/internal/validation"
	"github.com/gin-gonic/gin"
)

// AccountHandler exposes list/detail/create/edit/delete over account
// records, enriched with assignment data.
type AccountHandler struct {
	accounts *services.AccountService
	catalog  repository.CatalogRepository
	mailer   *services.Mailer
}

// NewAccountHandler creates a new AccountHandler. mailer may be nil;
// confirmation mail is then skipped.
func NewAccountHandler(accounts *services.AccountService, catalog repository.CatalogRepository, mailer *services.Mailer) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		catalog:  catalog,
		mailer:   mailer,
	}
}

// List returns all accounts holding an assignment, projected with the
// assignment display string. No pagination; store order.
func (h *AccountHandler) List(c *gin.Context) {
	accounts, err := h.accounts.List()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch accounts")
		return
	}

	c.JSON(http.StatusOK, gin.H{"accounts": dto.ToAccountViews(accounts)})
}

// Details returns one account projection or 404.
func (h *AccountHandler) Details(c *gin.Context) {
	account, err := h.accounts.Get(c.Param("id"))
	if err != nil {
		h.respondAccountError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountView(*account))
}

// NewForm returns the catalogs the create form needs for its
// assignment picker.
func (h *AccountHandler) NewForm(c *gin.Context) {
	ctx, err := h.formContext()
	if err != nil {
		apierrors.InternalError(c, "Failed to load form catalogs")
		return
	}

	c.JSON(http.StatusOK, ctx)
}

// Create validates the submitted form and creates the account through
// the identity manager. A violating form never reaches the create call.
func (h *AccountHandler) Create(c *gin.Context) {
	var form dto.AccountForm
	if err := c.ShouldBindJSON(&form); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if violations := validation.ValidateAccountCreate(form); len(violations) > 0 {
		h.respondFormViolations(c, violations)
		return
	}

	account, err := h.accounts.Create(services.AccountInput{
		Username:     form.Username,
		Email:        form.Email,
		Phone:        form.Phone,
		Password:     form.Password,
		AssignmentID: form.AssignmentID,
	})
	if err != nil {
		h.respondAccountError(c, err)
		return
	}

	if h.mailer != nil && account.Email != "" {
		body := fmt.Sprintf("<p>An account <b>%s</b> has been created for you.</p>", account.Username)
		if err := h.mailer.Send(account.Email, "Your account has been created", body); err != nil {
			apierrors.InternalError(c, "Account created but confirmation email failed")
			return
		}
	}

	c.JSON(http.StatusCreated, dto.ToAccountView(*account))
}

// EditForm returns the form pre-populated from the stored record plus
// the picker catalogs, or 404.
func (h *AccountHandler) EditForm(c *gin.Context) {
	account, err := h.accounts.Get(c.Param("id"))
	if err != nil {
		h.respondAccountError(c, err)
		return
	}

	ctx, err := h.formContext()
	if err != nil {
		apierrors.InternalError(c, "Failed to load form catalogs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"form":    dto.ToAccountForm(*account),
		"context": ctx,
	})
}

// Update applies an edit form. A path/body id mismatch is 404 before
// any persistence call; a concurrent modification is rechecked and
// surfaces as 404 when the record is gone, 409 otherwise.
func (h *AccountHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var form dto.AccountForm
	if err := c.ShouldBindJSON(&form); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if form.ID != id {
		apierrors.NotFound(c, "Account id mismatch")
		return
	}

	if violations := validation.ValidateAccountEdit(form); len(violations) > 0 {
		h.respondFormViolations(c, violations)
		return
	}

	account, err := h.accounts.Update(id, services.AccountInput{
		Username:     form.Username,
		Email:        form.Email,
		Phone:        form.Phone,
		Password:     form.Password,
		AssignmentID: form.AssignmentID,
	})
	if err != nil {
		h.respondAccountError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountView(*account))
}

// DeleteForm returns the confirmation projection or 404.
func (h *AccountHandler) DeleteForm(c *gin.Context) {
	account, err := h.accounts.Get(c.Param("id"))
	if err != nil {
		h.respondAccountError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountView(*account))
}

// Delete removes an account after confirmation. An unknown id is 404.
func (h *AccountHandler) Delete(c *gin.Context) {
	if err := h.accounts.Delete(c.Param("id")); err != nil {
		h.respondAccountError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

func (h *AccountHandler) formContext() (*dto.AccountFormContext, error) {
	assignments, err := h.catalog.ListAssignments()
	if err != nil {
		return nil, err
	}
	employees, err := h.catalog.ListEmployees()
	if err != nil {
		return nil, err
	}
	positions, err := h.catalog.ListPositions()
	if err != nil {
		return nil, err
	}

	return &dto.AccountFormContext{
		Assignments: dto.ToAssignmentOptions(assignments),
		Employees:   employees,
		Positions:   positions,
	}, nil
}

// respondFormViolations redisplays the form: the violation list plus
// the picker catalogs the client needs to render it again.
func (h *AccountHandler) respondFormViolations(c *gin.Context, violations []validation.FieldViolation) {
	details := gin.H{"violations": violations}
	if ctx, err := h.formContext(); err == nil {
		details["context"] = ctx
	}
	apierrors.BadRequestWithDetails(c, "Validation failed", details)
}

func (h *AccountHandler) respondAccountError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAccountNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrAssignmentNotFound):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrAccountConflict):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
