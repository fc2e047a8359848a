package handlers

import (
	"net/http"

	"github.com/dkuznetsova/staff-accounts-api/internal/dto"
	apierrors "github.com/dkuznetsova/staff-accounts-api/internal/errors"
	"github.com/dkuznetsova/staff-accounts-api/internal/models"
	"github.com/dkuznetsova/staff-accounts-api/internal/repository"
	"github.com/dkuznetsova/staff-accounts-api/internal/validation"
	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the role and permissions catalogs plus the
// assignment list used by account pickers.
type CatalogHandler struct {
	catalog repository.CatalogRepository
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog repository.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListRoles returns all roles.
func (h *CatalogHandler) ListRoles(c *gin.Context) {
	roles, err := h.catalog.ListRoles()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch roles")
		return
	}

	c.JSON(http.StatusOK, gin.H{"roles": roles})
}

// CreateRole creates a role. The secondary display name defaults to
// the role name and is held to the Cyrillic rule.
func (h *CatalogHandler) CreateRole(c *gin.Context) {
	type CreateRoleRequest struct {
		Name       string `json:"name"`
		NameSecond string `json:"name_second"`
	}

	var req CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if violations := validation.ValidateRole(req.Name, req.NameSecond); len(violations) > 0 {
		apierrors.BadRequestWithDetails(c, "Validation failed", gin.H{"violations": violations})
		return
	}

	role := models.NewRole(req.Name)
	if req.NameSecond != "" {
		role.NameSecond = req.NameSecond
	}

	if err := h.catalog.CreateRole(role); err != nil {
		apierrors.InternalError(c, "Failed to create role")
		return
	}

	c.JSON(http.StatusCreated, role)
}

// ListFunctions returns the permissions catalog with rights preloaded.
func (h *CatalogHandler) ListFunctions(c *gin.Context) {
	functions, err := h.catalog.ListFunctions()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch functions")
		return
	}

	// Preload leaves no-rights functions with a nil slice; the
	// contract is an empty array.
	for i := range functions {
		if functions[i].Rights == nil {
			functions[i].Rights = []models.Right{}
		}
	}

	c.JSON(http.StatusOK, gin.H{"functions": functions})
}

// CreateFunction creates a permissions-catalog function with an empty
// rights collection.
func (h *CatalogHandler) CreateFunction(c *gin.Context) {
	type CreateFunctionRequest struct {
		Name string `json:"name"`
	}

	var req CreateFunctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if violations := validation.ValidateFunction(req.Name); len(violations) > 0 {
		apierrors.BadRequestWithDetails(c, "Validation failed", gin.H{"violations": violations})
		return
	}

	function := models.NewFunction(req.Name)
	if err := h.catalog.CreateFunction(function); err != nil {
		apierrors.InternalError(c, "Failed to create function")
		return
	}

	c.JSON(http.StatusCreated, function)
}

// ListAssignments returns all assignments with display strings.
func (h *CatalogHandler) ListAssignments(c *gin.Context) {
	assignments, err := h.catalog.ListAssignments()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch assignments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignments": dto.ToAssignmentOptions(assignments)})
}
