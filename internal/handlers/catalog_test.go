package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dkuznetsova/staff-accounts-api/internal/database"
	"github.com/dkuznetsova/staff-accounts-api/internal/models"
	"github.com/dkuznetsova/staff-accounts-api/internal/repository"
)

func setupCatalogTestEnv(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Employee{},
		&models.Position{},
		&models.Assignment{},
		&models.Role{},
		&models.Function{},
		&models.Right{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	handler := NewCatalogHandler(repository.NewCatalogRepository(db))

	r := gin.New()
	r.GET("/api/roles", handler.ListRoles)
	r.POST("/api/roles", handler.CreateRole)
	r.GET("/api/functions", handler.ListFunctions)
	r.POST("/api/functions", handler.CreateFunction)
	r.GET("/api/assignments", handler.ListAssignments)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, r
}

func TestCatalogHandler_CreateFunction(t *testing.T) {
	_, r := setupCatalogTestEnv(t)

	w := doJSON(t, r, http.MethodPost, "/api/functions", map[string]string{
		"name": "Администрирование",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var fn models.Function
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fn))
	require.Equal(t, "Администрирование", fn.Name)
	require.NotNil(t, fn.Rights)
	require.Empty(t, fn.Rights)
}

func TestCatalogHandler_CreateFunction_RejectsLatinName(t *testing.T) {
	db, r := setupCatalogTestEnv(t)

	w := doJSON(t, r, http.MethodPost, "/api/functions", map[string]string{
		"name": "Administration",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Function{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCatalogHandler_ListFunctions_RightsNeverNull(t *testing.T) {
	db, r := setupCatalogTestEnv(t)

	require.NoError(t, db.Create(models.NewFunction("Отчеты")).Error)

	w := doJSON(t, r, http.MethodGet, "/api/functions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Functions []models.Function `json:"functions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Functions, 1)
	require.NotNil(t, resp.Functions[0].Rights)

	// the raw JSON must carry [] rather than null
	require.Contains(t, w.Body.String(), `"rights":[]`)
}

func TestCatalogHandler_CreateRole_DefaultsNameSecond(t *testing.T) {
	_, r := setupCatalogTestEnv(t)

	w := doJSON(t, r, http.MethodPost, "/api/roles", map[string]string{
		"name": "Администратор",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var role models.Role
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &role))
	require.Equal(t, "Администратор", role.Name)
	require.Equal(t, "Администратор", role.NameSecond)
}

func TestCatalogHandler_CreateRole_RejectsNonCyrillicSecondName(t *testing.T) {
	_, r := setupCatalogTestEnv(t)

	w := doJSON(t, r, http.MethodPost, "/api/roles", map[string]string{
		"name":        "admin",
		"name_second": "admin",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandler_ListAssignments(t *testing.T) {
	db, r := setupCatalogTestEnv(t)
	assignment := seedAssignment(t, db)

	w := doJSON(t, r, http.MethodGet, "/api/assignments", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Assignments []struct {
			ID   uint64 `json:"id"`
			View string `json:"view"`
		} `json:"assignments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Assignments, 1)
	require.Equal(t, assignment.View(), resp.Assignments[0].View)
}
