package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dkuznetsova/staff-accounts-api/internal/constants"
	"github.com/dkuznetsova/staff-accounts-api/internal/database"
	"github.com/dkuznetsova/staff-accounts-api/internal/dto"
	"github.com/dkuznetsova/staff-accounts-api/internal/models"
	"github.com/dkuznetsova/staff-accounts-api/internal/repository"
	"github.com/dkuznetsova/staff-accounts-api/internal/services"
)

type authTestEnv struct {
	db       *gorm.DB
	handler  *AuthHandler
	accounts *services.AccountService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Employee{},
		&models.Position{},
		&models.Assignment{},
		&models.Account{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	accountRepo := repository.NewAccountRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	accountService := services.NewAccountService(accountRepo, catalogRepo)
	authService := services.NewAuthService(accountRepo)
	handler := NewAuthHandler(authService)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:       db,
		handler:  handler,
		accounts: accountService,
	}
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.accounts.Create(services.AccountInput{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.POST("/api/auth/login", env.handler.Login)

	payload := map[string]string{
		"username": "admin",
		"password": "supersecret",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.AccountView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, payload["username"], response.Username)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.accounts.Create(services.AccountInput{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.POST("/api/auth/login", env.handler.Login)

	body, err := json.Marshal(map[string]string{
		"username": "admin",
		"password": "wrong-password",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_GetCurrentAccount(t *testing.T) {
	env := setupAuthTestEnv(t)

	account, err := env.accounts.Create(services.AccountInput{
		Username: "current-admin",
		Email:    "current@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(constants.ContextKeyUserID, account.ID)

	env.handler.GetCurrentAccount(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.AccountView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, account.Username, response.Username)
}
