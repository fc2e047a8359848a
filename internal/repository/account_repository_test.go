package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dkuznetsova/staff-accounts-api/internal/models"
)

func setupMockRepo(t *testing.T) (AccountRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewAccountRepository(db), mock
}

func TestGormAccountRepository_Exists(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectQuery("SELECT count").
		WithArgs("some-id").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.Exists("some-id")
	require.NoError(t, err)
	require.True(t, exists)

	mock.ExpectQuery("SELECT count").
		WithArgs("other-id").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err = repo.Exists("other-id")
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormAccountRepository_Update_NoRowMeansConflict(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectExec("UPDATE `accounts` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	account := &models.Account{
		ID:       "stale-id",
		Username: "ivanov",
		Version:  1,
	}
	require.ErrorIs(t, repo.Update(account), ErrConcurrentUpdate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormAccountRepository_Update_BumpsVersion(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectExec("UPDATE `accounts` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	account := &models.Account{
		ID:       "live-id",
		Username: "ivanov",
		Version:  3,
	}
	require.NoError(t, repo.Update(account))
	require.Equal(t, 4, account.Version)
	require.NoError(t, mock.ExpectationsWereMet())
}
