package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lodging-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique shared-cache name per test so parallel tests don't share
	// state.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Group{}, &models.Guest{}))
	return db
}

func mustDate(t *testing.T, value string) datatypes.Date {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return datatypes.Date(parsed)
}

func createTestGroup(t *testing.T, db *gorm.DB, name string) models.Group {
	t.Helper()
	group := models.Group{
		Name:     name,
		CheckIn:  mustDate(t, "2024-06-01"),
		CheckOut: mustDate(t, "2024-06-03"),
	}
	require.NoError(t, db.Create(&group).Error)
	return group
}
