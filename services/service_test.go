package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"restaurant-backend/config"
	"restaurant-backend/models"
)

// setupTestDB points the global DB at a fresh in-memory sqlite database and
// resets runtime settings for the test.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.MenuItem{},
		&models.MenuCategory{},
		&models.RestaurantHours{},
		&models.SiteSettings{},
		&models.ContactMessage{},
		&models.AdminUser{},
	))

	config.DB = db
	config.App = config.Settings{UploadsDir: t.TempDir()}
}
