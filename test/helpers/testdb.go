package helpers

import (
	"fmt"
	"os"

	"gorm.io/gorm"

	"helperbee_backend/database"
)

// TestDatabaseURL returns the DSN for integration tests, empty when the
// suite should be skipped.
func TestDatabaseURL() string {
	return os.Getenv("TEST_DATABASE_URL")
}

// SetupTestDB connects and migrates the test database.
func SetupTestDB(dsn string) (*gorm.DB, error) {
	db, err := database.Connect(dsn)
	if err != nil {
		return nil, fmt.Errorf("connect test db: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate test db: %w", err)
	}
	return db, nil
}

// ClearTables wipes all rows between tests, children first.
func ClearTables(db *gorm.DB) error {
	tables := []string{
		"messages",
		"conversations",
		"applications",
		"payments",
		"jobs",
		"users",
	}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clear table %s: %w", table, err)
		}
	}
	return nil
}
