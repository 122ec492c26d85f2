package database

import (
	"fmt"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jardin/entities"
)

// Open opens (or creates) the SQLite database and migrates the full schema.
// The returned handle is constructed here and passed down explicitly; nothing
// in the module holds it as package state.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if err := db.Exec("PRAGMA busy_timeout = 5000").Error; err != nil {
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	if err := db.AutoMigrate(
		&entities.Zone{},
		&entities.SubZone{},
		&entities.Task{},
		&entities.Collaborator{},
		&entities.StatusHistoryEvent{},
		&entities.Routine{},
		&entities.RoutineAssignment{},
		&entities.Designation{},
		&entities.User{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	return db, nil
}
