package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"farmdash/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// Migrate declares every table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.User{},
		&entities.Farm{},
		&entities.Crop{},
		&entities.Livestock{},
		&entities.Transaction{},
		&entities.TransactionItem{},
		&entities.Task{},
		&entities.Labor{},
		&entities.Payroll{},
		&entities.Budget{},
	)
}
