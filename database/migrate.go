package database

import (
	"jobportal_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date. AutoMigrate is additive only;
// destructive changes are applied by hand.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.CandidateProfile{},
		&models.EmployerProfile{},
		&models.Job{},
		&models.Application{},
	)
}
