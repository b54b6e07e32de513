package repositories

import (
	"errors"

	"jobportal_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EmployerProfileRepository interface {
	FindByUserID(userID string) (*models.EmployerProfile, error)
	// Upsert creates the profile on first write and updates it afterwards.
	Upsert(profile *models.EmployerProfile) error
}

type EmployerProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewEmployerProfileRepository(db *gorm.DB) EmployerProfileRepository {
	return &EmployerProfileRepositoryImpl{db: db}
}

func (r *EmployerProfileRepositoryImpl) FindByUserID(userID string) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *EmployerProfileRepositoryImpl) Upsert(profile *models.EmployerProfile) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"company_name", "description", "website", "updated_at"}),
	}).Create(profile).Error
}
