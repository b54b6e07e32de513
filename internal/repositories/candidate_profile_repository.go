package repositories

import (
	"errors"

	"jobportal_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrProfileNotFound = errors.New("profile not found")

type CandidateProfileRepository interface {
	FindByUserID(userID string) (*models.CandidateProfile, error)
	// Upsert creates the profile on first write and updates it afterwards;
	// at most one profile per user.
	Upsert(profile *models.CandidateProfile) error
	Save(profile *models.CandidateProfile) error
}

type CandidateProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewCandidateProfileRepository(db *gorm.DB) CandidateProfileRepository {
	return &CandidateProfileRepositoryImpl{db: db}
}

func (r *CandidateProfileRepositoryImpl) FindByUserID(userID string) (*models.CandidateProfile, error) {
	var profile models.CandidateProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *CandidateProfileRepositoryImpl) Upsert(profile *models.CandidateProfile) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"phone", "location", "bio", "skills", "updated_at"}),
	}).Create(profile).Error
}

func (r *CandidateProfileRepositoryImpl) Save(profile *models.CandidateProfile) error {
	return r.db.Save(profile).Error
}
